package redis

import (
	"context"
	"net"
	"testing"
)

// closedPort returns a local port nothing listens on
func closedPort(t *testing.T) int {
	t.Helper()
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	port := listener.Addr().(*net.TCPAddr).Port
	_ = listener.Close()
	return port
}

func TestHealthCheckUnreachable(t *testing.T) {
	client, err := NewClient(NewRedisConfig().WithHost("127.0.0.1").WithPort(closedPort(t)))
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	defer client.Close()

	check := client.HealthCheck(context.Background())
	if check.Healthy {
		t.Fatal("unreachable redis reported healthy")
	}
	if check.Details["last_error"] == "" {
		t.Fatalf("missing last_error in %v", check.Details)
	}
}
