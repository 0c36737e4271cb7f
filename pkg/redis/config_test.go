package redis

import "testing"

func TestConfigValidate(t *testing.T) {
	config := NewRedisConfig().WithHost("cache").WithPort(6380).WithDatabase(2)
	if err := config.Validate(); err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if config.Addr() != "cache:6380" {
		t.Fatalf("Addr() = %s", config.Addr())
	}

	if err := NewRedisConfig().WithPort(0).Validate(); err == nil {
		t.Fatal("expected error for port 0")
	}
	if err := NewRedisConfig().WithDatabase(16).Validate(); err == nil {
		t.Fatal("expected error for database 16")
	}
}

func TestNewClientRejectsInvalidConfig(t *testing.T) {
	if _, err := NewClient(NewRedisConfig().WithHost("")); err == nil {
		t.Fatal("expected error for empty host")
	}
}

func TestChannelName(t *testing.T) {
	if got := NewPublisher(nil, "weather-info").ChannelName("state"); got != "weather-info::state" {
		t.Fatalf("ChannelName = %s", got)
	}
	if got := NewPublisher(nil, "").ChannelName("state"); got != "state" {
		t.Fatalf("ChannelName = %s", got)
	}
}
