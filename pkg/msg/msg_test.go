package msg

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestMain(m *testing.M) {
	os.Setenv("MESSAGES_FILE_PATH", filepath.Join("..", "..", "configs", "messages.yml"))
	os.Exit(m.Run())
}

func TestGetMessageFormatsPlaceholders(t *testing.T) {
	got := GetMessage("weather.load-fail", "single-city", errors.New("boom"))
	want := "Weather load failed for single-city: boom"
	if got != want {
		t.Fatalf("GetMessage = %q, want %q", got, want)
	}
}

func TestGetMessageStringerAndNumbers(t *testing.T) {
	got := GetMessage("weather.fetch-success", "GET", "/assets/weather.json", 200, int64(12))
	want := "Fixture GET /assets/weather.json answered 200 in 12ms"
	if got != want {
		t.Fatalf("GetMessage = %q, want %q", got, want)
	}

	if got := argToString(1500 * time.Millisecond); got != "1.5s" {
		t.Fatalf("argToString(duration) = %q, want 1.5s", got)
	}
}

func TestGetMessageUnknownKey(t *testing.T) {
	if got := GetMessage("missing.key"); got != "Message not found: missing.key" {
		t.Fatalf("GetMessage = %q", got)
	}
}

func TestInitMergesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "extra.yml")
	if err := os.WriteFile(path, []byte("extra:\n  hello: \"hello {0}\"\n"), 0o600); err != nil {
		t.Fatalf("failed to write messages: %v", err)
	}
	if err := Init(path); err != nil {
		t.Fatalf("Init returned error: %v", err)
	}
	if got := GetMessage("extra.hello", "Milan"); got != "hello Milan" {
		t.Fatalf("GetMessage = %q", got)
	}
}
