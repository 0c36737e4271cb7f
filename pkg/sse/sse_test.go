package sse

import (
	"net/http/httptest"
	"testing"
)

func TestPrepareSetsHeaders(t *testing.T) {
	rec := httptest.NewRecorder()
	if flusher := Prepare(rec); flusher == nil {
		t.Fatal("recorder should be a flusher")
	}
	if got := rec.Header().Get("Content-Type"); got != "text/event-stream" {
		t.Fatalf("content type = %q", got)
	}
	if got := rec.Header().Get("Cache-Control"); got != "no-cache" {
		t.Fatalf("cache control = %q", got)
	}
}

func TestWriteEventJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	flusher := Prepare(rec)

	if err := WriteEvent(rec, flusher, "state", map[string]int{"temperature": 21}); err != nil {
		t.Fatalf("WriteEvent returned error: %v", err)
	}
	want := "event: state\ndata: {\"temperature\":21}\n\n"
	if rec.Body.String() != want {
		t.Fatalf("body = %q, want %q", rec.Body.String(), want)
	}
	if !rec.Flushed {
		t.Fatal("event was not flushed")
	}
}

func TestWriteEventMultilineString(t *testing.T) {
	rec := httptest.NewRecorder()

	if err := WriteEvent(rec, nil, "", "a\nb"); err != nil {
		t.Fatalf("WriteEvent returned error: %v", err)
	}
	if want := "data: a\ndata: b\n\n"; rec.Body.String() != want {
		t.Fatalf("body = %q, want %q", rec.Body.String(), want)
	}
}

func TestWriteEventUnsupportedValue(t *testing.T) {
	rec := httptest.NewRecorder()

	if err := WriteEvent(rec, nil, "state", make(chan int)); err == nil {
		t.Fatal("expected marshal error")
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("partial event written: %q", rec.Body.String())
	}
}

func TestWriteComment(t *testing.T) {
	rec := httptest.NewRecorder()

	if err := WriteComment(rec, nil, "ping"); err != nil {
		t.Fatalf("WriteComment returned error: %v", err)
	}
	if want := ": ping\n\n"; rec.Body.String() != want {
		t.Fatalf("body = %q, want %q", rec.Body.String(), want)
	}
}
