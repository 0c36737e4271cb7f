package sse

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// Prepare sets the event-stream headers and returns the flusher of w, if any
func Prepare(w http.ResponseWriter) http.Flusher {
	h := w.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	h.Set("X-Accel-Buffering", "no") // nginx: disable buffering
	flusher, _ := w.(http.Flusher)
	return flusher
}

// WriteEvent writes one event. Strings are sent as is, anything else as JSON.
func WriteEvent(w http.ResponseWriter, flusher http.Flusher, event string, v any) error {
	var payload string
	switch data := v.(type) {
	case string:
		payload = data
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return err
		}
		payload = string(b)
	}

	var sb strings.Builder
	if event != "" {
		fmt.Fprintf(&sb, "event: %s\n", event)
	}
	for _, line := range strings.Split(payload, "\n") {
		fmt.Fprintf(&sb, "data: %s\n", line)
	}
	sb.WriteString("\n")

	if _, err := w.Write([]byte(sb.String())); err != nil {
		return err
	}
	if flusher != nil {
		flusher.Flush()
	}
	return nil
}

// WriteComment writes a comment line, used as keep-alive
func WriteComment(w http.ResponseWriter, flusher http.Flusher, comment string) error {
	if _, err := fmt.Fprintf(w, ": %s\n\n", comment); err != nil {
		return err
	}
	if flusher != nil {
		flusher.Flush()
	}
	return nil
}
