package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

type telemetryEvent struct {
	SessionID string            `json:"session_id"`
	Timestamp time.Time         `json:"timestamp"`
	Event     string            `json:"event"`
	VideoID   string            `json:"video_id,omitempty"`
	Extra     map[string]string `json:"extra,omitempty"`
}

// telemetryLogger appends NDJSON events to a file in the config dir.
// Emit never fails loudly: telemetry must not take the UI down.
type telemetryLogger struct {
	path      string
	sessionID string
	mu        sync.Mutex
}

func newTelemetryLogger(path string) *telemetryLogger {
	dir := filepath.Dir(path)
	_ = os.MkdirAll(dir, 0o755)
	return &telemetryLogger{
		path:      path,
		sessionID: uuid.NewString(),
	}
}

func (t *telemetryLogger) Emit(event telemetryEvent) {
	if t == nil || strings.TrimSpace(event.Event) == "" {
		return
	}
	if event.SessionID == "" {
		event.SessionID = t.sessionID
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	if len(event.Extra) == 0 {
		event.Extra = nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	data, err := json.Marshal(event)
	if err != nil {
		return
	}
	data = append(data, '\n')
	f, err := os.OpenFile(t.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer f.Close()
	_, _ = f.Write(data)
}

func (t *telemetryLogger) Event(name string, extra map[string]string) {
	t.Emit(telemetryEvent{Event: name, Extra: extra})
}

func (t *telemetryLogger) VideoEvent(name, videoID string) {
	t.Emit(telemetryEvent{Event: name, VideoID: videoID})
}
