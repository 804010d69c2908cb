// Package audit records authentication outcomes as JSON lines without
// blocking request handling.
package audit

import (
	"context"
	"encoding/json"
	"io"
	"sync"
	"time"
)

const (
	ActionRegister       = "register"
	ActionLogin          = "login"
	ActionChangePassword = "change_password"
)

// Event is a single audit record.
type Event struct {
	Timestamp time.Time `json:"timestamp"`
	Action    string    `json:"action"`
	Username  string    `json:"username,omitempty"`
	ClientIP  string    `json:"client_ip,omitempty"`
	Success   bool      `json:"success"`
	Detail    string    `json:"detail,omitempty"`
}

// Sink receives audit events from the dispatcher.
type Sink interface {
	Emit(ctx context.Context, event Event)
}

// NopSink discards everything. Used when auditing is disabled.
type NopSink struct{}

func (NopSink) Emit(context.Context, Event) {}

// WriterSink serializes events as JSON lines to a writer. Writes are
// serialized with a mutex so concurrent emits never interleave.
type WriterSink struct {
	writer io.Writer
	mu     sync.Mutex
}

func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{writer: w}
}

func (s *WriterSink) Emit(_ context.Context, event Event) {
	if s == nil || s.writer == nil {
		return
	}
	data, err := json.Marshal(event)
	if err != nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, _ = s.writer.Write(data)
	_, _ = s.writer.Write([]byte("\n"))
}
