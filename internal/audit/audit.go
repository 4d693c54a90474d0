package audit

import (
	"context"
	"log/slog"
	"sync"
)

// Event represents an audit entry for a bridge call.
type Event struct {
	// Type is call, ok or error.
	Type string
	// Operation is the bridge operation.
	Operation string
	// Reason carries the failure text for error events.
	Reason string
}

// Logger records audit events.
type Logger interface {
	// Record stores an audit event.
	Record(ctx context.Context, event Event)
}

// StdLogger writes audit events to slog.
type StdLogger struct {
	logger *slog.Logger
}

// New returns a StdLogger.
func New(logger *slog.Logger) *StdLogger {
	return &StdLogger{logger: logger}
}

// Record logs an audit event.
func (l *StdLogger) Record(_ context.Context, event Event) {
	if l == nil || l.logger == nil {
		return
	}
	attrs := []any{"type", event.Type, "operation", event.Operation}
	if event.Reason != "" {
		attrs = append(attrs, "reason", event.Reason)
	}
	l.logger.Info("audit", attrs...)
}

// Recorder keeps events in memory.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

// Record appends the event.
func (r *Recorder) Record(_ context.Context, event Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

// Events returns a copy of the recorded events.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}
