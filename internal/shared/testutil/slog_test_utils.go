package testutil

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"
)

// LogRecord is one captured log line with its resolved attributes. Keys
// bound under a group are stored dot-qualified ("layer.raw").
type LogRecord struct {
	Time    time.Time
	Level   slog.Level
	Message string
	Attrs   map[string]any
}

// logBuffer is the record store shared by a handler and the clones its
// WithAttrs and WithGroup calls hand out.
type logBuffer struct {
	mu      sync.Mutex
	records []LogRecord
}

// BufferedSlogHandler captures records in memory so tests can assert on
// what the engine logged. It is always enabled; level filtering happens
// in the assertions, not the handler.
type BufferedSlogHandler struct {
	buf   *logBuffer
	group string
	attrs []slog.Attr
}

// NewBufferedSlogHandler creates a capturing handler scoped to one test.
func NewBufferedSlogHandler(t *testing.T) *BufferedSlogHandler {
	h := &BufferedSlogHandler{buf: &logBuffer{}}
	t.Cleanup(h.Clear)
	return h
}

// NewTestLogger creates a logger backed by a capturing handler, returning
// both so tests can log through one and assert through the other.
func NewTestLogger(t *testing.T) (*slog.Logger, *BufferedSlogHandler) {
	handler := NewBufferedSlogHandler(t)
	return slog.New(handler), handler
}

// Enabled implements slog.Handler; tests capture every level.
func (h *BufferedSlogHandler) Enabled(_ context.Context, _ slog.Level) bool {
	return true
}

// Handle implements slog.Handler, folding bound attributes into the record.
func (h *BufferedSlogHandler) Handle(_ context.Context, r slog.Record) error {
	attrs := make(map[string]any, len(h.attrs)+r.NumAttrs())
	for _, a := range h.attrs {
		attrs[a.Key] = a.Value.Resolve().Any()
	}
	r.Attrs(func(a slog.Attr) bool {
		attrs[h.qualify(a.Key)] = a.Value.Resolve().Any()
		return true
	})

	h.buf.mu.Lock()
	defer h.buf.mu.Unlock()
	h.buf.records = append(h.buf.records, LogRecord{
		Time:    r.Time,
		Level:   r.Level,
		Message: r.Message,
		Attrs:   attrs,
	})
	return nil
}

// WithAttrs binds attributes under the current group prefix. The clone
// shares the record buffer, so assertions on the original handler see
// lines logged through derived loggers.
func (h *BufferedSlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	clone.attrs = append(clone.attrs, h.attrs...)
	for _, a := range attrs {
		clone.attrs = append(clone.attrs, slog.Attr{Key: h.qualify(a.Key), Value: a.Value})
	}
	return &clone
}

// WithGroup dot-prefixes the keys of subsequently bound attributes.
func (h *BufferedSlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.group = h.qualify(name)
	return &clone
}

func (h *BufferedSlogHandler) qualify(key string) string {
	if h.group == "" {
		return key
	}
	return h.group + "." + key
}

// Records returns a copy of all captured log records.
func (h *BufferedSlogHandler) Records() []LogRecord {
	h.buf.mu.Lock()
	defer h.buf.mu.Unlock()

	records := make([]LogRecord, len(h.buf.records))
	copy(records, h.buf.records)
	return records
}

// RecordsByLevel returns captured records filtered by level.
func (h *BufferedSlogHandler) RecordsByLevel(level slog.Level) []LogRecord {
	h.buf.mu.Lock()
	defer h.buf.mu.Unlock()

	var filtered []LogRecord
	for _, r := range h.buf.records {
		if r.Level == level {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// ContainsMessage checks if any log record contains the given message.
func (h *BufferedSlogHandler) ContainsMessage(message string) bool {
	h.buf.mu.Lock()
	defer h.buf.mu.Unlock()

	for _, r := range h.buf.records {
		if strings.Contains(r.Message, message) {
			return true
		}
	}
	return false
}

// ContainsAttr checks if any log record carries the given attribute.
func (h *BufferedSlogHandler) ContainsAttr(key string, value any) bool {
	h.buf.mu.Lock()
	defer h.buf.mu.Unlock()

	for _, r := range h.buf.records {
		if val, ok := r.Attrs[key]; ok && val == value {
			return true
		}
	}
	return false
}

// Clear removes all captured records.
func (h *BufferedSlogHandler) Clear() {
	h.buf.mu.Lock()
	defer h.buf.mu.Unlock()
	h.buf.records = h.buf.records[:0]
}

// Count returns the number of captured records.
func (h *BufferedSlogHandler) Count() int {
	h.buf.mu.Lock()
	defer h.buf.mu.Unlock()
	return len(h.buf.records)
}

// AssertLogContains fails the test when no record at the level contains
// the message.
func AssertLogContains(t *testing.T, handler *BufferedSlogHandler, level slog.Level, message string) {
	t.Helper()

	records := handler.RecordsByLevel(level)
	for _, r := range records {
		if strings.Contains(r.Message, message) {
			return
		}
	}

	t.Errorf("Expected log message not found at level %s: %q", level, message)
	for _, r := range records {
		t.Logf("  captured: %s", r.Message)
	}
}
