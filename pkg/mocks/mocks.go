// Package mocks provides test doubles for vehiclefactory interfaces.
package mocks

import (
	"sync"

	"github.com/vehiclefactory/vehiclefactory/pkg/logger"
)

// Entry is a single recorded log call
type Entry struct {
	Level   string
	Target  string
	Message string
	Fields  []logger.Field
}

// RecordingLogger is a mock Logger that records every call in order
type RecordingLogger struct {
	mu      *sync.Mutex
	entries *[]Entry
	target  string
}

// NewRecordingLogger creates a new recording logger
func NewRecordingLogger() *RecordingLogger {
	return &RecordingLogger{
		mu:      &sync.Mutex{},
		entries: &[]Entry{},
	}
}

func (l *RecordingLogger) record(level, message string, fields []logger.Field) {
	l.mu.Lock()
	defer l.mu.Unlock()
	*l.entries = append(*l.entries, Entry{
		Level:   level,
		Target:  l.target,
		Message: message,
		Fields:  fields,
	})
}

// Info records an info message
func (l *RecordingLogger) Info(message string, fields ...logger.Field) {
	l.record("info", message, fields)
}

// Error records an error message
func (l *RecordingLogger) Error(message string, fields ...logger.Field) {
	l.record("error", message, fields)
}

// Warn records a warning message
func (l *RecordingLogger) Warn(message string, fields ...logger.Field) {
	l.record("warn", message, fields)
}

// Debug records a debug message
func (l *RecordingLogger) Debug(message string, fields ...logger.Field) {
	l.record("debug", message, fields)
}

// Success records a success message
func (l *RecordingLogger) Success(message string, fields ...logger.Field) {
	l.record("success", message, fields)
}

// WithTarget returns a logger sharing this recorder's entries
func (l *RecordingLogger) WithTarget(target string) logger.Logger {
	return &RecordingLogger{
		mu:      l.mu,
		entries: l.entries,
		target:  target,
	}
}

// Entries returns a copy of all recorded entries
func (l *RecordingLogger) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Entry, len(*l.entries))
	copy(out, *l.entries)
	return out
}

// Messages returns the recorded messages at the given level
func (l *RecordingLogger) Messages(level string) []string {
	var out []string
	for _, e := range l.Entries() {
		if e.Level == level {
			out = append(out, e.Message)
		}
	}
	return out
}

// Reset clears all recorded entries
func (l *RecordingLogger) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	*l.entries = nil
}

var _ logger.Logger = (*RecordingLogger)(nil)
