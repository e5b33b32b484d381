package logging

import (
	"context"
	"sync"
)

// mockCore holds the entries shared by a MockLogger and every logger derived from it.
type mockCore struct {
	mu   sync.RWMutex
	logs []LogEntry
}

// MockLogger is a Logger that records entries for test verification.
type MockLogger struct {
	core    *mockCore
	kvPairs []any
	ctx     context.Context
}

// LogEntry represents a logged entry for testing verification.
type LogEntry struct {
	Level         LogLevel
	Message       string
	KeysAndValues []any
	Context       context.Context
}

// NewMockLogger creates a new mock logger.
func NewMockLogger() *MockLogger {
	return &MockLogger{
		core: &mockCore{logs: make([]LogEntry, 0)},
		ctx:  context.Background(),
	}
}

func (m *MockLogger) record(ctx context.Context, level LogLevel, msg string, keysAndValues []any) {
	kv := make([]any, 0, len(m.kvPairs)+len(keysAndValues))
	kv = append(kv, m.kvPairs...)
	kv = append(kv, keysAndValues...)

	m.core.mu.Lock()
	defer m.core.mu.Unlock()
	m.core.logs = append(m.core.logs, LogEntry{
		Level:         level,
		Message:       msg,
		KeysAndValues: kv,
		Context:       ctx,
	})
}

// Debug records a debug entry.
func (m *MockLogger) Debug(ctx context.Context, msg string, keysAndValues ...any) {
	m.record(ctx, LevelDebug, msg, keysAndValues)
}

// Info records an info entry.
func (m *MockLogger) Info(ctx context.Context, msg string, keysAndValues ...any) {
	m.record(ctx, LevelInfo, msg, keysAndValues)
}

// Warn records a warn entry.
func (m *MockLogger) Warn(ctx context.Context, msg string, keysAndValues ...any) {
	m.record(ctx, LevelWarn, msg, keysAndValues)
}

// Error records an error entry.
func (m *MockLogger) Error(ctx context.Context, msg string, keysAndValues ...any) {
	m.record(ctx, LevelError, msg, keysAndValues)
}

// With returns a logger sharing this logger's entries with extra key-value pairs.
func (m *MockLogger) With(keysAndValues ...any) Logger {
	kv := make([]any, 0, len(m.kvPairs)+len(keysAndValues))
	kv = append(kv, m.kvPairs...)
	kv = append(kv, keysAndValues...)
	return &MockLogger{core: m.core, kvPairs: kv, ctx: m.ctx}
}

// WithContext returns a logger sharing this logger's entries.
func (m *MockLogger) WithContext(ctx context.Context) Logger {
	return &MockLogger{core: m.core, kvPairs: m.kvPairs, ctx: ctx}
}

// IsEnabled always returns true.
func (m *MockLogger) IsEnabled(level LogLevel) bool {
	return true
}

// GetLogs returns a copy of every recorded entry.
func (m *MockLogger) GetLogs() []LogEntry {
	m.core.mu.RLock()
	defer m.core.mu.RUnlock()

	logs := make([]LogEntry, len(m.core.logs))
	copy(logs, m.core.logs)
	return logs
}

// GetLogsByLevel returns the recorded entries of one level.
func (m *MockLogger) GetLogsByLevel(level LogLevel) []LogEntry {
	var filtered []LogEntry
	for _, entry := range m.GetLogs() {
		if entry.Level == level {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}

// HasLogWithMessage checks if any entry has exactly the given message.
func (m *MockLogger) HasLogWithMessage(message string) bool {
	for _, entry := range m.GetLogs() {
		if entry.Message == message {
			return true
		}
	}
	return false
}

// Reset clears all recorded entries.
func (m *MockLogger) Reset() {
	m.core.mu.Lock()
	defer m.core.mu.Unlock()
	m.core.logs = m.core.logs[:0]
}
