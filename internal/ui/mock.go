package ui

import (
	"context"
	"fmt"
	"sync"
)

// OutputMessage represents a message shown to the user, recorded for testing verification.
type OutputMessage struct {
	Level   string
	Message string
	Context context.Context
}

// MockUserOutput is a UserOutput that records formatted messages.
type MockUserOutput struct {
	mu       sync.RWMutex
	messages []OutputMessage
	level    OutputLevel
}

// NewMockUserOutput creates a new mock user output at the normal level.
func NewMockUserOutput() *MockUserOutput {
	return &MockUserOutput{
		messages: make([]OutputMessage, 0),
		level:    OutputNormal,
	}
}

func (m *MockUserOutput) record(ctx context.Context, level, msg string, args []any) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.messages = append(m.messages, OutputMessage{
		Level:   level,
		Message: fmt.Sprintf(msg, args...),
		Context: ctx,
	})
}

// Info records an informational message.
func (m *MockUserOutput) Info(ctx context.Context, msg string, args ...any) {
	m.record(ctx, "INFO", msg, args)
}

// Success records a success message.
func (m *MockUserOutput) Success(ctx context.Context, msg string, args ...any) {
	m.record(ctx, "SUCCESS", msg, args)
}

// Error records an error message.
func (m *MockUserOutput) Error(ctx context.Context, msg string, args ...any) {
	m.record(ctx, "ERROR", msg, args)
}

// Result records a result message.
func (m *MockUserOutput) Result(ctx context.Context, msg string, args ...any) {
	m.record(ctx, "RESULT", msg, args)
}

// Progress records a progress message.
func (m *MockUserOutput) Progress(ctx context.Context, msg string, args ...any) {
	m.record(ctx, "PROGRESS", msg, args)
}

// SetLevel sets the level reported by IsLevelEnabled.
func (m *MockUserOutput) SetLevel(level OutputLevel) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.level = level
}

// IsLevelEnabled checks the level against the mock's level.
func (m *MockUserOutput) IsLevelEnabled(level OutputLevel) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return level <= m.level
}

// GetMessages returns a copy of all recorded messages.
func (m *MockUserOutput) GetMessages() []OutputMessage {
	m.mu.RLock()
	defer m.mu.RUnlock()

	messages := make([]OutputMessage, len(m.messages))
	copy(messages, m.messages)
	return messages
}

// GetMessagesOfLevel returns the recorded messages of one level.
func (m *MockUserOutput) GetMessagesOfLevel(level string) []OutputMessage {
	var filtered []OutputMessage
	for _, msg := range m.GetMessages() {
		if msg.Level == level {
			filtered = append(filtered, msg)
		}
	}
	return filtered
}
