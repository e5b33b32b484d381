package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	obsctx "github.com/gallows/hangman/internal/observability/context"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(t *testing.T, level LogLevel, format LogFormat) (Logger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	logger, err := NewLogger(&Config{
		Level:          level,
		Format:         format,
		Output:         &buf,
		ServiceName:    "test-service",
		ServiceVersion: "1.0.0",
	})
	require.NoError(t, err)
	return logger, &buf
}

func parseLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry), "failed to parse log entry as JSON")
		entries = append(entries, entry)
	}
	return entries
}

func TestLogLevels(t *testing.T) {
	tests := []struct {
		name     string
		level    LogLevel
		expected []string
	}{
		{"silent mode disables all logging", LevelSilent, nil},
		{"debug enables all levels", LevelDebug, []string{"DEBUG", "INFO", "WARN", "ERROR"}},
		{"info enables info and above", LevelInfo, []string{"INFO", "WARN", "ERROR"}},
		{"warn enables warn and error", LevelWarn, []string{"WARN", "ERROR"}},
		{"error enables only error", LevelError, []string{"ERROR"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newTestLogger(t, tt.level, FormatJSON)

			ctx := context.Background()
			logger.Debug(ctx, "debug message")
			logger.Info(ctx, "info message")
			logger.Warn(ctx, "warn message")
			logger.Error(ctx, "error message")

			entries := parseLines(t, buf)
			require.Len(t, entries, len(tt.expected))
			for i, level := range tt.expected {
				assert.Equal(t, level, entries[i]["level"])
				assert.Equal(t, "test-service", entries[i]["service.name"])
			}
		})
	}
}

func TestLogFormats(t *testing.T) {
	t.Run("JSON format", func(t *testing.T) {
		logger, buf := newTestLogger(t, LevelInfo, FormatJSON)
		logger.Info(context.Background(), "test message", "key", "value", "count", 42)

		entries := parseLines(t, buf)
		require.Len(t, entries, 1)
		assert.Equal(t, "test message", entries[0]["msg"])
		assert.Equal(t, "value", entries[0]["key"])
		assert.Equal(t, float64(42), entries[0]["count"])
	})

	t.Run("text format", func(t *testing.T) {
		logger, buf := newTestLogger(t, LevelInfo, FormatText)
		logger.Info(context.Background(), "test message", "key", "value", "count", 42)

		output := buf.String()
		assert.Contains(t, output, "test message")
		assert.Contains(t, output, "key=value")
		assert.Contains(t, output, "count=42")
	})
}

func TestLoggerAddsContextFields(t *testing.T) {
	logger, buf := newTestLogger(t, LevelInfo, FormatJSON)

	ctx := obsctx.WithPlayer(obsctx.WithSessionID(obsctx.NewOperationContext("play"), "s-42"), "ADA")
	logger.Info(ctx, "game started", "word_length", 3)

	entries := parseLines(t, buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "play", entries[0]["operation"])
	assert.Equal(t, "s-42", entries[0]["session_id"])
	assert.Equal(t, "ADA", entries[0]["player"])
	assert.Equal(t, float64(3), entries[0]["word_length"])
}

func TestLoggerWith(t *testing.T) {
	logger, buf := newTestLogger(t, LevelInfo, FormatJSON)

	logger.With("component", "console").Info(context.Background(), "test message")

	entries := parseLines(t, buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "console", entries[0]["component"])
}

func TestLoggerIsEnabled(t *testing.T) {
	tests := []struct {
		name         string
		configLevel  LogLevel
		checkLevel   LogLevel
		shouldEnable bool
	}{
		{"silent disables all", LevelSilent, LevelError, false},
		{"debug enables debug", LevelDebug, LevelDebug, true},
		{"info disables debug", LevelInfo, LevelDebug, false},
		{"info enables info", LevelInfo, LevelInfo, true},
		{"warn disables info", LevelWarn, LevelInfo, false},
		{"error enables error", LevelError, LevelError, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, _ := newTestLogger(t, tt.configLevel, FormatJSON)
			assert.Equal(t, tt.shouldEnable, logger.IsEnabled(tt.checkLevel))
		})
	}
}

func TestLoggerShutdown(t *testing.T) {
	logger, _ := newTestLogger(t, LevelInfo, FormatJSON)

	shutdowner, ok := logger.(Shutdowner)
	require.True(t, ok)
	assert.NoError(t, shutdowner.Shutdown(context.Background()))
}

func TestParseLevelAndFormat(t *testing.T) {
	for _, s := range []string{"silent", "debug", "info", "warn", "error"} {
		level, err := ParseLevel(s)
		require.NoError(t, err)
		assert.Equal(t, LogLevel(s), level)
	}

	level, err := ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, LevelSilent, level)

	_, err = ParseLevel("verbose")
	assert.ErrorContains(t, err, "unknown log level")

	format, err := ParseFormat("text")
	require.NoError(t, err)
	assert.Equal(t, FormatText, format)

	_, err = ParseFormat("xml")
	assert.ErrorContains(t, err, "unknown log format")
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, LevelSilent, config.Level)
	assert.Equal(t, FormatJSON, config.Format)
	assert.Equal(t, "hangman", config.ServiceName)
	assert.NotNil(t, config.Output)
}

func TestNoOpLogger(t *testing.T) {
	logger := NewNoOpLogger()
	ctx := context.Background()

	assert.NotPanics(t, func() {
		logger.Debug(ctx, "debug")
		logger.Info(ctx, "info")
		logger.Warn(ctx, "warn")
		logger.Error(ctx, "error")
	})
	assert.NotNil(t, logger.With("key", "value"))
	assert.NotNil(t, logger.WithContext(ctx))
	assert.False(t, logger.IsEnabled(LevelError))
}
