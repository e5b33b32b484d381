// Package logging provides OpenTelemetry compliant structured logging for hangman.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	obsctx "github.com/gallows/hangman/internal/observability/context"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutlog"
	"go.opentelemetry.io/otel/log/global"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	"go.opentelemetry.io/otel/sdk/resource"
)

// LogLevel represents the available log levels.
type LogLevel string

const (
	// LevelSilent disables all logging (default)
	LevelSilent LogLevel = "silent"
	// LevelDebug enables debug and all higher level logs
	LevelDebug LogLevel = "debug"
	// LevelInfo enables info and all higher level logs
	LevelInfo LogLevel = "info"
	// LevelWarn enables warn and error logs only
	LevelWarn LogLevel = "warn"
	// LevelError enables error logs only
	LevelError LogLevel = "error"
)

// LogFormat represents the available log output formats.
type LogFormat string

const (
	// FormatJSON outputs structured JSON logs (OTEL compliant)
	FormatJSON LogFormat = "json"
	// FormatText outputs human-readable text logs
	FormatText LogFormat = "text"
)

// ParseLevel converts a configuration string into a LogLevel.
func ParseLevel(s string) (LogLevel, error) {
	switch level := LogLevel(s); level {
	case LevelSilent, LevelDebug, LevelInfo, LevelWarn, LevelError:
		return level, nil
	case "":
		return LevelSilent, nil
	}
	return "", fmt.Errorf("unknown log level: %q", s)
}

// ParseFormat converts a configuration string into a LogFormat.
func ParseFormat(s string) (LogFormat, error) {
	switch format := LogFormat(s); format {
	case FormatJSON, FormatText:
		return format, nil
	case "":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("unknown log format: %q", s)
}

// Logger provides a structured logging interface with OTEL compliance.
// Session fields stored in the context (see observability/context) are added to every entry.
type Logger interface {
	// Debug logs a debug-level message with optional key-value pairs
	Debug(ctx context.Context, msg string, keysAndValues ...any)
	// Info logs an info-level message with optional key-value pairs
	Info(ctx context.Context, msg string, keysAndValues ...any)
	// Warn logs a warn-level message with optional key-value pairs
	Warn(ctx context.Context, msg string, keysAndValues ...any)
	// Error logs an error-level message with optional key-value pairs
	Error(ctx context.Context, msg string, keysAndValues ...any)
	// With returns a logger with the given key-value pairs added to all log entries
	With(keysAndValues ...any) Logger
	// WithContext returns a logger that uses the given context
	WithContext(ctx context.Context) Logger
	// IsEnabled returns true if the logger would emit a log record at the given level
	IsEnabled(level LogLevel) bool
}

// Shutdowner is implemented by loggers that own resources needing a flush on exit.
type Shutdowner interface {
	Shutdown(ctx context.Context) error
}

// Config holds the logging configuration.
type Config struct {
	// Level sets the minimum log level to output
	Level LogLevel
	// Format sets the output format (json or text)
	Format LogFormat
	// Output sets the output destination (defaults to os.Stderr)
	Output io.Writer
	// ServiceName is added to all log entries for service identification
	ServiceName string
	// ServiceVersion is added to all log entries for version tracking
	ServiceVersion string
}

// DefaultConfig returns a default logging configuration with silent mode.
func DefaultConfig() *Config {
	return &Config{
		Level:          LevelSilent,
		Format:         FormatJSON,
		Output:         os.Stderr,
		ServiceName:    "hangman",
		ServiceVersion: "unknown",
	}
}

// otelLogger implements the Logger interface using slog handlers and an OTEL log provider.
type otelLogger struct {
	slogger  *slog.Logger
	config   *Config
	ctx      context.Context
	provider *sdklog.LoggerProvider
}

// NewLogger creates a new OTEL-compliant logger with the given configuration.
func NewLogger(config *Config) (Logger, error) {
	if config == nil {
		config = DefaultConfig()
	}

	if config.Level == LevelSilent {
		return newNoOpLogger(), nil
	}

	if config.Output == nil {
		config.Output = os.Stderr
	}

	provider, err := setupOTELLogProvider(config)
	if err != nil {
		return nil, fmt.Errorf("failed to set up log provider: %w", err)
	}

	opts := &slog.HandlerOptions{Level: toSlogLevel(config.Level)}

	var handler slog.Handler
	if config.Format == FormatText {
		handler = slog.NewTextHandler(config.Output, opts)
	} else {
		handler = slog.NewJSONHandler(config.Output, opts)
	}

	slogger := slog.New(handler).With(
		"service.name", config.ServiceName,
		"service.version", config.ServiceVersion,
	)

	return &otelLogger{
		slogger:  slogger,
		config:   config,
		ctx:      context.Background(),
		provider: provider,
	}, nil
}

func toSlogLevel(level LogLevel) slog.Level {
	switch level {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// setupOTELLogProvider configures the OpenTelemetry log provider and installs it globally.
func setupOTELLogProvider(config *Config) (*sdklog.LoggerProvider, error) {
	exporter, err := stdoutlog.New(
		stdoutlog.WithWriter(config.Output),
	)
	if err != nil {
		return nil, err
	}

	res := resource.NewSchemaless(
		attribute.String("service.name", config.ServiceName),
		attribute.String("service.version", config.ServiceVersion),
	)

	provider := sdklog.NewLoggerProvider(
		sdklog.WithResource(res),
		sdklog.WithProcessor(sdklog.NewBatchProcessor(exporter)),
	)
	global.SetLoggerProvider(provider)

	return provider, nil
}

func (l *otelLogger) log(ctx context.Context, level slog.Level, msg string, keysAndValues []any) {
	if ctx == nil {
		ctx = l.ctx
	}
	fields := obsctx.ExtractContextFields(ctx)
	if len(fields) > 0 {
		keysAndValues = append(fields, keysAndValues...)
	}
	l.slogger.Log(ctx, level, msg, keysAndValues...)
}

// Debug logs a debug-level message.
func (l *otelLogger) Debug(ctx context.Context, msg string, keysAndValues ...any) {
	if l.IsEnabled(LevelDebug) {
		l.log(ctx, slog.LevelDebug, msg, keysAndValues)
	}
}

// Info logs an info-level message.
func (l *otelLogger) Info(ctx context.Context, msg string, keysAndValues ...any) {
	if l.IsEnabled(LevelInfo) {
		l.log(ctx, slog.LevelInfo, msg, keysAndValues)
	}
}

// Warn logs a warn-level message.
func (l *otelLogger) Warn(ctx context.Context, msg string, keysAndValues ...any) {
	if l.IsEnabled(LevelWarn) {
		l.log(ctx, slog.LevelWarn, msg, keysAndValues)
	}
}

// Error logs an error-level message.
func (l *otelLogger) Error(ctx context.Context, msg string, keysAndValues ...any) {
	if l.IsEnabled(LevelError) {
		l.log(ctx, slog.LevelError, msg, keysAndValues)
	}
}

// With returns a logger with the given key-value pairs added to all log entries.
func (l *otelLogger) With(keysAndValues ...any) Logger {
	return &otelLogger{
		slogger:  l.slogger.With(keysAndValues...),
		config:   l.config,
		ctx:      l.ctx,
		provider: l.provider,
	}
}

// WithContext returns a logger that falls back to ctx when a call passes a nil context.
func (l *otelLogger) WithContext(ctx context.Context) Logger {
	return &otelLogger{
		slogger:  l.slogger,
		config:   l.config,
		ctx:      ctx,
		provider: l.provider,
	}
}

// IsEnabled returns true if the logger would emit a log record at the given level.
func (l *otelLogger) IsEnabled(level LogLevel) bool {
	if l.config.Level == LevelSilent {
		return false
	}
	return levelRank(level) >= levelRank(l.config.Level)
}

// Shutdown flushes and stops the log provider.
func (l *otelLogger) Shutdown(ctx context.Context) error {
	if l.provider == nil {
		return nil
	}
	return l.provider.Shutdown(ctx)
}

func levelRank(level LogLevel) int {
	switch level {
	case LevelDebug:
		return 0
	case LevelInfo:
		return 1
	case LevelWarn:
		return 2
	case LevelError:
		return 3
	default:
		return 999 // Silent mode
	}
}

// noOpLogger is a logger that does nothing (for silent mode).
type noOpLogger struct{}

func newNoOpLogger() Logger {
	return &noOpLogger{}
}

func (n *noOpLogger) Debug(ctx context.Context, msg string, keysAndValues ...any) {}
func (n *noOpLogger) Info(ctx context.Context, msg string, keysAndValues ...any)  {}
func (n *noOpLogger) Warn(ctx context.Context, msg string, keysAndValues ...any)  {}
func (n *noOpLogger) Error(ctx context.Context, msg string, keysAndValues ...any) {}
func (n *noOpLogger) With(keysAndValues ...any) Logger                            { return n }
func (n *noOpLogger) WithContext(ctx context.Context) Logger                      { return n }
func (n *noOpLogger) IsEnabled(level LogLevel) bool                               { return false }

// NewNoOpLogger returns a logger that discards everything.
func NewNoOpLogger() Logger {
	return newNoOpLogger()
}
