package logging

import (
	"context"
	"sync"
)

var (
	globalMu     sync.RWMutex
	globalLogger Logger
)

// InitGlobalLogger builds a logger from config and makes it the process-wide logger.
func InitGlobalLogger(config *Config) (Logger, error) {
	logger, err := NewLogger(config)
	if err != nil {
		return nil, err
	}
	SetGlobalLogger(logger)
	return logger, nil
}

// SetGlobalLogger replaces the process-wide logger. Passing nil restores the silent default.
func SetGlobalLogger(logger Logger) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalLogger = logger
}

// GetGlobalLogger returns the process-wide logger, or a silent one if none was installed.
func GetGlobalLogger() Logger {
	globalMu.RLock()
	defer globalMu.RUnlock()

	if globalLogger == nil {
		return newNoOpLogger()
	}
	return globalLogger
}

// Debug logs a debug message using the global logger.
func Debug(ctx context.Context, msg string, keysAndValues ...any) {
	GetGlobalLogger().Debug(ctx, msg, keysAndValues...)
}

// Info logs an info message using the global logger.
func Info(ctx context.Context, msg string, keysAndValues ...any) {
	GetGlobalLogger().Info(ctx, msg, keysAndValues...)
}

// Warn logs a warning message using the global logger.
func Warn(ctx context.Context, msg string, keysAndValues ...any) {
	GetGlobalLogger().Warn(ctx, msg, keysAndValues...)
}

// Error logs an error message using the global logger.
func Error(ctx context.Context, msg string, keysAndValues ...any) {
	GetGlobalLogger().Error(ctx, msg, keysAndValues...)
}
