// Package app provides application-level dependency management and bootstrap logic.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/gallows/hangman/internal/config"
	"github.com/gallows/hangman/internal/observability/logging"
	"github.com/gallows/hangman/internal/ui"
)

// Dependencies holds all application dependencies.
type Dependencies struct {
	Logger logging.Logger
	UI     ui.UserOutput
	// Settings is the effective game configuration
	Settings config.Config
	// Input and Output are the streams the game console reads and prints on
	Input  io.Reader
	Output io.Writer

	// setup is kept so Configure can rebuild the logger and UI; nil for test dependencies
	setup *Config
	// mu guards Logger and UI while build replaces them
	mu sync.RWMutex
}

// Config holds configuration for creating dependencies.
type Config struct {
	// Logging configuration
	LogLevel  logging.LogLevel
	LogFormat logging.LogFormat
	LogOutput io.Writer

	// UI configuration
	UILevel        ui.OutputLevel
	UIWriter       io.Writer
	UIErrorWriter  io.Writer
	UIEnableColors bool

	// Console streams
	Input  io.Reader
	Output io.Writer

	// Application metadata
	ServiceName    string
	ServiceVersion string
}

// DefaultDependencyConfig returns a configuration wired to the process streams.
func DefaultDependencyConfig(version string) *Config {
	return &Config{
		LogLevel:       logging.LevelSilent,
		LogFormat:      logging.FormatJSON,
		LogOutput:      os.Stderr,
		UILevel:        ui.OutputNormal,
		UIWriter:       os.Stdout,
		UIErrorWriter:  os.Stderr,
		UIEnableColors: true,
		Input:          os.Stdin,
		Output:         os.Stdout,
		ServiceName:    "hangman",
		ServiceVersion: version,
	}
}

// NewDependencies creates a new Dependencies instance with the given configuration.
func NewDependencies(cfg *Config) (*Dependencies, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	d := &Dependencies{
		Settings: config.DefaultConfig(),
		Input:    cfg.Input,
		Output:   cfg.Output,
		setup:    cfg,
	}
	if err := d.build(); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Dependencies) build() error {
	loggerConfig := &logging.Config{
		Level:          d.setup.LogLevel,
		Format:         d.setup.LogFormat,
		Output:         d.setup.LogOutput,
		ServiceName:    d.setup.ServiceName,
		ServiceVersion: d.setup.ServiceVersion,
	}

	logger, err := logging.NewLogger(loggerConfig)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	logging.SetGlobalLogger(logger)

	uiConfig := &ui.Config{
		Level:        d.setup.UILevel,
		Writer:       d.setup.UIWriter,
		ErrorWriter:  d.setup.UIErrorWriter,
		EnableColors: d.setup.UIEnableColors,
		Logger:       logger,
	}

	if previous, ok := d.Logger.(logging.Shutdowner); ok {
		_ = previous.Shutdown(context.Background())
	}
	d.mu.Lock()
	d.Logger = logger
	d.UI = ui.NewUserOutput(uiConfig)
	d.mu.Unlock()
	return nil
}

// CurrentLogger returns the logger, safe to call while Configure rebuilds it.
func (d *Dependencies) CurrentLogger() logging.Logger {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.Logger
}

// Configure applies a loaded configuration. Dependencies created by NewDependencies
// rebuild their logger and UI from it; test dependencies keep their doubles.
func (d *Dependencies) Configure(settings config.Config) error {
	d.Settings = settings
	if d.setup == nil {
		return nil
	}

	level, err := logging.ParseLevel(settings.Log.Level)
	if err != nil {
		return err
	}
	format, err := logging.ParseFormat(settings.Log.Format)
	if err != nil {
		return err
	}

	d.setup.LogLevel = level
	d.setup.LogFormat = format
	d.setup.UIEnableColors = settings.UI.Colors
	d.setup.UILevel = ui.OutputNormal
	if settings.UI.Verbose {
		d.setup.UILevel = ui.OutputVerbose
	}
	return d.build()
}

// NewTestDependencies creates dependencies suitable for testing. The console has no
// input and discards its output unless the caller replaces the streams.
func NewTestDependencies() *Dependencies {
	return &Dependencies{
		Logger:   logging.NewMockLogger(),
		UI:       ui.NewMockUserOutput(),
		Settings: config.DefaultConfig(),
		Input:    strings.NewReader(""),
		Output:   io.Discard,
	}
}

// Validate ensures all dependencies are properly initialized.
func (d *Dependencies) Validate() error {
	if d.Logger == nil {
		return fmt.Errorf("logger dependency is nil")
	}
	if d.UI == nil {
		return fmt.Errorf("UI dependency is nil")
	}
	return nil
}

// Close flushes and stops the logger.
func (d *Dependencies) Close(ctx context.Context) error {
	if s, ok := d.Logger.(logging.Shutdowner); ok {
		if err := s.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shut down logger: %w", err)
		}
	}
	return nil
}
