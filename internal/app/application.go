// Package app provides the main application structure and lifecycle management.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/gallows/hangman/internal/app/commands"
	"github.com/gallows/hangman/internal/config"
	"github.com/gallows/hangman/internal/observability/logging"
	"github.com/gallows/hangman/internal/ui"
	"github.com/spf13/cobra"
)

// Application represents the main application with its dependencies.
type Application struct {
	deps    *Dependencies
	info    commands.BuildInfo
	rootCmd *cobra.Command
	ctx     context.Context
	cancel  context.CancelFunc
}

// Option customizes an Application.
type Option func(*Application)

// WithBuildInfo sets the version information reported by the version command.
func WithBuildInfo(info commands.BuildInfo) Option {
	return func(a *Application) {
		a.info = info
	}
}

// New creates a new Application instance with the given dependencies.
func New(deps *Dependencies, opts ...Option) (*Application, error) {
	if deps == nil {
		return nil, fmt.Errorf("dependencies cannot be nil")
	}

	if err := deps.Validate(); err != nil {
		return nil, fmt.Errorf("invalid dependencies: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())

	app := &Application{
		deps:   deps,
		info:   commands.BuildInfo{Version: "dev", BuildTime: "unknown", GitCommit: "unknown"},
		ctx:    ctx,
		cancel: cancel,
	}
	for _, opt := range opts {
		opt(app)
	}

	// Create root command with dependency injection
	app.rootCmd = app.createRootCommand()

	return app, nil
}

// Run starts the application and handles the command execution.
func (a *Application) Run(args []string) error {
	go a.handleSignals()

	a.rootCmd.SetArgs(args)

	if err := a.rootCmd.ExecuteContext(a.ctx); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the application.
func (a *Application) Shutdown() error {
	a.cancel()
	return a.deps.Close(context.Background())
}

// GetDependencies returns the application dependencies (useful for testing).
func (a *Application) GetDependencies() *Dependencies {
	return a.deps
}

// GetRootCommand returns the root cobra command (useful for testing).
func (a *Application) GetRootCommand() *cobra.Command {
	return a.rootCmd
}

// handleSignals sets up signal handling for graceful shutdown.
func (a *Application) handleSignals() {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	select {
	case sig := <-sigChan:
		a.deps.CurrentLogger().Info(a.ctx, "Received shutdown signal", "signal", sig.String())
		a.cancel()
	case <-a.ctx.Done():
		return
	}
}

// createRootCommand creates the root cobra command with dependency injection.
func (a *Application) createRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hangman",
		Short: "Console hangman",
		Long: `Hangman is a console word guessing game.

Every step of a game (prompting, reading, picking the word, playing a letter)
is a composed computation over the console environment, run once per game.

Configuration is read from $HOME/.config/hangman/config.yaml or --config,
an optional .env file and HANGMAN_ prefixed environment variables.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       a.info.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.configure(cmd)
		},
	}

	cmd.PersistentFlags().String("config", "", "config file path")
	cmd.PersistentFlags().String("env-file", "", "env file to load before reading the environment (default .env if present)")
	cmd.PersistentFlags().String("log-level", "", "log level (silent, debug, info, warn, error)")
	cmd.PersistentFlags().String("log-format", "", "log format (json, text)")
	cmd.PersistentFlags().Bool("no-color", false, "disable colored output")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")

	rt := runtime{deps: a.deps}
	cmd.AddCommand(commands.NewPlayHandler(rt).CreateCommand())
	cmd.AddCommand(commands.NewWordsHandler(rt).CreateCommand())
	cmd.AddCommand(commands.NewConfigHandler(rt).CreateCommand())
	cmd.AddCommand(commands.NewVersionCommand(rt, a.info))

	return cmd
}

// configure loads the env file and the configuration, applies flag overrides and
// hands the result to the dependencies.
func (a *Application) configure(cmd *cobra.Command) error {
	flags := cmd.Root().PersistentFlags()

	envFile, _ := flags.GetString("env-file")
	if err := config.LoadEnvFile(envFile); err != nil {
		return err
	}

	configFile, _ := flags.GetString("config")
	loaded := config.Load(configFile)
	if err, failed := loaded.FailureValue(); failed {
		return err
	}
	settings, _ := loaded.SuccessValue()

	if flags.Changed("log-level") {
		settings.Log.Level, _ = flags.GetString("log-level")
	}
	if flags.Changed("log-format") {
		settings.Log.Format, _ = flags.GetString("log-format")
	}
	if noColor, _ := flags.GetBool("no-color"); noColor {
		settings.UI.Colors = false
	}
	if verbose, _ := flags.GetBool("verbose"); verbose {
		settings.UI.Verbose = true
	}

	if err := a.deps.Configure(settings); err != nil {
		return fmt.Errorf("failed to apply configuration: %w", err)
	}
	a.deps.Logger.Debug(a.ctx, "Configuration loaded", "config_file", configFile, "command", cmd.Name())
	return nil
}

// runtime exposes the current dependencies to command handlers.
type runtime struct {
	deps *Dependencies
}

func (r runtime) Logger() logging.Logger { return r.deps.Logger }

func (r runtime) UI() ui.UserOutput { return r.deps.UI }

func (r runtime) Settings() config.Config { return r.deps.Settings }

func (r runtime) Streams() (io.Reader, io.Writer) { return r.deps.Input, r.deps.Output }
