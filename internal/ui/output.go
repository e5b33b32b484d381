// Package ui provides user-facing output for the hangman CLI, separate from diagnostic logging.
package ui

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/gallows/hangman/internal/observability/logging"
	"github.com/muesli/termenv"
)

// OutputLevel determines what type of output should be shown to users.
type OutputLevel int

const (
	// OutputSilent shows no user output (only errors)
	OutputSilent OutputLevel = iota
	// OutputNormal shows standard operation results
	OutputNormal
	// OutputVerbose shows detailed operation information
	OutputVerbose
)

// UserOutput handles all user-facing output.
type UserOutput interface {
	// Info displays informational messages to the user
	Info(ctx context.Context, msg string, args ...any)
	// Success displays success messages to the user
	Success(ctx context.Context, msg string, args ...any)
	// Error displays error messages to the user; errors are shown at every level
	Error(ctx context.Context, msg string, args ...any)
	// Result displays plain operation results to the user
	Result(ctx context.Context, msg string, args ...any)
	// Progress displays detailed information at the verbose level
	Progress(ctx context.Context, msg string, args ...any)
	// IsLevelEnabled checks if a given level would produce output
	IsLevelEnabled(level OutputLevel) bool
}

// Config holds the user output configuration.
type Config struct {
	// Level determines what output is shown to users
	Level OutputLevel
	// Writer is where user output goes (typically os.Stdout)
	Writer io.Writer
	// ErrorWriter is where error output goes (typically os.Stderr)
	ErrorWriter io.Writer
	// EnableColors enables colored output when the writer supports it
	EnableColors bool
	// Logger receives a diagnostic entry for every message; nil uses the global logger
	Logger logging.Logger
}

// DefaultConfig returns a default user output configuration.
func DefaultConfig() *Config {
	return &Config{
		Level:        OutputNormal,
		Writer:       os.Stdout,
		ErrorWriter:  os.Stderr,
		EnableColors: true,
	}
}

// userOutput implements UserOutput with termenv styling.
type userOutput struct {
	config *Config
	out    *termenv.Output
	errOut *termenv.Output
}

// NewUserOutput creates a new user output handler.
func NewUserOutput(config *Config) UserOutput {
	if config == nil {
		config = DefaultConfig()
	}
	if config.Writer == nil {
		config.Writer = os.Stdout
	}
	if config.ErrorWriter == nil {
		config.ErrorWriter = os.Stderr
	}
	return &userOutput{
		config: config,
		out:    newTermOutput(config.Writer, config.EnableColors),
		errOut: newTermOutput(config.ErrorWriter, config.EnableColors),
	}
}

func newTermOutput(w io.Writer, colors bool) *termenv.Output {
	if !colors {
		return termenv.NewOutput(w, termenv.WithProfile(termenv.Ascii))
	}
	return termenv.NewOutput(w)
}

func (u *userOutput) logger() logging.Logger {
	if u.config.Logger != nil {
		return u.config.Logger
	}
	return logging.GetGlobalLogger()
}

// styled prefixes the message with a label coloured for the output's profile.
func styled(out *termenv.Output, label, color, formatted string) string {
	prefix := out.String(label + ":").Foreground(out.Color(color)).Bold().String()
	return prefix + " " + formatted
}

// Info displays informational messages to the user.
func (u *userOutput) Info(ctx context.Context, msg string, args ...any) {
	if !u.IsLevelEnabled(OutputNormal) {
		return
	}
	formatted := fmt.Sprintf(msg, args...)
	u.logger().Debug(ctx, "User info message displayed", "message", formatted)
	_, _ = fmt.Fprintln(u.config.Writer, styled(u.out, "INFO", "6", formatted))
}

// Success displays success messages to the user.
func (u *userOutput) Success(ctx context.Context, msg string, args ...any) {
	if !u.IsLevelEnabled(OutputNormal) {
		return
	}
	formatted := fmt.Sprintf(msg, args...)
	u.logger().Info(ctx, "User success message displayed", "message", formatted)
	_, _ = fmt.Fprintln(u.config.Writer, styled(u.out, "SUCCESS", "2", formatted))
}

// Error displays error messages to the user.
func (u *userOutput) Error(ctx context.Context, msg string, args ...any) {
	formatted := fmt.Sprintf(msg, args...)
	u.logger().Error(ctx, "User error message displayed", "message", formatted)
	_, _ = fmt.Fprintln(u.config.ErrorWriter, styled(u.errOut, "ERROR", "1", formatted))
}

// Result displays operation results without decoration.
func (u *userOutput) Result(ctx context.Context, msg string, args ...any) {
	if !u.IsLevelEnabled(OutputNormal) {
		return
	}
	formatted := fmt.Sprintf(msg, args...)
	u.logger().Debug(ctx, "User result displayed", "message", formatted)
	_, _ = fmt.Fprintln(u.config.Writer, formatted)
}

// Progress displays detailed information, dimmed, at the verbose level.
func (u *userOutput) Progress(ctx context.Context, msg string, args ...any) {
	if !u.IsLevelEnabled(OutputVerbose) {
		return
	}
	formatted := fmt.Sprintf(msg, args...)
	u.logger().Debug(ctx, "User progress message displayed", "message", formatted)
	_, _ = fmt.Fprintln(u.config.Writer, u.out.String(formatted).Faint().String())
}

// IsLevelEnabled checks if a given level would produce output.
func (u *userOutput) IsLevelEnabled(level OutputLevel) bool {
	return level <= u.config.Level
}
