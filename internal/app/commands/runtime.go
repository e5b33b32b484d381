// Package commands provides CLI command implementations using dependency injection.
package commands

import (
	"io"

	"github.com/gallows/hangman/internal/config"
	"github.com/gallows/hangman/internal/observability/logging"
	"github.com/gallows/hangman/internal/ui"
)

// Runtime resolves the collaborators a command runs with. The root command loads
// configuration before any subcommand executes, so handlers resolve them in Execute.
type Runtime interface {
	Logger() logging.Logger
	UI() ui.UserOutput
	Settings() config.Config
	Streams() (io.Reader, io.Writer)
}
