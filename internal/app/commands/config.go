package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/gallows/hangman/internal/config"
	ctxutil "github.com/gallows/hangman/internal/observability/context"
	"github.com/spf13/cobra"
)

// ConfigHandler handles the config command.
type ConfigHandler struct {
	runtime Runtime
}

// NewConfigHandler creates a new config command handler.
func NewConfigHandler(runtime Runtime) *ConfigHandler {
	return &ConfigHandler{runtime: runtime}
}

// CreateCommand creates the config cobra command.
func (h *ConfigHandler) CreateCommand() *cobra.Command {
	var defaults bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Long: `Print the effective configuration as YAML.

The output can be saved as $HOME/.config/hangman/config.yaml and edited.

Examples:
  hangman config             # Configuration after files, .env and environment
  hangman config --default   # Built-in defaults`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return h.Execute(cmd.Context(), defaults)
		},
	}
	cmd.Flags().BoolVar(&defaults, "default", false, "print the built-in defaults instead")

	return cmd
}

// Execute renders the configuration.
func (h *ConfigHandler) Execute(parentCtx context.Context, defaults bool) error {
	ctx := parentCtx
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = ctxutil.WithOperation(ctx, "config")

	cfg := h.runtime.Settings()
	if defaults {
		cfg = config.DefaultConfig()
	}

	out, err := config.Marshal(cfg)
	if err != nil {
		h.runtime.Logger().Error(ctx, "Failed to render configuration", "error", err)
		return fmt.Errorf("failed to render configuration: %w", err)
	}

	h.runtime.UI().Result(ctx, "%s", strings.TrimSuffix(string(out), "\n"))
	return nil
}
