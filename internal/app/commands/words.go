package commands

import (
	"context"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gallows/hangman/internal/config"
	ctxutil "github.com/gallows/hangman/internal/observability/context"
	"github.com/spf13/cobra"
)

// WordsHandler handles the words command.
type WordsHandler struct {
	runtime Runtime
}

// NewWordsHandler creates a new words command handler.
func NewWordsHandler(runtime Runtime) *WordsHandler {
	return &WordsHandler{runtime: runtime}
}

// CreateCommand creates the words cobra command.
func (h *WordsHandler) CreateCommand() *cobra.Command {
	var countOnly bool

	cmd := &cobra.Command{
		Use:           "words",
		Short:         "List the words secret words are picked from",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return h.Execute(cmd.Context(), countOnly)
		},
	}
	cmd.Flags().BoolVar(&countOnly, "count-only", false, "show only the number of words")

	return cmd
}

// Execute prints the configured word list followed by its size.
func (h *WordsHandler) Execute(parentCtx context.Context, countOnly bool) error {
	ctx := parentCtx
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = ctxutil.WithOperation(ctx, "words")

	settings := h.runtime.Settings()
	words := settings.Words
	if len(words) == 0 {
		words = config.DefaultConfig().Words
	}

	out := h.runtime.UI()
	if !countOnly {
		out.Result(ctx, "%s", strings.Join(words, "\n"))
	}
	out.Info(ctx, "%s words available", humanize.Comma(int64(len(words))))
	if settings.Word != "" {
		out.Info(ctx, "Fixed word configured; play always uses it")
	}

	h.runtime.Logger().Debug(ctx, "Listed words", "count", len(words))
	return nil
}
