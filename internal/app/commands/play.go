package commands

import (
	"context"
	"fmt"

	"github.com/gallows/hangman/internal/config"
	"github.com/gallows/hangman/internal/game"
	"github.com/gallows/hangman/internal/hangman"
	ctxutil "github.com/gallows/hangman/internal/observability/context"
	"github.com/gallows/hangman/internal/services"
	"github.com/gallows/hangman/internal/types"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// PlayOptions holds the options for the play command.
type PlayOptions struct {
	Word      string
	WordsFile string
	Seed      uint64
	Pure      bool
}

// PlayHandler handles the play command with dependency injection.
type PlayHandler struct {
	runtime Runtime
}

// NewPlayHandler creates a new play command handler.
func NewPlayHandler(runtime Runtime) *PlayHandler {
	return &PlayHandler{runtime: runtime}
}

// CreateCommand creates the play cobra command.
func (h *PlayHandler) CreateCommand() *cobra.Command {
	opts := &PlayOptions{}

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a game of hangman on the console",
		Long: `Play a game of hangman on the console.

You are asked for your name, a secret word is picked and you guess one letter
per turn. Seven wrong letters hang you. Entering anything that is not a letter
abandons the game.

Examples:
  hangman play                 # Random word from the configured list
  hangman play --word gopher   # Fixed secret word
  hangman play --seed 42       # Reproducible word pick
  hangman play --words-file animals.txt
  hangman play --pure          # Run the driver without failure handling`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return h.Execute(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Word, "word", "", "secret word to play with (overrides the word list)")
	cmd.Flags().StringVar(&opts.WordsFile, "words-file", "", "file with one candidate word per line")
	cmd.Flags().Uint64Var(&opts.Seed, "seed", 0, "seed for the word pick (0 = random)")
	cmd.Flags().BoolVar(&opts.Pure, "pure", false, "run the driver variant without failure handling")

	return cmd
}

// Execute plays one game against the configured console and dictionary.
func (h *PlayHandler) Execute(parentCtx context.Context, cmd *cobra.Command, opts *PlayOptions) error {
	ctx := parentCtx
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = ctxutil.WithOperation(ctx, "play")
	ctx = ctxutil.WithComponent(ctx, "cli")
	ctx = ctxutil.WithSessionID(ctx, uuid.NewString())

	logger := h.runtime.Logger()
	out := h.runtime.UI()

	settings := h.runtime.Settings()
	if opts.Word != "" {
		settings.Word = opts.Word
	}
	if opts.WordsFile != "" {
		settings.WordsFile = opts.WordsFile
	}
	if cmd != nil && cmd.Flags().Changed("seed") {
		settings.Seed = opts.Seed
	}
	validated := types.FlatMap(config.ReadWordsFile(settings), config.Validate)
	if err, failed := validated.FailureValue(); failed {
		logger.Error(ctx, "Invalid game settings", "error", err)
		return fmt.Errorf("invalid game settings: %w", err)
	}
	settings, _ = validated.SuccessValue()

	in, w := h.runtime.Streams()
	console := services.NewLiveConsole(ctx, in, w, logger)
	env := services.NewLiveEnvironment(console, settings.Dictionary())

	logger.Info(ctx, "Starting game", "pure", opts.Pure, "fixed_word", settings.Word != "")
	out.Progress(ctx, "Session %s", ctxutil.GetSessionID(ctx))

	if opts.Pure {
		h.finished(ctx, hangman.PureProgram.Run(env))
		return nil
	}

	hangman.Program.Run(env).Match(
		func(failure string) {
			logger.Warn(ctx, "Game failed", "failure", failure)
			out.Error(ctx, "%s", failure)
		},
		func(final game.State) {
			h.finished(ctx, final)
		},
	)
	return nil
}

func (h *PlayHandler) finished(ctx context.Context, final game.State) {
	ctx = ctxutil.WithPlayer(ctx, final.Player())
	h.runtime.Logger().Info(ctx, "Game finished",
		"status", final.Status().String(),
		"played", len(final.Played()),
		"misses", len(final.Misses()))
}
