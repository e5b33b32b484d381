package commands

import (
	"context"

	"github.com/spf13/cobra"
)

// BuildInfo describes the running binary.
type BuildInfo struct {
	Version   string
	BuildTime string
	GitCommit string
}

// NewVersionCommand creates the version cobra command.
func NewVersionCommand(runtime Runtime, info BuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			runtime.UI().Result(ctx, "hangman %s", info.Version)
			runtime.UI().Progress(ctx, "built %s from %s", info.BuildTime, info.GitCommit)
			runtime.Logger().Info(ctx, "Version command executed", "version", info.Version)
			return nil
		},
	}
}
