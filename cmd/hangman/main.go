// Package main provides the entry point for the hangman console game.
package main

import (
	"fmt"
	"os"

	"github.com/gallows/hangman/internal/app"
	"github.com/gallows/hangman/internal/app/commands"
)

// Build information (set by ldflags during build)
var (
	version   = "dev"
	buildTime = "unknown"
	gitCommit = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	deps, err := app.NewDependencies(app.DefaultDependencyConfig(version))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	application, err := app.New(deps, app.WithBuildInfo(commands.BuildInfo{
		Version:   version,
		BuildTime: buildTime,
		GitCommit: gitCommit,
	}))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer func() { _ = application.Shutdown() }()

	if err := application.Run(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
