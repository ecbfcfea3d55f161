// Package main is the entry point for the texide CLI.
package main

import (
	"errors"
	"os"

	"github.com/texide/texide/internal/cli"
	"github.com/texide/texide/internal/logging"
)

// Build-time variables set via ldflags.
//
//nolint:gochecknoglobals // version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, cli.ErrLintIssuesFound) {
			logging.Default().Error("command failed", logging.FieldError, err)
			return cli.ExitInternalError
		}
		return cli.ExitLintErrors
	}

	return cli.ExitSuccess
}
