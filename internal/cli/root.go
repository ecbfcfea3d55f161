// Package cli provides the Cobra command structure for the texide CLI
// front-end: it wires flags, config discovery, and a terminal reporter
// around pkg/lint.Linter.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/texide/texide/internal/logging"
)

// BuildInfo holds build-time version information, set via main's ldflags.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root texide command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "texide",
		Short: "A pluggable linter for prose documents",
		Long: `texide lints Markdown and plain-text documents.

It parses documents into a unified prose AST, dispatches it through
externally-loaded WebAssembly rule plugins, and caches results so that
unchanged inputs are skipped on subsequent runs.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file (YAML or JSON)")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto", "colorize output: auto, always, never")

	rootCmd.AddCommand(newLintCommand())
	rootCmd.AddCommand(newRulesCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
