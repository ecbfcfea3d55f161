package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/texide/texide/internal/logging"
	"github.com/texide/texide/internal/report"
	"github.com/texide/texide/internal/runner"
	"github.com/texide/texide/pkg/lint"
)

// ErrLintIssuesFound is returned when lint issues are found, a sentinel
// main() uses to pick an exit code without logging it as a failure.
var ErrLintIssuesFound = errors.New("lint issues found")

type lintFlags struct {
	format  string
	compact bool
	noCache bool
	strict  bool
	jobs    int
	plugins []string
}

func newLintCommand() *cobra.Command {
	flags := &lintFlags{}

	cmd := &cobra.Command{
		Use:   "lint [patterns...]",
		Short: "Lint Markdown and plain-text files",
		Long: `Lint files for prose issues using loaded rule plugins.

By default, lints the current directory and subdirectories. Specify
patterns to lint specific files or directories.

Examples:
  texide lint                    lint the current directory
  texide lint docs/              lint the docs directory
  texide lint README.md          lint a single file
  texide lint --format json      output JSON for CI
  texide lint --jobs 4           lint concurrently across 4 workers`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(cmd, args, flags)
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "use compact JSON output")
	cmd.Flags().BoolVar(&flags.noCache, "no-cache", false, "disable the on-disk result cache")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "treat warnings as errors for exit code")
	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "number of parallel workers (0 = sequential)")
	cmd.Flags().StringSliceVar(&flags.plugins, "plugin", nil, "additional rule plugin paths to load")

	return cmd
}

func runLint(cmd *cobra.Command, args []string, flags *lintFlags) error {
	ctx := cmd.Context()
	logger := logging.Default()

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if flags.noCache {
		cfg.Cache = false
	}
	cfg.Plugins = append(cfg.Plugins, flags.plugins...)

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	linter, err := lint.New(ctx, cfg, workDir)
	if err != nil {
		return fmt.Errorf("initialize linter: %w", err)
	}
	defer linter.Close(ctx)

	patterns := args
	if len(patterns) == 0 {
		patterns = []string{"."}
	}

	logger.Debug("starting lint run",
		logging.FieldPaths, patterns,
		logging.FieldWorkingDir, workDir,
		logging.FieldJobs, flags.jobs,
	)

	var results []lint.LintResult
	if flags.jobs > 0 {
		run := runner.New(linter)
		runResult, err := run.Run(ctx, runner.Options{Patterns: patterns, Jobs: flags.jobs})
		if err != nil {
			return fmt.Errorf("lint run failed: %w", err)
		}
		for _, outcome := range runResult.Files {
			if outcome.Error != nil {
				logger.Warn("skipping file", logging.FieldPath, outcome.Path, logging.FieldError, outcome.Error)
				continue
			}
			results = append(results, *outcome.Result)
		}
	} else {
		results, err = linter.LintPatterns(ctx, patterns)
		if err != nil {
			return fmt.Errorf("lint run failed: %w", err)
		}
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	rep, err := report.New(report.Options{
		Writer:      cmd.OutOrStdout(),
		Format:      report.Format(flags.format),
		Color:       colorMode,
		ShowSummary: true,
		Compact:     flags.compact,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(ctx, results); err != nil {
		return fmt.Errorf("report results: %w", err)
	}

	if exitCodeFromResults(results, flags.strict) != ExitSuccess {
		return ErrLintIssuesFound
	}
	return nil
}
