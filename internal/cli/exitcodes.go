package cli

import "github.com/texide/texide/pkg/lint"

// Exit codes for the texide CLI, following sysexits.h conventions for the
// usage/config/internal/IO categories.
const (
	// ExitSuccess indicates successful execution with no issues.
	ExitSuccess = 0

	// ExitLintErrors indicates lint completed but found error-severity diagnostics.
	ExitLintErrors = 1

	// ExitLintWarnings indicates lint completed but found warnings (strict mode only).
	ExitLintWarnings = 2

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// exitCodeFromResults determines the exit code based on a batch's
// diagnostics and strict mode.
func exitCodeFromResults(results []lint.LintResult, strict bool) int {
	summary := lint.Summarize(results)

	if summary.BySeverity["error"] > 0 {
		return ExitLintErrors
	}
	if strict && summary.BySeverity["warning"] > 0 {
		return ExitLintWarnings
	}
	return ExitSuccess
}
