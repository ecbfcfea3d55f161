package runner

import "github.com/texide/texide/pkg/lint"

// FileOutcome wraps a single file's LintResult with any discovery/lint
// error that kept it from producing one.
type FileOutcome struct {
	Path   string
	Result *lint.LintResult
	Error  error
}

// Stats captures aggregate information about a run: the fields a read-only
// linter (no auto-fix) can populate.
type Stats struct {
	FilesDiscovered  int
	FilesProcessed   int
	FilesErrored     int
	FilesWithIssues  int
	FromCache        int
	DiagnosticsTotal int
}

// Result is the overall concurrent-run result, with files in deterministic
// (sorted-path) order regardless of completion order.
type Result struct {
	Files []FileOutcome
	Stats Stats
}

// HasIssues reports whether any diagnostics were found.
func (r *Result) HasIssues() bool {
	if r == nil {
		return false
	}
	return r.Stats.DiagnosticsTotal > 0
}

func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}
	if outcome.Result == nil {
		return
	}

	r.Stats.FilesProcessed++
	if outcome.Result.FromCache {
		r.Stats.FromCache++
	}

	diagCount := len(outcome.Result.Diagnostics)
	r.Stats.DiagnosticsTotal += diagCount
	if diagCount > 0 {
		r.Stats.FilesWithIssues++
	}
}
