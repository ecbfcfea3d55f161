package lint

import "github.com/texide/texide/pkg/plugin"

// LintResult is one file's outcome.
type LintResult struct {
	Path        string
	Diagnostics []plugin.Diagnostic
	FromCache   bool
}

// LintSummary aggregates per-severity, per-rule, and from-cache counts
// across a batch of LintResults.
type LintSummary struct {
	Total      int
	FromCache  int
	BySeverity map[plugin.Severity]int
	ByRuleID   map[string]int
}

// Summarize aggregates a batch of LintResults into a LintSummary.
func Summarize(results []LintResult) LintSummary {
	summary := LintSummary{
		BySeverity: make(map[plugin.Severity]int),
		ByRuleID:   make(map[string]int),
	}
	for _, r := range results {
		if r.FromCache {
			summary.FromCache++
		}
		for _, d := range r.Diagnostics {
			summary.Total++
			summary.BySeverity[d.Severity]++
			summary.ByRuleID[d.RuleID]++
		}
	}
	return summary
}
