package lint

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/texide/texide/pkg/plugin"
)

func TestSummarizeCountsBySeverityAndRule(t *testing.T) {
	results := []LintResult{
		{
			Path: "a.md",
			Diagnostics: []plugin.Diagnostic{
				{RuleID: "no-todo", Severity: plugin.SeverityWarning},
				{RuleID: "no-todo", Severity: plugin.SeverityWarning},
			},
		},
		{
			Path:      "b.md",
			FromCache: true,
			Diagnostics: []plugin.Diagnostic{
				{RuleID: "line-length", Severity: plugin.SeverityError},
			},
		},
	}

	summary := Summarize(results)
	require.Equal(t, 3, summary.Total)
	require.Equal(t, 1, summary.FromCache)
	require.Equal(t, 2, summary.BySeverity[plugin.SeverityWarning])
	require.Equal(t, 1, summary.BySeverity[plugin.SeverityError])
	require.Equal(t, 2, summary.ByRuleID["no-todo"])
	require.Equal(t, 1, summary.ByRuleID["line-length"])
}

func TestSummarizeEmptyBatch(t *testing.T) {
	summary := Summarize(nil)
	require.Zero(t, summary.Total)
	require.Zero(t, summary.FromCache)
	require.Empty(t, summary.BySeverity)
	require.Empty(t, summary.ByRuleID)
}
