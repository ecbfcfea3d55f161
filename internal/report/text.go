package report

import (
	"bufio"
	"context"
	"fmt"

	"github.com/texide/texide/pkg/lint"
	"github.com/texide/texide/pkg/plugin"
)

// severityOrDefault treats an unset Severity as a warning.
func severityOrDefault(sev plugin.Severity) plugin.Severity {
	if sev == "" {
		return plugin.SeverityWarning
	}
	return sev
}

// textReporter formats results as styled terminal output, one file path
// per group followed by its diagnostics as byte-range/message/rule-id lines.
type textReporter struct {
	opts   Options
	styles *styles
	bw     *bufio.Writer
}

func newTextReporter(opts Options) *textReporter {
	return &textReporter{
		opts:   opts,
		styles: newStyles(isColorEnabled(opts.Color, opts.Writer)),
		bw:     bufio.NewWriter(opts.Writer),
	}
}

// Report implements Reporter.
func (r *textReporter) Report(_ context.Context, results []lint.LintResult) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if len(results) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw, r.styles.Success.Render("No files to check."))
		}
		return 0, nil
	}

	var total int
	for _, res := range results {
		if len(res.Diagnostics) == 0 {
			continue
		}

		fmt.Fprintln(r.bw, r.styles.FilePath.Render(res.Path))
		for _, d := range res.Diagnostics {
			total++
			fmt.Fprintf(r.bw, "  %s %s  %s\n",
				r.styles.forSeverity(d.Severity).Render(string(severityOrDefault(d.Severity))),
				r.styles.Dim.Render(fmt.Sprintf("[%d:%d]", d.Range[0], d.Range[1])),
				fmt.Sprintf("%s %s", d.Message, r.styles.RuleID.Render(d.RuleID)),
			)
		}
		fmt.Fprintln(r.bw)
	}

	if r.opts.ShowSummary {
		fmt.Fprint(r.bw, r.formatSummary(results, total))
	}

	return total, nil
}

func (r *textReporter) formatSummary(results []lint.LintResult, total int) string {
	summary := lint.Summarize(results)
	if total == 0 {
		return r.styles.Success.Render(fmt.Sprintf("No issues found (%d files checked, %d from cache).\n",
			len(results), summary.FromCache))
	}
	return r.styles.Dim.Render(fmt.Sprintf("%d issue(s) across %d file(s) (%d files from cache)\n",
		summary.Total, len(results), summary.FromCache))
}
