package report

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/texide/texide/pkg/lint"
)

// jsonOutput is the top-level JSON structure for machine consumers.
type jsonOutput struct {
	Version string           `json:"version"`
	Files   []jsonFileResult `json:"files"`
	Summary jsonSummary      `json:"summary"`
}

type jsonFileResult struct {
	Path        string           `json:"path"`
	Diagnostics []jsonDiagnostic `json:"diagnostics"`
	FromCache   bool             `json:"fromCache"`
}

type jsonDiagnostic struct {
	RuleID   string `json:"ruleId"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Start    int    `json:"start"`
	End      int    `json:"end"`
}

type jsonSummary struct {
	FilesChecked    int            `json:"filesChecked"`
	FilesWithIssues int            `json:"filesWithIssues"`
	FilesFromCache  int            `json:"filesFromCache"`
	TotalIssues     int            `json:"totalIssues"`
	BySeverity      map[string]int `json:"bySeverity"`
}

// jsonReporter formats results as JSON.
type jsonReporter struct {
	opts Options
	bw   *bufio.Writer
}

func newJSONReporter(opts Options) *jsonReporter {
	return &jsonReporter{opts: opts, bw: bufio.NewWriter(opts.Writer)}
}

// Report implements Reporter.
func (r *jsonReporter) Report(_ context.Context, results []lint.LintResult) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := r.buildOutput(results)

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}
	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}
	return output.Summary.TotalIssues, nil
}

func (r *jsonReporter) buildOutput(results []lint.LintResult) *jsonOutput {
	output := &jsonOutput{
		Version: "1.0.0",
		Files:   make([]jsonFileResult, 0, len(results)),
		Summary: jsonSummary{BySeverity: make(map[string]int)},
	}

	for _, res := range results {
		fileResult := jsonFileResult{
			Path:        res.Path,
			Diagnostics: make([]jsonDiagnostic, 0, len(res.Diagnostics)),
			FromCache:   res.FromCache,
		}

		for _, d := range res.Diagnostics {
			severity := string(severityOrDefault(d.Severity))
			fileResult.Diagnostics = append(fileResult.Diagnostics, jsonDiagnostic{
				RuleID:   d.RuleID,
				Severity: severity,
				Message:  d.Message,
				Start:    d.Range[0],
				End:      d.Range[1],
			})
			output.Summary.TotalIssues++
			output.Summary.BySeverity[severity]++
		}

		if len(fileResult.Diagnostics) > 0 {
			output.Summary.FilesWithIssues++
		}
		if fileResult.FromCache {
			output.Summary.FilesFromCache++
		}

		output.Files = append(output.Files, fileResult)
		output.Summary.FilesChecked++
	}

	return output
}
