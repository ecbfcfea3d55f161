package report

import (
	"context"
	"fmt"

	"github.com/texide/texide/pkg/lint"
)

// Reporter formats and writes a batch of LintResults.
type Reporter interface {
	// Report writes formatted output for results and returns the total
	// diagnostic count and any write error.
	Report(ctx context.Context, results []lint.LintResult) (int, error)
}

// New builds a Reporter for the given Options, dispatching on Format.
func New(opts Options) (Reporter, error) {
	if opts.Writer == nil {
		opts.Writer = DefaultOptions().Writer
	}
	format := opts.Format
	if format == "" {
		format = FormatText
	}
	if !format.IsValid() {
		return nil, fmt.Errorf("unsupported format: %s", format)
	}

	switch format {
	case FormatJSON:
		return newJSONReporter(opts), nil
	default:
		return newTextReporter(opts), nil
	}
}
