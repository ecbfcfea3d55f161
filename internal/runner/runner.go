package runner

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/texide/texide/pkg/lint"
)

// Runner drives a lint.Linter's per-file pipeline across a worker pool:
// discover, fan out paths to workers, fan in results, accumulate.
type Runner struct {
	Linter *lint.Linter
}

// New creates a Runner over the given Linter.
func New(linter *lint.Linter) *Runner {
	return &Runner{Linter: linter}
}

// Run discovers files matching opts.Patterns and lints them concurrently,
// returning a deterministically path-ordered Result. The cache is saved
// once after every worker has finished.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := r.Linter.Discover(ctx, opts.effectivePatterns())
	if err != nil {
		return nil, err
	}

	result := &Result{Files: make([]FileOutcome, 0, len(files))}
	result.Stats.FilesDiscovered = len(files)

	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	if jobs > len(files) {
		jobs = len(files)
	}

	workCh := make(chan string)
	outCh := make(chan FileOutcome)

	var wg sync.WaitGroup
	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.worker(ctx, workCh, outCh)
		}()
	}

	go func() {
		defer close(workCh)
		for _, path := range files {
			select {
			case <-ctx.Done():
				return
			case workCh <- path:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	outcomes := make(map[string]FileOutcome, len(files))
	for outcome := range outCh {
		outcomes[outcome.Path] = outcome
	}

	for _, path := range files {
		if outcome, ok := outcomes[path]; ok {
			result.accumulate(outcome)
		}
	}

	r.Linter.SaveCache(ctx)

	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}
	return result, nil
}

func (r *Runner) worker(ctx context.Context, workCh <-chan string, outCh chan<- FileOutcome) {
	for path := range workCh {
		select {
		case <-ctx.Done():
			return
		default:
		}

		outcome := FileOutcome{Path: path}
		lintResult, err := r.Linter.LintFile(ctx, path)
		if err != nil {
			outcome.Error = err
		} else {
			outcome.Result = &lintResult
		}

		select {
		case <-ctx.Done():
			return
		case outCh <- outcome:
		}
	}
}
