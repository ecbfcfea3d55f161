// Package runner is an optional parallel convenience layer over
// pkg/lint.Linter. Each file already owns its own arena, AST, and
// rule-invocation context, and the Linter's plugin Registry and cache
// Manager are safe for concurrent use once loading completes, so a worker
// pool here only needs to fan file paths out and fan LintResults back in.
package runner

// Options controls a concurrent run.
type Options struct {
	// Patterns are the paths/patterns to discover and lint, forwarded to
	// Linter.Discover. Empty means the Linter's working directory root
	// (".").
	Patterns []string

	// Jobs is the maximum number of concurrent workers. 0 or negative
	// means "auto" (runtime.NumCPU()).
	Jobs int
}

func (o Options) effectivePatterns() []string {
	if len(o.Patterns) == 0 {
		return []string{"."}
	}
	return o.Patterns
}
