// Package lint implements the Linter engine: the central coordinator that
// discovers files, selects a parser, consults the cache, dispatches to the
// plugin host, and aggregates diagnostics.
package lint

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/texide/texide/internal/logging"
	"github.com/texide/texide/pkg/ast"
	"github.com/texide/texide/pkg/cache"
	"github.com/texide/texide/pkg/config"
	"github.com/texide/texide/pkg/parse"
	"github.com/texide/texide/pkg/parse/markdown"
	"github.com/texide/texide/pkg/parse/plaintext"
	"github.com/texide/texide/pkg/plugin"
)

// Linter is the central coordinator: it owns a plugin Registry, a cache
// Manager, and a compiled globset. Per-file work is sequential; concurrent
// batch drivers own their own fan-out (see internal/runner).
type Linter struct {
	config  *config.LinterConfig
	workDir string

	parsers *parse.Registry
	plugins *plugin.Registry
	cache   *cache.Manager
	globs   *config.GlobSet

	now func() time.Time
}

// New initializes a Linter: an empty plugin host, a cache attempting an
// on-disk load, and compiled include/exclude globs.
func New(ctx context.Context, cfg *config.LinterConfig, workDir string) (*Linter, error) {
	if cfg == nil {
		cfg = config.NewLinterConfig()
	}

	globs, err := config.NewGlobSet(cfg.Include, cfg.Exclude)
	if err != nil {
		return nil, newError(Config, err, "compile globs")
	}

	resolvedWorkDir := workDir
	if resolvedWorkDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, newError(Io, err, "resolve working directory")
		}
		resolvedWorkDir = wd
	}

	cachePath := filepath.Join(resolvedWorkDir, cfg.CacheDir, "cache.json")
	cacheMgr := cache.NewManager(cachePath, cfg.Cache)
	cacheMgr.Load(ctx)

	l := &Linter{
		config:  cfg,
		workDir: resolvedWorkDir,
		parsers: parse.NewRegistry(markdown.New(), plaintext.New()),
		plugins: plugin.NewRegistry(),
		cache:   cacheMgr,
		globs:   globs,
		now:     time.Now,
	}
	for _, path := range cfg.Plugins {
		if err := l.LoadRule(ctx, path); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// LoadRule forwards to the plugin host, wrapping any failure as a
// Plugin-kind Error.
func (l *Linter) LoadRule(ctx context.Context, path string) error {
	if err := l.plugins.LoadRule(ctx, path); err != nil {
		return newError(Plugin, err, "load rule %s", path)
	}
	return nil
}

// LintPatterns discovers files matching patterns under the Linter's working
// directory and lints each.
func (l *Linter) LintPatterns(ctx context.Context, patterns []string) ([]LintResult, error) {
	files, err := l.Discover(ctx, patterns)
	if err != nil {
		return nil, err
	}
	return l.lintBatch(ctx, files), nil
}

// Discover resolves patterns to a sorted, deduplicated list of candidate
// file paths under the Linter's working directory, applying the configured
// include/exclude globset. Exported so a concurrent front-end
// (internal/runner) can discover once and then fan the resulting paths out
// to its own worker pool.
func (l *Linter) Discover(ctx context.Context, patterns []string) ([]string, error) {
	return discover(ctx, l.workDir, patterns, l.globs)
}

// LintFiles lints exactly the given paths, in the order given.
func (l *Linter) LintFiles(ctx context.Context, paths []string) ([]LintResult, error) {
	return l.lintBatch(ctx, paths), nil
}

// lintBatch runs LintFile over every path, logging and skipping per-file
// I/O and parse failures so the batch continues and returns successfully,
// then persists the cache once for the whole batch.
func (l *Linter) lintBatch(ctx context.Context, paths []string) []LintResult {
	results := make([]LintResult, 0, len(paths))
	for _, path := range paths {
		result, err := l.LintFile(ctx, path)
		if err != nil {
			logging.FromContext(ctx).Warn("skipping file", logging.FieldPath, path, logging.FieldError, err)
			continue
		}
		results = append(results, result)
	}
	l.SaveCache(ctx)
	return results
}

// LintFile runs the per-file pipeline (read, hash, cache lookup, parse,
// run rules, cache store) for a single path, without persisting the cache.
// It is exported so a concurrent front-end (internal/runner) can drive
// many files through the same Linter while controlling when the cache is
// saved; the plugin Registry and cache Manager are each safe for
// concurrent use once loading is complete.
func (l *Linter) LintFile(ctx context.Context, path string) (LintResult, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return LintResult{}, newError(Io, err, "read %s", path)
	}
	if !utf8.Valid(content) {
		return LintResult{}, newError(Io, nil, "%s is not valid UTF-8", path)
	}

	configHash, err := l.configHash()
	if err != nil {
		return LintResult{}, newError(Internal, err, "hash config")
	}
	ruleVersions := l.plugins.RuleVersions()

	if entry, ok := l.cache.Lookup(path, content, configHash, ruleVersions); ok {
		return LintResult{Path: path, Diagnostics: entry.Diagnostics, FromCache: true}, nil
	}

	parser, ok := l.selectParser(path)
	if !ok {
		parser = plaintext.New()
	}

	arena := ast.NewArena()
	root, err := parser.Parse(arena, content)
	if err != nil {
		return LintResult{}, newError(Parse, err, "parse %s", path)
	}

	diagnostics, err := l.plugins.RunAllRules(ctx, root, string(content), path)
	if err != nil {
		return LintResult{}, newError(Plugin, err, "run rules on %s", path)
	}

	if err := l.cache.Store(path, content, configHash, ruleVersions, diagnostics, l.now); err != nil {
		logging.FromContext(ctx).Warn("cache store failed", logging.FieldPath, path, logging.FieldError, err)
	}

	return LintResult{Path: path, Diagnostics: diagnostics, FromCache: false}, nil
}

// selectParser picks a parser by extension: Markdown for
// {md, markdown, mdown, mkdn, mkd}, else {txt, text}, else plain-text as
// the default.
func (l *Linter) selectParser(path string) (parse.Parser, bool) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	return l.parsers.For(ext)
}

// configHash computes the cryptographic hash of the Linter's configuration,
// used by the cache's validity predicate.
func (l *Linter) configHash() (cache.Hash, error) {
	canonical, err := l.config.CanonicalJSON()
	if err != nil {
		return cache.Hash{}, err
	}
	return cache.ContentHash(canonical), nil
}

// LoadedRuleNames returns the plugin host's loaded rule names sorted
// lexically, for listing callers (e.g. a `rules` CLI subcommand) that want
// a stable order distinct from load order.
func (l *Linter) LoadedRuleNames() []string {
	names := l.plugins.LoadedRules()
	sort.Strings(names)
	return names
}

// Manifest returns the manifest for a loaded rule by name, for listing
// callers (e.g. a `rules` CLI subcommand).
func (l *Linter) Manifest(name string) (plugin.Manifest, bool) {
	return l.plugins.GetManifest(name)
}

// SaveCache persists the cache's current entry set. Callers driving
// per-file work themselves (internal/runner) must call this once after
// their batch completes; LintFiles/LintPatterns already do this.
func (l *Linter) SaveCache(ctx context.Context) {
	l.cache.Save(ctx)
}

// Close releases the plugin host's loaded modules.
func (l *Linter) Close(ctx context.Context) error {
	return l.plugins.Close(ctx)
}
