package config

import (
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// GlobSet compiles a config's Include/Exclude patterns into a fast matcher
// backed by doublestar's "**" semantics.
type GlobSet struct {
	include []string
	exclude []string
}

// NewGlobSet compiles include/exclude patterns, validating each against
// doublestar's pattern grammar the same way as a dry-run Match against an
// empty path.
func NewGlobSet(include, exclude []string) (*GlobSet, error) {
	for _, pattern := range include {
		if _, err := doublestar.Match(pattern, ""); err != nil {
			return nil, invalidPatternError(pattern)
		}
	}
	for _, pattern := range exclude {
		if _, err := doublestar.Match(pattern, ""); err != nil {
			return nil, invalidPatternError(pattern)
		}
	}
	return &GlobSet{include: include, exclude: exclude}, nil
}

// Matches reports whether relPath should be linted: excluded patterns win
// over included ones, and an empty include list matches everything.
func (g *GlobSet) Matches(relPath string) bool {
	relPath = filepath.ToSlash(relPath)

	if g.matchesAny(g.exclude, relPath) {
		return false
	}
	if len(g.include) == 0 {
		return true
	}
	return g.matchesAny(g.include, relPath)
}

func (g *GlobSet) matchesAny(patterns []string, relPath string) bool {
	for _, pattern := range patterns {
		ok, err := doublestar.Match(pattern, relPath)
		if err == nil && ok {
			return true
		}
		if ok, err := doublestar.Match(pattern, filepath.Base(relPath)); err == nil && ok {
			return true
		}
	}
	return false
}

type invalidPatternError string

func (e invalidPatternError) Error() string {
	return "invalid glob pattern: " + string(e)
}
