package lint

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/texide/texide/pkg/config"
)

// discover resolves each input pattern against workDir and returns a sorted,
// deduplicated list of absolute candidate paths. A candidate qualifies only
// if it is a regular file, matches pattern itself, matches the include
// globset (if non-empty), and does not match the exclude globset.
//
// A pattern that names an existing file or directory is resolved literally
// (every descendant of a directory trivially matches it); otherwise it is
// treated as a glob and matched against every regular file under workDir.
func discover(ctx context.Context, workDir string, patterns []string, globs *config.GlobSet) ([]string, error) {
	seen := make(map[string]struct{})
	var files []string

	for _, pattern := range patterns {
		select {
		case <-ctx.Done():
			return nil, newError(Internal, ctx.Err(), "discovery cancelled")
		default:
		}

		absPath := pattern
		if !filepath.IsAbs(pattern) {
			absPath = filepath.Join(workDir, pattern)
		}
		absPath = filepath.Clean(absPath)

		info, err := os.Stat(absPath)
		switch {
		case err == nil && info.IsDir():
			discovered, err := walkDirectory(ctx, absPath, workDir, globs, "")
			if err != nil {
				return nil, err
			}
			addFiles(seen, &files, discovered)

		case err == nil:
			if matchesFile(absPath, workDir, globs) {
				addFiles(seen, &files, []string{absPath})
			}

		case os.IsNotExist(err):
			discovered, err := walkDirectory(ctx, workDir, workDir, globs, pattern)
			if err != nil {
				return nil, err
			}
			addFiles(seen, &files, discovered)

		default:
			return nil, newError(Io, err, "stat %s", pattern)
		}
	}

	sort.Strings(files)
	return files, nil
}

func addFiles(seen map[string]struct{}, files *[]string, found []string) {
	for _, f := range found {
		if _, ok := seen[f]; !ok {
			seen[f] = struct{}{}
			*files = append(*files, f)
		}
	}
}

// walkDirectory walks root and returns every matching regular file. When
// pattern is non-empty, a file must also glob-match it (relative to
// workDir) to qualify; an empty pattern skips that check, for callers whose
// root itself already satisfies the pattern (e.g. a literal directory path).
func walkDirectory(ctx context.Context, root, workDir string, globs *config.GlobSet, pattern string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if walkErr != nil {
			if os.IsPermission(walkErr) {
				return nil
			}
			return walkErr
		}

		if entry.IsDir() {
			if path != root && strings.HasPrefix(entry.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}

		if strings.HasPrefix(entry.Name(), ".") {
			return nil
		}

		if pattern != "" {
			relPath, err := filepath.Rel(workDir, path)
			if err != nil {
				relPath = path
			}
			if !matchesPattern(pattern, filepath.ToSlash(relPath)) {
				return nil
			}
		}

		if matchesFile(path, workDir, globs) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, newError(Io, err, "walk directory %s", root)
	}
	return files, nil
}

// matchesPattern reports whether relPath (or its base name) glob-matches
// pattern, using the same doublestar semantics as the include/exclude
// globset.
func matchesPattern(pattern, relPath string) bool {
	if ok, err := doublestar.Match(pattern, relPath); err == nil && ok {
		return true
	}
	if ok, err := doublestar.Match(pattern, filepath.Base(relPath)); err == nil && ok {
		return true
	}
	return false
}

// matchesFile reports whether path is a regular file matched by globs'
// include/exclude precedence, relative to workDir.
func matchesFile(path, workDir string, globs *config.GlobSet) bool {
	info, err := os.Lstat(path)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}

	relPath, err := filepath.Rel(workDir, path)
	if err != nil {
		relPath = path
	}
	return globs.Matches(relPath)
}
