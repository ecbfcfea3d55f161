package lint

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/texide/texide/pkg/config"
)

func writeFixture(t *testing.T, dir, relPath, content string) {
	t.Helper()
	full := filepath.Join(dir, relPath)
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
	require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
}

func TestDiscoverSortedAndDeduplicated(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "b.md", "b")
	writeFixture(t, dir, "a.md", "a")
	writeFixture(t, dir, "docs/c.md", "c")

	globs, err := config.NewGlobSet(nil, nil)
	require.NoError(t, err)

	files, err := discover(context.Background(), dir, []string{".", "a.md"}, globs)
	require.NoError(t, err)

	require.Len(t, files, 3)
	for i := 1; i < len(files); i++ {
		require.Less(t, files[i-1], files[i])
	}
}

func TestDiscoverExcludeTakesPrecedence(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "keep.md", "keep")
	writeFixture(t, dir, "vendor/skip.md", "skip")

	globs, err := config.NewGlobSet(nil, []string{"vendor/**"})
	require.NoError(t, err)

	files, err := discover(context.Background(), dir, []string{"."}, globs)
	require.NoError(t, err)

	require.Len(t, files, 1)
	require.Equal(t, filepath.Join(dir, "keep.md"), files[0])
}

func TestDiscoverSkipsHiddenEntries(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "visible.md", "v")
	writeFixture(t, dir, ".hidden/ignored.md", "h")

	globs, err := config.NewGlobSet(nil, nil)
	require.NoError(t, err)

	files, err := discover(context.Background(), dir, []string{"."}, globs)
	require.NoError(t, err)

	require.Len(t, files, 1)
	require.Equal(t, filepath.Join(dir, "visible.md"), files[0])
}

func TestDiscoverIncludeRestricts(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "doc.md", "d")
	writeFixture(t, dir, "notes.txt", "n")

	globs, err := config.NewGlobSet([]string{"*.md"}, nil)
	require.NoError(t, err)

	files, err := discover(context.Background(), dir, []string{"."}, globs)
	require.NoError(t, err)

	require.Len(t, files, 1)
	require.Equal(t, filepath.Join(dir, "doc.md"), files[0])
}
