package runner_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/texide/texide/internal/runner"
	"github.com/texide/texide/pkg/config"
	"github.com/texide/texide/pkg/lint"
)

func writeFixture(t *testing.T, dir, relPath, content string) {
	t.Helper()
	full := filepath.Join(dir, relPath)
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
	require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
}

func TestRunProcessesAllDiscoveredFiles(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "a.md", "# A\n")
	writeFixture(t, dir, "b.md", "# B\n")
	writeFixture(t, dir, "c.md", "# C\n")

	linter, err := lint.New(context.Background(), config.NewLinterConfig(), dir)
	require.NoError(t, err)

	r := runner.New(linter)
	result, err := r.Run(context.Background(), runner.Options{Jobs: 2})
	require.NoError(t, err)

	require.Equal(t, 3, result.Stats.FilesDiscovered)
	require.Equal(t, 3, result.Stats.FilesProcessed)
	require.Zero(t, result.Stats.FilesErrored)
	require.Len(t, result.Files, 3)
}

func TestRunDeterministicPathOrder(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "z.md", "# Z\n")
	writeFixture(t, dir, "a.md", "# A\n")
	writeFixture(t, dir, "m.md", "# M\n")

	linter, err := lint.New(context.Background(), config.NewLinterConfig(), dir)
	require.NoError(t, err)

	r := runner.New(linter)
	result, err := r.Run(context.Background(), runner.Options{Jobs: 4})
	require.NoError(t, err)

	require.Len(t, result.Files, 3)
	for i := 1; i < len(result.Files); i++ {
		require.Less(t, result.Files[i-1].Path, result.Files[i].Path)
	}
}

func TestRunEmptyDiscoveryYieldsEmptyResult(t *testing.T) {
	dir := t.TempDir()
	linter, err := lint.New(context.Background(), config.NewLinterConfig(), dir)
	require.NoError(t, err)

	r := runner.New(linter)
	result, err := r.Run(context.Background(), runner.Options{})
	require.NoError(t, err)
	require.Zero(t, result.Stats.FilesDiscovered)
	require.Empty(t, result.Files)
}

func TestRunAutoJobsWhenUnset(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "only.md", "# Only\n")

	linter, err := lint.New(context.Background(), config.NewLinterConfig(), dir)
	require.NoError(t, err)

	r := runner.New(linter)
	result, err := r.Run(context.Background(), runner.Options{Jobs: 0})
	require.NoError(t, err)
	require.Equal(t, 1, result.Stats.FilesProcessed)
}
