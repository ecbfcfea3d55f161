package cache_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/texide/texide/pkg/cache"
	"github.com/texide/texide/pkg/plugin"
)

func fixedNow() time.Time { return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC) }

func TestLookupMissWhenEmpty(t *testing.T) {
	m := cache.NewManager(filepath.Join(t.TempDir(), "cache.json"), true)
	_, ok := m.Lookup("file.md", []byte("hello"), cache.ContentHash([]byte("cfg")), map[string]string{})
	require.False(t, ok)
}

func TestStoreThenLookupHit(t *testing.T) {
	m := cache.NewManager(filepath.Join(t.TempDir(), "cache.json"), true)
	content := []byte("hello world")
	cfgHash := cache.ContentHash([]byte("cfg-v1"))
	versions := map[string]string{"no-bare-urls": "1.0.0"}
	diags := []plugin.Diagnostic{{RuleID: "no-bare-urls", Message: "bare url"}}

	require.NoError(t, m.Store("file.md", content, cfgHash, versions, diags, fixedNow))

	entry, ok := m.Lookup("file.md", content, cfgHash, versions)
	require.True(t, ok)
	require.Equal(t, diags, entry.Diagnostics)
}

func TestLookupMissOnContentChange(t *testing.T) {
	m := cache.NewManager(filepath.Join(t.TempDir(), "cache.json"), true)
	cfgHash := cache.ContentHash([]byte("cfg"))
	versions := map[string]string{}

	require.NoError(t, m.Store("file.md", []byte("v1"), cfgHash, versions, nil, fixedNow))
	_, ok := m.Lookup("file.md", []byte("v2"), cfgHash, versions)
	require.False(t, ok)
}

func TestLookupMissOnConfigChange(t *testing.T) {
	m := cache.NewManager(filepath.Join(t.TempDir(), "cache.json"), true)
	content := []byte("same content")
	versions := map[string]string{}

	require.NoError(t, m.Store("file.md", content, cache.ContentHash([]byte("cfg-a")), versions, nil, fixedNow))
	_, ok := m.Lookup("file.md", content, cache.ContentHash([]byte("cfg-b")), versions)
	require.False(t, ok)
}

func TestLookupMissOnRuleVersionChange(t *testing.T) {
	m := cache.NewManager(filepath.Join(t.TempDir(), "cache.json"), true)
	content := []byte("same content")
	cfgHash := cache.ContentHash([]byte("cfg"))

	require.NoError(t, m.Store("file.md", content, cfgHash, map[string]string{"r": "1.0.0"}, nil, fixedNow))
	_, ok := m.Lookup("file.md", content, cfgHash, map[string]string{"r": "2.0.0"})
	require.False(t, ok)

	_, ok = m.Lookup("file.md", content, cfgHash, map[string]string{"r": "1.0.0", "s": "1.0.0"})
	require.False(t, ok)
}

func TestLookupAlwaysMissWhenDisabled(t *testing.T) {
	m := cache.NewManager(filepath.Join(t.TempDir(), "cache.json"), false)
	content := []byte("x")
	cfgHash := cache.ContentHash([]byte("cfg"))

	require.NoError(t, m.Store("file.md", content, cfgHash, nil, nil, fixedNow))
	_, ok := m.Lookup("file.md", content, cfgHash, nil)
	require.False(t, ok)
}

func TestSaveThenLoadRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")
	ctx := context.Background()

	m1 := cache.NewManager(path, true)
	content := []byte("persisted content")
	cfgHash := cache.ContentHash([]byte("cfg"))
	versions := map[string]string{"r": "1.0.0"}
	diags := []plugin.Diagnostic{{RuleID: "r", Message: "m"}}
	require.NoError(t, m1.Store("file.md", content, cfgHash, versions, diags, fixedNow))
	m1.Save(ctx)

	m2 := cache.NewManager(path, true)
	m2.Load(ctx)
	entry, ok := m2.Lookup("file.md", content, cfgHash, versions)
	require.True(t, ok)
	require.Equal(t, diags, entry.Diagnostics)
}

func TestLoadCorruptFileYieldsEmptyCache(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))

	m := cache.NewManager(path, true)
	m.Load(context.Background())

	_, ok := m.Lookup("file.md", []byte("x"), cache.ContentHash([]byte("cfg")), nil)
	require.False(t, ok)
}

func TestLoadVersionMismatchYieldsEmptyCache(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"version":999,"entries":{}}`), 0o644))

	m := cache.NewManager(path, true)
	m.Load(context.Background())

	_, ok := m.Lookup("file.md", []byte("x"), cache.ContentHash([]byte("cfg")), nil)
	require.False(t, ok)
}
