package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/texide/texide/internal/logging"
	"github.com/texide/texide/pkg/fsutil"
	"github.com/texide/texide/pkg/plugin"
)

// fileFormatVersion is the on-disk envelope's version tag. A mismatch is
// treated as an empty cache.
const fileFormatVersion = 1

// envelope is the single on-disk cache artifact: a version tag followed by
// a canonically-serialized map of path to Entry.
type envelope struct {
	Version int              `json:"version"`
	Entries map[string]Entry `json:"entries"`
}

// Manager answers "is this file's prior result still valid?" in O(1) per
// query and persists the answer set as a single artifact under a configured
// cache directory.
type Manager struct {
	path    string
	enabled bool

	mu      sync.RWMutex
	entries map[string]Entry
	hasher  *hasher
}

// NewManager builds a Manager backed by the artifact at path (inside the
// configured cache directory). enabled=false makes every Lookup a miss and
// every Store a no-op.
func NewManager(path string, enabled bool) *Manager {
	return &Manager{
		path:    path,
		enabled: enabled,
		entries: make(map[string]Entry),
		hasher:  newHasher(),
	}
}

// Load reads the on-disk artifact if present. Corruption or a version-tag
// mismatch is non-fatal: it yields an empty cache and a logged warning.
func (m *Manager) Load(ctx context.Context) {
	if !m.enabled {
		return
	}

	raw, err := os.ReadFile(m.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logging.FromContext(ctx).Warn("cache load failed, starting empty", "path", m.path, "error", err)
		}
		return
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		logging.FromContext(ctx).Warn("cache file corrupt, starting empty", "path", m.path, "error", err)
		return
	}
	if env.Version != fileFormatVersion {
		logging.FromContext(ctx).Warn("cache version mismatch, starting empty", "path", m.path, "got", env.Version, "want", fileFormatVersion)
		return
	}

	m.mu.Lock()
	m.entries = env.Entries
	m.mu.Unlock()
}

// Save writes the current entry set atomically. Failure is a logged
// warning, never fatal.
func (m *Manager) Save(ctx context.Context) {
	if !m.enabled {
		return
	}

	m.mu.RLock()
	env := envelope{Version: fileFormatVersion, Entries: m.entries}
	m.mu.RUnlock()

	raw, err := json.Marshal(env)
	if err != nil {
		logging.FromContext(ctx).Warn("cache encode failed", "path", m.path, "error", err)
		return
	}

	if err := os.MkdirAll(filepath.Dir(m.path), 0o755); err != nil {
		logging.FromContext(ctx).Warn("cache directory create failed", "path", m.path, "error", err)
		return
	}

	changed, err := fsutil.WriteAtomicIfChanged(ctx, m.path, raw, 0)
	if err != nil {
		logging.FromContext(ctx).Warn("cache save failed", "path", m.path, "error", err)
		return
	}
	if !changed {
		logging.FromContext(ctx).Debug("cache unchanged, skipping write", "path", m.path)
	}
}

// Lookup reports whether a cached entry for path is still valid: content
// hash, config hash, and rule versions must all match the entry on file.
// On a hit it returns the entry's diagnostics.
func (m *Manager) Lookup(path string, content []byte, configHash Hash, ruleVersions map[string]string) (Entry, bool) {
	if !m.enabled {
		return Entry{}, false
	}

	key, err := canonicalKey(path)
	if err != nil {
		return Entry{}, false
	}

	m.mu.RLock()
	entry, exists := m.entries[key]
	m.mu.RUnlock()
	if !exists {
		return Entry{}, false
	}

	if entry.ContentHash != m.hasher.contentHash(content) {
		return Entry{}, false
	}
	if entry.ConfigHash != configHash {
		return Entry{}, false
	}
	if !entry.sameRuleVersions(ruleVersions) {
		return Entry{}, false
	}

	return entry, true
}

// Store records a file's fresh lint result, replacing any prior entry.
// A no-op when the cache is disabled.
func (m *Manager) Store(path string, content []byte, configHash Hash, ruleVersions map[string]string, diagnostics []plugin.Diagnostic, now func() time.Time) error {
	if !m.enabled {
		return nil
	}

	key, err := canonicalKey(path)
	if err != nil {
		return fmt.Errorf("canonicalize cache key for %s: %w", path, err)
	}

	entry := Entry{
		ContentHash:  m.hasher.contentHash(content),
		ConfigHash:   configHash,
		RuleVersions: cloneVersions(ruleVersions),
		Diagnostics:  diagnostics,
		Timestamp:    now(),
	}

	m.mu.Lock()
	m.entries[key] = entry
	m.mu.Unlock()
	return nil
}

func canonicalKey(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.Clean(abs), nil
}

func cloneVersions(versions map[string]string) map[string]string {
	out := make(map[string]string, len(versions))
	for k, v := range versions {
		out[k] = v
	}
	return out
}
