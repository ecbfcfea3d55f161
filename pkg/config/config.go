// Package config defines texide's configuration model: LinterConfig and
// the RuleConfig sum type.
package config

// defaultCacheDir is LinterConfig.CacheDir's default value.
const defaultCacheDir = ".texide-cache"

// LinterConfig is the root configuration, consumed as a value by the Linter.
type LinterConfig struct {
	// Rules holds per-rule configuration keyed by rule name.
	Rules map[string]RuleConfig `json:"rules" yaml:"rules"`

	// Plugins lists filesystem paths (or, in a future registry, names) of
	// rule modules to load.
	Plugins []string `json:"plugins" yaml:"plugins"`

	// Include lists glob patterns a discovered file must match at least
	// one of, when non-empty.
	Include []string `json:"include" yaml:"include"`

	// Exclude lists glob patterns that remove an otherwise-matched file.
	// Exclude takes precedence over Include.
	Exclude []string `json:"exclude" yaml:"exclude"`

	// Cache enables the on-disk lint-result cache.
	Cache bool `json:"cache" yaml:"cache"`

	// CacheDir is the directory the cache artifact lives under.
	CacheDir string `json:"cache_dir" yaml:"cache_dir"`
}

// NewLinterConfig returns a LinterConfig with its documented defaults:
// cache enabled, cache_dir ".texide-cache".
func NewLinterConfig() *LinterConfig {
	return &LinterConfig{
		Rules:    make(map[string]RuleConfig),
		Plugins:  nil,
		Include:  nil,
		Exclude:  nil,
		Cache:    true,
		CacheDir: defaultCacheDir,
	}
}

// EnabledRules returns the subset of Rules whose IsEnabled() is true, in no
// particular order — callers needing a stable order should sort the keys
// themselves.
func (c *LinterConfig) EnabledRules() map[string]RuleConfig {
	out := make(map[string]RuleConfig, len(c.Rules))
	for name, rc := range c.Rules {
		if rc.IsEnabled() {
			out[name] = rc
		}
	}
	return out
}
