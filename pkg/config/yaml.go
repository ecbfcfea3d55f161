package config

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ToYAML serializes the configuration to YAML, human-readable with stable
// field ordering (struct field order).
func (c *LinterConfig) ToYAML() ([]byte, error) {
	if c == nil {
		return nil, nil
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)

	if err := encoder.Encode(c); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("close encoder: %w", err)
	}
	return buf.Bytes(), nil
}

// FromYAML parses a LinterConfig from YAML bytes.
func FromYAML(data []byte) (*LinterConfig, error) {
	cfg := NewLinterConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if cfg.Rules == nil {
		cfg.Rules = make(map[string]RuleConfig)
	}
	return cfg, nil
}

// Clone creates a deep copy of the configuration.
func (c *LinterConfig) Clone() *LinterConfig {
	if c == nil {
		return nil
	}

	clone := &LinterConfig{
		Cache:    c.Cache,
		CacheDir: c.CacheDir,
	}
	if c.Plugins != nil {
		clone.Plugins = append([]string(nil), c.Plugins...)
	}
	if c.Include != nil {
		clone.Include = append([]string(nil), c.Include...)
	}
	if c.Exclude != nil {
		clone.Exclude = append([]string(nil), c.Exclude...)
	}
	if c.Rules != nil {
		clone.Rules = make(map[string]RuleConfig, len(c.Rules))
		for k, v := range c.Rules {
			clone.Rules[k] = v.clone()
		}
	}
	return clone
}
