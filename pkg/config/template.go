package config

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// TemplateOptions controls configuration template generation. Rules are
// external WASM plugins rather than an in-process registry, so the
// template documents the config shape rather than listing known rules.
type TemplateOptions struct {
	// Format is the output format: "yaml" or "json".
	Format string
}

// GenerateTemplate creates a starter configuration file.
func GenerateTemplate(opts TemplateOptions) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`# texide configuration
# See: ` + DefaultTemplateHeader() + `

# Rule modules to load (compiled WebAssembly artifacts).
plugins:
#  - ./rules/no-bare-urls.wasm

# Glob patterns a file must match at least one of, when non-empty.
include:
#  - "docs/**/*.md"

# Glob patterns that exclude an otherwise-matched file; takes precedence
# over include.
exclude:
#  - "vendor/**"
#  - "CHANGELOG.md"

# Enable the on-disk lint-result cache.
cache: true

# Directory the cache artifact is written under.
cache_dir: .texide-cache

# Per-rule configuration, keyed by rule name. A value may be:
#   true | false              — bare on/off
#   "error" | "warning" | "off" — severity (anything but "off" enables)
#   { ...options }             — implicitly enabled, arbitrary rule options
rules:
#   no-bare-urls: true
#   heading-increment: "warning"
#   line-length:
#     max: 100
`)

	if opts.Format == "json" {
		return templateToJSON()
	}
	return buf.Bytes(), nil
}

func templateToJSON() ([]byte, error) {
	cfg := NewLinterConfig()
	jsonBytes, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal JSON template: %w", err)
	}
	return jsonBytes, nil
}

// DefaultTemplateHeader returns the module's repository URL, used as the
// template's doc-comment pointer.
func DefaultTemplateHeader() string {
	return "https://github.com/texide/texide"
}
