package config

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ruleConfigKind discriminates RuleConfig's three variants.
type ruleConfigKind int

const (
	kindEnabled ruleConfigKind = iota
	kindSeverity
	kindOptions
)

// offSeverity is the sentinel Severity value that disables a rule.
const offSeverity = "off"

// RuleConfig is a closed sum type over three per-rule configuration shapes:
// a bare on/off flag, a severity string ("off" disables; anything else
// enables at that severity), or an options object (implicitly enabled).
// The variant is decoded by custom (Un)MarshalJSON/YAML.
type RuleConfig struct {
	kind     ruleConfigKind
	enabled  bool
	severity string
	options  json.RawMessage
}

// NewEnabledRuleConfig builds the Enabled(bool) variant.
func NewEnabledRuleConfig(enabled bool) RuleConfig {
	return RuleConfig{kind: kindEnabled, enabled: enabled}
}

// NewSeverityRuleConfig builds the Severity(str) variant.
func NewSeverityRuleConfig(severity string) RuleConfig {
	return RuleConfig{kind: kindSeverity, severity: severity}
}

// NewOptionsRuleConfig builds the Options(json-value) variant. options must
// marshal to a JSON value (typically an object).
func NewOptionsRuleConfig(options any) (RuleConfig, error) {
	raw, err := json.Marshal(options)
	if err != nil {
		return RuleConfig{}, fmt.Errorf("encode rule options: %w", err)
	}
	return RuleConfig{kind: kindOptions, options: raw}, nil
}

// IsEnabled reports whether this rule should run: Enabled carries its own
// flag; Severity is enabled unless "off"; Options is always implicitly
// enabled.
func (rc RuleConfig) IsEnabled() bool {
	switch rc.kind {
	case kindEnabled:
		return rc.enabled
	case kindSeverity:
		return rc.severity != offSeverity
	case kindOptions:
		return true
	default:
		return false
	}
}

// Severity returns the configured severity and whether one was explicitly
// given (only the Severity variant carries one).
func (rc RuleConfig) Severity() (string, bool) {
	if rc.kind == kindSeverity && rc.severity != offSeverity {
		return rc.severity, true
	}
	return "", false
}

// Options returns the raw JSON options value for the Options variant, or
// nil if this RuleConfig is not that variant.
func (rc RuleConfig) Options() json.RawMessage {
	if rc.kind != kindOptions {
		return nil
	}
	return rc.options
}

// MarshalJSON renders the RuleConfig back to whichever JSON shape its
// variant corresponds to: a bare bool, a bare string, or the options value.
func (rc RuleConfig) MarshalJSON() ([]byte, error) {
	switch rc.kind {
	case kindEnabled:
		return json.Marshal(rc.enabled)
	case kindSeverity:
		return json.Marshal(rc.severity)
	case kindOptions:
		if len(rc.options) == 0 {
			return []byte("{}"), nil
		}
		return rc.options, nil
	default:
		return json.Marshal(false)
	}
}

// UnmarshalJSON decodes whichever of the three shapes is present.
func (rc *RuleConfig) UnmarshalJSON(data []byte) error {
	var asBool bool
	if err := json.Unmarshal(data, &asBool); err == nil {
		*rc = NewEnabledRuleConfig(asBool)
		return nil
	}

	var asString string
	if err := json.Unmarshal(data, &asString); err == nil {
		*rc = NewSeverityRuleConfig(asString)
		return nil
	}

	*rc = RuleConfig{kind: kindOptions, options: append(json.RawMessage(nil), data...)}
	return nil
}

// UnmarshalYAML decodes whichever of the three shapes a YAML node holds,
// via a JSON round-trip so the same decoding logic as UnmarshalJSON applies.
func (rc *RuleConfig) UnmarshalYAML(node *yaml.Node) error {
	var asAny any
	if err := node.Decode(&asAny); err != nil {
		return err
	}
	raw, err := json.Marshal(asAny)
	if err != nil {
		return fmt.Errorf("re-encode rule config node: %w", err)
	}
	return rc.UnmarshalJSON(raw)
}

// MarshalYAML renders the RuleConfig as whichever shape its variant holds.
func (rc RuleConfig) MarshalYAML() (any, error) {
	switch rc.kind {
	case kindEnabled:
		return rc.enabled, nil
	case kindSeverity:
		return rc.severity, nil
	case kindOptions:
		var v any
		if len(rc.options) > 0 {
			if err := json.Unmarshal(rc.options, &v); err != nil {
				return nil, err
			}
		}
		return v, nil
	default:
		return false, nil
	}
}

// clone creates a value copy of rc; RuleConfig's only reference field
// (options) is immutable after construction, so a shallow copy is safe.
func (rc RuleConfig) clone() RuleConfig {
	return rc
}
