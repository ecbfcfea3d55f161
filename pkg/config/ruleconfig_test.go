package config

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestRuleConfigJSONBoolRoundTrip(t *testing.T) {
	rc := NewEnabledRuleConfig(true)
	data, err := json.Marshal(rc)
	require.NoError(t, err)
	require.Equal(t, "true", string(data))

	var decoded RuleConfig
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.True(t, decoded.IsEnabled())
}

func TestRuleConfigJSONSeverityOffDisables(t *testing.T) {
	rc := NewSeverityRuleConfig("off")
	require.False(t, rc.IsEnabled())

	data, err := json.Marshal(rc)
	require.NoError(t, err)
	require.Equal(t, `"off"`, string(data))

	var decoded RuleConfig
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.False(t, decoded.IsEnabled())
	_, ok := decoded.Severity()
	require.False(t, ok)
}

func TestRuleConfigJSONSeverityWarningEnables(t *testing.T) {
	rc := NewSeverityRuleConfig("warning")
	data, err := json.Marshal(rc)
	require.NoError(t, err)

	var decoded RuleConfig
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.True(t, decoded.IsEnabled())
	sev, ok := decoded.Severity()
	require.True(t, ok)
	require.Equal(t, "warning", sev)
}

func TestRuleConfigJSONOptionsRoundTrip(t *testing.T) {
	rc, err := NewOptionsRuleConfig(map[string]any{"max": 100})
	require.NoError(t, err)
	require.True(t, rc.IsEnabled())

	data, err := json.Marshal(rc)
	require.NoError(t, err)

	var decoded RuleConfig
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.True(t, decoded.IsEnabled())
	require.JSONEq(t, `{"max":100}`, string(decoded.Options()))
}

func TestRuleConfigYAMLRoundTrip(t *testing.T) {
	in := `
bool_rule: true
sev_rule: warning
opts_rule:
  max: 100
`
	var doc map[string]RuleConfig
	require.NoError(t, yaml.Unmarshal([]byte(in), &doc))

	require.True(t, doc["bool_rule"].IsEnabled())
	sev, ok := doc["sev_rule"].Severity()
	require.True(t, ok)
	require.Equal(t, "warning", sev)
	require.JSONEq(t, `{"max":100}`, string(doc["opts_rule"].Options()))

	out, err := yaml.Marshal(doc)
	require.NoError(t, err)

	var roundTripped map[string]RuleConfig
	require.NoError(t, yaml.Unmarshal(out, &roundTripped))
	require.True(t, roundTripped["bool_rule"].IsEnabled())
}

func TestRuleConfigCloneIndependence(t *testing.T) {
	rc, err := NewOptionsRuleConfig(map[string]any{"max": 1})
	require.NoError(t, err)
	cloned := rc.clone()
	require.JSONEq(t, string(rc.Options()), string(cloned.Options()))
}
