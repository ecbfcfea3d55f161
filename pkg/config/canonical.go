package config

import "encoding/json"

// CanonicalJSON serializes c deterministically: encoding/json already sorts
// map keys, and every field's JSON shape is fixed by its type (RuleConfig's
// own MarshalJSON included), so configurations with equal field values
// produce byte-identical output. Values that are equivalent in effect but
// written differently are not normalized: a nil list encodes as null and an
// empty one as [], a rule set to false differs from an absent rule, and
// rule options keep the key order of the raw JSON they were read from.
func (c *LinterConfig) CanonicalJSON() ([]byte, error) {
	return json.Marshal(c)
}
