package plugin

import "encoding/json"

// Manifest describes a loaded rule module, returned by its texide_manifest
// export.
type Manifest struct {
	Name              string   `json:"name"`
	Version           string   `json:"version"`
	SupportedNodeTypes []string `json:"supported_node_types,omitempty"`
	Description       string   `json:"description,omitempty"`
}

func parseManifest(raw []byte) (Manifest, error) {
	var m Manifest
	if err := json.Unmarshal(raw, &m); err != nil {
		return Manifest{}, err
	}
	return m, nil
}
