package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/texide/texide/pkg/config"
)

// loadConfig reads a LinterConfig from path, sniffing YAML vs. JSON by
// extension. An empty path returns the documented defaults.
func loadConfig(path string) (*config.LinterConfig, error) {
	if path == "" {
		return config.NewLinterConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if strings.HasSuffix(path, ".json") {
		cfg := config.NewLinterConfig()
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
		return cfg, nil
	}

	cfg, err := config.FromYAML(data)
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
