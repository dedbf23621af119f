package chain

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Entry declares one filter of the chain.
type Entry struct {
	Name string `yaml:"name" json:"name"`
	Type string `yaml:"type" json:"type"`
}

// Config represents the structure of a chain file:
//
//	filters:
//	  - name: smoother
//	    type: uniform_sample
//	  - name: reducer
//	    type: n_point
type Config struct {
	Filters []Entry `yaml:"filters" json:"filters"`
}

// Validate checks that every entry is named, typed, and uniquely named.
// Names must be unique because parameters are looked up by name.
func (c Config) Validate() error {
	seen := make(map[string]struct{}, len(c.Filters))
	for i, e := range c.Filters {
		if e.Name == "" {
			return fmt.Errorf("filter %d: missing name", i)
		}
		if e.Type == "" {
			return fmt.Errorf("filter %q: missing type", e.Name)
		}
		if _, dup := seen[e.Name]; dup {
			return fmt.Errorf("filter %q: duplicate name", e.Name)
		}
		seen[e.Name] = struct{}{}
	}
	return nil
}

// LoadConfig reads a chain file (YAML or JSON, chosen by extension).
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read chain config: %w", err)
	}

	var cfg Config
	ext := strings.ToLower(filepath.Ext(path))

	if ext == ".json" {
		if err := json.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	} else {
		// Default to YAML
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid chain config %s: %w", filepath.Base(path), err)
	}
	return cfg, nil
}
