//go:build !tinygo

package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/lcdtris.yaml
var defaultYAML []byte

// Load reads the configuration and validates it.
// Search order: customPath -> ~/.lcdtris/config.yaml -> ./configs/lcdtris.yaml -> embedded default.
// Keys missing from the file keep their default values.
func Load(customPath string) (Config, error) {
	cfg, err := Parse(defaultYAML)
	if err != nil {
		cfg = Default()
	}

	path := customPath
	if path == "" {
		path = findConfig()
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Parse decodes YAML over Default.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// Marshal renders cfg as YAML.
func Marshal(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

func findConfig() string {
	if home, err := os.UserHomeDir(); err == nil {
		p := filepath.Join(home, ".lcdtris", "config.yaml")
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	if _, err := os.Stat(filepath.Join("configs", "lcdtris.yaml")); err == nil {
		return filepath.Join("configs", "lcdtris.yaml")
	}
	return ""
}
