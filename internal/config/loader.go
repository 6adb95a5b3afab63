package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	configFile = "chase.yaml"

	// BuiltIn is the source reported when no config file was used.
	BuiltIn = "built-in"
)

// SearchPaths lists the implicit config locations, most specific first:
// ~/.arcade/configs/chase.yaml, then ./configs/chase.yaml.
func SearchPaths() []string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".arcade", "configs", configFile))
	}
	return append(paths, filepath.Join("configs", configFile))
}

// LoadChase loads the Square Chase configuration. See LoadChaseSource.
func LoadChase(customPath string) (ChaseConfig, error) {
	cfg, _, err := LoadChaseSource(customPath)
	return cfg, err
}

// LoadChaseSource loads the configuration and reports where it came from.
//
// A custom path must be readable and valid. Otherwise the first usable file
// in SearchPaths wins, and the embedded defaults are the last resort.
// Files are decoded over the defaults, so a file only needs the keys it
// changes.
func LoadChaseSource(customPath string) (ChaseConfig, string, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return ChaseConfig{}, customPath, err
		}
		return cfg, customPath, nil
	}

	for _, path := range SearchPaths() {
		if cfg, err := loadFile(path); err == nil {
			return cfg, path, nil
		}
	}

	cfg, err := ParseChase(defaultChaseYAML)
	if err != nil {
		return DefaultChaseConfig(), BuiltIn, nil
	}
	return cfg, BuiltIn, nil
}

func loadFile(path string) (ChaseConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ChaseConfig{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := ParseChase(data)
	if err != nil {
		return ChaseConfig{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseChase decodes YAML over the default configuration and validates the result.
func ParseChase(data []byte) (ChaseConfig, error) {
	cfg := DefaultChaseConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ChaseConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return ChaseConfig{}, err
	}
	return cfg, nil
}

// MarshalChase encodes a configuration as YAML.
func MarshalChase(cfg ChaseConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode chase config: %w", err)
	}
	return data, nil
}
