package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads the icefall configuration and validates it.
// Search order: customPath -> ~/.arcade/configs/icefall.yaml -> ./configs/icefall.yaml -> embedded default
//
// An explicit customPath that cannot be read or parsed is an error. Files
// found by the search are skipped if unreadable, but a file that parses and
// then fails validation is reported, not silently replaced.
func Load(customPath string) (IcefallConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return IcefallConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		return parse(data, customPath)
	}

	for _, path := range searchPaths() {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		return parse(data, path)
	}

	return parse(defaultIcefallYAML, "embedded default")
}

// Resolve loads the configuration, applies the difficulty preset and
// validates the result. Any error means the program must not start.
func Resolve(customPath string, preset DifficultyPreset) (IcefallConfig, error) {
	cfg, err := Load(customPath)
	if err != nil {
		return IcefallConfig{}, err
	}
	ApplyPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return IcefallConfig{}, fmt.Errorf("config with %q preset: %w", preset, err)
	}
	return cfg, nil
}

// parse decodes YAML on top of the built-in defaults so partial files only
// override what they mention.
func parse(data []byte, source string) (IcefallConfig, error) {
	cfg := DefaultIcefallConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return IcefallConfig{}, fmt.Errorf("failed to parse config %s: %w", source, err)
	}
	if err := cfg.Validate(); err != nil {
		return IcefallConfig{}, fmt.Errorf("config %s: %w", source, err)
	}
	return cfg, nil
}

// Marshal renders a configuration back to YAML.
func Marshal(cfg IcefallConfig) ([]byte, error) {
	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

func searchPaths() []string {
	var paths []string
	if p := userConfigPath("icefall.yaml"); p != "" {
		paths = append(paths, p)
	}
	return append(paths, filepath.Join("configs", "icefall.yaml"))
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
