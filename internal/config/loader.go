package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

const configFileName = "runner.yaml"

// LoadRunner loads the runner configuration.
// Search order: customPath -> ~/.cinnarun/configs/runner.yaml -> ./configs/runner.yaml -> embedded default.
// Files only need to list the values they override. A custom path that
// cannot be read, parsed or validated is an error; the other locations
// fall through silently.
func LoadRunner(customPath string) (RunnerConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return RunnerConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := decode(customPath, data)
		if err != nil {
			return RunnerConfig{}, err
		}
		if err := cfg.Validate(); err != nil {
			return RunnerConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{userConfigPath(configFileName), filepath.Join("configs", configFileName)}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := decode(path, data); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := decode(configFileName, defaultRunnerYAML)
	if err != nil {
		return DefaultRunnerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// decode parses data over the hardcoded defaults, picking the format
// from the file extension.
func decode(path string, data []byte) (RunnerConfig, error) {
	cfg := DefaultRunnerConfig()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
		}
	case ".yaml", ".yml", "":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
		}
	default:
		return cfg, fmt.Errorf("config: unsupported file type %q", filepath.Ext(path))
	}
	return cfg, nil
}

// Marshal renders the config as YAML, in the same layout as the defaults file.
func Marshal(cfg RunnerConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".cinnarun", "configs", filename)
}
