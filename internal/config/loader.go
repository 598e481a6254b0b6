package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name looked up in the config directories.
const ConfigFile = "jigsaw.yaml"

// LoadJigsaw loads the jigsaw configuration.
// Search order: customPath -> ~/.jigsaw/configs/jigsaw.yaml -> ./configs/jigsaw.yaml -> embedded default.
//
// Files are decoded on top of the defaults, so a file only needs the keys
// it changes. The result is validated.
func LoadJigsaw(customPath string) (JigsawConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return JigsawConfig{}, fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		return decode(data, customPath)
	}

	// Try user config directory
	if userCfgPath := userConfigPath(ConfigFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			return decode(data, userCfgPath)
		}
	}

	// Try local configs directory
	localPath := filepath.Join("configs", ConfigFile)
	if data, err := os.ReadFile(localPath); err == nil {
		return decode(data, localPath)
	}

	// Use embedded default YAML
	cfg, err := decode(defaultJigsawYAML, "embedded default")
	if err != nil {
		return DefaultJigsawConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(data []byte) (JigsawConfig, error) {
	return decode(data, "input")
}

func decode(data []byte, source string) (JigsawConfig, error) {
	cfg := DefaultJigsawConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return JigsawConfig{}, fmt.Errorf("config: cannot parse %s: %w", source, err)
	}
	if err := cfg.Validate(); err != nil {
		return JigsawConfig{}, fmt.Errorf("config: %s: %w", source, err)
	}
	return cfg, nil
}

// Marshal renders the configuration as YAML.
func Marshal(cfg JigsawConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".jigsaw", "configs", filename)
}
