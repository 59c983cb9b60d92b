package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadFlappy loads and validates the game configuration.
// Search order: customPath -> ~/.arcade/configs/flappy.yaml -> ./configs/flappy.yaml -> embedded default.
// Files only need to name the values they override.
func LoadFlappy(customPath string) (FlappyConfig, error) {
	cfg, err := loadFlappy(customPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadFlappy(customPath string) (FlappyConfig, error) {
	cfg := DefaultFlappyConfig()

	// Custom path must exist and parse
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Unreadable or broken optional files fall through to the next source
	for _, path := range searchPaths() {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		candidate := DefaultFlappyConfig()
		if err := yaml.Unmarshal(data, &candidate); err == nil {
			return candidate, nil
		}
	}

	if err := yaml.Unmarshal(defaultFlappyYAML, &cfg); err != nil {
		return DefaultFlappyConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// searchPaths returns the optional config locations in priority order.
func searchPaths() []string {
	var paths []string
	if userCfgPath := userConfigPath("flappy.yaml"); userCfgPath != "" {
		paths = append(paths, userCfgPath)
	}
	return append(paths, filepath.Join("configs", "flappy.yaml"))
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
