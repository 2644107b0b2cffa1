package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "mathheroes.yaml"

// LoadMathHeroes loads Math Heroes configuration.
// Search order: customPath -> ~/.mathheroes/configs/mathheroes.yaml -> ./configs/mathheroes.yaml -> embedded default
func LoadMathHeroes(customPath string) (MathHeroesConfig, error) {
	// Start from defaults so partial files only override what they name.
	cfg := DefaultMathHeroesConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, cfg.Validate()
			}
			cfg = DefaultMathHeroesConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", configFile)); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, cfg.Validate()
		}
		cfg = DefaultMathHeroesConfig()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultMathHeroesYAML, &cfg); err != nil {
		return DefaultMathHeroesConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, cfg.Validate()
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".mathheroes", "configs", filename)
}

// ApplyMathHeroesPreset modifies the config based on a difficulty preset.
func ApplyMathHeroesPreset(cfg *MathHeroesConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Player.MaxHearts = 5
		cfg.Player.StartingHearts = 5
		cfg.Difficulty.SpeedMultiplier = 0.75
	case DifficultyHard:
		cfg.Player.MaxHearts = 2
		cfg.Player.StartingHearts = 2
		cfg.Difficulty.SpeedMultiplier = 1.5
	}
}
