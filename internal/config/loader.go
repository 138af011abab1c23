package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file name looked up in the user and local
// config directories.
const FileName = "jungle.yaml"

// LoadJungle loads the game configuration.
// Search order: customPath -> ~/.junglequest/config.yaml -> ./configs/jungle.yaml -> embedded default.
// Files only need to set the keys they change; everything else keeps its default.
func LoadJungle(customPath string) (JungleConfig, error) {
	cfg, _, err := LoadJungleWithSource(customPath)
	return cfg, err
}

// LoadJungleWithSource is LoadJungle that also reports where the configuration
// came from ("embedded" for the built-in file).
func LoadJungleWithSource(customPath string) (JungleConfig, string, error) {
	// Try custom path first; an explicit path must exist and parse
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return JungleConfig{}, "", fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return JungleConfig{}, "", fmt.Errorf("config: cannot parse %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath(), filepath.Join("configs", FileName)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parse(data); err == nil {
			return cfg, path, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultJungleYAML)
	if err != nil {
		return DefaultJungleConfig(), "builtin", nil // Fallback to hardcoded if embed fails
	}
	return cfg, "embedded", nil
}

func parse(data []byte) (JungleConfig, error) {
	cfg := DefaultJungleConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return JungleConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return JungleConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".junglequest", "config.yaml")
}

// ApplyPreset modifies the config based on a difficulty preset.
// Normal leaves the loaded values untouched.
func ApplyPreset(cfg *JungleConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Player.Lives = 5
		cfg.Energy.Regen *= 1.5
		cfg.Combat.ProjectileDamage = max(1, cfg.Combat.ProjectileDamage/2)
		cfg.Combat.StompDamage = max(1, cfg.Combat.StompDamage/2)
		cfg.Boss.AttackIntervalMS = cfg.Boss.AttackIntervalMS * 3 / 2
	case DifficultyHard:
		cfg.Player.Lives = 2
		cfg.Energy.Regen *= 0.5
		cfg.Combat.ProjectileDamage = cfg.Combat.ProjectileDamage * 3 / 2
		cfg.Combat.StompDamage = cfg.Combat.StompDamage * 3 / 2
		cfg.Boss.AttackIntervalMS = cfg.Boss.AttackIntervalMS * 3 / 4
	}
}
