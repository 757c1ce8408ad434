package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadDefender loads the Space Defender configuration.
// Search order: customPath -> ~/.defender/configs/defender.yaml -> ./configs/defender.yaml -> embedded default.
// Files only need to set the keys they override; everything else keeps its default.
func LoadDefender(customPath string) (DefenderConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefenderConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return DefenderConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("defender.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "defender.yaml")); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultDefenderYAML)
	if err != nil {
		return DefaultDefenderConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes data over the defaults and validates the result.
func parse(data []byte) (DefenderConfig, error) {
	cfg := DefaultDefenderConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".defender", "configs", filename)
}

// Validate reports every setting that would break the simulation.
func (c DefenderConfig) Validate() error {
	var errs []error

	if c.Playfield.Width <= 0 || c.Playfield.Height <= 0 {
		errs = append(errs, errors.New("playfield size must be positive"))
	}
	if c.Ship.Width <= 0 || c.Ship.Height <= 0 || c.Ship.Width > c.Playfield.Width {
		errs = append(errs, errors.New("ship size must be positive and fit the playfield"))
	}
	if c.Enemy.Width <= 0 || c.Enemy.Height <= 0 || c.Enemy.Width > c.Playfield.Width {
		errs = append(errs, errors.New("enemy size must be positive and fit the playfield"))
	}
	if c.Bullet.Width <= 0 || c.Bullet.Height <= 0 || c.Bullet.Speed <= 0 {
		errs = append(errs, errors.New("bullet size and speed must be positive"))
	}
	if c.Enemy.ZigzagMinPeriod <= 0 {
		errs = append(errs, errors.New("enemy zigzag_min_period must be positive"))
	}
	if c.Spawn.MinInterval < 0 || c.Spawn.Interval < c.Spawn.MinInterval {
		errs = append(errs, errors.New("spawn interval must be at least min_interval"))
	}
	if c.Explosion.Particles < 0 || c.Explosion.MinDecay <= 0 {
		errs = append(errs, errors.New("explosion particles must be non-negative and min_decay positive"))
	}
	if c.Progression.KillReward < 0 || c.Progression.LevelThreshold <= 0 {
		errs = append(errs, errors.New("kill_reward must be non-negative and level_threshold positive"))
	}
	if c.Session.Lives <= 0 {
		errs = append(errs, errors.New("session lives must be positive"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}

// ApplyDefenderPreset modifies the config based on a difficulty preset.
func ApplyDefenderPreset(cfg *DefenderConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Session.Lives = 5
		cfg.Progression.BaseSpeed = 2.0
		cfg.Spawn.Interval += cfg.Spawn.Interval / 5
	case DifficultyHard:
		cfg.Session.Lives = 2
		cfg.Progression.BaseSpeed = 3.5
		cfg.Spawn.Interval -= cfg.Spawn.Interval / 4
		if cfg.Spawn.Interval < cfg.Spawn.MinInterval {
			cfg.Spawn.Interval = cfg.Spawn.MinInterval
		}
	case DifficultyFixed:
		cfg.Progression.Enabled = false
	}
}
