package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the game configuration and validates it.
// Search order: customPath -> ~/.invaders/configs/invaders.yaml -> ./configs/invaders.yaml -> embedded default
func Load(customPath string) (GameConfig, error) {
	cfg, err := load(customPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: invalid configuration: %w", err)
	}
	return cfg, nil
}

func load(customPath string) (GameConfig, error) {
	var cfg GameConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: cannot parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("invaders.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/invaders.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultInvadersYAML, &cfg); err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".invaders", "configs", filename)
}

// Validate checks the configuration for values the game cannot run with.
func (c GameConfig) Validate() error {
	var errs []error

	if c.World.Width <= 0 || c.World.Height <= 0 {
		errs = append(errs, fmt.Errorf("world size %dx%d must be positive", c.World.Width, c.World.Height))
	}
	if c.Player.Health <= 0 {
		errs = append(errs, errors.New("player health must be positive"))
	}
	if _, ok := c.Lasers[c.Player.Laser]; !ok {
		errs = append(errs, fmt.Errorf("player laser %q is not defined", c.Player.Laser))
	}

	for name, e := range c.Enemies {
		if e.Health <= 0 {
			errs = append(errs, fmt.Errorf("enemy %q: health must be positive", name))
		}
		switch e.Behavior {
		case BehaviorShooter:
			if _, ok := c.Lasers[e.Laser]; !ok {
				errs = append(errs, fmt.Errorf("enemy %q: laser %q is not defined", name, e.Laser))
			}
			if e.ShootIntervalMin > e.ShootIntervalMax {
				errs = append(errs, fmt.Errorf("enemy %q: shoot interval min > max", name))
			}
		case BehaviorRam:
		default:
			errs = append(errs, fmt.Errorf("enemy %q: unknown behavior %q", name, e.Behavior))
		}
	}

	if len(c.Waves) == 0 {
		errs = append(errs, errors.New("at least one wave is required"))
	}
	waves := append(append([]WaveConfig{}, c.Waves...), c.FinalWave)
	for i, w := range waves {
		label := fmt.Sprintf("wave %d", i+1)
		if i == len(waves)-1 {
			label = "final wave"
		}
		if err := w.Cap.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", label, err))
		}
		total := 0
		for _, s := range w.Ships {
			if _, ok := c.Enemies[s.Kind]; !ok {
				errs = append(errs, fmt.Errorf("%s: unknown enemy kind %q", label, s.Kind))
			}
			total += s.Count
		}
		if total <= 0 {
			errs = append(errs, fmt.Errorf("%s: no ships", label))
		}
	}

	if c.Spawn.MinBatch > c.Spawn.MaxBatch {
		errs = append(errs, errors.New("spawn min_batch > max_batch"))
	}
	if c.Spawn.SettleDivisor <= 0 {
		errs = append(errs, errors.New("spawn settle_divisor must be positive"))
	}

	return errors.Join(errs...)
}
