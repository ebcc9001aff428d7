// Package config provides YAML-based game configuration loading and
// difficulty presets for the invaders game.
package config

// GameConfig contains all tunable data for a game session.
// Speeds are in reference-viewport units per tick and are scaled to the
// world size at runtime; durations are in seconds.
type GameConfig struct {
	World      WorldConfig              `yaml:"world"`
	Player     PlayerConfig             `yaml:"player"`
	Enemies    map[string]EnemyConfig   `yaml:"enemies"`
	Lasers     map[string]LaserConfig   `yaml:"lasers"`
	PowerUps   map[string]PowerUpConfig `yaml:"powerups"`
	Spawn      SpawnConfig              `yaml:"spawn"`
	Effects    EffectsConfig            `yaml:"effects"`
	Waves      []WaveConfig             `yaml:"waves"`
	FinalWave  WaveConfig               `yaml:"final_wave"`
	Difficulty DifficultyConfig         `yaml:"difficulty"`
}

// WorldConfig defines the playfield size in world pixels.
type WorldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PlayerConfig defines the player ship.
type PlayerConfig struct {
	Sprite string  `yaml:"sprite"`
	Health int     `yaml:"health"`
	Speed  float64 `yaml:"speed"`
	Laser  string  `yaml:"laser"`
}

// Enemy behaviors understood by the game.
const (
	BehaviorShooter = "shooter" // Patrols, settles, fires on an interval
	BehaviorRam     = "ram"     // Patrols while descending, damages on contact
)

// EnemyConfig defines one enemy kind.
type EnemyConfig struct {
	Sprite           string  `yaml:"sprite"`
	Behavior         string  `yaml:"behavior"`
	Health           int     `yaml:"health"`
	Speed            float64 `yaml:"speed"`
	Award            int     `yaml:"award"`
	Laser            string  `yaml:"laser,omitempty"`
	ShootIntervalMin float64 `yaml:"shoot_interval_min,omitempty"`
	ShootIntervalMax float64 `yaml:"shoot_interval_max,omitempty"`
	DescentSpeed     float64 `yaml:"descent_speed,omitempty"`
	ContactDamage    int     `yaml:"contact_damage,omitempty"`
}

// LaserConfig defines one projectile kind.
type LaserConfig struct {
	Speed  float64 `yaml:"speed"`
	Damage int     `yaml:"damage"`
}

// PowerUpConfig defines one pickup kind.
type PowerUpConfig struct {
	Sprite string  `yaml:"sprite"`
	Effect string  `yaml:"effect"`
	Amount int     `yaml:"amount"`
	Speed  float64 `yaml:"speed"`
}

// SpawnConfig defines spawn timers and the settle line.
type SpawnConfig struct {
	ShipInterval    float64 `yaml:"ship_interval"`
	MinBatch        int     `yaml:"min_batch"`
	MaxBatch        int     `yaml:"max_batch"`
	InitialBurst    int     `yaml:"initial_burst"`
	PowerUpInterval float64 `yaml:"powerup_interval"`
	PowerUpChance   float64 `yaml:"powerup_chance"`
	SettleDivisor   float64 `yaml:"settle_divisor"` // Settle line is world height / divisor
	SettleDescent   float64 `yaml:"settle_descent"` // Descent per tick before settling
}

// EffectsConfig defines visual timing parameters.
type EffectsConfig struct {
	FlashDuration float64 `yaml:"flash_duration"` // Damage/heal tint duration
	BlinkSpeed    float64 `yaml:"blink_speed"`
	ResizeSpeed   float64 `yaml:"resize_speed"`
	ScrollSpeed   float64 `yaml:"scroll_speed"`
	TextCacheSize int     `yaml:"text_cache_size"`
	StarCount     int     `yaml:"star_count"`
}

// WaveConfig defines the composition of one wave.
type WaveConfig struct {
	Cap   CapSpec     `yaml:"cap"`
	Ships []WaveShips `yaml:"ships"`
}

// WaveShips is one (enemy kind, count) pair of a wave.
type WaveShips struct {
	Kind  string `yaml:"kind"`
	Count int    `yaml:"count"`
}

// DifficultyConfig scales the population caps and enemy fire rate.
type DifficultyConfig struct {
	CapScale      float64 `yaml:"cap_scale"`
	IntervalScale float64 `yaml:"interval_scale"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ScalesForPreset returns the cap and shoot-interval multipliers for a preset.
// Normal and fixed use the unscaled curves.
func ScalesForPreset(preset DifficultyPreset) (capScale, intervalScale float64) {
	switch preset {
	case DifficultyEasy:
		return 0.75, 1.25
	case DifficultyHard:
		return 1.25, 0.8
	default:
		return 1.0, 1.0
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// An empty or normal preset keeps the config's own difficulty scales;
// fixed ignores them and plays the curves as written.
func ApplyPreset(cfg *GameConfig, preset DifficultyPreset) {
	if preset == "" || preset == DifficultyNormal {
		return
	}
	capScale, intervalScale := ScalesForPreset(preset)
	cfg.Difficulty.CapScale = capScale
	cfg.Difficulty.IntervalScale = intervalScale
}

// Wave returns the definition for the 1-based wave number, falling back to
// the final wave for numbers past the configured list.
func (c GameConfig) Wave(n int) WaveConfig {
	if n >= 1 && n <= len(c.Waves) {
		return c.Waves[n-1]
	}
	return c.FinalWave
}
