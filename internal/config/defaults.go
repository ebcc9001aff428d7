package config

import (
	_ "embed"
)

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

// DefaultConfig returns the built-in configuration.
// Used when the embedded YAML cannot be parsed.
func DefaultConfig() GameConfig {
	return GameConfig{
		World: WorldConfig{Width: 1200, Height: 675},
		Player: PlayerConfig{
			Sprite: "ship",
			Health: 20,
			Speed:  6,
			Laser:  "basic",
		},
		Enemies: map[string]EnemyConfig{
			"basic": {
				Sprite:           "enemy-ship",
				Behavior:         BehaviorShooter,
				Health:           3,
				Speed:            3,
				Award:            1,
				Laser:            "auto",
				ShootIntervalMin: 0.8,
				ShootIntervalMax: 1.2,
			},
			"heavy": {
				Sprite:           "enemy-heavy-ship",
				Behavior:         BehaviorShooter,
				Health:           3,
				Speed:            1.5,
				Award:            1,
				Laser:            "basic",
				ShootIntervalMin: 0.8,
				ShootIntervalMax: 1.2,
			},
			"ram": {
				Sprite:        "enemy-ram-ship",
				Behavior:      BehaviorRam,
				Health:        2,
				Speed:         3,
				Award:         2,
				DescentSpeed:  2,
				ContactDamage: 3,
			},
		},
		Lasers: map[string]LaserConfig{
			"basic": {Speed: 5, Damage: 1},
			"auto":  {Speed: 7, Damage: 1},
		},
		PowerUps: map[string]PowerUpConfig{
			"health_boost": {Sprite: "heart", Effect: "heal", Amount: 5, Speed: 5},
		},
		Spawn: SpawnConfig{
			ShipInterval:    2.5,
			MinBatch:        2,
			MaxBatch:        4,
			InitialBurst:    5,
			PowerUpInterval: 3.0,
			PowerUpChance:   0.35,
			SettleDivisor:   11.25,
			SettleDescent:   1,
		},
		Effects: EffectsConfig{
			FlashDuration: 0.1,
			BlinkSpeed:    5,
			ResizeSpeed:   0.5,
			ScrollSpeed:   1,
			TextCacheSize: 32,
			StarCount:     60,
		},
		Waves: []WaveConfig{
			{
				Cap:   CapSpec{Kind: CapQuadratic, Offset: 0, Divisor: 80, Base: 5},
				Ships: []WaveShips{{Kind: "basic", Count: 20}},
			},
			{
				Cap:   CapSpec{Kind: CapQuadratic, Offset: 20, Divisor: 80, Base: 10},
				Ships: []WaveShips{{Kind: "basic", Count: 15}, {Kind: "heavy", Count: 10}},
			},
			{
				Cap:   CapSpec{Kind: CapQuadratic, Offset: 30, Divisor: 80, Base: 10},
				Ships: []WaveShips{{Kind: "basic", Count: 10}, {Kind: "heavy", Count: 15}, {Kind: "ram", Count: 5}},
			},
			{
				Cap:   CapSpec{Kind: CapLinear, Factor: 0.5 / 3, Base: 0},
				Ships: []WaveShips{{Kind: "basic", Count: 15}, {Kind: "heavy", Count: 15}, {Kind: "ram", Count: 10}},
			},
			{
				Cap:   CapSpec{Kind: CapCosine, Amplitude: 6, Base: 15},
				Ships: []WaveShips{{Kind: "basic", Count: 30}, {Kind: "heavy", Count: 25}},
			},
		},
		FinalWave: WaveConfig{
			Cap:   CapSpec{Kind: CapQuadratic, Offset: 40, Divisor: 80, Base: 15},
			Ships: []WaveShips{{Kind: "basic", Count: 500}, {Kind: "heavy", Count: 500}},
		},
		Difficulty: DifficultyConfig{CapScale: 1, IntervalScale: 1},
	}
}
