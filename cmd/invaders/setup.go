package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/assets"
	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

// newLogger creates the process logger at the --log-level threshold.
func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// openLogFile opens ~/.invaders/invaders.log for appending. The terminal
// belongs to the game while it runs, so interactive logs go there.
func openLogFile() (*os.File, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	dir := filepath.Join(home, ".invaders")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(dir, "invaders.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
}

// loadGameConfig loads the config and applies the --difficulty preset.
func loadGameConfig() (config.GameConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	preset := config.DifficultyPreset(strings.ToLower(flagDifficulty))
	switch preset {
	case "", config.DifficultyEasy, config.DifficultyNormal, config.DifficultyHard, config.DifficultyFixed:
	default:
		return cfg, fmt.Errorf("invalid difficulty %q (use: easy, normal, hard, fixed)", flagDifficulty)
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, nil
}

// difficultyName is the preset name saved with each run.
func difficultyName() string {
	if flagDifficulty == "" {
		return string(config.DifficultyNormal)
	}
	return strings.ToLower(flagDifficulty)
}

// runtimeConfig builds the runtime settings shared by every command.
func runtimeConfig(width, height int) core.RuntimeConfig {
	rc := core.DefaultConfig()
	rc.TickRate = flagFPS
	rc.Seed = flagSeed
	if width > 0 && height > 0 {
		rc.ScreenW, rc.ScreenH = width, height
	}
	return rc
}

// openStore opens the scores database. Scores are optional: on failure the
// game still runs, it just does not record anything.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("scores will not be saved", "err", err)
		return nil
	}
	return store
}

// setup loads everything a game needs.
func setup(logger *log.Logger) (config.GameConfig, *assets.Table, error) {
	cfg, err := loadGameConfig()
	if err != nil {
		return cfg, nil, fmt.Errorf("loading config: %w", err)
	}
	table, err := assets.NewDefaultTable(logger)
	if err != nil {
		return cfg, nil, fmt.Errorf("loading sprites: %w", err)
	}
	if missing := missingSprites(cfg, table); len(missing) > 0 {
		logger.Warn("config names unknown sprites, they will draw as the error sprite",
			"missing", missing, "known", table.SpriteNames())
	}
	return cfg, table, nil
}

// missingSprites lists the sprites the config refers to that the table
// does not have, sorted and without duplicates.
func missingSprites(cfg config.GameConfig, table *assets.Table) []string {
	seen := make(map[string]bool)
	var missing []string
	check := func(name string) {
		if name == "" || seen[name] {
			return
		}
		seen[name] = true
		if !table.HasSprite(name) {
			missing = append(missing, name)
		}
	}

	check(cfg.Player.Sprite)
	if cfg.Player.Laser != "" {
		check(cfg.Player.Laser + "-laser")
	}
	for _, ec := range cfg.Enemies {
		check(ec.Sprite)
		if ec.Laser != "" {
			check("enemy-" + ec.Laser + "-laser")
		}
	}
	for _, pc := range cfg.PowerUps {
		check(pc.Sprite)
	}
	slices.Sort(missing)
	return missing
}
