package main

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/assets"
	"github.com/vovakirdan/tui-invaders/internal/config"
)

func TestMissingSprites(t *testing.T) {
	table, err := assets.NewDefaultTable(nil)
	if err != nil {
		t.Fatalf("NewDefaultTable() error = %v", err)
	}

	cfg := config.DefaultConfig()
	if got := missingSprites(cfg, table); len(got) != 0 {
		t.Errorf("missingSprites(default) = %v, expected none", got)
	}

	cfg.Player.Sprite = "ufo"
	cfg.PowerUps["shield"] = config.PowerUpConfig{Sprite: "shield"}
	cfg.Enemies["sniper"] = config.EnemyConfig{Sprite: "ufo", Laser: "beam"}

	want := []string{"enemy-beam-laser", "shield", "ufo"}
	if got := missingSprites(cfg, table); !reflect.DeepEqual(got, want) {
		t.Errorf("missingSprites() = %v, expected %v", got, want)
	}
}

func TestLoadGameConfigRejectsDifficulty(t *testing.T) {
	defer func(old string) { flagDifficulty = old }(flagDifficulty)

	flagDifficulty = "nightmare"
	if _, err := loadGameConfig(); err == nil {
		t.Error("loadGameConfig() = nil error, expected an invalid difficulty")
	}
}

func TestScoresReturnsExitCode(t *testing.T) {
	defer func(db string, plain bool) { flagDBPath, flagPlain = db, plain }(flagDBPath, flagPlain)
	flagPlain = true

	// A regular file where a directory is expected cannot hold the database
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	flagDBPath = filepath.Join(blocker, "scores.db")
	if code := scores(); code != 1 {
		t.Errorf("scores() with a bad path = %d, expected 1", code)
	}

	flagDBPath = filepath.Join(t.TempDir(), "scores.db")
	if code := scores(); code != 0 {
		t.Errorf("scores() = %d, expected 0", code)
	}
}
