package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "scores.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveAndTopRuns(t *testing.T) {
	store := openTestStore(t)

	runs := []RunRecord{
		{Player: "ann", Score: 12, Wave: 2, Kills: 12, Duration: 90 * time.Second, Seed: 1, Difficulty: "normal"},
		{Player: "bob", Score: 40, Wave: 4, Kills: 33, Duration: 4 * time.Minute, Seed: 2, Difficulty: "hard"},
		{Player: "cat", Score: 12, Wave: 3, Kills: 10, Duration: 2 * time.Minute, Seed: 3},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("TopRuns() returned %d runs, expected 3", len(top))
	}

	// Score first, then wave reached
	want := []string{"bob", "cat", "ann"}
	for i, name := range want {
		if top[i].Player != name {
			t.Errorf("TopRuns()[%d].Player = %q, expected %q", i, top[i].Player, name)
		}
	}
	if top[0].Duration != 4*time.Minute || top[0].Kills != 33 || top[0].Difficulty != "hard" {
		t.Errorf("TopRuns()[0] = %+v, fields not round-tripped", top[0])
	}
	if top[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be set by the database")
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRun(RunRecord{Score: (i + 1) * 100, Wave: 1})
	}

	top, err := store.TopRuns(3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Errorf("Expected 3 runs with limit, got %d", len(top))
	}
	if top[0].Score != 500 || top[1].Score != 400 || top[2].Score != 300 {
		t.Errorf("Runs not in expected order: %v", top)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("HighScore() = %d with no runs, expected 0", high)
	}

	store.SaveRun(RunRecord{Score: 100})
	store.SaveRun(RunRecord{Score: 300})
	store.SaveRun(RunRecord{Score: 200})

	high, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("HighScore() = %d, expected 300", high)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunRecord{Score: 100})
	store.SaveRun(RunRecord{Score: 200})

	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	top, _ := store.TopRuns(10)
	if len(top) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(top))
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.Runs != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Stats() on an empty store = %+v", empty)
	}

	store.SaveRun(RunRecord{Score: 10, Wave: 2, Kills: 10, Duration: time.Minute})
	store.SaveRun(RunRecord{Score: 30, Wave: 5, Kills: 25, Duration: 2 * time.Minute})

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 2 {
		t.Errorf("Runs = %d, expected 2", stats.Runs)
	}
	if stats.HighScore != 30 || stats.BestWave != 5 {
		t.Errorf("HighScore = %d, BestWave = %d, expected 30 and 5", stats.HighScore, stats.BestWave)
	}
	if stats.AvgScore != 20 {
		t.Errorf("AvgScore = %v, expected 20", stats.AvgScore)
	}
	if stats.TotalKills != 35 {
		t.Errorf("TotalKills = %d, expected 35", stats.TotalKills)
	}
	if stats.PlayTime != 3*time.Minute {
		t.Errorf("PlayTime = %v, expected 3m", stats.PlayTime)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}
