package invaders

import "math"

// Snapshot is a flattened view of the game state for determinism tests.
// Positions are rounded to whole world pixels.
type Snapshot struct {
	Tick    uint64
	Scene   string
	Score   int
	Kills   int
	Wave    int
	Health  int
	PlayerX int
	Queued  int

	// Each enemy is 4 ints: X, Y, Health, Dir
	EnemyData []int
	// Each projectile is 3 ints: X, Y, Team
	ProjectileData []int
	// Each power-up is 2 ints: X, Y
	PowerUpData []int

	RNGState uint64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	st := g.State()
	snap := Snapshot{
		Tick:     g.tick,
		Scene:    st.Scene,
		Score:    st.Score,
		Kills:    st.Kills,
		Wave:     st.Wave,
		Health:   st.Health,
		RNGState: g.rng.State(),
	}
	if g.player != nil {
		snap.PlayerX = round(g.player.Rect.X)
	}

	m := g.mainScene()
	if m == nil {
		return snap
	}
	snap.Queued = m.spawner.Remaining()

	snap.EnemyData = make([]int, 0, len(m.enemies)*4)
	for _, e := range m.enemies {
		snap.EnemyData = append(snap.EnemyData, round(e.Rect.X), round(e.Rect.Y), e.Health.Current, int(e.Dir))
	}
	snap.ProjectileData = make([]int, 0, len(m.lasers)*3)
	for _, l := range m.lasers {
		snap.ProjectileData = append(snap.ProjectileData, round(l.Rect.X), round(l.Rect.Y), int(l.Team))
	}
	snap.PowerUpData = make([]int, 0, len(m.powerups)*2)
	for _, p := range m.powerups {
		snap.PowerUpData = append(snap.PowerUpData, round(p.Rect.X), round(p.Rect.Y))
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, c := range snap.Scene {
		h = h*31 + uint64(c) //#nosec G115 -- hash computation
	}
	h = h*31 + uint64(snap.Score)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Kills)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Wave)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Health)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerX) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Queued)  //#nosec G115 -- hash computation

	for _, v := range snap.EnemyData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.ProjectileData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.PowerUpData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h*31 + snap.RNGState
}

func round(v float64) int {
	return int(math.Round(v))
}
