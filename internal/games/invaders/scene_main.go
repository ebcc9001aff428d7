package invaders

import (
	"maps"
	"slices"
	"strconv"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// MainScene is live gameplay. It owns the projectiles, enemies and
// power-ups and the wave spawner; the player ship belongs to the game.
type MainScene struct {
	game    *Game
	player  *PlayerShip
	spawner *Spawner

	lasers   []*Projectile
	enemies  []*EnemyShip
	powerups []*PowerUp
	pending  []*Projectile // Fired during the tick, added after the sweep

	stars  []star
	scroll float64
	text   *TextCache
}

// NewMainScene creates a scene with the first spawn burst placed and the
// spawn timers running.
func NewMainScene(g *Game) *MainScene {
	cfg := g.cfg
	m := &MainScene{
		game:    g,
		player:  g.player,
		spawner: NewSpawner(cfg, g.rng, g.logger),
		stars:   newStarfield(g.rng, cfg.Effects.StarCount, g.width, g.height),
		text:    NewTextCache(g.assets, cfg.Effects.TextCacheSize),
	}

	m.SpawnEnemies(cfg.Spawn.InitialBurst)

	now := g.Now()
	g.timers.Set(core.EventSpawnShips, cfg.Spawn.ShipInterval, now)
	g.timers.Set(core.EventSpawnPowerUp, cfg.Spawn.PowerUpInterval, now)
	return m
}

func (m *MainScene) Kind() SceneKind { return SceneMain }

// ProcessEvent handles the spawn timers and passes input to the player.
func (m *MainScene) ProcessEvent(e core.Event) {
	switch e.Type {
	case core.EventSpawnShips:
		sp := m.game.cfg.Spawn
		m.SpawnEnemies(m.game.rng.RandInt(sp.MinBatch, sp.MaxBatch))
	case core.EventSpawnPowerUp:
		m.maybeSpawnPowerUp()
	}
	if m.player != nil {
		m.player.ProcessEvent(e, m)
	}
}

// Update advances every entity: the player, then projectiles, enemies
// and power-ups. Entities removed during the tick are swept afterwards.
func (m *MainScene) Update(delta float64) {
	g := m.game
	m.scroll += g.cfg.Effects.ScrollSpeed * g.height / core.BaseHeight * delta
	if m.scroll >= g.height {
		m.scroll -= g.height
	}

	if m.player != nil {
		m.player.Update()
	}
	for _, l := range m.lasers {
		if !l.Removed() {
			l.Update()
		}
	}
	for _, e := range m.enemies {
		if !e.Removed() {
			e.Update()
		}
	}
	for _, p := range m.powerups {
		if !p.Removed() {
			p.Update()
		}
	}

	m.sweep()
}

// sweep drops removed entities and adds projectiles fired this tick.
func (m *MainScene) sweep() {
	m.lasers = sweepRemoved(m.lasers)
	m.enemies = sweepRemoved(m.enemies)
	m.powerups = sweepRemoved(m.powerups)

	if len(m.pending) > 0 {
		m.lasers = append(m.lasers, m.pending...)
		m.pending = m.pending[:0]
	}
}

func sweepRemoved[T interface{ Removed() bool }](items []T) []T {
	kept := items[:0]
	for _, it := range items {
		if !it.Removed() {
			kept = append(kept, it)
		}
	}
	clear(items[len(kept):])
	return kept
}

// AddProjectile fires a laser of the given kind from (cx, cy).
// Unknown laser kinds are logged and ignored.
func (m *MainScene) AddProjectile(kind string, team Team, cx, cy float64) {
	lc, ok := m.game.cfg.Lasers[kind]
	if !ok {
		m.game.logger.Warn("unknown laser", "kind", kind)
		return
	}
	m.pending = append(m.pending, NewProjectile(m, kind, lc, team, cx, cy))
}

// SpawnEnemies asks the spawner for up to count enemies. The request is
// clamped to the wave's population cap; see Spawner.Plan.
func (m *MainScene) SpawnEnemies(count int) {
	placements := m.spawner.Plan(count, m.game.score, m.LiveEnemies(), m.game.width)
	for _, p := range placements {
		e, err := NewEnemyShip(m, p.Kind, p.X)
		if err != nil {
			m.game.logger.Warn("cannot spawn enemy", "kind", p.Kind, "err", err)
			continue
		}
		m.enemies = append(m.enemies, e)
	}
}

func (m *MainScene) maybeSpawnPowerUp() {
	g := m.game
	if g.rng.Float64() >= g.cfg.Spawn.PowerUpChance {
		return
	}
	kinds := slices.Sorted(maps.Keys(g.cfg.PowerUps))
	if len(kinds) == 0 {
		return
	}
	kind := kinds[g.rng.Intn(len(kinds))]

	pad := g.width / 20
	x := pad + g.rng.Float64()*(g.width-2*pad)
	p, err := NewPowerUp(m, kind, x)
	if err != nil {
		g.logger.Warn("cannot spawn power-up", "kind", kind, "err", err)
		return
	}
	g.logger.Debug("spawning power-up", "kind", kind, "x", int(x))
	m.powerups = append(m.powerups, p)
}

// LiveEnemies returns the number of enemies still in play.
func (m *MainScene) LiveEnemies() int {
	n := 0
	for _, e := range m.enemies {
		if !e.Removed() {
			n++
		}
	}
	return n
}

// Enemies returns the enemies in play.
func (m *MainScene) Enemies() []*EnemyShip { return m.enemies }

// Projectiles returns the projectiles in play.
func (m *MainScene) Projectiles() []*Projectile { return m.lasers }

// PowerUps returns the power-ups in play.
func (m *MainScene) PowerUps() []*PowerUp { return m.powerups }

// Spawner returns the wave spawner.
func (m *MainScene) Spawner() *Spawner { return m.spawner }

// Cleanup clears every entity collection, cancels the spawn timers and
// drops cached text.
func (m *MainScene) Cleanup() {
	m.lasers = nil
	m.enemies = nil
	m.powerups = nil
	m.pending = nil
	m.game.timers.Cancel(core.EventSpawnShips)
	m.game.timers.Cancel(core.EventSpawnPowerUp)
	m.text.Purge()
}

// ClearBackground blanks the screen and draws the scrolling starfield.
func (m *MainScene) ClearBackground(s *core.Screen) {
	s.Clear()
	m.drawStarfield(s, newViewport(s, m.game.width, m.game.height))
}

// Draw renders the entities and the HUD.
func (m *MainScene) Draw(s *core.Screen) {
	vp := newViewport(s, m.game.width, m.game.height)

	for _, p := range m.powerups {
		vp.drawSprite(s, p.Sprite, p.Rect, core.ColorDefault)
	}
	for _, e := range m.enemies {
		vp.drawSprite(s, e.Sprite, e.Rect, flashColor(e.Health.Flash()))
	}
	for _, l := range m.lasers {
		vp.drawSprite(s, l.Sprite, l.Rect, core.ColorDefault)
	}
	if m.player != nil {
		vp.drawSprite(s, m.player.Sprite, m.player.Rect, flashColor(m.player.Health.Flash()))
	}

	m.drawStatusBox(s, vp)
	m.drawFPS(s)
}

func formatStat(name string, v int) string {
	return name + ": " + strconv.Itoa(v)
}
