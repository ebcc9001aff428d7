// Package invaders implements the space invaders simulation: entities,
// collisions, wave spawning and the scene state machine. It has no
// terminal dependencies; the platform layer feeds it input events and
// elapsed time and renders it to a core.Screen.
package invaders

import (
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/assets"
	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// RunSummary describes a finished run.
type RunSummary struct {
	Score    int
	Wave     int
	Kills    int
	Duration time.Duration // Game-clock time, pauses excluded
}

// Game is the orchestrator. It owns exactly one active scene, the player
// ship and the score, plus the clock, timers, input state and RNG that
// every scene shares.
type Game struct {
	cfg    config.GameConfig
	assets *assets.Table
	logger *log.Logger

	runtime  core.RuntimeConfig
	width    float64
	height   float64
	fontSize float64

	rng    *SimpleRNG
	clock  *SimClock
	timers *TimerSet
	events *core.EventQueue
	keys   core.KeyState

	scene  Scene
	player *PlayerShip
	score  int
	kills  int
	paused bool
	quit   bool

	delta float64
	fps   float64
	tick  uint64

	runStart time.Duration
	onDeath  func(RunSummary)
}

// New creates a game. Call Reset before ticking it.
func New(cfg config.GameConfig, table *assets.Table, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		cfg:    cfg,
		assets: table,
		logger: logger,
	}
}

// OnDeath registers a callback invoked once per run when the player dies.
func (g *Game) OnDeath(fn func(RunSummary)) {
	g.onDeath = fn
}

// Reset initializes or restarts the game on the welcome screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	w, h := g.cfg.World.Width, g.cfg.World.Height
	if runtime.WorldW > 0 && runtime.WorldH > 0 {
		w, h = runtime.WorldW, runtime.WorldH
	}
	g.width = float64(w)
	g.height = float64(h)
	g.fontSize = math.Round(14 * g.width / core.BaseWidth)

	g.rng = NewSimpleRNG(runtime.Seed)
	g.clock = NewSimClock()
	g.timers = NewTimerSet()
	g.events = core.NewEventQueue()
	g.keys = core.NewKeyState()

	g.player = nil
	g.score = 0
	g.kills = 0
	g.paused = false
	g.quit = false
	g.delta = 0
	g.fps = 0
	g.tick = 0

	g.scene = NewWelcomeScene(g)
	g.clock.Pause()
}

// Post queues an event for the next tick.
func (g *Game) Post(e core.Event) {
	g.events.Post(e)
}

// Tick advances the game by one frame that took elapsed wall-clock time.
func (g *Game) Tick(elapsed time.Duration) {
	g.tick++
	g.delta = core.Delta(elapsed)
	if elapsed > 0 {
		g.fps = float64(time.Second) / float64(elapsed)
	}

	g.clock.Advance(elapsed)
	for _, ev := range g.timers.Advance(g.clock.Now()) {
		g.events.Post(ev)
	}

	for _, ev := range g.events.Drain() {
		g.dispatch(ev)
	}

	g.scene.Update(g.delta)
}

// dispatch applies orchestrator rules to an event, then hands it to the
// active scene.
func (g *Game) dispatch(ev core.Event) {
	switch ev.Type {
	case core.EventQuit:
		g.logger.Info("quitting")
		g.quit = true

	case core.EventKeyUp:
		g.keys.Apply(ev)

	case core.EventKeyDown:
		g.keys.Apply(ev)
		if ev.Key == core.KeyEscape && !g.paused && g.PauseGame() {
			// The pause scene must not see the key that opened it.
			return
		}

	case core.EventDeath:
		if g.scene.Kind() != SceneMain {
			return
		}
		summary := g.summary()
		g.logger.Info("player died", "score", summary.Score, "wave", summary.Wave, "kills", summary.Kills)
		g.SwitchScene(NewDeathScene(g, g.scene), false)
		if g.onDeath != nil {
			g.onDeath(summary)
		}
	}

	g.scene.ProcessEvent(ev)
}

// SwitchScene makes next the active scene. The outgoing scene is cleaned
// up unless cleanup is false, which keeps it intact for an overlay.
// The game clock only runs while the main scene is active.
func (g *Game) SwitchScene(next Scene, cleanup bool) {
	if cleanup {
		g.scene.Cleanup()
	}
	g.logger.Debug("switching scene", "from", g.scene.Kind(), "to", next.Kind(), "cleanup", cleanup)
	g.scene = next

	if next.Kind() == SceneMain {
		g.clock.Resume()
	} else {
		g.clock.Pause()
	}
}

// StartNewGame resets the player and score and starts a fresh main scene.
// A main scene abandoned behind the death screen is cleaned up first.
func (g *Game) StartNewGame() {
	if o, ok := g.scene.(*OverlayScene); ok {
		o.Interrupted().Cleanup()
	}

	g.keys.Reset()
	g.player = NewPlayerShip(g)
	g.score = 0
	g.kills = 0
	g.paused = false
	g.runStart = g.clock.Elapsed()

	g.SwitchScene(NewMainScene(g), true)
	g.logger.Info("new game started")
}

// PauseGame switches to the pause scene. Pausing is only allowed from the
// main scene with the player alive. Returns true if the game was paused.
func (g *Game) PauseGame() bool {
	if g.paused || g.scene.Kind() != SceneMain || g.player == nil || !g.player.Alive() {
		return false
	}
	g.paused = true
	g.SwitchScene(NewPauseScene(g, g.scene), false)
	return true
}

// resume leaves the pause scene for the interrupted one.
func (g *Game) resume(last Scene) {
	if !g.paused {
		return
	}
	g.paused = false
	g.SwitchScene(last, true)
}

// award adds points for a destroyed enemy.
func (g *Game) award(points int) {
	g.score += points
	g.kills++
}

func (g *Game) summary() RunSummary {
	wave := 0
	if m := g.mainScene(); m != nil {
		wave = m.spawner.Wave()
	}
	return RunSummary{
		Score:    g.score,
		Wave:     wave,
		Kills:    g.kills,
		Duration: g.clock.Elapsed() - g.runStart,
	}
}

// mainScene returns the live main scene, looking through an overlay.
func (g *Game) mainScene() *MainScene {
	switch s := g.scene.(type) {
	case *MainScene:
		return s
	case *OverlayScene:
		if m, ok := s.Interrupted().(*MainScene); ok {
			return m
		}
	}
	return nil
}

// Done reports whether a quit event was processed.
func (g *Game) Done() bool {
	return g.quit
}

// Scene returns the active scene.
func (g *Game) Scene() Scene { return g.scene }

// Player returns the player ship, or nil before the first game starts.
func (g *Game) Player() *PlayerShip { return g.player }

// Score returns the current score.
func (g *Game) Score() int { return g.score }

// Delta returns the movement scale of the current tick.
func (g *Game) Delta() float64 { return g.delta }

// Now returns the game clock in seconds.
func (g *Game) Now() float64 { return g.clock.Now() }

// Keys returns the pressed-key table.
func (g *Game) Keys() core.KeyState { return g.keys }

// Bounds returns the playfield rectangle.
func (g *Game) Bounds() core.RectF {
	return core.NewRectF(0, 0, g.width, g.height)
}

// FPS returns the tick rate measured over the last tick.
func (g *Game) FPS() float64 { return g.fps }

// Config returns the game configuration.
func (g *Game) Config() config.GameConfig { return g.cfg }

// State returns a summary of the running game for the platform layer.
func (g *Game) State() core.GameState {
	st := core.GameState{
		Scene:    g.scene.Kind().String(),
		Score:    g.score,
		Kills:    g.kills,
		GameOver: g.scene.Kind() == SceneDeath,
		Paused:   g.paused,
		Quit:     g.quit,
	}
	if g.player != nil {
		st.Health = g.player.Health.Current
	}
	if m := g.mainScene(); m != nil {
		st.Wave = m.spawner.Wave()
	}
	return st
}
