package invaders

import (
	"time"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Autopilot plays the game without a terminal: it starts a game, sweeps
// the ship from side to side and taps the fire key on a fixed cadence.
// The script depends only on the tick count, so runs are reproducible.
type Autopilot struct {
	Game       *Game
	FireEvery  int // Ticks between shots
	SweepTicks int // Ticks spent moving in one direction

	tick    int
	heldDir core.Key
	fireUp  bool
}

// NewAutopilot drives g with the default cadence.
func NewAutopilot(g *Game) *Autopilot {
	return &Autopilot{Game: g, FireEvery: 12, SweepTicks: 90}
}

// Tick posts the scripted input for this tick, then ticks the game.
func (a *Autopilot) Tick(elapsed time.Duration) {
	a.script()
	a.Game.Tick(elapsed)
	a.tick++
}

// Done reports whether the run is over: the player died or a quit was posted.
func (a *Autopilot) Done() bool {
	return a.Game.Done() || a.Game.Scene().Kind() == SceneDeath
}

func (a *Autopilot) script() {
	g := a.Game
	if g.Scene().Kind() == SceneWelcome {
		g.Post(core.KeyDown(core.KeyEnter))
		g.Post(core.KeyUp(core.KeyEnter))
		return
	}
	if g.Scene().Kind() != SceneMain {
		return
	}

	if a.fireUp {
		g.Post(core.KeyUp(core.KeySpace))
		a.fireUp = false
	}
	if a.FireEvery > 0 && a.tick%a.FireEvery == 0 {
		g.Post(core.KeyDown(core.KeySpace))
		a.fireUp = true
	}

	want := core.KeyLeft
	if a.SweepTicks > 0 && (a.tick/a.SweepTicks)%2 == 1 {
		want = core.KeyRight
	}
	if want != a.heldDir {
		if a.heldDir != core.KeyNone {
			g.Post(core.KeyUp(a.heldDir))
		}
		g.Post(core.KeyDown(want))
		a.heldDir = want
	}
}
