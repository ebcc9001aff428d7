package invaders

import (
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// PlayerShip is the ship under player control. It outlives scenes: the
// game creates it on a new game and the death scene still draws it.
type PlayerShip struct {
	Entity
	Health Health
	Speed  float64 // World pixels per tick
	Laser  string

	game          *Game
	deathSignaled bool
}

// NewPlayerShip creates the player ship at its spawn point near the
// bottom center of the playfield.
func NewPlayerShip(g *Game) *PlayerShip {
	pc := g.cfg.Player
	sprite := g.assets.GetSprite(pc.Sprite)
	return &PlayerShip{
		Entity: Entity{
			Rect:   core.RectCenteredAt(g.width/2, g.height/1.11, sprite.W, sprite.H),
			Sprite: sprite,
		},
		Health: NewHealth(pc.Health),
		Speed:  pc.Speed * g.width / core.BaseWidth,
		Laser:  pc.Laser,
		game:   g,
	}
}

// Alive reports whether the player still has health.
func (p *PlayerShip) Alive() bool { return p.Health.Alive() }

// ProcessEvent fires once per press of the shoot key.
func (p *PlayerShip) ProcessEvent(e core.Event, m *MainScene) {
	if e.IsKeyDown(core.KeySpace) && p.Alive() {
		p.fire(m)
	}
}

func (p *PlayerShip) fire(m *MainScene) {
	cx, top := p.Rect.MidTop()
	m.AddProjectile(p.Laser, TeamFriendly, cx, top)
}

// Move applies the held direction keys. Left wins when both are held.
// The ship is clamped to the horizontal playfield.
func (p *PlayerShip) Move() {
	keys := p.game.keys
	step := p.Speed * p.game.delta
	switch {
	case keys.AnyPressed(core.LeftKeys):
		p.Rect.X -= step
	case keys.AnyPressed(core.RightKeys):
		p.Rect.X += step
	}
	p.Rect.X = core.ClampF(p.Rect.X, 0, p.game.width-p.Rect.W)
}

// Update moves the ship and reverts an expired damage or heal tint.
func (p *PlayerShip) Update() {
	p.Move()
	p.Health.Update(p.game.Now(), p.game.cfg.Effects.FlashDuration)
}

// OnCollision takes damage. The first time health drops to zero a death
// event is posted; the ship itself stays in play.
func (p *PlayerShip) OnCollision(damage int) {
	p.Health.Damage(damage, p.game.Now())
	if !p.Health.Alive() && !p.deathSignaled {
		p.deathSignaled = true
		p.game.Post(core.Event{Type: core.EventDeath})
	}
}

// Heal restores health up to the maximum.
func (p *PlayerShip) Heal(amount int) {
	p.Health.Heal(amount, p.game.Now())
}
