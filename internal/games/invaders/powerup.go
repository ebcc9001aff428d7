package invaders

import (
	"fmt"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

// Effect applies a power-up to the player.
type Effect func(p *PlayerShip, amount int)

var effects = registry.New[Effect]("power-up effect")

func init() {
	effects.Register("heal", func(p *PlayerShip, amount int) {
		p.Heal(amount)
	})
}

// PowerUp is a pickup falling toward the player.
type PowerUp struct {
	Entity
	Kind   string
	Amount int
	Speed  float64 // Reference-height units per tick

	scene  *MainScene
	effect Effect
}

// NewPowerUp creates a power-up of the given kind with its top edge at
// the top of the playfield, centered on x.
func NewPowerUp(m *MainScene, kind string, x float64) (*PowerUp, error) {
	pc, ok := m.game.cfg.PowerUps[kind]
	if !ok {
		return nil, fmt.Errorf("invaders: unknown power-up %q", kind)
	}
	effect, err := effects.Get(pc.Effect)
	if err != nil {
		return nil, err
	}
	sprite := m.game.assets.GetSprite(pc.Sprite)
	return &PowerUp{
		Entity: Entity{
			Rect:   core.NewRectF(x-sprite.W/2, 0, sprite.W, sprite.H),
			Sprite: sprite,
		},
		Kind:   kind,
		Amount: pc.Amount,
		Speed:  pc.Speed,
		scene:  m,
		effect: effect,
	}, nil
}

// Move drops the power-up, scaled to the playfield height.
func (p *PowerUp) Move() {
	g := p.scene.game
	p.Rect.Y += p.Speed * g.height / core.BaseHeight * g.delta
}

// Update moves the power-up, then removes it when it leaves the
// playfield or is picked up by the player.
func (p *PowerUp) Update() {
	p.Move()
	if !p.Rect.Intersects(p.scene.game.Bounds()) {
		p.Kill()
		return
	}
	if pl := p.scene.player; pl != nil && Collides(p, pl) {
		p.effect(pl, p.Amount)
		p.Kill()
	}
}
