package invaders

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

// Direction is the horizontal heading of a patrolling enemy.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
)

// Behavior is one component of an enemy ship. Components run in order
// each tick; returning false stops the rest of the chain for that tick.
type Behavior interface {
	Update(e *EnemyShip) bool
}

// BehaviorFactory builds the component chain for an enemy kind.
type BehaviorFactory func(m *MainScene, ec config.EnemyConfig) []Behavior

// behaviors maps config behavior names to component chains.
var behaviors = registry.New[BehaviorFactory]("enemy behavior")

func init() {
	behaviors.Register(config.BehaviorShooter, func(m *MainScene, ec config.EnemyConfig) []Behavior {
		return []Behavior{
			&Patrol{Speed: ec.Speed},
			&Settle{Line: m.game.height / m.game.cfg.Spawn.SettleDivisor, Descent: m.game.cfg.Spawn.SettleDescent},
			newGun(m, ec),
		}
	})
	behaviors.Register(config.BehaviorRam, func(m *MainScene, ec config.EnemyConfig) []Behavior {
		return []Behavior{
			&Patrol{Speed: ec.Speed},
			&Descend{Speed: ec.DescentSpeed},
			&Ram{Damage: ec.ContactDamage},
		}
	})
}

// EnemyShip is an enemy built from behavior components.
type EnemyShip struct {
	Entity
	Kind   string
	Health Health
	Award  int
	Dir    Direction

	scene     *MainScene
	behaviors []Behavior
}

// NewEnemyShip creates an enemy of the given kind with its mid-bottom at
// (x, 0), just above the playfield, heading in a random direction.
func NewEnemyShip(m *MainScene, kind string, x float64) (*EnemyShip, error) {
	ec, ok := m.game.cfg.Enemies[kind]
	if !ok {
		return nil, fmt.Errorf("invaders: unknown enemy kind %q", kind)
	}
	factory, err := behaviors.Get(ec.Behavior)
	if err != nil {
		return nil, err
	}

	sprite := m.game.assets.GetSprite(ec.Sprite)
	e := &EnemyShip{
		Entity: Entity{
			Rect:   core.RectMidBottomAt(x, 0, sprite.W, sprite.H),
			Sprite: sprite,
		},
		Kind:   kind,
		Health: NewHealth(ec.Health),
		Award:  ec.Award,
		Dir:    Direction(m.game.rng.Intn(2)),
		scene:  m,
	}
	e.behaviors = factory(m, ec)
	return e, nil
}

// Alive reports whether the enemy still has health.
func (e *EnemyShip) Alive() bool { return e.Health.Alive() }

// Update reverts an expired damage tint, then runs the behavior chain.
func (e *EnemyShip) Update() {
	g := e.scene.game
	e.Health.Update(g.Now(), g.cfg.Effects.FlashDuration)
	for _, b := range e.behaviors {
		if e.Removed() || !b.Update(e) {
			return
		}
	}
}

// OnCollision takes damage. The hit that kills the ship awards its points
// and removes it; later hits in the same tick change nothing.
func (e *EnemyShip) OnCollision(damage int) {
	e.Health.Damage(damage, e.scene.game.Now())
	if !e.Health.Alive() && e.Kill() {
		e.scene.game.award(e.Award)
	}
}

// Fire shoots the ship's gun if it has one.
func (e *EnemyShip) Fire() {
	for _, b := range e.behaviors {
		if gun, ok := b.(*Gun); ok {
			gun.fire(e)
			return
		}
	}
}

// Patrol moves a ship horizontally, turning around at the playfield edges.
type Patrol struct {
	Speed float64 // Reference-width units per tick
}

func (p *Patrol) Update(e *EnemyShip) bool {
	g := e.scene.game
	// Always turn back toward the playfield.
	if e.Rect.X < 0 {
		e.Dir = DirRight
	} else if e.Rect.Right() > g.width {
		e.Dir = DirLeft
	}
	step := p.Speed * g.width / core.BaseWidth * g.delta
	if e.Dir == DirLeft {
		e.Rect.X -= step
	} else {
		e.Rect.X += step
	}
	return true
}

// Settle brings a freshly spawned ship down to the settle line. Until it
// gets there, the rest of the chain (shooting) is skipped.
type Settle struct {
	Line    float64 // World y the ship center must pass
	Descent float64 // World pixels per tick
}

func (s *Settle) Update(e *EnemyShip) bool {
	if e.Rect.CenterY() <= s.Line {
		e.Rect.Y += s.Descent * e.scene.game.delta
		return false
	}
	return true
}

// Gun fires the ship's laser on a fixed interval once settled.
type Gun struct {
	Laser     string
	Interval  float64 // Seconds
	LastShoot float64 // Game-clock seconds
}

func newGun(m *MainScene, ec config.EnemyConfig) *Gun {
	// Intervals are drawn in tenths of a second.
	lo := int(math.Round(ec.ShootIntervalMin * 10))
	hi := int(math.Round(ec.ShootIntervalMax * 10))
	interval := float64(m.game.rng.RandInt(lo, hi)) / 10

	scale := m.game.cfg.Difficulty.IntervalScale
	if scale > 0 {
		interval *= scale
	}
	return &Gun{
		Laser:     ec.Laser,
		Interval:  interval,
		LastShoot: m.game.Now(),
	}
}

func (gn *Gun) Update(e *EnemyShip) bool {
	now := e.scene.game.Now()
	if now-gn.LastShoot > gn.Interval {
		gn.fire(e)
		gn.LastShoot = now
	}
	return true
}

func (gn *Gun) fire(e *EnemyShip) {
	cx, bottom := e.Rect.MidBottom()
	e.scene.AddProjectile(gn.Laser, TeamEnemy, cx, bottom)
}

// Descend moves a ship steadily down.
type Descend struct {
	Speed float64 // World pixels per tick
}

func (d *Descend) Update(e *EnemyShip) bool {
	e.Rect.Y += d.Speed * e.scene.game.delta
	return true
}

// Ram damages the player on contact and destroys the ship without an
// award. A ram that leaves the bottom of the playfield is removed.
type Ram struct {
	Damage int
}

func (r *Ram) Update(e *EnemyShip) bool {
	g := e.scene.game
	if p := e.scene.player; p != nil && Collides(e, p) {
		p.OnCollision(r.Damage)
		e.Kill()
		return false
	}
	if e.Rect.Y > g.height {
		e.Kill()
		return false
	}
	return true
}
