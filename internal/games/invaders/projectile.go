package invaders

import (
	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Team decides which way a projectile flies and what it can hit.
type Team int

const (
	TeamFriendly Team = iota
	TeamEnemy
)

// String returns a human-readable name for the team.
func (t Team) String() string {
	if t == TeamEnemy {
		return "enemy"
	}
	return "friendly"
}

// teamPolicy holds the per-team movement and collision rules.
type teamPolicy struct {
	dir          float64 // -1 flies up, +1 flies down
	spritePrefix string
	targets      func(m *MainScene) []Damageable
}

var teamPolicies = [...]teamPolicy{
	TeamFriendly: {
		dir: -1,
		targets: func(m *MainScene) []Damageable {
			out := make([]Damageable, 0, len(m.enemies))
			for _, e := range m.enemies {
				if !e.Removed() {
					out = append(out, e)
				}
			}
			return out
		},
	},
	TeamEnemy: {
		dir:          1,
		spritePrefix: "enemy-",
		targets: func(m *MainScene) []Damageable {
			if m.player == nil {
				return nil
			}
			return []Damageable{m.player}
		},
	},
}

// Projectile is a laser shot by either team.
type Projectile struct {
	Entity
	Team   Team
	Kind   string
	Speed  float64
	Damage int

	scene  *MainScene
	policy *teamPolicy
}

// NewProjectile creates a projectile of the given laser kind centered on (cx, cy).
func NewProjectile(m *MainScene, kind string, lc config.LaserConfig, team Team, cx, cy float64) *Projectile {
	policy := &teamPolicies[team]
	sprite := m.game.assets.GetSprite(policy.spritePrefix + kind + "-laser")
	return &Projectile{
		Entity: Entity{
			Rect:   core.RectCenteredAt(cx, cy, sprite.W, sprite.H),
			Sprite: sprite,
		},
		Team:   team,
		Kind:   kind,
		Speed:  lc.Speed,
		Damage: lc.Damage,
		scene:  m,
		policy: policy,
	}
}

// Move advances the projectile away from its owner.
func (p *Projectile) Move() {
	p.Rect = p.Rect.Translate(0, p.policy.dir*p.Speed*p.scene.game.delta)
}

// Update moves the projectile, then removes it if it left the playfield
// or hit something. Removal is idempotent, so both in one tick is fine.
func (p *Projectile) Update() {
	p.Move()
	if !p.Rect.Intersects(p.scene.game.Bounds()) {
		p.Kill()
		return
	}
	if p.hit() {
		p.Kill()
	}
}

// hit damages every opposing target whose mask overlaps the projectile.
func (p *Projectile) hit() bool {
	hit := false
	for _, t := range p.policy.targets(p.scene) {
		if Collides(p, t) {
			t.OnCollision(p.Damage)
			hit = true
		}
	}
	return hit
}
