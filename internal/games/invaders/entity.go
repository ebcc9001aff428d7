package invaders

import (
	"github.com/vovakirdan/tui-invaders/internal/assets"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Entity is the state shared by everything that lives in a scene:
// a bounding box in world pixels, the sprite it collides and draws with,
// and a removal flag.
type Entity struct {
	Rect    core.RectF
	Sprite  *assets.Sprite
	removed bool
}

// Body returns the entity itself, so embedding types satisfy Collider.
func (e *Entity) Body() *Entity { return e }

// Removed reports whether the entity has been taken out of play.
func (e *Entity) Removed() bool { return e.removed }

// Kill marks the entity for removal at the end of the tick.
// Only the first call returns true, which lets callers attach one-shot
// side effects (score awards) to it.
func (e *Entity) Kill() bool {
	if e.removed {
		return false
	}
	e.removed = true
	return true
}

// Collider is anything with a body that can be tested for overlap.
type Collider interface {
	Body() *Entity
}

// Collides reports whether two entities overlap: bounding boxes first,
// then the sprite masks. A missing mask never collides.
func Collides(a, b Collider) bool {
	ea, eb := a.Body(), b.Body()
	if !ea.Rect.Intersects(eb.Rect) {
		return false
	}
	if ea.Sprite == nil || eb.Sprite == nil {
		return false
	}
	ax, ay := ea.Rect.Origin()
	bx, by := eb.Rect.Origin()
	return core.Overlap(ea.Sprite.Mask, ax, ay, eb.Sprite.Mask, bx, by)
}

// Damageable is the capability of taking hits.
type Damageable interface {
	Collider
	OnCollision(damage int)
	Alive() bool
}

// Mover is the capability of moving on its own each tick.
type Mover interface {
	Move()
}

// Shooter is the capability of firing projectiles.
type Shooter interface {
	Fire()
}

// Flash is the temporary tint shown after a health change.
type Flash int

const (
	FlashNone Flash = iota
	FlashDamaged
	FlashHealed
)

// Health tracks hit points and the hit/heal tint.
// Times are game-clock seconds.
type Health struct {
	Current     int
	Max         int
	LastHitTime float64
	HasBeenHit  bool

	flash   Flash
	flashAt float64
}

// NewHealth creates a full health component.
func NewHealth(maxHP int) Health {
	return Health{Current: maxHP, Max: maxHP}
}

// Damage subtracts damage at time now and starts the damage tint.
// Returns true if this hit took health from above zero to zero or less.
func (h *Health) Damage(damage int, now float64) bool {
	wasAlive := h.Current > 0
	h.Current -= damage
	h.LastHitTime = now
	h.HasBeenHit = true
	h.flash = FlashDamaged
	h.flashAt = now
	return wasAlive && h.Current <= 0
}

// Heal adds amount, clamped to Max, and starts the heal tint.
func (h *Health) Heal(amount int, now float64) {
	h.Current += amount
	if h.Current > h.Max {
		h.Current = h.Max
	}
	h.flash = FlashHealed
	h.flashAt = now
}

// Update clears the tint once duration seconds have passed since it started.
func (h *Health) Update(now, duration float64) {
	if h.flash != FlashNone && now-h.flashAt >= duration {
		h.flash = FlashNone
	}
}

// Flash returns the active tint.
func (h *Health) Flash() Flash { return h.flash }

// Alive reports whether health is above zero.
func (h *Health) Alive() bool { return h.Current > 0 }

// Fraction returns Current/Max clamped to [0, 1].
func (h *Health) Fraction() float64 {
	if h.Max <= 0 {
		return 0
	}
	return core.ClampF(float64(h.Current)/float64(h.Max), 0, 1)
}
