package tui

import (
	"slices"
	"time"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// DefaultHoldWindow is how long a key stays held without a repeat.
const DefaultHoldWindow = 150 * time.Millisecond

// HoldTracker turns terminal key presses into key down/up edges.
// Terminals report presses and auto-repeats but never releases, so a
// movement key counts as held while repeats keep arriving within the
// window and is released once they stop. Action keys are never held:
// every press is a tap.
type HoldTracker struct {
	window time.Duration
	held   map[core.Key]time.Time
}

// NewHoldTracker creates a tracker. A non-positive window uses the default.
func NewHoldTracker(window time.Duration) *HoldTracker {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &HoldTracker{window: window, held: make(map[core.Key]time.Time)}
}

// Press records a press of k at now and returns the resulting events.
// Pressing a direction releases the opposite one immediately. Any other
// key yields a down and an up edge on every press, repeats included.
func (h *HoldTracker) Press(k core.Key, now time.Time) []core.Event {
	if !movement(k) {
		return []core.Event{core.KeyDown(k), core.KeyUp(k)}
	}

	var events []core.Event
	if opp := opposite(k); opp != core.KeyNone {
		if _, ok := h.held[opp]; ok {
			delete(h.held, opp)
			events = append(events, core.KeyUp(opp))
		}
	}

	_, repeat := h.held[k]
	h.held[k] = now
	if !repeat {
		events = append(events, core.KeyDown(k))
	}
	return events
}

// Expire releases every key whose last press is a full window old.
// Events are ordered by key.
func (h *HoldTracker) Expire(now time.Time) []core.Event {
	var expired []core.Key
	for k, at := range h.held {
		if now.Sub(at) >= h.window {
			expired = append(expired, k)
		}
	}
	return h.release(expired)
}

// ReleaseAll releases every held key.
func (h *HoldTracker) ReleaseAll() []core.Event {
	keys := make([]core.Key, 0, len(h.held))
	for k := range h.held {
		keys = append(keys, k)
	}
	return h.release(keys)
}

// Held reports whether k is currently held.
func (h *HoldTracker) Held(k core.Key) bool {
	_, ok := h.held[k]
	return ok
}

func (h *HoldTracker) release(keys []core.Key) []core.Event {
	if len(keys) == 0 {
		return nil
	}
	slices.Sort(keys)
	events := make([]core.Event, len(keys))
	for i, k := range keys {
		delete(h.held, k)
		events[i] = core.KeyUp(k)
	}
	return events
}

func movement(k core.Key) bool {
	return opposite(k) != core.KeyNone
}

func opposite(k core.Key) core.Key {
	switch k {
	case core.KeyLeft:
		return core.KeyRight
	case core.KeyRight:
		return core.KeyLeft
	default:
		return core.KeyNone
	}
}
