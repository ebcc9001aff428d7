package tui

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

func TestHoldTrackerRepeatsKeepKeyHeld(t *testing.T) {
	h := NewHoldTracker(150 * time.Millisecond)
	t0 := time.Unix(0, 0)

	got := h.Press(core.KeyLeft, t0)
	if len(got) != 1 || got[0] != core.KeyDown(core.KeyLeft) {
		t.Fatalf("first Press() = %v, expected a single key down", got)
	}

	// Auto-repeats every 50ms produce no new edges
	for i := 1; i <= 5; i++ {
		now := t0.Add(time.Duration(i) * 50 * time.Millisecond)
		if got := h.Press(core.KeyLeft, now); len(got) != 0 {
			t.Errorf("repeat Press() = %v, expected no events", got)
		}
		if got := h.Expire(now); len(got) != 0 {
			t.Errorf("Expire() = %v while repeats arrive", got)
		}
	}

	last := t0.Add(250 * time.Millisecond)
	if got := h.Expire(last.Add(149 * time.Millisecond)); len(got) != 0 {
		t.Errorf("Expire() = %v before the window lapsed", got)
	}
	got = h.Expire(last.Add(150 * time.Millisecond))
	if len(got) != 1 || got[0] != core.KeyUp(core.KeyLeft) {
		t.Errorf("Expire() = %v, expected a synthesized key up", got)
	}
	if h.Held(core.KeyLeft) {
		t.Error("key should be released")
	}
}

func TestHoldTrackerOppositeDirection(t *testing.T) {
	h := NewHoldTracker(0)
	now := time.Unix(0, 0)

	h.Press(core.KeyLeft, now)
	got := h.Press(core.KeyRight, now.Add(10*time.Millisecond))

	want := []core.Event{core.KeyUp(core.KeyLeft), core.KeyDown(core.KeyRight)}
	if len(got) != len(want) {
		t.Fatalf("Press(Right) = %v, expected %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Press(Right)[%d] = %v, expected %v", i, got[i], want[i])
		}
	}
	if h.Held(core.KeyLeft) || !h.Held(core.KeyRight) {
		t.Error("only the right key should be held")
	}
}

func TestHoldTrackerReleaseAll(t *testing.T) {
	h := NewHoldTracker(time.Second)
	now := time.Unix(0, 0)
	h.Press(core.KeyRight, now)

	got := h.ReleaseAll()
	if len(got) != 1 || got[0] != core.KeyUp(core.KeyRight) {
		t.Fatalf("ReleaseAll() = %v, expected a single key up", got)
	}
	if got := h.ReleaseAll(); got != nil {
		t.Errorf("second ReleaseAll() = %v, expected nil", got)
	}
	// A released key goes down again on its next repeat
	if got := h.Press(core.KeyRight, now.Add(10*time.Millisecond)); len(got) != 1 {
		t.Errorf("Press() after ReleaseAll() = %v, expected a key down", got)
	}
}

func TestHoldTrackerActionKeysTap(t *testing.T) {
	h := NewHoldTracker(150 * time.Millisecond)
	t0 := time.Unix(0, 0)

	for _, k := range []core.Key{core.KeySpace, core.KeyEscape, core.KeyEnter, core.KeyR} {
		for i, at := range []time.Time{t0, t0.Add(60 * time.Millisecond)} {
			got := h.Press(k, at)
			want := []core.Event{core.KeyDown(k), core.KeyUp(k)}
			if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
				t.Errorf("press %d of %v = %v, expected %v", i+1, k, got, want)
			}
		}
		if h.Held(k) {
			t.Errorf("%v should never be held", k)
		}
	}
	if got := h.Expire(t0.Add(time.Second)); got != nil {
		t.Errorf("Expire() = %v, expected nil", got)
	}
}
