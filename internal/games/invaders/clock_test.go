package invaders

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

func TestSimClockPause(t *testing.T) {
	c := NewSimClock()
	c.Advance(time.Second)
	c.Pause()
	c.Advance(5 * time.Second)

	if c.Now() != 1 {
		t.Errorf("Now() = %v, expected 1", c.Now())
	}
	if !c.Paused() {
		t.Error("Paused() = false, expected true")
	}

	c.Resume()
	c.Advance(500 * time.Millisecond)
	if c.Elapsed() != 1500*time.Millisecond {
		t.Errorf("Elapsed() = %v, expected 1.5s", c.Elapsed())
	}

	c.Advance(-time.Second)
	if c.Elapsed() != 1500*time.Millisecond {
		t.Errorf("negative Advance changed Elapsed() to %v", c.Elapsed())
	}
}

func TestTimerSet(t *testing.T) {
	ts := NewTimerSet()
	ts.Set(core.EventSpawnShips, 2.5, 0)
	ts.Set(core.EventSpawnPowerUp, 3.0, 0)

	tests := []struct {
		now  float64
		want []core.EventType
	}{
		{1.0, nil},
		{2.5, []core.EventType{core.EventSpawnShips}},
		{2.9, nil},
		{3.0, []core.EventType{core.EventSpawnPowerUp}},
		{5.0, []core.EventType{core.EventSpawnShips}},
		{6.0, []core.EventType{core.EventSpawnPowerUp}},
		{7.5, []core.EventType{core.EventSpawnShips}},
	}

	for _, tt := range tests {
		got := ts.Advance(tt.now)
		if len(got) != len(tt.want) {
			t.Fatalf("Advance(%v) = %v, expected %v", tt.now, got, tt.want)
		}
		for i := range got {
			if got[i].Type != tt.want[i] {
				t.Errorf("Advance(%v)[%d] = %v, expected %v", tt.now, i, got[i].Type, tt.want[i])
			}
		}
	}
}

func TestTimerSetFiresOncePerAdvance(t *testing.T) {
	ts := NewTimerSet()
	ts.Set(core.EventSpawnShips, 1, 0)

	// Ten intervals late: still a single event
	if got := ts.Advance(10); len(got) != 1 {
		t.Errorf("Advance(10) = %d events, expected 1", len(got))
	}
	if got := ts.Advance(10.5); len(got) != 0 {
		t.Errorf("Advance(10.5) = %d events, expected 0", len(got))
	}
	if got := ts.Advance(11); len(got) != 1 {
		t.Errorf("Advance(11) = %d events, expected 1", len(got))
	}
}

func TestTimerSetOrderAndCancel(t *testing.T) {
	ts := NewTimerSet()
	ts.Set(core.EventSpawnPowerUp, 1, 0)
	ts.Set(core.EventSpawnShips, 1, 0)

	got := ts.Advance(1)
	if len(got) != 2 || got[0].Type != core.EventSpawnShips || got[1].Type != core.EventSpawnPowerUp {
		t.Errorf("Advance(1) = %v, expected ships before power-up", got)
	}

	ts.Set(core.EventSpawnShips, 0, 1)
	if ts.Active(core.EventSpawnShips) {
		t.Error("Set() with a zero interval should cancel")
	}
	ts.Cancel(core.EventSpawnPowerUp)
	ts.Cancel(core.EventQuit)
	if ts.Len() != 0 {
		t.Errorf("Len() = %d, expected 0", ts.Len())
	}
	if got := ts.Advance(100); got != nil {
		t.Errorf("Advance() = %v with no timers, expected nil", got)
	}
}
