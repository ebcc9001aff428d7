package invaders

import (
	"sort"
	"time"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// SimClock is pausable game time. It is advanced by the elapsed tick time
// and stands still while paused, so every timer that reads it freezes too.
type SimClock struct {
	elapsed time.Duration
	paused  bool
}

// NewSimClock creates a running clock at zero.
func NewSimClock() *SimClock {
	return &SimClock{}
}

// Advance moves game time forward by d unless paused.
func (c *SimClock) Advance(d time.Duration) {
	if c.paused || d <= 0 {
		return
	}
	c.elapsed += d
}

// Now returns game time in seconds.
func (c *SimClock) Now() float64 {
	return c.elapsed.Seconds()
}

// Elapsed returns game time as a duration.
func (c *SimClock) Elapsed() time.Duration {
	return c.elapsed
}

// Pause stops game time.
func (c *SimClock) Pause() { c.paused = true }

// Resume continues game time.
func (c *SimClock) Resume() { c.paused = false }

// Paused reports whether game time is stopped.
func (c *SimClock) Paused() bool { return c.paused }

type timer struct {
	interval float64
	next     float64
}

// TimerSet holds repeating timers, one per event type. Expired timers post
// their event, mirroring how a window toolkit delivers timer events through
// the regular event queue.
type TimerSet struct {
	timers map[core.EventType]*timer
}

// NewTimerSet creates an empty timer set.
func NewTimerSet() *TimerSet {
	return &TimerSet{timers: make(map[core.EventType]*timer)}
}

// Set (re)starts the timer for ev, firing every interval seconds from now.
// An interval of zero or less cancels it.
func (ts *TimerSet) Set(ev core.EventType, interval, now float64) {
	if interval <= 0 {
		ts.Cancel(ev)
		return
	}
	ts.timers[ev] = &timer{interval: interval, next: now + interval}
}

// Cancel stops the timer for ev. Unknown timers are ignored.
func (ts *TimerSet) Cancel(ev core.EventType) {
	delete(ts.timers, ev)
}

// Active reports whether a timer for ev is running.
func (ts *TimerSet) Active(ev core.EventType) bool {
	_, ok := ts.timers[ev]
	return ok
}

// Len returns the number of running timers.
func (ts *TimerSet) Len() int {
	return len(ts.timers)
}

// Advance returns the events of every timer due at now, in event type
// order. A timer fires at most once per call even if several intervals
// have passed.
func (ts *TimerSet) Advance(now float64) []core.Event {
	var due []core.EventType
	for ev, t := range ts.timers {
		if now < t.next {
			continue
		}
		due = append(due, ev)
		t.next += t.interval
		if t.next <= now {
			t.next = now + t.interval
		}
	}
	if len(due) == 0 {
		return nil
	}

	sort.Slice(due, func(i, j int) bool { return due[i] < due[j] })
	events := make([]core.Event, len(due))
	for i, ev := range due {
		events[i] = core.Event{Type: ev}
	}
	return events
}
