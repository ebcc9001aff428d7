package loop

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/crash"
)

type countingSim struct {
	ticks   int
	stopAt  int
	panicAt int
	elapsed []time.Duration
	onTick  func(n int)
}

func (s *countingSim) Tick(elapsed time.Duration) {
	s.ticks++
	s.elapsed = append(s.elapsed, elapsed)
	if s.onTick != nil {
		s.onTick(s.ticks)
	}
	if s.panicAt > 0 && s.ticks == s.panicAt {
		panic("simulated failure")
	}
}

func (s *countingSim) Done() bool {
	return s.stopAt > 0 && s.ticks >= s.stopAt
}

func newMockRunner(timeout time.Duration) *Runner {
	r := NewRunner(60, timeout, nil)
	r.Clock = core.NewMockClock(time.Unix(0, 0))
	return r
}

func TestRunUntilDone(t *testing.T) {
	sim := &countingSim{stopAt: 10}

	res, err := newMockRunner(0).Run(context.Background(), sim)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if res.Reason != StopDone || res.Ticks != 10 {
		t.Errorf("Run() = %+v, expected done after 10 ticks", res)
	}
	for i, e := range sim.elapsed {
		if e != core.TickInterval(60) {
			t.Errorf("tick %d elapsed = %v, expected %v", i, e, core.TickInterval(60))
		}
	}
}

func TestRunTimeout(t *testing.T) {
	sim := &countingSim{}

	res, err := newMockRunner(time.Second).Run(context.Background(), sim)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if res.Reason != StopTimeout {
		t.Errorf("Reason = %v, expected timeout", res.Reason)
	}
	// 60 ticks of 16.666666ms fall just short of a second
	if res.Ticks != 61 {
		t.Errorf("Ticks = %d, expected 61", res.Ticks)
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	sim := &countingSim{onTick: func(n int) {
		if n == 3 {
			cancel()
		}
	}}

	res, err := newMockRunner(0).Run(ctx, sim)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if res.Reason != StopCancelled || res.Ticks != 3 {
		t.Errorf("Run() = %+v, expected cancelled after 3 ticks", res)
	}
}

func TestRunRecoversPanic(t *testing.T) {
	sim := &countingSim{panicAt: 5}

	res, err := newMockRunner(0).Run(context.Background(), sim)
	if res.Reason != StopCrashed {
		t.Errorf("Reason = %v, expected crashed", res.Reason)
	}

	var rep *crash.Report
	if !errors.As(err, &rep) {
		t.Fatalf("Run() error = %v, expected *crash.Report", err)
	}
	if rep.Tick != 5 || rep.Value != "simulated failure" {
		t.Errorf("report tick = %d, value = %v", rep.Tick, rep.Value)
	}
	if res.Ticks != 4 {
		t.Errorf("Ticks = %d, expected 4 completed ticks", res.Ticks)
	}
}

func TestStopReasonString(t *testing.T) {
	tests := []struct {
		reason StopReason
		want   string
	}{
		{StopDone, "done"},
		{StopTimeout, "timeout"},
		{StopCancelled, "cancelled"},
		{StopCrashed, "crashed"},
		{StopReason(9), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.reason.String(); got != tt.want {
			t.Errorf("StopReason(%d).String() = %q, expected %q", tt.reason, got, tt.want)
		}
	}
}
