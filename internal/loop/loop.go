// Package loop drives a simulation at a fixed tick rate without a terminal.
// Interactive play is paced by the Bubble Tea runtime instead.
package loop

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/crash"
)

// Simulation is anything that can be ticked until it reports completion.
type Simulation interface {
	Tick(elapsed time.Duration)
	Done() bool
}

// StopReason tells why Run returned.
type StopReason int

const (
	StopDone StopReason = iota
	StopTimeout
	StopCancelled
	StopCrashed
)

func (r StopReason) String() string {
	switch r {
	case StopDone:
		return "done"
	case StopTimeout:
		return "timeout"
	case StopCancelled:
		return "cancelled"
	case StopCrashed:
		return "crashed"
	default:
		return "unknown"
	}
}

// Result summarizes a finished run.
type Result struct {
	Ticks   uint64
	Elapsed time.Duration
	Reason  StopReason
}

// Runner ticks a simulation at TickRate per second on Clock.
type Runner struct {
	Clock    core.TimeProvider
	TickRate int
	Timeout  time.Duration // Zero runs until the simulation is done
	Logger   *log.Logger
}

// NewRunner creates a runner on the real clock.
func NewRunner(tickRate int, timeout time.Duration, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{
		Clock:    core.NewMonotonicClock(),
		TickRate: tickRate,
		Timeout:  timeout,
		Logger:   logger,
	}
}

// Run ticks sim until it is done, the timeout passes or ctx is cancelled.
// A panic inside Tick stops the run and is returned as a *crash.Report.
//
// Each tick receives the wall time since the previous one. When the loop
// falls behind it does not try to catch up: the next deadline is reset
// and the longer elapsed time shows up in the simulation's delta.
func (r *Runner) Run(ctx context.Context, sim Simulation) (Result, error) {
	clock := r.Clock
	if clock == nil {
		clock = core.NewMonotonicClock()
	}
	logger := r.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	interval := core.TickInterval(r.TickRate)

	start := clock.Now()
	prev := start
	next := start.Add(interval)
	var res Result

	logger.Debug("loop started", "interval", interval, "timeout", r.Timeout)
	for {
		select {
		case <-ctx.Done():
			res.Reason = StopCancelled
			res.Elapsed = clock.Now().Sub(start)
			return res, nil
		default:
		}

		if wait := next.Sub(clock.Now()); wait > 0 {
			clock.Sleep(wait)
		}
		now := clock.Now()
		elapsed := now.Sub(prev)
		prev = now
		next = next.Add(interval)
		if next.Before(now) {
			next = now.Add(interval)
		}

		if rep := crash.Recover(func() { sim.Tick(elapsed) }); rep != nil {
			rep.Tick = res.Ticks + 1
			res.Reason = StopCrashed
			res.Elapsed = now.Sub(start)
			return res, rep
		}
		res.Ticks++
		res.Elapsed = now.Sub(start)

		if sim.Done() {
			res.Reason = StopDone
			logger.Debug("loop finished", "reason", res.Reason, "ticks", res.Ticks)
			return res, nil
		}
		if r.Timeout > 0 && res.Elapsed >= r.Timeout {
			res.Reason = StopTimeout
			logger.Debug("loop finished", "reason", res.Reason, "ticks", res.Ticks)
			return res, nil
		}
	}
}
