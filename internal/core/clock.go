package core

import (
	"sync"
	"time"
)

// TimeProvider is a source of wall-clock time for the loop.
// Sleep lets a fixed-rate loop wait for its next deadline; the mock
// implementation advances instead of blocking.
type TimeProvider interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// MonotonicClock reads the real system time.
type MonotonicClock struct{}

// NewMonotonicClock creates a real-time provider.
func NewMonotonicClock() *MonotonicClock {
	return &MonotonicClock{}
}

// Now returns the current time with its monotonic reading.
func (c *MonotonicClock) Now() time.Time {
	return time.Now()
}

// Sleep blocks for d.
func (c *MonotonicClock) Sleep(d time.Duration) {
	time.Sleep(d)
}

// MockClock is a controllable time source for tests and headless runs.
type MockClock struct {
	mu      sync.RWMutex
	current time.Time
}

// NewMockClock creates a mock clock starting at start.
func NewMockClock(start time.Time) *MockClock {
	return &MockClock{current: start}
}

// Now returns the mocked time.
func (m *MockClock) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// SetTime sets the mocked time.
func (m *MockClock) SetTime(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = t
}

// Advance moves the mocked time forward by d.
func (m *MockClock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = m.current.Add(d)
}

// Sleep advances the mocked time instead of blocking.
func (m *MockClock) Sleep(d time.Duration) {
	if d > 0 {
		m.Advance(d)
	}
}

// FrameDuration is the length of one tick at the base rate.
const FrameDuration = time.Second / BaseFPS

// Delta converts elapsed time into the movement scale factor.
// A tick of exactly 1/60 s yields 1.0, so per-tick speeds in config
// hold at the base rate and stay frame-rate independent elsewhere.
func Delta(elapsed time.Duration) float64 {
	ms := float64(elapsed) / float64(time.Millisecond)
	return ms / (1000.0 / BaseFPS)
}

// TickInterval returns the wall-clock interval between ticks at the given rate.
func TickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = BaseFPS
	}
	return time.Second / time.Duration(tickRate)
}
