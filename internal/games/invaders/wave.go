package invaders

import (
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/config"
)

// WaveDefinition is the population cap and composition of one wave.
type WaveDefinition struct {
	Number int
	Cap    func(score int) float64
	Ships  []config.WaveShips
}

// Placement is where one enemy of a spawn batch appears.
type Placement struct {
	Kind string
	X    float64
}

// Spawner sequences enemies: each wave's ships are shuffled into a queue
// that spawn requests consume, bounded by the wave's population cap.
type Spawner struct {
	cfg    config.GameConfig
	rng    *SimpleRNG
	logger *log.Logger

	wave  int
	def   WaveDefinition
	queue []string
}

// NewSpawner creates a spawner on wave 1 with its queue filled.
func NewSpawner(cfg config.GameConfig, rng *SimpleRNG, logger *log.Logger) *Spawner {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &Spawner{cfg: cfg, rng: rng, logger: logger, wave: 1}
	s.def = s.GetWaveDefinition(s.wave)
	s.CreateWave(s.def.Ships)
	return s
}

// GetWaveDefinition returns the definition of wave n. Numbers past the
// configured waves get the final wave.
func (s *Spawner) GetWaveDefinition(n int) WaveDefinition {
	wc := s.cfg.Wave(n)
	return WaveDefinition{
		Number: n,
		Cap:    wc.Cap.Scaled(s.cfg.Difficulty.CapScale),
		Ships:  wc.Ships,
	}
}

// CreateWave expands (kind, count) pairs into tokens, shuffles them and
// appends them to the queue.
func (s *Spawner) CreateWave(ships []config.WaveShips) {
	var tokens []string
	for _, ws := range ships {
		for range ws.Count {
			tokens = append(tokens, ws.Kind)
		}
	}
	s.rng.Shuffle(len(tokens), func(i, j int) { tokens[i], tokens[j] = tokens[j], tokens[i] })
	s.queue = append(s.queue, tokens...)
}

// Plan handles a request to spawn count enemies while live are alive at
// the given score, on a playfield width pixels wide.
//
// The request is clamped so live enemies never exceed the wave cap; a
// clamped count of zero or less spawns nothing. Tokens are dequeued,
// grouped by kind in order of first appearance and laid out per group.
// When the queue runs dry the spawner moves on to the next wave.
func (s *Spawner) Plan(count, score, live int, width float64) []Placement {
	limit := s.def.Cap(score)
	if float64(live+count) > limit {
		count = int(math.Floor(limit - float64(live)))
	}
	if count <= 0 {
		return nil
	}

	n := min(count, len(s.queue))
	tokens := s.queue[:n]
	s.queue = s.queue[n:]

	var kinds []string
	groups := make(map[string]int)
	for _, k := range tokens {
		if groups[k] == 0 {
			kinds = append(kinds, k)
		}
		groups[k]++
	}

	var out []Placement
	for _, k := range kinds {
		s.logger.Debug("spawning ships", "count", groups[k], "kind", k)
		for _, x := range s.layout(groups[k], width) {
			out = append(out, Placement{Kind: k, X: x})
		}
	}

	if len(s.queue) == 0 {
		s.wave++
		s.logger.Info("moving to wave", "wave", s.wave)
		s.def = s.GetWaveDefinition(s.wave)
		s.CreateWave(s.def.Ships)
	}

	return out
}

// layout picks count x positions from evenly spaced slots between a pad
// of a twentieth of the width and the far edge minus that pad. When there
// are more ships than slots, the slots are reused in rounds.
func (s *Spawner) layout(count int, width float64) []float64 {
	pad := int(math.RoundToEven(width / 20))
	area := int(width) - pad
	if count <= 0 || area <= pad {
		return nil
	}

	step := (area + count - 1) / count
	var slots []float64
	for x := pad; x < area; x += step {
		slots = append(slots, float64(x))
	}

	q, r := count/len(slots), count%len(slots)
	rounds := make([]int, 0, q+1)
	for range q {
		rounds = append(rounds, len(slots))
	}
	rounds = append(rounds, r)

	out := make([]float64, 0, count)
	for _, c := range rounds {
		out = append(out, Sample(s.rng, slots, c)...)
	}
	return out
}

// Wave returns the current wave number, starting at 1.
func (s *Spawner) Wave() int { return s.wave }

// Remaining returns the number of tokens left in the queue.
func (s *Spawner) Remaining() int { return len(s.queue) }

// Cap returns the current wave's population cap at score.
func (s *Spawner) Cap(score int) float64 { return s.def.Cap(score) }
