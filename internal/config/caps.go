package config

import (
	"fmt"
	"math"
)

// Population cap curve kinds.
const (
	CapQuadratic = "quadratic" // ((score - offset)^2) / divisor + base
	CapLinear    = "linear"    // score * factor + base
	CapCosine    = "cosine"    // cos(score) * amplitude + base
)

// CapSpec is a population cap as a function of score.
// The curves are tuning data, not a fixed contract: only the enforcement
// of whatever the curve returns is guaranteed by the spawner.
type CapSpec struct {
	Kind      string  `yaml:"kind"`
	Offset    float64 `yaml:"offset,omitempty"`
	Divisor   float64 `yaml:"divisor,omitempty"`
	Factor    float64 `yaml:"factor,omitempty"`
	Amplitude float64 `yaml:"amplitude,omitempty"`
	Base      float64 `yaml:"base"`
}

// Eval returns the cap for the given score.
func (c CapSpec) Eval(score int) float64 {
	s := float64(score)
	switch c.Kind {
	case CapQuadratic:
		d := c.Divisor
		if d == 0 {
			d = 1 // Prevent division by zero
		}
		return (s-c.Offset)*(s-c.Offset)/d + c.Base
	case CapLinear:
		return s*c.Factor + c.Base
	case CapCosine:
		return math.Cos(s)*c.Amplitude + c.Base
	default:
		return c.Base
	}
}

// Validate checks that the curve kind is known.
func (c CapSpec) Validate() error {
	switch c.Kind {
	case CapQuadratic, CapLinear, CapCosine:
		return nil
	default:
		return fmt.Errorf("unknown cap kind %q", c.Kind)
	}
}

// Scaled returns a cap function that multiplies the curve by scale.
func (c CapSpec) Scaled(scale float64) func(score int) float64 {
	if scale <= 0 {
		scale = 1
	}
	return func(score int) float64 {
		return c.Eval(score) * scale
	}
}
