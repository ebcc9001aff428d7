package config

import (
	"math"
	"testing"
)

func TestCapSpecEval(t *testing.T) {
	tests := []struct {
		name     string
		cap      CapSpec
		score    int
		expected float64
	}{
		{"quadratic at zero", CapSpec{Kind: CapQuadratic, Divisor: 80, Base: 5}, 0, 5},
		{"quadratic grows", CapSpec{Kind: CapQuadratic, Divisor: 80, Base: 5}, 40, 25},
		{"quadratic offset", CapSpec{Kind: CapQuadratic, Offset: 20, Divisor: 80, Base: 10}, 20, 10},
		{"quadratic zero divisor", CapSpec{Kind: CapQuadratic, Base: 1}, 2, 5},
		{"linear", CapSpec{Kind: CapLinear, Factor: 0.5, Base: 1}, 10, 6},
		{"cosine at zero", CapSpec{Kind: CapCosine, Amplitude: 6, Base: 15}, 0, 21},
		{"unknown kind", CapSpec{Kind: "bogus", Base: 7}, 100, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.cap.Eval(tt.score)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("Eval(%d) = %v, expected %v", tt.score, got, tt.expected)
			}
		})
	}
}

func TestCapSpecValidate(t *testing.T) {
	for _, kind := range []string{CapQuadratic, CapLinear, CapCosine} {
		if err := (CapSpec{Kind: kind}).Validate(); err != nil {
			t.Errorf("Validate(%q) = %v, expected nil", kind, err)
		}
	}
	if err := (CapSpec{Kind: "exp"}).Validate(); err == nil {
		t.Error("Validate(exp) = nil, expected error")
	}
}

func TestCapSpecScaled(t *testing.T) {
	c := CapSpec{Kind: CapLinear, Factor: 1, Base: 4}

	if got := c.Scaled(0.5)(4); got != 4 {
		t.Errorf("Scaled(0.5)(4) = %v, expected 4", got)
	}
	// Non-positive scale is treated as 1
	if got := c.Scaled(0)(4); got != 8 {
		t.Errorf("Scaled(0)(4) = %v, expected 8", got)
	}
}
