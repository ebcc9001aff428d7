package invaders

import (
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

func TestTextCacheMemoizes(t *testing.T) {
	c := NewTextCache(nil, 2)

	a := c.Get("Score", 21, 255)
	if b := c.Get("Score", 21.2, 255); a != b {
		t.Error("Get() with the same rounded key should return the cached label")
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, expected 1", c.Len())
	}

	c.Get("Health", 21, 255)
	c.Get("Wave", 21, 255)
	if c.Len() != 2 {
		t.Errorf("Len() = %d, expected eviction down to 2", c.Len())
	}

	c.Purge()
	if c.Len() != 0 {
		t.Errorf("Len() = %d after Purge(), expected 0", c.Len())
	}
}

func TestTextCacheRender(t *testing.T) {
	c := NewTextCache(nil, 0)

	tests := []struct {
		text    string
		size    float64
		opacity float64
		want    string
		color   core.Color
	}{
		{"Paused", 42, 255, "Paused", core.ColorWhite},
		{"Space", 84, 150, "S p a c e", core.ColorGray},
		{"dim", 14, 60, "dim", core.ColorDarkGray},
		{"clamped", 14, 999, "clamped", core.ColorWhite},
	}
	for _, tt := range tests {
		l := c.Get(tt.text, tt.size, tt.opacity)
		if l.Text != tt.want {
			t.Errorf("Get(%q, %v).Text = %q, expected %q", tt.text, tt.size, l.Text, tt.want)
		}
		if l.Color != tt.color {
			t.Errorf("Get(%q, opacity %v).Color = %v, expected %v", tt.text, tt.opacity, l.Color, tt.color)
		}
	}
}
