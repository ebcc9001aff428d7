package invaders

import (
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/assets"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

func TestDrawSpriteFollowsCollisionBox(t *testing.T) {
	sp := &assets.Sprite{
		Art:   []string{"# ", "##"},
		Color: core.ColorRed,
		W:     24,
		H:     48,
	}
	r := core.NewRectF(48, 96, 24, 48)

	tests := []struct {
		name       string
		cols, rows int
		x, y       int // Top-left cell of the box
		w, h       int // Cells covered
	}{
		{"reference", 100, 50, 4, 8, 2, 4},
		{"wide", 200, 50, 8, 8, 4, 4},
		{"narrow", 50, 25, 2, 4, 1, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := core.NewScreen(tt.cols, tt.rows)
			newViewport(s, 1200, 600).drawSprite(s, sp, r, core.ColorDefault)

			minX, minY, maxX, maxY := tt.cols, tt.rows, -1, -1
			for y := range tt.rows {
				for x := range tt.cols {
					if s.GetCell(x, y).Rune != '#' {
						continue
					}
					minX, minY = min(minX, x), min(minY, y)
					maxX, maxY = max(maxX, x), max(maxY, y)
				}
			}
			if minX != tt.x || minY != tt.y {
				t.Errorf("sprite origin = (%d, %d), expected (%d, %d)", minX, minY, tt.x, tt.y)
			}
			if maxX-minX+1 != tt.w || maxY-minY+1 != tt.h {
				t.Errorf("sprite covers %dx%d cells, expected %dx%d", maxX-minX+1, maxY-minY+1, tt.w, tt.h)
			}
		})
	}
}

func TestDrawSpriteKeepsTransparency(t *testing.T) {
	sp := &assets.Sprite{Art: []string{"# ", "##"}, W: 24, H: 48}
	s := core.NewScreen(200, 50)
	newViewport(s, 1200, 600).drawSprite(s, sp, core.NewRectF(0, 0, 24, 48), core.ColorDefault)

	// Upper-right quarter of the art is a space, stretched to 2x2 cells
	for y := range 2 {
		for x := 2; x < 4; x++ {
			if c := s.GetCell(x, y); c.Rune == '#' {
				t.Errorf("cell (%d, %d) = %q, expected transparent", x, y, c.Rune)
			}
		}
	}
	if s.GetCell(0, 0).Rune != '#' || s.GetCell(3, 3).Rune != '#' {
		t.Error("opaque art cells were not drawn")
	}
}
