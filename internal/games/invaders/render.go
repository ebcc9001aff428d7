package invaders

import (
	"math"

	"github.com/vovakirdan/tui-invaders/internal/assets"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// WindowTitle is shown on the welcome screen.
const WindowTitle = "Space Invaders"

// Visual characters for rendering
const (
	StarChar      = '.'
	BrightStar    = '+'
	HealthBarChar = '▬'
)

// Render draws the active scene onto the screen.
func (g *Game) Render(s *core.Screen) {
	g.scene.ClearBackground(s)
	g.scene.Draw(s)
}

// viewport maps world pixels onto screen cells.
type viewport struct {
	sx, sy float64 // Cells per world pixel
}

func newViewport(s *core.Screen, worldW, worldH float64) viewport {
	if worldW <= 0 || worldH <= 0 {
		return viewport{}
	}
	return viewport{
		sx: float64(s.Width()) / worldW,
		sy: float64(s.Height()) / worldH,
	}
}

func (v viewport) cell(x, y float64) (int, int) {
	return int(math.Floor(x * v.sx)), int(math.Floor(y * v.sy))
}

// drawSprite draws sprite art stretched over the cells its rect covers, so
// what is drawn lines up with the collision box at any terminal size.
// Art is sampled nearest-neighbour; transparent runes are skipped.
func (v viewport) drawSprite(s *core.Screen, sp *assets.Sprite, r core.RectF, c core.Color) {
	if sp == nil || len(sp.Art) == 0 {
		return
	}
	if c == core.ColorDefault {
		c = sp.Color
	}
	art := make([][]rune, len(sp.Art))
	cols := 0
	for i, row := range sp.Art {
		art[i] = []rune(row)
		cols = max(cols, len(art[i]))
	}
	if cols == 0 {
		return
	}

	x0, y0 := v.cell(r.X, r.Y)
	x1, y1 := v.cell(r.Right(), r.Bottom())
	cw, ch := max(x1-x0, 1), max(y1-y0, 1)
	for ty := range ch {
		row := art[ty*len(art)/ch]
		for tx := range cw {
			ax := tx * cols / cw
			if ax >= len(row) || row[ax] == ' ' {
				continue
			}
			s.Set(x0+tx, y0+ty, row[ax], c)
		}
	}
}

// drawLabelCentered draws a label horizontally centered with its middle at world y.
func (v viewport) drawLabelCentered(s *core.Screen, l *Label, y float64) {
	_, cy := v.cell(0, y)
	s.DrawTextCentered(cy, l.Text, l.Color)
}

// flashColor returns the tint for a health flash, or ColorDefault for none.
func flashColor(f Flash) core.Color {
	switch f {
	case FlashDamaged:
		return core.ColorBrightRed
	case FlashHealed:
		return core.ColorBrightGreen
	default:
		return core.ColorDefault
	}
}

// star is one point of the scrolling background.
type star struct {
	x, y   float64
	bright bool
}

func newStarfield(rng *SimpleRNG, n int, w, h float64) []star {
	stars := make([]star, n)
	for i := range stars {
		stars[i] = star{
			x:      rng.Float64() * w,
			y:      rng.Float64() * h,
			bright: rng.Intn(5) == 0,
		}
	}
	return stars
}

func (m *MainScene) drawStarfield(s *core.Screen, vp viewport) {
	h := m.game.height
	for _, st := range m.stars {
		y := math.Mod(st.y+m.scroll, h)
		ch, c := StarChar, core.ColorDarkGray
		if st.bright {
			ch, c = BrightStar, core.ColorGray
		}
		x, cy := vp.cell(st.x, y)
		s.Set(x, cy, ch, c)
	}
}

// drawStatusBox draws the score, health and health bar in the bottom-right
// corner, sized to a seventh of the world.
func (m *MainScene) drawStatusBox(s *core.Screen, vp viewport) {
	g := m.game
	x0, y0 := vp.cell(g.width-g.width/7, g.height-g.height/7)
	w := s.Width() - x0
	h := s.Height() - y0
	if w < 4 || h < 3 {
		w, h = max(w, 14), max(h, 4)
		x0, y0 = s.Width()-w, s.Height()-h
	}
	box := core.NewRect(x0, y0, w, h)
	s.DrawRect(box, ' ', core.ColorDefault)
	s.DrawBox(box, core.ColorGray)

	health := 0
	if m.player != nil {
		health = m.player.Health.Current
	}
	score := m.text.Get(formatStat("Score", g.score), g.fontSize, maxOpacity)
	hp := m.text.Get(formatStat("Health", health), g.fontSize, maxOpacity)
	s.DrawText(x0+1, y0+1, score.Text, core.ColorWhite)
	if h > 3 {
		s.DrawText(x0+1, y0+2, hp.Text, core.ColorWhite)
	}

	inner := w - 2
	bar := 0
	if m.player != nil && inner > 0 {
		bar = int(math.Round(m.player.Health.Fraction() * float64(inner)))
	}
	s.DrawHLine(x0+1, y0+h-2, bar, HealthBarChar, core.ColorBlue)
}

func (m *MainScene) drawFPS(s *core.Screen) {
	l := m.text.Get(formatStat("FPS", int(math.Round(m.game.fps))), m.game.fontSize/2, maxOpacity)
	s.DrawText(0, 0, l.Text, l.Color)
}
