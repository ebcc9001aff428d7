package core

// Mask is a per-pixel opacity bitmap used for precise collision tests.
// Bounding boxes give a cheap pre-filter; the mask removes false hits
// caused by transparent corners of a sprite.
type Mask struct {
	w, h int
	bits []bool
}

// NewMask creates an empty (fully transparent) mask.
func NewMask(w, h int) *Mask {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Mask{w: w, h: h, bits: make([]bool, w*h)}
}

// MaskFromArt builds a mask from sprite art. Every non-space rune becomes
// an opaque cellW x cellH block of pixels.
func MaskFromArt(art []string, cellW, cellH int) *Mask {
	cols := 0
	for _, row := range art {
		if n := len([]rune(row)); n > cols {
			cols = n
		}
	}
	m := NewMask(cols*cellW, len(art)*cellH)
	for ry, row := range art {
		for cx, r := range []rune(row) {
			if r == ' ' {
				continue
			}
			for py := 0; py < cellH; py++ {
				for px := 0; px < cellW; px++ {
					m.Set(cx*cellW+px, ry*cellH+py, true)
				}
			}
		}
	}
	return m
}

// Width returns the mask width in pixels.
func (m *Mask) Width() int { return m.w }

// Height returns the mask height in pixels.
func (m *Mask) Height() int { return m.h }

// Set marks a pixel opaque or transparent. Out-of-bounds writes are ignored.
func (m *Mask) Set(x, y int, opaque bool) {
	if x < 0 || x >= m.w || y < 0 || y >= m.h {
		return
	}
	m.bits[y*m.w+x] = opaque
}

// At reports whether the pixel is opaque. Out-of-bounds pixels are transparent.
func (m *Mask) At(x, y int) bool {
	if x < 0 || x >= m.w || y < 0 || y >= m.h {
		return false
	}
	return m.bits[y*m.w+x]
}

// Overlap reports whether mask a placed at (ax, ay) and mask b placed at
// (bx, by) share at least one opaque pixel.
func Overlap(a *Mask, ax, ay int, b *Mask, bx, by int) bool {
	if a == nil || b == nil {
		return false
	}
	x0 := max(ax, bx)
	y0 := max(ay, by)
	x1 := min(ax+a.w, bx+b.w)
	y1 := min(ay+a.h, by+b.h)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if a.At(x-ax, y-ay) && b.At(x-bx, y-by) {
				return true
			}
		}
	}
	return false
}
