package invaders

import (
	"math"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/vovakirdan/tui-invaders/internal/assets"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

const defaultTextCacheSize = 32

// Label is rendered text: the runes to draw, their color and the size the
// text occupies in world pixels.
type Label struct {
	Text  string
	Color core.Color
	W, H  float64
}

type textKey struct {
	text    string
	size    int
	opacity int
}

// TextCache memoizes rendered labels by (text, size, opacity).
// Each scene owns one and purges it on cleanup.
type TextCache struct {
	assets *assets.Table
	cache  *lru.Cache[textKey, *Label]
}

// NewTextCache creates a cache holding up to size labels.
func NewTextCache(table *assets.Table, size int) *TextCache {
	if size <= 0 {
		size = defaultTextCacheSize
	}
	cache, err := lru.New[textKey, *Label](size)
	if err != nil {
		// Only returned for a non-positive size.
		panic(err)
	}
	return &TextCache{assets: table, cache: cache}
}

// Get returns the label for text at the given font size and opacity
// (0-255), rendering it on a miss.
func (c *TextCache) Get(text string, size, opacity float64) *Label {
	key := textKey{
		text:    text,
		size:    int(math.Round(size)),
		opacity: int(math.Round(core.ClampF(opacity, 0, 255))),
	}
	if l, ok := c.cache.Get(key); ok {
		return l
	}
	l := c.render(key)
	c.cache.Add(key, l)
	return l
}

// Len returns the number of cached labels.
func (c *TextCache) Len() int {
	return c.cache.Len()
}

// Purge drops every cached label.
func (c *TextCache) Purge() {
	c.cache.Purge()
}

// Large text is letter-spaced so titles stand out in a terminal.
const spacedTextSize = 72

func (c *TextCache) render(key textKey) *Label {
	text := key.text
	if key.size >= spacedTextSize {
		text = strings.Join(strings.Split(text, ""), " ")
	}

	l := &Label{Text: text, Color: opacityColor(key.opacity)}
	if c.assets != nil {
		font := c.assets.GetFont(assets.DefaultFont, float64(key.size))
		l.W, l.H = font.Measure(text)
	}
	return l
}

// opacityColor maps an alpha value onto the terminal's gray ramp.
func opacityColor(opacity int) core.Color {
	switch {
	case opacity >= 200:
		return core.ColorWhite
	case opacity >= 110:
		return core.ColorGray
	default:
		return core.ColorDarkGray
	}
}
