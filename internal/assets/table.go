// Package assets provides the sprite and font table used by the game.
// The table is built once at startup and handed to the components that
// need it; nothing looks assets up through package-level state.
package assets

import (
	"fmt"
	"io"
	"math"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// ErrorSprite is the fallback returned for unknown sprite names.
const ErrorSprite = "error"

// DefaultFont is the font used for all in-game text.
const DefaultFont = "pixeled"

// SpriteDef describes a sprite as rune art plus its color.
type SpriteDef struct {
	Art   []string
	Color core.Color
}

// Sprite is a loaded sprite: its art, world-pixel size and collision mask.
type Sprite struct {
	Name  string
	Art   []string
	Color core.Color
	W, H  float64
	Mask  *core.Mask
}

// Font is a font handle. Text metrics are in world pixels.
type Font struct {
	Name string
	Size int
}

// Measure returns the world-pixel size of text rendered in this font.
func (f *Font) Measure(text string) (w, h float64) {
	n := len([]rune(text))
	return float64(n*f.Size) * 0.75, float64(f.Size) * 1.5
}

// Options controls how sprite art is scaled into world pixels.
type Options struct {
	CellW int // World pixels per art column
	CellH int // World pixels per art row
}

// DefaultOptions maps one art character to a 12x24 pixel block, which
// lines a 1200x675 world up with a 100-column terminal.
func DefaultOptions() Options {
	return Options{CellW: 12, CellH: 24}
}

type fontKey struct {
	name string
	size int
}

// Table holds every sprite loaded at startup and caches fonts by (name, size).
// It is safe for concurrent use, so one table can back several SSH sessions.
type Table struct {
	logger  *log.Logger
	opts    Options
	sprites map[string]*Sprite
	fonts   map[string]bool // Known font names

	mu        sync.Mutex
	fontCache map[fontKey]*Font
	missing   map[string]bool // Sprite names already reported
}

// NewTable builds a table from sprite definitions.
// The definitions must include the error sprite.
func NewTable(logger *log.Logger, opts Options, defs map[string]SpriteDef) (*Table, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.CellW <= 0 || opts.CellH <= 0 {
		return nil, fmt.Errorf("assets: invalid cell size %dx%d", opts.CellW, opts.CellH)
	}
	if _, ok := defs[ErrorSprite]; !ok {
		return nil, fmt.Errorf("assets: missing %q sprite", ErrorSprite)
	}

	t := &Table{
		logger:    logger,
		opts:      opts,
		sprites:   make(map[string]*Sprite, len(defs)),
		fonts:     map[string]bool{DefaultFont: true},
		fontCache: make(map[fontKey]*Font),
		missing:   make(map[string]bool),
	}

	for name, def := range defs {
		if len(def.Art) == 0 {
			return nil, fmt.Errorf("assets: sprite %q has no art", name)
		}
		mask := core.MaskFromArt(def.Art, opts.CellW, opts.CellH)
		t.sprites[name] = &Sprite{
			Name:  name,
			Art:   def.Art,
			Color: def.Color,
			W:     float64(mask.Width()),
			H:     float64(mask.Height()),
			Mask:  mask,
		}
		logger.Debug("loaded sprite", "name", name, "w", mask.Width(), "h", mask.Height())
	}

	return t, nil
}

// NewDefaultTable builds a table from the built-in sprite set.
func NewDefaultTable(logger *log.Logger) (*Table, error) {
	return NewTable(logger, DefaultOptions(), BuiltinSprites())
}

// Options returns the scaling options the table was built with.
func (t *Table) Options() Options {
	return t.opts
}

// GetSprite returns the named sprite. Unknown names fall back to the error
// sprite; the first miss for each name is logged as a warning.
func (t *Table) GetSprite(name string) *Sprite {
	if s, ok := t.sprites[name]; ok {
		return s
	}

	t.mu.Lock()
	if !t.missing[name] {
		t.missing[name] = true
		t.logger.Warn("failed to get sprite", "name", name)
	}
	t.mu.Unlock()

	return t.sprites[ErrorSprite]
}

// HasSprite reports whether the sprite exists without falling back.
func (t *Table) HasSprite(name string) bool {
	_, ok := t.sprites[name]
	return ok
}

// GetFont returns the font handle for (name, size), creating and caching it
// on first use. Sizes are rounded to whole points.
func (t *Table) GetFont(name string, size float64) *Font {
	if !t.fonts[name] {
		t.logger.Warn("unknown font, using default", "name", name)
		name = DefaultFont
	}
	key := fontKey{name: name, size: int(math.Round(size))}

	t.mu.Lock()
	defer t.mu.Unlock()

	if f, ok := t.fontCache[key]; ok {
		return f
	}
	f := &Font{Name: key.name, Size: key.size}
	t.fontCache[key] = f
	t.logger.Debug("cached font", "name", key.name, "size", key.size)
	return f
}

// SpriteNames returns the loaded sprite names, sorted.
func (t *Table) SpriteNames() []string {
	names := make([]string, 0, len(t.sprites))
	for name := range t.sprites {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
