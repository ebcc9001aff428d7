package invaders

import (
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// SceneKind identifies a scene of the state machine.
type SceneKind int

const (
	SceneWelcome SceneKind = iota
	SceneMain
	ScenePause
	SceneDeath
)

// String returns a human-readable name for the scene kind.
func (k SceneKind) String() string {
	switch k {
	case SceneWelcome:
		return "welcome"
	case SceneMain:
		return "main"
	case ScenePause:
		return "pause"
	case SceneDeath:
		return "death"
	default:
		return "unknown"
	}
}

// Scene is one state of the game. Update must not render and draw
// methods must not mutate simulation state, so the game runs unchanged
// without a renderer.
type Scene interface {
	Kind() SceneKind
	ProcessEvent(e core.Event)
	Update(delta float64)
	ClearBackground(s *core.Screen)
	Draw(s *core.Screen)
	// Cleanup releases what the scene owns. It is called when the game
	// switches away, unless the switch keeps the scene for later.
	Cleanup()
}

// MenuEffects drives the blinking and breathing text of menu scenes.
type MenuEffects struct {
	Opacity float64
	SizeMod float64

	blinkSpeed  float64
	resizeSpeed float64
	fading      bool
	growing     bool
}

// Bounds of the menu text effects.
const (
	minOpacity = 50
	maxOpacity = 255
	minSizeMod = 85
	maxSizeMod = 105
)

// NewMenuEffects starts fully opaque and fading, at normal size and growing.
func NewMenuEffects(blinkSpeed, resizeSpeed float64) MenuEffects {
	return MenuEffects{
		Opacity:     maxOpacity,
		SizeMod:     100,
		blinkSpeed:  blinkSpeed,
		resizeSpeed: resizeSpeed,
		fading:      true,
		growing:     true,
	}
}

// Update advances both effects by delta, bouncing at their bounds.
func (m *MenuEffects) Update(delta float64) {
	if m.fading {
		m.Opacity -= m.blinkSpeed * delta
	} else {
		m.Opacity += m.blinkSpeed * delta
	}
	if m.Opacity <= minOpacity {
		m.fading = false
	} else if m.Opacity >= maxOpacity {
		m.fading = true
	}

	if m.growing {
		m.SizeMod += m.resizeSpeed * delta
	} else {
		m.SizeMod -= m.resizeSpeed * delta
	}
	if m.SizeMod <= minSizeMod {
		m.growing = true
	} else if m.SizeMod >= maxSizeMod {
		m.growing = false
	}
}

// menuBase is shared by the welcome, pause and death scenes.
type menuBase struct {
	game *Game
	fx   MenuEffects
	text *TextCache
}

func newMenuBase(g *Game) menuBase {
	return menuBase{
		game: g,
		fx:   NewMenuEffects(g.cfg.Effects.BlinkSpeed, g.cfg.Effects.ResizeSpeed),
		text: NewTextCache(g.assets, g.cfg.Effects.TextCacheSize),
	}
}

func (m *menuBase) Update(delta float64) {
	m.fx.Update(delta)
}

func (m *menuBase) Cleanup() {
	m.text.Purge()
}

// Effects returns the current text effects.
func (m *menuBase) Effects() MenuEffects {
	return m.fx
}

// WelcomeScene is the title screen. Enter starts a game.
type WelcomeScene struct {
	menuBase
}

// NewWelcomeScene creates the title screen.
func NewWelcomeScene(g *Game) *WelcomeScene {
	return &WelcomeScene{menuBase: newMenuBase(g)}
}

func (w *WelcomeScene) Kind() SceneKind { return SceneWelcome }

func (w *WelcomeScene) ProcessEvent(e core.Event) {
	if e.IsKeyDown(core.KeyEnter) {
		w.game.StartNewGame()
	}
}

func (w *WelcomeScene) ClearBackground(s *core.Screen) {
	s.Clear()
}

func (w *WelcomeScene) Draw(s *core.Screen) {
	vp := newViewport(s, w.game.width, w.game.height)
	title := w.text.Get(WindowTitle, w.game.fontSize*4*w.fx.SizeMod/100, maxOpacity)
	vp.drawLabelCentered(s, title, w.game.height/2/2.5)
	play := w.text.Get("Press ENTER to play", w.game.fontSize, w.fx.Opacity)
	vp.drawLabelCentered(s, play, w.game.height/2)
}

// OverlayScene is a menu drawn over a darkened, frozen scene: the pause
// and death screens. It never cleans up the scene it wraps.
type OverlayScene struct {
	menuBase
	kind   SceneKind
	title  string
	hint   string
	last   Scene
	onKey  core.Key
	action func(o *OverlayScene)
}

// NewPauseScene wraps the interrupted scene. Escape resumes it.
func NewPauseScene(g *Game, last Scene) *OverlayScene {
	return &OverlayScene{
		menuBase: newMenuBase(g),
		kind:     ScenePause,
		title:    "Paused",
		hint:     "(press ESCAPE to unpause)",
		last:     last,
		onKey:    core.KeyEscape,
		action:   func(o *OverlayScene) { o.game.resume(o.last) },
	}
}

// NewDeathScene wraps the scene the player died in. R starts a new game.
func NewDeathScene(g *Game, last Scene) *OverlayScene {
	return &OverlayScene{
		menuBase: newMenuBase(g),
		kind:     SceneDeath,
		title:    "You died",
		hint:     "Press R to restart",
		last:     last,
		onKey:    core.KeyR,
		action:   func(o *OverlayScene) { o.game.StartNewGame() },
	}
}

func (o *OverlayScene) Kind() SceneKind { return o.kind }

// Interrupted returns the wrapped scene.
func (o *OverlayScene) Interrupted() Scene { return o.last }

func (o *OverlayScene) ProcessEvent(e core.Event) {
	if e.IsKeyDown(o.onKey) {
		o.action(o)
	}
}

// ClearBackground draws the wrapped scene, dimmed.
func (o *OverlayScene) ClearBackground(s *core.Screen) {
	o.last.ClearBackground(s)
	o.last.Draw(s)
	s.Dim(core.ColorDarkGray)
}

func (o *OverlayScene) Draw(s *core.Screen) {
	vp := newViewport(s, o.game.width, o.game.height)
	cy := o.game.height / 2
	title := o.text.Get(o.title, o.game.fontSize*2, o.fx.Opacity)
	vp.drawLabelCentered(s, title, cy)
	hint := o.text.Get(o.hint, o.game.fontSize/1.5, o.fx.Opacity/1.5)
	vp.drawLabelCentered(s, hint, cy+o.game.fontSize*3)
}
