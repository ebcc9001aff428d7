package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/assets"
	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/crash"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

// Options configures one interactive game.
type Options struct {
	Config     config.GameConfig
	Assets     *assets.Table
	Store      *storage.Store // Optional; runs are not saved without it
	Logger     *log.Logger
	Runtime    core.RuntimeConfig
	Player     string // Name saved with each run
	Difficulty string
	HoldWindow time.Duration
	Timeout    time.Duration // Quit after this long; zero plays until quit

	// OnCrash is called when a tick panics, before the program quits.
	OnCrash func(rep *crash.Report)
}

// Model is the Bubble Tea model running one game.
type Model struct {
	game   *invaders.Game
	opts   Options
	logger *log.Logger
	screen *core.Screen
	keys   KeyMap
	help   help.Model
	hold   *HoldTracker
	now    func() time.Time

	started  time.Time
	lastTick time.Time
	crash    *crash.Report
	quitting bool
}

// NewModel creates a model with a fresh game on its welcome screen.
func NewModel(opts Options) *Model {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = core.BaseFPS
	}
	if opts.Runtime.ScreenW <= 0 || opts.Runtime.ScreenH <= 0 {
		def := core.DefaultConfig()
		opts.Runtime.ScreenW, opts.Runtime.ScreenH = def.ScreenW, def.ScreenH
	}

	m := &Model{
		game:   invaders.New(opts.Config, opts.Assets, opts.Logger),
		opts:   opts,
		logger: opts.Logger,
		screen: core.NewScreen(opts.Runtime.ScreenW, playHeight(opts.Runtime.ScreenH)),
		keys:   DefaultKeyMap(),
		help:   help.New(),
		hold:   NewHoldTracker(opts.HoldWindow),
		now:    time.Now,
	}
	m.help.Width = opts.Runtime.ScreenW
	m.game.Reset(opts.Runtime)
	m.game.OnDeath(m.saveRun)
	return m
}

// playHeight leaves the bottom row for the key help.
func playHeight(rows int) int {
	return max(rows-1, 1)
}

// Game returns the running game.
func (m *Model) Game() *invaders.Game { return m.game }

// Crash returns the report of a tick that panicked, if any.
func (m *Model) Crash() *crash.Report { return m.crash }

// Init starts the tick loop.
func (m *Model) Init() tea.Cmd {
	return tickCmd(m.opts.Runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, playHeight(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "q" || msg.String() == "ctrl+c" {
		m.quitting = true
		m.game.Post(core.Event{Type: core.EventQuit})
		return m, tea.Quit
	}

	k, ok := m.keys.Resolve(msg)
	if !ok {
		return m, nil
	}
	for _, ev := range m.hold.Press(k, m.now()) {
		m.game.Post(ev)
	}
	return m, nil
}

func (m *Model) handleTick(t time.Time) (tea.Model, tea.Cmd) {
	elapsed := core.FrameDuration
	if m.lastTick.IsZero() {
		m.started = t
	} else {
		elapsed = t.Sub(m.lastTick)
	}
	m.lastTick = t

	for _, ev := range m.hold.Expire(m.now()) {
		m.game.Post(ev)
	}

	scene := m.game.Scene().Kind()
	if rep := crash.Recover(func() { m.game.Tick(elapsed) }); rep != nil {
		rep.Tick = m.game.Snapshot().Tick
		m.crash = rep
		m.quitting = true
		if m.opts.OnCrash != nil {
			m.opts.OnCrash(rep)
		}
		return m, tea.Quit
	}

	// Held directions do not carry across a scene change; the next
	// repeat presses them again.
	if m.game.Scene().Kind() != scene {
		for _, ev := range m.hold.ReleaseAll() {
			m.game.Post(ev)
		}
	}

	if m.game.Done() || (m.opts.Timeout > 0 && t.Sub(m.started) >= m.opts.Timeout) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.opts.Runtime.TickRate)
}

// saveRun stores a finished run. Saving is best effort: a failure is
// logged and the game carries on.
func (m *Model) saveRun(r invaders.RunSummary) {
	m.logger.Info("run finished", "player", m.opts.Player, "score", r.Score, "wave", r.Wave, "kills", r.Kills)
	if m.opts.Store == nil {
		return
	}
	_, err := m.opts.Store.SaveRun(storage.RunRecord{
		Player:     m.opts.Player,
		Score:      r.Score,
		Wave:       r.Wave,
		Kills:      r.Kills,
		Duration:   r.Duration,
		Seed:       m.opts.Runtime.Seed,
		Difficulty: m.opts.Difficulty,
	})
	if err != nil {
		m.logger.Warn("cannot save run", "err", err)
	}
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// View renders the game and a one-line key help.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run plays one interactive game in the alternate screen until the player
// quits. A panicking tick ends the program and is returned as a
// *crash.Report once the terminal has been restored.
func Run(opts Options) error {
	m := NewModel(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	if m.crash != nil {
		return m.crash
	}
	return nil
}
