package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dodgey/internal/audio"
	"github.com/vovakirdan/dodgey/internal/config"
	"github.com/vovakirdan/dodgey/internal/core"
	"github.com/vovakirdan/dodgey/internal/game"
	"github.com/vovakirdan/dodgey/internal/storage"
)

// Options configures a terminal session.
type Options struct {
	Game      config.DodgeyConfig
	Runtime   core.RuntimeConfig
	Store     *storage.Store // nil disables run history
	Audio     audio.Player   // nil plays nothing
	Logger    *log.Logger    // nil discards
	Host      string         // Recorded with the run ("play", "ssh")
	Player    string
	HoldTicks int
}

// Model is the Bubble Tea model for a Dodgey session.
type Model struct {
	id       int
	session  *game.Session
	screen   *core.Screen
	keys     *KeyMapper
	hold     *KeyHold
	frame    core.InputFrame
	state    core.GameState
	opts     Options
	saved    bool
	quitting bool
}

// NewModel creates a new Bubble Tea model with a fresh session.
func NewModel(opts Options) Model {
	// Use time-based seed if not specified
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = 60
	}
	if opts.Audio == nil {
		opts.Audio = audio.Nop{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Host == "" {
		opts.Host = "play"
	}

	s := game.New(opts.Game, opts.Runtime.Seed)
	return Model{
		id:      nextID(),
		session: s,
		screen:  core.NewScreen(opts.Runtime.ScreenW, opts.Runtime.ScreenH),
		keys:    NewKeyMapper(),
		hold:    NewKeyHold(opts.HoldTicks),
		frame:   core.NewInputFrame(),
		state:   s.State(),
		opts:    opts,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.id, m.opts.Runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The world keeps its size; only the projection changes.
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if msg.ID != m.id || m.state.Over() {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.state.Over() {
		return m, nil
	}
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.frame) {
		// Quit is honored immediately rather than on the next tick.
		quit := core.NewInputFrame()
		quit.Set(core.ActionQuit)
		return m.advance(quit)
	}
	action, _ := m.keys.MapKey(msg)
	m.hold.Press(action)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.hold.Apply(&m.frame)
	in := m.frame.Clone()
	m.frame.Clear()
	return m.advance(in)
}

// advance steps the session once and dispatches its events.
func (m Model) advance(in core.InputFrame) (tea.Model, tea.Cmd) {
	result := m.session.Step(in)
	m.state = result.State
	m.dispatch(result.Events)

	if m.state.Over() {
		m.hold.Release()
		m.saveRun()
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.id, m.opts.Runtime.TickRate)
}

// dispatch plays event cues and logs lifecycle changes.
func (m Model) dispatch(events []core.Event) {
	logger := m.opts.Logger
	for _, e := range events {
		if e.Cue != core.CueNone {
			m.opts.Audio.Play(e.Cue)
		}
		switch e.Kind {
		case core.EventStarted:
			logger.Info("session started", "seed", m.session.Seed(), "player", m.opts.Player)
		case core.EventShipDestroyed:
			logger.Info("ship destroyed", "score", m.state.Score, "tick", m.state.Tick)
		case core.EventTerminated:
			logger.Info("session ended", "score", m.state.Score, "ticks", m.state.Tick)
		default:
			logger.Debug("event", "kind", e.Kind, "tier", e.Tier, "x", e.Pos.X, "y", e.Pos.Y)
		}
	}
}

// saveRun records the finished run once. Sessions that never left the
// menu are not recorded.
func (m *Model) saveRun() {
	if m.saved || m.opts.Store == nil || m.state.Tick == 0 {
		return
	}
	m.saved = true
	_, err := m.opts.Store.SaveRun(storage.NewRun(m.state, m.session.Seed(), m.opts.Host, m.opts.Player))
	if err != nil {
		// Best-effort save, the session result stands regardless
		m.opts.Logger.Warn("failed to save run", "err", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.draw()

	dir := filepath.Join(os.Getenv("HOME"), ".dodgey", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.Logger.Warn("screenshot", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("dodgey_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("screenshot", "err", err)
		return
	}
	m.opts.Logger.Debug("screenshot saved", "path", path)
}

func (m Model) draw() {
	m.screen.Clear()
	m.session.Render(m.screen)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.draw()
	return RenderScreen(m.screen)
}

// State returns the latest session summary.
func (m Model) State() core.GameState {
	return m.state
}

// Session returns the underlying simulation.
func (m Model) Session() *game.Session {
	return m.session
}

// Run starts the Bubble Tea program and returns the final session summary.
func Run(opts Options) (core.GameState, error) {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if m, ok := final.(Model); ok {
		return m.state, err
	}
	return model.state, err
}
