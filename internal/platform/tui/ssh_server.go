package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/dodgey/internal/config"
	"github.com/vovakirdan/dodgey/internal/core"
	"github.com/vovakirdan/dodgey/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.dodgey/host_key.
	HostKeyPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	Game      config.DodgeyConfig
	TickRate  int
	HoldTicks int
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		IdleTimeout: 30 * time.Minute,
		Game:        config.Default(),
		TickRate:    60,
	}
}

// SSHServer serves one Dodgey session per SSH connection.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer creates a new SSH server. store may be nil, in which case
// runs are not recorded. logger may be nil.
func NewSSHServer(cfg SSHServerConfig, store *storage.Store, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "dodgey-ssh",
		})
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		logger: logger,
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".dodgey", "host_key")
	}

	// Ensure host key directory exists
	if mkdirErr := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	)
	if err != nil {
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	opts := Options{
		Game: s.config.Game,
		Runtime: core.RuntimeConfig{
			ScreenW:  pty.Window.Width,
			ScreenH:  pty.Window.Height,
			TickRate: s.config.TickRate,
		},
		Store:     s.store,
		Logger:    s.logger.With("user", sshSession.User()),
		Host:      "ssh",
		Player:    sshSession.User(),
		HoldTicks: s.config.HoldTicks,
	}

	return NewSessionModel(opts), []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// loggingMiddleware logs SSH connection events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("connection opened",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("connection closed",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until an interrupt.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-done:
	case err := <-errCh:
		return fmt.Errorf("ssh server: %w", err)
	}
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server. The store is owned by the caller.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// SessionModel runs rounds back to back for one SSH connection:
// game -> summary -> game.
type SessionModel struct {
	opts     Options
	game     Model
	inGame   bool
	last     core.GameState
	best     int
	rounds   int
	quitting bool
}

// NewSessionModel creates a session model that starts in a round.
func NewSessionModel(opts Options) SessionModel {
	return SessionModel{
		opts:   opts,
		game:   NewModel(opts),
		inGame: true,
	}
}

// Init starts the first round.
func (m SessionModel) Init() tea.Cmd {
	return m.game.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.opts.Runtime.ScreenW = wsm.Width
		m.opts.Runtime.ScreenH = wsm.Height
	}

	if m.inGame {
		return m.updateGame(msg)
	}
	return m.updateSummary(msg)
}

// updateGame forwards to the round and switches to the summary when it ends.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if gm, ok := next.(Model); ok {
		m.game = gm
	}
	if !m.game.State().Over() {
		return m, cmd
	}

	// The round asked to quit; the connection stays open for the summary.
	m.inGame = false
	m.last = m.game.State()
	m.rounds++
	if m.last.Tick == 0 {
		// Escape on the menu leaves right away.
		m.quitting = true
		return m, tea.Quit
	}
	if m.opts.Logger != nil {
		m.opts.Logger.Info("round finished", "round", m.rounds, "score", m.last.Score)
	}
	m.best = m.last.Score
	if m.opts.Store != nil {
		if hs, err := m.opts.Store.HighScore(); err == nil && hs > m.best {
			m.best = hs
		}
	}
	return m, nil
}

// updateSummary handles keys on the summary screen.
func (m SessionModel) updateSummary(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch km.String() {
	case "r", "enter", " ":
		m.opts.Runtime.Seed = 0
		m.game = NewModel(m.opts)
		m.inGame = true
		return m, m.game.Init()
	case "q", "esc", "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	if m.inGame {
		return m.game.View()
	}
	return m.renderSummary()
}

func (m SessionModel) renderSummary() string {
	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))
	body := lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	hint := lipgloss.NewStyle().Foreground(lipgloss.Color("33"))

	lines := []string{
		title.Render("GAME OVER"),
		"",
		body.Render(fmt.Sprintf("Score: %d", m.last.Score)),
		body.Render(fmt.Sprintf("Destroyed: %d   Shots: %d", m.last.Destroyed, m.last.Shots)),
		body.Render(fmt.Sprintf("Best: %d", m.best)),
		"",
		hint.Render("r = play again   q = leave"),
	}

	var b strings.Builder
	top := (m.opts.Runtime.ScreenH - len(lines)) / 2
	for range max(top, 0) {
		b.WriteString("\n")
	}
	for _, l := range lines {
		b.WriteString(centerText(l, m.opts.Runtime.ScreenW))
		b.WriteString("\n")
	}
	return b.String()
}

// Rounds returns how many rounds have finished on this connection.
func (m SessionModel) Rounds() int {
	return m.rounds
}
