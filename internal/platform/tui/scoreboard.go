package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/dodgey/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForSidebar = 100 // Minimum width to show the stats sidebar
	sidebarWidth       = 26  // Width of stats sidebar
	maxRuns            = 100 // Max runs to load
)

// BoardView selects which runs the scoreboard lists.
type BoardView int

const (
	ViewTop BoardView = iota
	ViewRecent
	ViewMine
)

// String returns the tab label for the view.
func (v BoardView) String() string {
	switch v {
	case ViewTop:
		return "Top"
	case ViewRecent:
		return "Recent"
	case ViewMine:
		return "Mine"
	default:
		return "?"
	}
}

var boardViews = []BoardView{ViewTop, ViewRecent, ViewMine}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextView key.Binding
	PrevView key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextView, k.PrevView, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextView, k.PrevView},
		{k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextView: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next view"),
		),
		PrevView: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev view"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the run history screen.
type ScoreboardModel struct {
	store       *storage.Store
	player      string // Filter for ViewMine
	view        BoardView
	runs        []storage.Run
	stats       *storage.Stats
	err         error
	table       table.Model
	help        help.Model
	keys        ScoreboardKeyMap
	width       int
	height      int
	quitting    bool
	showSidebar bool
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(store *storage.Store, player string, width, height int) ScoreboardModel {
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		store:       store,
		player:      player,
		keys:        DefaultScoreboardKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	m.table = m.createTable()
	m.loadStats()
	m.loadRuns()
	return m
}

// createTable creates a new table sized to the current window.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Score", Width: 7},
		{Title: "Hits", Width: 5},
		{Title: "Time", Width: 7},
		{Title: "Seed", Width: 12},
		{Title: "Player", Width: 10},
		{Title: "Date", Width: 12},
	}

	tableWidth := m.width - 4 // Margins
	if m.showSidebar {
		tableWidth -= sidebarWidth + 3 // Sidebar + border + gap
	}
	// Narrow terminals drop the seed and player columns.
	if tableWidth < 70 {
		columns = append(columns[:4], columns[6])
	}

	height := m.height - 8 // Leave room for header, tabs, help
	if height < 3 {
		height = 3
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("129")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadRuns loads the runs for the current view.
func (m *ScoreboardModel) loadRuns() {
	m.runs, m.err = nil, nil
	if m.store != nil {
		switch m.view {
		case ViewTop:
			m.runs, m.err = m.store.TopRuns(maxRuns)
		case ViewRecent:
			m.runs, m.err = m.store.RecentRuns(maxRuns)
		case ViewMine:
			m.runs, m.err = m.store.PlayerRuns(m.player, maxRuns)
		}
	}
	m.updateTableRows()
}

func (m *ScoreboardModel) loadStats() {
	if m.store == nil {
		return
	}
	stats, err := m.store.Stats()
	if err != nil {
		m.err = err
		return
	}
	m.stats = stats
}

// updateTableRows updates the table with current runs.
func (m *ScoreboardModel) updateTableRows() {
	wide := len(m.table.Columns()) == 7
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		row := table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Destroyed),
			formatTicks(r.Ticks),
		}
		if wide {
			row = append(row, fmt.Sprintf("%d", r.Seed), playerLabel(r))
		}
		rows[i] = append(row, r.CreatedAt.Local().Format("Jan 02 15:04"))
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// formatTicks renders a tick count as play time at 60 ticks per second.
func formatTicks(ticks int) string {
	d := time.Duration(ticks) * time.Second / 60
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}

func playerLabel(r storage.Run) string {
	if r.Player == "" {
		return r.Host
	}
	return r.Player
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextView):
			m.view = boardViews[(int(m.view)+1)%len(boardViews)]
			m.loadRuns()
			return m, nil

		case key.Matches(msg, m.keys.PrevView):
			m.view = boardViews[(int(m.view)+len(boardViews)-1)%len(boardViews)]
			m.loadRuns()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("203")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(centerText("DODGEY - RUN HISTORY", m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.renderTabs(), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	tableRendered := tableStyle.Render(m.renderTableContent())

	if m.showSidebar {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), "  ", tableRendered))
	} else {
		b.WriteString(centerText(tableRendered, m.width))
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTabs renders the view selector.
func (m ScoreboardModel) renderTabs() string {
	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Padding(0, 1)
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("129")).
		Padding(0, 1)

	tabs := make([]string, len(boardViews))
	for i, v := range boardViews {
		if v == m.view {
			tabs[i] = activeTabStyle.Render(v.String())
		} else {
			tabs[i] = tabStyle.Render(v.String())
		}
	}
	return strings.Join(tabs, " ")
}

// renderSidebar renders aggregate statistics.
func (m ScoreboardModel) renderSidebar() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sb strings.Builder
	sb.WriteString("Stats\n")
	sb.WriteString(strings.Repeat("-", sidebarWidth-4))
	sb.WriteString("\n")

	st := m.stats
	if st == nil {
		st = &storage.Stats{}
	}
	lines := [][2]string{
		{"Runs", fmt.Sprintf("%d", st.Runs)},
		{"Best", fmt.Sprintf("%d", st.HighScore)},
		{"Average", fmt.Sprintf("%.0f", st.AvgScore)},
		{"Destroyed", fmt.Sprintf("%d", st.TotalDestroyed)},
		{"Accuracy", fmt.Sprintf("%.0f%%", st.Accuracy()*100)},
		{"Longest", formatTicks(st.LongestTicks)},
	}
	if !st.LastPlayed.IsZero() {
		lines = append(lines, [2]string{"Last", st.LastPlayed.Local().Format("Jan 02 15:04")})
	}
	for _, l := range lines {
		fmt.Fprintf(&sb, "%-10s %s\n", l[0], l[1])
	}

	return sidebarStyle.Render(sb.String())
}

// renderTableContent renders the table or empty message.
func (m ScoreboardModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	if m.err != nil {
		return emptyStyle.Render("Could not load runs:\n" + m.err.Error())
	}
	if len(m.runs) == 0 {
		if m.view == ViewMine && m.player == "" {
			return emptyStyle.Render("No player name set.")
		}
		return emptyStyle.Render("No runs recorded yet.\nPlay a round to set a high score!")
	}

	return m.table.View()
}

// RunScoreboard runs the scoreboard screen.
func RunScoreboard(store *storage.Store, player string, width, height int) error {
	model := NewScoreboardModel(store, player, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}

// centerText pads text on the left to center it in width columns.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
