package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tapclimb/climb/internal/core"
	"github.com/tapclimb/climb/internal/storage"
)

// Scoreboard layout constants
const (
	maxBoardRuns  = 100 // Max runs to load
	boardMinWidth = 56
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Quit}}
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
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	boardStatsStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	boardTableStyle = lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240"))
)

// ScoreboardModel displays the run history in an interactive table.
type ScoreboardModel struct {
	table    table.Model
	help     help.Model
	keys     ScoreboardKeyMap
	stats    *storage.RunStats
	width    int
	height   int
	quitting bool
}

// NewScoreboardModel builds the scoreboard from the stored run history.
func NewScoreboardModel(store *storage.Store, cfg core.RuntimeConfig) (ScoreboardModel, error) {
	runs, err := store.TopRuns(maxBoardRuns)
	if err != nil {
		return ScoreboardModel{}, err
	}
	stats, err := store.Stats()
	if err != nil {
		return ScoreboardModel{}, err
	}

	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Score", Width: 8},
		{Title: "End", Width: 30},
		{Title: "Date", Width: 16},
	}

	rows := make([]table.Row, 0, len(runs))
	for i, run := range runs {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", run.Score),
			run.EndReason,
			run.CreatedAt.Format("2006-01-02 15:04"),
		})
	}

	height := core.Clamp(cfg.ScreenH-8, 5, 20)
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	return ScoreboardModel{
		table:  t,
		help:   help.New(),
		keys:   DefaultScoreboardKeyMap(),
		stats:  stats,
		width:  core.Max(cfg.ScreenW, boardMinWidth),
		height: cfg.ScreenH,
	}, nil
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetHeight(core.Clamp(msg.Height-8, 5, 20))
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	title := boardTitleStyle.Render("Tap Climb - Best Runs")
	statsLine := ""
	if m.stats != nil && m.stats.RunsCount > 0 {
		statsLine = boardStatsStyle.Render(fmt.Sprintf(
			"runs: %d   best: %d   avg: %.1f",
			m.stats.RunsCount, m.stats.BestScore, m.stats.AvgScore,
		))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		statsLine,
		boardTableStyle.Render(m.table.View()),
		m.help.View(m.keys),
	)
}

// RunScoreboard starts the interactive scoreboard program.
func RunScoreboard(store *storage.Store, cfg core.RuntimeConfig) error {
	model, err := NewScoreboardModel(store, cfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
