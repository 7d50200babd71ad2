package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tapclimb/climb/internal/climb"
	"github.com/tapclimb/climb/internal/core"
	"github.com/tapclimb/climb/internal/storage"
	"github.com/tapclimb/climb/internal/submit"
)

// Model is the Bubble Tea model driving the climb game: it owns the frame
// loop, maps keys to actions, and hands read-only snapshots to the renderer.
type Model struct {
	game       *climb.Game
	screen     *core.Screen
	store      *storage.Store
	submitter  submit.Submitter
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	keyMapper  *KeyMapper
	snap       climb.Snapshot
	lastTick   time.Time
	reported   bool // Whether the current game over was submitted
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the climb game.
func NewModel(game *climb.Game, store *storage.Store, submitter submit.Submitter, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if submitter == nil {
		submitter = submit.Noop{}
	}

	game.Reset(cfg)
	if store != nil {
		game.SetStore(store)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		submitter:  submitter,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		snap:       game.Snapshot(),
		lastTick:   time.Now(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events. The segment queue is sized
// from the viewport, so a resize rebuilds the wall.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if m.snap.Phase != climb.PhaseOver {
		m.game.Reset(m.config)
		m.snap = m.game.Snapshot()
	}

	return m, nil
}

// handleTick advances the simulation by the elapsed wall-clock delta.
// The game clamps the delta, so a backgrounded or stalled terminal cannot
// drain seconds of stamina in one frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := now.Sub(m.lastTick).Seconds()
	if dt < 0 {
		dt = 0
	}
	m.lastTick = now

	m.snap = m.game.Step(m.inputFrame, dt)
	m.inputFrame.Clear()

	// Report the finished run once. Persistence already happened inside the
	// game; submission is a best-effort hook.
	switch m.snap.Phase {
	case climb.PhaseOver:
		if !m.reported {
			m.reported = true
			_ = m.submitter.Submit(context.Background(), submit.Report{Score: m.snap.Score})
		}
	case climb.PhasePlay:
		m.reported = false
	}

	return m, tickCmd(m.config.TickRate)
}

// View renders the current snapshot to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	DrawSnapshot(m.screen, m.snap)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for the given game.
func Run(game *climb.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, submit.Noop{}, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
