// Package climb implements the tap-climbing game: a climber ascends a
// procedurally generated rock wall with alternating left/right reaches,
// dodging overhangs while a stamina bar drains.
//
// The package is pure simulation. It owns the run state and segment queue,
// consumes abstract input actions, and exposes read-only snapshots; drawing,
// key mapping, and persistence backends live in the platform layer.
package climb

import (
	"fmt"
	"math"

	"github.com/tapclimb/climb/internal/config"
	"github.com/tapclimb/climb/internal/core"
)

// Phase is the run state machine phase.
type Phase int

const (
	PhaseReady Phase = iota // Idle, awaiting start
	PhasePlay               // Active gameplay
	PhaseOver               // Terminal, awaiting restart
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseReady:
		return "Ready"
	case PhasePlay:
		return "Play"
	case PhaseOver:
		return "Over"
	default:
		return "Unknown"
	}
}

// MoveOutcome classifies the result of a Move call.
type MoveOutcome int

const (
	MoveOutcomeNone     MoveOutcome = iota // No move processed yet this run
	MoveOutcomeIgnored                     // Dropped by the gate: wrong phase or cooldown
	MoveOutcomeAccepted                    // Climbed one segment
	MoveOutcomeBlocked                     // Reached into an overhang, run over
)

// String returns a human-readable name for the outcome.
func (o MoveOutcome) String() string {
	switch o {
	case MoveOutcomeNone:
		return "None"
	case MoveOutcomeIgnored:
		return "Ignored"
	case MoveOutcomeAccepted:
		return "Accepted"
	case MoveOutcomeBlocked:
		return "Blocked"
	default:
		return "Unknown"
	}
}

// ReasonStamina is the over reason recorded when the stamina bar empties.
const ReasonStamina = "stamina depleted"

// blockedReason formats the over reason for a reach into an overhang.
func blockedReason(side Side) string {
	return fmt.Sprintf("blocked by obstacle on side %s", side)
}

// ScoreStore persists run results across games. Implementations must treat
// failures as non-fatal; the game ignores every error it returns.
type ScoreStore interface {
	// BestScore returns the highest recorded score, 0 when none exists.
	BestScore() (int, error)

	// SaveRun records a finished run with its end reason.
	SaveRun(score int, reason string) error
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = "" // Use config default
	}
}

// Game implements the tap-climb run state machine and input gate.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.ClimbConfig
	curve   Curve
	gen     *Generator
	queue   *Queue
	store   ScoreStore // optional, nil disables persistence

	phase      Phase
	score      int
	stamina    float64 // [0,1]
	best       int
	elapsed    float64 // seconds of PLAY time since Reset
	lockUntil  float64 // elapsed timestamp at which the input gate reopens
	lastMove   MoveOutcome
	lastMoveAt float64 // elapsed timestamp of the last processed move
	overReason string
}

// New creates a new climb game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "climb"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Tap Climb"
}

// SetStore injects the persistence collaborator. May be nil.
func (g *Game) SetStore(store ScoreStore) {
	g.store = store
	g.loadBest()
}

// Config returns the loaded game configuration.
func (g *Game) Config() config.ClimbConfig {
	return g.cfg
}

// Reset initializes the game into the READY phase.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	// Load game config
	cfg, err := config.LoadClimb(configPath)
	if err != nil {
		cfg = config.DefaultClimbConfig()
	}

	// Apply difficulty preset if set
	if difficultyPreset != "" {
		config.ApplyClimbPreset(&cfg, difficultyPreset)
	}

	g.cfg = cfg
	g.curve = NewCurve(cfg.Obstacles)

	n := g.queueLen()
	if g.gen == nil {
		g.gen = NewGenerator(runtime.Seed, g.curve)
	} else {
		g.gen.curve = g.curve
		g.gen.Reset(runtime.Seed)
	}
	g.queue = NewQueue(n)

	g.phase = PhaseReady
	g.score = 0
	g.stamina = 1
	g.elapsed = 0
	g.lockUntil = 0
	g.lastMove = MoveOutcomeNone
	g.lastMoveAt = 0
	g.overReason = ""
	g.loadBest()

	// Build a wall for the ready screen; Start regenerates it.
	g.gen.Fill(g.queue, n, 0)
}

// queueLen derives the segment count from the viewport, never below the
// configured minimum.
func (g *Game) queueLen() int {
	visible := (g.runtime.ScreenH - 2) / RowsPerSegment
	return core.Max(g.cfg.Wall.MinSegments, visible+1)
}

// loadBest refreshes the cached best score from the store.
func (g *Game) loadBest() {
	if g.store == nil {
		return
	}
	if best, err := g.store.BestScore(); err == nil && best > g.best {
		g.best = best
	}
}

// Step advances the simulation by one frame. dt is the elapsed wall-clock
// time in seconds, clamped to the configured maximum so a stalled frame
// cannot drain seconds of stamina at once.
//
// Within a frame the order is fixed: stamina decay first, then the frame's
// move action. A frame that empties stamina ends the run even if a move
// arrived in the same frame; the gate drops it because the phase already
// left PLAY.
func (g *Game) Step(in core.InputFrame, dt float64) Snapshot {
	switch g.phase {
	case PhaseReady:
		if in.Has(core.ActionStart) {
			g.start()
		}
	case PhasePlay:
		g.Tick(dt)
		if in.Has(core.ActionLeft) {
			g.Move(SideLeft)
		}
		if in.Has(core.ActionRight) {
			g.Move(SideRight)
		}
	case PhaseOver:
		if in.Has(core.ActionRestart) {
			g.start()
		}
	}
	return g.Snapshot()
}

// Tick applies continuous stamina decay. Outside PLAY it is a no-op.
func (g *Game) Tick(dt float64) {
	if g.phase != PhasePlay {
		return
	}
	dt = core.ClampF(dt, 0, g.cfg.Frame.MaxDelta())
	g.elapsed += dt
	g.stamina -= g.cfg.Stamina.BaseDecay * dt
	if g.stamina <= 0 {
		g.stamina = 0
		g.enterOver(ReasonStamina)
	}
}

// Move attempts a reach toward the given side. Calls outside PLAY or within
// the input cooldown window are silently ignored and leave the game state
// untouched. A processed move resolves atomically: either the climber
// advances one segment, or the run ends blocked.
func (g *Game) Move(side Side) MoveOutcome {
	if g.phase != PhasePlay || side == SideNone {
		return MoveOutcomeIgnored
	}
	if g.elapsed < g.lockUntil {
		return MoveOutcomeIgnored
	}

	g.lastMoveAt = g.elapsed
	g.lockUntil = g.elapsed + g.cfg.Input.Lock()

	if g.queue.Head().Obstacle == side {
		// Queue untouched: the wall that ended the run stays inspectable.
		g.lastMove = MoveOutcomeBlocked
		g.enterOver(blockedReason(side))
		return MoveOutcomeBlocked
	}

	prev2, prev1 := g.queue.TailSides()
	g.queue.Advance(g.gen.Next(prev2, prev1, g.score))
	g.score++
	g.stamina = math.Min(1, g.stamina+g.cfg.Stamina.TimeGain)
	g.lastMove = MoveOutcomeAccepted
	return MoveOutcomeAccepted
}

// start transitions into PLAY with a fresh run. Used for both the initial
// READY start and the post-OVER restart.
func (g *Game) start() {
	g.score = 0
	g.stamina = 1
	g.elapsed = 0
	g.lockUntil = 0
	g.lastMove = MoveOutcomeNone
	g.lastMoveAt = 0
	g.overReason = ""
	g.gen.Fill(g.queue, g.queueLen(), 0)
	g.phase = PhasePlay
}

// enterOver finalizes the run. This is the only point where the best score
// is updated and persistence is written.
func (g *Game) enterOver(reason string) {
	g.phase = PhaseOver
	g.overReason = reason
	if g.score > g.best {
		g.best = g.score
	}
	if g.store != nil {
		// Best-effort: persistence is not authoritative for gameplay.
		_ = g.store.SaveRun(g.score, reason)
	}
}
