package climb

// Snapshot is the read-only view of the game handed to renderers each frame.
// Everything a renderer needs lives here; it owns no gameplay state.
type Snapshot struct {
	Phase      Phase
	Score      int
	Best       int
	Stamina    float64   // [0,1] fraction of the time bar
	Segments   []Segment // Climbable head first
	LastMove   MoveOutcome
	OverReason string  // Empty outside OVER
	SinceMove  float64 // Seconds since the last processed move, for cooldown cues
}

// Snapshot returns the current read-only game state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Phase:      g.phase,
		Score:      g.score,
		Best:       g.best,
		Stamina:    g.stamina,
		Segments:   g.queue.Segments(),
		LastMove:   g.lastMove,
		OverReason: g.overReason,
		SinceMove:  g.elapsed - g.lastMoveAt,
	}
}
