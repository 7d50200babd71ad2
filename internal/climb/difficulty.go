package climb

import (
	"github.com/tapclimb/climb/internal/config"
	"github.com/tapclimb/climb/internal/core"
)

// Curve maps cumulative score to the obstacle spawn probability.
// It is a pure linear ramp from MinProb at score 0 to MaxProb at RampScore.
type Curve struct {
	MinProb   float64
	MaxProb   float64
	RampScore int
}

// NewCurve builds a curve from the obstacle configuration.
func NewCurve(cfg config.ObstaclesConfig) Curve {
	return Curve{
		MinProb:   cfg.MinProb,
		MaxProb:   cfg.MaxProb,
		RampScore: cfg.RampScore,
	}
}

// Probability returns the obstacle spawn probability for the given score,
// bounded to [MinProb, MaxProb].
func (c Curve) Probability(score int) float64 {
	ramp := float64(c.RampScore)
	if ramp <= 0 {
		ramp = 1 // Prevent division by zero
	}
	t := core.ClampF(float64(score)/ramp, 0, 1)
	return c.MinProb + (c.MaxProb-c.MinProb)*t
}
