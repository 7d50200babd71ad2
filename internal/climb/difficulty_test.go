package climb

import (
	"testing"

	"github.com/tapclimb/climb/internal/config"
)

func defaultCurve() Curve {
	return NewCurve(config.DefaultClimbConfig().Obstacles)
}

func TestCurveBounds(t *testing.T) {
	c := defaultCurve()

	tests := []struct {
		name     string
		score    int
		expected float64
	}{
		{name: "floor at score zero", score: 0, expected: 0.55},
		{name: "ceiling at ramp score", score: 80, expected: 0.92},
		{name: "ceiling past ramp score", score: 10000, expected: 0.92},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := c.Probability(tc.score)
			if got != tc.expected {
				t.Errorf("Probability(%d) = %v, expected %v", tc.score, got, tc.expected)
			}
		})
	}
}

func TestCurveMonotonic(t *testing.T) {
	c := defaultCurve()

	prev := c.Probability(0)
	for score := 1; score <= 200; score++ {
		p := c.Probability(score)
		if p < prev {
			t.Fatalf("Probability(%d) = %v dropped below Probability(%d) = %v", score, p, score-1, prev)
		}
		if p < c.MinProb || p > c.MaxProb {
			t.Fatalf("Probability(%d) = %v outside [%v, %v]", score, p, c.MinProb, c.MaxProb)
		}
		prev = p
	}
}

func TestCurveMidpoint(t *testing.T) {
	c := defaultCurve()

	// Linear interpolation: halfway up the ramp sits halfway between the bounds
	got := c.Probability(40)
	expected := 0.55 + (0.92-0.55)*0.5
	if diff := got - expected; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("Probability(40) = %v, expected %v", got, expected)
	}
}

func TestCurveZeroRampGuard(t *testing.T) {
	c := Curve{MinProb: 0.5, MaxProb: 0.9, RampScore: 0}

	// Must not divide by zero; any positive score saturates
	if got := c.Probability(1); got != 0.9 {
		t.Errorf("Probability(1) with zero ramp = %v, expected 0.9", got)
	}
	if got := c.Probability(0); got != 0.5 {
		t.Errorf("Probability(0) with zero ramp = %v, expected 0.5", got)
	}
}
