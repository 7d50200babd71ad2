package climb

import (
	"math/rand"
)

// Generator produces wall segments with obstacle placement and hold jitter.
// All randomness flows through a single seeded source so a run is fully
// reproducible from its seed.
type Generator struct {
	rng   *rand.Rand
	curve Curve
}

// NewGenerator creates a generator with the given RNG seed and difficulty curve.
func NewGenerator(seed int64, curve Curve) *Generator {
	return &Generator{
		rng:   rand.New(rand.NewSource(seed)),
		curve: curve,
	}
}

// Reset reseeds the random stream.
func (g *Generator) Reset(seed int64) {
	g.rng = rand.New(rand.NewSource(seed))
}

// Next produces the segment following the two most recently generated ones.
// prev2 and prev1 are their obstacle sides, oldest first; score drives the
// spawn probability.
//
// Two consecutive obstacles on the same side exclude that side from the next
// draw, so no three segments in a row ever block the same side. Jitter is
// drawn even for obstacle-free segments to keep the random stream aligned
// regardless of the obstacle outcome.
func (g *Generator) Next(prev2, prev1 Side, score int) Segment {
	var seg Segment

	p := g.curve.Probability(score)
	if g.rng.Float64() < p {
		if prev1 != SideNone && prev1 == prev2 {
			seg.Obstacle = prev1.Other()
		} else if g.rng.Intn(2) == 0 {
			seg.Obstacle = SideLeft
		} else {
			seg.Obstacle = SideRight
		}
	}

	seg.LeftJitter = g.rng.Float64()
	seg.RightJitter = g.rng.Float64()
	return seg
}

// Fill rebuilds q with n fresh segments at the given score, honoring the
// alternation rule across the whole run of generated segments.
func (g *Generator) Fill(q *Queue, n, score int) {
	q.Clear()
	for i := 0; i < n; i++ {
		prev2, prev1 := q.TailSides()
		q.Push(g.Next(prev2, prev1, score))
	}
}
