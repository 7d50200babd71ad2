package climb

import (
	"testing"
)

func TestGeneratorNoThreeInARow(t *testing.T) {
	// An always-spawning curve stresses the alternation rule the hardest
	gen := NewGenerator(12345, Curve{MinProb: 1, MaxProb: 1, RampScore: 1})

	var prev2, prev1 Side
	for i := 0; i < 5000; i++ {
		seg := gen.Next(prev2, prev1, i)
		if seg.Obstacle != SideNone && seg.Obstacle == prev1 && seg.Obstacle == prev2 {
			t.Fatalf("segment %d: three consecutive obstacles on side %s", i, seg.Obstacle)
		}
		prev2, prev1 = prev1, seg.Obstacle
	}
}

func TestGeneratorForcedAlternation(t *testing.T) {
	gen := NewGenerator(1, Curve{MinProb: 1, MaxProb: 1, RampScore: 1})

	for i := 0; i < 100; i++ {
		if got := gen.Next(SideLeft, SideLeft, 0).Obstacle; got != SideRight {
			t.Fatalf("after two left obstacles, expected forced SideRight, got %s", got)
		}
		if got := gen.Next(SideRight, SideRight, 0).Obstacle; got != SideLeft {
			t.Fatalf("after two right obstacles, expected forced SideLeft, got %s", got)
		}
	}
}

func TestGeneratorDeterminism(t *testing.T) {
	curve := defaultCurve()
	g1 := NewGenerator(42, curve)
	g2 := NewGenerator(42, curve)

	var p2a, p1a, p2b, p1b Side
	for i := 0; i < 1000; i++ {
		a := g1.Next(p2a, p1a, i)
		b := g2.Next(p2b, p1b, i)
		if a != b {
			t.Fatalf("segment %d: same seed diverged: %+v vs %+v", i, a, b)
		}
		p2a, p1a = p1a, a.Obstacle
		p2b, p1b = p1b, b.Obstacle
	}
}

func TestGeneratorJitterAlwaysDrawn(t *testing.T) {
	// Even with obstacles disabled, every segment carries fresh jitter
	gen := NewGenerator(7, Curve{MinProb: 0, MaxProb: 0, RampScore: 1})

	var prevLeft, prevRight float64
	repeats := 0
	for i := 0; i < 100; i++ {
		seg := gen.Next(SideNone, SideNone, 0)
		if seg.Obstacle != SideNone {
			t.Fatalf("segment %d: obstacle spawned at zero probability", i)
		}
		if seg.LeftJitter < 0 || seg.LeftJitter >= 1 || seg.RightJitter < 0 || seg.RightJitter >= 1 {
			t.Fatalf("segment %d: jitter out of range: %+v", i, seg)
		}
		if seg.LeftJitter == prevLeft && seg.RightJitter == prevRight {
			repeats++
		}
		prevLeft, prevRight = seg.LeftJitter, seg.RightJitter
	}
	if repeats > 0 {
		t.Errorf("jitter repeated %d times, stream appears stuck", repeats)
	}
}

func TestGeneratorFill(t *testing.T) {
	gen := NewGenerator(99, Curve{MinProb: 1, MaxProb: 1, RampScore: 1})
	q := NewQueue(12)

	gen.Fill(q, 12, 0)

	if q.Len() != 12 {
		t.Fatalf("Fill produced %d segments, expected 12", q.Len())
	}

	// Alternation rule holds across the whole filled queue
	segs := q.Segments()
	for i := 2; i < len(segs); i++ {
		s := segs[i].Obstacle
		if s != SideNone && s == segs[i-1].Obstacle && s == segs[i-2].Obstacle {
			t.Fatalf("filled queue has three consecutive obstacles on side %s at index %d", s, i)
		}
	}

	// Refill replaces the previous contents
	gen.Fill(q, 8, 0)
	if q.Len() != 8 {
		t.Fatalf("refill produced %d segments, expected 8", q.Len())
	}
}
