package climb

import "fmt"

// RowsPerSegment is how many screen rows one wall segment occupies when drawn.
// The platform derives the visible segment count from it; the queue is sized
// to always cover the viewport.
const RowsPerSegment = 2

// Side identifies one side of a wall segment.
type Side int

const (
	SideNone Side = iota
	SideLeft
	SideRight
)

// String returns a human-readable name for the side.
func (s Side) String() string {
	switch s {
	case SideNone:
		return "None"
	case SideLeft:
		return "Left"
	case SideRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Other returns the opposite side. SideNone maps to itself.
func (s Side) Other() Side {
	switch s {
	case SideLeft:
		return SideRight
	case SideRight:
		return SideLeft
	default:
		return SideNone
	}
}

// Segment is one vertical unit of the climbing wall. Obstacle marks which
// side, if any, carries an overhang that blocks a reach. The jitter values
// offset hold positions visually; game logic treats them as opaque.
type Segment struct {
	Obstacle    Side
	LeftJitter  float64 // [0,1], renderer-only hold offset
	RightJitter float64 // [0,1], renderer-only hold offset
}

// Queue is the ordered wall ahead of the climber. The climbable segment sits
// at the head (index 0); freshly generated segments are appended at the tail.
// Once filled its length stays constant: every pop is paired with an append.
type Queue struct {
	segments []Segment
}

// NewQueue creates an empty queue with capacity for n segments.
func NewQueue(n int) *Queue {
	return &Queue{segments: make([]Segment, 0, n)}
}

// Len returns the number of segments in the queue.
func (q *Queue) Len() int {
	return len(q.segments)
}

// Head returns the climbable segment.
// An empty queue is an invariant violation, not a recoverable condition.
func (q *Queue) Head() Segment {
	if len(q.segments) == 0 {
		panic("climb: segment queue is empty")
	}
	return q.segments[0]
}

// At returns the segment at the given distance from the head.
func (q *Queue) At(i int) Segment {
	if i < 0 || i >= len(q.segments) {
		panic(fmt.Sprintf("climb: segment index %d out of range [0,%d)", i, len(q.segments)))
	}
	return q.segments[i]
}

// TailSides returns the obstacle sides of the two most recently generated
// segments, oldest first. Missing positions report SideNone.
func (q *Queue) TailSides() (prev2, prev1 Side) {
	n := len(q.segments)
	if n >= 1 {
		prev1 = q.segments[n-1].Obstacle
	}
	if n >= 2 {
		prev2 = q.segments[n-2].Obstacle
	}
	return prev2, prev1
}

// Advance pops the head and appends next at the tail, keeping the queue
// length constant. One Advance corresponds to exactly one accepted move.
func (q *Queue) Advance(next Segment) {
	if len(q.segments) == 0 {
		panic("climb: advance on empty segment queue")
	}
	copy(q.segments, q.segments[1:])
	q.segments[len(q.segments)-1] = next
}

// Push appends a segment at the tail. Used only while rebuilding.
func (q *Queue) Push(seg Segment) {
	q.segments = append(q.segments, seg)
}

// Clear removes all segments, keeping the allocated capacity.
func (q *Queue) Clear() {
	q.segments = q.segments[:0]
}

// Segments returns a copy of the queue contents, head first.
func (q *Queue) Segments() []Segment {
	out := make([]Segment, len(q.segments))
	copy(out, q.segments)
	return out
}
