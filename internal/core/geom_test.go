package core

import "testing"

func TestClamp(t *testing.T) {
	tests := []struct {
		name          string
		val, min, max int
		expected      int
	}{
		{name: "within range", val: 5, min: 0, max: 10, expected: 5},
		{name: "below min", val: -3, min: 0, max: 10, expected: 0},
		{name: "above max", val: 15, min: 0, max: 10, expected: 10},
		{name: "at min", val: 0, min: 0, max: 10, expected: 0},
		{name: "at max", val: 10, min: 0, max: 10, expected: 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
				t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
			}
		})
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		name          string
		val, min, max float64
		expected      float64
	}{
		{name: "within range", val: 0.5, min: 0, max: 1, expected: 0.5},
		{name: "below min", val: -0.1, min: 0, max: 1, expected: 0},
		{name: "above max", val: 1.7, min: 0, max: 1, expected: 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClampF(tc.val, tc.min, tc.max); got != tc.expected {
				t.Errorf("ClampF(%v, %v, %v) = %v, expected %v", tc.val, tc.min, tc.max, got, tc.expected)
			}
		})
	}
}

func TestMinMax(t *testing.T) {
	if Min(3, 7) != 3 || Min(7, 3) != 3 {
		t.Error("Min should return the smaller value")
	}
	if Max(3, 7) != 7 || Max(7, 3) != 7 {
		t.Error("Max should return the larger value")
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(2, 3, 4, 5)

	if !r.Contains(2, 3) {
		t.Error("top-left corner should be contained")
	}
	if r.Contains(r.Right(), 3) || r.Contains(2, r.Bottom()) {
		t.Error("right/bottom edges are exclusive")
	}
	if r.Right() != 6 || r.Bottom() != 8 {
		t.Errorf("Right/Bottom = %d/%d, expected 6/8", r.Right(), r.Bottom())
	}
}
