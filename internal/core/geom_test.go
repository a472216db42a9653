package core

import "testing"

func TestBoxOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{
			name:     "overlapping boxes",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "touching right edge",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "touching bottom edge",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(0, 10, 10, 10),
			expected: false,
		},
		{
			name:     "contained box",
			a:        NewBox(0, 0, 20, 20),
			b:        NewBox(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "fractional overlap",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(9.5, 9.5, 10, 10),
			expected: true,
		},
		{
			name:     "player resting next to obstacle",
			a:        NewBox(50, 236, 64, 64),
			b:        NewBox(114, 268, 32, 32),
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoxOverlapsItself(t *testing.T) {
	boxes := []Box{
		NewBox(0, 0, 1, 1),
		NewBox(-40, 12.5, 32, 32),
		NewBox(600, 236, 64, 64),
	}
	for _, b := range boxes {
		if !b.Overlaps(b) {
			t.Errorf("box %+v should overlap itself", b)
		}
	}
}

func TestBoxOverlapsIsPure(t *testing.T) {
	a := NewBox(1, 2, 3, 4)
	b := NewBox(2, 3, 4, 5)
	first := a.Overlaps(b)
	for i := 0; i < 10; i++ {
		if a.Overlaps(b) != first {
			t.Fatal("Overlaps() must be deterministic")
		}
	}
	if a != NewBox(1, 2, 3, 4) || b != NewBox(2, 3, 4, 5) {
		t.Error("Overlaps() must not modify its operands")
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestBoxEdges(t *testing.T) {
	b := NewBox(50, 236, 64, 64)

	if b.Right() != 114 {
		t.Errorf("Right() = %f, expected 114", b.Right())
	}
	if b.Bottom() != 300 {
		t.Errorf("Bottom() = %f, expected 300", b.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMax(t *testing.T) {
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
	if Max(10, 5) != 10 {
		t.Error("Max(10, 5) should be 10")
	}
}
