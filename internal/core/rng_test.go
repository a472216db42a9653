package core

import "testing"

func TestRNGIntRangeInclusive(t *testing.T) {
	r := NewRNG(7)
	seen := make(map[int]bool)
	for i := 0; i < 5000; i++ {
		v := r.IntRange(60, 120)
		if v < 60 || v > 120 {
			t.Fatalf("IntRange(60, 120) = %d, out of range", v)
		}
		seen[v] = true
	}
	if !seen[60] || !seen[120] {
		t.Error("IntRange should reach both bounds")
	}
	if len(seen) != 61 {
		t.Errorf("expected all 61 values, saw %d", len(seen))
	}
}

func TestRNGIntRangeDegenerate(t *testing.T) {
	r := NewRNG(1)
	if v := r.IntRange(5, 5); v != 5 {
		t.Errorf("IntRange(5, 5) = %d, expected 5", v)
	}
	if v := r.IntRange(9, 3); v != 9 {
		t.Errorf("IntRange(9, 3) = %d, expected 9", v)
	}
}

func TestRNGFloatRange(t *testing.T) {
	r := NewRNG(3)
	for i := 0; i < 1000; i++ {
		v := r.FloatRange(1, 2.5)
		if v < 1 || v >= 2.5 {
			t.Fatalf("FloatRange(1, 2.5) = %f, out of range", v)
		}
	}
}

func TestRNGDeterminism(t *testing.T) {
	a := NewRNG(42)
	b := NewRNG(42)
	for i := 0; i < 100; i++ {
		if a.IntRange(0, 1000) != b.IntRange(0, 1000) {
			t.Fatal("same seed should produce same sequence")
		}
	}
	if a.Seed() != 42 {
		t.Errorf("Seed() = %d, expected 42", a.Seed())
	}
}
