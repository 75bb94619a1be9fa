package pathmath

import (
	"math"
	"testing"
)

func TestVectorAddSubtract(t *testing.T) {
	a := NewVector(1, 2, 3)
	b := NewVector(4, 5, 6)

	sum := a.Add(b)
	if sum != (Vector{5, 7, 9}) {
		t.Errorf("Add: got %v, want {5 7 9}", sum)
	}

	diff := b.Subtract(a)
	if diff != (Vector{3, 3, 3}) {
		t.Errorf("Subtract: got %v, want {3 3 3}", diff)
	}
}

func TestVectorNormalize(t *testing.T) {
	v := NewVector(3, 0, 4)
	n := v.Normalize()
	if math.Abs(n.Length()-1.0) > 1e-6 {
		t.Errorf("Normalize: length %f, want 1", n.Length())
	}
	if math.Abs(float64(n.X)-0.6) > 1e-6 || math.Abs(float64(n.Z)-0.8) > 1e-6 {
		t.Errorf("Normalize: got %v, want {0.6 0 0.8}", n)
	}
}

func TestVectorCrossRightHanded(t *testing.T) {
	x := NewVector(1, 0, 0)
	y := NewVector(0, 1, 0)
	z := x.Cross(y)
	if z != (Vector{0, 0, 1}) {
		t.Errorf("Cross: got %v, want {0 0 1}", z)
	}
}

func TestVectorDot(t *testing.T) {
	a := NewVector(1, 2, 3)
	b := NewVector(4, -5, 6)
	if got := a.Dot(b); got != 12 {
		t.Errorf("Dot: got %f, want 12", got)
	}
}

func TestVectorReflect(t *testing.T) {
	// Incoming direction straight down onto a flat upward normal reflects
	// straight back up.
	d := NewVector(0, -1, 0)
	n := NewVector(0, 1, 0)
	r := d.Reflect(n)
	if math.Abs(float64(r.X)) > 1e-6 || math.Abs(float64(r.Y)-1) > 1e-6 || math.Abs(float64(r.Z)) > 1e-6 {
		t.Errorf("Reflect: got %v, want {0 1 0}", r)
	}
}

func TestVectorReflectGlancing(t *testing.T) {
	// A 45-degree incoming direction reflects to the mirrored 45 degrees.
	d := NewVector(1, -1, 0).Normalize()
	n := NewVector(0, 1, 0)
	r := d.Reflect(n)
	want := NewVector(1, 1, 0).Normalize()
	if r.Subtract(want).Length() > 1e-6 {
		t.Errorf("Reflect: got %v, want %v", r, want)
	}
}
