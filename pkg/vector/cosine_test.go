package vector

import (
	"math"
	"testing"
)

func TestCosine_SelfIdentity(t *testing.T) {
	vectors := [][]float64{
		{1, 0},
		{0.3, -0.7, 0.2},
		{5, 5, 5, 5},
	}
	for _, v := range vectors {
		got := Cosine(v, v)
		if math.Abs(got-1.0) > 1e-12 {
			t.Fatalf("Cosine(v, v) = %v, want 1.0 for %v", got, v)
		}
	}
}

func TestCosine_ZeroVector(t *testing.T) {
	zero := []float64{0, 0, 0}
	if got := Cosine(zero, []float64{1, 2, 3}); got != 0 {
		t.Fatalf("Cosine(zero, v) = %v, want 0", got)
	}
	if got := Cosine([]float64{1, 2, 3}, zero); got != 0 {
		t.Fatalf("Cosine(v, zero) = %v, want 0", got)
	}
	if got := Cosine(zero, zero); got != 0 {
		t.Fatalf("Cosine(zero, zero) = %v, want 0", got)
	}
}

func TestCosine_Orthogonal(t *testing.T) {
	if got := Cosine([]float64{1, 0}, []float64{0, 1}); got != 0 {
		t.Fatalf("orthogonal vectors scored %v, want 0", got)
	}
}

func TestCosine_Opposite(t *testing.T) {
	got := Cosine([]float64{1, 2}, []float64{-1, -2})
	if math.Abs(got-(-1.0)) > 1e-12 {
		t.Fatalf("opposite vectors scored %v, want -1.0", got)
	}
}

func TestCosine_MagnitudeIndependence(t *testing.T) {
	a := []float64{1, 1}
	b := []float64{10, 10}
	got := Cosine(a, b)
	if math.Abs(got-1.0) > 1e-12 {
		t.Fatalf("parallel vectors scored %v, want 1.0", got)
	}
}

func TestCosine_Deterministic(t *testing.T) {
	a := []float64{0.123456789, -0.987654321, 0.5}
	b := []float64{0.42, 0.1337, -0.9}
	first := Cosine(a, b)
	for i := 0; i < 100; i++ {
		if got := Cosine(a, b); got != first {
			t.Fatalf("run %d produced %v, first run produced %v", i, got, first)
		}
	}
}
