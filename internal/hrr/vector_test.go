package hrr

import (
	"errors"
	"math"
	"testing"
)

func TestGeneratorDistribution(t *testing.T) {
	const n = 4096
	g := NewGenerator(42)

	v, err := g.Generate(n)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Dim() != n {
		t.Fatalf("expected dimensionality %d, got %d", n, v.Dim())
	}

	var mean float64
	for _, val := range v {
		mean += val
	}
	mean /= n

	var variance float64
	for _, val := range v {
		variance += (val - mean) * (val - mean)
	}
	variance /= n

	if math.Abs(mean) > 0.005 {
		t.Errorf("expected mean near 0, got %g", mean)
	}
	want := 1.0 / n
	if variance < want*0.8 || variance > want*1.2 {
		t.Errorf("expected variance near %g, got %g", want, variance)
	}
}

func TestGeneratorReproducible(t *testing.T) {
	a, err := NewGenerator(7).Generate(64)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := NewGenerator(7).Generate(64)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed produced different vectors at index %d", i)
		}
	}
}

func TestGeneratorInvalidDimension(t *testing.T) {
	tests := []struct {
		name string
		n    int
	}{
		{name: "zero", n: 0},
		{name: "negative", n: -8},
	}

	g := NewGenerator(1)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := g.Generate(tt.n); !errors.Is(err, ErrInvalidDimension) {
				t.Errorf("Generate(%d) = %v, want ErrInvalidDimension", tt.n, err)
			}
		})
	}
}

func TestVectorCloneIsolation(t *testing.T) {
	v := Vector{1, 2, 3}
	c := v.Clone()
	c[0] = 99
	if v[0] != 1 {
		t.Fatalf("clone mutation leaked into original: %v", v)
	}
}

func TestVectorAdd(t *testing.T) {
	sum, err := Vector{1, 2}.Add(Vector{3, 4})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sum[0] != 4 || sum[1] != 6 {
		t.Fatalf("unexpected sum: %v", sum)
	}

	if _, err := (Vector{1, 2}).Add(Vector{1, 2, 3}); !errors.Is(err, ErrDimensionMismatch) {
		t.Fatalf("expected ErrDimensionMismatch, got %v", err)
	}
}

func TestVectorCosine(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vector
		expected float64
	}{
		{name: "identical", a: Vector{1, 2, 3}, b: Vector{1, 2, 3}, expected: 1.0},
		{name: "orthogonal", a: Vector{1, 0}, b: Vector{0, 1}, expected: 0.0},
		{name: "opposite", a: Vector{1, 0}, b: Vector{-1, 0}, expected: -1.0},
		{name: "zero vector", a: Vector{0, 0}, b: Vector{1, 2}, expected: 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.a.Cosine(tt.b)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(got-tt.expected) > 1e-12 {
				t.Errorf("Cosine() = %v, want %v", got, tt.expected)
			}
		})
	}

	if _, err := (Vector{1, 2}).Cosine(Vector{1, 2, 3}); !errors.Is(err, ErrDimensionMismatch) {
		t.Fatalf("expected ErrDimensionMismatch, got %v", err)
	}
}

func TestVectorNormalize(t *testing.T) {
	v := Vector{3, 4}
	unit := v.Normalize()
	if math.Abs(unit.Magnitude()-1) > 1e-12 {
		t.Fatalf("expected unit magnitude, got %g", unit.Magnitude())
	}
	// zero vector stays zero
	zero := Vector{0, 0}.Normalize()
	if zero.Magnitude() != 0 {
		t.Fatalf("expected zero vector unchanged, got %v", zero)
	}
}
