package cleanup

import (
	"errors"
	"math"
	"testing"

	"github.com/vsa-tools/holo/internal/hrr"
)

// Interface compliance (compile-time assertion)
var _ Store = (*Memory)(nil)

func TestNewMemoryInvalidDimension(t *testing.T) {
	for _, n := range []int{0, -1} {
		if _, err := NewMemory(n, 1); !errors.Is(err, hrr.ErrInvalidDimension) {
			t.Errorf("NewMemory(%d) = %v, want ErrInvalidDimension", n, err)
		}
	}
}

func TestNewSymbolRegisters(t *testing.T) {
	m, err := NewMemory(64, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s, err := m.NewSymbol("a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Dimensionality() != 64 {
		t.Fatalf("symbol dimensionality = %d, want 64", s.Dimensionality())
	}
	if m.Len() != 1 {
		t.Fatalf("memory length = %d, want 1", m.Len())
	}
	if _, ok := m.Vector("a"); !ok {
		t.Fatal("expected vector registered under label a")
	}
}

func TestAddDuplicateLabel(t *testing.T) {
	m, err := NewMemory(64, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := m.NewSymbol("a"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := m.NewSymbol("a"); !errors.Is(err, ErrDuplicateLabel) {
		t.Fatalf("duplicate NewSymbol = %v, want ErrDuplicateLabel", err)
	}
}

func TestAddDimensionMismatch(t *testing.T) {
	m, err := NewMemory(64, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s, err := hrr.GenerateSymbol(hrr.NewGenerator(2), "wrong", 32)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := m.Add(s); !errors.Is(err, hrr.ErrDimensionMismatch) {
		t.Fatalf("Add = %v, want ErrDimensionMismatch", err)
	}
}

func TestCleanupEmptyMemory(t *testing.T) {
	m, err := NewMemory(64, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	query := make(hrr.Vector, 64)
	if _, err := m.Cleanup(query); !errors.Is(err, ErrEmptyMemory) {
		t.Errorf("Cleanup = %v, want ErrEmptyMemory", err)
	}
	if _, err := m.Cleanest(query); !errors.Is(err, ErrEmptyMemory) {
		t.Errorf("Cleanest = %v, want ErrEmptyMemory", err)
	}
}

func TestCleanupQueryDimensionMismatch(t *testing.T) {
	m, err := NewMemory(64, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := m.NewSymbol("a"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := m.Cleanup(make(hrr.Vector, 32)); !errors.Is(err, hrr.ErrDimensionMismatch) {
		t.Errorf("Cleanup = %v, want ErrDimensionMismatch", err)
	}
}

func TestCleanupIdempotentLookup(t *testing.T) {
	m, err := NewMemory(256, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a, err := m.NewSymbol("a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := m.NewSymbol("b"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	best, err := m.Cleanest(a.Vector())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if best.Label != "a" {
		t.Errorf("best label = %q, want a", best.Label)
	}
	if math.Abs(best.Similarity-1) > 1e-12 {
		t.Errorf("self similarity = %g, want 1", best.Similarity)
	}
	if best.Tied {
		t.Error("unexpected tie against a distinct random symbol")
	}
}

func TestCleanupRanking(t *testing.T) {
	m, err := NewMemory(512, 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, label := range []string{"a", "b", "c"} {
		if _, err := m.NewSymbol(label); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	v, _ := m.Vector("b")
	matches, err := m.Cleanup(v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matches) != 3 {
		t.Fatalf("expected 3 matches, got %d", len(matches))
	}
	for i := 1; i < len(matches); i++ {
		if matches[i].Similarity > matches[i-1].Similarity {
			t.Fatalf("matches not ranked: %v", matches)
		}
	}
	if matches[0].Label != "b" {
		t.Errorf("best label = %q, want b", matches[0].Label)
	}
}

func TestCleanupTieDetection(t *testing.T) {
	m, err := NewMemory(64, 9)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	v, err := hrr.NewGenerator(10).Generate(64)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, label := range []string{"first", "second"} {
		s, err := hrr.NewSymbol(label, v)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := m.Add(s); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	best, err := m.Cleanest(v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !best.Tied {
		t.Error("expected tie between identical entries")
	}
	// Stable ranking keeps insertion order among tied entries.
	if best.Label != "first" {
		t.Errorf("best label = %q, want first", best.Label)
	}
}

func TestCleanupEndToEnd(t *testing.T) {
	// Bind role to filler at n=512, unbind role, and the cleanup must name
	// the filler with similarity above 0.5.
	m, err := NewMemory(512, 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	role, err := m.NewSymbol("role")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	filler, err := m.NewSymbol("filler")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bound, err := role.Bind(filler)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	approx, err := bound.Unbind(role)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	best, err := m.Cleanest(approx.Vector())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if best.Label != "filler" {
		t.Errorf("best label = %q, want filler", best.Label)
	}
	if best.Similarity <= 0.5 {
		t.Errorf("similarity = %g, want > 0.5", best.Similarity)
	}
}

func TestNormalizationOption(t *testing.T) {
	m, err := NewMemory(8, 1, WithNormalization())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s, err := hrr.NewSymbol("a", hrr.Vector{3, 4, 0, 0, 0, 0, 0, 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := m.Add(s); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored, _ := m.Vector("a")
	if math.Abs(stored.Magnitude()-1) > 1e-12 {
		t.Errorf("stored magnitude = %g, want 1", stored.Magnitude())
	}
}

func TestLabelsInsertionOrder(t *testing.T) {
	m, err := NewMemory(32, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"x", "y", "z"}
	for _, label := range want {
		if _, err := m.NewSymbol(label); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	got := m.Labels()
	if len(got) != len(want) {
		t.Fatalf("labels = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("labels = %v, want %v", got, want)
		}
	}
}
