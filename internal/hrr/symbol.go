package hrr

import (
	"fmt"
)

// Symbol pairs a human-readable label with a vector. The label only exists to
// make sense of what is going on in a demonstration; all semantics live in
// the vector. Symbols are immutable once created: Vector returns a copy and
// every operation produces a new Symbol with a composed label.
type Symbol struct {
	label  string
	vector Vector
}

// NewSymbol creates a symbol from an existing vector. The vector is copied.
func NewSymbol(label string, vector Vector) (*Symbol, error) {
	if len(vector) == 0 {
		return nil, fmt.Errorf("symbol %q: %w (got 0)", label, ErrInvalidDimension)
	}
	return &Symbol{label: label, vector: vector.Clone()}, nil
}

// GenerateSymbol creates a symbol with a fresh random vector from g.
func GenerateSymbol(g *Generator, label string, n int) (*Symbol, error) {
	v, err := g.Generate(n)
	if err != nil {
		return nil, fmt.Errorf("symbol %q: %w", label, err)
	}
	return &Symbol{label: label, vector: v}, nil
}

// Label returns the symbol's label.
func (s *Symbol) Label() string { return s.label }

// String returns the symbol's label.
func (s *Symbol) String() string { return s.label }

// Dimensionality returns the length of the symbol's vector.
func (s *Symbol) Dimensionality() int { return len(s.vector) }

// Vector returns a copy of the symbol's vector.
func (s *Symbol) Vector() Vector { return s.vector.Clone() }

// Magnitude returns the norm of the symbol's vector.
func (s *Symbol) Magnitude() float64 { return s.vector.Magnitude() }

// Bind convolves this symbol with other, representing "s bound to other".
func (s *Symbol) Bind(other *Symbol) (*Symbol, error) {
	v, err := Convolve(s.vector, other.vector)
	if err != nil {
		return nil, fmt.Errorf("bind %q with %q: %w", s.label, other.label, err)
	}
	return &Symbol{label: fmt.Sprintf("( %s (*) %s )", s.label, other.label), vector: v}, nil
}

// Unbind correlates this symbol with other, approximately recovering the
// operand other was bound to.
func (s *Symbol) Unbind(other *Symbol) (*Symbol, error) {
	v, err := Correlate(s.vector, other.vector)
	if err != nil {
		return nil, fmt.Errorf("unbind %q from %q: %w", other.label, s.label, err)
	}
	return &Symbol{label: fmt.Sprintf("( %s (*) %s' )", s.label, other.label), vector: v}, nil
}

// Inverse returns the symbol's approximate inverse under convolution.
func (s *Symbol) Inverse() *Symbol {
	return &Symbol{label: s.label + "'", vector: Involution(s.vector)}
}

// Compose superposes this symbol with other by vector addition.
func (s *Symbol) Compose(other *Symbol) (*Symbol, error) {
	v, err := s.vector.Add(other.vector)
	if err != nil {
		return nil, fmt.Errorf("compose %q with %q: %w", s.label, other.label, err)
	}
	return &Symbol{label: fmt.Sprintf("( %s + %s )", s.label, other.label), vector: v}, nil
}

// Scale returns the symbol scaled by a constant factor.
func (s *Symbol) Scale(factor float64) *Symbol {
	return &Symbol{
		label:  fmt.Sprintf("( %.3f %s )", factor, s.label),
		vector: s.vector.Scale(factor),
	}
}

// Exponentiate raises the symbol to a real power under convolution.
func (s *Symbol) Exponentiate(power float64) (*Symbol, error) {
	v, err := Exponentiate(s.vector, power)
	if err != nil {
		return nil, fmt.Errorf("exponentiate %q: %w", s.label, err)
	}
	return &Symbol{label: fmt.Sprintf("( %s^{%.3f} )", s.label, power), vector: v}, nil
}

// Compare returns the cosine similarity between two symbols.
func (s *Symbol) Compare(other *Symbol) (float64, error) {
	sim, err := s.vector.Cosine(other.vector)
	if err != nil {
		return 0, fmt.Errorf("compare %q with %q: %w", s.label, other.label, err)
	}
	return sim, nil
}

// Dot returns the dot product of two symbols' vectors.
func (s *Symbol) Dot(other *Symbol) (float64, error) {
	product, err := s.vector.Dot(other.vector)
	if err != nil {
		return 0, fmt.Errorf("dot %q with %q: %w", s.label, other.label, err)
	}
	return product, nil
}
