package cleanup

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vsa-tools/holo/internal/hrr"
)

// Errors surfaced by the memory. Dimension errors are re-used from hrr so a
// caller can match a single sentinel across the whole pipeline.
var (
	// ErrEmptyMemory is returned when a lookup runs against a memory with
	// no registered symbols.
	ErrEmptyMemory = errors.New("cleanup memory has no entries")

	// ErrDuplicateLabel is returned when a label is registered twice.
	ErrDuplicateLabel = errors.New("label already registered")
)

const defaultTieTolerance = 1e-9

// MemoryOptions configures a Memory.
type MemoryOptions struct {
	// TieTolerance is the maximum similarity gap at which two top-ranked
	// entries are reported as tied.
	TieTolerance float64
	// NormalizeVectors stores unit-length copies of registered vectors.
	NormalizeVectors bool
}

// MemoryOption is a function type for configuring Memory.
type MemoryOption func(*MemoryOptions)

// WithTieTolerance sets the similarity gap treated as a tie.
func WithTieTolerance(tolerance float64) MemoryOption {
	return func(opts *MemoryOptions) {
		opts.TieTolerance = tolerance
	}
}

// WithNormalization enables unit-length normalization of stored vectors.
func WithNormalization() MemoryOption {
	return func(opts *MemoryOptions) {
		opts.NormalizeVectors = true
	}
}

// Memory is an in-process cleanup memory. All symbols drawn from one Memory
// share its dimensionality and its seeded generator, so a run is fully
// reproducible. The memory is built once at startup and read thereafter;
// the RWMutex only guards against accidental concurrent population.
type Memory struct {
	mu             sync.RWMutex
	dimensionality int
	generator      *hrr.Generator
	labels         []string
	vectors        map[string]hrr.Vector
	options        MemoryOptions
}

// NewMemory creates a cleanup memory producing symbols of the given
// dimensionality, generated from the given seed.
func NewMemory(dimensionality int, seed int64, options ...MemoryOption) (*Memory, error) {
	if dimensionality <= 0 {
		return nil, fmt.Errorf("cleanup memory: %w (got %d)", hrr.ErrInvalidDimension, dimensionality)
	}

	opts := MemoryOptions{TieTolerance: defaultTieTolerance}
	for _, option := range options {
		option(&opts)
	}

	return &Memory{
		dimensionality: dimensionality,
		generator:      hrr.NewGenerator(seed),
		vectors:        make(map[string]hrr.Vector),
		options:        opts,
	}, nil
}

// Dimensionality returns the dimensionality shared by all stored vectors.
func (m *Memory) Dimensionality() int {
	return m.dimensionality
}

// Len returns the number of registered symbols.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.labels)
}

// Labels returns the registered labels in insertion order.
func (m *Memory) Labels() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	labels := make([]string, len(m.labels))
	copy(labels, m.labels)
	return labels
}

// NewSymbol generates a fresh random symbol, registers it under the given
// label and returns it.
func (m *Memory) NewSymbol(label string) (*hrr.Symbol, error) {
	symbol, err := hrr.GenerateSymbol(m.generator, label, m.dimensionality)
	if err != nil {
		return nil, err
	}
	if err := m.Add(symbol); err != nil {
		return nil, err
	}
	return symbol, nil
}

// Add registers an externally constructed symbol.
func (m *Memory) Add(symbol *hrr.Symbol) error {
	if symbol.Dimensionality() != m.dimensionality {
		return fmt.Errorf("add %q: %w (%d vs %d)",
			symbol.Label(), hrr.ErrDimensionMismatch, symbol.Dimensionality(), m.dimensionality)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.vectors[symbol.Label()]; exists {
		return fmt.Errorf("add %q: %w", symbol.Label(), ErrDuplicateLabel)
	}

	vector := symbol.Vector()
	if m.options.NormalizeVectors {
		vector = vector.Normalize()
	}
	m.labels = append(m.labels, symbol.Label())
	m.vectors[symbol.Label()] = vector
	return nil
}

// Vector returns a copy of the stored vector for label, if present.
func (m *Memory) Vector(label string) (hrr.Vector, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.vectors[label]
	if !ok {
		return nil, false
	}
	return v.Clone(), true
}

// Cleanup ranks every stored entry by cosine similarity to the query, best
// first. The best match carries the tie flag when the runner-up scores within
// the configured tolerance.
func (m *Memory) Cleanup(query hrr.Vector) ([]Match, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if len(m.labels) == 0 {
		return nil, fmt.Errorf("cleanup: %w", ErrEmptyMemory)
	}
	if query.Dim() != m.dimensionality {
		return nil, fmt.Errorf("cleanup: %w (%d vs %d)",
			hrr.ErrDimensionMismatch, query.Dim(), m.dimensionality)
	}

	matches := make([]Match, 0, len(m.labels))
	for _, label := range m.labels {
		similarity, err := query.Cosine(m.vectors[label])
		if err != nil {
			return nil, fmt.Errorf("cleanup %q: %w", label, err)
		}
		matches = append(matches, Match{Label: label, Similarity: similarity})
	}

	// Stable sort keeps insertion order among equal scores so ties are
	// deterministic.
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Similarity > matches[j].Similarity
	})

	if len(matches) > 1 && matches[0].Similarity-matches[1].Similarity <= m.options.TieTolerance {
		matches[0].Tied = true
	}
	return matches, nil
}

// Cleanest returns the best match for the query.
func (m *Memory) Cleanest(query hrr.Vector) (Match, error) {
	matches, err := m.Cleanup(query)
	if err != nil {
		return Match{}, err
	}
	return matches[0], nil
}
