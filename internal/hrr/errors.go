package hrr

import "errors"

// Sentinel errors for the binding engine. Callers match with errors.Is.
var (
	// ErrInvalidDimension is returned when a vector of non-positive
	// dimensionality is requested.
	ErrInvalidDimension = errors.New("dimensionality must be positive")

	// ErrDimensionMismatch is returned when an operation combines vectors
	// of differing lengths.
	ErrDimensionMismatch = errors.New("vectors must share the same dimensionality")
)
