// Package cleanup implements the cleanup memory of an HRR system: a registry
// of known symbol vectors that maps noisy query vectors back to the nearest
// stored symbol by cosine similarity.
package cleanup

import "github.com/vsa-tools/holo/internal/hrr"

// Store defines the lookup operations of a cleanup memory.
type Store interface {
	// Cleanup returns every stored entry ranked by similarity to the
	// query, best first.
	Cleanup(query hrr.Vector) ([]Match, error)
	// Cleanest returns the best match for the query.
	Cleanest(query hrr.Vector) (Match, error)
}

// Match is a ranked lookup result.
type Match struct {
	Label      string  `json:"label"`
	Similarity float64 `json:"similarity"`
	// Tied is set on the best match when at least one other entry scores
	// within the memory's tie tolerance of it.
	Tied bool `json:"tied,omitempty"`
}
