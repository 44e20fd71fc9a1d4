package demo

import (
	"time"

	"github.com/vsa-tools/holo/internal/cleanup"
)

// Report captures one demonstration run for formatting and display.
type Report struct {
	Dimensionality int           `json:"dimensionality"`
	Seed           int64         `json:"seed"`
	Labels         []string      `json:"labels"`
	Pairs          []PairResult  `json:"pairs"`
	Trace          *TraceResult  `json:"trace,omitempty"`
	Elapsed        time.Duration `json:"elapsed"`
}

// PairResult records binding and recovery for one role/filler pair.
type PairResult struct {
	Role           string   `json:"role"`
	Filler         string   `json:"filler"`
	BoundLabel     string   `json:"bound_label"`
	BoundMagnitude float64  `json:"bound_magnitude"`
	Recovery       Recovery `json:"recovery"`
}

// TraceResult records recoveries from the superposed trace of all pairs.
type TraceResult struct {
	Label      string     `json:"label"`
	Recoveries []Recovery `json:"recoveries"`
}

// Recovery records one unbind-then-cleanup step.
type Recovery struct {
	// Query is the label of the unbound (noisy) symbol.
	Query string `json:"query"`
	// Expected is the filler label the cleanup should return.
	Expected string `json:"expected"`
	// Best is the top-ranked match.
	Best cleanup.Match `json:"best"`
	// Matches is the full ranked similarity table.
	Matches []cleanup.Match `json:"matches"`
	// Recovered is true when the best match is the expected label and the
	// top score is not tied.
	Recovered bool `json:"recovered"`
}

// RecoveredCount returns how many pair recoveries succeeded.
func (r *Report) RecoveredCount() int {
	count := 0
	for _, pair := range r.Pairs {
		if pair.Recovery.Recovered {
			count++
		}
	}
	return count
}
