package formatter

import (
	"encoding/json"

	"github.com/vsa-tools/holo/internal/demo"
)

// jsonFormatter formats output as indented JSON.
type jsonFormatter struct{}

// NewJSON creates a new JSON formatter.
func NewJSON() Formatter {
	return &jsonFormatter{}
}

func (f *jsonFormatter) Format(report *demo.Report) ([]byte, error) {
	output := &jsonOutput{
		Dimensionality: report.Dimensionality,
		Seed:           report.Seed,
		Labels:         report.Labels,
		Pairs:          report.Pairs,
		Trace:          report.Trace,
		Recovered:      report.RecoveredCount(),
		ElapsedMillis:  report.Elapsed.Milliseconds(),
	}
	return json.MarshalIndent(output, "", "  ")
}

// jsonOutput flattens the report with a stable, documented field order.
type jsonOutput struct {
	Dimensionality int               `json:"dimensionality"`
	Seed           int64             `json:"seed"`
	Labels         []string          `json:"labels"`
	Recovered      int               `json:"recovered"`
	Pairs          []demo.PairResult `json:"pairs"`
	Trace          *demo.TraceResult `json:"trace,omitempty"`
	ElapsedMillis  int64             `json:"elapsed_ms"`
}
