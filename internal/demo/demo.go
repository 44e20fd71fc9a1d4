// Package demo runs the end-to-end HRR demonstration: generate symbols, bind
// role/filler pairs, unbind, and clean up the noisy results against the
// memory. The output is a Report consumed by the formatters, the watch
// command and the interactive UI.
package demo

import (
	"fmt"
	"time"

	"github.com/vsa-tools/holo/internal/cleanup"
	"github.com/vsa-tools/holo/internal/config"
	"github.com/vsa-tools/holo/internal/hrr"
	"github.com/vsa-tools/holo/internal/logger"
)

// Runner executes the demonstration described by a DemoConfig.
type Runner struct {
	cfg config.DemoConfig
	log *logger.Logger
}

// NewRunner creates a demonstration runner. log may be nil.
func NewRunner(cfg config.DemoConfig, log *logger.Logger) *Runner {
	if log == nil {
		log = logger.New("demo", nil)
	}
	return &Runner{cfg: cfg, log: log}
}

// Run executes the demonstration and returns its report. Any numeric or
// dimension error aborts the run; these indicate misuse, not recoverable
// conditions.
func (r *Runner) Run() (*Report, error) {
	start := time.Now()

	options := []cleanup.MemoryOption{cleanup.WithTieTolerance(r.cfg.TieTolerance)}
	if r.cfg.Normalize {
		options = append(options, cleanup.WithNormalization())
	}
	memory, err := cleanup.NewMemory(r.cfg.Dimensionality, r.cfg.Seed, options...)
	if err != nil {
		return nil, fmt.Errorf("create memory: %w", err)
	}

	r.log.Info("generating symbols", logger.F("dimensionality", r.cfg.Dimensionality), logger.F("seed", r.cfg.Seed))

	symbols := make(map[string]*hrr.Symbol)
	symbol := func(label string) (*hrr.Symbol, error) {
		if s, ok := symbols[label]; ok {
			return s, nil
		}
		s, err := memory.NewSymbol(label)
		if err != nil {
			return nil, err
		}
		symbols[label] = s
		return s, nil
	}

	report := &Report{
		Dimensionality: r.cfg.Dimensionality,
		Seed:           r.cfg.Seed,
	}

	var bound []*hrr.Symbol
	for _, binding := range r.cfg.Bindings {
		role, err := symbol(binding.Role)
		if err != nil {
			return nil, fmt.Errorf("generate role %q: %w", binding.Role, err)
		}
		filler, err := symbol(binding.Filler)
		if err != nil {
			return nil, fmt.Errorf("generate filler %q: %w", binding.Filler, err)
		}

		pair, err := role.Bind(filler)
		if err != nil {
			return nil, err
		}
		bound = append(bound, pair)
		r.log.Debug("bound pair %s", pair.Label())

		recovery, err := r.recover(memory, pair, role, binding.Filler)
		if err != nil {
			return nil, err
		}
		report.Pairs = append(report.Pairs, PairResult{
			Role:           binding.Role,
			Filler:         binding.Filler,
			BoundLabel:     pair.Label(),
			BoundMagnitude: pair.Magnitude(),
			Recovery:       *recovery,
		})
	}

	if r.cfg.Superpose && len(bound) > 1 {
		trace := bound[0]
		for _, pair := range bound[1:] {
			trace, err = trace.Compose(pair)
			if err != nil {
				return nil, err
			}
		}
		r.log.Debug("superposed trace %s", trace.Label())

		result := &TraceResult{Label: trace.Label()}
		for _, binding := range r.cfg.Bindings {
			role := symbols[binding.Role]
			recovery, err := r.recover(memory, trace, role, binding.Filler)
			if err != nil {
				return nil, err
			}
			result.Recoveries = append(result.Recoveries, *recovery)
		}
		report.Trace = result
	}

	report.Labels = memory.Labels()
	report.Elapsed = time.Since(start)
	r.log.InfoWithFields("demonstration complete", []logger.Field{
		logger.Count(len(report.Pairs)),
		logger.Duration(report.Elapsed),
	})
	return report, nil
}

// recover unbinds role from carrier and cleans the result up against memory.
func (r *Runner) recover(memory *cleanup.Memory, carrier, role *hrr.Symbol, expected string) (*Recovery, error) {
	approx, err := carrier.Unbind(role)
	if err != nil {
		return nil, err
	}

	matches, err := memory.Cleanup(approx.Vector())
	if err != nil {
		return nil, fmt.Errorf("clean up %s: %w", approx.Label(), err)
	}

	best := matches[0]
	r.log.Debug("%s cleaned up to %q (%.3f)", approx.Label(), best.Label, best.Similarity)
	return &Recovery{
		Query:     approx.Label(),
		Expected:  expected,
		Best:      best,
		Matches:   matches,
		Recovered: best.Label == expected && !best.Tied,
	}, nil
}
