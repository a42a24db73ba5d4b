package runner

import (
	"propcheck/pkg/gen"
	"propcheck/pkg/models"
	"propcheck/pkg/prop"
)

// SizePolicy selects how the size parameter evolves across trials
type SizePolicy int

const (
	// SizeLinear ramps the size from 1 up to MaxSize across the trial
	// target, so early counterexamples are small to begin with
	SizeLinear SizePolicy = iota

	// SizeFixed pins every trial at MaxSize
	SizeFixed
)

// Config controls a property run. The zero value of any field falls back
// to its default, so callers can set only what they need.
type Config struct {
	// Trials is the number of passing trials required. Default: 100.
	Trials int

	// MaxDiscardRatio bounds discards at Trials*MaxDiscardRatio before
	// the run gives up. Default: 5.
	MaxDiscardRatio int

	// MaxSize caps the size parameter passed to generators. Default: 40.
	MaxSize int

	// SizePolicy selects the size schedule. Default: SizeLinear.
	SizePolicy SizePolicy

	// Seed fixes the random stream for reproducibility.
	// 0 resolves to a time-based seed, reported in the result.
	Seed int64

	// MaxShrinkSteps caps accepted shrinks per failure. Default: 1000.
	MaxShrinkSteps int

	// Reporter receives progress signals; nil means no reporting.
	Reporter Reporter
}

// DefaultConfig returns the standard run configuration
func DefaultConfig() Config {
	return Config{
		Trials:          100,
		MaxDiscardRatio: 5,
		MaxSize:         40,
		SizePolicy:      SizeLinear,
		MaxShrinkSteps:  1000,
	}
}

// Reporter receives the engine's progress signals, one per trial in trial
// order, plus the counterexample events around shrinking. Implementations
// render them; the engine never formats output itself.
type Reporter interface {
	// Trial is called after every trial with its outcome kind
	Trial(kind models.OutcomeKind)

	// Falsified is called once when a failing trial starts shrinking
	Falsified(values models.Bindings, panicValue interface{})

	// ShrinkStep is called after every accepted shrink
	ShrinkStep(values models.Bindings)

	// Shrunk is called once shrinking completes, with the minimal
	// counterexample and the number of accepted steps
	Shrunk(values models.Bindings, steps int)
}

type nopReporter struct{}

func (nopReporter) Trial(models.OutcomeKind)               {}
func (nopReporter) Falsified(models.Bindings, interface{}) {}
func (nopReporter) ShrinkStep(models.Bindings)             {}
func (nopReporter) Shrunk(models.Bindings, int)            {}

// Runner executes properties sequentially against a single random stream.
// One property is fully run, including shrinking, before the next starts.
type Runner struct {
	cfg      Config
	reporter Reporter
}

// New creates a runner, filling unset config fields with defaults
func New(cfg Config) *Runner {
	def := DefaultConfig()
	if cfg.Trials <= 0 {
		cfg.Trials = def.Trials
	}
	if cfg.MaxDiscardRatio <= 0 {
		cfg.MaxDiscardRatio = def.MaxDiscardRatio
	}
	if cfg.MaxSize <= 0 {
		cfg.MaxSize = def.MaxSize
	}
	if cfg.MaxShrinkSteps <= 0 {
		cfg.MaxShrinkSteps = def.MaxShrinkSteps
	}
	reporter := cfg.Reporter
	if reporter == nil {
		reporter = nopReporter{}
	}
	return &Runner{cfg: cfg, reporter: reporter}
}

// RunProperty runs one property to completion and returns its aggregate
// result
func (r *Runner) RunProperty(p *prop.Property) models.RunResult {
	return r.runProperty(p, gen.NewSource(r.cfg.Seed))
}

// RunProperty runs a property with the default configuration
func RunProperty(p *prop.Property) models.RunResult {
	return New(DefaultConfig()).RunProperty(p)
}

// RunPropertyTrials runs a property with an explicit trial target
func RunPropertyTrials(p *prop.Property, trials int) models.RunResult {
	cfg := DefaultConfig()
	cfg.Trials = trials
	return New(cfg).RunProperty(p)
}

// RunPropertySeed runs a property with an explicit seed for reproducibility
func RunPropertySeed(p *prop.Property, seed int64) models.RunResult {
	cfg := DefaultConfig()
	cfg.Seed = seed
	return New(cfg).RunProperty(p)
}

// sizeFor returns the size for the trial following the given number of
// passes. Discarded trials retry at the same size, so the schedule is a
// pure function of the configuration.
func (r *Runner) sizeFor(passes int) int {
	if r.cfg.SizePolicy == SizeFixed || r.cfg.Trials <= 1 {
		return r.cfg.MaxSize
	}
	return 1 + passes*(r.cfg.MaxSize-1)/(r.cfg.Trials-1)
}

func (r *Runner) runProperty(p *prop.Property, src *gen.Source) models.RunResult {
	if err := p.Validate(); err != nil {
		return models.RunResult{
			Status: models.StatusConfigError,
			Seed:   src.Seed(),
			Err:    NewGeneratorConfigError(err),
		}
	}

	passes := 0
	discards := 0
	budget := r.cfg.Trials * r.cfg.MaxDiscardRatio

	for passes < r.cfg.Trials {
		outcome, samples := p.Evaluate(r.sizeFor(passes), src)
		r.reporter.Trial(outcome.Kind)

		switch outcome.Kind {
		case models.Passed:
			passes++
		case models.Discarded:
			discards++
			if discards > budget {
				return models.RunResult{
					Status:   models.StatusGaveUp,
					Passes:   passes,
					Discards: discards,
					Seed:     src.Seed(),
					Err:      NewGaveUpError(passes, discards, budget),
				}
			}
		default:
			r.reporter.Falsified(outcome.Values, outcome.PanicValue)
			return r.shrink(p, outcome, samples, passes, discards, src.Seed())
		}
	}

	return models.RunResult{
		Status:   models.StatusPassed,
		Passes:   passes,
		Discards: discards,
		Seed:     src.Seed(),
	}
}

// shrink searches for a locally minimal counterexample. For each bound
// variable it walks the sample's shrink candidates in order, re-evaluating
// the property with every other binding held fixed, and accepts the first
// candidate that still fails. Full passes over the variables repeat until
// none accepts a candidate. Every acceptance replaces the variable's sample
// with a strictly smaller one, which bounds the search.
func (r *Runner) shrink(p *prop.Property, first models.TrialOutcome, samples []gen.Sample, passes, discards int, seed int64) models.RunResult {
	current := first
	values := first.Values
	working := make([]gen.Sample, len(samples))
	copy(working, samples)
	steps := 0

	for changed := true; changed && steps < r.cfg.MaxShrinkSteps; {
		changed = false
		for i := range working {
			for accepted := true; accepted && steps < r.cfg.MaxShrinkSteps; {
				accepted = false
				for _, cand := range working[i].Candidates() {
					if cand.Value.Equal(values[i].Value) {
						continue
					}
					candValues := values.Clone()
					candValues[i] = models.Binding{Name: values[i].Name, Value: cand.Value}
					outcome := p.Apply(candValues)
					if !outcome.Failed() {
						continue
					}
					working[i] = cand
					values = candValues
					current = outcome
					steps++
					changed = true
					accepted = true
					r.reporter.ShrinkStep(values)
					break
				}
			}
		}
	}
	r.reporter.Shrunk(values, steps)

	status := models.StatusFalsified
	if current.Kind == models.Errored {
		status = models.StatusErrored
	}
	return models.RunResult{
		Status:         status,
		Passes:         passes,
		Discards:       discards,
		Seed:           seed,
		Counterexample: first.Values,
		Shrunk:         values,
		ShrinkSteps:    steps,
		PanicValue:     current.PanicValue,
	}
}
