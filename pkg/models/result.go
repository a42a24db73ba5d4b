package models

import (
	"fmt"
	"strings"
)

// Binding pairs a property variable name with its generated value
type Binding struct {
	Name  string
	Value *Term
}

// Bindings is the ordered set of values bound for one trial
type Bindings []Binding

// Get returns the value bound to the given variable name
func (b Bindings) Get(name string) (*Term, bool) {
	for _, bind := range b {
		if bind.Name == name {
			return bind.Value, true
		}
	}
	return nil, false
}

// MustGet returns the value bound to name and panics if it is absent.
// Intended for property predicates, where a missing binding is a
// programming error the driver reports as an Errored outcome.
func (b Bindings) MustGet(name string) *Term {
	v, ok := b.Get(name)
	if !ok {
		panic(fmt.Sprintf("no binding named %q", name))
	}
	return v
}

// Clone returns a copy whose binding slots can be replaced independently.
// Term values are shared; shrinking substitutes whole terms rather than
// mutating them.
func (b Bindings) Clone() Bindings {
	out := make(Bindings, len(b))
	copy(out, b)
	return out
}

// Measure returns the combined size measure of all bound values
func (b Bindings) Measure() int64 {
	var total int64
	for _, bind := range b {
		total += bind.Value.Measure()
	}
	return total
}

// String renders bindings as "name = value" pairs
func (b Bindings) String() string {
	parts := make([]string, len(b))
	for i, bind := range b {
		parts[i] = fmt.Sprintf("%s = %s", bind.Name, bind.Value)
	}
	return strings.Join(parts, ", ")
}

// OutcomeKind classifies a single trial
type OutcomeKind int

const (
	Passed OutcomeKind = iota
	Falsified
	Discarded
	Errored
)

// String returns a human-readable name for the outcome kind
func (k OutcomeKind) String() string {
	switch k {
	case Passed:
		return "passed"
	case Falsified:
		return "falsified"
	case Discarded:
		return "discarded"
	case Errored:
		return "errored"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// TrialOutcome is the result of one generate-and-evaluate attempt
type TrialOutcome struct {
	Kind OutcomeKind

	// Values holds the bound values for the trial; for Falsified and
	// Errored outcomes they are the counterexample.
	Values Bindings

	// PanicValue carries the recovered payload when Kind is Errored
	PanicValue interface{}
}

// Failed reports whether the outcome counts as a property failure
func (o TrialOutcome) Failed() bool {
	return o.Kind == Falsified || o.Kind == Errored
}

// RunStatus classifies an entire property run
type RunStatus int

const (
	StatusPassed RunStatus = iota
	StatusFalsified
	StatusErrored
	StatusGaveUp
	StatusConfigError
)

// String returns a human-readable name for the run status
func (s RunStatus) String() string {
	switch s {
	case StatusPassed:
		return "passed"
	case StatusFalsified:
		return "falsified"
	case StatusErrored:
		return "errored"
	case StatusGaveUp:
		return "gave up"
	case StatusConfigError:
		return "configuration error"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// RunResult aggregates all trials of one property run
type RunResult struct {
	Status   RunStatus
	Passes   int
	Discards int

	// Seed is the effective seed the run used; rerunning with this seed
	// reproduces the identical trial sequence and shrink trajectory.
	Seed int64

	// Counterexample holds the originally generated failing values;
	// Shrunk holds the minimal counterexample after shrinking.
	Counterexample Bindings
	Shrunk         Bindings
	ShrinkSteps    int

	// PanicValue carries the predicate's recovered panic for StatusErrored
	PanicValue interface{}

	// Err details StatusGaveUp and StatusConfigError results
	Err error
}

// Failed reports whether the run did not end in a clean pass
func (r RunResult) Failed() bool {
	return r.Status != StatusPassed
}

// PropertyResult pairs a discovered property name with its run result
type PropertyResult struct {
	Name   string
	Result RunResult
}

// SuiteResult aggregates the results of every property in a suite, in
// stable enumeration order
type SuiteResult struct {
	Suite      string
	Properties []PropertyResult
}

// Failures returns the names of the failing properties in enumeration order
func (s *SuiteResult) Failures() []string {
	var names []string
	for _, p := range s.Properties {
		if p.Result.Failed() {
			names = append(names, p.Name)
		}
	}
	return names
}

// Failed reports whether any property in the suite failed
func (s *SuiteResult) Failed() bool {
	return len(s.Failures()) > 0
}
