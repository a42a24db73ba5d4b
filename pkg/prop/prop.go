package prop

import (
	"fmt"

	"propcheck/pkg/gen"
	"propcheck/pkg/models"
)

// Values is the view of the bound variables a predicate receives
type Values = models.Bindings

// Predicate is the boolean body of a property
type Predicate func(Values) bool

type variable struct {
	name string
	gen  gen.Generator
}

// Property binds an ordered list of named generators to a boolean
// predicate, optionally gated by a precondition. Properties are immutable
// once built and are reused across many trials.
type Property struct {
	vars      []variable
	pre       Predicate
	predicate Predicate
}

// ForAll starts a property by binding the first variable to a generator
func ForAll(name string, g gen.Generator) *Property {
	return &Property{vars: []variable{{name: name, gen: g}}}
}

// ForAll binds one more independent variable, in declaration order
func (p *Property) ForAll(name string, g gen.Generator) *Property {
	q := p.clone()
	q.vars = append(q.vars, variable{name: name, gen: g})
	return q
}

// When installs a precondition. Trials whose bound values fail it are
// discarded without evaluating the body and do not count toward the pass
// target.
func (p *Property) When(pre Predicate) *Property {
	q := p.clone()
	q.pre = pre
	return q
}

// Implies is an alias for When
func (p *Property) Implies(pre Predicate) *Property {
	return p.When(pre)
}

// Check installs the boolean body of the property
func (p *Property) Check(predicate Predicate) *Property {
	q := p.clone()
	q.predicate = predicate
	return q
}

func (p *Property) clone() *Property {
	vars := make([]variable, len(p.vars))
	copy(vars, p.vars)
	return &Property{vars: vars, pre: p.pre, predicate: p.predicate}
}

// Variables returns the declared variable names in binding order
func (p *Property) Variables() []string {
	names := make([]string, len(p.vars))
	for i, v := range p.vars {
		names[i] = v.name
	}
	return names
}

// Validate reports a configuration error in the property declaration or in
// any of its generators. The driver calls it before running any trial.
func (p *Property) Validate() error {
	if len(p.vars) == 0 {
		return fmt.Errorf("%w: property binds no variables", gen.ErrInvalidConfig)
	}
	if p.predicate == nil {
		return fmt.Errorf("%w: property has no predicate; call Check", gen.ErrInvalidConfig)
	}
	seen := make(map[string]bool, len(p.vars))
	for _, v := range p.vars {
		if v.name == "" {
			return fmt.Errorf("%w: property variable has an empty name", gen.ErrInvalidConfig)
		}
		if seen[v.name] {
			return fmt.Errorf("%w: duplicate property variable %q", gen.ErrInvalidConfig, v.name)
		}
		seen[v.name] = true
		if v.gen == nil {
			return fmt.Errorf("%w: variable %q has a nil generator", gen.ErrInvalidConfig, v.name)
		}
		if err := v.gen.Validate(); err != nil {
			return fmt.Errorf("variable %q: %w", v.name, err)
		}
	}
	return nil
}

// Evaluate runs one trial: bind every variable from the source, apply the
// precondition, then the predicate. The returned samples carry the shrink
// relations for the bound values; the driver uses them when the outcome is
// a failure.
func (p *Property) Evaluate(size int, src *gen.Source) (models.TrialOutcome, []gen.Sample) {
	samples := make([]gen.Sample, len(p.vars))
	values := make(models.Bindings, len(p.vars))
	for i, v := range p.vars {
		samples[i] = v.gen.Generate(size, src)
		values[i] = models.Binding{Name: v.name, Value: samples[i].Value}
	}
	return p.Apply(values), samples
}

// Apply evaluates the precondition and predicate over fixed bindings
// without generating anything. Shrinking uses it to re-test candidate
// counterexamples with the other bound values held fixed.
func (p *Property) Apply(values models.Bindings) (outcome models.TrialOutcome) {
	outcome = models.TrialOutcome{Kind: models.Passed, Values: values}

	// A panic in the precondition or predicate becomes an Errored
	// outcome carrying the payload; the bound values remain eligible
	// for shrinking.
	defer func() {
		if r := recover(); r != nil {
			outcome = models.TrialOutcome{
				Kind:       models.Errored,
				Values:     values,
				PanicValue: r,
			}
		}
	}()

	if p.pre != nil && !p.pre(values) {
		return models.TrialOutcome{Kind: models.Discarded, Values: values}
	}
	if !p.predicate(values) {
		return models.TrialOutcome{Kind: models.Falsified, Values: values}
	}
	return outcome
}
