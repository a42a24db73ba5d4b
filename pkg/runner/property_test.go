package runner

import (
	"testing"

	"github.com/leanovate/gopter"
	gopterGen "github.com/leanovate/gopter/gen"
	gopterProp "github.com/leanovate/gopter/prop"

	"propcheck/pkg/gen"
	"propcheck/pkg/models"
	"propcheck/pkg/prop"
)

// Meta-properties of the engine itself, checked across many seeds
func TestEngineProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("a tautology passes for every seed", gopterProp.ForAll(
		func(seed int64) bool {
			p := prop.ForAll("x", gen.Term()).
				Check(func(prop.Values) bool { return true })

			cfg := DefaultConfig()
			cfg.Trials = 20
			cfg.Seed = seed

			result := New(cfg).RunProperty(p)
			return result.Status == models.StatusPassed && result.Passes == 20
		},
		gopterGen.Int64Range(1, 1<<30),
	))

	properties.Property("shrinking never grows the counterexample", gopterProp.ForAll(
		func(seed int64) bool {
			p := prop.ForAll("xs", gen.ListOf(gen.Int())).
				Check(func(v prop.Values) bool {
					return len(v.MustGet("xs").Elems) < 2
				})

			cfg := DefaultConfig()
			cfg.Seed = seed

			result := New(cfg).RunProperty(p)
			if result.Status != models.StatusFalsified {
				return false
			}
			return result.Shrunk.Measure() <= result.Counterexample.Measure()
		},
		gopterGen.Int64Range(1, 1<<30),
	))

	properties.Property("the shrunk value is a minimal failing list", gopterProp.ForAll(
		func(seed int64) bool {
			p := prop.ForAll("xs", gen.ListOf(gen.Int())).
				Check(func(v prop.Values) bool {
					return len(v.MustGet("xs").Elems) < 2
				})

			result := RunPropertySeed(p, seed)
			if result.Status != models.StatusFalsified {
				return false
			}
			xs := result.Shrunk.MustGet("xs")
			if len(xs.Elems) != 2 {
				return false
			}
			for _, e := range xs.Elems {
				if e.Int != 0 {
					return false
				}
			}
			return true
		},
		gopterGen.Int64Range(1, 1<<30),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
