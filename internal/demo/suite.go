// Package demo bundles the property suites shipped with the propcheck CLI.
// The sort suite passes; the badsort suite exercises a sort that drops
// duplicates and demonstrates falsification, shrinking, preconditions and
// derived generators.
package demo

import (
	"sort"

	"propcheck/pkg/gen"
	"propcheck/pkg/models"
	"propcheck/pkg/prop"
)

// Suites returns the bundled suites by name
func Suites() map[string]interface{} {
	return map[string]interface{}{
		"sort":    SortSuite{},
		"badsort": BadSortSuite{},
	}
}

// SuiteNames returns the bundled suite names in stable order
func SuiteNames() []string {
	names := make([]string, 0, len(Suites()))
	for name := range Suites() {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SortSuite holds properties of a correct integer sort
type SortSuite struct{}

// PropSortOrders checks that sorting yields an ordered list
func (SortSuite) PropSortOrders() *prop.Property {
	return prop.ForAll("xs", gen.ListOf(gen.Int())).Check(func(v prop.Values) bool {
		xs, ok := v.MustGet("xs").Ints()
		if !ok {
			return false
		}
		return isOrdered(sortInts(xs))
	})
}

// PropSortKeepsLength checks that sorting preserves the list length
func (SortSuite) PropSortKeepsLength() *prop.Property {
	return prop.ForAll("xs", gen.ListOf(gen.Int())).Check(func(v prop.Values) bool {
		xs, ok := v.MustGet("xs").Ints()
		if !ok {
			return false
		}
		return len(sortInts(xs)) == len(xs)
	})
}

// PropSortIdempotent checks that sorting twice equals sorting once
func (SortSuite) PropSortIdempotent() *prop.Property {
	return prop.ForAll("xs", gen.ListOf(gen.Int())).Check(func(v prop.Values) bool {
		xs, ok := v.MustGet("xs").Ints()
		if !ok {
			return false
		}
		once := sortInts(xs)
		return intsEqual(sortInts(once), once)
	})
}

// BadSortSuite holds properties of a sort that drops duplicate elements
type BadSortSuite struct{}

// PropKeepsLength falsifies: the duplicate-dropping sort shortens any list
// with a repeated element. Shrinking reduces the counterexample to a
// two-element list with two equal elements.
func (BadSortSuite) PropKeepsLength() *prop.Property {
	return prop.ForAll("xs", gen.ListOf(gen.Int())).Check(func(v prop.Values) bool {
		xs, ok := v.MustGet("xs").Ints()
		if !ok {
			return false
		}
		return len(dedupSort(xs)) == len(xs)
	})
}

// PropKeepsLengthUniqueInput passes by discarding inputs with duplicates
func (BadSortSuite) PropKeepsLengthUniqueInput() *prop.Property {
	return prop.ForAll("xs", gen.ListOf(gen.Int())).
		When(func(v prop.Values) bool {
			xs, ok := v.MustGet("xs").Ints()
			return ok && !hasDuplicates(xs)
		}).
		Check(func(v prop.Values) bool {
			xs, ok := v.MustGet("xs").Ints()
			if !ok {
				return false
			}
			return len(dedupSort(xs)) == len(xs)
		})
}

// PropKeepsLengthUniqueGenerator passes without any discards by deriving a
// duplicate-free generator instead of filtering with a precondition
func (BadSortSuite) PropKeepsLengthUniqueGenerator() *prop.Property {
	unique := gen.Let(gen.ListOf(gen.Int()), dedupTerm)
	return prop.ForAll("xs", unique).Check(func(v prop.Values) bool {
		xs, ok := v.MustGet("xs").Ints()
		if !ok {
			return false
		}
		return len(dedupSort(xs)) == len(xs)
	})
}

// sortInts returns a sorted copy
func sortInts(xs []int64) []int64 {
	out := append([]int64(nil), xs...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// dedupSort sorts but drops duplicate elements, the deliberate bug
func dedupSort(xs []int64) []int64 {
	sorted := sortInts(xs)
	var out []int64
	for i, x := range sorted {
		if i == 0 || x != sorted[i-1] {
			out = append(out, x)
		}
	}
	return out
}

func isOrdered(xs []int64) bool {
	for i := 1; i < len(xs); i++ {
		if xs[i-1] > xs[i] {
			return false
		}
	}
	return true
}

func intsEqual(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func hasDuplicates(xs []int64) bool {
	seen := make(map[int64]bool, len(xs))
	for _, x := range xs {
		if seen[x] {
			return true
		}
		seen[x] = true
	}
	return false
}

// dedupTerm removes duplicate elements from an integer list term, keeping
// first occurrences in order
func dedupTerm(t *models.Term) *models.Term {
	if t == nil || t.Kind != models.ListTerm {
		return t
	}
	seen := make(map[int64]bool, len(t.Elems))
	var elems []*models.Term
	for _, e := range t.Elems {
		if e.Kind == models.IntTerm {
			if seen[e.Int] {
				continue
			}
			seen[e.Int] = true
		}
		elems = append(elems, e)
	}
	return models.NewList(elems...)
}
