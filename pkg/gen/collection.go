package gen

import (
	"fmt"

	"propcheck/pkg/models"
)

func termsOf(samples []Sample) []*models.Term {
	elems := make([]*models.Term, len(samples))
	for i, s := range samples {
		elems[i] = s.Value
	}
	return elems
}

func without(samples []Sample, i int) []Sample {
	out := make([]Sample, 0, len(samples)-1)
	out = append(out, samples[:i]...)
	out = append(out, samples[i+1:]...)
	return out
}

func replaced(samples []Sample, i int, s Sample) []Sample {
	out := make([]Sample, len(samples))
	copy(out, samples)
	out[i] = s
	return out
}

// listSample builds a list sample whose shrink relation first removes
// elements (down to minLen) and then shrinks elements in place
func listSample(samples []Sample, minLen int) Sample {
	return Sample{
		Value: models.NewList(termsOf(samples)...),
		Shrink: func() []Sample {
			n := len(samples)
			var out []Sample
			if n > minLen {
				out = append(out, listSample(samples[:minLen], minLen))
				halfKept := n - (n-minLen)/2
				if halfKept != minLen && halfKept != n {
					out = append(out, listSample(samples[:halfKept], minLen))
				}
				for i := 0; i < n; i++ {
					out = append(out, listSample(without(samples, i), minLen))
				}
			}
			for i := 0; i < n; i++ {
				for _, cand := range samples[i].Candidates() {
					out = append(out, listSample(replaced(samples, i, cand), minLen))
				}
			}
			return out
		},
	}
}

// tupleSample builds a fixed-arity tuple sample shrinking component-wise
func tupleSample(samples []Sample) Sample {
	return Sample{
		Value: models.NewTuple(termsOf(samples)...),
		Shrink: func() []Sample {
			var out []Sample
			for i := range samples {
				for _, cand := range samples[i].Candidates() {
					out = append(out, tupleSample(replaced(samples, i, cand)))
				}
			}
			return out
		},
	}
}

type listGen struct {
	elem     Generator
	min, max int
	sized    bool
}

// ListOf generates lists of the element generator with length in [0, size]
func ListOf(elem Generator) Generator {
	return listGen{elem: elem, sized: true}
}

// ListOfN generates lists with length in [min, max]
func ListOfN(min, max int, elem Generator) Generator {
	return listGen{elem: elem, min: min, max: max}
}

func (g listGen) Validate() error {
	if g.elem == nil {
		return fmt.Errorf("%w: list element generator is nil", ErrInvalidConfig)
	}
	if !g.sized {
		if g.min < 0 {
			return fmt.Errorf("%w: list length bound %d is negative", ErrInvalidConfig, g.min)
		}
		if g.min > g.max {
			return fmt.Errorf("%w: list min length %d above max %d", ErrInvalidConfig, g.min, g.max)
		}
	}
	return g.elem.Validate()
}

func (g listGen) Generate(size int, src *Source) Sample {
	lo, hi := g.min, g.max
	if g.sized {
		lo, hi = 0, size
		if hi < 0 {
			hi = 0
		}
	}
	n := src.IntRange(lo, hi)
	samples := make([]Sample, n)
	for i := range samples {
		samples[i] = g.elem.Generate(size, src)
	}
	return listSample(samples, lo)
}

type tupleGen struct {
	elems []Generator
}

// TupleOf generates fixed-arity tuples, one component per generator,
// shrinking component-wise
func TupleOf(elems ...Generator) Generator {
	return tupleGen{elems: elems}
}

func (g tupleGen) Validate() error {
	for i, e := range g.elems {
		if e == nil {
			return fmt.Errorf("%w: tuple component %d is nil", ErrInvalidConfig, i)
		}
		if err := e.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (g tupleGen) Generate(size int, src *Source) Sample {
	samples := make([]Sample, len(g.elems))
	for i, e := range g.elems {
		samples[i] = e.Generate(size, src)
	}
	return tupleSample(samples)
}
