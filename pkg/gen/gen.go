package gen

import (
	"errors"
	"fmt"
	"math"

	"propcheck/pkg/models"
)

// ErrInvalidConfig marks a generator whose declared constraints cannot be
// satisfied. Validate surfaces it before any value is drawn.
var ErrInvalidConfig = errors.New("invalid generator configuration")

// Sample is one generated term together with its shrink relation. Shrink
// returns a finite, ordered list of candidates, each structurally smaller
// than the sample and still inside the generator's domain. A nil Shrink
// means the value admits no candidates.
type Sample struct {
	Value  *models.Term
	Shrink func() []Sample
}

// Candidates invokes the shrink relation, tolerating samples without one
func (s Sample) Candidates() []Sample {
	if s.Shrink == nil {
		return nil
	}
	return s.Shrink()
}

// Generator describes how to produce random terms of one shape.
// Implementations are immutable and safe to reuse across trials.
type Generator interface {
	// Validate reports a configuration error. The driver calls it before
	// the first trial; Generate is only invoked on valid generators.
	Validate() error

	// Generate draws one sample. It is deterministic given the size and
	// the source's stream position, always terminates, and always
	// produces a well-formed term.
	Generate(size int, src *Source) Sample
}

// clampOrigin returns the in-range value closest to zero, the point
// integer shrinking moves toward
func clampOrigin(lo, hi int64) int64 {
	if lo > 0 {
		return lo
	}
	if hi < 0 {
		return hi
	}
	return 0
}

// shrinkInt64 yields candidates ordered most aggressive first: the origin
// itself, then values halving back toward v
func shrinkInt64(v, origin int64) []int64 {
	if v == origin {
		return nil
	}
	var out []int64
	for d := v - origin; d != 0; d /= 2 {
		out = append(out, v-d)
	}
	return out
}

func intSample(v, origin int64) Sample {
	return Sample{
		Value: models.NewInt(v),
		Shrink: func() []Sample {
			cands := shrinkInt64(v, origin)
			out := make([]Sample, len(cands))
			for i, c := range cands {
				out[i] = intSample(c, origin)
			}
			return out
		},
	}
}

type intGen struct{}

// Int generates integers in [-size, size], shrinking toward zero
func Int() Generator {
	return intGen{}
}

func (intGen) Validate() error {
	return nil
}

func (intGen) Generate(size int, src *Source) Sample {
	if size < 1 {
		size = 1
	}
	v := src.Int64Range(-int64(size), int64(size))
	return intSample(v, 0)
}

type intRangeGen struct {
	lo, hi int64
}

// IntRange generates integers in [lo, hi], shrinking toward the in-range
// value closest to zero
func IntRange(lo, hi int64) Generator {
	return intRangeGen{lo: lo, hi: hi}
}

func (g intRangeGen) Validate() error {
	if g.lo > g.hi {
		return fmt.Errorf("%w: IntRange low %d above high %d", ErrInvalidConfig, g.lo, g.hi)
	}
	return nil
}

func (g intRangeGen) Generate(size int, src *Source) Sample {
	v := src.Int64Range(g.lo, g.hi)
	return intSample(v, clampOrigin(g.lo, g.hi))
}

func floatSample(v, origin float64) Sample {
	return Sample{
		Value: models.NewFloat(v),
		Shrink: func() []Sample {
			measure := models.NewFloat(v).Measure()
			raw := []float64{
				origin,
				math.Trunc(v),
				origin + (v-origin)/2,
			}
			var out []Sample
			for _, c := range raw {
				if c == v {
					continue
				}
				cand := models.NewFloat(c)
				if cand.Measure() >= measure {
					continue
				}
				dup := false
				for _, prev := range out {
					if prev.Value.Equal(cand) {
						dup = true
						break
					}
				}
				if !dup {
					out = append(out, floatSample(c, origin))
				}
			}
			return out
		},
	}
}

type floatGen struct{}

// Float generates floats in [-size, size), shrinking toward zero through
// progressively simpler values
func Float() Generator {
	return floatGen{}
}

func (floatGen) Validate() error {
	return nil
}

func (floatGen) Generate(size int, src *Source) Sample {
	if size < 1 {
		size = 1
	}
	v := src.Float64Range(-float64(size), float64(size))
	return floatSample(v, 0)
}

type floatRangeGen struct {
	lo, hi float64
}

// FloatRange generates floats in [lo, hi), shrinking toward the in-range
// value closest to zero
func FloatRange(lo, hi float64) Generator {
	return floatRangeGen{lo: lo, hi: hi}
}

func (g floatRangeGen) Validate() error {
	if g.lo > g.hi {
		return fmt.Errorf("%w: FloatRange low %g above high %g", ErrInvalidConfig, g.lo, g.hi)
	}
	return nil
}

func (g floatRangeGen) Generate(size int, src *Source) Sample {
	v := src.Float64Range(g.lo, g.hi)
	origin := 0.0
	if g.lo > 0 {
		origin = g.lo
	} else if g.hi < 0 {
		origin = g.hi
	}
	return floatSample(v, origin)
}

const atomChars = "abcdefghijklmnopqrstuvwxyz"

func atomSample(name string) Sample {
	return Sample{
		Value: models.NewAtom(name),
		Shrink: func() []Sample {
			n := len(name)
			if n <= 1 {
				return nil
			}
			prefixes := []int{1, n / 2, n - 1}
			var out []Sample
			seen := map[int]bool{n: true}
			for _, p := range prefixes {
				if p < 1 || seen[p] {
					continue
				}
				seen[p] = true
				out = append(out, atomSample(name[:p]))
			}
			return out
		},
	}
}

type atomGen struct{}

// Atom generates short lowercase identifiers, shrinking toward shorter
// prefixes
func Atom() Generator {
	return atomGen{}
}

func (atomGen) Validate() error {
	return nil
}

func (atomGen) Generate(size int, src *Source) Sample {
	maxLen := size
	if maxLen > 8 {
		maxLen = 8
	}
	if maxLen < 1 {
		maxLen = 1
	}
	n := src.IntRange(1, maxLen)
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = atomChars[src.Intn(len(atomChars))]
	}
	return atomSample(string(buf))
}

func atomOfSample(names []string, idx int) Sample {
	return Sample{
		Value: models.NewAtom(names[idx]),
		Shrink: func() []Sample {
			// Earlier alternatives are the smaller ones; the strictly
			// decreasing index is what bounds this shrink chain.
			out := make([]Sample, 0, idx)
			for j := 0; j < idx; j++ {
				out = append(out, atomOfSample(names, j))
			}
			return out
		},
	}
}

type atomOfGen struct {
	names []string
}

// AtomOf generates one of the given atom names, shrinking toward earlier
// alternatives
func AtomOf(names ...string) Generator {
	return atomOfGen{names: names}
}

func (g atomOfGen) Validate() error {
	if len(g.names) == 0 {
		return fmt.Errorf("%w: AtomOf needs at least one alternative", ErrInvalidConfig)
	}
	return nil
}

func (g atomOfGen) Generate(size int, src *Source) Sample {
	return atomOfSample(g.names, src.Intn(len(g.names)))
}

func binarySample(b []byte) Sample {
	return Sample{
		Value: models.NewBinary(b),
		Shrink: func() []Sample {
			n := len(b)
			var out []Sample
			if n > 0 {
				out = append(out, binarySample(nil))
			}
			if n > 1 {
				out = append(out, binarySample(append([]byte(nil), b[:n/2]...)))
				out = append(out, binarySample(append([]byte(nil), b[n/2:]...)))
			}
			if n > 1 {
				for i := 0; i < n; i++ {
					c := make([]byte, 0, n-1)
					c = append(c, b[:i]...)
					c = append(c, b[i+1:]...)
					out = append(out, binarySample(c))
				}
			}
			for i := 0; i < n; i++ {
				if b[i] == 0 {
					continue
				}
				c := append([]byte(nil), b...)
				c[i] = 0
				out = append(out, binarySample(c))
			}
			return out
		},
	}
}

type binaryGen struct{}

// Binary generates byte strings with length in [0, size], shrinking by
// dropping chunks and zeroing bytes
func Binary() Generator {
	return binaryGen{}
}

func (binaryGen) Validate() error {
	return nil
}

func (binaryGen) Generate(size int, src *Source) Sample {
	if size < 0 {
		size = 0
	}
	n := src.IntRange(0, size)
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = src.Byte()
	}
	return binarySample(buf)
}

type constGen struct {
	term *models.Term
}

// Const always generates the given term and never shrinks it
func Const(term *models.Term) Generator {
	return constGen{term: term}
}

func (g constGen) Validate() error {
	if g.term == nil {
		return fmt.Errorf("%w: Const needs a non-nil term", ErrInvalidConfig)
	}
	return nil
}

func (g constGen) Generate(size int, src *Source) Sample {
	return Sample{Value: g.term}
}
