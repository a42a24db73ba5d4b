package gen

// Term generates arbitrary terms: atoms, integers, floats, binaries and
// recursively nested tuples and lists. The weight of the composite shapes
// decays with depth, so generated structures are always finite.
func Term() Generator {
	return termGen{}
}

type termGen struct{}

func (termGen) Validate() error {
	return nil
}

func (termGen) Generate(size int, src *Source) Sample {
	return genTerm(size, termDepth(size), src)
}

// termDepth derives the nesting budget from the size parameter
func termDepth(size int) int {
	depth := 1
	for s := size; s >= 8; s /= 8 {
		depth++
	}
	return depth
}

const (
	kindAtom = iota
	kindInt
	kindFloat
	kindBinary
	kindTuple
	kindList
)

// pickWeighted selects an index with probability proportional to weight
func pickWeighted(src *Source, weights []float64) int {
	var total float64
	for _, w := range weights {
		total += w
	}
	point := src.Float64() * total
	var cumulative float64
	for i, w := range weights {
		cumulative += w
		if point < cumulative {
			return i
		}
	}
	return len(weights) - 1
}

func genTerm(size, depth int, src *Source) Sample {
	composite := 0.0
	if depth > 0 {
		composite = 1.5
	}
	weights := []float64{1, 2, 1, 1, composite, composite}

	switch pickWeighted(src, weights) {
	case kindAtom:
		return Atom().Generate(size, src)
	case kindInt:
		return Int().Generate(size, src)
	case kindFloat:
		return Float().Generate(size, src)
	case kindBinary:
		return Binary().Generate(size, src)
	case kindTuple:
		n := src.IntRange(0, childCount(size))
		samples := make([]Sample, n)
		for i := range samples {
			samples[i] = genTerm(size/2, depth-1, src)
		}
		return tupleSample(samples)
	default:
		n := src.IntRange(0, childCount(size))
		samples := make([]Sample, n)
		for i := range samples {
			samples[i] = genTerm(size/2, depth-1, src)
		}
		return listSample(samples, 0)
	}
}

func childCount(size int) int {
	n := size / 4
	if n < 1 {
		n = 1
	}
	if n > 6 {
		n = 6
	}
	return n
}
