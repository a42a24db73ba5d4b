package gen

import (
	"fmt"

	"propcheck/pkg/models"
)

type letGen struct {
	base      Generator
	transform func(*models.Term) *models.Term
}

// Let derives a generator from base by applying a pure transform to every
// generated value. The derived generator shrinks by shrinking the
// underlying base sample and reapplying the transform; it never invents
// shrink candidates for the transformed value itself, so the transform's
// invariants hold along the whole shrink trajectory.
func Let(base Generator, transform func(*models.Term) *models.Term) Generator {
	return letGen{base: base, transform: transform}
}

func (g letGen) Validate() error {
	if g.base == nil {
		return fmt.Errorf("%w: Let base generator is nil", ErrInvalidConfig)
	}
	if g.transform == nil {
		return fmt.Errorf("%w: Let transform is nil", ErrInvalidConfig)
	}
	return g.base.Validate()
}

func (g letGen) Generate(size int, src *Source) Sample {
	return mapSample(g.base.Generate(size, src), g.transform)
}

func mapSample(s Sample, transform func(*models.Term) *models.Term) Sample {
	return Sample{
		Value: transform(s.Value),
		Shrink: func() []Sample {
			base := s.Candidates()
			out := make([]Sample, 0, len(base))
			for _, b := range base {
				out = append(out, mapSample(b, transform))
			}
			return out
		},
	}
}
