package gen

import (
	"testing"

	"propcheck/pkg/models"
)

func wellFormed(term *models.Term) bool {
	switch term.Kind {
	case models.AtomTerm:
		return len(term.Atom) > 0
	case models.IntTerm, models.FloatTerm, models.BinaryTerm:
		return true
	case models.TupleTerm, models.ListTerm:
		for _, e := range term.Elems {
			if e == nil || !wellFormed(e) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func TestTermGeneratesWellFormedTerms(t *testing.T) {
	g := Term()
	src := NewSource(321)

	kinds := map[models.TermKind]bool{}
	for i := 0; i < 1000; i++ {
		s := g.Generate(30, src)
		if !wellFormed(s.Value) {
			t.Fatalf("generated malformed term %s", s.Value)
		}
		kinds[s.Value.Kind] = true
	}

	// At size 30 a thousand draws should cover every shape
	for _, k := range []models.TermKind{
		models.AtomTerm, models.IntTerm, models.FloatTerm,
		models.BinaryTerm, models.TupleTerm, models.ListTerm,
	} {
		if !kinds[k] {
			t.Errorf("1000 draws never produced kind %v", k)
		}
	}
}

func TestTermDepthGrowsWithSize(t *testing.T) {
	tests := []struct {
		size, want int
	}{
		{0, 1},
		{7, 1},
		{8, 2},
		{40, 2},
		{64, 3},
	}
	for _, tt := range tests {
		if got := termDepth(tt.size); got != tt.want {
			t.Errorf("termDepth(%d) = %d, want %d", tt.size, got, tt.want)
		}
	}
}

func TestTermAtSizeZeroStaysFlat(t *testing.T) {
	g := Term()
	src := NewSource(9)

	var depth func(*models.Term) int
	depth = func(term *models.Term) int {
		max := 0
		for _, e := range term.Elems {
			if d := depth(e); d > max {
				max = d
			}
		}
		return max + 1
	}

	for i := 0; i < 500; i++ {
		s := g.Generate(0, src)
		if d := depth(s.Value); d > 2 {
			t.Fatalf("size 0 generated depth %d term %s", d, s.Value)
		}
	}
}
