package gen

import (
	"errors"
	"testing"

	"propcheck/pkg/models"
)

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name    string
		g       Generator
		wantErr bool
	}{
		{"int", Int(), false},
		{"int range ok", IntRange(-3, 3), false},
		{"int range inverted", IntRange(3, -3), true},
		{"int range single point", IntRange(5, 5), false},
		{"float range inverted", FloatRange(1.0, -1.0), true},
		{"atom of empty", AtomOf(), true},
		{"atom of one", AtomOf("ok"), false},
		{"const nil", Const(nil), true},
		{"const term", Const(models.NewAtom("x")), false},
		{"list of nil element", ListOf(nil), true},
		{"list of n inverted", ListOfN(3, 1, Int()), true},
		{"list of n negative min", ListOfN(-1, 3, Int()), true},
		{"list of n nested invalid", ListOfN(0, 3, IntRange(9, 1)), true},
		{"tuple nil component", TupleOf(Int(), nil), true},
		{"let nil transform", Let(Int(), nil), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.g.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() error %v does not wrap ErrInvalidConfig", err)
			}
		})
	}
}

func TestIntStaysInSizeBounds(t *testing.T) {
	src := NewSource(99)
	g := Int()
	for i := 0; i < 500; i++ {
		s := g.Generate(10, src)
		if s.Value.Kind != models.IntTerm {
			t.Fatalf("generated %s, want an integer", s.Value)
		}
		if s.Value.Int < -10 || s.Value.Int > 10 {
			t.Fatalf("Int at size 10 generated %d", s.Value.Int)
		}
	}
}

func TestIntRangeStaysInBounds(t *testing.T) {
	src := NewSource(99)
	g := IntRange(5, 12)
	for i := 0; i < 500; i++ {
		s := g.Generate(40, src)
		if s.Value.Int < 5 || s.Value.Int > 12 {
			t.Fatalf("IntRange(5, 12) generated %d", s.Value.Int)
		}
	}
}

func TestAtomShape(t *testing.T) {
	src := NewSource(7)
	g := Atom()
	for i := 0; i < 200; i++ {
		s := g.Generate(40, src)
		name := s.Value.Atom
		if len(name) < 1 || len(name) > 8 {
			t.Fatalf("atom %q has length %d", name, len(name))
		}
		for _, c := range name {
			if c < 'a' || c > 'z' {
				t.Fatalf("atom %q contains %q", name, c)
			}
		}
	}
}

func TestAtomOfDrawsFromAlternatives(t *testing.T) {
	src := NewSource(3)
	g := AtomOf("red", "green", "blue")
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		s := g.Generate(10, src)
		switch s.Value.Atom {
		case "red", "green", "blue":
			seen[s.Value.Atom] = true
		default:
			t.Fatalf("AtomOf generated %q", s.Value.Atom)
		}
	}
	if len(seen) != 3 {
		t.Errorf("200 draws covered %d of 3 alternatives", len(seen))
	}
}

func TestBinaryLengthBounds(t *testing.T) {
	src := NewSource(11)
	g := Binary()
	for i := 0; i < 200; i++ {
		s := g.Generate(6, src)
		if n := len(s.Value.Binary); n > 6 {
			t.Fatalf("Binary at size 6 generated %d bytes", n)
		}
	}
}

func TestListOfNLengthBounds(t *testing.T) {
	src := NewSource(13)
	g := ListOfN(2, 5, Int())
	for i := 0; i < 200; i++ {
		s := g.Generate(20, src)
		if n := len(s.Value.Elems); n < 2 || n > 5 {
			t.Fatalf("ListOfN(2, 5) generated length %d", n)
		}
	}
}

func TestTupleOfArity(t *testing.T) {
	src := NewSource(17)
	g := TupleOf(Int(), Atom(), Binary())
	s := g.Generate(10, src)

	if s.Value.Kind != models.TupleTerm || len(s.Value.Elems) != 3 {
		t.Fatalf("TupleOf generated %s", s.Value)
	}
	kinds := []models.TermKind{models.IntTerm, models.AtomTerm, models.BinaryTerm}
	for i, want := range kinds {
		if s.Value.Elems[i].Kind != want {
			t.Errorf("component %d has kind %v, want %v", i, s.Value.Elems[i].Kind, want)
		}
	}
}

func TestConstNeverShrinks(t *testing.T) {
	term := models.NewTuple(models.NewAtom("pinned"), models.NewInt(9))
	s := Const(term).Generate(40, NewSource(1))

	if !s.Value.Equal(term) {
		t.Errorf("Const generated %s", s.Value)
	}
	if len(s.Candidates()) != 0 {
		t.Error("Const sample produced shrink candidates")
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	gens := map[string]Generator{
		"int":    Int(),
		"float":  Float(),
		"atom":   Atom(),
		"binary": Binary(),
		"list":   ListOf(Int()),
		"term":   Term(),
	}

	for name, g := range gens {
		t.Run(name, func(t *testing.T) {
			a := NewSource(4242)
			b := NewSource(4242)
			for i := 0; i < 50; i++ {
				va := g.Generate(20, a).Value
				vb := g.Generate(20, b).Value
				if !va.Equal(vb) {
					t.Fatalf("draw %d diverged: %s vs %s", i, va, vb)
				}
			}
		})
	}
}
