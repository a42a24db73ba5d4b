package models

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"math"
	"strings"
)

// TermKind identifies the variant held by a Term
type TermKind int

const (
	AtomTerm TermKind = iota
	IntTerm
	FloatTerm
	BinaryTerm
	TupleTerm
	ListTerm
)

// String returns a human-readable name for the term kind
func (k TermKind) String() string {
	switch k {
	case AtomTerm:
		return "atom"
	case IntTerm:
		return "int"
	case FloatTerm:
		return "float"
	case BinaryTerm:
		return "binary"
	case TupleTerm:
		return "tuple"
	case ListTerm:
		return "list"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// Term is the open, recursively-defined value domain generators produce.
// Tuples and lists hold pointers to their children, so rebuilding a deeply
// nested term during shrinking shares unchanged subtrees instead of copying
// them.
type Term struct {
	Kind   TermKind
	Atom   string
	Int    int64
	Float  float64
	Binary []byte
	Elems  []*Term
}

// NewAtom creates an atom term
func NewAtom(name string) *Term {
	return &Term{Kind: AtomTerm, Atom: name}
}

// NewInt creates an integer term
func NewInt(v int64) *Term {
	return &Term{Kind: IntTerm, Int: v}
}

// NewFloat creates a float term
func NewFloat(v float64) *Term {
	return &Term{Kind: FloatTerm, Float: v}
}

// NewBinary creates a binary term holding the given bytes
func NewBinary(b []byte) *Term {
	return &Term{Kind: BinaryTerm, Binary: b}
}

// NewTuple creates a fixed-arity tuple term
func NewTuple(elems ...*Term) *Term {
	return &Term{Kind: TupleTerm, Elems: elems}
}

// NewList creates an ordered list term
func NewList(elems ...*Term) *Term {
	return &Term{Kind: ListTerm, Elems: elems}
}

// Equal reports whether two terms are structurally identical
func (t *Term) Equal(other *Term) bool {
	if t == nil || other == nil {
		return t == other
	}
	if t.Kind != other.Kind {
		return false
	}
	switch t.Kind {
	case AtomTerm:
		return t.Atom == other.Atom
	case IntTerm:
		return t.Int == other.Int
	case FloatTerm:
		return t.Float == other.Float
	case BinaryTerm:
		return bytes.Equal(t.Binary, other.Binary)
	case TupleTerm, ListTerm:
		if len(t.Elems) != len(other.Elems) {
			return false
		}
		for i := range t.Elems {
			if !t.Elems[i].Equal(other.Elems[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Measure returns a non-negative size measure for the term. Every shrink
// candidate a generator offers has a strictly smaller measure than the value
// it shrinks, which is what bounds the shrink search.
func (t *Term) Measure() int64 {
	if t == nil {
		return 0
	}
	switch t.Kind {
	case AtomTerm:
		return int64(len(t.Atom))
	case IntTerm:
		if t.Int == math.MinInt64 {
			return math.MaxInt64
		}
		if t.Int < 0 {
			return -t.Int
		}
		return t.Int
	case FloatTerm:
		abs := math.Abs(t.Float)
		if abs >= math.MaxInt64 || math.IsNaN(abs) {
			return math.MaxInt64
		}
		return int64(math.Ceil(abs))
	case BinaryTerm:
		var sum int64
		for _, b := range t.Binary {
			sum += int64(b)
		}
		return int64(len(t.Binary)) + sum
	case TupleTerm, ListTerm:
		total := int64(1 + len(t.Elems))
		for _, e := range t.Elems {
			m := e.Measure()
			if total > math.MaxInt64-m {
				return math.MaxInt64
			}
			total += m
		}
		return total
	default:
		return 0
	}
}

// Ints extracts the elements of an integer list. The second return value is
// false when the term is not a list or contains a non-integer element.
func (t *Term) Ints() ([]int64, bool) {
	if t == nil || t.Kind != ListTerm {
		return nil, false
	}
	out := make([]int64, len(t.Elems))
	for i, e := range t.Elems {
		if e == nil || e.Kind != IntTerm {
			return nil, false
		}
		out[i] = e.Int
	}
	return out, true
}

// String renders the term: atoms bare, binaries as <<hex>>, tuples in
// braces and lists in brackets
func (t *Term) String() string {
	if t == nil {
		return "<nil>"
	}
	switch t.Kind {
	case AtomTerm:
		return t.Atom
	case IntTerm:
		return fmt.Sprintf("%d", t.Int)
	case FloatTerm:
		return fmt.Sprintf("%g", t.Float)
	case BinaryTerm:
		return "<<" + hex.EncodeToString(t.Binary) + ">>"
	case TupleTerm:
		return "{" + joinTerms(t.Elems) + "}"
	case ListTerm:
		return "[" + joinTerms(t.Elems) + "]"
	default:
		return "<invalid>"
	}
}

func joinTerms(elems []*Term) string {
	parts := make([]string, len(elems))
	for i, e := range elems {
		parts[i] = e.String()
	}
	return strings.Join(parts, ", ")
}
