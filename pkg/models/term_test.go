package models

import "testing"

func TestTermEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b *Term
		want bool
	}{
		{
			name: "equal ints",
			a:    NewInt(5),
			b:    NewInt(5),
			want: true,
		},
		{
			name: "different ints",
			a:    NewInt(5),
			b:    NewInt(-5),
			want: false,
		},
		{
			name: "different kinds",
			a:    NewInt(0),
			b:    NewFloat(0),
			want: false,
		},
		{
			name: "equal atoms",
			a:    NewAtom("ok"),
			b:    NewAtom("ok"),
			want: true,
		},
		{
			name: "equal binaries",
			a:    NewBinary([]byte{1, 2, 3}),
			b:    NewBinary([]byte{1, 2, 3}),
			want: true,
		},
		{
			name: "different binaries",
			a:    NewBinary([]byte{1, 2, 3}),
			b:    NewBinary([]byte{1, 2}),
			want: false,
		},
		{
			name: "nested lists equal",
			a:    NewList(NewInt(1), NewList(NewAtom("a"))),
			b:    NewList(NewInt(1), NewList(NewAtom("a"))),
			want: true,
		},
		{
			name: "nested lists differ",
			a:    NewList(NewInt(1), NewList(NewAtom("a"))),
			b:    NewList(NewInt(1), NewList(NewAtom("b"))),
			want: false,
		},
		{
			name: "tuple vs list",
			a:    NewTuple(NewInt(1)),
			b:    NewList(NewInt(1)),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal(%s, %s) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestTermMeasure(t *testing.T) {
	if got := NewInt(-5).Measure(); got != 5 {
		t.Errorf("Measure(-5) = %d, want 5", got)
	}
	if got := NewInt(0).Measure(); got != 0 {
		t.Errorf("Measure(0) = %d, want 0", got)
	}
	if got := NewFloat(2.5).Measure(); got != 3 {
		t.Errorf("Measure(2.5) = %d, want 3", got)
	}
	if got := NewAtom("abc").Measure(); got != 3 {
		t.Errorf("Measure(abc) = %d, want 3", got)
	}
	if got := NewBinary([]byte{0, 1, 2}).Measure(); got != 6 {
		t.Errorf("Measure(<<000102>>) = %d, want 6", got)
	}

	// Composites weigh more than the sum of their elements, so removing
	// an element always shrinks the measure even when the element is zero
	list := NewList(NewInt(0), NewInt(0))
	shorter := NewList(NewInt(0))
	if list.Measure() <= shorter.Measure() {
		t.Errorf("Measure(%s) = %d not above Measure(%s) = %d",
			list, list.Measure(), shorter, shorter.Measure())
	}
}

func TestTermString(t *testing.T) {
	tests := []struct {
		term *Term
		want string
	}{
		{NewAtom("hello"), "hello"},
		{NewInt(-42), "-42"},
		{NewFloat(2.5), "2.5"},
		{NewBinary([]byte{0x0a, 0x1f}), "<<0a1f>>"},
		{NewBinary(nil), "<<>>"},
		{NewList(NewInt(1), NewAtom("a")), "[1, a]"},
		{NewTuple(NewInt(1), NewList()), "{1, []}"},
	}

	for _, tt := range tests {
		if got := tt.term.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestTermInts(t *testing.T) {
	xs, ok := NewList(NewInt(3), NewInt(-1)).Ints()
	if !ok {
		t.Fatal("Ints() failed on an integer list")
	}
	if len(xs) != 2 || xs[0] != 3 || xs[1] != -1 {
		t.Errorf("Ints() = %v, want [3 -1]", xs)
	}

	if _, ok := NewList(NewInt(1), NewAtom("a")).Ints(); ok {
		t.Error("Ints() succeeded on a mixed list")
	}
	if _, ok := NewInt(1).Ints(); ok {
		t.Error("Ints() succeeded on a non-list")
	}
}
