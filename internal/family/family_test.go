// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package family

import (
	"errors"
	"testing"
)

func mustNew(t *testing.T, spec Spec) Func {
	t.Helper()
	f, err := New(spec)
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func TestNewRejectsBadSpecs(t *testing.T) {
	tests := []struct {
		name string
		spec Spec
	}{
		{"unknown family", Spec{Kind: "toeplitz"}},
		{"empty family", Spec{}},
		{"zero shift", Spec{Kind: ShiftedGrid, Shift: 0}},
		{"negative shift", Spec{Kind: ShiftedGrid, Shift: -2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.spec); !errors.Is(err, ErrInvalidParameter) {
				t.Errorf("New(%+v) error = %v, want ErrInvalidParameter", tt.spec, err)
			}
		})
	}
}

func TestNewAcceptsAllFamilies(t *testing.T) {
	for _, name := range Names() {
		spec := Spec{Kind: name}
		if name == ShiftedGrid {
			spec.Shift = 1
		}
		if _, err := New(spec); err != nil {
			t.Errorf("New(%s) error = %v", name, err)
		}
	}
}

func TestSpecString(t *testing.T) {
	tests := []struct {
		spec Spec
		want string
	}{
		{Spec{Kind: Hilbert}, "hilbert"},
		{Spec{Kind: ShiftedGrid, Shift: 3}, "shifted-grid(d=3)"},
		{Spec{Kind: ShiftedGrid, NaturalShift: true}, "shifted-grid(d=n)"},
	}
	for _, tt := range tests {
		if got := tt.spec.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestEvalFormulas(t *testing.T) {
	tests := []struct {
		name string
		spec Spec
		p    []int
		want string
	}{
		{"identity all fixed", Spec{Kind: Identity}, []int{1, 2, 3}, "3"},
		{"identity one fixed", Spec{Kind: Identity}, []int{2, 1, 3}, "1"},
		{"identity derangement", Spec{Kind: Identity}, []int{2, 3, 1}, "0"},

		// Tr(C_2 P_sigma): identity permutation hits the diagonal
		// entries 1,1; the swap hits 2,2.
		{"circulant identity perm", Spec{Kind: Circulant}, []int{1, 2}, "2"},
		{"circulant swap", Spec{Kind: Circulant}, []int{2, 1}, "4"},
		// n=3 identity permutation: ((i + i - 2) mod 3) + 1 for i=1..3.
		{"circulant n3", Spec{Kind: Circulant}, []int{1, 2, 3}, "6"},

		// A[i,j] = (j + (i-1)d)^2 with d=1: rows offset by 1.
		{"grid d1 identity perm", Spec{Kind: ShiftedGrid, Shift: 1}, []int{1, 2}, "10"},
		{"grid d1 swap", Spec{Kind: ShiftedGrid, Shift: 1}, []int{2, 1}, "8"},
		// natural mode, n=2: d=2, A = [[1,4],[9,16]].
		{"grid natural identity perm", Spec{Kind: ShiftedGrid, NaturalShift: true}, []int{1, 2}, "17"},
		{"grid natural swap", Spec{Kind: ShiftedGrid, NaturalShift: true}, []int{2, 1}, "13"},

		{"hilbert identity perm", Spec{Kind: Hilbert}, []int{1, 2}, "4/3"},
		{"hilbert swap", Spec{Kind: Hilbert}, []int{2, 1}, "1"},
		{"hilbert n3", Spec{Kind: Hilbert}, []int{1, 2, 3}, "23/15"},

		{"multiplication identity perm", Spec{Kind: Multiplication}, []int{1, 2}, "5"},
		{"multiplication swap", Spec{Kind: Multiplication}, []int{2, 1}, "4"},

		{"vandermonde identity perm", Spec{Kind: Vandermonde}, []int{1, 2}, "3"},
		{"vandermonde swap", Spec{Kind: Vandermonde}, []int{2, 1}, "2"},
		{"vandermonde n3", Spec{Kind: Vandermonde}, []int{3, 1, 2}, "5"},

		{"pascal identity perm", Spec{Kind: Pascal}, []int{1, 2}, "3"},
		{"pascal swap", Spec{Kind: Pascal}, []int{2, 1}, "2"},
		{"pascal n3", Spec{Kind: Pascal}, []int{1, 2, 3}, "9"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := mustNew(t, tt.spec)
			if got := f.Eval(tt.p).String(); got != tt.want {
				t.Errorf("%s.Eval(%v) = %s, want %s", f.Name(), tt.p, got, tt.want)
			}
		})
	}
}

func TestEvalIsPure(t *testing.T) {
	f := mustNew(t, Spec{Kind: Hilbert})
	p := []int{3, 1, 2}
	first := f.Eval(p)
	second := f.Eval(p)
	if !first.Equal(second) {
		t.Errorf("repeated Eval differs: %s vs %s", first, second)
	}
	if p[0] != 3 || p[1] != 1 || p[2] != 2 {
		t.Errorf("Eval mutated its argument: %v", p)
	}
}

func TestSearchBounds(t *testing.T) {
	tests := []struct {
		spec Spec
		n    int
		want int
	}{
		{Spec{Kind: Identity}, 5, 4},
		{Spec{Kind: Circulant}, 5, 4},
		{Spec{Kind: ShiftedGrid, Shift: 2}, 5, 10},
		{Spec{Kind: Hilbert}, 5, 5},
		{Spec{Kind: Multiplication}, 4, 6},
		{Spec{Kind: Vandermonde}, 6, 5},
		{Spec{Kind: Pascal}, 4, 4},
	}
	for _, tt := range tests {
		f := mustNew(t, tt.spec)
		if got := f.SearchBound(tt.n); got != tt.want {
			t.Errorf("%s.SearchBound(%d) = %d, want %d", f.Name(), tt.n, got, tt.want)
		}
	}
}

func TestExpectations(t *testing.T) {
	tests := []struct {
		name      string
		spec      Spec
		n         int
		wantM1    int
		wantValue string
	}{
		{"identity n=3", Spec{Kind: Identity}, 3, 2, "6"},
		{"identity n=5", Spec{Kind: Identity}, 5, 4, "120"},
		{"multiplication n=2", Spec{Kind: Multiplication}, 2, 1, "1"},
		// T_2 = 3: 3! * (1! * 2!) = 12.
		{"multiplication n=3", Spec{Kind: Multiplication}, 3, 3, "12"},
		{"vandermonde n=2", Spec{Kind: Vandermonde}, 2, 1, "1"},
		// 3! * 1!2!3! = 6 * 12 = 72.
		{"vandermonde n=4", Spec{Kind: Vandermonde}, 4, 3, "72"},
		// (2d)^1 * 1! * 1! with d=1.
		{"grid d=1 n=2", Spec{Kind: ShiftedGrid, Shift: 1}, 2, 1, "2"},
		// T_2 = 3: (2*3)^3 * 3! * (1!*2!) = 216 * 6 * 2 = 2592.
		{"grid d=3 n=3", Spec{Kind: ShiftedGrid, Shift: 3}, 3, 3, "2592"},
		// natural mode uses d = n = 3.
		{"grid natural n=3", Spec{Kind: ShiftedGrid, NaturalShift: true}, 3, 3, "2592"},
		// det(H_3) * 3 * 3! = (1/2160) * 18 = 1/120.
		{"hilbert n=3", Spec{Kind: Hilbert}, 3, 2, "1/120"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := mustNew(t, tt.spec)
			want, ok := f.Expectation(tt.n)
			if !ok {
				t.Fatalf("%s.Expectation(%d) has no closed form", f.Name(), tt.n)
			}
			if want.M1 != tt.wantM1 {
				t.Errorf("M1 = %d, want %d", want.M1, tt.wantM1)
			}
			if got := want.Value.String(); got != tt.wantValue {
				t.Errorf("Value = %s, want %s", got, tt.wantValue)
			}
		})
	}
}

func TestNoExpectation(t *testing.T) {
	tests := []struct {
		spec Spec
		n    int
	}{
		{Spec{Kind: Circulant}, 4},
		{Spec{Kind: Pascal}, 4},
		{Spec{Kind: Hilbert}, 2}, // the Hilbert closed form is stated for n >= 3
	}
	for _, tt := range tests {
		f := mustNew(t, tt.spec)
		if _, ok := f.Expectation(tt.n); ok {
			t.Errorf("%s.Expectation(%d) unexpectedly has a closed form", f.Name(), tt.n)
		}
	}
}
