// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package family

import (
	"math/big"
	"testing"
)

func TestFactorial(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "1"},
		{1, "1"},
		{5, "120"},
		{10, "3628800"},
		{20, "2432902008176640000"},
	}
	for _, tt := range tests {
		if got := Factorial(tt.n).String(); got != tt.want {
			t.Errorf("Factorial(%d) = %s, want %s", tt.n, got, tt.want)
		}
	}
}

func TestSuperfactorial(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "1"},
		{1, "1"},
		{3, "12"},   // 1! * 2! * 3!
		{4, "288"},  // ... * 4!
	}
	for _, tt := range tests {
		if got := Superfactorial(tt.n).String(); got != tt.want {
			t.Errorf("Superfactorial(%d) = %s, want %s", tt.n, got, tt.want)
		}
	}
}

func TestTriangle(t *testing.T) {
	tests := []struct{ n, want int }{
		{0, 0}, {1, 0}, {2, 1}, {3, 3}, {4, 6}, {10, 45},
	}
	for _, tt := range tests {
		if got := Triangle(tt.n); got != tt.want {
			t.Errorf("Triangle(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestBinomial(t *testing.T) {
	tests := []struct {
		n, k int
		want string
	}{
		{0, 0, "1"},
		{4, 2, "6"},
		{18, 9, "48620"},
		{5, -1, "0"},
		{5, 6, "0"},
	}
	for _, tt := range tests {
		if got := Binomial(tt.n, tt.k).String(); got != tt.want {
			t.Errorf("Binomial(%d, %d) = %s, want %s", tt.n, tt.k, got, tt.want)
		}
	}
}

func TestHilbertDeterminant(t *testing.T) {
	tests := []struct {
		n    int
		want *big.Rat
	}{
		{1, big.NewRat(1, 1)},
		{2, big.NewRat(1, 12)},
		{3, big.NewRat(1, 2160)},
		{4, big.NewRat(1, 6048000)},
	}
	for _, tt := range tests {
		if got := HilbertDeterminant(tt.n); got.Cmp(tt.want) != 0 {
			t.Errorf("HilbertDeterminant(%d) = %s, want %s", tt.n, got, tt.want)
		}
	}
}
