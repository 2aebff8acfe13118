// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package family

import (
	"fmt"
	"math/big"

	"github.com/pdiddy/apd-engine/internal/exact"
)

// identityFunc counts fixed points: f(sigma) = #{i : sigma(i) = i}.
// Conjecture: m1 = n-1 and APD_{m1} = n!.
type identityFunc struct{}

func (identityFunc) Name() string { return Identity }

func (identityFunc) Eval(p []int) exact.Number {
	fixed := 0
	for i, v := range p {
		if v == i+1 {
			fixed++
		}
	}
	return exact.NewInt(int64(fixed))
}

func (identityFunc) Zero() exact.Number { return exact.NewInt(0) }

func (identityFunc) SearchBound(n int) int { return n - 1 }

func (identityFunc) Expectation(n int) (Expectation, bool) {
	return Expectation{M1: n - 1, Value: exact.NewIntFromBig(Factorial(n))}, true
}

// circulantFunc evaluates the trace of C_n * P_sigma for the standard
// circulant matrix C_n[i,j] = ((j+i) mod n) + 1 (0-indexed i, j). The
// trace collapses to a per-position form: row i contributes
// ((i + sigma(i) - 2) mod n) + 1.
type circulantFunc struct{}

func (circulantFunc) Name() string { return Circulant }

func (circulantFunc) Eval(p []int) exact.Number {
	n := len(p)
	sum := new(big.Int)
	term := new(big.Int)
	for i, v := range p {
		sum.Add(sum, term.SetInt64(int64((i+v-1)%n+1)))
	}
	return exact.NewIntFromBig(sum)
}

func (circulantFunc) Zero() exact.Number { return exact.NewInt(0) }

func (circulantFunc) SearchBound(n int) int { return n - 1 }

func (circulantFunc) Expectation(int) (Expectation, bool) { return Expectation{}, false }

// gridFunc evaluates the shifted squared grid: f(sigma) is the diagonal
// sum of A[i,j] = (j + (i-1)*d)^2 with shift distance d, or d = n in
// natural mode. Conjecture: m1 = T_{n-1} and
// APD_{m1} = (2d)^{T_{n-1}} * T_{n-1}! * prod_{k=1}^{n-1} k!.
type gridFunc struct {
	shift   int
	natural bool
}

func (g gridFunc) Name() string {
	if g.natural {
		return ShiftedGrid + "(d=n)"
	}
	return fmt.Sprintf("%s(d=%d)", ShiftedGrid, g.shift)
}

func (g gridFunc) shiftFor(n int) int {
	if g.natural {
		return n
	}
	return g.shift
}

func (g gridFunc) Eval(p []int) exact.Number {
	d := g.shiftFor(len(p))
	sum := new(big.Int)
	term := new(big.Int)
	for i, v := range p {
		e := int64(v + i*d)
		sum.Add(sum, term.Mul(term.SetInt64(e), big.NewInt(e)))
	}
	return exact.NewIntFromBig(sum)
}

func (gridFunc) Zero() exact.Number { return exact.NewInt(0) }

func (gridFunc) SearchBound(n int) int { return Triangle(n) }

func (g gridFunc) Expectation(n int) (Expectation, bool) {
	t := Triangle(n)
	d := int64(g.shiftFor(n))
	coeff := new(big.Int).Exp(big.NewInt(2*d), big.NewInt(int64(t)), nil)
	v := new(big.Int).Mul(coeff, Factorial(t))
	v.Mul(v, Superfactorial(n-1))
	return Expectation{M1: t, Value: exact.NewIntFromBig(v)}, true
}

// hilbertFunc evaluates the Hilbert diagonal sum
// f(sigma) = sum_i 1/(i + sigma(i) - 1), exact rational. Conjecture:
// m1 = n-1 and APD_{m1} = det(H_n) * n * n! (stated for n >= 3).
type hilbertFunc struct{}

func (hilbertFunc) Name() string { return Hilbert }

func (hilbertFunc) Eval(p []int) exact.Number {
	sum := new(big.Rat)
	term := new(big.Rat)
	for i, v := range p {
		sum.Add(sum, term.SetFrac64(1, int64(i+v)))
	}
	return exact.NewRatFromBig(sum)
}

func (hilbertFunc) Zero() exact.Number { return exact.NewRat(0, 1) }

func (hilbertFunc) SearchBound(n int) int { return n }

func (hilbertFunc) Expectation(n int) (Expectation, bool) {
	if n < 3 {
		return Expectation{}, false
	}
	v := HilbertDeterminant(n)
	scale := new(big.Int).Mul(big.NewInt(int64(n)), Factorial(n))
	v.Mul(v, new(big.Rat).SetInt(scale))
	return Expectation{M1: n - 1, Value: exact.NewRatFromBig(v)}, true
}

// multiplicationFunc evaluates the multiplication-table diagonal sum
// f(sigma) = sum_i i * sigma(i). Conjecture: m1 = T_{n-1} and
// APD_{m1} = T_{n-1}! * prod_{k=1}^{n-1} k!.
type multiplicationFunc struct{}

func (multiplicationFunc) Name() string { return Multiplication }

func (multiplicationFunc) Eval(p []int) exact.Number {
	sum := new(big.Int)
	term := new(big.Int)
	for i, v := range p {
		sum.Add(sum, term.SetInt64(int64((i+1)*v)))
	}
	return exact.NewIntFromBig(sum)
}

func (multiplicationFunc) Zero() exact.Number { return exact.NewInt(0) }

func (multiplicationFunc) SearchBound(n int) int { return Triangle(n) }

func (multiplicationFunc) Expectation(n int) (Expectation, bool) {
	t := Triangle(n)
	v := new(big.Int).Mul(Factorial(t), Superfactorial(n-1))
	return Expectation{M1: t, Value: exact.NewIntFromBig(v)}, true
}

// vandermondeFunc evaluates the Vandermonde diagonal sum
// f(sigma) = sum_i i^(sigma(i)-1). Conjecture: m1 = n-1 and
// APD_{m1} = (n-1)! * prod_{k=1}^{n-1} k!.
type vandermondeFunc struct{}

func (vandermondeFunc) Name() string { return Vandermonde }

func (vandermondeFunc) Eval(p []int) exact.Number {
	sum := new(big.Int)
	base := new(big.Int)
	term := new(big.Int)
	for i, v := range p {
		base.SetInt64(int64(i + 1))
		sum.Add(sum, term.Exp(base, big.NewInt(int64(v-1)), nil))
	}
	return exact.NewIntFromBig(sum)
}

func (vandermondeFunc) Zero() exact.Number { return exact.NewInt(0) }

func (vandermondeFunc) SearchBound(n int) int { return n - 1 }

func (vandermondeFunc) Expectation(n int) (Expectation, bool) {
	v := new(big.Int).Mul(Factorial(n-1), Superfactorial(n-1))
	return Expectation{M1: n - 1, Value: exact.NewIntFromBig(v)}, true
}

// pascalFunc evaluates the Pascal diagonal sum
// f(sigma) = sum_i C(i + sigma(i) - 2, i - 1). No closed form is
// conjectured yet; the search records the observed value.
type pascalFunc struct{}

func (pascalFunc) Name() string { return Pascal }

func (pascalFunc) Eval(p []int) exact.Number {
	sum := new(big.Int)
	term := new(big.Int)
	for i, v := range p {
		sum.Add(sum, term.Binomial(int64(i+v-1), int64(i)))
	}
	return exact.NewIntFromBig(sum)
}

func (pascalFunc) Zero() exact.Number { return exact.NewInt(0) }

func (pascalFunc) SearchBound(n int) int { return n }

func (pascalFunc) Expectation(int) (Expectation, bool) { return Expectation{}, false }
