// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package exact provides unbounded-precision numeric values for the APD
// engine. A Number is either an integer (backed by big.Int) or a rational
// (backed by big.Rat); mixed arithmetic promotes to rational. All
// comparisons are exact.
package exact

import (
	"fmt"
	"math/big"
)

// Number is an exact numeric value. Implementations are immutable:
// every operation returns a fresh value and never aliases operand state.
type Number interface {
	// Add returns the sum of the receiver and other.
	Add(other Number) Number

	// Mul returns the product of the receiver and other.
	Mul(other Number) Number

	// Pow returns the receiver raised to the nonnegative exponent m.
	// Pow(0) is 1 for every base, including zero. Pow panics on m < 0;
	// callers validate exponents at the API boundary.
	Pow(m int) Number

	// Neg returns the additive inverse.
	Neg() Number

	// Sign returns -1, 0, or +1.
	Sign() int

	// IsZero reports whether the value is exactly zero.
	IsZero() bool

	// Equal reports exact equality with other. An integer and a rational
	// are equal when they denote the same number.
	Equal(other Number) bool

	// String renders the value: decimal digits for integers, "p/q" in
	// lowest terms for non-integral rationals.
	String() string
}

// Int is an unbounded integer.
type Int struct {
	v *big.Int
}

// Rat is an unbounded rational, always fully reduced with positive
// denominator (big.Rat maintains this invariant).
type Rat struct {
	v *big.Rat
}

// NewInt returns the integer n.
func NewInt(n int64) Int {
	return Int{v: big.NewInt(n)}
}

// NewIntFromBig returns an Int holding a copy of v.
func NewIntFromBig(v *big.Int) Int {
	return Int{v: new(big.Int).Set(v)}
}

// NewRat returns the rational num/den in lowest terms. den must be nonzero.
func NewRat(num, den int64) Rat {
	return Rat{v: big.NewRat(num, den)}
}

// NewRatFromBig returns a Rat holding a copy of v.
func NewRatFromBig(v *big.Rat) Rat {
	return Rat{v: new(big.Rat).Set(v)}
}

// big returns the underlying integer, treating the zero value as 0.
func (a Int) big() *big.Int {
	if a.v == nil {
		return new(big.Int)
	}
	return a.v
}

// rat returns the receiver promoted to a big.Rat.
func (a Int) rat() *big.Rat {
	return new(big.Rat).SetInt(a.big())
}

func (a Int) Add(other Number) Number {
	switch b := other.(type) {
	case Int:
		return Int{v: new(big.Int).Add(a.big(), b.big())}
	case Rat:
		return Rat{v: new(big.Rat).Add(a.rat(), b.big())}
	default:
		panic(fmt.Sprintf("exact: unknown Number implementation %T", other))
	}
}

func (a Int) Mul(other Number) Number {
	switch b := other.(type) {
	case Int:
		return Int{v: new(big.Int).Mul(a.big(), b.big())}
	case Rat:
		return Rat{v: new(big.Rat).Mul(a.rat(), b.big())}
	default:
		panic(fmt.Sprintf("exact: unknown Number implementation %T", other))
	}
}

func (a Int) Pow(m int) Number {
	if m < 0 {
		panic("exact: negative exponent")
	}
	return Int{v: new(big.Int).Exp(a.big(), big.NewInt(int64(m)), nil)}
}

func (a Int) Neg() Number {
	return Int{v: new(big.Int).Neg(a.big())}
}

func (a Int) Sign() int { return a.big().Sign() }

func (a Int) IsZero() bool { return a.big().Sign() == 0 }

func (a Int) Equal(other Number) bool {
	switch b := other.(type) {
	case Int:
		return a.big().Cmp(b.big()) == 0
	case Rat:
		return a.rat().Cmp(b.big()) == 0
	default:
		return false
	}
}

func (a Int) String() string { return a.big().String() }

// BigInt returns a copy of the underlying integer.
func (a Int) BigInt() *big.Int { return new(big.Int).Set(a.big()) }

// big returns the underlying rational, treating the zero value as 0/1.
func (a Rat) big() *big.Rat {
	if a.v == nil {
		return new(big.Rat)
	}
	return a.v
}

func (a Rat) Add(other Number) Number {
	switch b := other.(type) {
	case Int:
		return Rat{v: new(big.Rat).Add(a.big(), b.rat())}
	case Rat:
		return Rat{v: new(big.Rat).Add(a.big(), b.big())}
	default:
		panic(fmt.Sprintf("exact: unknown Number implementation %T", other))
	}
}

func (a Rat) Mul(other Number) Number {
	switch b := other.(type) {
	case Int:
		return Rat{v: new(big.Rat).Mul(a.big(), b.rat())}
	case Rat:
		return Rat{v: new(big.Rat).Mul(a.big(), b.big())}
	default:
		panic(fmt.Sprintf("exact: unknown Number implementation %T", other))
	}
}

func (a Rat) Pow(m int) Number {
	if m < 0 {
		panic("exact: negative exponent")
	}
	// Exponentiate numerator and denominator separately; the result of
	// p^m / q^m is already in lowest terms when p/q is.
	e := big.NewInt(int64(m))
	num := new(big.Int).Exp(a.big().Num(), e, nil)
	den := new(big.Int).Exp(a.big().Denom(), e, nil)
	return Rat{v: new(big.Rat).SetFrac(num, den)}
}

func (a Rat) Neg() Number {
	return Rat{v: new(big.Rat).Neg(a.big())}
}

func (a Rat) Sign() int { return a.big().Sign() }

func (a Rat) IsZero() bool { return a.big().Sign() == 0 }

func (a Rat) Equal(other Number) bool {
	switch b := other.(type) {
	case Int:
		return a.big().Cmp(b.rat()) == 0
	case Rat:
		return a.big().Cmp(b.big()) == 0
	default:
		return false
	}
}

func (a Rat) String() string {
	if a.big().IsInt() {
		return a.big().Num().String()
	}
	return a.big().RatString()
}

// Num returns a copy of the numerator of the reduced form.
func (a Rat) Num() *big.Int { return new(big.Int).Set(a.big().Num()) }

// Denom returns a copy of the denominator of the reduced form.
func (a Rat) Denom() *big.Int { return new(big.Int).Set(a.big().Denom()) }

// BigRat returns a copy of the underlying rational.
func (a Rat) BigRat() *big.Rat { return new(big.Rat).Set(a.big()) }
