// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package family defines the matrix families whose diagonal scalars feed
// the APD engine. Each family implements Func per the Strategy pattern:
// the engine sums sign-weighted powers of Eval over all permutations and
// never knows which family is active.
//
// Formulas are 1-indexed throughout: p[i-1] is the column the permutation
// assigns to row i.
package family

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/pdiddy/apd-engine/internal/exact"
)

// ErrInvalidParameter reports an unrecognized family name or an
// out-of-range family parameter.
var ErrInvalidParameter = errors.New("invalid parameter")

// Expectation is a conjectured closed-form prediction for one n: the
// first appearance degree and the APD value at that degree.
type Expectation struct {
	M1    int
	Value exact.Number
}

// Func evaluates the diagonal scalar f(sigma) of one matrix family.
// Implementations are pure: Eval depends only on the permutation and the
// family parameters, derives n from len(p), and has no side effects.
type Func interface {
	// Name returns the family identifier (e.g. "hilbert", "shifted-grid(d=3)").
	Name() string

	// Eval returns f(sigma) for the permutation p.
	Eval(p []int) exact.Number

	// Zero returns the additive identity of the family's value type.
	Zero() exact.Number

	// SearchBound returns the largest degree m the first-appearance
	// search probes for size n. It encodes the conjectured position of
	// the first nonzero degree.
	SearchBound(n int) int

	// Expectation returns the conjectured (m1, value) for size n, or
	// false when the family has no closed form (or none for this n).
	Expectation(n int) (Expectation, bool)
}

// Known family identifiers.
const (
	Identity       = "identity"
	Circulant      = "circulant"
	ShiftedGrid    = "shifted-grid"
	Hilbert        = "hilbert"
	Multiplication = "multiplication"
	Vandermonde    = "vandermonde"
	Pascal         = "pascal"
)

// Names lists the supported family identifiers in display order.
func Names() []string {
	return []string{Identity, Circulant, ShiftedGrid, Hilbert, Multiplication, Vandermonde, Pascal}
}

// Spec identifies a family plus its parameters. Shift applies only to
// shifted-grid: a fixed distance d >= 1, or the "natural" mode where
// d tracks n.
type Spec struct {
	Kind         string `json:"kind" yaml:"kind"`
	Shift        int    `json:"shift,omitempty" yaml:"shift,omitempty"`
	NaturalShift bool   `json:"natural_shift,omitempty" yaml:"natural_shift,omitempty"`
}

// String renders the spec as a family identifier with parameters.
func (s Spec) String() string {
	if s.Kind != ShiftedGrid {
		return s.Kind
	}
	if s.NaturalShift {
		return ShiftedGrid + "(d=n)"
	}
	return ShiftedGrid + "(d=" + strconv.Itoa(s.Shift) + ")"
}

// New builds the value function for spec. It returns ErrInvalidParameter
// for an unknown kind or an out-of-range shift.
func New(spec Spec) (Func, error) {
	switch spec.Kind {
	case Identity:
		return identityFunc{}, nil
	case Circulant:
		return circulantFunc{}, nil
	case ShiftedGrid:
		if spec.NaturalShift {
			return gridFunc{natural: true}, nil
		}
		if spec.Shift < 1 {
			return nil, fmt.Errorf("%w: shift distance must be positive, got %d", ErrInvalidParameter, spec.Shift)
		}
		return gridFunc{shift: spec.Shift}, nil
	case Hilbert:
		return hilbertFunc{}, nil
	case Multiplication:
		return multiplicationFunc{}, nil
	case Vandermonde:
		return vandermondeFunc{}, nil
	case Pascal:
		return pascalFunc{}, nil
	default:
		return nil, fmt.Errorf("%w: unknown family %q", ErrInvalidParameter, spec.Kind)
	}
}
