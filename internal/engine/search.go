// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package engine

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/pdiddy/apd-engine/internal/exact"
	"github.com/pdiddy/apd-engine/internal/family"
	"github.com/pdiddy/apd-engine/internal/perm"
)

// Outcome is the terminal state of a first-appearance search.
type Outcome string

const (
	// OutcomeFound: a nonzero APD appeared at degree M1 within the bound.
	OutcomeFound Outcome = "found"

	// OutcomeExhausted: every degree up to the family's search bound
	// vanished. Reported as a result, never as an error.
	OutcomeExhausted Outcome = "exhausted"
)

// SearchResult records one first-appearance search for a given n.
type SearchResult struct {
	N       int
	Outcome Outcome

	// M1 is the first degree with nonzero APD; 0 when exhausted.
	M1 int

	// APD is the value at M1; nil when exhausted.
	APD exact.Number

	// VanishingFrom/VanishingTo delimit the contiguous run of vanishing
	// degrees 1..M1-1. Both are 0 when the run is empty (M1 = 1) or the
	// search was exhausted with bound 0.
	VanishingFrom int
	VanishingTo   int
}

// Search sweeps m upward from 1 and stops at the first degree where
// APD_m(f) is nonzero, or reports OutcomeExhausted once the family's
// search bound is passed. Degrees above M1 are never probed: no family
// re-vanishes past its first appearance, so further checks are redundant.
func (e *Engine) Search(ctx context.Context, n int, f family.Func) (SearchResult, error) {
	if n < 2 {
		return SearchResult{}, fmt.Errorf("%w: verification is defined only for n >= 2, got n=%d", ErrDomain, n)
	}
	if err := e.checkBudget(n); err != nil {
		return SearchResult{}, err
	}

	sw, err := e.newSweeper(ctx, n, f)
	if err != nil {
		return SearchResult{}, err
	}

	bound := f.SearchBound(n)
	for m := 1; m <= bound; m++ {
		apd, err := sw.apd(ctx, m)
		if err != nil {
			return SearchResult{}, err
		}
		if apd.IsZero() {
			continue
		}
		res := SearchResult{N: n, Outcome: OutcomeFound, M1: m, APD: apd}
		if m > 1 {
			res.VanishingFrom, res.VanishingTo = 1, m-1
		}
		return res, nil
	}
	return SearchResult{
		N:             n,
		Outcome:       OutcomeExhausted,
		VanishingFrom: boundedFrom(bound),
		VanishingTo:   bound,
	}, nil
}

func boundedFrom(bound int) int {
	if bound < 1 {
		return 0
	}
	return 1
}

// sweeper answers APD_m queries for a fixed (n, f) across an m-sweep.
type sweeper interface {
	apd(ctx context.Context, m int) (exact.Number, error)
}

// newSweeper picks the sweep strategy: when n! fits the value cache the
// per-permutation signs and scalars are computed once and reused for
// every probed m (f(sigma) does not depend on m); otherwise each degree
// re-enumerates the permutation space.
func (e *Engine) newSweeper(ctx context.Context, n int, f family.Func) (sweeper, error) {
	size := int64(1)
	for k := int64(2); k <= int64(n); k++ {
		size *= k
	}
	if size > e.cacheLimit {
		return &streamSweeper{engine: e, n: n, f: f}, nil
	}
	terms, err := e.cacheTerms(ctx, n, f)
	if err != nil {
		return nil, err
	}
	return &cachedSweeper{engine: e, f: f, terms: terms}, nil
}

// streamSweeper enumerates all of S_n for every probed degree.
type streamSweeper struct {
	engine *Engine
	n      int
	f      family.Func
}

func (s *streamSweeper) apd(ctx context.Context, m int) (exact.Number, error) {
	return s.engine.Accumulate(ctx, s.n, m, s.f)
}

// term is one permutation's contribution, independent of the degree.
type term struct {
	negative bool
	value    exact.Number
}

// cacheTerms evaluates sign and scalar for every permutation once, in
// partition-parallel fashion, concatenating partition slices in order.
func (e *Engine) cacheTerms(ctx context.Context, n int, f family.Func) ([]term, error) {
	parts := make([][]term, n)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for first := 1; first <= n; first++ {
		first := first
		g.Go(func() error {
			it, err := perm.NewFixedFirst(n, first)
			if err != nil {
				return err
			}
			var ts []term
			count := 0
			for p, ok := it.Next(); ok; p, ok = it.Next() {
				if count%ctxCheckInterval == 0 {
					select {
					case <-gctx.Done():
						return gctx.Err()
					default:
					}
				}
				count++
				ts = append(ts, term{negative: perm.Sign(p) < 0, value: f.Eval(p)})
			}
			parts[first-1] = ts
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	var terms []term
	for _, ts := range parts {
		terms = append(terms, ts...)
	}
	return terms, nil
}

// cachedSweeper reuses precomputed (sign, value) terms across degrees.
type cachedSweeper struct {
	engine *Engine
	f      family.Func
	terms  []term
}

func (s *cachedSweeper) apd(ctx context.Context, m int) (exact.Number, error) {
	workers := s.engine.workers
	chunk := (len(s.terms) + workers - 1) / workers
	if chunk < 1 {
		chunk = 1
	}
	var partials []exact.Number
	g, gctx := errgroup.WithContext(ctx)
	for lo := 0; lo < len(s.terms); lo += chunk {
		lo := lo
		hi := min(lo+chunk, len(s.terms))
		partials = append(partials, nil)
		idx := len(partials) - 1
		g.Go(func() error {
			sum := s.f.Zero()
			for i := lo; i < hi; i++ {
				if (i-lo)%ctxCheckInterval == 0 {
					select {
					case <-gctx.Done():
						return gctx.Err()
					default:
					}
				}
				t := s.terms[i]
				v := t.value.Pow(m)
				if t.negative {
					v = v.Neg()
				}
				sum = sum.Add(v)
			}
			partials[idx] = sum
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reduce(s.f.Zero(), partials), nil
}
