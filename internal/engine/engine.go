// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package engine computes Alternating Power Differences and verifies
// first-appearance conjectures against closed-form expectations.
//
// APD_m(f) = sum over all permutations sigma of S_n of
// sign(sigma) * f(sigma)^m, accumulated in exact arithmetic. The
// permutation space is partitioned by first element across a worker
// pool; partial sums are combined in fixed partition order, so results
// are deterministic regardless of scheduling.
package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/pdiddy/apd-engine/internal/exact"
	"github.com/pdiddy/apd-engine/internal/family"
	"github.com/pdiddy/apd-engine/internal/perm"
	"github.com/pdiddy/apd-engine/pkg/types"
)

// Sentinel errors. All are local, recoverable conditions: records already
// computed for smaller n survive them.
var (
	// ErrDomain reports a request outside the defined domain:
	// n < 1 for accumulation, n < 2 for verification, m < 0.
	ErrDomain = errors.New("domain error")

	// ErrBudgetExceeded reports that n! exceeds the configured
	// permutation budget. Distinct from a correctness failure; the cost
	// guard refuses the sweep before any enumeration starts.
	ErrBudgetExceeded = errors.New("permutation budget exceeded")
)

// ctxCheckInterval is the number of permutations a worker processes
// between cooperative cancellation checks.
const ctxCheckInterval = 4096

// Engine runs APD accumulations and first-appearance searches.
type Engine struct {
	workers    int
	budget     int64
	cacheLimit int64
	progress   io.Writer
}

// New returns an Engine configured by cfg. Zero-valued fields fall back
// to defaults: GOMAXPROCS workers, the DefaultMaxPermutations budget, and
// the DefaultCacheLimit value cache. Progress lines go to progress;
// pass io.Discard to silence them.
func New(cfg types.EngineConfig, progress io.Writer) *Engine {
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	budget := cfg.MaxPermutations
	if budget <= 0 {
		budget = types.DefaultMaxPermutations
	}
	cacheLimit := cfg.CacheLimit
	if cacheLimit <= 0 {
		cacheLimit = types.DefaultCacheLimit
	}
	if progress == nil {
		progress = io.Discard
	}
	return &Engine{workers: workers, budget: budget, cacheLimit: cacheLimit, progress: progress}
}

// Accumulate computes APD_m(f) over S_n. m = 0 is accepted (and is
// always zero: S_n has equal counts of even and odd permutations).
func (e *Engine) Accumulate(ctx context.Context, n, m int, f family.Func) (exact.Number, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: APD is defined only for n >= 1, got n=%d", ErrDomain, n)
	}
	if m < 0 {
		return nil, fmt.Errorf("%w: power m must be nonnegative, got m=%d", ErrDomain, m)
	}
	if err := e.checkBudget(n); err != nil {
		return nil, err
	}
	partials, err := e.mapPartitions(ctx, n, func(it *perm.Iterator) (exact.Number, error) {
		return signedPowerSum(ctx, it, m, f)
	})
	if err != nil {
		return nil, err
	}
	return reduce(f.Zero(), partials), nil
}

// checkBudget trips ErrBudgetExceeded when n! exceeds the configured
// permutation budget. The cost is made explicit up front; the engine
// never silently truncates the permutation space.
func (e *Engine) checkBudget(n int) error {
	cost := int64(1)
	for k := int64(2); k <= int64(n); k++ {
		cost *= k
		if cost > e.budget {
			return fmt.Errorf("%w: n=%d requires n! = %d... permutations, budget is %d",
				ErrBudgetExceeded, n, cost, e.budget)
		}
	}
	return nil
}

// mapPartitions runs fn over the n first-element partitions of S_n on
// the worker pool and returns the partial results indexed by partition.
func (e *Engine) mapPartitions(ctx context.Context, n int, fn func(*perm.Iterator) (exact.Number, error)) ([]exact.Number, error) {
	partials := make([]exact.Number, n)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for first := 1; first <= n; first++ {
		first := first
		g.Go(func() error {
			it, err := perm.NewFixedFirst(n, first)
			if err != nil {
				return err
			}
			sum, err := fn(it)
			if err != nil {
				return err
			}
			partials[first-1] = sum
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return partials, nil
}

// signedPowerSum folds sign(sigma) * f(sigma)^m over one partition.
func signedPowerSum(ctx context.Context, it *perm.Iterator, m int, f family.Func) (exact.Number, error) {
	sum := f.Zero()
	count := 0
	for p, ok := it.Next(); ok; p, ok = it.Next() {
		if count%ctxCheckInterval == 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
			}
		}
		count++
		term := f.Eval(p).Pow(m)
		if perm.Sign(p) < 0 {
			term = term.Neg()
		}
		sum = sum.Add(term)
	}
	return sum, nil
}

// reduce combines partial sums in partition order.
func reduce(zero exact.Number, partials []exact.Number) exact.Number {
	sum := zero
	for _, p := range partials {
		sum = sum.Add(p)
	}
	return sum
}
