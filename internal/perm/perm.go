// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package perm enumerates permutations of {1..n} and computes their signs.
// The iterator is fully iterative (no recursion, O(n) state) and steps
// through permutations in lexicographic order, so the full space of n!
// permutations is never materialized at once.
package perm

import (
	"errors"
	"fmt"
)

// ErrDomain reports a request outside the defined domain (n < 1, or a
// fixed first element outside 1..n).
var ErrDomain = errors.New("domain error")

// Iterator produces every permutation of {1..n} exactly once, in
// lexicographic order. The slice returned by Next is owned by the
// iterator and is only valid until the following call.
type Iterator struct {
	cur   []int
	lo    int // first mutable index; positions before lo are pinned
	done  bool
	fresh bool
}

// NewIterator returns an iterator over all permutations of {1..n}.
func NewIterator(n int) (*Iterator, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: permutations are defined only for n >= 1, got n=%d", ErrDomain, n)
	}
	it := &Iterator{cur: make([]int, n), fresh: true}
	for i := range it.cur {
		it.cur[i] = i + 1
	}
	return it, nil
}

// NewFixedFirst returns an iterator over the (n-1)! permutations of {1..n}
// whose first element is first. Used to partition the permutation space
// across workers.
func NewFixedFirst(n, first int) (*Iterator, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: permutations are defined only for n >= 1, got n=%d", ErrDomain, n)
	}
	if first < 1 || first > n {
		return nil, fmt.Errorf("%w: fixed first element %d outside 1..%d", ErrDomain, first, n)
	}
	it := &Iterator{cur: make([]int, n), lo: 1, fresh: true}
	it.cur[0] = first
	k := 1
	for v := 1; v <= n; v++ {
		if v != first {
			it.cur[k] = v
			k++
		}
	}
	return it, nil
}

// Next advances to the next permutation. It returns the current
// permutation and true, or nil and false once the sequence is exhausted.
func (it *Iterator) Next() ([]int, bool) {
	if it.done {
		return nil, false
	}
	if it.fresh {
		it.fresh = false
		return it.cur, true
	}
	if !nextPermutation(it.cur[it.lo:]) {
		it.done = true
		return nil, false
	}
	return it.cur, true
}

// Reset rewinds the iterator to its first permutation.
func (it *Iterator) Reset() {
	pinned := it.cur[:it.lo]
	rest := it.cur[it.lo:]
	// Rebuild the suffix in ascending order from the values not pinned.
	n := len(it.cur)
	used := make([]bool, n+1)
	for _, v := range pinned {
		used[v] = true
	}
	k := 0
	for v := 1; v <= n; v++ {
		if !used[v] {
			rest[k] = v
			k++
		}
	}
	it.done = false
	it.fresh = true
}

// nextPermutation rearranges p into its lexicographic successor in place.
// It returns false when p is already the final (descending) arrangement.
func nextPermutation(p []int) bool {
	n := len(p)
	i := n - 2
	for i >= 0 && p[i] >= p[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	j := n - 1
	for p[j] <= p[i] {
		j--
	}
	p[i], p[j] = p[j], p[i]
	for l, r := i+1, n-1; l < r; l, r = l+1, r-1 {
		p[l], p[r] = p[r], p[l]
	}
	return true
}
