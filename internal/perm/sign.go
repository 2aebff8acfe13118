// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package perm

// Sign returns the parity of permutation p: +1 when the inversion count
// is even, -1 when odd. An inversion is a pair of positions i < j with
// p[i] > p[j]. Quadratic in len(p); the enumeration that feeds it is
// factorial, so this is never the dominant cost at the sizes the budget
// guard admits.
func Sign(p []int) int {
	inversions := 0
	n := len(p)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if p[i] > p[j] {
				inversions++
			}
		}
	}
	if inversions%2 == 0 {
		return 1
	}
	return -1
}
