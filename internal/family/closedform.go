// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package family

import "math/big"

// Factorial returns n! as a big integer. n < 0 panics; callers validate
// sizes at the API boundary.
func Factorial(n int) *big.Int {
	if n < 0 {
		panic("family: factorial of negative number")
	}
	return new(big.Int).MulRange(1, int64(max(n, 1)))
}

// Superfactorial returns the product of factorials prod_{k=1}^{n} k!.
// Superfactorial(0) is 1 (empty product).
func Superfactorial(n int) *big.Int {
	result := big.NewInt(1)
	f := big.NewInt(1)
	for k := 1; k <= n; k++ {
		f.Mul(f, big.NewInt(int64(k)))
		result.Mul(result, f)
	}
	return result
}

// Triangle returns the triangle number T_{n-1} = n(n-1)/2, the critical
// exponent of the grid and multiplication-table conjectures.
func Triangle(n int) int {
	if n < 1 {
		return 0
	}
	return n * (n - 1) / 2
}

// Binomial returns C(n, k), or 0 when k is outside 0..n.
func Binomial(n, k int) *big.Int {
	if k < 0 || k > n {
		return new(big.Int)
	}
	return new(big.Int).Binomial(int64(n), int64(k))
}

// HilbertDeterminant returns det(H_n) via the closed form
// det(H_n) = prod_{k=1}^{n-1} (k!)^4 / prod_{k=1}^{2n-1} k!.
func HilbertDeterminant(n int) *big.Rat {
	if n <= 1 {
		return big.NewRat(1, 1)
	}
	num := big.NewInt(1)
	for k := 1; k < n; k++ {
		f := Factorial(k)
		f.Mul(f, f)
		f.Mul(f, f)
		num.Mul(num, f)
	}
	den := big.NewInt(1)
	for k := 1; k < 2*n; k++ {
		den.Mul(den, Factorial(k))
	}
	return new(big.Rat).SetFrac(num, den)
}
