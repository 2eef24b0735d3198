// Package fibonacci computes Fibonacci numbers by iterative accumulation.
//
// The sequence is 0-indexed: F(0) = 0, F(1) = 1, F(n) = F(n-1) + F(n-2).
// Two entry points are provided, one taking a bare index and one taking the
// index wrapped in an Index record; they behave identically.
package fibonacci

import (
	apperrors "github.com/agbru/recur/internal/errors"
)

// Index wraps a Fibonacci index in a single-field record. It carries no
// semantics beyond holding N.
type Index struct {
	N int
}

// Fib returns the nth Fibonacci number.
//
// The window (a, b, c) starts at (0, 1, 1) and advances once for every m in
// [2, n). For n == 2 the loop never runs and the initial c is returned.
//
// Returns a ValidationError when n is negative.
func Fib(n int) (int, error) {
	if err := apperrors.NonNegative("n", n); err != nil {
		return 0, err
	}
	switch n {
	case 0:
		return 0, nil
	case 1:
		return 1, nil
	}

	a, b, c := 0, 1, 1
	for m := 2; m < n; m++ {
		a = b
		b = c
		c = a + b
	}
	return c, nil
}

// FibIndex returns the Fibonacci number for the index held by x.
func FibIndex(x Index) (int, error) {
	return Fib(x.N)
}

// StepCount reports how many times Fib advances its window for n.
func StepCount(n int) int {
	if n <= 2 {
		return 0
	}
	return n - 2
}
