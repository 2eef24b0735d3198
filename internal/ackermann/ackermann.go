// Package ackermann evaluates the Ackermann–Péter function
//
//	A(0, n) = n + 1
//	A(m, 0) = A(m-1, 1)
//	A(m, n) = A(m-1, A(m, n-1))
//
// Two strategies are provided behind the Calculator interface: Recursive,
// which follows the definition with native recursion, and Stack, which keeps
// pending outer calls on an explicit slice. Both return the same value and the
// same invocation count for every input.
package ackermann

import (
	"context"

	apperrors "github.com/agbru/recur/internal/errors"
)

// Evaluation is the outcome of a single A(m, n) computation.
type Evaluation struct {
	// Value is A(m, n).
	Value int
	// Calls is the number of A invocations performed, the outermost included.
	Calls uint64
}

// Calculator evaluates A(m, n).
type Calculator interface {
	// Name returns the registry key of the strategy.
	Name() string
	// Calculate returns A(m, n) or a ValidationError for negative arguments.
	Calculate(ctx context.Context, m, n int) (Evaluation, error)
}

// Ackermann returns A(m, n) using the recursive strategy.
func Ackermann(m, n int) (int, error) {
	ev, err := Recursive{}.Calculate(context.Background(), m, n)
	if err != nil {
		return 0, err
	}
	return ev.Value, nil
}

func validate(m, n int) error {
	if err := apperrors.NonNegative("m", m); err != nil {
		return err
	}
	return apperrors.NonNegative("n", n)
}

// Recursive is the textbook double recursion. It has no memoisation and
// consults the context only before starting; recursion depth grows with the
// result, and exhausting the goroutine stack is fatal.
type Recursive struct{}

// Name implements Calculator.
func (Recursive) Name() string { return "recursive" }

// Calculate implements Calculator.
func (Recursive) Calculate(ctx context.Context, m, n int) (Evaluation, error) {
	if err := validate(m, n); err != nil {
		return Evaluation{}, err
	}
	if err := ctx.Err(); err != nil {
		return Evaluation{}, apperrors.CalculationError{Cause: err}
	}
	var calls uint64
	value := ack(m, n, &calls)
	return Evaluation{Value: value, Calls: calls}, nil
}

func ack(m, n int, calls *uint64) int {
	*calls++
	switch {
	case m == 0:
		return n + 1
	case n == 0:
		return ack(m-1, 1, calls)
	default:
		return ack(m-1, ack(m, n-1, calls), calls)
	}
}
