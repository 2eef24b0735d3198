package ackermann

import (
	"context"

	apperrors "github.com/agbru/recur/internal/errors"
)

// cancelCheckInterval is the number of iterations between context checks.
const cancelCheckInterval = 1 << 16

// Stack evaluates A(m, n) iteratively. The slice holds the m arguments of
// outer calls still waiting for their inner result; n carries the current
// inner result. Each pop corresponds to exactly one recursive invocation.
type Stack struct{}

// Name implements Calculator.
func (Stack) Name() string { return "stack" }

// Calculate implements Calculator. Unlike Recursive it stops with a
// CalculationError wrapping ctx.Err() when the context is cancelled mid-run.
func (Stack) Calculate(ctx context.Context, m, n int) (Evaluation, error) {
	if err := validate(m, n); err != nil {
		return Evaluation{}, err
	}

	pending := []int{m}
	var calls uint64
	for len(pending) > 0 {
		if calls%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return Evaluation{}, apperrors.CalculationError{Cause: err}
			}
		}

		top := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		calls++

		switch {
		case top == 0:
			n++
		case n == 0:
			pending = append(pending, top-1)
			n = 1
		default:
			pending = append(pending, top-1, top)
			n--
		}
	}
	return Evaluation{Value: n, Calls: calls}, nil
}
