package driver

import (
	"context"
	"fmt"

	"github.com/agbru/recur/internal/ackermann"
	"github.com/agbru/recur/internal/fibonacci"
)

// Fixed loop bounds of the three programs.
const (
	// FibonacciLast is the last index printed by both Fibonacci programs.
	FibonacciLast = 10
	// AckermannM is the first Ackermann argument, held constant.
	AckermannM = 3
	// AckermannLast is the last second argument printed by the Ackermann program.
	AckermannLast = 11
)

// Program names, also used as binary and metric label values.
const (
	FibonacciName       = "fib"
	FibonacciRecordName = "fibrecord"
	AckermannName       = "ackermann"
)

func fibLabel(i int) string { return fmt.Sprintf("F(%d)", i) }

// FibonacciProgram prints F(0) through F(10) using the bare-integer entry point.
func FibonacciProgram() Program {
	return Program{
		Name:  FibonacciName,
		First: 0,
		Last:  FibonacciLast,
		Label: fibLabel,
		Eval: func(_ context.Context, i int) (Result, error) {
			v, err := fibonacci.Fib(i)
			if err != nil {
				return Result{}, err
			}
			return Result{Value: v, Work: uint64(fibonacci.StepCount(i))}, nil
		},
	}
}

// FibonacciRecordProgram prints F(0) through F(10), passing each index wrapped
// in a fibonacci.Index record.
func FibonacciRecordProgram() Program {
	return Program{
		Name:  FibonacciRecordName,
		First: 0,
		Last:  FibonacciLast,
		Label: fibLabel,
		Eval: func(_ context.Context, i int) (Result, error) {
			x := fibonacci.Index{N: i}
			v, err := fibonacci.FibIndex(x)
			if err != nil {
				return Result{}, err
			}
			return Result{Value: v, Work: uint64(fibonacci.StepCount(x.N))}, nil
		},
	}
}

// AckermannProgram prints A(3, 0) through A(3, 11) using calc.
func AckermannProgram(calc ackermann.Calculator) Program {
	return Program{
		Name:  AckermannName,
		First: 0,
		Last:  AckermannLast,
		Label: func(i int) string { return fmt.Sprintf("A(%d, %d)", AckermannM, i) },
		Eval: func(ctx context.Context, i int) (Result, error) {
			ev, err := calc.Calculate(ctx, AckermannM, i)
			if err != nil {
				return Result{}, err
			}
			return Result{Value: ev.Value, Work: ev.Calls}, nil
		},
	}
}
