package ackermann

import (
	"context"
	"errors"
	"fmt"
	"testing"

	apperrors "github.com/agbru/recur/internal/errors"
)

// ackermann3 holds A(3, n) for n = 0..11.
var ackermann3 = []int{5, 13, 29, 61, 125, 253, 509, 1021, 2045, 4093, 8189, 16381}

func allCalculators() []Calculator {
	return NewDefaultFactory().GetAll()
}

func TestAckermann_RowThree(t *testing.T) {
	t.Parallel()
	for n, want := range ackermann3 {
		if testing.Short() && n > 8 {
			break
		}
		got, err := Ackermann(3, n)
		if err != nil {
			t.Fatalf("Ackermann(3, %d) error: %v", n, err)
		}
		if got != want {
			t.Errorf("Ackermann(3, %d) = %d, want %d", n, got, want)
		}
	}
}

func TestCalculators_ClosedForms(t *testing.T) {
	t.Parallel()
	closedForms := []struct {
		m    int
		form func(n int) int
	}{
		{0, func(n int) int { return n + 1 }},
		{1, func(n int) int { return n + 2 }},
		{2, func(n int) int { return 2*n + 3 }},
		{3, func(n int) int { return 1<<(n+3) - 3 }},
	}

	for _, calc := range allCalculators() {
		calc := calc
		for _, cf := range closedForms {
			cf := cf
			t.Run(fmt.Sprintf("%s/m=%d", calc.Name(), cf.m), func(t *testing.T) {
				t.Parallel()
				limit := 30
				if cf.m == 3 {
					limit = 6
				}
				for n := 0; n <= limit; n++ {
					ev, err := calc.Calculate(context.Background(), cf.m, n)
					if err != nil {
						t.Fatalf("A(%d, %d) error: %v", cf.m, n, err)
					}
					if want := cf.form(n); ev.Value != want {
						t.Errorf("A(%d, %d) = %d, want %d", cf.m, n, ev.Value, want)
					}
				}
			})
		}
	}
}

func TestCalculators_CallCounts(t *testing.T) {
	t.Parallel()
	tests := []struct {
		m, n      int
		wantValue int
		wantCalls uint64
	}{
		{0, 0, 1, 1},
		{1, 1, 3, 4},
		{2, 2, 7, 27},
		{2, 3, 9, 44},
		{3, 0, 5, 15},
		{3, 3, 61, 2432},
		{3, 5, 253, 42438},
	}

	for _, calc := range allCalculators() {
		calc := calc
		for _, tt := range tests {
			tt := tt
			t.Run(fmt.Sprintf("%s/A(%d,%d)", calc.Name(), tt.m, tt.n), func(t *testing.T) {
				t.Parallel()
				ev, err := calc.Calculate(context.Background(), tt.m, tt.n)
				if err != nil {
					t.Fatalf("Calculate error: %v", err)
				}
				if ev.Value != tt.wantValue || ev.Calls != tt.wantCalls {
					t.Errorf("got {%d, %d calls}, want {%d, %d calls}", ev.Value, ev.Calls, tt.wantValue, tt.wantCalls)
				}
			})
		}
	}
}

func TestCalculators_NegativeArguments(t *testing.T) {
	t.Parallel()
	tests := []struct {
		m, n      int
		wantField string
	}{
		{-1, 0, "m"},
		{0, -1, "n"},
		{-2, -2, "m"},
	}

	for _, calc := range allCalculators() {
		for _, tt := range tests {
			_, err := calc.Calculate(context.Background(), tt.m, tt.n)
			var validationErr apperrors.ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("%s: A(%d, %d) expected ValidationError, got %v", calc.Name(), tt.m, tt.n, err)
			}
			if validationErr.Field != tt.wantField {
				t.Errorf("%s: A(%d, %d) Field = %q, want %q", calc.Name(), tt.m, tt.n, validationErr.Field, tt.wantField)
			}
		}
	}

	if _, err := Ackermann(-1, 3); err == nil {
		t.Error("Ackermann(-1, 3) should fail")
	}
}

func TestCalculators_CanceledContext(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, calc := range allCalculators() {
		_, err := calc.Calculate(ctx, 3, 4)
		if !errors.Is(err, context.Canceled) {
			t.Errorf("%s: expected context.Canceled, got %v", calc.Name(), err)
		}
		var calcErr apperrors.CalculationError
		if !errors.As(err, &calcErr) {
			t.Errorf("%s: expected CalculationError, got %T", calc.Name(), err)
		}
	}
}

func TestFactory(t *testing.T) {
	t.Parallel()
	f := NewDefaultFactory()

	if got := f.List(); len(got) != 2 || got[0] != "recursive" || got[1] != "stack" {
		t.Errorf("List() = %v, want [recursive stack]", got)
	}

	calc, err := f.Get(DefaultStrategy)
	if err != nil {
		t.Fatalf("Get(%q) error: %v", DefaultStrategy, err)
	}
	if calc.Name() != DefaultStrategy {
		t.Errorf("Get(%q).Name() = %q", DefaultStrategy, calc.Name())
	}

	_, err = f.Get("memoized")
	var configErr apperrors.ConfigError
	if !errors.As(err, &configErr) {
		t.Errorf("Get(unknown) expected ConfigError, got %v", err)
	}
}
