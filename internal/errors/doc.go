// Package apperrors defines structured error types shared by the recurrence
// packages and the program shell, allowing a clear distinction between error
// classes (configuration, invalid argument, evaluation) and carrying the
// underlying cause.
//
// Error Wrapping Guidelines:
// This package follows Go's error wrapping conventions using fmt.Errorf with %w.
// Types that carry a cause implement Unwrap() to support errors.Is() and errors.As().
package apperrors
