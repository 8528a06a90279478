// Package apperrors defines structured application error types for the
// kata toolkit, allowing a clear distinction between error classes
// (configuration, input parsing, validation, timeouts) and carrying the
// underlying cause.
//
// Error Wrapping Guidelines:
// This package follows Go's error wrapping conventions using fmt.Errorf with %w.
// Types that carry a cause implement Unwrap() to support errors.Is() and errors.As().
package apperrors
