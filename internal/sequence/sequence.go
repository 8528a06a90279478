package sequence

import (
	"errors"
	"fmt"
	"io"

	apperrors "github.com/agbru/consolekata/internal/errors"
	"github.com/agbru/consolekata/internal/format"
)

// MaxIndex is the largest n for which F(n) fits in a uint64.
// F(93) = 12200160415121876738; F(94) overflows.
const MaxIndex = 93

// InvalidInputMessage is written in place of a result for indices <= 0.
const InvalidInputMessage = "Invalid input!"

// ErrInvalidIndex is returned by Nth for indices <= 0.
var ErrInvalidIndex = errors.New("index must be positive")

// Result is what Report produced for one index.
type Result struct {
	// N is the requested index.
	N int64
	// Value is F(N); zero when Valid is false.
	Value uint64
	// Valid is false when N <= 0 and "Invalid input!" was written instead.
	Valid bool
}

// Nth returns F(n) for 1 <= n <= MaxIndex.
//
// The pair (a, b) starts at (0, 1) and advances with new = a + b, a = b,
// b = new until b holds F(n).
func Nth(n int64) (uint64, error) {
	if n <= 0 {
		return 0, ErrInvalidIndex
	}
	if n > MaxIndex {
		return 0, apperrors.ValidationError{
			Field:   "n",
			Message: fmt.Sprintf("F(%d) does not fit in 64 bits (maximum index is %d)", n, MaxIndex),
		}
	}
	if n == 1 {
		return 1, nil
	}
	var a, b uint64 = 0, 1
	for i := int64(2); i <= n; i++ {
		next := a + b
		a = b
		b = next
	}
	return b, nil
}

// Report writes the n-th term to w as "<ordinal> Fibonacci number: <value>",
// or "Invalid input!" when n <= 0. An invalid index is not an error; an index
// whose term overflows uint64 is.
func Report(w io.Writer, n int64) (Result, error) {
	value, err := Nth(n)
	switch {
	case errors.Is(err, ErrInvalidIndex):
		if _, werr := fmt.Fprintln(w, InvalidInputMessage); werr != nil {
			return Result{N: n}, werr
		}
		return Result{N: n}, nil
	case err != nil:
		return Result{N: n}, err
	}

	if _, err := fmt.Fprintf(w, "%s Fibonacci number: %d\n", format.Ordinal(n), value); err != nil {
		return Result{N: n}, err
	}
	return Result{N: n, Value: value, Valid: true}, nil
}

// Generator returns a closure that yields F(1), F(2), F(3), ... on successive
// calls. It wraps silently after F(MaxIndex).
func Generator() func() uint64 {
	a, b := uint64(0), uint64(1)
	return func() uint64 {
		a, b = b, a+b
		return a
	}
}

// WriteTerms writes F(1) through F(n) to w, one per line.
func WriteTerms(w io.Writer, n int64) error {
	if n <= 0 {
		_, err := fmt.Fprintln(w, InvalidInputMessage)
		return err
	}
	if n > MaxIndex {
		return apperrors.ValidationError{
			Field:   "n",
			Message: fmt.Sprintf("terms beyond F(%d) do not fit in 64 bits", MaxIndex),
		}
	}
	next := Generator()
	for i := int64(1); i <= n; i++ {
		if _, err := fmt.Fprintln(w, next()); err != nil {
			return err
		}
	}
	return nil
}
