package sequence

import (
	"bufio"
	"context"
	"errors"
	"io"
	"math"
	"strconv"
	"strings"

	apperrors "github.com/agbru/consolekata/internal/errors"
)

// DefaultIndex is the index used when no other value is configured.
const DefaultIndex = 5

// Source supplies the index for one report.
type Source interface {
	Index(ctx context.Context) (int64, error)
}

// Constant is a fixed index.
type Constant int64

// Index returns the constant.
func (c Constant) Index(context.Context) (int64, error) { return int64(c), nil }

// LineSource reads a single line from an io.Reader and parses it as an
// unsigned integer.
type LineSource struct {
	r io.Reader
}

// NewLineSource creates a LineSource over r.
func NewLineSource(r io.Reader) *LineSource {
	return &LineSource{r: r}
}

// Index blocks until one line (or EOF) is read. The read itself cannot be
// interrupted; ctx is only checked before reading.
func (s *LineSource) Index(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return ReadIndex(s.r)
}

// ReadIndex reads one line from r, trims surrounding whitespace and parses
// it with strconv.ParseUint. Any failure is an apperrors.InputParseError.
func ReadIndex(r io.Reader) (int64, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return 0, apperrors.WrapError(err, "reading index")
	}
	text := strings.TrimSpace(line)
	if text == "" {
		return 0, apperrors.InputParseError{}
	}
	u, err := strconv.ParseUint(text, 10, 64)
	if err != nil {
		return 0, apperrors.InputParseError{Input: text, Cause: err}
	}
	if u > math.MaxInt64 {
		return 0, apperrors.ValidationError{Field: "n", Message: "index " + text + " is out of range"}
	}
	return int64(u), nil
}
