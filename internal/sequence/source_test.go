package sequence

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"

	apperrors "github.com/agbru/consolekata/internal/errors"
)

type failingReader struct{ err error }

func (r failingReader) Read([]byte) (int, error) { return 0, r.err }

func TestReadIndex(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		input   string
		want    int64
		wantErr bool
	}{
		{"plain", "10\n", 10, false},
		{"surrounding whitespace", "  7 \r\n", 7, false},
		{"no trailing newline", "5", 5, false},
		{"zero parses", "0\n", 0, false},
		{"only first line", "3\n4\n", 3, false},
		{"empty", "\n", 0, true},
		{"eof", "", 0, true},
		{"negative", "-3\n", 0, true},
		{"letters", "ten\n", 0, true},
		{"decimal", "2.5\n", 0, true},
		{"too big for uint64", "18446744073709551616\n", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ReadIndex(strings.NewReader(tt.input))
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReadIndex(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ReadIndex(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestReadIndex_ErrorKinds(t *testing.T) {
	t.Parallel()

	t.Run("parse failure carries input and cause", func(t *testing.T) {
		t.Parallel()
		_, err := ReadIndex(strings.NewReader("abc\n"))
		var parseErr apperrors.InputParseError
		if !errors.As(err, &parseErr) {
			t.Fatalf("error = %v, want InputParseError", err)
		}
		if parseErr.Input != "abc" {
			t.Errorf("Input = %q, want %q", parseErr.Input, "abc")
		}
		if !errors.Is(err, strconv.ErrSyntax) {
			t.Error("cause should be strconv.ErrSyntax")
		}
		if apperrors.ExitCodeFor(err) != apperrors.ExitErrorInput {
			t.Errorf("exit code = %d, want %d", apperrors.ExitCodeFor(err), apperrors.ExitErrorInput)
		}
	})

	t.Run("above MaxInt64 is a validation error", func(t *testing.T) {
		t.Parallel()
		_, err := ReadIndex(strings.NewReader("18446744073709551615\n"))
		var validationErr apperrors.ValidationError
		if !errors.As(err, &validationErr) {
			t.Fatalf("error = %v, want ValidationError", err)
		}
	})

	t.Run("read failure is wrapped", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("device unplugged")
		_, err := ReadIndex(failingReader{err: boom})
		if !errors.Is(err, boom) {
			t.Errorf("error = %v, want wrapped %v", err, boom)
		}
	})
}

func TestSources(t *testing.T) {
	t.Parallel()

	n, err := Constant(DefaultIndex).Index(context.Background())
	if err != nil || n != DefaultIndex {
		t.Errorf("Constant.Index() = %d, %v; want %d, nil", n, err, DefaultIndex)
	}

	n, err = NewLineSource(strings.NewReader("12\n")).Index(context.Background())
	if err != nil || n != 12 {
		t.Errorf("LineSource.Index() = %d, %v; want 12, nil", n, err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewLineSource(strings.NewReader("12\n")).Index(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("LineSource.Index() on canceled context = %v, want context.Canceled", err)
	}
}
