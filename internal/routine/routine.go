//go:generate mockgen -source=routine.go -destination=mocks/mock_routine.go -package=mocks

package routine

import (
	"context"
	"io"
	"time"

	"github.com/agbru/consolekata/internal/logging"
)

// Routine is one independently runnable console program.
type Routine interface {
	// Name is the registry key and subcommand name (e.g. "carol").
	Name() string
	// Summary is a one-line description used in listings.
	Summary() string
	// Run executes the routine against env using opts.
	Run(ctx context.Context, env Env, opts Options) error
}

// Env is the I/O environment a routine runs in.
type Env struct {
	// In is read by routines that take input (fib --stdin).
	In io.Reader
	// Out receives the routine's output lines.
	Out io.Writer
	// Logger receives diagnostics. Never nil once passed through Normalize.
	Logger logging.Logger
	// Status, when set, receives short progress notes (countdown ticks).
	Status func(msg string)
}

// Normalize fills unset fields with no-op defaults.
func (e Env) Normalize() Env {
	if e.In == nil {
		e.In = eofReader{}
	}
	if e.Out == nil {
		e.Out = io.Discard
	}
	if e.Logger == nil {
		e.Logger = logging.NewNop()
	}
	if e.Status == nil {
		e.Status = func(string) {}
	}
	return e
}

type eofReader struct{}

func (eofReader) Read([]byte) (int, error) { return 0, io.EOF }

// Options carries the per-run settings of every routine. Each routine reads
// only its own fields.
type Options struct {
	// N is the sequence index used when Stdin is false.
	N int64
	// Stdin makes the sequence routine read its index from Env.In.
	Stdin bool
	// Sequence prints F(1)..F(N) instead of a single report.
	Sequence bool
	// Day selects a single carol verse (1-12); 0 prints all twelve.
	Day int
	// From is the countdown's upper bound.
	From int
	// Interval paces the countdown; zero disables pacing.
	Interval time.Duration
	// Seed is the starting value of the shadowing demo.
	Seed int
	// ShadowVariant selects the shadowing demo variant.
	ShadowVariant string
	// LoopVariant selects the loop demo variant.
	LoopVariant string
}
