package loops

import (
	"context"
	"fmt"
	"io"
	"time"
)

// DefaultFrom is the countdown's default upper bound.
const DefaultFrom = 3

// Closing is printed once the countdown reaches zero.
const Closing = "LIFTOFF!!!"

// Countdown prints From, From-1, ..., 1 as "N!" lines and then Closing.
type Countdown struct {
	// From is the first number printed. Values below 1 print only Closing.
	From int
	// Interval is the pause after each number. Zero disables pacing.
	Interval time.Duration
	// OnTick, when set, is called with each number before it is printed.
	OnTick func(n int)
}

// Run writes the countdown to w. Only a paced countdown observes ctx.
func (c Countdown) Run(ctx context.Context, w io.Writer) error {
	for n := c.From; n >= 1; n-- {
		if c.OnTick != nil {
			c.OnTick(n)
		}
		if _, err := fmt.Fprintf(w, "%d!\n", n); err != nil {
			return err
		}
		if err := c.pause(ctx); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, Closing)
	return err
}

func (c Countdown) pause(ctx context.Context) error {
	if c.Interval <= 0 {
		return nil
	}
	timer := time.NewTimer(c.Interval)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
