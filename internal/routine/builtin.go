package routine

import (
	"context"
	"fmt"

	"github.com/agbru/consolekata/internal/carol"
	"github.com/agbru/consolekata/internal/greeting"
	"github.com/agbru/consolekata/internal/logging"
	"github.com/agbru/consolekata/internal/loops"
	"github.com/agbru/consolekata/internal/sequence"
	"github.com/agbru/consolekata/internal/shadowing"
)

// Built-in routine names.
const (
	NameCarol     = "carol"
	NameCountdown = "countdown"
	NameFib       = "fib"
	NameHello     = "hello"
	NameLoops     = "loops"
	NameShadow    = "shadow"
)

// Builtins returns one instance of every built-in routine.
func Builtins() []Routine {
	return []Routine{
		SequenceRoutine{},
		CarolRoutine{},
		GreetingRoutine{},
		CountdownRoutine{},
		ShadowRoutine{},
		LoopsRoutine{},
	}
}

// SequenceRoutine reports a Fibonacci term.
type SequenceRoutine struct{}

// Name implements Routine.
func (SequenceRoutine) Name() string { return NameFib }

// Summary implements Routine.
func (SequenceRoutine) Summary() string {
	return "Print the nth Fibonacci number (fixed index or stdin)"
}

// Run implements Routine.
func (SequenceRoutine) Run(ctx context.Context, env Env, opts Options) error {
	env = env.Normalize()
	var src sequence.Source = sequence.Constant(opts.N)
	if opts.Stdin {
		src = sequence.NewLineSource(env.In)
	}
	n, err := src.Index(ctx)
	if err != nil {
		env.Logger.Debug("reading sequence index failed", logging.Err(err), logging.Bool("stdin", opts.Stdin))
		return err
	}
	if opts.Sequence {
		return sequence.WriteTerms(env.Out, n)
	}
	res, err := sequence.Report(env.Out, n)
	if err != nil {
		return err
	}
	if !res.Valid {
		env.Logger.Info("invalid sequence index", logging.Int64("n", n))
		return nil
	}
	env.Logger.Debug("sequence term reported", logging.Int64("n", n), logging.Uint64("value", res.Value))
	return nil
}

// CarolRoutine prints the cumulative carol.
type CarolRoutine struct{}

// Name implements Routine.
func (CarolRoutine) Name() string { return NameCarol }

// Summary implements Routine.
func (CarolRoutine) Summary() string {
	return "Print the twelve cumulative verses of the Twelve Days of Christmas"
}

// Run implements Routine.
func (CarolRoutine) Run(_ context.Context, env Env, opts Options) error {
	env = env.Normalize()
	if opts.Day > 0 {
		return carol.WriteVerse(env.Out, opts.Day-1)
	}
	return carol.Write(env.Out)
}

// GreetingRoutine prints the greeting.
type GreetingRoutine struct{}

// Name implements Routine.
func (GreetingRoutine) Name() string { return NameHello }

// Summary implements Routine.
func (GreetingRoutine) Summary() string { return "Print a fixed greeting" }

// Run implements Routine.
func (GreetingRoutine) Run(_ context.Context, env Env, _ Options) error {
	return greeting.Print(env.Normalize().Out)
}

// CountdownRoutine prints a countdown ending in liftoff.
type CountdownRoutine struct{}

// Name implements Routine.
func (CountdownRoutine) Name() string { return NameCountdown }

// Summary implements Routine.
func (CountdownRoutine) Summary() string {
	return "Count down to 1 and announce LIFTOFF!!!"
}

// Run implements Routine.
func (CountdownRoutine) Run(ctx context.Context, env Env, opts Options) error {
	env = env.Normalize()
	c := loops.Countdown{
		From:     opts.From,
		Interval: opts.Interval,
		OnTick: func(n int) {
			env.Status(fmt.Sprintf(" T-minus %d", n))
		},
	}
	return c.Run(ctx, env.Out)
}

// ShadowRoutine runs the binding demonstrations.
type ShadowRoutine struct{}

// Name implements Routine.
func (ShadowRoutine) Name() string { return NameShadow }

// Summary implements Routine.
func (ShadowRoutine) Summary() string {
	return "Show immutable, mutable and shadowed bindings of x"
}

// Run implements Routine.
func (ShadowRoutine) Run(_ context.Context, env Env, opts Options) error {
	variant := opts.ShadowVariant
	if variant == "" {
		variant = shadowing.VariantShadow
	}
	return shadowing.Run(env.Normalize().Out, variant, opts.Seed)
}

// LoopsRoutine runs one of the loop-control demonstrations.
type LoopsRoutine struct{}

// Name implements Routine.
func (LoopsRoutine) Name() string { return NameLoops }

// Summary implements Routine.
func (LoopsRoutine) Summary() string {
	return "Show loop results, labelled breaks and collection iteration"
}

// Run implements Routine.
func (LoopsRoutine) Run(_ context.Context, env Env, opts Options) error {
	variant := opts.LoopVariant
	if variant == "" {
		variant = loops.VariantResult
	}
	return loops.Demo(env.Normalize().Out, variant)
}
