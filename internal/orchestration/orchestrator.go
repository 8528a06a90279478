package orchestration

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/consolekata/internal/errors"
	"github.com/agbru/consolekata/internal/format"
	"github.com/agbru/consolekata/internal/logging"
	"github.com/agbru/consolekata/internal/metrics"
	"github.com/agbru/consolekata/internal/routine"
)

const instrumentationName = "github.com/agbru/consolekata/internal/orchestration"

// Execute runs r once, streaming its output to env.Out. The run is wrapped in
// a span and recorded in rec, which may be nil.
func Execute(ctx context.Context, r routine.Routine, env routine.Env, opts routine.Options, rec *metrics.Recorder) RunResult {
	env = env.Normalize()
	name := r.Name()

	ctx, span := otel.Tracer(instrumentationName).Start(ctx, "routine."+name,
		trace.WithAttributes(attribute.String("routine.name", name)))
	defer span.End()

	counter := metrics.NewLineCounter(env.Out)
	env.Out = counter
	env.Logger = env.Logger.With(logging.String("routine", name))

	env.Logger.Debug("routine started")
	start := time.Now()
	err := r.Run(ctx, env, opts)
	elapsed := time.Since(start)

	result := RunResult{Name: name, Lines: counter.Lines(), Duration: elapsed, Err: err}

	span.SetAttributes(attribute.Int("routine.lines", result.Lines))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		env.Logger.Debug("routine failed", logging.Err(err), logging.Duration("elapsed", elapsed))
	} else {
		span.SetStatus(codes.Ok, "")
		env.Logger.Debug("routine finished",
			logging.Int("lines", result.Lines),
			logging.String("elapsed", format.FormatExecutionDuration(elapsed)))
	}

	rec.ObserveRun(name, elapsed, err)
	rec.AddLines(name, result.Lines)
	rec.ObserveMemory(metrics.ReadMemory())
	return result
}

// ExecuteAll runs every routine concurrently, each writing into its own
// buffer, and returns the results in the order of routines. A failing routine
// does not stop the others. Status updates are not forwarded.
func ExecuteAll(ctx context.Context, routines []routine.Routine, env routine.Env, opts routine.Options, rec *metrics.Recorder) []RunResult {
	env = env.Normalize()
	results := make([]RunResult, len(routines))

	ctx, span := otel.Tracer(instrumentationName).Start(ctx, "routines.all",
		trace.WithAttributes(attribute.Int("routine.count", len(routines))))
	defer span.End()

	var g errgroup.Group
	for i, r := range routines {
		g.Go(func() error {
			var buf bytes.Buffer
			sub := env
			sub.Out = &buf
			sub.Status = nil
			res := Execute(ctx, r, sub, opts, rec)
			res.Output = buf.Bytes()
			results[i] = res
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// AnalyzeResults writes each result's captured output under a section header
// to out and a summary table to summary, which may be nil. It returns the
// exit code of the first failed result in order, or ExitSuccess.
func AnalyzeResults(results []RunResult, presenter ResultPresenter, out, summary io.Writer) int {
	var firstErr error
	failed := 0
	for i, res := range results {
		if i > 0 {
			fmt.Fprintln(out)
		}
		presenter.PresentSection(res, out)
		if res.Err != nil {
			failed++
			if firstErr == nil {
				firstErr = res.Err
			}
		}
	}

	if summary == nil {
		summary = io.Discard
	}
	presenter.PresentSummaryTable(results, summary)

	if firstErr == nil {
		fmt.Fprintf(summary, "\nGlobal Status: Success. %d routines completed.\n", len(results))
		return apperrors.ExitSuccess
	}
	fmt.Fprintf(summary, "\nGlobal Status: Failure. %d of %d routines failed.\n", failed, len(results))
	return presenter.HandleError(firstErr, summary)
}
