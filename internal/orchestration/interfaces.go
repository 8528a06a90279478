package orchestration

import (
	"io"
	"time"
)

// RunResult is the outcome of a single routine run. It is the shared domain
// type between orchestration and presentation.
type RunResult struct {
	// Name is the routine's registry name.
	Name string
	// Output holds the captured output of an ExecuteAll run. Execute streams
	// instead and leaves it nil.
	Output []byte
	// Lines is the number of output lines the routine wrote.
	Lines int
	// Duration is the wall-clock time of the run.
	Duration time.Duration
	// Err is the routine's error, if any.
	Err error
}

// ResultPresenter renders results. Implementations live in the cli package.
type ResultPresenter interface {
	// PresentSection writes a header for result followed by its captured output.
	PresentSection(result RunResult, out io.Writer)

	// PresentSummaryTable writes one row per result with status and timing.
	PresentSummaryTable(results []RunResult, out io.Writer)

	// HandleError reports err and returns the matching exit code.
	HandleError(err error, out io.Writer) int
}
