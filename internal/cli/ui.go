//go:generate mockgen -source=ui.go -destination=mocks/mock_ui.go -package=mocks

package cli

import (
	"io"
	"sync"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/consolekata/internal/orchestration"
)

// ProgressRefreshRate is the spinner's frame interval.
const ProgressRefreshRate = 100 * time.Millisecond

// Spinner abstracts a terminal spinner so that the status reporter can be
// tested without a terminal.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner adapts spinner.Spinner to Spinner.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start() { rs.s.Start() }

func (rs *realSpinner) Stop() { rs.s.Stop() }

func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Lock()
	rs.s.Suffix = suffix
	rs.s.Unlock()
}

var newSpinner = func(options ...spinner.Option) Spinner {
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)
	return &realSpinner{s}
}

// SpinnerReporter implements orchestration.StatusReporter with a spinner
// written to an error stream.
type SpinnerReporter struct {
	out io.Writer

	mu sync.Mutex
	s  Spinner
}

var _ orchestration.StatusReporter = (*SpinnerReporter)(nil)

// NewSpinnerReporter returns a reporter drawing on out.
func NewSpinnerReporter(out io.Writer) *SpinnerReporter {
	return &SpinnerReporter{out: out}
}

// Start shows the spinner labelled with the routine name.
func (r *SpinnerReporter) Start(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.s != nil {
		return
	}
	r.s = newSpinner(spinner.WithWriter(r.out), spinner.WithSuffix(" "+name))
	r.s.Start()
}

// Update replaces the spinner's suffix.
func (r *SpinnerReporter) Update(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.s != nil {
		r.s.UpdateSuffix(msg)
	}
}

// Stop removes the spinner. It is safe to call more than once.
func (r *SpinnerReporter) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.s != nil {
		r.s.Stop()
		r.s = nil
	}
}
