package cli

import (
	"bytes"
	"io"
	"testing"
	"time"

	"github.com/briandowns/spinner"
	"github.com/golang/mock/gomock"

	"github.com/agbru/consolekata/internal/cli/mocks"
)

func TestRealSpinner(t *testing.T) {
	t.Parallel()
	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(io.Discard))
	rs := &realSpinner{s}

	// Just verify these methods don't panic
	rs.Start()
	rs.UpdateSuffix(" test")
	rs.Stop()
}

// TestSpinnerReporter drives the reporter through a countdown-like sequence
// with a mocked spinner. Not parallel: it swaps newSpinner.
func TestSpinnerReporter(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockS := mocks.NewMockSpinner(ctrl)

	originalNewSpinner := newSpinner
	t.Cleanup(func() { newSpinner = originalNewSpinner })
	created := 0
	newSpinner = func(...spinner.Option) Spinner {
		created++
		return mockS
	}

	gomock.InOrder(
		mockS.EXPECT().Start(),
		mockS.EXPECT().UpdateSuffix(" T-minus 3"),
		mockS.EXPECT().UpdateSuffix(" T-minus 2"),
		mockS.EXPECT().Stop(),
	)

	r := NewSpinnerReporter(&bytes.Buffer{})
	r.Start("countdown")
	r.Start("countdown")
	r.Update(" T-minus 3")
	r.Update(" T-minus 2")
	r.Stop()
	r.Stop()
	r.Update(" after stop")

	if created != 1 {
		t.Errorf("expected one spinner to be created, got %d", created)
	}
}
