package cli

import (
	"fmt"
	"io"

	apperrors "github.com/agbru/consolekata/internal/errors"
	"github.com/agbru/consolekata/internal/format"
	"github.com/agbru/consolekata/internal/orchestration"
	"github.com/agbru/consolekata/internal/ui"
)

// CLIResultPresenter implements orchestration.ResultPresenter for terminal
// output. Routine output is written verbatim; only headers and the summary
// table carry colour.
type CLIResultPresenter struct{}

var _ orchestration.ResultPresenter = CLIResultPresenter{}

// PresentSection writes the section header and the captured output of result.
func (CLIResultPresenter) PresentSection(result orchestration.RunResult, out io.Writer) {
	fmt.Fprintln(out, ui.SectionHeader(result.Name))
	_, _ = out.Write(result.Output)
}

// PresentSummaryTable displays routine names, durations, line counts and
// status in a padded table. Padding is computed on the plain text so that
// ANSI codes do not skew alignment.
func (CLIResultPresenter) PresentSummaryTable(results []orchestration.RunResult, out io.Writer) {
	fmt.Fprintf(out, "\n--- Run Summary ---\n")

	maxNameLen := len("Routine")
	maxDurationLen := len("Duration")
	for _, res := range results {
		maxNameLen = max(maxNameLen, len(res.Name))
		maxDurationLen = max(maxDurationLen, len(format.FormatExecutionDuration(res.Duration)))
	}

	fmt.Fprintf(out, "%sRoutine%s%s   %sDuration%s%s   %sLines%s   %sStatus%s\n",
		ui.ColorUnderline(), ui.ColorReset(), padRight("", maxNameLen-len("Routine")),
		ui.ColorUnderline(), ui.ColorReset(), padRight("", maxDurationLen-len("Duration")),
		ui.ColorUnderline(), ui.ColorReset(),
		ui.ColorUnderline(), ui.ColorReset())

	for _, res := range results {
		var status string
		if res.Err != nil {
			status = fmt.Sprintf("%s❌ Failure (%v)%s", ui.ColorRed(), res.Err, ui.ColorReset())
		} else {
			status = fmt.Sprintf("%s✅ Success%s", ui.ColorGreen(), ui.ColorReset())
		}
		duration := format.FormatExecutionDuration(res.Duration)
		fmt.Fprintf(out, "%s%s%s%s   %s%s%s%s   %5d   %s\n",
			ui.ColorBlue(), res.Name, ui.ColorReset(), padRight("", maxNameLen-len(res.Name)),
			ui.ColorYellow(), duration, ui.ColorReset(), padRight("", maxDurationLen-len(duration)),
			res.Lines, status)
	}
}

// padRight returns s followed by length spaces.
func padRight(s string, length int) string {
	if length <= 0 {
		return s
	}
	return s + fmt.Sprintf("%*s", length, "")
}

// HandleError reports err and returns its exit code.
func (CLIResultPresenter) HandleError(err error, out io.Writer) int {
	return apperrors.HandleError(err, out, CLIColorProvider{})
}

// CLIColorProvider implements apperrors.ColorProvider using the active theme.
type CLIColorProvider struct{}

var _ apperrors.ColorProvider = CLIColorProvider{}

func (CLIColorProvider) Red() string    { return ui.ColorRed() }
func (CLIColorProvider) Yellow() string { return ui.ColorYellow() }
func (CLIColorProvider) Reset() string  { return ui.ColorReset() }
