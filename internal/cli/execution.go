package cli

import (
	"fmt"
	"io"
	"runtime"
	"strings"
	"time"

	"github.com/agbru/consolekata/internal/ui"
)

// PrintExecutionConfig describes the upcoming run on out. It is shown at the
// debug log level and never mixed into routine output.
func PrintExecutionConfig(routines []string, timeout time.Duration, runID string, out io.Writer) {
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	fmt.Fprintf(out, "Running %s%s%s with a timeout of %s%s%s.\n",
		ui.ColorCyan(), strings.Join(routines, ", "), ui.ColorReset(),
		ui.ColorYellow(), timeout, ui.ColorReset())
	fmt.Fprintf(out, "Environment: Go %s%s%s, run %s%s%s.\n",
		ui.ColorCyan(), runtime.Version(), ui.ColorReset(),
		ui.ColorDim(), runID, ui.ColorReset())
}
