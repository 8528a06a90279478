package format

import (
	"fmt"
	"time"
)

// FormatExecutionDuration renders a routine's wall-clock time for the summary
// table. Sub-microsecond runs read "< 1µs", sub-millisecond runs are shown in
// microseconds, sub-second runs in milliseconds, and anything longer uses
// time.Duration's own representation.
func FormatExecutionDuration(d time.Duration) string {
	switch {
	case d < time.Microsecond:
		return "< 1µs"
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	default:
		return d.String()
	}
}
