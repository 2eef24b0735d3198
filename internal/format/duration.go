// Package format renders durations and counters for humans. It is used by
// the progress display on stderr and never for program output.
package format

import (
	"fmt"
	"time"
)

// Duration formats d for display. It shows microseconds below a
// millisecond, milliseconds below a second, and the default string
// representation otherwise.
func Duration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	default:
		return d.Round(time.Millisecond).String()
	}
}

// Count abbreviates n with a k, M or G suffix, keeping one decimal.
func Count(n uint64) string {
	switch {
	case n < 1_000:
		return fmt.Sprintf("%d", n)
	case n < 1_000_000:
		return fmt.Sprintf("%.1fk", float64(n)/1e3)
	case n < 1_000_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1e6)
	default:
		return fmt.Sprintf("%.1fG", float64(n)/1e9)
	}
}
