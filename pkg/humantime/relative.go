package humantime

import (
	"fmt"
	"time"

	"github.com/mergestat/timediff"
)

// Fuzzy returns a coarse single-unit relative string such as "3 days ago"
// or "in 2 hours", for embed footers and log lines where the full
// precision of TimeSince is noise.
func Fuzzy(t time.Time) string {
	return timediff.TimeDiff(t)
}

// FuzzyAt is Fuzzy against an explicit reference instant.
func FuzzyAt(t, now time.Time) string {
	return timediff.TimeDiff(t, timediff.WithStartTime(now))
}

// Compact formats a flat duration densely for inline display.
// Examples: "450ms", "1.2s", "2m 15.3s".
func Compact(d time.Duration) string {
	ms := d.Milliseconds()
	if ms < 1000 {
		return fmt.Sprintf("%dms", ms)
	}
	seconds := float64(ms) / 1000.0
	if seconds < 60 {
		return fmt.Sprintf("%.1fs", seconds)
	}
	minutes := int(seconds / 60)
	remaining := seconds - float64(minutes*60)
	return fmt.Sprintf("%dm %.1fs", minutes, remaining)
}
