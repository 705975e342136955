package icefall

import (
	"fmt"
	"math"
)

// FormatTime renders seconds as "M:SS.D", or "SS.D" under a minute.
// Seconds are rounded to one decimal after splitting off the minutes, so a
// value just below a minute boundary can render as "60.0".
func FormatTime(seconds float64) string {
	minutes := int(seconds / 60)
	secs := math.Round(math.Mod(seconds, 60)*10) / 10

	if minutes > 0 {
		return fmt.Sprintf("%d:%04.1f", minutes, secs)
	}
	return fmt.Sprintf("%04.1f", secs)
}

// formatHighScore renders a stored high score; a missing one shows as zero.
func formatHighScore(v float64, ok bool) string {
	if !ok {
		return FormatTime(0)
	}
	return FormatTime(v)
}
