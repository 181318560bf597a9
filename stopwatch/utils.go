package stopwatch

import (
	"fmt"
	"time"
)

// FormatTime converts an elapsed duration into MM:SS,CC. Every field is
// truncated, never rounded.
func FormatTime(d time.Duration) string {
	ms := d.Milliseconds()
	if ms < 0 {
		ms = 0
	}
	return fmt.Sprintf("%02d:%02d,%02d", ms/60000, ms%60000/1000, ms%1000/10)
}
