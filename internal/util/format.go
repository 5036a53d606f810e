package util

import (
	"fmt"
	"time"
)

// FormatDuration formats an animation duration compactly: 600ms, 1.5s, 2s.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	s := d.Seconds()
	if s == float64(int(s)) {
		return fmt.Sprintf("%ds", int(s))
	}
	return fmt.Sprintf("%.1fs", s)
}

// FormatPosition formats a line position as "line/total".
func FormatPosition(line, total int) string {
	if total <= 0 {
		return "0/0"
	}
	line = max(0, min(line+1, total))
	return fmt.Sprintf("%d/%d", line, total)
}
