package ui

import (
	"strings"
)

// renderPositionBar draws where the viewport sits within the document.
func renderPositionBar(offset, visible, total float64, width int) string {
	if width < 10 {
		width = 10
	}
	barWidth := width - 2 // leave some margin

	var start, end float64
	if total > 0 {
		start = offset / total
		end = (offset + visible) / total
	}
	start = clamp01(start)
	end = clamp01(end)

	from := int(start * float64(barWidth))
	to := int(end * float64(barWidth))
	if to <= from && from < barWidth {
		to = from + 1
	}

	return strings.Repeat("─", from) + strings.Repeat("━", to-from) + strings.Repeat("─", barWidth-to)
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
