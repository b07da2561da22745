package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// overlayAt draws overlay on top of base with its top-left corner at (x, y).
// Lines of the overlay that fall outside base are dropped.
func overlayAt(base, overlay string, x, y int) string {
	baseLines := splitLines(base)
	for i, line := range splitLines(overlay) {
		row := y + i
		if row < 0 || row >= len(baseLines) {
			continue
		}
		target := baseLines[row]
		left := ansi.Truncate(target, x, "")
		if w := ansi.StringWidth(left); w < x {
			left += strings.Repeat(" ", x-w)
		}
		right := ansi.TruncateLeft(target, x+ansi.StringWidth(line), "")
		baseLines[row] = left + line + right
	}
	return strings.Join(baseLines, "\n")
}

func splitLines(s string) []string {
	if s == "" {
		return []string{""}
	}
	return strings.Split(s, "\n")
}
