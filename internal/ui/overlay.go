package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// overlayTopRight draws fg over the top right corner of bg.
func overlayTopRight(bg string, fg string, width int) string {
	if fg == "" {
		return bg
	}

	fgWidth := lipgloss.Width(fg)
	left := max(0, width-fgWidth)
	bgLines := strings.Split(bg, "\n")
	for idx, line := range strings.Split(fg, "\n") {
		if idx >= len(bgLines) {
			bgLines = append(bgLines, "")
		}

		base := ansi.Truncate(bgLines[idx], left, "")
		if pad := left - ansi.StringWidth(base); pad > 0 {
			base += strings.Repeat(" ", pad)
		}

		bgLines[idx] = base + line
	}

	return strings.Join(bgLines, "\n")
}
