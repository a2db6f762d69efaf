package model

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/sulayman/folio/internal/ui/styles"
)

// Card renders content in a bordered card of the given outer width with title rendered on the
// first row.
func Card(title string, width int, content string) string {
	if width <= 0 {
		return ""
	}

	inner := width - styles.Card.GetHorizontalFrameSize()
	if inner <= 0 {
		return ""
	}

	body := content
	if title != "" {
		body = lipgloss.JoinVertical(lipgloss.Left, styles.CardTitle.Width(inner).Render(title), content)
	}

	return styles.Card.Width(width - styles.Card.GetHorizontalBorderSize()).Render(body)
}
