package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	Black    = lipgloss.Color("#111827")
	Gray     = lipgloss.Color("#374151")
	GrayDark = lipgloss.Color("#1f2937")
	GrayText = lipgloss.Color("#9ca3af")
	White    = lipgloss.Color("#e5e7eb")
	Blue     = lipgloss.Color("#60a5fa")
	Purple   = lipgloss.Color("#a855f7")
	Pink     = lipgloss.Color("#ec4899")
	Green    = lipgloss.Color("#22c55e")
	Yellow   = lipgloss.Color("#eab308")

	// MaxContentWidth caps the width of the document column, similar to a max-w container.
	MaxContentWidth = 100

	NavBrand       = lipgloss.NewStyle().Bold(true).Foreground(Purple).PaddingRight(2)
	NavItem        = lipgloss.NewStyle().Foreground(White).PaddingLeft(1).PaddingRight(1)
	NavItemActive  = lipgloss.NewStyle().Foreground(Blue).Bold(true).Underline(true).PaddingLeft(1).PaddingRight(1)
	NavMenuToggle  = lipgloss.NewStyle().Foreground(White).Bold(true)
	NavContainer   = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, true, false).BorderForeground(Black)
	NavScrolled    = NavContainer.Background(GrayDark).BorderBackground(GrayDark).BorderForeground(Blue)
	MenuContainer  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(Gray).Background(GrayDark).Padding(0, 1)
	MenuItem       = lipgloss.NewStyle().Foreground(White).PaddingLeft(1)
	MenuItemActive = lipgloss.NewStyle().Foreground(Blue).Bold(true).PaddingLeft(1)

	HeroName    = lipgloss.NewStyle().Bold(true).Foreground(Purple)
	HeroTagline = lipgloss.NewStyle().Foreground(White)
	HeroSummary = lipgloss.NewStyle().Foreground(GrayText)
	HeroArrow   = lipgloss.NewStyle().Foreground(Blue).Bold(true)

	Heading       = lipgloss.NewStyle().Bold(true).Foreground(White)
	HeadingAccent = lipgloss.NewStyle().Bold(true).Foreground(Blue)
	Paragraph     = lipgloss.NewStyle().Foreground(White)
	Muted         = lipgloss.NewStyle().Foreground(GrayText)
	Bullet        = lipgloss.NewStyle().Foreground(Blue)
	Link          = lipgloss.NewStyle().Foreground(Blue).Underline(true)
	Chip          = lipgloss.NewStyle().Foreground(Blue).Background(GrayDark).Padding(0, 1)
	Footer        = lipgloss.NewStyle().Foreground(GrayText).Border(lipgloss.NormalBorder(), true, false, false, false).BorderForeground(GrayDark)

	Card       = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(Gray).Padding(0, 1)
	CardTitle  = lipgloss.NewStyle().Bold(true).Foreground(White)
	CardSub    = lipgloss.NewStyle().Foreground(GrayText)
	StatNumber = lipgloss.NewStyle().Bold(true).Foreground(Blue)
	StatLabel  = lipgloss.NewStyle().Foreground(GrayText)

	StatusLive       = lipgloss.NewStyle().Foreground(Black).Background(Green).Padding(0, 1)
	StatusInProgress = lipgloss.NewStyle().Foreground(Black).Background(Yellow).Padding(0, 1)
	StatusCompleted  = lipgloss.NewStyle().Foreground(Black).Background(Blue).Padding(0, 1)

	// Hidden is the entrance style of an element that has not been revealed yet.
	Hidden = lipgloss.NewStyle().Foreground(GrayDark)

	StatusVersion  = lipgloss.NewStyle().Foreground(Green).Bold(true).PaddingRight(2).PaddingLeft(1)
	StatusSection  = lipgloss.NewStyle().Foreground(Blue).Bold(true).PaddingRight(2)
	StatusProgress = lipgloss.NewStyle().Foreground(GrayText).PaddingRight(2)
	StatusHelp     = lipgloss.NewStyle().Foreground(Gray).Bold(true)
	StatusError    = lipgloss.NewStyle().Foreground(Pink).Bold(true).PaddingRight(2)
	StatusMessage  = lipgloss.NewStyle().Foreground(Green).Bold(true).PaddingRight(2)

	PanelLabel = lipgloss.NewStyle().Foreground(GrayText).Align(lipgloss.Right).Width(16)
	PanelValue = lipgloss.NewStyle().Width(60)
	HelpBox    = lipgloss.NewStyle().Padding(2)

	IconCode     = "</>"
	IconGrad     = "🎓"
	IconWork     = "💼"
	IconService  = "🛠"
	IconProject  = "🌍"
	IconAward    = "🏆"
	IconDown     = "↓"
	IconMenu     = "☰"
	IconMenuOpen = "✕"
)

func DetailRow(label string, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		PanelLabel.Render(label+" "),
		PanelValue.Render(value))
}

// WrapX will wrap a centered string with the supplied character up to the lenth specified.
func WrapX(width int, value string, character string) string {
	all := width - lipgloss.Width(value)
	if all <= 0 {
		return value
	}

	return strings.Repeat(character, all/2) + value + strings.Repeat(character, all-all/2)
}

// ContentWidth returns the width of the document column for a terminal of the given width.
func ContentWidth(width int) int {
	return max(20, min(width-2, MaxContentWidth))
}
