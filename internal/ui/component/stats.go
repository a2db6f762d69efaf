package component

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/sulayman/folio/internal/content"
	"github.com/sulayman/folio/internal/ui/command"
	"github.com/sulayman/folio/internal/ui/styles"
)

const statCardWidth = 22

// StatsModel counts each stat up from zero to its target, one step per tick.
type StatsModel struct {
	stats  []content.Stat
	counts []int
	every  time.Duration
}

func NewStatsModel(stats []content.Stat, every time.Duration) *StatsModel {
	return &StatsModel{
		stats:  stats,
		counts: make([]int, len(stats)),
		every:  every,
	}
}

func (m *StatsModel) Init() tea.Cmd {
	if m.Done() {
		return nil
	}

	return command.StatTick(m.every)
}

func (m *StatsModel) Update(msg tea.Msg) (*StatsModel, tea.Cmd) {
	if _, ok := msg.(command.StatTickMsg); !ok {
		return m, nil
	}

	for idx, stat := range m.stats {
		if m.counts[idx] < stat.Target {
			m.counts[idx]++
		}
	}

	if m.Done() {
		return m, nil
	}

	return m, command.StatTick(m.every)
}

func (m *StatsModel) SetInterval(every time.Duration) {
	m.every = every
}

// Done reports whether every counter reached its target.
func (m *StatsModel) Done() bool {
	for idx, stat := range m.stats {
		if m.counts[idx] < stat.Target {
			return false
		}
	}

	return true
}

func (m *StatsModel) Counts() []int {
	out := make([]int, len(m.counts))
	copy(out, m.counts)

	return out
}

// Render lays the stat cards out in a grid of up to two per row within width. The output height
// only depends on width so it can be measured before the counters finish.
func (m *StatsModel) Render(width int) string {
	perRow := max(1, min(2, width/statCardWidth))

	var (
		rows []string
		row  []string
	)

	for idx, stat := range m.stats {
		number := styles.StatNumber.Render(humanize.Comma(int64(m.counts[idx])) + "+")
		label := styles.StatLabel.Render(stat.Label)
		card := styles.Card.Width(statCardWidth - styles.Card.GetHorizontalBorderSize()).Align(lipgloss.Center).
			Render(lipgloss.JoinVertical(lipgloss.Center, number, label))

		row = append(row, card)
		if len(row) == perRow {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
		}
	}

	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
