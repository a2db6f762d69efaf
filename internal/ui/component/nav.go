package component

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/sulayman/folio/internal/section"
	"github.com/sulayman/folio/internal/tracker"
	"github.com/sulayman/folio/internal/ui/command"
	"github.com/sulayman/folio/internal/ui/model"
	"github.com/sulayman/folio/internal/ui/styles"
)

type navItem struct {
	section section.Section
	zoneID  string
}

func newNavItems(registry section.Registry) []navItem {
	items := make([]navItem, 0, registry.Len())
	for _, sect := range registry.All() {
		items = append(items, navItem{section: sect, zoneID: zone.NewPrefix()})
	}

	return items
}

// NewNavModel creates the fixed navigation bar. It reads the active section through SetState which
// is meant to be subscribed to the page state.
func NewNavModel(registry section.Registry, brand string) *NavModel {
	return &NavModel{
		brand:      brand,
		items:      newNavItems(registry),
		state:      tracker.State{Active: registry.First()},
		toggleZone: zone.NewPrefix(),
	}
}

type NavModel struct {
	brand      string
	items      []navItem
	state      tracker.State
	viewState  model.ViewState
	toggleZone string
}

// SetState receives active section updates.
func (m *NavModel) SetState(state tracker.State) {
	m.state = state
}

func (m *NavModel) State() tracker.State {
	return m.state
}

func (m *NavModel) Init() tea.Cmd {
	return nil
}

func (m *NavModel) Update(msg tea.Msg) (*NavModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}

		if m.viewState.Compact {
			if zone.Get(m.toggleZone).InBounds(msg) {
				return m, command.ToggleMenu(!m.viewState.MenuOpen)
			}

			return m, nil
		}

		for _, item := range m.items {
			// Check each item to see if it's in bounds.
			if zone.Get(item.zoneID).InBounds(msg) {
				return m, command.Navigate(item.section.ID)
			}
		}
	case model.ViewState:
		m.viewState = msg
	}

	return m, nil
}

// Height is the number of rows the bar occupies. It does not change when the chrome does.
func (m *NavModel) Height() int {
	return 1 + styles.NavContainer.GetVerticalFrameSize()
}

func (m *NavModel) View() string {
	if m.viewState.Width == 0 {
		return ""
	}

	container := styles.NavContainer
	if m.state.Scrolled {
		container = styles.NavScrolled
	}

	brand := styles.NavBrand.Render(m.brand)

	var right string
	if m.viewState.Compact {
		icon := styles.IconMenu
		if m.viewState.MenuOpen {
			icon = styles.IconMenuOpen
		}
		right = zone.Mark(m.toggleZone, styles.NavMenuToggle.Render(icon))
	} else {
		labels := make([]string, 0, len(m.items))
		for _, item := range m.items {
			style := styles.NavItem
			if item.section.ID == m.state.Active {
				style = styles.NavItemActive
			}
			labels = append(labels, zone.Mark(item.zoneID, style.Render(item.section.Label)))
		}
		right = lipgloss.JoinHorizontal(lipgloss.Top, labels...)
	}

	width := m.viewState.Width - container.GetHorizontalFrameSize()
	gap := max(1, width-lipgloss.Width(brand)-lipgloss.Width(right))
	row := lipgloss.JoinHorizontal(lipgloss.Top, brand, lipgloss.NewStyle().Width(gap).Render(""), right)

	return container.Width(width).MaxHeight(1 + container.GetVerticalBorderSize()).Render(row)
}
