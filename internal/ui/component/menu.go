package component

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/sulayman/folio/internal/section"
	"github.com/sulayman/folio/internal/tracker"
	"github.com/sulayman/folio/internal/ui/command"
	"github.com/sulayman/folio/internal/ui/model"
	"github.com/sulayman/folio/internal/ui/styles"
)

// NewMenuModel creates the compact navigation menu shown on narrow terminals.
func NewMenuModel(registry section.Registry) *MenuModel {
	return &MenuModel{
		items: newNavItems(registry),
		state: tracker.State{Active: registry.First()},
	}
}

type MenuModel struct {
	items     []navItem
	state     tracker.State
	viewState model.ViewState
}

// SetState receives active section updates.
func (m *MenuModel) SetState(state tracker.State) {
	m.state = state
}

func (m *MenuModel) Open() bool {
	return m.viewState.Compact && m.viewState.MenuOpen
}

func (m *MenuModel) Init() tea.Cmd {
	return nil
}

func (m *MenuModel) Update(msg tea.Msg) (*MenuModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		if !m.Open() || msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}

		for _, item := range m.items {
			if zone.Get(item.zoneID).InBounds(msg) {
				return m, tea.Batch(command.Navigate(item.section.ID), command.ToggleMenu(false))
			}
		}
	case model.ViewState:
		m.viewState = msg
	}

	return m, nil
}

func (m *MenuModel) View() string {
	if !m.Open() {
		return ""
	}

	rows := make([]string, 0, len(m.items))
	for _, item := range m.items {
		style := styles.MenuItem
		if item.section.ID == m.state.Active {
			style = styles.MenuItemActive
		}

		label := item.section.Label
		if item.section.Key != "" {
			label = fmt.Sprintf("%s  %s", item.section.Key, label)
		}

		rows = append(rows, zone.Mark(item.zoneID, style.Width(24).Render(label)))
	}

	return styles.MenuContainer.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
