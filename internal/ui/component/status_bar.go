package component

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sulayman/folio/internal/section"
	"github.com/sulayman/folio/internal/tracker"
	"github.com/sulayman/folio/internal/ui/command"
	"github.com/sulayman/folio/internal/ui/input"
	"github.com/sulayman/folio/internal/ui/model"
	"github.com/sulayman/folio/internal/ui/styles"
)

// Progress is a read only view of how far the document has been scrolled and revealed.
type Progress interface {
	Progress() float64
	RevealCount() (int, int)
}

func NewStatusBarModel(version string, registry section.Registry, progress Progress) *StatusBarModel {
	return &StatusBarModel{
		version:  version,
		registry: registry,
		progress: progress,
		state:    tracker.State{Active: registry.First()},
	}
}

type StatusBarModel struct {
	version     string
	registry    section.Registry
	progress    Progress
	state       tracker.State
	viewState   model.ViewState
	statusMsg   string
	statusError bool
}

// SetState receives active section updates.
func (m *StatusBarModel) SetState(state tracker.State) {
	m.state = state
}

func (m *StatusBarModel) Init() tea.Cmd {
	return nil
}

func (m *StatusBarModel) Update(msg tea.Msg) (*StatusBarModel, tea.Cmd) {
	switch msg := msg.(type) {
	case command.StatusMsg:
		m.statusMsg = msg.Message
		m.statusError = msg.Err

		return m, command.ClearErrorAfter(command.ClearMessageTimeout)
	case command.ClearStatusMessageMsg:
		m.statusError = false
		m.statusMsg = ""
	case model.ViewState:
		m.viewState = msg
	}

	return m, nil
}

func (m *StatusBarModel) View() string {
	label := string(m.state.Active)
	if sect, found := m.registry.Lookup(m.state.Active); found {
		label = sect.Label
	}

	revealed, total := m.progress.RevealCount()
	args := []string{
		styles.StatusVersion.Render(m.version),
		styles.StatusSection.Render(label),
		styles.StatusProgress.Render(fmt.Sprintf("%3.0f%%", m.progress.Progress()*100)),
		styles.StatusProgress.Render(fmt.Sprintf("%d/%d", revealed, total)),
		styles.StatusHelp.Render(fmt.Sprintf("%s %s", input.Default.Help.Help().Key, input.Default.Help.Help().Desc)),
		m.status(),
	}

	return lipgloss.NewStyle().Width(m.viewState.Width).Background(styles.Black).
		Render(lipgloss.JoinHorizontal(lipgloss.Top, args...))
}

func (m *StatusBarModel) status() string {
	if m.statusMsg == "" {
		return ""
	}

	if m.statusError {
		return styles.StatusError.PaddingLeft(2).Render(m.statusMsg)
	}

	return styles.StatusMessage.PaddingLeft(2).Render(m.statusMsg)
}
