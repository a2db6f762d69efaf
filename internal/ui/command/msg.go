package command

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sulayman/folio/internal/config"
	"github.com/sulayman/folio/internal/section"
	"github.com/sulayman/folio/internal/ui/model"
)

func SetViewState(state model.ViewState) tea.Cmd {
	return func() tea.Msg { return state }
}

// NavigateMsg requests a smooth scroll to a section.
type NavigateMsg struct {
	Section section.ID
}

func Navigate(id section.ID) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Section: id} }
}

// FrameMsg advances a running scroll animation by one frame.
type FrameMsg struct {
	Time time.Time
}

func Frame(fps int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(max(1, fps)), func(t time.Time) tea.Msg {
		return FrameMsg{Time: t}
	})
}

// StatTickMsg advances the stat counters.
type StatTickMsg struct {
	Time time.Time
}

func StatTick(every time.Duration) tea.Cmd {
	return tea.Tick(every, func(t time.Time) tea.Msg {
		return StatTickMsg{Time: t}
	})
}

const ClearMessageTimeout = time.Second * 10

type ClearStatusMessageMsg struct{}

func ClearErrorAfter(t time.Duration) tea.Cmd {
	return tea.Tick(t, func(_ time.Time) tea.Msg {
		return ClearStatusMessageMsg{}
	})
}

type StatusMsg struct {
	Message string
	Err     bool
}

func SetStatusMessage(msg string, err bool) tea.Cmd {
	return func() tea.Msg {
		return StatusMsg{Message: msg, Err: err}
	}
}

func SetConfig(config config.Config) tea.Cmd {
	return func() tea.Msg { return config }
}

// ToggleMenuMsg opens or closes the compact navigation menu.
type ToggleMenuMsg struct {
	Open bool
}

func ToggleMenu(open bool) tea.Cmd {
	return func() tea.Msg { return ToggleMenuMsg{Open: open} }
}
