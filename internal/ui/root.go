package ui

import (
	"log/slog"
	"math"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/sulayman/folio/internal/config"
	"github.com/sulayman/folio/internal/content"
	"github.com/sulayman/folio/internal/page"
	"github.com/sulayman/folio/internal/section"
	"github.com/sulayman/folio/internal/ui/command"
	"github.com/sulayman/folio/internal/ui/component"
	"github.com/sulayman/folio/internal/ui/input"
	"github.com/sulayman/folio/internal/ui/model"
	"github.com/sulayman/folio/internal/ui/pages"
)

// wheelRows is how many rows a single mouse wheel notch scrolls.
const wheelRows = 3

// rootModel is the top level model for the ui side of the app.
type rootModel struct {
	config      config.Config
	page        *page.Page
	viewState   model.ViewState
	navModel    *component.NavModel
	menuModel   *component.MenuModel
	docModel    *component.DocumentModel
	statsModel  *component.StatsModel
	statusModel *component.StatusBarModel
	helpModel   pages.Help
	framing     bool
}

func newRootModel(userConfig config.Config, doc *page.Page, portfolio content.Portfolio, buildInfo BuildInfo,
	configPath string, logPath string,
) rootModel {
	registry := doc.Registry()
	stats := component.NewStatsModel(portfolio.Stats, userConfig.StatTick())
	app := rootModel{
		config:      userConfig,
		page:        doc,
		navModel:    component.NewNavModel(registry, portfolio.Name),
		menuModel:   component.NewMenuModel(registry),
		statsModel:  stats,
		docModel:    component.NewDocumentModel(registry, portfolio, stats),
		statusModel: component.NewStatusBarModel(buildInfo.Version, registry, doc),
		helpModel:   pages.NewHelp(buildInfo.Version, buildInfo.Date, buildInfo.Commit, configPath, logPath),
	}

	doc.SubscribeState(app.navModel.SetState)
	doc.SubscribeState(app.menuModel.SetState)
	doc.SubscribeState(app.statusModel.SetState)

	return app
}

func (m rootModel) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("folio"),
		m.navModel.Init(),
		m.menuModel.Init(),
		m.docModel.Init(),
		m.statsModel.Init(),
		m.statusModel.Init(),
		m.helpModel.Init(),
	)
}

func (m rootModel) Update(inMsg tea.Msg) (tea.Model, tea.Cmd) {
	logMsg(inMsg)

	if !m.isInitialized() && !acceptedBeforeResize(inMsg) {
		return m, nil
	}

	switch msg := inMsg.(type) {
	case tea.WindowSizeMsg:
		m.viewState.Width = msg.Width
		m.viewState.Height = msg.Height
		m.relayout()

		return m, command.SetViewState(m.viewState)
	case model.ViewState:
		m.viewState = msg
	case config.Config:
		return m.applyConfig(msg)
	case command.NavigateMsg:
		return m.navigate(msg.Section)
	case command.FrameMsg:
		if m.page.Tick() {
			return m, command.Frame(m.config.FPS)
		}
		m.framing = false

		return m, nil
	case command.ToggleMenuMsg:
		m.viewState.MenuOpen = msg.Open && m.viewState.Compact

		return m, command.SetViewState(m.viewState)
	case tea.MouseMsg:
		if m.viewState.Page != model.PageMain {
			break
		}

		switch msg.Button { //nolint:exhaustive
		case tea.MouseButtonWheelUp:
			m.page.ScrollBy(-wheelRows * m.config.RowHeight)
		case tea.MouseButtonWheelDown:
			m.page.ScrollBy(wheelRows * m.config.RowHeight)
		}
	case tea.KeyMsg:
		if next, cmd, handled := m.handleKey(msg); handled {
			return next, cmd
		}
	}

	return m.propagate(inMsg)
}

func (m rootModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	switch {
	case key.Matches(msg, input.Default.Quit):
		return m, tea.Quit, true
	case key.Matches(msg, input.Default.Help):
		if m.viewState.Page == model.PageHelp {
			m.viewState.Page = model.PageMain
		} else {
			m.viewState.Page = model.PageHelp
		}

		return m, command.SetViewState(m.viewState), true
	}

	if m.viewState.Page != model.PageMain {
		return m, nil, false
	}

	viewport := m.page.ViewportHeight()
	active := m.page.Active()
	registry := m.page.Registry()

	switch {
	case key.Matches(msg, input.Default.Back):
		if m.viewState.MenuOpen {
			return m, command.ToggleMenu(false), true
		}
	case key.Matches(msg, input.Default.Menu):
		if m.viewState.Compact {
			return m, command.ToggleMenu(!m.viewState.MenuOpen), true
		}
	case key.Matches(msg, input.Default.Up):
		m.page.ScrollBy(-m.config.RowHeight)
	case key.Matches(msg, input.Default.Down):
		m.page.ScrollBy(m.config.RowHeight)
	case key.Matches(msg, input.Default.PageUp):
		m.page.ScrollBy(-viewport)
	case key.Matches(msg, input.Default.PageDown):
		m.page.ScrollBy(viewport)
	case key.Matches(msg, input.Default.Top):
		m.page.ScrollTo(0)
	case key.Matches(msg, input.Default.Bottom):
		m.page.ScrollTo(m.page.MaxOffset())
	case key.Matches(msg, input.Default.Accept):
		if active == registry.First() {
			return m, command.Navigate(registry.Next(active)), true
		}
	case key.Matches(msg, input.Default.NextTab):
		return m, command.Navigate(registry.Next(active)), true
	case key.Matches(msg, input.Default.PrevTab):
		return m, command.Navigate(registry.Prev(active)), true
	case key.Matches(msg, input.Default.Jump):
		if sect, found := registry.ByKey(msg.String()); found {
			return m, tea.Batch(command.Navigate(sect.ID), command.ToggleMenu(false)), true
		}
	default:
		return m, nil, false
	}

	return m, nil, true
}

// navigate starts scrolling towards the section, running the frame loop when the move is
// animated.
func (m rootModel) navigate(id section.ID) (tea.Model, tea.Cmd) {
	if !m.page.Navigate(id) {
		slog.Debug("Navigation target missing", slog.String("section", string(id)))

		return m, nil
	}

	if !m.page.Animating() || m.framing {
		return m, nil
	}

	m.framing = true

	return m, command.Frame(m.config.FPS)
}

func (m rootModel) applyConfig(userConfig config.Config) (tea.Model, tea.Cmd) {
	if errValidate := userConfig.Validate(); errValidate != nil {
		return m, command.SetStatusMessage(errValidate.Error(), true)
	}

	if errConfigure := m.page.Configure(userConfig.Tuning()); errConfigure != nil {
		return m, command.SetStatusMessage(errConfigure.Error(), true)
	}

	m.config = userConfig
	m.statsModel.SetInterval(userConfig.StatTick())
	if !m.isInitialized() {
		return m, nil
	}

	m.relayout()

	return m, tea.Batch(command.SetViewState(m.viewState), command.SetStatusMessage("Config reloaded", false))
}

// relayout recomputes the screen regions and the document geometry for the current window.
func (m *rootModel) relayout() {
	m.viewState.Compact = m.viewState.Width < m.config.CompactWidth
	if !m.viewState.Compact {
		m.viewState.MenuOpen = false
	}

	m.viewState.Header = m.navModel.Height()
	m.viewState.Footer = 1
	m.viewState.Body = max(1, m.viewState.Height-m.viewState.Header-m.viewState.Footer)

	layout := m.docModel.Relayout(m.viewState.Width, m.viewState.Body, m.config.RowHeight)
	m.page.SetLayout(layout, float64(m.viewState.Body)*m.config.RowHeight)
}

func (m rootModel) View() string {
	if !m.isInitialized() {
		return ""
	}

	header := m.navModel.View()
	footer := m.statusModel.View()

	var body string
	switch m.viewState.Page {
	case model.PageHelp:
		body = m.helpModel.View()
	default:
		offsetRows := int(math.Round(m.page.Offset() / m.config.RowHeight))
		body = m.docModel.Render(offsetRows, m.page)
		if m.menuModel.Open() {
			body = overlayTopRight(body, m.menuModel.View(), m.viewState.Width)
		}
	}

	body = lipgloss.NewStyle().Height(m.viewState.Body).MaxHeight(m.viewState.Body).Render(body)

	return zone.Scan(lipgloss.JoinVertical(lipgloss.Left, header, body, footer))
}

// acceptedBeforeResize lists the messages that must not be dropped while the window size is unknown.
func acceptedBeforeResize(msg tea.Msg) bool {
	switch msg.(type) {
	case tea.WindowSizeMsg, command.StatTickMsg, config.Config:
		return true
	default:
		return false
	}
}

func (m rootModel) isInitialized() bool {
	return m.viewState.Height != 0 && m.viewState.Width != 0
}

func (m rootModel) propagate(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 6)

	m.navModel, cmds[0] = m.navModel.Update(msg)
	m.menuModel, cmds[1] = m.menuModel.Update(msg)
	m.docModel, cmds[2] = m.docModel.Update(msg)
	m.statsModel, cmds[3] = m.statsModel.Update(msg)
	m.statusModel, cmds[4] = m.statusModel.Update(msg)
	m.helpModel, cmds[5] = m.helpModel.Update(msg)

	return m, tea.Batch(cmds...)
}

// logMsg is useful for debugging events. Tail the log file ~/.config/folio/folio.log
func logMsg(inMsg tea.Msg) {
	// Filter out very noisy stuff
	switch inMsg.(type) {
	case command.FrameMsg:
	case command.StatTickMsg:
		break
	case tea.MouseMsg:
		break
	default:
		slog.Debug("tea.Msg", slog.Any("msg", inMsg))
	}
}
