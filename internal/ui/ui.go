package ui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/sulayman/folio/internal/config"
	"github.com/sulayman/folio/internal/content"
	"github.com/sulayman/folio/internal/page"
)

var ErrUIExit = errors.New("ui error returned")

// BuildInfo is shown on the help page.
type BuildInfo struct {
	Version string
	Date    string
	Commit  string
}

type UI struct {
	program *tea.Program
	page    *page.Page
}

// New creates the ui for doc. The ui takes ownership of doc and closes it once the program exits.
func New(ctx context.Context, userConfig config.Config, doc *page.Page, portfolio content.Portfolio,
	buildInfo BuildInfo, configPath string, logPath string,
) *UI {
	zone.NewGlobal()

	return &UI{
		page: doc,
		program: tea.NewProgram(
			newRootModel(userConfig, doc, portfolio, buildInfo, configPath, logPath),
			tea.WithMouseCellMotion(),
			tea.WithAltScreen(),
			tea.WithContext(ctx),
			tea.WithFPS(userConfig.FPS)),
	}
}

func (t UI) Run() error {
	defer t.page.Close()

	if _, err := t.program.Run(); err != nil {
		return errors.Join(err, ErrUIExit)
	}

	return nil
}

func (t UI) Send(msg tea.Msg) {
	t.program.Send(msg)
}
