package main

import (
	"context"
	"errors"
	"log/slog"
	"path"

	"github.com/adrg/xdg"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sulayman/folio/internal/config"
	"github.com/sulayman/folio/internal/content"
	"github.com/sulayman/folio/internal/page"
	"github.com/sulayman/folio/internal/ui"
	"golang.org/x/sync/errgroup"
)

type UI interface {
	Send(msg tea.Msg)
	Run() error
}

// App is the main application container. Very little logic is contained within this struct. Its mostly
// responsible for routing messages between different systems.
type App struct {
	ui            UI
	config        config.Config
	page          *page.Page
	portfolio     content.Portfolio
	configUpdates chan config.Config
}

// NewApp returns a new application instance. To actually start the app you must call Start().
func NewApp(conf config.Config, doc *page.Page, portfolio content.Portfolio, configUpdates chan config.Config) *App {
	return &App{
		config:        conf,
		page:          doc,
		portfolio:     portfolio,
		configUpdates: configUpdates,
	}
}

// Start runs the ui until it exits, forwarding config file changes to it in the meantime.
func (app *App) Start(ctx context.Context, configPath string) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	userInterface := app.createUI(ctx, configPath)
	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		defer cancel()

		if err := userInterface.Run(); err != nil {
			slog.Error("Failed to run UI", slog.String("error", err.Error()))

			return errors.Join(err, errApp)
		}

		return nil
	})

	group.Go(func() error {
		app.configSender(groupCtx)

		return nil
	})

	return group.Wait()
}

// configSender forwards reloaded configs to the ui.
func (app *App) configSender(ctx context.Context) {
	for {
		select {
		case conf := <-app.configUpdates:
			app.config = conf
			app.ui.Send(conf)
		case <-ctx.Done():
			return
		}
	}
}

func (app *App) createUI(ctx context.Context, configPath string) UI {
	if app.ui == nil {
		app.ui = ui.New(
			ctx,
			app.config,
			app.page,
			app.portfolio,
			ui.BuildInfo{Version: BuildVersion, Date: BuildDate, Commit: BuildCommit},
			configPath,
			path.Join(xdg.ConfigHome, config.ConfigDirName, config.DefaultLogName))
	}

	return app.ui
}
