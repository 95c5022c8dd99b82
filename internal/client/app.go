// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"errors"

	"github.com/haneefojay/flashai-client/internal/config"
	"github.com/haneefojay/flashai-client/internal/logger"
	"github.com/haneefojay/flashai-client/internal/service"
	"github.com/haneefojay/flashai-client/internal/tui"
	"github.com/haneefojay/flashai-client/internal/workers"
)

// App ties the client services and the terminal UI into one process
// lifecycle: restore or open a session, keep the backend health probe
// running, and drive the main screen until the user quits or logs out.
type App struct {
	services   *service.ClientServices
	ui         *tui.TUI
	workersCfg config.ClientWorkers
	logger     *logger.Logger
}

func NewApp(services *service.ClientServices, ui *tui.TUI, workersCfg config.ClientWorkers, log *logger.Logger) (*App, error) {
	if services == nil {
		return nil, errors.New("client services are not set")
	}
	if ui == nil {
		return nil, errors.New("ui is not set")
	}

	return &App{
		services:   services,
		ui:         ui,
		workersCfg: workersCfg,
		logger:     log,
	}, nil
}

// Run implements [Client]. A logout from the main screen tears the session
// down and restarts the auth flow.
func (a *App) Run() error {
	ctx := context.Background()

	if !a.services.SessionService.Restore(ctx) {
		if err := a.ui.AuthFlow(ctx); err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			return err
		}
	}

	interval := a.workersCfg.HealthCheckInterval
	workers.New(workers.WorkerFunc(func() {
		a.services.HealthJob.Start(ctx, interval)
	})).Run()
	defer a.services.HealthJob.Stop()

	logout, err := a.ui.MainLoop(ctx)
	if err != nil {
		return err
	}
	if logout {
		if logoutErr := a.services.SessionService.Logout(ctx); logoutErr != nil {
			a.logger.Warn().Err(logoutErr).Msg("logout cleanup failed")
		}
		a.services.HealthJob.Stop()
		return a.Run()
	}

	return nil
}
