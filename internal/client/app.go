package client

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-wise/internal/logger"
	"github.com/MKhiriev/go-wise/internal/service"
)

// App ties the restored vault to the terminal UI.
type App struct {
	services *service.ClientServices
	ui       UI

	logger *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, logger *logger.Logger) (*App, error) {
	if services == nil || services.VaultService == nil || ui == nil {
		return nil, errMissingDependency
	}

	return &App{
		services: services,
		ui:       ui,
		logger:   logger,
	}, nil
}

// Run restores the vault and blocks in the UI until the user quits or a
// termination signal arrives.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	state, err := a.services.VaultService.Restore(ctx)
	if err != nil {
		return fmt.Errorf("restore vault: %w", err)
	}
	a.logger.Info().Str("state", state.String()).Msg("vault restored")

	if err = a.ui.Run(ctx); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}

	a.logger.Info().Msg("client stopped")
	return nil
}
