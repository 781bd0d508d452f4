package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-wise/internal/logger"
	"github.com/MKhiriev/go-wise/internal/service"
	"github.com/MKhiriev/go-wise/models"
)

const (
	pageKey     = "key"
	pageUnlock  = "unlock"
	pageAnalyze = "analyze"
	pageReport  = "report"
)

// TUI runs the interactive terminal client on top of the vault and analysis
// services.
type TUI struct {
	vault    service.ClientVaultService
	analysis service.ClientAnalysisService
	build    models.BuildInfo

	logger *logger.Logger
}

// New validates services and returns a TUI ready to [TUI.Run].
func New(services *service.ClientServices, build models.BuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil || services.VaultService == nil || services.AnalysisService == nil {
		return nil, errNoServices
	}

	return &TUI{
		vault:    services.VaultService,
		analysis: services.AnalysisService,
		build:    build,
		logger:   logger,
	}, nil
}

// Run blocks until the user quits or ctx is cancelled. The first screen is
// chosen from the vault state restored at startup.
func (t *TUI) Run(ctx context.Context) error {
	root := newRootModel(ctx, t.vault, t.analysis, t.build)

	t.logger.Info().Str("page", root.currentName).Msg("starting terminal UI")

	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	if result, ok := finalModel.(RootModel); ok && result.quitByUser {
		t.logger.Info().Msg("user quit")
	}
	return nil
}

func newRootModel(ctx context.Context, vault service.ClientVaultService, analysis service.ClientAnalysisService, build models.BuildInfo) RootModel {
	pages := map[string]page{
		pageKey:     NewKeyModel(ctx, vault),
		pageUnlock:  NewUnlockModel(ctx, vault),
		pageAnalyze: NewAnalyzeModel(ctx, vault, analysis),
		pageReport:  NewReportModel(analysis),
	}

	return NewRootModel(ctx, vault, pages, startPage(vault.CurrentState()), build)
}

// startPage maps the restored vault state to the first screen.
func startPage(state models.VaultState) string {
	switch state {
	case models.VaultLockedEncrypted:
		return pageUnlock
	case models.VaultSessionOnly, models.VaultUnlocked:
		return pageAnalyze
	default:
		return pageKey
	}
}
