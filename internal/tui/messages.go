package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-wise/internal/service"
	"github.com/MKhiriev/go-wise/models"
)

// NavigateTo switches the active page. Status, if set, is shown on the
// target page.
type NavigateTo struct {
	Page   string
	Status string
}

type keySavedMsg struct {
	mode models.StorageMode
	err  error
}

type unlockedMsg struct {
	err error
}

type forgottenMsg struct {
	err error
}

type analysisDoneMsg struct {
	report models.AnalysisReport
	err    error
}

type backendCheckedMsg struct {
	health models.HealthResponse
	err    error
}

type copiedMsg struct {
	err error
}

type confirmForgetMsg struct{}

type showErrorMsg struct {
	message string
}

func navigate(page, status string) tea.Cmd {
	return func() tea.Msg {
		return NavigateTo{Page: page, Status: status}
	}
}

func confirmForget() tea.Msg {
	return confirmForgetMsg{}
}

func cmdForget(ctx context.Context, vault service.ClientVaultService) tea.Cmd {
	return func() tea.Msg {
		return forgottenMsg{err: vault.Forget(ctx)}
	}
}
