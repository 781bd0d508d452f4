package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-wise/internal/service"
	"github.com/MKhiriev/go-wise/models"
)

// page is a screen managed by [RootModel]. enter is called every time the
// page becomes active.
type page interface {
	tea.Model
	enter(status string) tea.Cmd
}

// RootModel is a TUI router:
// 1) keeps active page
// 2) handles global quit, the about window and the forget confirmation
// 3) handles NavigateTo messages
// 4) delegates all other messages to the active page
type RootModel struct {
	ctx   context.Context
	vault service.ClientVaultService

	pages       map[string]page
	current     page
	currentName string
	build       models.BuildInfo

	confirm    *confirmModel
	overlay    *errorOverlayModel
	forgetting bool

	showBuildInfo bool
	quitByUser    bool
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(ctx context.Context, vault service.ClientVaultService, pages map[string]page, startPage string, build models.BuildInfo) RootModel {
	return RootModel{
		ctx:         ctx,
		vault:       vault,
		pages:       pages,
		current:     pages[startPage],
		currentName: startPage,
		build:       build,
	}
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.enter("")
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(keyMsg, keys.quit) {
			r.quitByUser = true
			return r, tea.Quit
		}

		switch {
		case r.overlay != nil:
			if key.Matches(keyMsg, keys.enter, keys.esc) {
				r.overlay = nil
			}
			return r, nil
		case r.confirm != nil:
			return r.updateConfirm(keyMsg)
		case key.Matches(keyMsg, keys.about):
			r.showBuildInfo = !r.showBuildInfo
			return r, nil
		case r.showBuildInfo:
			if key.Matches(keyMsg, keys.esc) {
				r.showBuildInfo = false
			}
			return r, nil
		}
	}

	switch msg := msg.(type) {
	case NavigateTo:
		return r.navigate(msg.Page, msg.Status)
	case confirmForgetMsg:
		if !r.forgetting {
			r.confirm = &confirmModel{message: "Forget the stored API key?"}
		}
		return r, nil
	case forgottenMsg:
		r.forgetting = false
		if msg.err != nil {
			r.overlay = &errorOverlayModel{message: service.UserMessage(msg.err)}
			return r, nil
		}
		return r.navigate(pageKey, "Stored API key removed.")
	case showErrorMsg:
		r.overlay = &errorOverlayModel{message: msg.message}
		return r, nil
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	if p, ok := updated.(page); ok {
		r.current = p
	}
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.build)
	}
	if r.current == nil {
		return renderPage("WISE", "", "")
	}

	view := r.current.View()
	switch {
	case r.overlay != nil:
		return lipgloss.JoinVertical(lipgloss.Left, view, r.overlay.View())
	case r.confirm != nil:
		return lipgloss.JoinVertical(lipgloss.Left, view, r.confirm.View())
	}
	return view
}

func (r RootModel) updateConfirm(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.yes):
		r.confirm = nil
		r.forgetting = true
		return r, cmdForget(r.ctx, r.vault)
	case key.Matches(keyMsg, keys.no):
		r.confirm = nil
	}
	return r, nil
}

func (r RootModel) navigate(name, status string) (tea.Model, tea.Cmd) {
	next, exists := r.pages[name]
	if !exists {
		return r, nil
	}

	r.showBuildInfo = false
	r.current = next
	r.currentName = name
	return r, next.enter(status)
}
