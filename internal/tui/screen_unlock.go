package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-wise/internal/service"
)

// UnlockModel prompts for the passphrase of the stored encrypted key.
type UnlockModel struct {
	ctx   context.Context
	vault service.ClientVaultService

	input   textinput.Model
	spinner spinner.Model
	cancel  context.CancelFunc
	status  string
	errMsg  string
}

func NewUnlockModel(ctx context.Context, vault service.ClientVaultService) *UnlockModel {
	input := textinput.New()
	input.Placeholder = "passphrase"
	input.CharLimit = 256
	input.Width = 48
	input.EchoMode = textinput.EchoPassword
	input.EchoCharacter = '*'

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return &UnlockModel{
		ctx:     ctx,
		vault:   vault,
		input:   input,
		spinner: s,
	}
}

func (m *UnlockModel) Init() tea.Cmd {
	return nil
}

func (m *UnlockModel) enter(status string) tea.Cmd {
	m.status = status
	m.errMsg = ""
	m.input.Reset()
	m.input.Focus()
	return textinput.Blink
}

func (m *UnlockModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case unlockedMsg:
		m.cancel = nil
		m.input.Reset()
		if msg.err != nil {
			m.status = ""
			m.errMsg = service.UserMessage(msg.err)
			return m, nil
		}
		return m, navigate(pageAnalyze, "API key unlocked.")
	case spinner.TickMsg:
		if !m.busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		if m.busy() {
			if key.Matches(msg, keys.esc) {
				m.cancel()
				m.status = "Cancelling..."
			}
			return m, nil
		}

		switch {
		case key.Matches(msg, keys.enter):
			return m, m.submit()
		case key.Matches(msg, keys.reset):
			return m, confirmForget
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *UnlockModel) View() string {
	var b strings.Builder

	b.WriteString("Your API key is stored encrypted.\n")
	b.WriteString("Enter your passphrase to unlock it for this session.\n\n")
	b.WriteString("Passphrase │ [")
	b.WriteString(m.input.View())
	b.WriteString("]\n")

	if m.busy() {
		b.WriteString("\n" + m.spinner.View() + " Decrypting...\n")
	} else {
		b.WriteString("\n[Unlock]\n")
	}

	writeFeedback(&b, m.status, m.errMsg)

	hotKeys := "enter: unlock │ ctrl+r: forget key and start over"
	if m.busy() {
		hotKeys = "esc: cancel"
	}
	return renderPage("UNLOCK", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *UnlockModel) busy() bool {
	return m.cancel != nil
}

func (m *UnlockModel) submit() tea.Cmd {
	passphrase := m.input.Value()

	ctx, cancel := context.WithCancel(m.ctx)
	m.cancel = cancel
	m.errMsg = ""
	m.status = ""
	vault := m.vault

	unlock := func() tea.Msg {
		defer cancel()
		_, err := vault.Unlock(ctx, passphrase)
		return unlockedMsg{err: err}
	}
	return tea.Batch(m.spinner.Tick, unlock)
}
