package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-wise/internal/service"
	"github.com/MKhiriev/go-wise/models"
)

type keyField int

const (
	fieldAPIKey keyField = iota
	fieldMode
	fieldPassphrase
)

// KeyModel is the API key screen. The user enters a key, chooses between
// session and secure storage and, for secure storage, a passphrase. Saving
// runs asynchronously and can be cancelled with esc.
type KeyModel struct {
	ctx   context.Context
	vault service.ClientVaultService

	keyInput        textinput.Model
	passphraseInput textinput.Model
	mode            models.StorageMode
	focus           keyField

	spinner spinner.Model
	cancel  context.CancelFunc
	status  string
	errMsg  string
}

func NewKeyModel(ctx context.Context, vault service.ClientVaultService) *KeyModel {
	keyInput := textinput.New()
	keyInput.Placeholder = "API key"
	keyInput.CharLimit = 512
	keyInput.Width = 48
	keyInput.EchoMode = textinput.EchoPassword
	keyInput.EchoCharacter = '*'

	passphraseInput := textinput.New()
	passphraseInput.Placeholder = "passphrase"
	passphraseInput.CharLimit = 256
	passphraseInput.Width = 48
	passphraseInput.EchoMode = textinput.EchoPassword
	passphraseInput.EchoCharacter = '*'

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return &KeyModel{
		ctx:             ctx,
		vault:           vault,
		keyInput:        keyInput,
		passphraseInput: passphraseInput,
		mode:            models.StorageSession,
		spinner:         s,
	}
}

func (m *KeyModel) Init() tea.Cmd {
	return nil
}

func (m *KeyModel) enter(status string) tea.Cmd {
	m.status = status
	m.errMsg = ""
	m.keyInput.Reset()
	m.passphraseInput.Reset()
	m.setFocus(fieldAPIKey)
	return textinput.Blink
}

func (m *KeyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case keySavedMsg:
		m.cancel = nil
		m.passphraseInput.Reset()
		if msg.err != nil {
			m.status = ""
			m.errMsg = service.UserMessage(msg.err)
			return m, nil
		}
		m.keyInput.Reset()
		if msg.mode == models.StorageSecure {
			return m, navigate(pageAnalyze, "API key encrypted and saved.")
		}
		return m, navigate(pageAnalyze, "API key saved for this session.")
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
		case key.Matches(msg, keys.esc):
			return m, m.back()
		case key.Matches(msg, keys.tab):
			m.focusNext(1)
			return m, nil
		case key.Matches(msg, keys.backtab):
			m.focusNext(-1)
			return m, nil
		case key.Matches(msg, keys.enter):
			return m, m.submit()
		case m.focus == fieldMode:
			if key.Matches(msg, keys.toggle) {
				m.toggleMode()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case fieldAPIKey:
		m.keyInput, cmd = m.keyInput.Update(msg)
	case fieldPassphrase:
		m.passphraseInput, cmd = m.passphraseInput.Update(msg)
	}
	return m, cmd
}

func (m *KeyModel) View() string {
	var b strings.Builder

	b.WriteString(describeState(m.vault.CurrentState()))
	b.WriteString("\n\n")
	b.WriteString("Field       │ Value\n")
	b.WriteString("────────────┼────────────────────────────────────────────\n")
	b.WriteString(m.cursor(fieldAPIKey) + "API key   │ [")
	b.WriteString(m.keyInput.View())
	b.WriteString("]\n")
	b.WriteString(m.cursor(fieldMode) + "Storage   │ ")
	b.WriteString(radio(m.mode == models.StorageSession) + " Session only  ")
	b.WriteString(radio(m.mode == models.StorageSecure) + " Secure (encrypted)\n")
	if m.mode == models.StorageSecure {
		b.WriteString(m.cursor(fieldPassphrase) + "Passphrase│ [")
		b.WriteString(m.passphraseInput.View())
		b.WriteString("]\n")
	}

	if m.busy() {
		b.WriteString("\n" + m.spinner.View() + " Saving...\n")
	} else {
		b.WriteString("\n[Save]\n")
	}

	writeFeedback(&b, m.status, m.errMsg)

	hotKeys := "tab: next field │ space: toggle storage │ enter: save │ esc: back"
	if m.busy() {
		hotKeys = "esc: cancel"
	}
	return renderPage("API KEY", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *KeyModel) busy() bool {
	return m.cancel != nil
}

func (m *KeyModel) submit() tea.Cmd {
	apiKey := m.keyInput.Value()
	mode := m.mode
	passphrase := ""
	if mode == models.StorageSecure {
		passphrase = m.passphraseInput.Value()
	}

	ctx, cancel := context.WithCancel(m.ctx)
	m.cancel = cancel
	m.errMsg = ""
	m.status = ""
	vault := m.vault

	save := func() tea.Msg {
		defer cancel()
		return keySavedMsg{mode: mode, err: vault.SaveKey(ctx, apiKey, mode, passphrase)}
	}
	return tea.Batch(m.spinner.Tick, save)
}

// back leaves the key screen when there is somewhere to go.
func (m *KeyModel) back() tea.Cmd {
	switch m.vault.CurrentState() {
	case models.VaultSessionOnly, models.VaultUnlocked:
		return navigate(pageAnalyze, "")
	case models.VaultLockedEncrypted:
		return navigate(pageUnlock, "")
	default:
		return nil
	}
}

func (m *KeyModel) toggleMode() {
	if m.mode == models.StorageSession {
		m.mode = models.StorageSecure
		return
	}
	m.mode = models.StorageSession
	m.passphraseInput.Reset()
}

func (m *KeyModel) fields() []keyField {
	if m.mode == models.StorageSecure {
		return []keyField{fieldAPIKey, fieldMode, fieldPassphrase}
	}
	return []keyField{fieldAPIKey, fieldMode}
}

func (m *KeyModel) focusNext(step int) {
	fields := m.fields()
	idx := 0
	for i, f := range fields {
		if f == m.focus {
			idx = i
		}
	}
	idx = (idx + step + len(fields)) % len(fields)
	m.setFocus(fields[idx])
}

func (m *KeyModel) setFocus(f keyField) {
	m.focus = f
	m.keyInput.Blur()
	m.passphraseInput.Blur()
	switch f {
	case fieldAPIKey:
		m.keyInput.Focus()
	case fieldPassphrase:
		m.passphraseInput.Focus()
	}
}

func (m *KeyModel) cursor(f keyField) string {
	if m.focus == f {
		return "> "
	}
	return "  "
}

func radio(selected bool) string {
	if selected {
		return "(•)"
	}
	return "( )"
}
