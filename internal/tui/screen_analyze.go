package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-wise/internal/app"
	"github.com/MKhiriev/go-wise/internal/service"
	"github.com/MKhiriev/go-wise/models"
)

type analyzeField int

const (
	fieldFilePath analyzeField = iota
	fieldText
)

// AnalyzeModel collects a document path or pasted text and submits it for
// analysis with the vault's API key.
type AnalyzeModel struct {
	ctx      context.Context
	vault    service.ClientVaultService
	analysis service.ClientAnalysisService

	pathInput textinput.Model
	textArea  textarea.Model
	focus     analyzeField

	spinner  spinner.Model
	cancel   context.CancelFunc
	checking bool
	backend  string
	status   string
	errMsg   string
}

func NewAnalyzeModel(ctx context.Context, vault service.ClientVaultService, analysis service.ClientAnalysisService) *AnalyzeModel {
	pathInput := textinput.New()
	pathInput.Placeholder = "path to .txt, .md or .docx"
	pathInput.CharLimit = 1024
	pathInput.Width = 56

	ta := textarea.New()
	ta.Placeholder = "...or paste the text to analyze"
	ta.CharLimit = 0
	ta.SetWidth(60)
	ta.SetHeight(8)

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return &AnalyzeModel{
		ctx:       ctx,
		vault:     vault,
		analysis:  analysis,
		pathInput: pathInput,
		textArea:  ta,
		spinner:   s,
	}
}

func (m *AnalyzeModel) Init() tea.Cmd {
	return nil
}

func (m *AnalyzeModel) enter(status string) tea.Cmd {
	m.status = status
	m.errMsg = ""
	m.setFocus(m.focus)
	return textinput.Blink
}

func (m *AnalyzeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case analysisDoneMsg:
		m.cancel = nil
		m.status = ""
		if msg.err != nil {
			return m, m.analysisFailed(msg.err)
		}
		return m, navigate(pageReport, "")
	case backendCheckedMsg:
		m.checking = false
		if msg.err != nil {
			m.backend = ""
			m.errMsg = service.UserMessage(msg.err)
			return m, nil
		}
		m.backend = msg.health.Message
		return m, nil
	case spinner.TickMsg:
		if !m.busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		if m.busy() {
			if key.Matches(msg, keys.esc) && m.cancel != nil {
				m.cancel()
				m.status = "Cancelling..."
			}
			return m, nil
		}

		switch {
		case key.Matches(msg, keys.tab, keys.backtab):
			m.setFocus(1 - m.focus)
			return m, nil
		case key.Matches(msg, keys.submit):
			return m, m.submit()
		case key.Matches(msg, keys.health):
			return m, m.checkBackend()
		case key.Matches(msg, keys.changeKey):
			return m, navigate(pageKey, "")
		case key.Matches(msg, keys.forget):
			return m, confirmForget
		case key.Matches(msg, keys.report):
			if _, ok := m.analysis.LastReport(); ok {
				return m, navigate(pageReport, "")
			}
			m.status = "No report yet."
			return m, nil
		case m.focus == fieldFilePath && key.Matches(msg, keys.enter):
			return m, m.submit()
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case fieldFilePath:
		m.pathInput, cmd = m.pathInput.Update(msg)
	case fieldText:
		m.textArea, cmd = m.textArea.Update(msg)
	}
	return m, cmd
}

func (m *AnalyzeModel) View() string {
	var b strings.Builder

	b.WriteString(describeState(m.vault.CurrentState()))
	if m.backend != "" {
		b.WriteString("\nBackend: ")
		b.WriteString(m.backend)
	}
	b.WriteString("\n\n")

	b.WriteString(m.cursor(fieldFilePath) + "File │ [")
	b.WriteString(m.pathInput.View())
	b.WriteString("]\n\n")
	b.WriteString(m.cursor(fieldText) + "Text\n")
	b.WriteString(m.textArea.View())
	b.WriteString("\n")

	switch {
	case m.cancel != nil:
		b.WriteString("\n" + m.spinner.View() + " Analyzing...\n")
	case m.checking:
		b.WriteString("\n" + m.spinner.View() + " Checking backend...\n")
	default:
		b.WriteString("\n[Analyze]\n")
	}

	writeFeedback(&b, m.status, m.errMsg)

	hotKeys := "tab: file/text │ ctrl+s: analyze │ ctrl+o: last report │ ctrl+b: check backend │ ctrl+k: change key │ ctrl+f: forget key"
	if m.busy() {
		hotKeys = "esc: cancel"
	}
	return renderPage("ANALYZE", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *AnalyzeModel) busy() bool {
	return m.cancel != nil || m.checking
}

func (m *AnalyzeModel) submit() tea.Cmd {
	input := models.AnalysisInput{
		FilePath: m.pathInput.Value(),
		Text:     m.textArea.Value(),
	}

	ctx, cancel := context.WithCancel(m.ctx)
	m.cancel = cancel
	m.errMsg = ""
	m.status = ""
	analysis := m.analysis

	analyze := func() tea.Msg {
		defer cancel()
		report, err := analysis.Analyze(ctx, input)
		return analysisDoneMsg{report: report, err: err}
	}
	return tea.Batch(m.spinner.Tick, analyze)
}

func (m *AnalyzeModel) checkBackend() tea.Cmd {
	m.checking = true
	m.errMsg = ""
	ctx := m.ctx
	analysis := m.analysis

	check := func() tea.Msg {
		health, err := analysis.CheckBackend(ctx)
		return backendCheckedMsg{health: health, err: err}
	}
	return tea.Batch(m.spinner.Tick, check)
}

// analysisFailed routes key problems to the screen that can fix them.
func (m *AnalyzeModel) analysisFailed(err error) tea.Cmd {
	switch {
	case errors.Is(err, service.ErrVaultLocked):
		return navigate(pageUnlock, app.MsgVaultLocked)
	case errors.Is(err, service.ErrNoAPIKey):
		return navigate(pageKey, app.MsgNoAPIKey)
	}
	m.errMsg = service.UserMessage(err)
	return nil
}

func (m *AnalyzeModel) setFocus(f analyzeField) {
	m.focus = f
	m.pathInput.Blur()
	m.textArea.Blur()
	if f == fieldFilePath {
		m.pathInput.Focus()
		return
	}
	m.textArea.Focus()
}

func (m *AnalyzeModel) cursor(f analyzeField) string {
	if m.focus == f {
		return "> "
	}
	return "  "
}
