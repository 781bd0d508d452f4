package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-wise/internal/service"
	"github.com/MKhiriev/go-wise/models"
)

var writeClipboard = clipboard.WriteAll

// ReportModel shows the last analysis report: the verdict, the tactic list
// and the detail of the selected tactic.
type ReportModel struct {
	analysis service.ClientAnalysisService

	report    models.AnalysisReport
	hasReport bool
	idx       int
	detail    bool
	status    string
}

func NewReportModel(analysis service.ClientAnalysisService) *ReportModel {
	return &ReportModel{analysis: analysis}
}

func (m *ReportModel) Init() tea.Cmd {
	return nil
}

func (m *ReportModel) enter(status string) tea.Cmd {
	m.report, m.hasReport = m.analysis.LastReport()
	m.idx = 0
	m.detail = false
	m.status = status
	return nil
}

func (m *ReportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case copiedMsg:
		if msg.err != nil {
			return m, func() tea.Msg {
				return showErrorMsg{message: fmt.Sprintf("Could not copy to clipboard: %v", msg.err)}
			}
		}
		m.status = "Report summary copied to clipboard."
		return m, nil
	case tea.KeyMsg:
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m *ReportModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.detail {
		switch {
		case key.Matches(msg, keys.esc), key.Matches(msg, keys.enter):
			m.detail = false
		case key.Matches(msg, keys.copy):
			return m, m.copySummary()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.report.Tactics)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.enter):
		if m.idx < len(m.report.Tactics) {
			m.detail = true
		}
	case key.Matches(msg, keys.copy):
		return m, m.copySummary()
	case key.Matches(msg, keys.drop):
		return m, confirmForget
	case key.Matches(msg, keys.changeKey):
		return m, navigate(pageKey, "")
	case key.Matches(msg, keys.esc), key.Matches(msg, keys.again):
		return m, navigate(pageAnalyze, "")
	}
	return m, nil
}

func (m *ReportModel) View() string {
	if !m.hasReport {
		return renderPage("REPORT", "No report yet.", "esc: back")
	}

	if m.detail && m.idx < len(m.report.Tactics) {
		t := m.report.Tactics[m.idx]
		title := fmt.Sprintf("TACTIC %d OF %d", m.idx+1, len(m.report.Tactics))
		return renderPage(title, strings.TrimRight(renderTacticDetail(t), "\n"), "esc: back to list │ c: copy summary")
	}

	var b strings.Builder
	b.WriteString(renderReportHeader(m.report))
	b.WriteString("\n")
	b.WriteString(renderTacticList(m.report.Tactics, m.idx))
	if m.status != "" {
		b.WriteString("\n" + statusStyle.Render(m.status) + "\n")
	}

	return renderPage("REPORT", strings.TrimRight(b.String(), "\n"),
		"↑/↓: select │ enter: details │ c: copy summary │ f: forget key │ ctrl+k: change key │ n/esc: new analysis")
}

func (m *ReportModel) copySummary() tea.Cmd {
	summary := reportSummary(m.report)
	return func() tea.Msg {
		return copiedMsg{err: writeClipboard(summary)}
	}
}
