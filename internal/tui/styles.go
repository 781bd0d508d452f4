package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-wise/models"
)

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	statusStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)

	blatantStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	borderlineStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	legitimateStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

func intentStyle(intent string) lipgloss.Style {
	switch intent {
	case models.IntentBlatant:
		return blatantStyle
	case models.IntentBorderline:
		return borderlineStyle
	case models.IntentLegitimate:
		return legitimateStyle
	default:
		return lipgloss.NewStyle()
	}
}
