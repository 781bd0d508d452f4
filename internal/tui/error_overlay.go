package tui

type errorOverlayModel struct {
	message string
}

func (m errorOverlayModel) View() string {
	content := "Error\n\n" + errorStyle.Render(m.message) + "\n\nenter / esc close"
	return overlayBoxStyle.Render(content)
}
