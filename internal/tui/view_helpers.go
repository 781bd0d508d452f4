package tui

import (
	"strings"

	"github.com/MKhiriev/go-wise/models"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		lines := strings.Split(data, "\n")
		for _, line := range lines {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("  f1: about │ ctrl+c: quit"))

	return appStyle.Render(b.String())
}

// writeFeedback appends the status and error lines shared by every form.
func writeFeedback(b *strings.Builder, status, errMsg string) {
	if status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(status))
		b.WriteString("\n")
	}
	if errMsg != "" {
		b.WriteString("\nError: ")
		b.WriteString(errorStyle.Render(errMsg))
		b.WriteString("\n")
	}
}

func describeState(state models.VaultState) string {
	switch state {
	case models.VaultSessionOnly:
		return "API key stored for this session only"
	case models.VaultLockedEncrypted:
		return "API key encrypted, passphrase required"
	case models.VaultUnlocked:
		return "API key unlocked"
	default:
		return "No API key stored"
	}
}

func valueOrDash(v *string) string {
	if v == nil || *v == "" {
		return "-"
	}
	return *v
}

func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
