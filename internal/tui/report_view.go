package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-wise/models"
)

func renderReportHeader(r models.AnalysisReport) string {
	var b strings.Builder

	if md := r.Metadata; md != nil {
		b.WriteString("Overall intent │ ")
		b.WriteString(intentStyle(md.OverallIntent).Render(md.OverallIntent))
		if md.ConfidenceScore != nil {
			fmt.Fprintf(&b, " (confidence %d%%)", *md.ConfidenceScore)
		}
		b.WriteString("\n")
		if md.TacticDensity != "" {
			b.WriteString("Density        │ " + md.TacticDensity + "\n")
		}
		if md.Date != "" {
			b.WriteString("Date           │ " + md.Date + "\n")
		}
		if md.InputDataDescription != "" {
			b.WriteString("Input          │ " + md.InputDataDescription + "\n")
		}
	}

	fmt.Fprintf(&b, "Tactics        │ %d (blatant %d, borderline %d, legitimate %d)\n",
		len(r.Tactics),
		r.CountByIntent(models.IntentBlatant),
		r.CountByIntent(models.IntentBorderline),
		r.CountByIntent(models.IntentLegitimate),
	)

	if es := r.ExecutiveSummary; es != nil {
		if es.DominantTactics != "" {
			b.WriteString("Dominant       │ " + es.DominantTactics + "\n")
		}
		if es.StructuralBias != "" {
			b.WriteString("Bias           │ " + es.StructuralBias + "\n")
		}
	}

	return b.String()
}

func renderTacticList(tactics []models.Tactic, idx int) string {
	if len(tactics) == 0 {
		return "No tactics found.\n"
	}

	var b strings.Builder
	b.WriteString("  #  │ Intent                  │ Tactic\n")
	b.WriteString("─────┼─────────────────────────┼──────────────────────────────\n")
	for i, t := range tactics {
		cursor := " "
		if i == idx {
			cursor = ">"
		}
		intent := intentStyle(t.Intent).Render(fmt.Sprintf("%-23s", fitText(t.Intent, 23)))
		fmt.Fprintf(&b, "%s %-3d│ %s │ %s\n", cursor, i+1, intent, fitText(t.Name+" ("+t.Category+")", 48))
	}
	return b.String()
}

func renderTacticDetail(t models.Tactic) string {
	var b strings.Builder

	b.WriteString("Tactic      │ " + t.Name + "\n")
	b.WriteString("Category    │ " + t.Category + "\n")
	b.WriteString("Intent      │ " + intentStyle(t.Intent).Render(t.Intent) + "\n\n")
	b.WriteString("Quote\n  \"" + t.Quote + "\"\n\n")
	if t.Explanation != "" {
		b.WriteString("Explanation\n  " + t.Explanation + "\n\n")
	}
	b.WriteString("How to resist\n  " + t.ResistanceStrategy + "\n")
	if t.Sources != nil && *t.Sources != "" {
		b.WriteString("\nSources     │ " + valueOrDash(t.Sources) + "\n")
	}

	return b.String()
}

// reportSummary is the plain-text form copied to the clipboard.
func reportSummary(r models.AnalysisReport) string {
	var b strings.Builder

	b.WriteString("WISE analysis report\n")
	if md := r.Metadata; md != nil {
		b.WriteString("Overall intent: " + md.OverallIntent)
		if md.ConfidenceScore != nil {
			fmt.Fprintf(&b, " (confidence %d%%)", *md.ConfidenceScore)
		}
		b.WriteString("\n")
		if md.Date != "" {
			b.WriteString("Date: " + md.Date + "\n")
		}
		if md.InputDataDescription != "" {
			b.WriteString("Input: " + md.InputDataDescription + "\n")
		}
	}
	fmt.Fprintf(&b, "Tactics: %d (blatant %d, borderline %d, legitimate %d)\n",
		len(r.Tactics),
		r.CountByIntent(models.IntentBlatant),
		r.CountByIntent(models.IntentBorderline),
		r.CountByIntent(models.IntentLegitimate),
	)
	if oa := r.OverallAssessment; oa != nil && oa.SummaryText != "" {
		b.WriteString("\n" + oa.SummaryText + "\n")
	}

	for i, t := range r.Tactics {
		fmt.Fprintf(&b, "\n%d. %s [%s] - %s\n", i+1, t.Name, t.Category, t.Intent)
		fmt.Fprintf(&b, "   \"%s\"\n", t.Quote)
		if t.ResistanceStrategy != "" {
			b.WriteString("   Resistance: " + t.ResistanceStrategy + "\n")
		}
	}

	return strings.TrimRight(b.String(), "\n")
}
