package models

// Tactic intent classifications returned by the analysis backend.
const (
	IntentLegitimate = "Legitimate Use"
	IntentBorderline = "Borderline Manipulation"
	IntentBlatant    = "Blatant Manipulation"
)

// AnalysisInput is what the user submits for analysis. Exactly one of
// FilePath or Text is expected; FilePath wins when both are set.
type AnalysisInput struct {
	FilePath string
	Text     string
}

// AnalysisUpload is the prepared multipart payload sent to the backend.
type AnalysisUpload struct {
	FileName    string
	ContentType string
	Content     []byte
	APIKey      string
}

// AnalysisReport is the manipulation-tactics report returned by
// POST /api/analyze.
type AnalysisReport struct {
	Metadata               *ReportMetadata         `json:"metadata"`
	ExecutiveSummary       *ExecutiveSummary       `json:"executive_summary,omitempty"`
	IntentBreakdown        []IntentBreakdownItem   `json:"intentBreakdown,omitempty"`
	OverallAssessment      *OverallAssessment      `json:"overall_assessment,omitempty"`
	Tactics                []Tactic                `json:"tactics"`
	DetailedReportSections *DetailedReportSections `json:"detailed_report_sections,omitempty"`
	ManipulationByCategory []ManipulationCategory  `json:"manipulationByCategory,omitempty"`
}

// ReportMetadata describes the analysed input and the overall verdict.
type ReportMetadata struct {
	Author               *string `json:"author,omitempty"`
	Date                 string  `json:"date,omitempty"`
	OverallIntent        string  `json:"overallIntent"`
	ConfidenceScore      *int    `json:"confidenceScore,omitempty"`
	TacticDensity        string  `json:"tacticDensity,omitempty"`
	InputDataDescription string  `json:"input_data_description,omitempty"`
}

type ExecutiveSummary struct {
	PrimaryIntent   string `json:"primary_intent"`
	ConfidenceScore string `json:"confidence_score"`
	TacticDensity   string `json:"tactic_density"`
	DominantTactics string `json:"dominant_tactics"`
	StructuralBias  string `json:"structural_bias"`
}

type IntentBreakdownItem struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type ManipulationCategory struct {
	Name       string `json:"name"`
	Blatant    int    `json:"blatant"`
	Borderline int    `json:"borderline"`
	Legitimate int    `json:"legitimate,omitempty"`
}

type OverallAssessment struct {
	SummaryText         string `json:"summary_text"`
	ConfidenceScoreNote string `json:"confidence_score_note"`
}

// Tactic is a single persuasion or manipulation technique found in the text.
type Tactic struct {
	ID                 int     `json:"id"`
	Name               string  `json:"name"`
	Category           string  `json:"category"`
	Intent             string  `json:"intent"`
	Quote              string  `json:"quote"`
	Explanation        string  `json:"explanation,omitempty"`
	ResistanceStrategy string  `json:"resistanceStrategy"`
	Sources            *string `json:"sources,omitempty"`
}

type DetailedReportSections struct {
	ConfidenceLevelsDiscussion          string `json:"confidence_levels_discussion"`
	ContextHandling                     string `json:"context_handling"`
	PersuasionVsManipulationDistinction string `json:"persuasion_vs_manipulation_distinction"`
	ManipulativeElementsSummary         string `json:"manipulative_elements_summary"`
}

// CountByIntent returns how many tactics carry the given intent.
func (r AnalysisReport) CountByIntent(intent string) int {
	n := 0
	for _, t := range r.Tactics {
		if t.Intent == intent {
			n++
		}
	}
	return n
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the FastAPI-style error body: {"detail": "..."}.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
