package service

import (
	"archive/zip"
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/MKhiriev/go-wise/internal/logger"
	"github.com/MKhiriev/go-wise/models"
)

//go:embed sample_report.json
var sampleReportJSON []byte

const docxBodyPart = "word/document.xml"

type analysisService struct {
	sample models.AnalysisReport
	now    func() time.Time

	logger *logger.Logger
}

// NewAnalysisService returns the development analysis service. It accepts
// documents the way the production backend does and answers every valid
// upload with the same sample report.
func NewAnalysisService(logger *logger.Logger) (AnalysisService, error) {
	var sample models.AnalysisReport
	if err := json.Unmarshal(sampleReportJSON, &sample); err != nil {
		return nil, fmt.Errorf("error decoding sample report: %w", err)
	}

	return &analysisService{
		sample: sample,
		now:    time.Now,
		logger: logger,
	}, nil
}

func (s *analysisService) Analyze(ctx context.Context, upload models.AnalysisUpload) (models.AnalysisReport, error) {
	if strings.TrimSpace(upload.APIKey) == "" {
		return models.AnalysisReport{}, ErrMissingAPIKey
	}

	text, err := extractText(upload)
	if err != nil {
		return models.AnalysisReport{}, err
	}

	if strings.TrimSpace(text) == "" {
		return models.AnalysisReport{}, ErrEmptyContent
	}

	if err := ctx.Err(); err != nil {
		return models.AnalysisReport{}, err
	}

	logger.FromContext(ctx).Debug().
		Str("file", upload.FileName).
		Int("chars", utf8.RuneCountInString(text)).
		Msg("document accepted")

	return s.report(upload.FileName, text), nil
}

// report copies the sample and fills in the parts derived from the input.
func (s *analysisService) report(fileName, text string) models.AnalysisReport {
	report := s.sample

	metadata := *s.sample.Metadata
	metadata.Date = s.now().UTC().Format(time.DateOnly)
	metadata.InputDataDescription = fmt.Sprintf("%s, %d characters", fileName, utf8.RuneCountInString(text))
	report.Metadata = &metadata

	report.Tactics = append([]models.Tactic(nil), s.sample.Tactics...)
	report.IntentBreakdown = intentBreakdown(report)
	report.ManipulationByCategory = manipulationByCategory(report.Tactics)

	return report
}

func intentBreakdown(report models.AnalysisReport) []models.IntentBreakdownItem {
	intents := []string{models.IntentBlatant, models.IntentBorderline, models.IntentLegitimate}

	items := make([]models.IntentBreakdownItem, 0, len(intents))
	for _, intent := range intents {
		items = append(items, models.IntentBreakdownItem{Name: intent, Value: report.CountByIntent(intent)})
	}
	return items
}

func manipulationByCategory(tactics []models.Tactic) []models.ManipulationCategory {
	var categories []models.ManipulationCategory
	index := make(map[string]int)

	for _, t := range tactics {
		i, ok := index[t.Category]
		if !ok {
			i = len(categories)
			index[t.Category] = i
			categories = append(categories, models.ManipulationCategory{Name: t.Category})
		}

		switch t.Intent {
		case models.IntentBlatant:
			categories[i].Blatant++
		case models.IntentBorderline:
			categories[i].Borderline++
		case models.IntentLegitimate:
			categories[i].Legitimate++
		}
	}
	return categories
}

// extractText returns the document text. The extension decides the format,
// falling back to the declared content type.
func extractText(upload models.AnalysisUpload) (string, error) {
	ext := strings.ToLower(filepath.Ext(upload.FileName))
	contentType := strings.ToLower(upload.ContentType)

	switch {
	case ext == ".docx" || strings.Contains(contentType, "wordprocessingml"):
		return extractDocxText(upload.Content)
	case ext == ".txt" || ext == ".md" || strings.HasPrefix(contentType, "text/"):
		if !utf8.Valid(upload.Content) {
			return "", ErrDecodeFailed
		}
		return string(upload.Content), nil
	default:
		return "", fmt.Errorf("%w: %s (%s), please upload .txt, .md, or .docx", ErrUnsupportedDocument, upload.FileName, upload.ContentType)
	}
}

// extractDocxText collects the text runs of an OOXML document, one line per
// paragraph.
func extractDocxText(content []byte) (string, error) {
	archive, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDocumentParse, err)
	}

	body, err := archive.Open(docxBodyPart)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDocumentParse, err)
	}
	defer body.Close()

	var (
		sb     strings.Builder
		inText bool
	)

	decoder := xml.NewDecoder(body)
	for {
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrDocumentParse, err)
		}

		switch el := token.(type) {
		case xml.StartElement:
			inText = el.Name.Local == "t"
		case xml.EndElement:
			if el.Name.Local == "p" {
				sb.WriteByte('\n')
			}
			inText = false
		case xml.CharData:
			if inText {
				sb.Write(el)
			}
		}
	}

	return sb.String(), nil
}
