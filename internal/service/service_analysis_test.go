// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"archive/zip"
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-wise/internal/logger"
	"github.com/MKhiriev/go-wise/models"
)

func newTestAnalysisService(t *testing.T) *analysisService {
	t.Helper()

	svc, err := NewAnalysisService(logger.Nop())
	require.NoError(t, err)

	s := svc.(*analysisService)
	s.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	return s
}

func docxWithParagraphs(t *testing.T, paragraphs ...string) []byte {
	t.Helper()

	var body bytes.Buffer
	body.WriteString(`<?xml version="1.0" encoding="UTF-8"?><w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)
	for _, p := range paragraphs {
		body.WriteString(`<w:p><w:r><w:t>` + p + `</w:t></w:r></w:p>`)
	}
	body.WriteString(`</w:body></w:document>`)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create(docxBodyPart)
	require.NoError(t, err)
	_, err = w.Write(body.Bytes())
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	return buf.Bytes()
}

func TestNewAnalysisService_EmbeddedSample(t *testing.T) {
	require.NotEmpty(t, sampleReportJSON)

	s := newTestAnalysisService(t)
	require.NotNil(t, s.sample.Metadata)
	assert.NotEmpty(t, s.sample.Tactics)
	assert.Equal(t, sampleReport().Metadata.OverallIntent, s.sample.Metadata.OverallIntent)
}

func TestAnalysisService_Analyze(t *testing.T) {
	tests := []struct {
		name    string
		upload  models.AnalysisUpload
		wantErr error
	}{
		{
			name:   "plain text",
			upload: models.AnalysisUpload{FileName: "input.txt", ContentType: "text/plain", Content: []byte("Everyone is doing it."), APIKey: "k"},
		},
		{
			name:   "markdown by content type",
			upload: models.AnalysisUpload{FileName: "notes", ContentType: "text/markdown", Content: []byte("# Title"), APIKey: "k"},
		},
		{
			name:    "missing api key",
			upload:  models.AnalysisUpload{FileName: "input.txt", Content: []byte("text"), APIKey: "  "},
			wantErr: ErrMissingAPIKey,
		},
		{
			name:    "whitespace only",
			upload:  models.AnalysisUpload{FileName: "input.txt", Content: []byte(" \n\t"), APIKey: "k"},
			wantErr: ErrEmptyContent,
		},
		{
			name:    "invalid utf-8",
			upload:  models.AnalysisUpload{FileName: "input.txt", Content: []byte{0xff, 0xfe, 0xfd}, APIKey: "k"},
			wantErr: ErrDecodeFailed,
		},
		{
			name:    "unsupported type",
			upload:  models.AnalysisUpload{FileName: "image.png", ContentType: "image/png", Content: []byte{1}, APIKey: "k"},
			wantErr: ErrUnsupportedDocument,
		},
		{
			name:    "broken docx",
			upload:  models.AnalysisUpload{FileName: "doc.docx", Content: []byte("not a zip"), APIKey: "k"},
			wantErr: ErrDocumentParse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestAnalysisService(t)

			report, err := svc.Analyze(context.Background(), tt.upload)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, report.Metadata)
			assert.NotEmpty(t, report.Tactics)
		})
	}
}

func TestAnalysisService_Analyze_FillsDerivedFields(t *testing.T) {
	svc := newTestAnalysisService(t)

	report, err := svc.Analyze(context.Background(), models.AnalysisUpload{
		FileName: "input.txt",
		Content:  []byte("hello"),
		APIKey:   "k",
	})
	require.NoError(t, err)

	assert.Equal(t, "2026-03-01", report.Metadata.Date)
	assert.Equal(t, "input.txt, 5 characters", report.Metadata.InputDataDescription)

	require.Len(t, report.IntentBreakdown, 3)
	total := 0
	for _, item := range report.IntentBreakdown {
		total += item.Value
	}
	assert.Equal(t, len(report.Tactics), total)

	require.NotEmpty(t, report.ManipulationByCategory)
	assert.Equal(t, "Logical Fallacy", report.ManipulationByCategory[0].Name)
	assert.Equal(t, 1, report.ManipulationByCategory[0].Blatant)

	// the sample itself is not modified
	assert.Empty(t, svc.sample.Metadata.Date)
}

func TestAnalysisService_Analyze_Docx(t *testing.T) {
	svc := newTestAnalysisService(t)

	report, err := svc.Analyze(context.Background(), models.AnalysisUpload{
		FileName: "doc.docx",
		Content:  docxWithParagraphs(t, "First", "Second"),
		APIKey:   "k",
	})
	require.NoError(t, err)
	assert.Equal(t, "doc.docx, 13 characters", report.Metadata.InputDataDescription)
}

func TestAnalysisService_Analyze_EmptyDocx(t *testing.T) {
	svc := newTestAnalysisService(t)

	_, err := svc.Analyze(context.Background(), models.AnalysisUpload{
		FileName: "doc.docx",
		Content:  docxWithParagraphs(t),
		APIKey:   "k",
	})
	require.ErrorIs(t, err, ErrEmptyContent)
}

func TestAnalysisService_Analyze_CancelledContext(t *testing.T) {
	svc := newTestAnalysisService(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Analyze(ctx, models.AnalysisUpload{FileName: "a.txt", Content: []byte("x"), APIKey: "k"})
	require.ErrorIs(t, err, context.Canceled)
}

func TestExtractDocxText_Paragraphs(t *testing.T) {
	text, err := extractDocxText(docxWithParagraphs(t, "one", "two"))

	require.NoError(t, err)
	assert.Equal(t, "one\ntwo\n", text)
}
