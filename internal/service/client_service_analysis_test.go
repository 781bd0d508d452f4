package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-wise/internal/adapter"
	"github.com/MKhiriev/go-wise/internal/logger"
	"github.com/MKhiriev/go-wise/internal/mock"
	"github.com/MKhiriev/go-wise/models"
)

func newTestAnalysisSvc(t *testing.T, ctrl *gomock.Controller) (*clientAnalysisService, *mock.MockAnalysisAdapter, *mock.MockAPIKeyProvider) {
	t.Helper()

	analysisAdapter := mock.NewMockAnalysisAdapter(ctrl)
	keys := mock.NewMockAPIKeyProvider(ctrl)

	svc := NewClientAnalysisService(analysisAdapter, keys, logger.Nop()).(*clientAnalysisService)
	return svc, analysisAdapter, keys
}

func sampleReport() models.AnalysisReport {
	return models.AnalysisReport{
		Metadata: &models.ReportMetadata{OverallIntent: "Mixed"},
		Tactics: []models.Tactic{
			{ID: 1, Name: "Bandwagon", Intent: models.IntentBlatant},
		},
	}
}

func writeTempFile(t *testing.T, name string, content []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, content, 0o600))
	return path
}

func TestClientAnalysisService_Analyze_Text(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, analysisAdapter, keys := newTestAnalysisSvc(t, ctrl)
	ctx := context.Background()

	_, ok := svc.LastReport()
	assert.False(t, ok)

	keys.EXPECT().APIKey().Return(testAPIKey, nil)
	analysisAdapter.EXPECT().Analyze(ctx, models.AnalysisUpload{
		FileName:    "input.txt",
		ContentType: "text/plain",
		Content:     []byte("If you don't act now..."),
		APIKey:      testAPIKey,
	}).Return(sampleReport(), nil)

	report, err := svc.Analyze(ctx, models.AnalysisInput{Text: "If you don't act now..."})
	require.NoError(t, err)
	assert.Equal(t, sampleReport(), report)

	last, ok := svc.LastReport()
	require.True(t, ok)
	assert.Equal(t, report, last)
}

func TestClientAnalysisService_Analyze_File(t *testing.T) {
	tests := []struct {
		name        string
		file        string
		contentType string
	}{
		{name: "markdown", file: "notes.md", contentType: "text/markdown"},
		{name: "text upper case extension", file: "NOTES.TXT", contentType: "text/plain"},
		{name: "word", file: "speech.docx", contentType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, analysisAdapter, keys := newTestAnalysisSvc(t, ctrl)

			path := writeTempFile(t, tt.file, []byte("document body"))

			keys.EXPECT().APIKey().Return(testAPIKey, nil)
			analysisAdapter.EXPECT().
				Analyze(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, upload models.AnalysisUpload) (models.AnalysisReport, error) {
					assert.Equal(t, tt.file, upload.FileName)
					assert.Equal(t, tt.contentType, upload.ContentType)
					assert.Equal(t, []byte("document body"), upload.Content)
					return sampleReport(), nil
				})

			// the file wins over text
			_, err := svc.Analyze(context.Background(), models.AnalysisInput{FilePath: path, Text: "ignored"})
			require.NoError(t, err)
		})
	}
}

func TestClientAnalysisService_Analyze_InputErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   func(t *testing.T) models.AnalysisInput
		wantErr error
	}{
		{
			name:    "nothing",
			input:   func(*testing.T) models.AnalysisInput { return models.AnalysisInput{} },
			wantErr: ErrNoInput,
		},
		{
			name:    "blank text",
			input:   func(*testing.T) models.AnalysisInput { return models.AnalysisInput{Text: " \n "} },
			wantErr: ErrNoInput,
		},
		{
			name: "unsupported extension",
			input: func(t *testing.T) models.AnalysisInput {
				return models.AnalysisInput{FilePath: writeTempFile(t, "slides.pdf", []byte("%PDF"))}
			},
			wantErr: ErrUnsupportedFileType,
		},
		{
			name: "too large",
			input: func(t *testing.T) models.AnalysisInput {
				path := writeTempFile(t, "big.txt", nil)
				require.NoError(t, os.Truncate(path, MaxUploadSize+1))
				return models.AnalysisInput{FilePath: path}
			},
			wantErr: ErrFileTooLarge,
		},
		{
			name: "missing file",
			input: func(t *testing.T) models.AnalysisInput {
				return models.AnalysisInput{FilePath: filepath.Join(t.TempDir(), "absent.txt")}
			},
			wantErr: os.ErrNotExist,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			// neither the vault nor the backend may be consulted
			svc, _, _ := newTestAnalysisSvc(t, ctrl)

			_, err := svc.Analyze(context.Background(), tt.input(t))
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClientAnalysisService_Analyze_LockedVault(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, keys := newTestAnalysisSvc(t, ctrl)

	keys.EXPECT().APIKey().Return("", ErrVaultLocked)

	_, err := svc.Analyze(context.Background(), models.AnalysisInput{Text: "text"})
	require.ErrorIs(t, err, ErrVaultLocked)
}

func TestClientAnalysisService_Analyze_FailureClearsLastReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, analysisAdapter, keys := newTestAnalysisSvc(t, ctrl)
	ctx := context.Background()

	keys.EXPECT().APIKey().Return(testAPIKey, nil).Times(2)
	gomock.InOrder(
		analysisAdapter.EXPECT().Analyze(ctx, gomock.Any()).Return(sampleReport(), nil),
		analysisAdapter.EXPECT().Analyze(ctx, gomock.Any()).Return(models.AnalysisReport{}, adapter.ErrUnreachable),
	)

	_, err := svc.Analyze(ctx, models.AnalysisInput{Text: "first"})
	require.NoError(t, err)

	_, err = svc.Analyze(ctx, models.AnalysisInput{Text: "second"})
	require.ErrorIs(t, err, adapter.ErrUnreachable)

	_, ok := svc.LastReport()
	assert.False(t, ok)
}

func TestClientAnalysisService_CheckBackend(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, analysisAdapter, _ := newTestAnalysisSvc(t, ctrl)
	ctx := context.Background()

	analysisAdapter.EXPECT().Health(ctx).Return(models.HealthResponse{Message: "ok"}, nil)
	resp, err := svc.CheckBackend(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Message)

	analysisAdapter.EXPECT().Health(ctx).Return(models.HealthResponse{}, errors.New("down"))
	_, err = svc.CheckBackend(ctx)
	require.Error(t, err)
}
