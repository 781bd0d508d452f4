package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/MKhiriev/go-wise/internal/adapter"
	"github.com/MKhiriev/go-wise/internal/logger"
	"github.com/MKhiriev/go-wise/models"
)

const (
	// MaxUploadSize bounds documents read from disk.
	MaxUploadSize = 10 << 20

	textUploadName = "input.txt"
)

// uploadContentTypes lists the document types the backend accepts.
var uploadContentTypes = map[string]string{
	".txt":  "text/plain",
	".md":   "text/markdown",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

type clientAnalysisService struct {
	adapter adapter.AnalysisAdapter
	keys    APIKeyProvider

	mu         sync.RWMutex
	lastReport *models.AnalysisReport

	logger *logger.Logger
}

// NewClientAnalysisService wires the analysis backend with the source of
// the API key (normally the vault).
func NewClientAnalysisService(analysisAdapter adapter.AnalysisAdapter, keys APIKeyProvider, logger *logger.Logger) ClientAnalysisService {
	return &clientAnalysisService{
		adapter: analysisAdapter,
		keys:    keys,
		logger:  logger,
	}
}

func (a *clientAnalysisService) Analyze(ctx context.Context, input models.AnalysisInput) (models.AnalysisReport, error) {
	upload, err := prepareUpload(input)
	if err != nil {
		return models.AnalysisReport{}, err
	}

	upload.APIKey, err = a.keys.APIKey()
	if err != nil {
		return models.AnalysisReport{}, err
	}

	a.logger.Info().
		Str("file", upload.FileName).
		Int("size", len(upload.Content)).
		Msg("submitting document for analysis")

	report, err := a.adapter.Analyze(ctx, upload)

	a.mu.Lock()
	defer a.mu.Unlock()

	if err != nil {
		a.lastReport = nil
		a.logger.Err(err).Msg("analysis failed")
		return models.AnalysisReport{}, err
	}

	a.lastReport = &report
	a.logger.Info().Int("tactics", len(report.Tactics)).Msg("analysis finished")

	return report, nil
}

func (a *clientAnalysisService) LastReport() (models.AnalysisReport, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if a.lastReport == nil {
		return models.AnalysisReport{}, false
	}
	return *a.lastReport, true
}

func (a *clientAnalysisService) CheckBackend(ctx context.Context) (models.HealthResponse, error) {
	return a.adapter.Health(ctx)
}

// prepareUpload turns user input into the multipart payload. A file path
// takes precedence over pasted text.
func prepareUpload(input models.AnalysisInput) (models.AnalysisUpload, error) {
	path := strings.TrimSpace(input.FilePath)
	if path != "" {
		return readUploadFile(path)
	}

	if strings.TrimSpace(input.Text) == "" {
		return models.AnalysisUpload{}, ErrNoInput
	}

	return models.AnalysisUpload{
		FileName:    textUploadName,
		ContentType: uploadContentTypes[".txt"],
		Content:     []byte(input.Text),
	}, nil
}

func readUploadFile(path string) (models.AnalysisUpload, error) {
	ext := strings.ToLower(filepath.Ext(path))
	contentType, ok := uploadContentTypes[ext]
	if !ok {
		return models.AnalysisUpload{}, fmt.Errorf("%w: %q, expected .txt, .md or .docx", ErrUnsupportedFileType, ext)
	}

	info, err := os.Stat(path)
	if err != nil {
		return models.AnalysisUpload{}, fmt.Errorf("error reading document: %w", err)
	}
	if info.IsDir() {
		return models.AnalysisUpload{}, fmt.Errorf("error reading document: %s is a directory", path)
	}
	if info.Size() > MaxUploadSize {
		return models.AnalysisUpload{}, fmt.Errorf("%w: %d bytes, limit is %d", ErrFileTooLarge, info.Size(), MaxUploadSize)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return models.AnalysisUpload{}, fmt.Errorf("error reading document: %w", err)
	}

	return models.AnalysisUpload{
		FileName:    filepath.Base(path),
		ContentType: contentType,
		Content:     content,
	}, nil
}
