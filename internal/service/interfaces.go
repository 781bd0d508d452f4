package service

import (
	"context"

	"github.com/MKhiriev/go-wise/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AnalysisService produces manipulation reports on the development server.
type AnalysisService interface {
	// Analyze extracts text from upload and reports the tactics found in it.
	Analyze(ctx context.Context, upload models.AnalysisUpload) (models.AnalysisReport, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
