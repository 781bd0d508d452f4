package service

import (
	"github.com/MKhiriev/go-wise/internal/logger"
	"github.com/MKhiriev/go-wise/models"
)

// Services groups the development server's services.
type Services struct {
	AnalysisService AnalysisService
	AppInfoService  AppInfoService
}

func NewServices(build models.BuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(build, logger)
	if err != nil {
		return nil, err
	}

	analysis, err := NewAnalysisService(logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AnalysisService: analysis,
		AppInfoService:  appInfo,
	}, nil
}
