package service

import (
	"context"

	"github.com/MKhiriev/go-wise/internal/logger"
	"github.com/MKhiriev/go-wise/models"
)

type appInfoService struct {
	appVersion string

	logger *logger.Logger
}

func NewAppInfoService(build models.BuildInfo, logger *logger.Logger) (AppInfoService, error) {
	if build.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: build.Version,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}
