package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-wise/internal/logger"
	"github.com/MKhiriev/go-wise/models"
)

func TestNewAppInfoService_Success(t *testing.T) {
	svc, err := NewAppInfoService(models.BuildInfo{Version: "1.0.0"}, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, svc)
}

func TestNewAppInfoService_EmptyVersion_ReturnsError(t *testing.T) {
	svc, err := NewAppInfoService(models.BuildInfo{}, logger.Nop())

	assert.Nil(t, svc)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrVersionIsNotSpecified))
}

func TestNewAppInfoService_NotAvailableVersionIsAccepted(t *testing.T) {
	svc, err := NewAppInfoService(models.NewBuildInfo("", "", ""), logger.Nop())

	require.NoError(t, err)
	assert.Equal(t, "N/A", svc.GetAppVersion(context.Background()))
}

func TestGetAppVersion_ReturnsConfiguredVersion(t *testing.T) {
	svc, err := NewAppInfoService(models.BuildInfo{Version: "3.1.4"}, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, "3.1.4", svc.GetAppVersion(context.Background()))
}
