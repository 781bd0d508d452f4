package handler

import (
	"github.com/MKhiriev/go-wise/internal/config"
	"github.com/MKhiriev/go-wise/internal/handler/http"
	"github.com/MKhiriev/go-wise/internal/logger"
	"github.com/MKhiriev/go-wise/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.ServerConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, logger),
	}, nil
}
