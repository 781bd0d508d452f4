package main

import (
	"fmt"

	"github.com/MKhiriev/go-wise/internal/config"
	"github.com/MKhiriev/go-wise/internal/handler"
	"github.com/MKhiriev/go-wise/internal/logger"
	"github.com/MKhiriev/go-wise/internal/server"
	"github.com/MKhiriev/go-wise/internal/service"
	"github.com/MKhiriev/go-wise/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(build)

	log := logger.NewLogger("go-wise-devserver")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	services, err := service.NewServices(build, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
