// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/awnumar/memguard"

	"github.com/MKhiriev/go-wise/internal/adapter"
	"github.com/MKhiriev/go-wise/internal/client"
	"github.com/MKhiriev/go-wise/internal/config"
	"github.com/MKhiriev/go-wise/internal/logger"
	"github.com/MKhiriev/go-wise/internal/service"
	"github.com/MKhiriev/go-wise/internal/store"
	"github.com/MKhiriev/go-wise/internal/tui"
	"github.com/MKhiriev/go-wise/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	memguard.CatchInterrupt()
	defer memguard.Purge()

	build := models.NewBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(build)

	log := logger.NewClientLogger("go-wise-client", "")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	analysisAdapter, err := adapter.NewHTTPAnalysisAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create analysis adapter")
	}

	storages, err := store.NewClientStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("close local storage")
		}
	}()

	services := service.NewClientServices(storages, analysisAdapter, cfg.Vault, log)

	ui, err := tui.New(services, build, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Err(err).Msg("client run error")
		fmt.Println(service.UserMessage(err))
	}
}
