// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/lead-pulse/internal/adapter"
	"github.com/MKhiriev/lead-pulse/internal/config"
	"github.com/MKhiriev/lead-pulse/internal/crypto"
	"github.com/MKhiriev/lead-pulse/internal/handler"
	"github.com/MKhiriev/lead-pulse/internal/logger"
	"github.com/MKhiriev/lead-pulse/internal/server"
	"github.com/MKhiriev/lead-pulse/internal/service"
	"github.com/MKhiriev/lead-pulse/internal/store"
	"github.com/MKhiriev/lead-pulse/internal/workers"
	"github.com/MKhiriev/lead-pulse/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("lead-pulse-server").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("lead-pulse-server")
	if !cfg.App.IsProduction() {
		log = logger.NewConsoleLogger("lead-pulse-server")
	}
	if cfg.App.LogLevel != "" {
		if err := logger.SetLevel(cfg.App.LogLevel); err != nil {
			log.Fatal().Err(err).Msg("invalid log level")
		}
	}
	if cfg.App.Version == config.DefaultVersion && buildVersion != "N/A" {
		cfg.App.Version = buildVersion
	}

	log.Info().
		Str("environment", cfg.App.Environment).
		Str("address", cfg.Server.HTTPAddress).
		Bool("whatsapp_enabled", cfg.WhatsApp.Enabled()).
		Msg("received configs")

	ctx, cancel := context.WithCancel(log.WithContext(context.Background()))
	defer cancel()

	storages := store.NewStorages(log)

	credentials, err := crypto.NewCredentialManager(crypto.Params{
		N:          cfg.Credentials.ScryptN,
		R:          cfg.Credentials.ScryptR,
		P:          cfg.Credentials.ScryptP,
		KeyLength:  cfg.Credentials.KeyLength,
		SaltLength: cfg.Credentials.SaltLength,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("error creating credential manager")
	}

	notifier := adapter.NewWhatsAppAdapter(cfg.WhatsApp, log)

	services, err := service.NewServices(storages, credentials, notifier, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	if cfg.App.AdminUsername != "" && cfg.App.AdminPassword != "" {
		_, err := services.AuthService.SeedAdmin(ctx, models.Credentials{
			Username: cfg.App.AdminUsername,
			Password: cfg.App.AdminPassword,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("error seeding admin account")
		}
	}

	if cfg.App.SeedSampleData {
		leads := store.SeedSampleLeads(ctx, storages.LeadRepository)
		log.Info().Int("leads", len(leads)).Msg("sample data loaded")
	}

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	workers.NewWorkers(storages, cfg.Session, log).Run(ctx)

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err := srv.RunServer(ctx); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
