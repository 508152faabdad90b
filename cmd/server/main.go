// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-classifieds/internal/config"
	"github.com/MKhiriev/go-classifieds/internal/events"
	"github.com/MKhiriev/go-classifieds/internal/handler"
	"github.com/MKhiriev/go-classifieds/internal/logger"
	"github.com/MKhiriev/go-classifieds/internal/server"
	"github.com/MKhiriev/go-classifieds/internal/service"
	"github.com/MKhiriev/go-classifieds/internal/store"
	"github.com/MKhiriev/go-classifieds/internal/workers"
	"github.com/MKhiriev/go-classifieds/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("classifieds-server")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if cfg.Storage.DB.Migrate {
		if err = db.Migrate(); err != nil {
			log.Fatal().Err(err).Msg("error applying migrations")
		}
	}

	var storageOpts []store.StoragesOption
	if cfg.Storage.Cache.RedisAddress != "" {
		redisClient, err := store.NewRedisClient(ctx, cfg.Storage.Cache, log)
		if err != nil {
			log.Fatal().Err(err).Msg("error connecting to redis")
		}
		defer redisClient.Close()
		storageOpts = append(storageOpts, store.WithReferenceCache(redisClient, cfg.Storage.Cache.TTL))
	}
	storages := store.NewStorages(db, log, storageOpts...)

	publisher, err := events.NewPublisher(cfg.Broker, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating event publisher")
	}
	dispatcher := events.NewDispatcher(publisher, events.DefaultQueueSize, log)
	defer func() {
		if err := dispatcher.Close(); err != nil {
			log.Err(err).Msg("error closing event dispatcher")
		}
	}()
	workers.NewWorkers(dispatcher).Run(ctx)

	services := service.NewServices(storages, dispatcher, *cfg, buildInfo, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(ctx); err != nil {
		log.Err(err).Msg("server stopped with error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
