package main

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"

	"github.com/jcarruth/movieRecs/internal/config"
	httphandler "github.com/jcarruth/movieRecs/internal/handler/http"
	"github.com/jcarruth/movieRecs/internal/logger"
	"github.com/jcarruth/movieRecs/internal/omdb"
	"github.com/jcarruth/movieRecs/internal/server"
	"github.com/jcarruth/movieRecs/internal/service"
	"github.com/jcarruth/movieRecs/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("movie-recs-server")

	// A local .env is a development convenience; absence is not an error.
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found")
	}

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()

	db, err := store.NewMongo(ctx, cfg.Storage.Mongo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to storage")
	}
	defer func() {
		if err := db.Close(ctx); err != nil {
			log.Err(err).Msg("error disconnecting from storage")
		}
	}()

	if err := store.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("error ensuring storage indexes")
	}

	storages := store.NewStorages(db, log)
	fetcher := omdb.NewClient(cfg.OMDB, log)
	services := service.NewServices(storages, fetcher, cfg, log)
	handler := httphandler.NewHandler(services, log)

	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
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
