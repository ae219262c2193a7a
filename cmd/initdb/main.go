// Command initdb clears the movie database, recreates the unique indexes,
// and seeds the catalog with the classic movie list, resolving every title
// through the metadata provider.
//
// This is a destructive maintenance operation and is never run implicitly by
// the server.
package main

import (
	"context"

	"github.com/joho/godotenv"

	"github.com/jcarruth/movieRecs/internal/catalog"
	"github.com/jcarruth/movieRecs/internal/config"
	"github.com/jcarruth/movieRecs/internal/logger"
	"github.com/jcarruth/movieRecs/internal/omdb"
	"github.com/jcarruth/movieRecs/internal/store"
)

func main() {
	log := logger.NewLogger("movie-recs-initdb")

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

	if err := db.Clear(ctx); err != nil {
		log.Fatal().Err(err).Msg("error clearing database")
	}

	if err := store.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("error creating storage indexes")
	}

	movieRepository := store.NewMovieRepository(db, log)
	fetcher := omdb.NewClient(cfg.OMDB, log)

	seeded := 0
	for _, title := range catalog.TopClassicMovies {
		movieData, err := fetcher.GetMovieData(ctx, title)
		if err != nil {
			log.Warn().Err(err).Str("title", title).Msg("skipping title: metadata fetch failed")
			continue
		}

		if _, err := movieRepository.AddMovie(ctx, movieData); err != nil {
			log.Warn().Err(err).Str("title", title).Msg("skipping title: insert failed")
			continue
		}

		seeded++
	}

	log.Info().Int("seeded", seeded).Int("total", len(catalog.TopClassicMovies)).Msg("initialized the database")
}
