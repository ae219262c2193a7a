package service

import (
	"github.com/jcarruth/movieRecs/internal/config"
	"github.com/jcarruth/movieRecs/internal/logger"
	"github.com/jcarruth/movieRecs/internal/store"
)

// Services bundles every service the transport layer depends on.
type Services struct {
	AuthService  AuthService
	MovieService MovieService
}

// NewServices wires the services to the repositories and the metadata fetcher.
func NewServices(storages *store.Storages, fetcher MetadataFetcher, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:  NewAuthService(storages.UserRepository, cfg.App, logger),
		MovieService: NewMovieService(storages.MovieRepository, fetcher, logger),
	}
}
