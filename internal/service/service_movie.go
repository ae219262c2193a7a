package service

import (
	"context"
	"fmt"

	"github.com/jcarruth/movieRecs/internal/logger"
	"github.com/jcarruth/movieRecs/internal/store"
	"github.com/jcarruth/movieRecs/models"
)

// movieService is the concrete implementation of MovieService. It composes
// the metadata fetcher and the movie repository: enrichment always precedes
// persistence, so a record is only ever stored fully formed.
type movieService struct {
	movieRepository store.MovieRepository
	fetcher         MetadataFetcher
	logger          *logger.Logger
}

// NewMovieService constructs a MovieService over the given repository and
// metadata fetcher.
func NewMovieService(movieRepository store.MovieRepository, fetcher MetadataFetcher, logger *logger.Logger) MovieService {
	return &movieService{
		movieRepository: movieRepository,
		fetcher:         fetcher,
		logger:          logger,
	}
}

// ListMovies returns all movies in the catalog, sorted by title.
func (m *movieService) ListMovies(ctx context.Context) ([]models.Movie, error) {
	movies, err := m.movieRepository.ListMovies(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing movies failed: %w", err)
	}

	return movies, nil
}

// GetMovieBySlug returns the movie with the given slug, or a wrapped
// store.ErrNoMovieWasFound when the catalog has no such entry.
func (m *movieService) GetMovieBySlug(ctx context.Context, slug string) (models.Movie, error) {
	movie, err := m.movieRepository.FindMovieBySlug(ctx, slug)
	if err != nil {
		return models.Movie{}, fmt.Errorf("movie search by slug failed: %w", err)
	}

	return movie, nil
}

// AddMovie enriches the title through the metadata fetcher and persists the
// composed record. No store write is attempted unless the fetch succeeds.
//
// Returns the stored movie (its slug drives the post-add redirect) or:
//   - ErrInvalidDataProvided if the title is empty.
//   - A wrapped omdb.ErrMovieNotFound / omdb.ErrLookupFailed from the fetch.
//   - A wrapped store.ErrSlugAlreadyExists when the movie is already in the
//     catalog.
func (m *movieService) AddMovie(ctx context.Context, title string) (models.Movie, error) {
	log := logger.FromContext(ctx)

	if title == "" {
		log.Error().Msg("empty movie title provided")
		return models.Movie{}, ErrInvalidDataProvided
	}

	movieData, err := m.fetcher.GetMovieData(ctx, title)
	if err != nil {
		log.Err(err).Str("title", title).Msg("metadata fetch failed")
		return models.Movie{}, fmt.Errorf("metadata fetch failed: %w", err)
	}

	movie, err := m.movieRepository.AddMovie(ctx, movieData)
	if err != nil {
		log.Err(err).Str("title", title).Str("slug", movieData.Slug).Msg("movie insert failed")
		return models.Movie{}, fmt.Errorf("movie insert failed: %w", err)
	}

	return movie, nil
}

// FetchMovie enriches the title without persisting anything. The random-movie
// page uses it to render a fresh record on every request.
func (m *movieService) FetchMovie(ctx context.Context, title string) (models.Movie, error) {
	movieData, err := m.fetcher.GetMovieData(ctx, title)
	if err != nil {
		return models.Movie{}, fmt.Errorf("metadata fetch failed: %w", err)
	}

	return movieData, nil
}
