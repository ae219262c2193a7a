package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jcarruth/movieRecs/internal/logger"
	"github.com/jcarruth/movieRecs/models"
)

// movieRepository is the MongoDB-backed implementation of [MovieRepository]
// over the "movies" collection.
type movieRepository struct {
	logger     *logger.Logger
	collection *mongo.Collection
}

// NewMovieRepository constructs a [MovieRepository] backed by the provided
// document store and logger.
func NewMovieRepository(db *Mongo, logger *logger.Logger) MovieRepository {
	logger.Debug().Msg("creating movie repository")
	return &movieRepository{
		collection: db.Collection(models.Movie{}.CollectionName()),
		logger:     logger,
	}
}

// AddMovie persists a fully-formed movie record and returns it populated
// with the server-assigned ID. The caller is responsible for only passing
// records composed by a successful metadata fetch.
//
// Error handling:
//   - duplicate key on the slug index → [ErrSlugAlreadyExists].
//   - any other driver-level error → wrapped as "unexpected store error".
func (r *movieRepository) AddMovie(ctx context.Context, movie models.Movie) (models.Movie, error) {
	log := logger.FromContext(ctx)

	result, err := r.collection.InsertOne(ctx, movie)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.Movie{}, ErrSlugAlreadyExists
		}

		log.Err(err).Str("slug", movie.Slug).Msg("error inserting movie")
		return models.Movie{}, fmt.Errorf("unexpected store error: %w", err)
	}

	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		movie.ID = id
	}

	return movie, nil
}

// ListMovies returns every movie in the catalog sorted by title ascending.
// The sort is explicit so that list output is stable across storage engines
// and restarts.
func (r *movieRepository) ListMovies(ctx context.Context) ([]models.Movie, error) {
	log := logger.FromContext(ctx)

	cursor, err := r.collection.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "title", Value: 1}}))
	if err != nil {
		log.Err(err).Msg("error listing movies")
		return nil, fmt.Errorf("unexpected store error: %w", err)
	}

	var movies []models.Movie
	if err := cursor.All(ctx, &movies); err != nil {
		log.Err(err).Msg("error decoding movie list")
		return nil, fmt.Errorf("unexpected store error: %w", err)
	}

	return movies, nil
}

// FindMovieBySlug retrieves the movie whose slug matches the given value.
//
// Error handling:
//   - no matching document → [ErrNoMovieWasFound].
//   - any other driver-level error → wrapped as "unexpected store error".
func (r *movieRepository) FindMovieBySlug(ctx context.Context, slug string) (models.Movie, error) {
	log := logger.FromContext(ctx)

	var movie models.Movie
	err := r.collection.FindOne(ctx, bson.M{"slug": slug}).Decode(&movie)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Movie{}, ErrNoMovieWasFound
		}

		log.Err(err).Str("slug", slug).Msg("error finding movie by slug")
		return models.Movie{}, fmt.Errorf("unexpected store error: %w", err)
	}

	return movie, nil
}
