package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jcarruth/movieRecs/internal/logger"
	"github.com/jcarruth/movieRecs/models"
)

// Storages bundles every repository the service layer depends on.
type Storages struct {
	UserRepository  UserRepository
	MovieRepository MovieRepository
}

// NewStorages wires the repositories to the shared document-store connection.
func NewStorages(db *Mongo, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:  NewUserRepository(db, logger),
		MovieRepository: NewMovieRepository(db, logger),
	}
}

// EnsureIndexes creates the unique indexes that back the system's only
// exclusivity guarantees: one user per username, one movie per slug.
// Index creation is idempotent; re-running against existing indexes with the
// same options is a no-op.
func EnsureIndexes(ctx context.Context, db *Mongo) error {
	users := db.Collection(models.User{}.CollectionName())
	_, err := users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("error creating username index: %w", err)
	}

	movies := db.Collection(models.Movie{}.CollectionName())
	_, err = movies.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "slug", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("error creating slug index: %w", err)
	}

	return nil
}
