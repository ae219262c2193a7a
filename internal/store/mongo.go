package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jcarruth/movieRecs/internal/config"
	"github.com/jcarruth/movieRecs/internal/logger"
)

// connectTimeout bounds the initial connect + ping handshake. Requests made
// after startup carry their own deadlines via context.
const connectTimeout = 10 * time.Second

// Mongo owns the client connection to the document store and hands out
// collection handles to the repositories. The underlying driver maintains a
// connection pool that is safe for concurrent use across requests.
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewMongo connects to the document store described by cfg and verifies the
// connection with a ping before returning.
func NewMongo(ctx context.Context, cfg config.Mongo, log *logger.Logger) (*Mongo, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("error connecting to mongo: %w", err)
	}

	if err = client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("error pinging mongo: %w", err)
	}

	log.Info().Str("database", cfg.Database).Msg("connected to mongo")

	return &Mongo{
		client: client,
		db:     client.Database(cfg.Database),
	}, nil
}

// Collection returns a handle to the named collection.
func (m *Mongo) Collection(name string) *mongo.Collection {
	return m.db.Collection(name)
}

// Close releases the connection pool. Safe to defer at process start; every
// exit path through main releases the pool exactly once.
func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// Clear drops every collection in the database. This is a maintenance
// operation used by the init-db command only; it is never run implicitly.
func (m *Mongo) Clear(ctx context.Context) error {
	names, err := m.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return fmt.Errorf("error listing collections: %w", err)
	}

	for _, name := range names {
		if err := m.db.Collection(name).Drop(ctx); err != nil {
			return fmt.Errorf("error dropping collection %s: %w", name, err)
		}
	}

	return nil
}
