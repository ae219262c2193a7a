package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jcarruth/movieRecs/internal/logger"
	"github.com/jcarruth/movieRecs/models"
)

// userRepository is the MongoDB-backed implementation of [UserRepository].
// It handles credential creation and lookup against the "users" collection.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of store interactions.
type userRepository struct {
	logger     *logger.Logger
	collection *mongo.Collection
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// document store and logger.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewUserRepository(db *Mongo, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		collection: db.Collection(models.User{}.CollectionName()),
		logger:     logger,
	}
}

// AddUser persists a new credential record and returns the [models.User]
// populated with the server-assigned ID.
//
// Error handling:
//   - duplicate key on the username index → [ErrUsernameAlreadyExists].
//   - any other driver-level error → wrapped as "unexpected store error".
func (r *userRepository) AddUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	result, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.User{}, ErrUsernameAlreadyExists
		}

		log.Err(err).Str("username", user.Username).Msg("error inserting user")
		return models.User{}, fmt.Errorf("unexpected store error: %w", err)
	}

	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		user.ID = id
	}

	return user, nil
}

// FindUserByUsername retrieves the credential record whose username matches
// the given value.
//
// Error handling:
//   - no matching document → [ErrNoUserWasFound].
//   - any other driver-level error → wrapped as "unexpected store error".
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"username": username}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Str("username", username).Msg("error finding user by username")
		return models.User{}, fmt.Errorf("unexpected store error: %w", err)
	}

	return user, nil
}

// FindUserByID retrieves the credential record whose ID matches the given
// hex string.
//
// Error handling:
//   - unparseable id → [ErrInvalidUserID].
//   - no matching document → [ErrNoUserWasFound].
//   - any other driver-level error → wrapped as "unexpected store error".
func (r *userRepository) FindUserByID(ctx context.Context, id string) (models.User, error) {
	log := logger.FromContext(ctx)

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.User{}, ErrInvalidUserID
	}

	var user models.User
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Str("id", id).Msg("error finding user by id")
		return models.User{}, fmt.Errorf("unexpected store error: %w", err)
	}

	return user, nil
}
