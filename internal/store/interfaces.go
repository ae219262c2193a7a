package store

import (
	"context"

	"github.com/jcarruth/movieRecs/models"
)

// UserRepository persists username/password-hash pairs. Username uniqueness
// is enforced by the store's unique index, not by application logic.
type UserRepository interface {
	// AddUser inserts a new credential record and returns it with the
	// server-assigned ID. Returns ErrUsernameAlreadyExists on conflict.
	AddUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername is a point lookup; returns ErrNoUserWasFound when
	// no record matches.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// FindUserByID is a point lookup by the hex form of the record ID;
	// returns ErrInvalidUserID for unparseable ids and ErrNoUserWasFound
	// when no record matches.
	FindUserByID(ctx context.Context, id string) (models.User, error)
}

// MovieRepository persists movie records. Slug uniqueness is enforced by the
// store's unique index.
type MovieRepository interface {
	// AddMovie inserts a fully-formed movie record.
	// Returns ErrSlugAlreadyExists on conflict.
	AddMovie(ctx context.Context, movie models.Movie) (models.Movie, error)

	// ListMovies returns all movies sorted by title ascending.
	ListMovies(ctx context.Context) ([]models.Movie, error)

	// FindMovieBySlug is a point lookup; returns ErrNoMovieWasFound when no
	// record matches.
	FindMovieBySlug(ctx context.Context, slug string) (models.Movie, error)
}
