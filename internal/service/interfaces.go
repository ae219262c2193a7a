package service

import (
	"context"

	"github.com/jcarruth/movieRecs/models"
)

// AuthService implements the session/auth gate: credential registration and
// verification plus session token lifecycle.
type AuthService interface {
	// Register hashes the password and persists a new credential record.
	// Returns ErrInvalidDataProvided for empty input and passes through
	// store.ErrUsernameAlreadyExists on conflict.
	Register(ctx context.Context, username, password string) (models.User, error)

	// Login verifies the password against the stored hash. Passes through
	// store.ErrNoUserWasFound for unknown usernames and returns
	// ErrWrongPassword on mismatch.
	Login(ctx context.Context, username, password string) (models.User, error)

	// CreateSessionToken issues a signed session token bound to the user's id.
	CreateSessionToken(ctx context.Context, user models.User) (models.SessionToken, error)

	// ParseSessionToken validates a raw session token string. Any validation
	// failure is normalized to ErrSessionInvalid.
	ParseSessionToken(ctx context.Context, tokenString string) (models.SessionToken, error)

	// CurrentUser resolves a session's bound user id to a live credential
	// record. Callers treat any error as an anonymous request.
	CurrentUser(ctx context.Context, userID string) (models.User, error)
}

// MovieService implements the catalog operations.
type MovieService interface {
	// ListMovies returns the full catalog in title order.
	ListMovies(ctx context.Context) ([]models.Movie, error)

	// GetMovieBySlug returns one movie; passes through store.ErrNoMovieWasFound.
	GetMovieBySlug(ctx context.Context, slug string) (models.Movie, error)

	// AddMovie fetches metadata for the title and stores the composed record.
	// The fetch must succeed before any store write is attempted. Passes
	// through omdb.ErrMovieNotFound, omdb.ErrLookupFailed and
	// store.ErrSlugAlreadyExists.
	AddMovie(ctx context.Context, title string) (models.Movie, error)

	// FetchMovie fetches metadata for the title without storing anything.
	// Used by the random-movie page.
	FetchMovie(ctx context.Context, title string) (models.Movie, error)
}

// MetadataFetcher is the outbound dependency supplying movie metadata.
// Implemented by omdb.Client; substituted in tests.
type MetadataFetcher interface {
	GetMovieData(ctx context.Context, title string) (models.Movie, error)
}
