package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameAlreadyExists is returned when an attempt to register a new
	// user hits the unique index on the username field.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrNoUserWasFound is returned when a point lookup matches no user
	// record. Handlers treat it as "absent", not as a server failure.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrSlugAlreadyExists is returned when an attempt to add a movie hits
	// the unique index on the slug field.
	ErrSlugAlreadyExists = errors.New("movie slug already exists")

	// ErrNoMovieWasFound is returned when a lookup by slug matches no movie
	// record.
	ErrNoMovieWasFound = errors.New("no movie was found")

	// ErrInvalidUserID is returned when a supplied user identifier cannot be
	// parsed as a document-store ObjectID. Session handling treats it the
	// same as an unresolved principal.
	ErrInvalidUserID = errors.New("invalid user id")
)
