package service

import "errors"

var (
	// ErrInvalidDataProvided is returned when a required field is empty.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrWrongPassword is returned when a login attempt supplies a password
	// that does not match the stored hash.
	ErrWrongPassword = errors.New("wrong password")

	// ErrSessionInvalid is the normalized result of any session token
	// validation failure (expired, wrong issuer, malformed). Callers never
	// need to inspect low-level JWT errors.
	ErrSessionInvalid = errors.New("session token is expired or invalid")

	// ErrTokenCreationFailed is returned when signing a new session token fails.
	ErrTokenCreationFailed = errors.New("session token creation failed")
)
