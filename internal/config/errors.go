package config

import "errors"

var (
	// ErrInvalidStorageConfigs is returned by validation when the Mongo URI
	// or database name is missing from every configuration source.
	ErrInvalidStorageConfigs = errors.New("invalid storage configs: mongo uri and database are required")

	// ErrInvalidAppConfigs is returned by validation when the session signing
	// key is missing. Sessions cannot be issued without it.
	ErrInvalidAppConfigs = errors.New("invalid app configs: session sign key is required")

	// ErrInvalidOMDBConfigs is returned by validation when the OMDB API key
	// or base URL is missing.
	ErrInvalidOMDBConfigs = errors.New("invalid omdb configs: api key and base url are required")
)
