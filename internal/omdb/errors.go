package omdb

import "errors"

// Sentinel errors returned by the metadata fetcher. Callers should use
// [errors.Is] to match against them; the wrapped message carries any detail
// the provider supplied.
var (
	// ErrMovieNotFound is returned when the provider reports that no movie
	// matches the requested title. The wrapping error message carries the
	// title that was looked up.
	ErrMovieNotFound = errors.New("movie not found in OMDB")

	// ErrLookupFailed is returned for every other provider failure:
	// transport-level errors, client/server HTTP status codes, provider
	// error payloads other than "not found", and malformed responses.
	// When the provider supplied an error message it is preserved verbatim
	// in the wrapping error.
	ErrLookupFailed = errors.New("movie lookup failed")
)
