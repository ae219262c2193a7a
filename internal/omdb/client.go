// SPDX-License-Identifier: Apache-2.0

// Package omdb implements the metadata fetcher for the Open Movie Database.
//
// A lookup is two provider round-trips: the provider's short and full plot
// are mutually exclusive response shapes, not two fields of one response, so
// the fetcher first requests the short plot, then re-issues the same lookup
// for the full plot and composes a storage-ready movie record from both.
package omdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/gosimple/slug"

	"github.com/jcarruth/movieRecs/internal/config"
	"github.com/jcarruth/movieRecs/internal/logger"
	"github.com/jcarruth/movieRecs/models"
)

const (
	plotShort = "short"
	plotFull  = "full"

	// providerNotFoundMessage is the exact Error payload the provider uses
	// for an unknown title. Any other Error value is surfaced verbatim as a
	// generic lookup failure.
	providerNotFoundMessage = "Movie not found!"
)

// Client queries the OMDB HTTP API and normalizes its responses into
// [models.Movie] records. Safe for concurrent use; all state is read-only
// after construction.
type Client struct {
	client *resty.Client
	apiKey string
	logger *logger.Logger
}

// NewClient constructs a Client from the OMDB section of the application
// config. The resty client carries the base URL and the request timeout;
// per-request contexts are threaded through on every call.
func NewClient(cfg config.OMDB, logger *logger.Logger) *Client {
	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &Client{
		client: cli,
		apiKey: cfg.APIKey,
		logger: logger,
	}
}

// GetMovieData looks up the given title and returns a storage-ready movie
// record: the full-plot response as the base, the short plot attached as the
// synopsis, and the slug derived from the provider's canonical title.
//
// Returns [ErrMovieNotFound] when the provider has no record for the title,
// or [ErrLookupFailed] for any other transport or provider failure. No
// partial record is ever returned alongside an error.
func (c *Client) GetMovieData(ctx context.Context, title string) (models.Movie, error) {
	log := logger.FromContext(ctx)

	shortLookup, _, err := c.lookup(ctx, title, plotShort)
	if err != nil {
		log.Err(err).Str("title", title).Msg("short plot lookup failed")
		return models.Movie{}, err
	}

	fullLookup, passthrough, err := c.lookup(ctx, title, plotFull)
	if err != nil {
		log.Err(err).Str("title", title).Msg("full plot lookup failed")
		return models.Movie{}, err
	}

	movie := models.Movie{
		Slug:     slug.Make(fullLookup.Title),
		Title:    fullLookup.Title,
		Synopsis: shortLookup.Plot,
		Plot:     fullLookup.Plot,
		Metadata: passthrough,
	}

	return movie, nil
}

// lookup issues a single provider request for the given plot length and
// returns the decoded control fields plus the passthrough metadata fields.
func (c *Client) lookup(ctx context.Context, title, plot string) (models.OMDBLookup, map[string]string, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"apikey": c.apiKey,
			"t":      title,
			"plot":   plot,
		}).
		Get("/")
	if err != nil {
		return models.OMDBLookup{}, nil, fmt.Errorf("%w: %w", ErrLookupFailed, err)
	}

	var lookup models.OMDBLookup
	if isJSONResponse(resp) {
		// Decode errors are deliberately ignored here: an undecodable body is
		// equivalent to an empty payload and falls into the error mapping below.
		_ = json.Unmarshal(resp.Body(), &lookup)
	}

	if resp.StatusCode() >= http.StatusBadRequest || !bool(lookup.Response) {
		return models.OMDBLookup{}, nil, mapProviderError(title, lookup)
	}

	return lookup, passthroughFields(resp.Body()), nil
}

// mapProviderError converts a failed lookup payload into the fetcher's error
// taxonomy: the provider's "not found" message becomes ErrMovieNotFound with
// the title attached, any other provider message is preserved verbatim, and
// everything else is an unknown lookup failure.
func mapProviderError(title string, lookup models.OMDBLookup) error {
	switch {
	case lookup.Error == providerNotFoundMessage:
		return fmt.Errorf("movie %q %w", title, ErrMovieNotFound)
	case lookup.Error != "":
		return fmt.Errorf("%w: %s", ErrLookupFailed, lookup.Error)
	default:
		return fmt.Errorf("%w: an unknown error occurred", ErrLookupFailed)
	}
}

// passthroughFields extracts the provider's remaining string fields (Year,
// Poster, Genre, ...) so they can be stored verbatim. Control fields and the
// fields the record models explicitly are excluded.
func passthroughFields(body []byte) map[string]string {
	var raw map[string]any
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil
	}

	fields := make(map[string]string)
	for key, value := range raw {
		switch key {
		case "Response", "Error", "Title", "Plot":
			continue
		}

		if s, ok := value.(string); ok {
			fields[key] = s
		}
	}

	if len(fields) == 0 {
		return nil
	}

	return fields
}

func isJSONResponse(resp *resty.Response) bool {
	return strings.Contains(resp.Header().Get("Content-Type"), "application/json")
}
