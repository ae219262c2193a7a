// SPDX-License-Identifier: Apache-2.0

package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jcarruth/movieRecs/internal/catalog"
	"github.com/jcarruth/movieRecs/internal/logger"
	"github.com/jcarruth/movieRecs/internal/omdb"
	"github.com/jcarruth/movieRecs/internal/store"
)

// listMovies renders the full catalog. No auth required.
func (h *Handler) listMovies(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	movies, err := h.services.MovieService.ListMovies(ctx)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred listing movies")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.render(w, r, http.StatusOK, "movies/list.html", templateData{Movies: movies})
}

// movieDetails renders a single movie by slug. An unknown slug gets a
// dedicated not-found page with HTTP 404.
func (h *Handler) movieDetails(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	slug := chi.URLParam(r, "slug")

	movie, err := h.services.MovieService.GetMovieBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, store.ErrNoMovieWasFound) {
			h.render(w, r, http.StatusNotFound, "movies/notfound.html", templateData{})
			return
		}

		log.Err(err).Str("slug", slug).Msg("unexpected error occurred loading movie details")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.render(w, r, http.StatusOK, "movies/movie.html", templateData{Movie: movie})
}

func (h *Handler) addMovieForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "movies/add.html", templateData{})
}

// addMovie runs the add-movie flow for the submitted title: fetch metadata,
// store the composed record, redirect to the new detail page. Every expected
// failure re-renders the form with a user-facing message and no state change.
func (h *Handler) addMovie(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	title := r.PostFormValue("movie_title")

	if title == "" {
		h.render(w, r, http.StatusOK, "movies/add.html", templateData{Error: msgMovieTitleRequired})
		return
	}

	movie, err := h.services.MovieService.AddMovie(ctx, title)
	if err != nil {
		var errMsg string
		switch {
		case errors.Is(err, omdb.ErrMovieNotFound):
			errMsg = fmt.Sprintf(msgMovieNotFoundFormat, title)
		case errors.Is(err, store.ErrSlugAlreadyExists):
			errMsg = fmt.Sprintf(msgMovieAlreadyAddedFormat, title)
		case errors.Is(err, omdb.ErrLookupFailed):
			log.Err(err).Str("title", title).Msg("metadata lookup failed")
			errMsg = msgMovieLookupFailed
		default:
			log.Err(err).Str("title", title).Msg("unexpected error occurred adding movie")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		h.render(w, r, http.StatusOK, "movies/add.html", templateData{Error: errMsg, MovieTitle: title})
		return
	}

	http.Redirect(w, r, "/movie/"+movie.Slug, http.StatusFound)
}

// randomMovie picks a uniformly random title from the static classic list,
// fetches it live from the provider, and renders it without persisting
// anything.
func (h *Handler) randomMovie(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	title := catalog.RandomTitle()

	movie, err := h.services.MovieService.FetchMovie(ctx, title)
	if err != nil {
		log.Err(err).Str("title", title).Msg("random movie fetch failed")
		http.Error(w, msgMovieLookupFailed, http.StatusBadGateway)
		return
	}

	h.render(w, r, http.StatusOK, "movies/movie.html", templateData{Movie: movie})
}
