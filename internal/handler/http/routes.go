package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withSession)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.listMovies)
		r.Get("/movie/{slug}", h.movieDetails)
		r.Get("/random", h.randomMovie)

		r.Get("/auth/register", h.registerForm)
		r.Post("/auth/register", h.register)
		r.Get("/auth/login", h.loginForm)
		r.Post("/auth/login", h.login)
		r.Get("/auth/logout", h.logout)
	})

	// routes gated behind a logged-in principal
	router.Group(func(r chi.Router) {
		r.Use(h.requireLogin)
		r.Get("/movies/add", h.addMovieForm)
		r.Post("/movies/add", h.addMovie)
	})

	return router
}
