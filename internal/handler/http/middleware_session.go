// SPDX-License-Identifier: Apache-2.0

package http

import (
	"context"
	"net/http"

	"github.com/jcarruth/movieRecs/internal/logger"
	"github.com/jcarruth/movieRecs/internal/utils"
)

// withSession resolves the request's principal exactly once per request.
//
// It reads the session cookie, validates the token via
// [service.AuthService.ParseSessionToken], and resolves the bound user id
// against the credential store. On success the user is stored in the request
// context under [utils.PrincipalCtxKey] before delegating to the next
// handler.
//
// Every failure mode degrades to an anonymous request rather than an error
// response: a missing cookie, an expired or tampered token, and an id that
// no longer resolves to a live user are all equivalent to "not logged in".
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		ctx := r.Context()

		cookie, err := r.Cookie(sessionCookieName)
		if err != nil || cookie.Value == "" {
			next.ServeHTTP(w, r)
			return
		}

		token, err := h.services.AuthService.ParseSessionToken(ctx, cookie.Value)
		if err != nil {
			log.Debug().Err(err).Msg("session token rejected, treating request as anonymous")
			next.ServeHTTP(w, r)
			return
		}

		user, err := h.services.AuthService.CurrentUser(ctx, token.UserID)
		if err != nil {
			log.Debug().Err(err).Str("user_id", token.UserID).Msg("session principal did not resolve, treating request as anonymous")
			next.ServeHTTP(w, r)
			return
		}

		ctx = context.WithValue(ctx, utils.PrincipalCtxKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireLogin gates a route behind a resolved principal. Anonymous requests
// are redirected to the login page instead of the inner handler running.
func (h *Handler) requireLogin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := principalFromRequest(r); !ok {
			http.Redirect(w, r, "/auth/login", http.StatusFound)
			return
		}

		next.ServeHTTP(w, r)
	})
}
