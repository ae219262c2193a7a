package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jcarruth/movieRecs/internal/logger"
	"github.com/jcarruth/movieRecs/internal/service"
	"github.com/jcarruth/movieRecs/internal/store"
)

func (h *Handler) registerForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "auth/register.html", templateData{})
}

// register attempts to create a new account from the submitted form.
// Validation failures and username conflicts re-render the form with a
// user-facing message; success redirects to the login page.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	var errMsg string
	switch {
	case username == "":
		errMsg = msgUsernameRequired
	case password == "":
		errMsg = msgPasswordRequired
	}

	if errMsg == "" {
		_, err := h.services.AuthService.Register(ctx, username, password)
		switch {
		case err == nil:
			http.Redirect(w, r, "/auth/login", http.StatusFound)
			return
		case errors.Is(err, store.ErrUsernameAlreadyExists):
			log.Debug().Str("username", username).Msg("username already registered")
			errMsg = fmt.Sprintf(msgUserAlreadyRegisteredFormat, username)
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	h.render(w, r, http.StatusOK, "auth/register.html", templateData{Error: errMsg})
}

func (h *Handler) loginForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "auth/login.html", templateData{})
}

// login verifies the submitted credentials and establishes a new session.
// Establishing a session overwrites any prior session cookie, then the user
// is redirected to the application root.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	user, err := h.services.AuthService.Login(ctx, username, password)
	if err != nil {
		var errMsg string
		switch {
		case errors.Is(err, store.ErrNoUserWasFound):
			errMsg = msgIncorrectUsername
		case errors.Is(err, service.ErrWrongPassword):
			errMsg = msgIncorrectPassword
		case errors.Is(err, service.ErrInvalidDataProvided):
			// An empty username can never match a record; an empty password
			// can never match a stored hash.
			if username == "" {
				errMsg = msgIncorrectUsername
			} else {
				errMsg = msgIncorrectPassword
			}
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		h.render(w, r, http.StatusOK, "auth/login.html", templateData{Error: errMsg})
		return
	}

	token, err := h.services.AuthService.CreateSessionToken(ctx, user)
	if err != nil {
		log.Err(err).Msg("creation of session token failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	log.Debug().Str("username", user.Username).Msg("user successfully logged in")

	setSessionCookie(w, token)
	http.Redirect(w, r, "/", http.StatusFound)
}

// logout clears the session and returns to the movie list.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	clearSessionCookie(w)
	http.Redirect(w, r, "/", http.StatusFound)
}
