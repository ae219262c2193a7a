package http

import (
	"net/http"

	"github.com/jcarruth/movieRecs/internal/utils"
	"github.com/jcarruth/movieRecs/models"
)

// sessionCookieName is the cookie carrying the signed session token.
const sessionCookieName = "session"

// setSessionCookie binds the signed session token to the client. Writing a
// fresh cookie replaces any prior session, which is exactly the "clear then
// establish" semantic login requires. No MaxAge is set: the token's own
// expiry claim bounds the session's validity.
func setSessionCookie(w http.ResponseWriter, token models.SessionToken) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token.SignedString,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// clearSessionCookie expires the session cookie on the client.
func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// principalFromRequest returns the user the session middleware resolved for
// this request, if any.
func principalFromRequest(r *http.Request) (models.User, bool) {
	return utils.GetPrincipalFromContext(r.Context())
}
