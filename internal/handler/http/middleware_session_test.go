package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jcarruth/movieRecs/internal/service"
	"github.com/jcarruth/movieRecs/models"
)

// TestRequireLogin_AnonymousRedirects verifies the gated routes bounce
// anonymous requests to the login page.
func TestRequireLogin_AnonymousRedirects(t *testing.T) {
	router := newTestHandler(t, nil, &mockMovieService{}).Init()

	for _, target := range []string{"/movies/add"} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusFound, rec.Code, target)
		assert.Equal(t, "/auth/login", rec.Header().Get("Location"), target)
	}
}

// TestWithSession_ValidCookie verifies a valid session cookie resolves the
// principal and lets the gated route through.
func TestWithSession_ValidCookie(t *testing.T) {
	const signedToken = "valid.session.token"

	user := models.User{ID: primitive.NewObjectID(), Username: "alice"}
	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.SessionToken, error) {
			if tokenString != signedToken {
				return models.SessionToken{}, service.ErrSessionInvalid
			}
			return models.SessionToken{UserID: user.ID.Hex()}, nil
		},
		currentUserFn: func(_ context.Context, userID string) (models.User, error) {
			assert.Equal(t, user.ID.Hex(), userID)
			return user, nil
		},
	}

	router := newTestHandler(t, auth, &mockMovieService{}).Init()
	req := httptest.NewRequest(http.MethodGet, "/movies/add", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: signedToken})
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	// the nav reflects the resolved principal
	body := rec.Body.String()
	assert.Contains(t, body, "alice")
	assert.Contains(t, body, "Log Out")
}

// TestWithSession_RejectedTokenDegradesToAnonymous verifies that a tampered or
// expired token never errors the request, it just stays anonymous.
func TestWithSession_RejectedTokenDegradesToAnonymous(t *testing.T) {
	movies := &mockMovieService{
		listFn: func(_ context.Context) ([]models.Movie, error) {
			return nil, nil
		},
	}

	router := newTestHandler(t, &mockAuthService{}, movies).Init()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "tampered.token"})
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Log In")
}

// TestWithSession_StaleUserDegradesToAnonymous covers a token whose user id
// no longer resolves to a live record.
func TestWithSession_StaleUserDegradesToAnonymous(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, _ string) (models.SessionToken, error) {
			return models.SessionToken{UserID: primitive.NewObjectID().Hex()}, nil
		},
		// currentUserFn is nil: the default returns store.ErrNoUserWasFound
	}
	movies := &mockMovieService{
		listFn: func(_ context.Context) ([]models.Movie, error) {
			return nil, nil
		},
	}

	router := newTestHandler(t, auth, movies).Init()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "orphaned.token"})
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Log In")
}

// TestLoginThenAddMovie_EndToEnd runs the login flow through the router and
// replays the issued cookie against a gated route.
func TestLoginThenAddMovie_EndToEnd(t *testing.T) {
	const signedToken = "issued.session.token"

	user := models.User{ID: primitive.NewObjectID(), Username: "alice"}
	auth := &mockAuthService{
		loginFn: func(_ context.Context, username, password string) (models.User, error) {
			require.Equal(t, "alice", username)
			require.Equal(t, "s3cret", password)
			return user, nil
		},
		createTokenFn: func(_ context.Context, _ models.User) (models.SessionToken, error) {
			return models.SessionToken{SignedString: signedToken}, nil
		},
		parseTokenFn: func(_ context.Context, tokenString string) (models.SessionToken, error) {
			if tokenString != signedToken {
				return models.SessionToken{}, service.ErrSessionInvalid
			}
			return models.SessionToken{UserID: user.ID.Hex()}, nil
		},
		currentUserFn: func(_ context.Context, _ string) (models.User, error) {
			return user, nil
		},
	}
	movies := &mockMovieService{
		addFn: func(_ context.Context, title string) (models.Movie, error) {
			return models.Movie{Slug: "casablanca", Title: title}, nil
		},
	}

	router := newTestHandler(t, auth, movies).Init()

	// log in
	loginReq := postForm("/auth/login", credentialsForm("alice", "s3cret"))
	loginRec := httptest.NewRecorder()
	router.ServeHTTP(loginRec, loginReq)

	require.Equal(t, http.StatusFound, loginRec.Code)
	cookies := loginRec.Result().Cookies()
	require.Len(t, cookies, 1)

	// replay the session cookie against the gated add route
	addReq := postForm("/movies/add", url.Values{"movie_title": {"Casablanca"}})
	addReq.AddCookie(cookies[0])
	addRec := httptest.NewRecorder()
	router.ServeHTTP(addRec, addReq)

	require.Equal(t, http.StatusFound, addRec.Code)
	assert.Equal(t, "/movie/casablanca", addRec.Header().Get("Location"))
}
