// SPDX-License-Identifier: Apache-2.0

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jcarruth/movieRecs/internal/logger"
	"github.com/jcarruth/movieRecs/internal/service"
	"github.com/jcarruth/movieRecs/internal/store"
	"github.com/jcarruth/movieRecs/models"
)

// ─────────────────────────────────────────────
// Mock AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerFn    func(ctx context.Context, username, password string) (models.User, error)
	loginFn       func(ctx context.Context, username, password string) (models.User, error)
	createTokenFn func(ctx context.Context, user models.User) (models.SessionToken, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.SessionToken, error)
	currentUserFn func(ctx context.Context, userID string) (models.User, error)
}

func (m *mockAuthService) Register(ctx context.Context, username, password string) (models.User, error) {
	return m.registerFn(ctx, username, password)
}

func (m *mockAuthService) Login(ctx context.Context, username, password string) (models.User, error) {
	return m.loginFn(ctx, username, password)
}

func (m *mockAuthService) CreateSessionToken(ctx context.Context, user models.User) (models.SessionToken, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseSessionToken(ctx context.Context, tokenString string) (models.SessionToken, error) {
	if m.parseTokenFn == nil {
		return models.SessionToken{}, service.ErrSessionInvalid
	}
	return m.parseTokenFn(ctx, tokenString)
}

func (m *mockAuthService) CurrentUser(ctx context.Context, userID string) (models.User, error) {
	if m.currentUserFn == nil {
		return models.User{}, store.ErrNoUserWasFound
	}
	return m.currentUserFn(ctx, userID)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler with the given service mocks. Either mock
// may be nil when the tested route never touches it.
func newTestHandler(t *testing.T, auth service.AuthService, movies service.MovieService) *Handler {
	t.Helper()

	if auth == nil {
		auth = &mockAuthService{}
	}
	if movies == nil {
		movies = &mockMovieService{}
	}

	return NewHandler(&service.Services{
		AuthService:  auth,
		MovieService: movies,
	}, logger.Nop())
}

// postForm builds a form POST the way a browser submits an HTML form.
func postForm(target string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func credentialsForm(username, password string) url.Values {
	return url.Values{
		"username": {username},
		"password": {password},
	}
}

// ─────────────────────────────────────────────
// register
// ─────────────────────────────────────────────

// TestRegister_Success verifies that a valid registration redirects to the
// login page.
func TestRegister_Success(t *testing.T) {
	auth := &mockAuthService{
		registerFn: func(_ context.Context, username, _ string) (models.User, error) {
			return models.User{ID: primitive.NewObjectID(), Username: username}, nil
		},
	}

	h := newTestHandler(t, auth, nil)
	req := postForm("/auth/register", credentialsForm("alice", "s3cret"))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/auth/login", rec.Header().Get("Location"))
}

// TestRegister_MissingFields verifies that empty fields re-render the form
// with the matching message and never reach the service.
func TestRegister_MissingFields(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		wantMsg  string
	}{
		{name: "missing username", username: "", password: "s3cret", wantMsg: msgUsernameRequired},
		{name: "missing password", username: "alice", password: "", wantMsg: msgPasswordRequired},
		{name: "missing both", username: "", password: "", wantMsg: msgUsernameRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t, &mockAuthService{}, nil)
			req := postForm("/auth/register", credentialsForm(tt.username, tt.password))
			rec := httptest.NewRecorder()

			h.register(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantMsg)
		})
	}
}

// TestRegister_UsernameTaken verifies the duplicate-username message names the
// offending username.
func TestRegister_UsernameTaken(t *testing.T) {
	auth := &mockAuthService{
		registerFn: func(_ context.Context, _, _ string) (models.User, error) {
			return models.User{}, store.ErrUsernameAlreadyExists
		},
	}

	h := newTestHandler(t, auth, nil)
	req := postForm("/auth/register", credentialsForm("alice", "s3cret"))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "User alice is already registered.")
}

// ─────────────────────────────────────────────
// login
// ─────────────────────────────────────────────

// TestLogin_Success verifies that valid credentials set the session cookie
// and redirect to the root.
func TestLogin_Success(t *testing.T) {
	const signedToken = "signed.jwt.token"

	user := models.User{ID: primitive.NewObjectID(), Username: "alice"}
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _, _ string) (models.User, error) {
			return user, nil
		},
		createTokenFn: func(_ context.Context, _ models.User) (models.SessionToken, error) {
			return models.SessionToken{SignedString: signedToken}, nil
		},
	}

	h := newTestHandler(t, auth, nil)
	req := postForm("/auth/login", credentialsForm("alice", "s3cret"))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, sessionCookieName, cookies[0].Name)
	assert.Equal(t, signedToken, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

// TestLogin_Failures verifies the message shown for each rejected login.
func TestLogin_Failures(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		loginErr error
		wantMsg  string
	}{
		{name: "unknown username", username: "mallory", password: "s3cret", loginErr: store.ErrNoUserWasFound, wantMsg: msgIncorrectUsername},
		{name: "wrong password", username: "alice", password: "wrong", loginErr: service.ErrWrongPassword, wantMsg: msgIncorrectPassword},
		{name: "empty username", username: "", password: "s3cret", loginErr: service.ErrInvalidDataProvided, wantMsg: msgIncorrectUsername},
		{name: "empty password", username: "alice", password: "", loginErr: service.ErrInvalidDataProvided, wantMsg: msgIncorrectPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuthService{
				loginFn: func(_ context.Context, _, _ string) (models.User, error) {
					return models.User{}, tt.loginErr
				},
			}

			h := newTestHandler(t, auth, nil)
			req := postForm("/auth/login", credentialsForm(tt.username, tt.password))
			rec := httptest.NewRecorder()

			h.login(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantMsg)

			// a failed login must not establish a session
			assert.Empty(t, rec.Result().Cookies())
		})
	}
}

// ─────────────────────────────────────────────
// logout
// ─────────────────────────────────────────────

// TestLogout verifies that logout expires the session cookie and redirects
// to the root.
func TestLogout(t *testing.T) {
	h := newTestHandler(t, nil, nil)
	req := httptest.NewRequest(http.MethodGet, "/auth/logout", nil)
	rec := httptest.NewRecorder()

	h.logout(rec, req)

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, sessionCookieName, cookies[0].Name)
	assert.Less(t, cookies[0].MaxAge, 0)
}
