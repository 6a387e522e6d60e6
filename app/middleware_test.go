package main

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"

	"github.com/lauriko/bloglist/internal/userservice"
)

// newLightweightApplication builds an application with no database behind it,
// enough for middleware that never touches storage.
func newLightweightApplication() *application {
	cfg := &Config{}
	cfg.Auth.Secret = testSecret
	cfg.Auth.TokenTTL = time.Hour
	cfg.Limiter.Enabled = false

	return &application{
		config:      cfg,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		userService: userservice.NewUserService(nil, nil, testSecret, time.Hour),
	}
}

func signTestToken(t *testing.T, secret string, username string, id int, ttl time.Duration) string {
	claims := jwt.MapClaims{
		"username": username,
		"id":       id,
		"exp":      time.Now().Add(ttl).Unix(),
		"iat":      time.Now().Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatal(err)
	}

	return token
}

func TestRecoverPanic(t *testing.T) {
	app := newLightweightApplication()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("something went wrong")
	})

	rr := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	app.recoverPanic(next).ServeHTTP(rr, r)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "close", rr.Header().Get("Connection"))
}

func TestAuthenticate(t *testing.T) {
	app := newLightweightApplication()

	testCases := []struct {
		name           string
		authHeader     string
		expectedStatus int
		expectIdentity bool
	}{
		{
			name:           "valid token",
			authHeader:     "Bearer " + signTestToken(t, testSecret, "testuser", 1, time.Hour),
			expectedStatus: http.StatusOK,
			expectIdentity: true,
		},
		{
			name:           "no header passes through anonymously",
			authHeader:     "",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "expired token",
			authHeader:     "Bearer " + signTestToken(t, testSecret, "testuser", 1, -time.Minute),
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "token signed with another key",
			authHeader:     "Bearer " + signTestToken(t, "wrongsecret", "testuser", 1, time.Hour),
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "malformed token",
			authHeader:     "Bearer not-a-token",
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var identity *userservice.Identity
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				identity = app.getIdentityContext(r)
				w.WriteHeader(http.StatusOK)
			})

			rr := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.authHeader != "" {
				r.Header.Set("Authorization", tc.authHeader)
			}

			app.authenticate(next).ServeHTTP(rr, r)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.expectIdentity {
				assert.NotNil(t, identity)
				assert.Equal(t, "testuser", identity.Username)
				assert.Equal(t, 1, identity.ID)
			}
		})
	}
}

func TestRequireAuthUser(t *testing.T) {
	app := newLightweightApplication()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("anonymous request is rejected", func(t *testing.T) {
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/blogs", nil)

		app.requireAuthUser(next).ServeHTTP(rr, r)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Equal(t, "Bearer", rr.Header().Get("WWW-Authenticate"))
	})

	t.Run("authenticated request passes", func(t *testing.T) {
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/blogs", nil)
		r = app.createIdentityContext(r, &userservice.Identity{ID: 1, Username: "testuser"})

		app.requireAuthUser(next).ServeHTTP(rr, r)

		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestRateLimit(t *testing.T) {
	app := newLightweightApplication()
	app.config.Limiter.Enabled = true
	app.config.Limiter.RPS = 2
	app.config.Limiter.Burst = 4

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := app.rateLimit(next)

	var lastCode int
	for i := 0; i < 5; i++ {
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.RemoteAddr = "10.0.0.1:12345"
		handler.ServeHTTP(rr, r)
		lastCode = rr.Code
	}

	assert.Equal(t, http.StatusTooManyRequests, lastCode)
}
