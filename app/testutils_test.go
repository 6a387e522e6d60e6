package main

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/lauriko/bloglist/internal/blogservice"
	"github.com/lauriko/bloglist/internal/common"
	"github.com/lauriko/bloglist/internal/userservice"
)

const testSecret = "testsecret"

func newTestApplication(t *testing.T) *application {
	db := common.TestDB("file://../migrations", t)
	cache := common.NewCache(5*time.Minute, 10*time.Minute)

	cfg := &Config{}
	cfg.Environment = "test"
	cfg.Auth.Secret = testSecret
	cfg.Auth.TokenTTL = time.Hour
	cfg.Limiter.Enabled = false

	return &application{
		config:      cfg,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		userService: userservice.NewUserService(db, nil, testSecret, time.Hour),
		blogService: blogservice.NewBlogService(db, cache),
	}
}

type testServer struct {
	*httptest.Server
}

func newTestServer(h http.Handler) *testServer {
	return &testServer{httptest.NewServer(h)}
}

func (ts *testServer) request(t *testing.T, method, urlPath, token string, body []byte) (int, http.Header, []byte) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequest(method, ts.URL+urlPath, reader)
	if err != nil {
		t.Fatal(err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rs, err := ts.Client().Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer rs.Body.Close()

	respBody, err := io.ReadAll(rs.Body)
	if err != nil {
		t.Fatal(err)
	}

	return rs.StatusCode, rs.Header, respBody
}

func (ts *testServer) get(t *testing.T, urlPath string) (int, http.Header, []byte) {
	return ts.request(t, http.MethodGet, urlPath, "", nil)
}

func (ts *testServer) post(t *testing.T, urlPath, token string, body []byte) (int, http.Header, []byte) {
	return ts.request(t, http.MethodPost, urlPath, token, body)
}

func (ts *testServer) put(t *testing.T, urlPath, token string, body []byte) (int, http.Header, []byte) {
	return ts.request(t, http.MethodPut, urlPath, token, body)
}

func (ts *testServer) delete(t *testing.T, urlPath, token string) (int, http.Header, []byte) {
	return ts.request(t, http.MethodDelete, urlPath, token, nil)
}
