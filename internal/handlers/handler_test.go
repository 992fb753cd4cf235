// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure for handler
// integration tests. Each test gets a fresh data directory, a full router,
// and a pre-issued bearer token, so requests exercise the real middleware
// chain end to end.
package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"vitrine/internal/auth"
	"vitrine/internal/handlers"
	"vitrine/internal/router"
	"vitrine/internal/storage"
	"vitrine/internal/store"
)

// testEnv holds all dependencies for handler integration tests.
type testEnv struct {
	Router chi.Router
	Blogs  *store.BlogStore
	Creds  auth.CredentialStore
	Token  string
}

// envOption tweaks the environment before the router is built.
type envOption func(*envConfig)

type envConfig struct {
	creds auth.CredentialStore
}

// withCreds swaps in a different credential store (e.g. a FileStore for
// setup-flow tests).
func withCreds(creds auth.CredentialStore) envOption {
	return func(c *envConfig) { c.creds = creds }
}

// newTestEnv builds a complete stack over a temp data directory. The
// default credential store is a static admin/secretpass pair.
func newTestEnv(t *testing.T, opts ...envOption) *testEnv {
	t.Helper()

	dir := t.TempDir()
	blogCol, err := storage.NewCollection(dir, "blogs")
	if err != nil {
		t.Fatalf("blogs collection: %v", err)
	}
	productCol, err := storage.NewCollection(dir, "products")
	if err != nil {
		t.Fatalf("products collection: %v", err)
	}
	contactCol, err := storage.NewCollection(dir, "contacts")
	if err != nil {
		t.Fatalf("contacts collection: %v", err)
	}

	cfg := &envConfig{creds: auth.NewStaticStore("admin", "secretpass")}
	for _, opt := range opts {
		opt(cfg)
	}

	blogs := store.NewBlogStore(blogCol)
	products := store.NewProductStore(productCol)
	contacts := store.NewContactStore(contactCol)
	tokens := auth.NewTokenStore()

	admin := handlers.NewAdmin(blogs, products, contacts)
	authH := handlers.NewAuth(cfg.creds, tokens)
	public := handlers.NewPublic(blogs, products, contacts, nil)

	return &testEnv{
		Router: router.New(tokens, admin, authH, public, []string{"*"}),
		Blogs:  blogs,
		Creds:  cfg.creds,
		Token:  tokens.Issue(),
	}
}

// do runs one request through the router. A non-empty token is attached
// as a bearer Authorization header.
func (e *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.Router.ServeHTTP(rec, req)
	return rec
}

// decode unmarshals a response body, failing the test on bad JSON.
func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return v
}
