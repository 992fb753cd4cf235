// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package auth

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// TokenStore keeps the set of live bearer tokens in memory. Tokens have
// no expiry; they live until the process exits or the client logs out.
// A restart therefore invalidates every session, which is acceptable for
// a single-admin deployment.
type TokenStore struct {
	mu     sync.RWMutex
	tokens map[string]time.Time
}

// NewTokenStore creates an empty token registry.
func NewTokenStore() *TokenStore {
	return &TokenStore{tokens: make(map[string]time.Time)}
}

// Issue mints a new opaque bearer token and registers it.
func (s *TokenStore) Issue() string {
	token := uuid.NewString()

	s.mu.Lock()
	s.tokens[token] = time.Now()
	s.mu.Unlock()

	return token
}

// Valid reports whether the token was issued by this process and has not
// been revoked.
func (s *TokenStore) Valid(token string) bool {
	if token == "" {
		return false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.tokens[token]
	return ok
}

// Revoke removes a token. Revoking an unknown token is a no-op.
func (s *TokenStore) Revoke(token string) {
	s.mu.Lock()
	delete(s.tokens, token)
	s.mu.Unlock()
}
