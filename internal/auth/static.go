// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package auth

import "crypto/subtle"

// StaticStore validates against a single credential pair fixed at process
// start. It always reports an existing admin and rejects the setup flow.
type StaticStore struct {
	username string
	password string
}

// NewStaticStore creates a credential store for the given fixed pair.
func NewStaticStore(username, password string) *StaticStore {
	return &StaticStore{username: username, password: password}
}

// Authenticate compares both fields in constant time so response timing
// does not reveal which one was wrong.
func (s *StaticStore) Authenticate(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) == 1
	return userOK && passOK
}

// Exists always reports true: the fixed pair is the admin identity.
func (s *StaticStore) Exists() bool {
	return true
}

// Setup is not available for the static store.
func (s *StaticStore) Setup(username, password string) error {
	return ErrSetupDisabled
}
