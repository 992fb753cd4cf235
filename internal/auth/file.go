// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package auth

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// adminRecord is the persisted admin identity. The password is stored as
// a bcrypt hash, never plaintext.
type adminRecord struct {
	Username     string    `json:"username"`
	PasswordHash string    `json:"password_hash"`
	TOTPSecret   string    `json:"totp_secret,omitempty"`
	TOTPEnabled  bool      `json:"totp_enabled"`
	CreatedAt    time.Time `json:"created_at"`
}

// FileStore persists the admin identity created by the one-time setup
// flow in a JSON file next to the collection files.
type FileStore struct {
	mu    sync.Mutex
	path  string
	admin *adminRecord // nil until setup has run
}

// NewFileStore loads the admin identity from the given file if it exists.
// A corrupt file is treated the same as a missing one: no admin exists
// until setup runs again.
func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{path: path}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read admin file: %w", err)
	}

	var rec adminRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		slog.Warn("admin file unreadable, setup required", "path", path, "error", err)
		return s, nil
	}
	s.admin = &rec
	return s, nil
}

// Authenticate checks the username and the bcrypt password hash. It
// returns false when no admin has been set up yet.
func (s *FileStore) Authenticate(username, password string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.admin == nil {
		return false
	}
	if username != s.admin.Username {
		// Burn a hash comparison anyway so unknown usernames take as
		// long to reject as wrong passwords.
		bcrypt.CompareHashAndPassword([]byte(s.admin.PasswordHash), []byte(password))
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(s.admin.PasswordHash), []byte(password)) == nil
}

// Exists reports whether the setup flow has created an admin identity.
func (s *FileStore) Exists() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.admin != nil
}

// Setup validates and persists a new admin identity. It is one-time:
// once an admin exists, further setup attempts are rejected. Validation
// runs before anything touches disk.
func (s *FileStore) Setup(username, password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.admin != nil {
		return ErrAdminExists
	}
	if len(strings.TrimSpace(username)) < minUsernameLen {
		return ErrUsernameTooShort
	}
	if len(password) < minPasswordLen {
		return ErrPasswordTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	rec := &adminRecord{
		Username:     strings.TrimSpace(username),
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	if err := s.persist(rec); err != nil {
		return err
	}
	s.admin = rec
	return nil
}

// BeginEnrollment stores a pending TOTP secret for the admin.
func (s *FileStore) BeginEnrollment(secret string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.admin == nil {
		return ErrSetupDisabled
	}
	rec := *s.admin
	rec.TOTPSecret = secret
	rec.TOTPEnabled = false
	if err := s.persist(&rec); err != nil {
		return err
	}
	s.admin = &rec
	return nil
}

// ConfirmEnrollment enables TOTP enforcement after a code verified.
func (s *FileStore) ConfirmEnrollment() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.admin == nil || s.admin.TOTPSecret == "" {
		return ErrSetupDisabled
	}
	rec := *s.admin
	rec.TOTPEnabled = true
	if err := s.persist(&rec); err != nil {
		return err
	}
	s.admin = &rec
	return nil
}

// TOTPSecret returns the stored secret and whether enforcement is on.
func (s *FileStore) TOTPSecret() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.admin == nil {
		return "", false
	}
	return s.admin.TOTPSecret, s.admin.TOTPEnabled
}

// Username returns the persisted admin username, or "" before setup.
func (s *FileStore) Username() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.admin == nil {
		return ""
	}
	return s.admin.Username
}

// persist writes the record via temp file and rename, matching the
// collection files' crash behavior. Callers must hold s.mu.
func (s *FileStore) persist(rec *adminRecord) error {
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal admin record: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), "admin-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp admin file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write admin file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close admin file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace admin file: %w", err)
	}
	return nil
}
