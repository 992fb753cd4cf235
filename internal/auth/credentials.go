// Package auth provides the admin credential stores and the bearer token
// registry that gates the admin API. Two credential stores implement the
// same interface: a static one holding a single configured pair, and a
// file-backed one created through the one-time setup flow. Which one runs
// is a process configuration choice, not a runtime switch.
package auth

import "errors"

// Setup validation and state errors.
var (
	ErrSetupDisabled    = errors.New("admin setup is disabled")
	ErrAdminExists      = errors.New("admin account already exists")
	ErrUsernameTooShort = errors.New("username must be at least 3 characters")
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")
)

const (
	minUsernameLen = 3
	minPasswordLen = 6
)

// CredentialStore validates admin credentials. Authenticate never reveals
// whether the username or the password was wrong.
type CredentialStore interface {
	// Authenticate reports whether the pair matches the stored identity.
	Authenticate(username, password string) bool

	// Exists reports whether an admin identity is available to log in as.
	Exists() bool

	// Setup creates the admin identity. Stores that do not support the
	// setup flow return ErrSetupDisabled.
	Setup(username, password string) error
}

// TwoFactor is implemented by credential stores that support an optional
// TOTP second factor on top of the password check.
type TwoFactor interface {
	// BeginEnrollment stores a pending TOTP secret. The secret is not
	// enforced until ConfirmEnrollment verifies a code against it.
	BeginEnrollment(secret string) error

	// ConfirmEnrollment turns enforcement on after a code verified.
	ConfirmEnrollment() error

	// TOTPSecret returns the stored secret and whether enforcement is on.
	TOTPSecret() (secret string, enabled bool)

	// Username names the identity being enrolled, for the provisioning URI.
	Username() string
}
