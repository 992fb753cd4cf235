// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/base64"
	"errors"
	"log/slog"
	"net/http"

	"github.com/pquerna/otp/totp"
	qrcode "github.com/skip2/go-qrcode"

	"vitrine/internal/auth"
	"vitrine/internal/middleware"
)

// errInvalidCredentials is the single message for every credential
// failure. Unknown username and wrong password are indistinguishable.
const errInvalidCredentials = "Invalid credentials"

// Auth groups the login, setup, and two-factor HTTP handlers.
type Auth struct {
	creds  auth.CredentialStore
	tokens *auth.TokenStore
}

// NewAuth creates a new Auth handler group.
func NewAuth(creds auth.CredentialStore, tokens *auth.TokenStore) *Auth {
	return &Auth{creds: creds, tokens: tokens}
}

// Login validates credentials and issues a bearer token.
func (a *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
		Code     string `json:"code"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if !a.creds.Authenticate(req.Username, req.Password) {
		respondError(w, http.StatusUnauthorized, errInvalidCredentials)
		return
	}

	// Second factor, when the credential store has it enabled. The code
	// prompt only appears after the password checked out, so a failed
	// password still yields the uniform message above.
	if tf, ok := a.creds.(auth.TwoFactor); ok {
		if secret, enabled := tf.TOTPSecret(); enabled {
			if req.Code == "" {
				respondError(w, http.StatusUnauthorized, "Two-factor code required")
				return
			}
			if !totp.Validate(req.Code, secret) {
				respondError(w, http.StatusUnauthorized, errInvalidCredentials)
				return
			}
		}
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"token":   a.tokens.Issue(),
	})
}

// Logout revokes the presented bearer token. Runs behind RequireToken,
// so the token is known to be live.
func (a *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	a.tokens.Revoke(middleware.BearerToken(r))
	respondJSON(w, http.StatusOK, map[string]any{"success": true})
}

// Check reports whether an admin identity exists. The setup UI uses this
// to decide between the setup form and the login form.
func (a *Auth) Check(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]bool{"exists": a.creds.Exists()})
}

// Setup creates the admin identity (file-backed store only) and grants
// access immediately by issuing a token.
func (a *Auth) Setup(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username        string `json:"username"`
		Password        string `json:"password"`
		ConfirmPassword string `json:"confirmPassword"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Password != req.ConfirmPassword {
		respondError(w, http.StatusBadRequest, "Passwords do not match")
		return
	}

	if err := a.creds.Setup(req.Username, req.Password); err != nil {
		switch {
		case errors.Is(err, auth.ErrSetupDisabled):
			respondError(w, http.StatusForbidden, "Admin setup is disabled")
		case errors.Is(err, auth.ErrAdminExists):
			respondError(w, http.StatusConflict, "Admin account already exists")
		case errors.Is(err, auth.ErrUsernameTooShort), errors.Is(err, auth.ErrPasswordTooShort):
			respondError(w, http.StatusBadRequest, err.Error())
		default:
			slog.Error("admin setup failed", "error", err)
			respondError(w, http.StatusInternalServerError, "Failed to create admin account")
		}
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"token":   a.tokens.Issue(),
	})
}

// TwoFASetup generates a TOTP secret for the admin and returns it with a
// provisioning QR code. Enforcement stays off until TwoFAVerify confirms
// a code from the enrolled device.
func (a *Auth) TwoFASetup(w http.ResponseWriter, r *http.Request) {
	tf, ok := a.creds.(auth.TwoFactor)
	if !ok {
		respondError(w, http.StatusForbidden, "Two-factor authentication is not available")
		return
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      "Vitrine",
		AccountName: tf.Username(),
	})
	if err != nil {
		slog.Error("totp generate failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to start enrollment")
		return
	}

	if err := tf.BeginEnrollment(key.Secret()); err != nil {
		slog.Error("totp enrollment persist failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to start enrollment")
		return
	}

	qrPNG, err := qrcode.Encode(key.URL(), qrcode.Medium, 256)
	if err != nil {
		slog.Error("qr code generation failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to start enrollment")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"secret": key.Secret(),
		"qr":     base64.StdEncoding.EncodeToString(qrPNG),
	})
}

// TwoFAVerify validates a code against the pending secret and turns
// enforcement on.
func (a *Auth) TwoFAVerify(w http.ResponseWriter, r *http.Request) {
	tf, ok := a.creds.(auth.TwoFactor)
	if !ok {
		respondError(w, http.StatusForbidden, "Two-factor authentication is not available")
		return
	}

	var req struct {
		Code string `json:"code"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	secret, _ := tf.TOTPSecret()
	if secret == "" || !totp.Validate(req.Code, secret) {
		respondError(w, http.StatusBadRequest, "Invalid code")
		return
	}

	if err := tf.ConfirmEnrollment(); err != nil {
		slog.Error("totp confirm failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to enable two-factor authentication")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"success": true})
}
