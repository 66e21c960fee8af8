package session

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrMalformedToken   = errors.New("malformed session token")
	ErrBadSignature     = errors.New("session token signature verification failed")
	ErrExpiredToken     = errors.New("session token expired")
	ErrMissingAccessTok = errors.New("session has no calendar access token")
)

// Claims is the payload carried inside a signed session token. The upstream
// auth provider mints these after the OAuth exchange; this service only
// verifies and reads them.
type Claims struct {
	UserID      string    `json:"user_id"`
	Email       string    `json:"email,omitempty"`
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// Manager signs and verifies session tokens with a shared secret.
type Manager struct {
	secret []byte
}

// NewManager creates a session token manager from the shared secret.
func NewManager(secret string) (*Manager, error) {
	if secret == "" {
		return nil, errors.New("session secret is required")
	}
	return &Manager{secret: []byte(secret)}, nil
}

// Sign encodes claims as <base64url(payload)>.<base64url(hmac-sha256)>.
func (m *Manager) Sign(claims Claims) (string, error) {
	payload, err := json.Marshal(claims)
	if err != nil {
		return "", fmt.Errorf("failed to marshal claims: %w", err)
	}

	encoded := base64.RawURLEncoding.EncodeToString(payload)
	return encoded + "." + m.signature(encoded), nil
}

// Verify checks the token signature and expiry and returns the claims.
func (m *Manager) Verify(token string) (Claims, error) {
	encoded, sig, ok := strings.Cut(token, ".")
	if !ok || encoded == "" || sig == "" {
		return Claims{}, ErrMalformedToken
	}

	expected, err := base64.RawURLEncoding.DecodeString(m.signature(encoded))
	if err != nil {
		return Claims{}, ErrMalformedToken
	}
	actual, err := base64.RawURLEncoding.DecodeString(sig)
	if err != nil {
		return Claims{}, ErrMalformedToken
	}

	// Constant-time comparison on raw bytes
	if !hmac.Equal(expected, actual) {
		return Claims{}, ErrBadSignature
	}

	payload, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return Claims{}, ErrMalformedToken
	}

	var claims Claims
	if err := json.Unmarshal(payload, &claims); err != nil {
		return Claims{}, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}

	if !claims.ExpiresAt.IsZero() && time.Now().After(claims.ExpiresAt) {
		return Claims{}, ErrExpiredToken
	}
	if claims.AccessToken == "" {
		return Claims{}, ErrMissingAccessTok
	}

	return claims, nil
}

func (m *Manager) signature(encodedPayload string) string {
	mac := hmac.New(sha256.New, m.secret)
	mac.Write([]byte(encodedPayload))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
