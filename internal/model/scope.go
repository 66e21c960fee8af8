package model

// Scope carries the authenticated caller's identity for a single request.
// It is rebuilt by the auth middleware on every request and never persisted.
type Scope struct {
	UserID string
	Email  string

	// GoogleAccessToken is the caller's calendar credential, verified and
	// extracted from the session token upstream.
	GoogleAccessToken string
}
