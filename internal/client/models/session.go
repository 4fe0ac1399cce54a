// Package models defines client-side data models used by the ERP session
// client.
package models

// DefaultThemeColor is the accent color used until a dashboard payload
// supplies one, and again after logout.
const DefaultThemeColor = "#007AFF"

// Phase is the position of the session manager in its lifecycle.
type Phase string

const (
	PhaseUninitialized   Phase = "uninitialized"
	PhaseHydrating       Phase = "hydrating"
	PhaseAuthenticated   Phase = "authenticated"
	PhaseUnauthenticated Phase = "unauthenticated"
)

// Session is the authenticated identity of the current user.
type Session struct {
	// UserID is the server-assigned user id confirmed by OTP.
	UserID string
	// Token is the bearer token returned by OTP verification.
	Token string
}

// Authenticated reports whether both UserID and Token are set.
func (s Session) Authenticated() bool {
	return s.UserID != "" && s.Token != ""
}

// PendingLogin is the in-memory result of a successful password login that
// still awaits OTP confirmation. It is never persisted.
type PendingLogin struct {
	// Ticket is the opaque identifier handed to the caller by Login.
	Ticket string
	// UserID is the numeric user id returned by the login endpoint.
	UserID string
	// Password is the password submitted with the login. Nothing reads it
	// back; it is kept only to mirror what the server accepted.
	Password []byte
}

// LoginResult is what Login returns to the presentation layer.
type LoginResult struct {
	Status bool
	Msg    string
	UserID string
	// Ticket is set only when Status is true and must be passed to VerifyOTP.
	Ticket string
}
