package models

// SessionUser is the public profile snapshot embedded in a session ticket.
type SessionUser struct {
	// RemoteID is the 42 intra user id.
	RemoteID int64 `json:"id"`

	// Login is the intra login handle. Always non-empty in a valid ticket.
	Login string `json:"login"`

	// DisplayName is the best available human-readable name.
	DisplayName string `json:"displayName"`

	// ImageURL is the avatar link, if any.
	ImageURL *string `json:"imageUrl"`
}

// SessionTicket is the payload of a signed session token. It is never
// persisted server-side: the signed string carried in the session cookie
// is the sole materialization.
type SessionTicket struct {
	User SessionUser `json:"user"`

	// AccessToken and RefreshToken are the upstream OAuth tokens, kept
	// inside the signed ticket so the server stays stateless.
	AccessToken  string `json:"access_token,omitempty"`
	RefreshToken string `json:"refresh_token,omitempty"`

	// ExpiresAt is the upstream-reported access-token expiry as a unix
	// epoch. Distinct from the ticket's own signing TTL.
	ExpiresAt int64 `json:"expires_at,omitempty"`
}

// TokenSet holds the result of an OAuth authorization-code exchange.
type TokenSet struct {
	AccessToken  string
	RefreshToken string

	// ExpiresAt is the access-token expiry as a unix epoch, zero when
	// the provider did not report one.
	ExpiresAt int64
}

// LoginRedirect is what the transport layer needs to start a login:
// where to send the browser and the signed anti-CSRF state cookie value.
type LoginRedirect struct {
	AuthURL    string
	StateToken string
}

// CallbackResult is the outcome of a successful OAuth callback: the
// signed session cookie value and the freshly synced student.
type CallbackResult struct {
	SessionToken string
	Student      Student
}
