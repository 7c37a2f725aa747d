// Package intra talks to the 42 intra API: the OAuth2 authorization-code
// dance and the paginated v2 resource collections the reconciliation
// engine mirrors.
package intra

//go:generate mockgen -source=interfaces.go -destination=../mock/intra_mock.go -package=mock

import (
	"context"

	"github.com/Grihladin/42Connect/models"
)

// OAuth is the authorization-code client used by the login flow.
type OAuth interface {
	// AuthCodeURL builds the intra authorization URL carrying state.
	AuthCodeURL(state string) string

	// Exchange trades an authorization code for a token set.
	Exchange(ctx context.Context, code string) (models.TokenSet, error)

	// Revoke invalidates a refresh token upstream. Callers treat
	// failures as non-fatal.
	Revoke(ctx context.Context, refreshToken string) error
}

// API is the authenticated read surface of the intra v2 API. Collection
// methods retrieve the complete collection across all pages; any
// non-success page aborts with [ErrUpstreamUnavailable] and no partial
// result.
type API interface {
	// Me fetches the authenticated user's profile.
	Me(ctx context.Context, accessToken string) (models.RemoteProfile, error)

	// ProjectsUsers fetches every projects_users record for userID.
	ProjectsUsers(ctx context.Context, accessToken string, userID int64) ([]models.RemoteProjectUser, error)

	// CursusUsers fetches every cursus_users record for userID.
	CursusUsers(ctx context.Context, accessToken string, userID int64) ([]models.RemoteCursusUser, error)
}
