package service

import "errors"

var (
	// ErrMissingOAuthParams is returned when the callback arrives without
	// an authorization code or a state parameter.
	ErrMissingOAuthParams = errors.New("missing code or state parameter")

	// ErrStateMismatch is returned when the callback's state parameter
	// does not exactly equal the state embedded in the signed state
	// cookie. This is the CSRF check failing, a terminal bad request.
	ErrStateMismatch = errors.New("oauth state mismatch")

	// ErrNotAuthenticated is returned when no valid session ticket is
	// present. An absent cookie and a tampered one are indistinguishable
	// to the caller.
	ErrNotAuthenticated = errors.New("not authenticated")
)
