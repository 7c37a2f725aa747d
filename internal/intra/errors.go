package intra

import "errors"

var (
	// ErrUpstreamUnavailable is returned whenever the intra API answers a
	// collection or profile request with a non-success status, or cannot
	// be reached at all. It always aborts the whole sync: no partial
	// results ever escape this package.
	ErrUpstreamUnavailable = errors.New("upstream intra API unavailable")

	// ErrExchangeFailed is returned when the authorization-code exchange
	// is rejected (expired or already-used code, bad client credentials).
	ErrExchangeFailed = errors.New("authorization code exchange failed")
)
