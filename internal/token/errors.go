package token

import "errors"

var (
	// ErrInvalidToken is the single failure mode of ticket decoding:
	// bad signature, wrong purpose, structural corruption, expiry, or a
	// semantically invalid payload all normalise to it. Callers never
	// see the underlying JWT error.
	ErrInvalidToken = errors.New("token is expired or invalid")

	// ErrInvalidCodecParams is returned by codec constructors when the
	// secret, purpose, or max age is missing. This is a programming
	// error, not a runtime-recoverable case.
	ErrInvalidCodecParams = errors.New("invalid params for token codec")
)
