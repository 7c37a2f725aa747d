// Package token implements the signed, tamper-evident tickets the service
// issues instead of server-side sessions: the session ticket carried in the
// session cookie and the short-lived anti-CSRF state ticket used during the
// OAuth dance.
//
// Each ticket purpose gets its own signing key, derived from the shared
// session secret with HKDF-SHA256 salted by the purpose name, and the
// purpose is additionally pinned as the JWT issuer claim. A token minted
// for one purpose therefore never verifies under another, even though both
// codecs share the same configured secret.
package token

import (
	"crypto/sha256"
	"fmt"
	"io"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/hkdf"
)

// Ticket purposes. These double as HKDF salts and issuer claims, so
// changing either value invalidates every outstanding ticket of that kind.
const (
	SessionPurpose = "ft-session"
	StatePurpose   = "ft-state"
)

// StateMaxAge is the fixed lifetime of an anti-CSRF state ticket,
// independent of the configurable session lifetime.
const StateMaxAge = 10 * time.Minute

// keyInfo is the HKDF info string binding derived keys to this scheme.
const keyInfo = "42connect.ticket.v1"

// codec signs and verifies compact HS256 tokens for one purpose.
// It is the shared core of [SessionCodec] and [StateCodec].
type codec struct {
	purpose string
	key     []byte
	maxAge  time.Duration
}

func newCodec(secret, purpose string, maxAge time.Duration) (*codec, error) {
	if secret == "" || purpose == "" || maxAge <= 0 {
		return nil, ErrInvalidCodecParams
	}

	key, err := deriveKey(secret, purpose)
	if err != nil {
		return nil, fmt.Errorf("error deriving signing key: %w", err)
	}

	return &codec{
		purpose: purpose,
		key:     key,
		maxAge:  maxAge,
	}, nil
}

// deriveKey expands the shared secret into a 32-byte purpose-specific
// signing key via HKDF-SHA256.
func deriveKey(secret, purpose string) ([]byte, error) {
	reader := hkdf.New(sha256.New, []byte(secret), []byte(purpose), []byte(keyInfo))

	key := make([]byte, sha256.Size)
	if _, err := io.ReadFull(reader, key); err != nil {
		return nil, err
	}

	return key, nil
}

// registeredClaims returns the claim set every ticket of this codec
// carries: the purpose as issuer and the issue timestamp used for
// max-age enforcement.
func (c *codec) registeredClaims(now time.Time) jwt.RegisteredClaims {
	return jwt.RegisteredClaims{
		Issuer:   c.purpose,
		IssuedAt: jwt.NewNumericDate(now),
	}
}

// sign serialises claims into a signed compact token.
func (c *codec) sign(claims jwt.Claims) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := t.SignedString(c.key)
	if err != nil {
		return "", fmt.Errorf("error occurred during signing ticket: %w", err)
	}

	return signed, nil
}

// parse verifies raw against this codec's key, purpose, and max age,
// populating claims on success. Every failure mode collapses to
// [ErrInvalidToken]: callers must not be able to distinguish a forged
// token from an expired one.
func (c *codec) parse(raw string, claims jwt.Claims) error {
	parsed, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		return c.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(c.purpose),
	)
	if err != nil || !parsed.Valid {
		return ErrInvalidToken
	}

	issuedAt, err := claims.GetIssuedAt()
	if err != nil || issuedAt == nil {
		return ErrInvalidToken
	}

	if time.Since(issuedAt.Time) > c.maxAge {
		return ErrInvalidToken
	}

	return nil
}
