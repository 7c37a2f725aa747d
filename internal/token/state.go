package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// stateClaims is the wire shape of an anti-CSRF state ticket.
type stateClaims struct {
	jwt.RegisteredClaims

	State string `json:"state"`
}

// StateCodec encodes and decodes the anti-CSRF state nonce issued at login
// and verified on the OAuth callback. Its lifetime is fixed at
// [StateMaxAge] and its signing key is independent of the session codec's.
type StateCodec struct {
	codec *codec
}

// NewStateCodec constructs a StateCodec signing with the state-purpose key
// derived from secret.
func NewStateCodec(secret string) (*StateCodec, error) {
	c, err := newCodec(secret, StatePurpose, StateMaxAge)
	if err != nil {
		return nil, err
	}

	return &StateCodec{codec: c}, nil
}

// Encode signs the state nonce into a compact token.
func (s *StateCodec) Encode(state string) (string, error) {
	claims := stateClaims{
		RegisteredClaims: s.codec.registeredClaims(time.Now()),
		State:            state,
	}

	return s.codec.sign(&claims)
}

// Decode verifies raw and returns the embedded state nonce.
func (s *StateCodec) Decode(raw string) (string, error) {
	var claims stateClaims
	if err := s.codec.parse(raw, &claims); err != nil {
		return "", err
	}

	if claims.State == "" {
		return "", ErrInvalidToken
	}

	return claims.State, nil
}
