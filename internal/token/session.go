package token

import (
	"time"

	"github.com/Grihladin/42Connect/models"
	"github.com/golang-jwt/jwt/v5"
)

// sessionClaims is the wire shape of a session ticket.
type sessionClaims struct {
	jwt.RegisteredClaims

	User           models.SessionUser `json:"user"`
	AccessToken    string             `json:"access_token,omitempty"`
	RefreshToken   string             `json:"refresh_token,omitempty"`
	TokenExpiresAt int64              `json:"token_expires_at,omitempty"`
}

// SessionCodec encodes and decodes session tickets. The signed string is
// the only materialization of a session; nothing is stored server-side.
type SessionCodec struct {
	codec *codec
}

// NewSessionCodec constructs a SessionCodec signing with the
// session-purpose key derived from secret. maxAge bounds ticket lifetime.
func NewSessionCodec(secret string, maxAge time.Duration) (*SessionCodec, error) {
	c, err := newCodec(secret, SessionPurpose, maxAge)
	if err != nil {
		return nil, err
	}

	return &SessionCodec{codec: c}, nil
}

// Encode signs ticket into a compact session token.
func (s *SessionCodec) Encode(ticket models.SessionTicket) (string, error) {
	claims := sessionClaims{
		RegisteredClaims: s.codec.registeredClaims(time.Now()),
		User:             ticket.User,
		AccessToken:      ticket.AccessToken,
		RefreshToken:     ticket.RefreshToken,
		TokenExpiresAt:   ticket.ExpiresAt,
	}

	return s.codec.sign(&claims)
}

// Decode verifies raw and reconstructs the session ticket.
//
// Beyond signature and max-age checks it re-validates the payload shape:
// the embedded user must carry a positive remote id and a non-empty login.
// A structurally valid token with a semantically broken payload decodes to
// [ErrInvalidToken], never to a partial ticket.
func (s *SessionCodec) Decode(raw string) (models.SessionTicket, error) {
	var claims sessionClaims
	if err := s.codec.parse(raw, &claims); err != nil {
		return models.SessionTicket{}, err
	}

	if claims.User.RemoteID <= 0 || claims.User.Login == "" {
		return models.SessionTicket{}, ErrInvalidToken
	}

	return models.SessionTicket{
		User:         claims.User,
		AccessToken:  claims.AccessToken,
		RefreshToken: claims.RefreshToken,
		ExpiresAt:    claims.TokenExpiresAt,
	}, nil
}
