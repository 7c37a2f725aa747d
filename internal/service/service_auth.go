package service

import (
	"context"

	"github.com/Grihladin/42Connect/internal/intra"
	"github.com/Grihladin/42Connect/internal/logger"
	"github.com/Grihladin/42Connect/internal/token"
	"github.com/Grihladin/42Connect/models"
	"github.com/google/uuid"
)

// authService implements [AuthService] over the OAuth client, both
// token codecs, and the reconciliation engine.
type authService struct {
	oauth   intra.OAuth
	api     intra.API
	syncer  Syncer
	session *token.SessionCodec
	state   *token.StateCodec
	logger  *logger.Logger
}

// NewAuthService constructs the login-flow service.
func NewAuthService(oauth intra.OAuth, api intra.API, syncer Syncer, session *token.SessionCodec, state *token.StateCodec, log *logger.Logger) AuthService {
	return &authService{
		oauth:   oauth,
		api:     api,
		syncer:  syncer,
		session: session,
		state:   state,
		logger:  log,
	}
}

// BeginLogin generates a fresh random state nonce, wraps it in a signed
// state token, and pairs it with the authorization URL carrying the
// same nonce.
func (s *authService) BeginLogin(ctx context.Context) (models.LoginRedirect, error) {
	log := logger.FromContext(ctx)

	nonce := uuid.NewString()
	stateToken, err := s.state.Encode(nonce)
	if err != nil {
		log.Err(err).Str("func", "*authService.BeginLogin").Msg("error signing state token")
		return models.LoginRedirect{}, err
	}

	return models.LoginRedirect{
		AuthURL:    s.oauth.AuthCodeURL(nonce),
		StateToken: stateToken,
	}, nil
}

// HandleCallback runs the whole callback leg: CSRF state check, code
// exchange, profile fetch, mirror reconciliation, session issuance.
//
// The state cookie must decode to exactly the state parameter echoed by
// the provider. Absence, tampering, expiry, and plain inequality are all
// terminal; none are silently ignored.
func (s *authService) HandleCallback(ctx context.Context, code, state, stateCookie string) (models.CallbackResult, error) {
	log := logger.FromContext(ctx)

	if code == "" || state == "" {
		return models.CallbackResult{}, ErrMissingOAuthParams
	}

	expected, err := s.state.Decode(stateCookie)
	if err != nil {
		log.Warn().Str("func", "*authService.HandleCallback").Msg("state cookie missing or invalid")
		return models.CallbackResult{}, err
	}
	if expected != state {
		log.Warn().Str("func", "*authService.HandleCallback").Msg("state parameter does not match cookie")
		return models.CallbackResult{}, ErrStateMismatch
	}

	tokens, err := s.oauth.Exchange(ctx, code)
	if err != nil {
		return models.CallbackResult{}, err
	}

	profile, err := s.api.Me(ctx, tokens.AccessToken)
	if err != nil {
		return models.CallbackResult{}, err
	}

	student, err := s.syncer.SyncStudent(ctx, tokens.AccessToken, profile)
	if err != nil {
		return models.CallbackResult{}, err
	}

	ticket := models.SessionTicket{
		User: models.SessionUser{
			RemoteID:    student.RemoteID,
			Login:       student.Login,
			DisplayName: student.Login,
			ImageURL:    student.ImageURL,
		},
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		ExpiresAt:    tokens.ExpiresAt,
	}
	if student.DisplayName != nil {
		ticket.User.DisplayName = *student.DisplayName
	}

	sessionToken, err := s.session.Encode(ticket)
	if err != nil {
		log.Err(err).Str("func", "*authService.HandleCallback").Msg("error signing session token")
		return models.CallbackResult{}, err
	}

	log.Info().Str("func", "*authService.HandleCallback").
		Int64("forty_two_id", student.RemoteID).Str("login", student.Login).Msg("login completed")

	return models.CallbackResult{
		SessionToken: sessionToken,
		Student:      student,
	}, nil
}

// Logout best-effort revokes the refresh token held by the session
// cookie. An unreadable cookie or a rejected revocation only logs; the
// caller clears the cookie unconditionally.
func (s *authService) Logout(ctx context.Context, sessionCookie string) {
	log := logger.FromContext(ctx)

	ticket, err := s.session.Decode(sessionCookie)
	if err != nil || ticket.RefreshToken == "" {
		return
	}

	if err = s.oauth.Revoke(ctx, ticket.RefreshToken); err != nil {
		log.Warn().Err(err).Str("func", "*authService.Logout").Msg("upstream token revocation failed")
	}
}

// CurrentSession decodes and validates the session cookie.
func (s *authService) CurrentSession(ctx context.Context, sessionCookie string) (models.SessionTicket, error) {
	if sessionCookie == "" {
		return models.SessionTicket{}, ErrNotAuthenticated
	}

	ticket, err := s.session.Decode(sessionCookie)
	if err != nil {
		return models.SessionTicket{}, ErrNotAuthenticated
	}

	return ticket, nil
}
