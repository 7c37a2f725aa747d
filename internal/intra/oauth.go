package intra

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/Grihladin/42Connect/internal/config"
	"github.com/Grihladin/42Connect/internal/logger"
	"github.com/Grihladin/42Connect/internal/utils"
	"github.com/Grihladin/42Connect/models"
	"golang.org/x/oauth2"
)

// oauthClient implements [OAuth] over golang.org/x/oauth2 for the
// authorization-code grant, plus a plain form POST for token revocation
// (x/oauth2 has no revocation support).
type oauthClient struct {
	config *oauth2.Config
	http   *utils.HTTPClient

	revokeURL    string
	clientID     string
	clientSecret string

	logger *logger.Logger
}

// NewOAuth constructs the intra OAuth2 client from cfg.
func NewOAuth(cfg config.OAuth, log *logger.Logger) OAuth {
	return &oauthClient{
		config: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURI,
			Scopes:       strings.Fields(cfg.Scope),
			Endpoint: oauth2.Endpoint{
				AuthURL:  cfg.AuthURL,
				TokenURL: cfg.TokenURL,
			},
		},
		http:         utils.NewHTTPClient(""),
		revokeURL:    cfg.RevokeURL,
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		logger:       log,
	}
}

// AuthCodeURL implements [OAuth].
func (c *oauthClient) AuthCodeURL(state string) string {
	return c.config.AuthCodeURL(state)
}

// Exchange implements [OAuth]. Any rejection by the token endpoint is
// normalised to [ErrExchangeFailed]; callers treat it as a client error
// (stale or already-used code), not an upstream outage.
func (c *oauthClient) Exchange(ctx context.Context, code string) (models.TokenSet, error) {
	tok, err := c.config.Exchange(ctx, code)
	if err != nil {
		c.logger.Err(err).Str("func", "*oauthClient.Exchange").Msg("authorization code exchange rejected")
		return models.TokenSet{}, fmt.Errorf("%w: %w", ErrExchangeFailed, err)
	}

	var expiresAt int64
	if !tok.Expiry.IsZero() {
		expiresAt = tok.Expiry.Unix()
	}

	return models.TokenSet{
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		ExpiresAt:    expiresAt,
	}, nil
}

// Revoke implements [OAuth].
func (c *oauthClient) Revoke(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"client_id":       c.clientID,
			"client_secret":   c.clientSecret,
			"token":           refreshToken,
			"token_type_hint": "refresh_token",
		}).
		Post(c.revokeURL)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
	}

	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("%w: revoke endpoint returned %d", ErrUpstreamUnavailable, resp.StatusCode())
	}

	return nil
}
