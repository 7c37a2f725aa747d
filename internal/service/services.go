// Package service composes the login flow and the mirror read surface
// on top of the intra clients, the token codecs, and the store.
package service

import (
	"github.com/Grihladin/42Connect/internal/config"
	"github.com/Grihladin/42Connect/internal/intra"
	"github.com/Grihladin/42Connect/internal/logger"
	"github.com/Grihladin/42Connect/internal/store"
	synclib "github.com/Grihladin/42Connect/internal/sync"
	"github.com/Grihladin/42Connect/internal/token"
)

// Services aggregates every service the transport layer depends on.
type Services struct {
	AuthService   AuthService
	MirrorService MirrorService
}

// NewServices wires the full service layer from configuration and the
// storage aggregate.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, log *logger.Logger) (*Services, error) {
	sessionCodec, err := token.NewSessionCodec(cfg.App.SessionSecret, cfg.App.SessionMaxAge)
	if err != nil {
		return nil, err
	}
	stateCodec, err := token.NewStateCodec(cfg.App.SessionSecret)
	if err != nil {
		return nil, err
	}

	oauth := intra.NewOAuth(cfg.OAuth, log)
	api := intra.NewAPI(cfg.OAuth, log)
	engine := synclib.NewEngine(api, storages.UnitOfWork, log)

	return &Services{
		AuthService:   NewAuthService(oauth, api, engine, sessionCodec, stateCodec, log),
		MirrorService: NewMirrorService(storages, log),
	}, nil
}
