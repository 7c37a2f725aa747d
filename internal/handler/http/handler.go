// Package http exposes the login flow and the mirror read API over
// HTTP: the OAuth redirect endpoints, the cookie-based session surface,
// and the per-student project and cursus listings.
package http

import (
	"github.com/Grihladin/42Connect/internal/config"
	"github.com/Grihladin/42Connect/internal/logger"
	"github.com/Grihladin/42Connect/internal/service"
)

type Handler struct {
	services *service.Services
	cfg      config.App

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		cfg:      cfg,
		logger:   logger,
	}
}
