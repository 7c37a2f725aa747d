package http

import (
	"context"
	"net/http"

	"github.com/Grihladin/42Connect/internal/logger"
	"github.com/Grihladin/42Connect/internal/utils"
)

// withSession requires a valid session cookie and stores the decoded
// ticket in the request context for downstream handlers.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromRequest(r)

		ticket, err := h.services.AuthService.CurrentSession(ctx, cookieValue(r, h.cfg.SessionCookieName))
		if err != nil {
			log.Debug().Str("func", "*Handler.withSession").Msg("request without a valid session")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		ctx = context.WithValue(ctx, utils.SessionCtxKey, ticket)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
