package http

import (
	"encoding/json"
	"net/http"

	"github.com/Grihladin/42Connect/internal/logger"
	"github.com/Grihladin/42Connect/models"
)

// sessionResponse is the public shape of GET /auth/session.
type sessionResponse struct {
	User      models.SessionUser `json:"user"`
	ExpiresAt int64              `json:"expiresAt,omitempty"`
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	redirect, err := h.services.AuthService.BeginLogin(ctx)
	if err != nil {
		log.Err(err).Str("func", "*Handler.login").Msg("error starting login flow")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	http.SetCookie(w, h.stateCookie(redirect.StateToken))
	http.Redirect(w, r, redirect.AuthURL, http.StatusFound)
}

func (h *Handler) callback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	code := r.URL.Query().Get("code")
	state := r.URL.Query().Get("state")
	stateCookie := cookieValue(r, h.cfg.StateCookieName)

	result, err := h.services.AuthService.HandleCallback(ctx, code, state, stateCookie)
	if err != nil {
		log.Err(err).Str("func", "*Handler.callback").Msg("callback rejected")
		http.SetCookie(w, expire(h.stateCookie("")))
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	http.SetCookie(w, h.sessionCookie(result.SessionToken))
	http.SetCookie(w, expire(h.stateCookie("")))
	http.Redirect(w, r, h.cfg.FrontendURL, http.StatusFound)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	h.services.AuthService.Logout(ctx, cookieValue(r, h.cfg.SessionCookieName))

	http.SetCookie(w, expire(h.sessionCookie("")))
	http.Redirect(w, r, h.cfg.FrontendURL, http.StatusSeeOther)
}

func (h *Handler) session(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	ticket, err := h.services.AuthService.CurrentSession(ctx, cookieValue(r, h.cfg.SessionCookieName))
	if err != nil {
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(sessionResponse{User: ticket.User, ExpiresAt: ticket.ExpiresAt}); err != nil {
		log.Err(err).Str("func", "*Handler.session").Msg("error encoding session payload")
	}
}

func (h *Handler) healthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
