package http

import (
	"net/http"

	"github.com/Grihladin/42Connect/internal/token"
)

// sessionCookie builds the session cookie carrying the signed ticket.
// Max-age matches the ticket's own signing TTL so the browser and the
// codec expire together.
func (h *Handler) sessionCookie(value string) *http.Cookie {
	return &http.Cookie{
		Name:     h.cfg.SessionCookieName,
		Value:    value,
		Path:     "/",
		Domain:   h.cfg.CookieDomain,
		MaxAge:   int(h.cfg.SessionMaxAge.Seconds()),
		Secure:   h.cfg.CookieSecure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// stateCookie builds the short-lived anti-CSRF cookie set before the
// redirect to the provider.
func (h *Handler) stateCookie(value string) *http.Cookie {
	return &http.Cookie{
		Name:     h.cfg.StateCookieName,
		Value:    value,
		Path:     "/",
		Domain:   h.cfg.CookieDomain,
		MaxAge:   int(token.StateMaxAge.Seconds()),
		Secure:   h.cfg.CookieSecure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

func expire(c *http.Cookie) *http.Cookie {
	c.Value = ""
	c.MaxAge = -1
	return c
}

func cookieValue(r *http.Request, name string) string {
	c, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	return c.Value
}
