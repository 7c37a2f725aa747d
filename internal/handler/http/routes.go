package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withCORS)

	// login flow and liveness, no session required
	router.Group(func(r chi.Router) {
		r.Get("/auth/login", h.login)
		r.Get("/auth/callback", h.callback)
		r.Post("/auth/logout", h.logout)
		r.Get("/auth/session", h.session)
		r.Get("/healthz", h.healthz)
	})

	// mirror read API, session cookie required
	router.Group(func(r chi.Router) {
		r.Use(h.withSession)
		r.Get("/api/me/projects", h.myProjects)
		r.Get("/api/me/cursus", h.myCursus)
	})

	return router
}
