package http

import (
	"encoding/json"
	"net/http"

	"github.com/Grihladin/42Connect/internal/logger"
	"github.com/Grihladin/42Connect/internal/utils"
)

func (h *Handler) myProjects(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	session, ok := utils.GetSessionFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	projects, err := h.services.MirrorService.StudentProjects(ctx, session.User.RemoteID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.myProjects").Msg("error listing mirrored projects")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(projects); err != nil {
		log.Err(err).Str("func", "*Handler.myProjects").Msg("error encoding projects payload")
	}
}

func (h *Handler) myCursus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	session, ok := utils.GetSessionFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	enrollments, err := h.services.MirrorService.StudentCursus(ctx, session.User.RemoteID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.myCursus").Msg("error listing mirrored enrollments")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(enrollments); err != nil {
		log.Err(err).Str("func", "*Handler.myCursus").Msg("error encoding cursus payload")
	}
}
