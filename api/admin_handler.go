package api

import (
	"net/http"

	"github.com/rpupo63/portfolio-site-backend/database"
	"github.com/rpupo63/portfolio-site-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type adminHandler struct {
	responder   Responder
	logger      zerolog.Logger
	projectRepo *database.ProjectRepo
}

func newAdminHandler(projectRepo *database.ProjectRepo) adminHandler {
	logger := log.With().Str("handlerName", "adminHandler").Logger()

	return adminHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		projectRepo: projectRepo,
	}
}

// getOwnedProjects lists every project the caller owns, published or not
func (h adminHandler) getOwnedProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, _ := ctxGetUser(r.Context())

		projects, err := h.projectRepo.FindDetails(r.Context(), models.ProjectFilter{OwnerID: &user.ID})
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "projects", err))
			return
		}
		h.responder.WriteJSON(w, projects)
	}
}

func (h adminHandler) getStats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, _ := ctxGetUser(r.Context())

		stats, err := h.projectRepo.Stats(r.Context(), user.ID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("count", "project stats", err))
			return
		}
		h.responder.WriteJSON(w, stats)
	}
}
