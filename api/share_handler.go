package api

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-site-backend/database"
	"github.com/rpupo63/portfolio-site-backend/errs"
	"github.com/rpupo63/portfolio-site-backend/models"
	"github.com/rpupo63/portfolio-site-backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type shareHandler struct {
	responder   Responder
	logger      zerolog.Logger
	projectRepo *database.ProjectRepo
	baseURL     string
}

func newShareHandler(projectRepo *database.ProjectRepo, baseURL string) shareHandler {
	logger := log.With().Str("handlerName", "shareHandler").Logger()

	return shareHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		projectRepo: projectRepo,
		baseURL:     baseURL,
	}
}

// shareOnLinkedIn returns the LinkedIn share-dialog link for a project. Drafts
// are only shareable by their owner.
// @Summary LinkedIn share link
// @Tags Share
// @Accept json
// @Produce json
// @Param request body shareRequest true "Project to share"
// @Success 200 {object} services.LinkedInShare
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Router /api/share/linkedin [post]
func (h shareHandler) shareOnLinkedIn() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req shareRequest
		if err := decodeJSON(r, "share", &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.projectRepo.FindByID(r.Context(), uuid.MustParse(req.ProjectID))
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}
		if project == nil || !h.canShare(r, project) {
			h.responder.WriteError(w, errs.NewNotFound("project"))
			return
		}

		h.responder.WriteJSON(w, services.NewLinkedInShare(h.publicBaseURL(r), project))
	}
}

func (h shareHandler) canShare(r *http.Request, project *models.Project) bool {
	if project.IsPublished {
		return true
	}
	user, ok := ctxGetUser(r.Context())
	return ok && user.ID == project.OwnerID
}

// publicBaseURL prefers the configured base and falls back to the request's own origin.
func (h shareHandler) publicBaseURL(r *http.Request) string {
	if h.baseURL != "" {
		return h.baseURL
	}
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if forwarded := r.Header.Get("X-Forwarded-Proto"); forwarded != "" {
		scheme = forwarded
	}
	return fmt.Sprintf("%s://%s", scheme, r.Host)
}
