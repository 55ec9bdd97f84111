package api

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-site-backend/database"
	"github.com/rpupo63/portfolio-site-backend/errs"
	"github.com/rpupo63/portfolio-site-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type projectHandler struct {
	responder    Responder
	logger       zerolog.Logger
	projectRepo  *database.ProjectRepo
	categoryRepo *database.CategoryRepo
}

func newProjectHandler(projectRepo *database.ProjectRepo, categoryRepo *database.CategoryRepo) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		projectRepo:  projectRepo,
		categoryRepo: categoryRepo,
	}
}

// getAllProjects lists projects with owner, category, likes, comments and counts
// @Summary List projects
// @Tags Projects
// @Produce json
// @Param published query bool false "Only published (true) or unpublished (false) projects"
// @Param featured query bool false "Only featured (true) or non-featured (false) projects"
// @Param categoryId query string false "Category ID" format(uuid)
// @Param limit query int false "Maximum number of projects"
// @Success 200 {array} models.ProjectWithDetails
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid filter"
// @Router /api/projects [get]
func (h projectHandler) getAllProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, err := parseProjectFilter(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		projects, err := h.projectRepo.FindDetails(r.Context(), filter)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "projects", err))
			return
		}

		h.responder.WriteJSON(w, projects)
	}
}

func parseProjectFilter(r *http.Request) (models.ProjectFilter, error) {
	var filter models.ProjectFilter
	var err error

	if filter.Published, err = boolQuery(r, "published"); err != nil {
		return filter, err
	}
	if filter.Featured, err = boolQuery(r, "featured"); err != nil {
		return filter, err
	}

	query := r.URL.Query()
	if raw := query.Get("categoryId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return filter, errs.NewInvalidFieldError("categoryId", "must be a UUID")
		}
		filter.CategoryID = &id
	}
	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			return filter, errs.NewInvalidFieldError("limit", "must be a positive integer")
		}
		filter.Limit = limit
	}
	return filter, nil
}

// getProject returns one enriched project and counts the view
// @Summary Get project
// @Tags Projects
// @Produce json
// @Param projectID path string true "Project ID" format(uuid)
// @Success 200 {object} models.ProjectWithDetails
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid projectID"
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Router /api/projects/{projectID} [get]
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := uuidParam(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		// The view is counted before the lookup; a missing id updates nothing.
		if err := h.projectRepo.IncrementViews(r.Context(), projectID); err != nil {
			h.logger.Warn().Err(err).Str("projectID", projectID.String()).Msg("Failed to increment view count")
		}

		project, err := h.projectRepo.FindDetailsByID(r.Context(), projectID, ctxGetUserID(r.Context()))
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFound("project"))
			return
		}

		h.responder.WriteJSON(w, project)
	}
}

// createProject creates a project owned by the caller
// @Summary Create project
// @Tags Projects
// @Accept json
// @Produce json
// @Param project body createProjectRequest true "Project data"
// @Success 201 {object} models.Project
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid project data"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Router /api/projects [post]
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, _ := ctxGetUser(r.Context())

		var req createProjectRequest
		if err := decodeJSON(r, "project", &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if err := h.checkCategory(r, req.CategoryID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project := models.Project{
			Title:        req.Title,
			Description:  req.Description,
			Content:      req.Content,
			ImageURL:     req.ImageURL,
			VideoURL:     req.VideoURL,
			DemoURL:      req.DemoURL,
			GithubURL:    req.GithubURL,
			CategoryID:   req.CategoryID,
			OwnerID:      user.ID,
			Technologies: req.Technologies,
		}
		if req.IsPublished != nil {
			project.IsPublished = *req.IsPublished
		}
		if req.IsFeatured != nil {
			project.IsFeatured = *req.IsFeatured
		}

		if err := h.projectRepo.Add(r.Context(), &project); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "project", err))
			return
		}

		h.logger.Info().Str("projectID", project.ID.String()).Str("ownerID", user.ID).Msg("Project created")
		h.responder.WriteJSONStatus(w, http.StatusCreated, project)
	}
}

// updateProject merges the supplied fields into a project the caller owns
// @Summary Update project
// @Tags Projects
// @Accept json
// @Produce json
// @Param projectID path string true "Project ID" format(uuid)
// @Param project body updateProjectRequest true "Fields to change"
// @Success 200 {object} models.Project
// @Failure 403 {object} ErrorResponse "Forbidden - Not the project owner"
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Router /api/projects/{projectID} [put]
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := uuidParam(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if _, err := h.findOwned(r, projectID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		body, err := readBody(r, "project")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		var req updateProjectRequest
		if err := decodeBody(body, "project", &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if err := h.checkCategory(r, req.CategoryID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		updated, err := h.projectRepo.Update(r.Context(), projectID, req.changes(clearsCategory(body)))
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "project", err))
			return
		}
		if updated == nil {
			h.responder.WriteError(w, errs.NewNotFound("project"))
			return
		}

		h.responder.WriteJSON(w, updated)
	}
}

// clearsCategory reports whether the body explicitly sets categoryId to null.
func clearsCategory(body []byte) bool {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return false
	}
	raw, ok := fields["categoryId"]
	return ok && bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// deleteProject removes a project the caller owns, with its likes, comments and notifications
// @Summary Delete project
// @Tags Projects
// @Produce json
// @Param projectID path string true "Project ID" format(uuid)
// @Success 200 {object} map[string]string "Success message"
// @Failure 403 {object} ErrorResponse "Forbidden - Not the project owner"
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Router /api/projects/{projectID} [delete]
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := uuidParam(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if _, err := h.findOwned(r, projectID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		deleted, err := h.projectRepo.Delete(r.Context(), projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "project", err))
			return
		}
		if !deleted {
			h.responder.WriteError(w, errs.NewNotFound("project"))
			return
		}

		h.logger.Info().Str("projectID", projectID.String()).Msg("Project deleted")
		h.responder.WriteMessage(w, "project deleted successfully")
	}
}

// findOwned re-fetches the project and checks the caller owns it.
func (h projectHandler) findOwned(r *http.Request, projectID uuid.UUID) (*models.Project, error) {
	project, err := h.projectRepo.FindByID(r.Context(), projectID)
	if err != nil {
		return nil, wrapDatabaseError("find", "project", err)
	}
	if project == nil {
		return nil, errs.NewNotFound("project")
	}

	user, ok := ctxGetUser(r.Context())
	if !ok {
		return nil, errs.Unauthorized
	}
	if project.OwnerID != user.ID {
		return nil, errs.NewForbiddenError("only the project owner may modify this project")
	}
	return project, nil
}

func (h projectHandler) checkCategory(r *http.Request, categoryID *uuid.UUID) error {
	if categoryID == nil {
		return nil
	}
	category, err := h.categoryRepo.FindByID(r.Context(), *categoryID)
	if err != nil {
		return wrapDatabaseError("find", "category", err)
	}
	if category == nil {
		return errs.NewInvalidFieldError("categoryId", "category does not exist")
	}
	return nil
}
