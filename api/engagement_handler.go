package api

import (
	"net/http"

	"github.com/rpupo63/portfolio-site-backend/database"
	"github.com/rpupo63/portfolio-site-backend/errs"
	"github.com/rpupo63/portfolio-site-backend/models"
	"github.com/rpupo63/portfolio-site-backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type engagementHandler struct {
	responder   Responder
	logger      zerolog.Logger
	projectRepo *database.ProjectRepo
	likeRepo    *database.LikeRepo
	commentRepo *database.CommentRepo
	notifier    *services.Notifier
}

func newEngagementHandler(projectRepo *database.ProjectRepo, likeRepo *database.LikeRepo, commentRepo *database.CommentRepo, notifier *services.Notifier) engagementHandler {
	logger := log.With().Str("handlerName", "engagementHandler").Logger()

	return engagementHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		projectRepo: projectRepo,
		likeRepo:    likeRepo,
		commentRepo: commentRepo,
		notifier:    notifier,
	}
}

// toggleLike flips the caller's like on a project
// @Summary Toggle like
// @Tags Engagement
// @Produce json
// @Param projectID path string true "Project ID" format(uuid)
// @Success 200 {object} models.LikeToggleResult
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Router /api/projects/{projectID}/like [post]
func (h engagementHandler) toggleLike() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, _ := ctxGetUser(r.Context())

		project, err := h.findProject(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		result, err := h.likeRepo.Toggle(r.Context(), project.ID, user.ID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("toggle", "like", err))
			return
		}

		if !result.Liked {
			engagementTotal.WithLabelValues("unlike").Inc()
			h.responder.WriteJSON(w, result)
			return
		}

		engagementTotal.WithLabelValues("like").Inc()
		h.notify(r, models.NotificationLike, project, user)
		h.responder.WriteJSON(w, result)
	}
}

// getProjectComments lists a project's comments newest first with their authors
// @Summary List comments
// @Tags Engagement
// @Produce json
// @Param projectID path string true "Project ID" format(uuid)
// @Success 200 {array} models.CommentWithAuthor
// @Router /api/projects/{projectID}/comments [get]
func (h engagementHandler) getProjectComments() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := uuidParam(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		comments, err := h.commentRepo.FindByProject(r.Context(), projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "comments", err))
			return
		}
		h.responder.WriteJSON(w, comments)
	}
}

// createComment appends the caller's comment to a project
// @Summary Add comment
// @Tags Engagement
// @Accept json
// @Produce json
// @Param projectID path string true "Project ID" format(uuid)
// @Param comment body createCommentRequest true "Comment"
// @Success 201 {object} models.CommentWithAuthor
// @Failure 400 {object} ErrorResponse "Bad Request - Empty content"
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Router /api/projects/{projectID}/comments [post]
func (h engagementHandler) createComment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, _ := ctxGetUser(r.Context())

		project, err := h.findProject(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var req createCommentRequest
		if err := decodeJSON(r, "comment", &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		comment, err := h.commentRepo.Add(r.Context(), &models.Comment{
			ProjectID: project.ID,
			UserID:    user.ID,
			Content:   req.Content,
		})
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "comment", err))
			return
		}

		engagementTotal.WithLabelValues("comment").Inc()
		h.notify(r, models.NotificationComment, project, user)
		h.responder.WriteJSONStatus(w, http.StatusCreated, comment)
	}
}

// deleteComment removes a comment written by the caller. Missing and foreign
// comments both answer 404.
func (h engagementHandler) deleteComment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, _ := ctxGetUser(r.Context())

		commentID, err := uuidParam(r, "commentID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		deleted, err := h.commentRepo.Delete(r.Context(), commentID, user.ID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "comment", err))
			return
		}
		if !deleted {
			h.responder.WriteError(w, errs.NewNotFound("comment"))
			return
		}

		engagementTotal.WithLabelValues("comment_delete").Inc()
		h.responder.WriteMessage(w, "comment deleted successfully")
	}
}

func (h engagementHandler) findProject(r *http.Request) (*models.Project, error) {
	projectID, err := uuidParam(r, "projectID")
	if err != nil {
		return nil, err
	}
	project, err := h.projectRepo.FindByID(r.Context(), projectID)
	if err != nil {
		return nil, wrapDatabaseError("find", "project", err)
	}
	if project == nil {
		return nil, errs.NewNotFound("project")
	}
	return project, nil
}

// notify runs after the like or comment is committed. A failure is only logged.
func (h engagementHandler) notify(r *http.Request, kind models.NotificationType, project *models.Project, actor *models.User) {
	notification, err := h.notifier.Notify(r.Context(), services.EngagementEvent{
		Kind:    kind,
		Project: project,
		Actor:   actor,
	})
	if err != nil {
		h.logger.Error().Err(err).
			Str("kind", string(kind)).
			Str("projectID", project.ID.String()).
			Str("actorID", actor.ID).
			Msg("Failed to create notification")
		return
	}
	if notification != nil {
		notificationsTotal.WithLabelValues(string(kind)).Inc()
	}
}
