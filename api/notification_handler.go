package api

import (
	"net/http"

	"github.com/rpupo63/portfolio-site-backend/database"
	"github.com/rpupo63/portfolio-site-backend/errs"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type notificationHandler struct {
	responder        Responder
	logger           zerolog.Logger
	notificationRepo *database.NotificationRepo
}

func newNotificationHandler(notificationRepo *database.NotificationRepo) notificationHandler {
	logger := log.With().Str("handlerName", "notificationHandler").Logger()

	return notificationHandler{
		responder:        NewResponder(logger),
		logger:           logger,
		notificationRepo: notificationRepo,
	}
}

// getNotifications lists the caller's notifications, newest first. ?unread=true
// restricts the list to unread ones.
func (h notificationHandler) getNotifications() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, _ := ctxGetUser(r.Context())

		unread, err := boolQuery(r, "unread")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		notifications, err := h.notificationRepo.FindByUser(r.Context(), user.ID, unread != nil && *unread)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "notifications", err))
			return
		}
		h.responder.WriteJSON(w, notifications)
	}
}

func (h notificationHandler) markRead() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, _ := ctxGetUser(r.Context())

		notificationID, err := uuidParam(r, "notificationID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		updated, err := h.notificationRepo.MarkRead(r.Context(), notificationID, user.ID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "notification", err))
			return
		}
		if !updated {
			h.responder.WriteError(w, errs.NewNotFound("notification"))
			return
		}
		h.responder.WriteMessage(w, "notification marked as read")
	}
}
