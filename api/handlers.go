package api

import (
	"time"

	"github.com/rpupo63/portfolio-site-backend/database"
	"github.com/rpupo63/portfolio-site-backend/services"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(db database.Database, notifier *services.Notifier, baseURL string, startupTime time.Time) *routeHandlers {
	return &routeHandlers{
		projectHandler:      newProjectHandler(db.ProjectRepo(), db.CategoryRepo()),
		categoryHandler:     newCategoryHandler(db.CategoryRepo()),
		engagementHandler:   newEngagementHandler(db.ProjectRepo(), db.LikeRepo(), db.CommentRepo(), notifier),
		notificationHandler: newNotificationHandler(db.NotificationRepo()),
		adminHandler:        newAdminHandler(db.ProjectRepo()),
		shareHandler:        newShareHandler(db.ProjectRepo(), baseURL),
		authHandler:         newAuthHandler(db.UserRepo()),
		healthHandler:       newHealthHandler(db, startupTime),
	}
}
