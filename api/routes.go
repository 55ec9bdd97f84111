package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// setupOperationalRoutes exposes health and metrics outside /api
func setupOperationalRoutes(r chi.Router, handlers *routeHandlers) {
	r.Get("/healthz", handlers.healthHandler.health())
	r.Handle("/metrics", promhttp.Handler())
}

// setupAPIRoutes mounts every /api endpoint
func setupAPIRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	r.Route("/api", func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		// Public routes; a valid session is attached when present
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.identify)

			r.Get("/categories", handlers.categoryHandler.getAllCategories())
			r.Get("/categories/{slug}", handlers.categoryHandler.getCategory())

			r.Get("/projects", handlers.projectHandler.getAllProjects())
			r.Get("/projects/{projectID}", handlers.projectHandler.getProject())
			r.Get("/projects/{projectID}/comments", handlers.engagementHandler.getProjectComments())
		})

		// Authenticated routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.authenticate)

			r.Get("/auth/user", handlers.authHandler.getCurrentUser())

			r.Post("/categories", handlers.categoryHandler.createCategory())

			r.Post("/projects", handlers.projectHandler.createProject())
			r.Put("/projects/{projectID}", handlers.projectHandler.updateProject())
			r.Delete("/projects/{projectID}", handlers.projectHandler.deleteProject())

			r.Post("/projects/{projectID}/like", handlers.engagementHandler.toggleLike())
			r.Post("/projects/{projectID}/comments", handlers.engagementHandler.createComment())
			r.Delete("/comments/{commentID}", handlers.engagementHandler.deleteComment())

			r.Get("/admin/projects", handlers.adminHandler.getOwnedProjects())
			r.Get("/admin/stats", handlers.adminHandler.getStats())

			r.Get("/notifications", handlers.notificationHandler.getNotifications())
			r.Put("/notifications/{notificationID}/read", handlers.notificationHandler.markRead())

			r.Post("/share/linkedin", handlers.shareHandler.shareOnLinkedIn())
		})
	})
}
