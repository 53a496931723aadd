package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)
	r.Use(securityHeadersMiddleware)

	r.Get("/health", s.handleHealth)

	r.Get("/profiles", s.handleListProfiles)
	r.Post("/profiles", s.handleCreateProfile)
	r.Post("/profiles/{id}/select", s.handleSelectProfile)
	r.Delete("/profiles/{id}", s.handleDeleteProfile)

	// Everything below requires a selected profile.
	r.Group(func(r chi.Router) {
		r.Use(s.profileMiddleware)

		r.Get("/sessions", s.handleListSessions)
		r.Post("/sessions", s.handleCreateSession)
		r.Get("/sessions/{id}", s.handleGetSession)
		r.Put("/sessions/{id}", s.handleUpdateSession)
		r.Delete("/sessions/{id}", s.handleDeleteSession)

		r.Get("/tasks", s.handleListTasks)
		r.Post("/tasks", s.handleCreateTask)
		r.Put("/tasks/{id}", s.handleUpdateTask)
		r.Post("/tasks/{id}/complete", s.handleCompleteTask)
		r.Delete("/tasks/{id}", s.handleDeleteTask)

		r.Get("/targets", s.handleListTargets)
		r.Post("/targets", s.handleCreateTarget)
		r.Delete("/targets/{id}", s.handleDeleteTarget)

		r.Get("/tags", s.handleListTags)
		r.Post("/tags", s.handleCreateTag)
		r.Put("/tags/{id}", s.handleUpdateTag)
		r.Delete("/tags/{id}", s.handleDeleteTag)

		r.Get("/celebration-triggers", s.handleListTriggers)
		r.Post("/celebration-triggers", s.handleCreateTrigger)
		r.Put("/celebration-triggers/{id}", s.handleUpdateTrigger)
		r.Delete("/celebration-triggers/{id}", s.handleDeleteTrigger)

		r.Get("/dashboard", s.handleDashboard)
		r.Post("/insights/refresh", s.handleRefreshInsights)
	})

	return r
}
