package wire

import (
	"service-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAdmin(r chi.Router, adminHandler *adaptor.AdminHandler, g guards) {
	r.Route("/admin", func(r chi.Router) {
		r.Use(g.authn)
		r.Use(g.admin)

		r.Get("/users", adminHandler.ListUsers)
		r.Post("/users", adminHandler.CreateUser)
		r.Get("/users/{id}", adminHandler.GetUser)
		r.Patch("/users/{id}", adminHandler.UpdateUser)
		r.Put("/users/{id}/deactivate", adminHandler.DeactivateUser)
		r.Get("/activity-logs", adminHandler.ActivityLogs)
	})

	r.With(g.authn, g.admin).Post("/roles/assign-role", adminHandler.AssignRole)
}
