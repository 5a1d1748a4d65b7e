package wire

import (
	"service-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireProfile(r chi.Router, profileHandler *adaptor.ProfileHandler, g guards) {
	r.Group(func(r chi.Router) {
		r.Use(g.authn)

		r.Post("/profile", profileHandler.Create)
		r.Get("/profile", profileHandler.Get)
		r.Put("/profile", profileHandler.Update)
	})
}
