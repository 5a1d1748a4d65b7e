package wire

import (
	"service-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCareerType(r chi.Router, careerHandler *adaptor.CareerTypeHandler, g guards) {
	// Public: anyone may browse or propose a career type; proposals
	// stay unapproved until an admin signs off.
	r.Get("/career-types", careerHandler.List)
	r.Post("/career-types", careerHandler.Create)

	// Admin approval
	r.With(g.authn, g.admin).Put("/career-types/{id}/approve", careerHandler.Approve)
}
