package wire

import (
	"service-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCatalog(r chi.Router, catalogHandler *adaptor.CatalogHandler, g guards) {
	// Public browsing
	r.Get("/services", catalogHandler.List)
	r.Get("/services/{id}", catalogHandler.GetByID)

	// Authenticated; owner checks happen in the service layer
	r.Group(func(r chi.Router) {
		r.Use(g.authn)

		r.Post("/services", catalogHandler.Create)
		r.Put("/services/{id}", catalogHandler.Update)
		r.Delete("/services/{id}", catalogHandler.Delete)
	})
}
