package wire

import (
	"service-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler, g guards) {
	// All booking routes require authentication. Ownership checks
	// (customer, provider or admin) happen in the service layer where
	// the booking row is at hand.
	r.Group(func(r chi.Router) {
		r.Use(g.authn)

		r.Post("/bookings", bookingHandler.Create)
		r.Get("/bookings/{userID}", bookingHandler.ListForUser)
		r.Patch("/bookings/{bookingID}", bookingHandler.Update)
	})
}
