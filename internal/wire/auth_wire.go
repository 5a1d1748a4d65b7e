package wire

import (
	"service-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler, g guards) {
	// Public
	r.Post("/auth/login", authHandler.Login)
	r.Get("/verify/verify-email", authHandler.VerifyEmail)

	// Authenticated
	r.With(g.authn).Post("/auth/logout", authHandler.Logout)
}
