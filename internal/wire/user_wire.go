package wire

import (
	"service-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireUser(r chi.Router, authHandler *adaptor.AuthHandler, userHandler *adaptor.UserHandler, g guards) {
	// Public: registration and the password reset flow
	r.Post("/users", authHandler.Register)
	r.Post("/users/forgot-password", authHandler.ForgotPassword)
	r.Post("/users/reset-password", authHandler.ResetPassword)

	// Authenticated
	r.With(g.authn).Get("/users/me", userHandler.Me)
}
