package middleware

import (
	"net/http"
	"strings"

	"service-booking/internal/data/repository"
	"service-booking/internal/token"
	"service-booking/pkg/utils"

	"go.uber.org/zap"
)

// AccessTokenCookie is the cookie the login handler sets. The guard
// reads it before falling back to the Authorization header, so browser
// clients and API clients share the same routes.
const AccessTokenCookie = "access_token"

// extractToken pulls the raw token string out of the request, cookie
// first, then "Authorization: Bearer <token>".
func extractToken(r *http.Request) string {
	if c, err := r.Cookie(AccessTokenCookie); err == nil && c.Value != "" {
		return c.Value
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}

// Authenticate validates the bearer token and resolves it to a live
// user row. The token subject is the user's email; the user must still
// exist, be active and have a verified email for the request to pass.
func Authenticate(issuer *token.Issuer, userRepo repository.UserRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString := extractToken(r)
			if tokenString == "" {
				utils.ResponseUnauthorized(w, "Missing authentication token")
				return
			}

			claims, err := issuer.Validate(tokenString)
			if err != nil {
				if err == token.ErrExpired {
					utils.ResponseUnauthorized(w, "Token has expired")
					return
				}
				utils.ResponseUnauthorized(w, "Invalid authentication token")
				return
			}

			user, err := userRepo.FindByEmail(r.Context(), claims.Subject)
			if err != nil {
				logger.Error("Failed to resolve token subject",
					zap.String("email", claims.Subject),
					zap.Error(err))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			if user == nil || !user.IsActive {
				utils.ResponseUnauthorized(w, "Invalid authentication token")
				return
			}

			if !user.IsVerified {
				utils.ResponseForbidden(w, "Email not verified")
				return
			}

			ctx := utils.SetUserContext(r.Context(), user.ID, user.Email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole rejects requests whose user does not hold the named role.
// Membership is read from the store on every request rather than from
// the token, so a revoked role takes effect immediately. Comparison is
// case-insensitive.
func RequireRole(roleRepo repository.RoleRepository, logger *zap.Logger, role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := utils.GetUserIDFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Missing authentication token")
				return
			}

			names, err := roleRepo.FindNamesByUserID(r.Context(), userID)
			if err != nil {
				logger.Error("Failed to load user roles",
					zap.String("user_id", userID.String()),
					zap.Error(err))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			for _, name := range names {
				if strings.EqualFold(name, role) {
					next.ServeHTTP(w, r)
					return
				}
			}

			utils.ResponseForbidden(w, "Insufficient permissions")
		})
	}
}
