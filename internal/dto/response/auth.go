package response

import (
	"time"

	"service-booking/internal/data/entity"
)

type AuthResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      UserResponse `json:"user"`
}

type UserResponse struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	FullName   string    `json:"full_name"`
	IsActive   bool      `json:"is_active"`
	IsVerified bool      `json:"is_verified"`
	Roles      []string  `json:"roles,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// Helper converters
func UserToResponse(user *entity.User, roles []string) UserResponse {
	return UserResponse{
		ID:         user.ID.String(),
		Email:      user.Email,
		FullName:   user.FullName,
		IsActive:   user.IsActive,
		IsVerified: user.IsVerified,
		Roles:      roles,
		CreatedAt:  user.CreatedAt,
	}
}

func AuthToResponse(user *entity.User, roles []string, tokenString string, expiresAt time.Time) AuthResponse {
	return AuthResponse{
		Token:     tokenString,
		ExpiresAt: expiresAt,
		User:      UserToResponse(user, roles),
	}
}
