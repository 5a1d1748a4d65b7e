package response

import (
	"time"

	"service-booking/internal/data/entity"
)

type ProfileResponse struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	Name           string    `json:"name"`
	Bio            *string   `json:"bio,omitempty"`
	ProfilePicture *string   `json:"profile_picture,omitempty"`
	PhoneNumber    *string   `json:"phone_number,omitempty"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func ProfileToResponse(profile *entity.UserProfile) ProfileResponse {
	return ProfileResponse{
		ID:             profile.ID.String(),
		UserID:         profile.UserID.String(),
		Name:           profile.Name,
		Bio:            profile.Bio,
		ProfilePicture: profile.ProfilePicture,
		PhoneNumber:    profile.PhoneNumber,
		UpdatedAt:      profile.UpdatedAt,
	}
}
