package request

type UpdateProfileRequest struct {
	Name           *string `json:"name,omitempty" validate:"omitempty,min=2,max=255"`
	Bio            *string `json:"bio,omitempty" validate:"omitempty,max=2000"`
	ProfilePicture *string `json:"profile_picture,omitempty" validate:"omitempty,url"`
	PhoneNumber    *string `json:"phone_number,omitempty" validate:"omitempty,min=7,max=50"`
}

type CreateProfileRequest struct {
	Name           string  `json:"name" validate:"required,min=2,max=255"`
	Bio            *string `json:"bio,omitempty" validate:"omitempty,max=2000"`
	ProfilePicture *string `json:"profile_picture,omitempty" validate:"omitempty,url"`
	PhoneNumber    *string `json:"phone_number,omitempty" validate:"omitempty,min=7,max=50"`
}
