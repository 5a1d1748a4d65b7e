package entity

import "github.com/google/uuid"

type UserProfile struct {
	BaseNoDelete
	UserID         uuid.UUID `db:"user_id"`
	Name           string    `db:"name"`
	Bio            *string   `db:"bio"`
	ProfilePicture *string   `db:"profile_picture"`
	PhoneNumber    *string   `db:"phone_number"`
}
