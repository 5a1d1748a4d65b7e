package entity

import "github.com/google/uuid"

type Service struct {
	BaseNoDelete
	Name         string     `db:"name"`
	Description  string     `db:"description"`
	Price        float64    `db:"price"`
	Category     string     `db:"category"`
	Currency     string     `db:"currency"`
	UserID       uuid.UUID  `db:"user_id"`
	CareerTypeID *uuid.UUID `db:"career_type_id"`
}
