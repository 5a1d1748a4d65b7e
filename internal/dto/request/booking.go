package request

import "time"

type CreateBookingRequest struct {
	ServiceID   string    `json:"service_id" validate:"required,uuid4"`
	BookingDate time.Time `json:"booking_date" validate:"required"`
}

// UpdateBookingRequest carries a partial update. Nil fields are left
// untouched; present fields are checked against the closed status sets
// before anything reaches the store.
type UpdateBookingRequest struct {
	Status        *string `json:"status,omitempty"`
	PaymentStatus *string `json:"payment_status,omitempty"`
}
