package response

import (
	"time"

	"service-booking/internal/data/entity"
)

type BookingResponse struct {
	ID            string               `json:"id"`
	CustomerID    string               `json:"customer_id"`
	ProviderID    string               `json:"provider_id"`
	ServiceID     string               `json:"service_id"`
	ServiceName   string               `json:"service_name,omitempty"`
	BookingDate   time.Time            `json:"booking_date"`
	ReminderTime  time.Time            `json:"reminder_time"`
	Status        entity.BookingStatus `json:"status"`
	PaymentStatus entity.PaymentStatus `json:"payment_status"`
	CreatedAt     time.Time            `json:"created_at"`
}

// Helper converters
func BookingToResponse(booking *entity.Booking) BookingResponse {
	return BookingResponse{
		ID:            booking.ID.String(),
		CustomerID:    booking.CustomerID.String(),
		ProviderID:    booking.ProviderID.String(),
		ServiceID:     booking.ServiceID.String(),
		BookingDate:   booking.BookingDate,
		ReminderTime:  booking.ReminderTime,
		Status:        booking.Status,
		PaymentStatus: booking.PaymentStatus,
		CreatedAt:     booking.CreatedAt,
	}
}

func BookingsToResponse(bookings []*entity.Booking) []BookingResponse {
	result := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, BookingToResponse(b))
	}
	return result
}
