package usecase

import (
	"context"
	"time"

	"service-booking/internal/data/entity"
	"service-booking/internal/data/repository"
	"service-booking/internal/dto/request"
	"service-booking/internal/dto/response"
	"service-booking/internal/mailer"
	"service-booking/internal/scheduler"
	"service-booking/pkg/apperrors"
	"service-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReminderScheduler is the slice of the scheduler the booking service
// needs. Satisfied by *scheduler.Scheduler.
type ReminderScheduler interface {
	Enqueue(key string, fireAt time.Time, data scheduler.Reminder)
	Cancel(key string) bool
}

type BookingService interface {
	Create(ctx context.Context, customerID uuid.UUID, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	Update(ctx context.Context, callerID uuid.UUID, bookingID string, req *request.UpdateBookingRequest) (*response.BookingResponse, error)
	ListForUser(ctx context.Context, callerID uuid.UUID, userID string) ([]response.BookingResponse, error)
}

type bookingService struct {
	repo      *repository.Repository
	mail      Mailer
	reminders ReminderScheduler
	lead      time.Duration
	log       *zap.Logger
}

func NewBookingService(
	repo *repository.Repository,
	mail Mailer,
	reminders ReminderScheduler,
	lead time.Duration,
	log *zap.Logger,
) BookingService {
	return &bookingService{
		repo:      repo,
		mail:      mail,
		reminders: reminders,
		lead:      lead,
		log:       log.With(zap.String("service", "booking")),
	}
}

// Create resolves all three referenced rows before anything is written;
// a missing customer, service or provider fails the whole request and
// no booking row is persisted.
func (s *bookingService) Create(ctx context.Context, customerID uuid.UUID, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperrors.Validation("Validation failed").WithDetails(errs)
	}

	serviceID, err := uuid.Parse(req.ServiceID)
	if err != nil {
		return nil, apperrors.Validation("Invalid service ID")
	}

	customer, err := s.repo.User.FindByID(ctx, customerID)
	if err != nil {
		return nil, apperrors.Internal("Failed to find customer", err)
	}
	if customer == nil {
		return nil, apperrors.NotFound("Customer not found")
	}

	svc, err := s.repo.Service.FindByID(ctx, serviceID)
	if err != nil {
		return nil, apperrors.Internal("Failed to find service", err)
	}
	if svc == nil {
		return nil, apperrors.NotFound("Service not found")
	}

	provider, err := s.repo.User.FindByID(ctx, svc.UserID)
	if err != nil {
		return nil, apperrors.Internal("Failed to find provider", err)
	}
	if provider == nil {
		return nil, apperrors.NotFound("Provider not found")
	}

	now := time.Now()
	booking := &entity.Booking{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		CustomerID:    customer.ID,
		ProviderID:    provider.ID,
		ServiceID:     svc.ID,
		BookingDate:   req.BookingDate,
		ReminderTime:  req.BookingDate.Add(-s.lead),
		Status:        entity.BookingStatusPending,
		PaymentStatus: entity.PaymentStatusUnpaid,
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		return nil, apperrors.Internal("Failed to create booking", err)
	}

	mail := mailer.BookingMail{
		BookingID:    booking.ID.String(),
		CustomerName: customer.FullName,
		ProviderName: provider.FullName,
		ServiceName:  svc.Name,
		BookingDate:  booking.BookingDate,
	}

	// Confirmation email is best-effort; a delivery failure is logged
	// and never fails the booking.
	go func(to string, mail mailer.BookingMail) {
		if err := s.mail.SendBookingConfirmation(to, mail); err != nil {
			s.log.Error("Failed to send booking confirmation",
				zap.String("booking_id", mail.BookingID),
				zap.Error(err))
		}
	}(customer.Email, mail)

	s.reminders.Enqueue(booking.ID.String(), booking.ReminderTime, scheduler.Reminder{
		BookingID:   booking.ID,
		CustomerID:  customer.ID,
		ProviderID:  provider.ID,
		ServiceID:   svc.ID,
		BookingDate: booking.BookingDate,
	})

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("customer_id", customer.ID.String()),
		zap.Time("reminder_time", booking.ReminderTime))

	resp := response.BookingToResponse(booking)
	resp.ServiceName = svc.Name
	return &resp, nil
}

// Update applies a partial status change. Only the booking's customer,
// its provider or an admin may touch it. Status values outside the
// closed lifecycle sets are rejected before the store is involved.
func (s *bookingService) Update(ctx context.Context, callerID uuid.UUID, bookingID string, req *request.UpdateBookingRequest) (*response.BookingResponse, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, apperrors.Validation("Invalid booking ID")
	}

	if req.Status == nil && req.PaymentStatus == nil {
		return nil, apperrors.Validation("Nothing to update")
	}

	var status *entity.BookingStatus
	if req.Status != nil {
		if !entity.ValidBookingStatus(*req.Status) {
			return nil, apperrors.Validation("Invalid booking status: " + *req.Status)
		}
		v := entity.BookingStatus(*req.Status)
		status = &v
	}

	var paymentStatus *entity.PaymentStatus
	if req.PaymentStatus != nil {
		if !entity.ValidPaymentStatus(*req.PaymentStatus) {
			return nil, apperrors.Validation("Invalid payment status: " + *req.PaymentStatus)
		}
		v := entity.PaymentStatus(*req.PaymentStatus)
		paymentStatus = &v
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.Internal("Failed to find booking", err)
	}
	if booking == nil {
		return nil, apperrors.NotFound("Booking not found")
	}

	if callerID != booking.CustomerID && callerID != booking.ProviderID {
		admin, err := hasRole(ctx, s.repo.Role, callerID, entity.RoleAdmin)
		if err != nil {
			return nil, apperrors.Internal("Failed to check permissions", err)
		}
		if !admin {
			return nil, apperrors.Forbidden("Not allowed to modify this booking")
		}
	}

	updated, err := s.repo.Booking.UpdateStatuses(ctx, id, status, paymentStatus)
	if err != nil {
		return nil, apperrors.Internal("Failed to update booking", err)
	}
	if updated == nil {
		return nil, apperrors.NotFound("Booking not found")
	}

	// A cancelled booking must not fire its reminder.
	if updated.Status == entity.BookingStatusCancelled {
		s.reminders.Cancel(updated.ID.String())
	}

	s.log.Info("Booking updated",
		zap.String("booking_id", updated.ID.String()),
		zap.String("status", string(updated.Status)),
		zap.String("payment_status", string(updated.PaymentStatus)))

	resp := response.BookingToResponse(updated)
	return &resp, nil
}

// ListForUser returns the bookings where the user is the customer.
// No bookings is not an error; the result is an empty list.
func (s *bookingService) ListForUser(ctx context.Context, callerID uuid.UUID, userID string) ([]response.BookingResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, apperrors.Validation("Invalid user ID")
	}

	if callerID != id {
		admin, err := hasRole(ctx, s.repo.Role, callerID, entity.RoleAdmin)
		if err != nil {
			return nil, apperrors.Internal("Failed to check permissions", err)
		}
		if !admin {
			return nil, apperrors.Forbidden("Not allowed to view these bookings")
		}
	}

	bookings, err := s.repo.Booking.FindByCustomerID(ctx, id)
	if err != nil {
		return nil, apperrors.Internal("Failed to list bookings", err)
	}

	return response.BookingsToResponse(bookings), nil
}
