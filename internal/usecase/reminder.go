package usecase

import (
	"context"

	"service-booking/internal/data/repository"
	"service-booking/internal/mailer"
	"service-booking/internal/scheduler"

	"go.uber.org/zap"
)

// ReminderMailer is the slice of the composer the reminder handler needs.
type ReminderMailer interface {
	SendBookingReminder(to string, mail mailer.BookingMail) error
}

// NewReminderHandler builds the function the scheduler runs when a
// reminder comes due. Customer, provider and service are re-fetched at
// fire time so the email reflects current data; if any of them is gone
// the reminder is dropped with an error log, no retry.
func NewReminderHandler(repo *repository.Repository, mail ReminderMailer, log *zap.Logger) scheduler.Handler {
	log = log.With(zap.String("service", "reminder"))

	return func(ctx context.Context, reminder scheduler.Reminder) {
		customer, err := repo.User.FindByID(ctx, reminder.CustomerID)
		if err != nil || customer == nil {
			log.Error("Dropping reminder, customer unavailable",
				zap.String("booking_id", reminder.BookingID.String()),
				zap.Error(err))
			return
		}

		provider, err := repo.User.FindByID(ctx, reminder.ProviderID)
		if err != nil || provider == nil {
			log.Error("Dropping reminder, provider unavailable",
				zap.String("booking_id", reminder.BookingID.String()),
				zap.Error(err))
			return
		}

		svc, err := repo.Service.FindByID(ctx, reminder.ServiceID)
		if err != nil || svc == nil {
			log.Error("Dropping reminder, service unavailable",
				zap.String("booking_id", reminder.BookingID.String()),
				zap.Error(err))
			return
		}

		err = mail.SendBookingReminder(customer.Email, mailer.BookingMail{
			BookingID:    reminder.BookingID.String(),
			CustomerName: customer.FullName,
			ProviderName: provider.FullName,
			ServiceName:  svc.Name,
			BookingDate:  reminder.BookingDate,
		})
		if err != nil {
			log.Error("Failed to send booking reminder",
				zap.String("booking_id", reminder.BookingID.String()),
				zap.Error(err))
			return
		}

		log.Info("Booking reminder sent",
			zap.String("booking_id", reminder.BookingID.String()),
			zap.String("email", customer.Email))
	}
}
