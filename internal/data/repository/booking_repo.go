package repository

import (
	"context"
	"fmt"
	"time"

	"service-booking/internal/data/entity"
	"service-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]*entity.Booking, error)
	UpdateStatuses(ctx context.Context, id uuid.UUID, status *entity.BookingStatus, paymentStatus *entity.PaymentStatus) (*entity.Booking, error)
	CountByServiceID(ctx context.Context, serviceID uuid.UUID) (int64, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

// Create persists the booking in a single transaction so no partial row
// is ever visible.
func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin create booking: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO bookings (id, customer_id, provider_id, service_id, booking_date,
		                      reminder_time, status, payment_status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err = tx.Exec(ctx, query,
		booking.ID,
		booking.CustomerID,
		booking.ProviderID,
		booking.ServiceID,
		booking.BookingDate,
		booking.ReminderTime,
		booking.Status,
		booking.PaymentStatus,
		booking.CreatedAt,
		booking.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("customer_id", booking.CustomerID.String()),
			zap.String("service_id", booking.ServiceID.String()),
		)
		return fmt.Errorf("create booking %s: %w", booking.ID.String(), err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit create booking %s: %w", booking.ID.String(), err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `
		SELECT id, customer_id, provider_id, service_id, booking_date,
		       reminder_time, status, payment_status, created_at, updated_at
		FROM bookings
		WHERE id = $1
	`

	var booking entity.Booking
	err := r.db.QueryRow(ctx, query, id).Scan(
		&booking.ID,
		&booking.CustomerID,
		&booking.ProviderID,
		&booking.ServiceID,
		&booking.BookingDate,
		&booking.ReminderTime,
		&booking.Status,
		&booking.PaymentStatus,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return &booking, nil
}

func (r *bookingRepository) FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]*entity.Booking, error) {
	query := `
		SELECT id, customer_id, provider_id, service_id, booking_date,
		       reminder_time, status, payment_status, created_at, updated_at
		FROM bookings
		WHERE customer_id = $1
		ORDER BY booking_date
	`

	rows, err := r.db.Query(ctx, query, customerID)
	if err != nil {
		r.log.Error("Failed to find bookings by customer ID",
			zap.Error(err),
			zap.String("customer_id", customerID.String()),
		)
		return nil, fmt.Errorf("find bookings by customer ID %s: %w", customerID.String(), err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		var booking entity.Booking
		err := rows.Scan(
			&booking.ID,
			&booking.CustomerID,
			&booking.ProviderID,
			&booking.ServiceID,
			&booking.BookingDate,
			&booking.ReminderTime,
			&booking.Status,
			&booking.PaymentStatus,
			&booking.CreatedAt,
			&booking.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate booking rows: %w", err)
	}

	return bookings, nil
}

// UpdateStatuses applies a partial update: only non-nil fields change.
// Returns the updated row, or (nil, nil) when the booking does not exist.
func (r *bookingRepository) UpdateStatuses(ctx context.Context, id uuid.UUID, status *entity.BookingStatus, paymentStatus *entity.PaymentStatus) (*entity.Booking, error) {
	query := `
		UPDATE bookings
		SET status = COALESCE($2, status),
		    payment_status = COALESCE($3, payment_status),
		    updated_at = $4
		WHERE id = $1
		RETURNING id, customer_id, provider_id, service_id, booking_date,
		          reminder_time, status, payment_status, created_at, updated_at
	`

	var booking entity.Booking
	err := r.db.QueryRow(ctx, query, id, status, paymentStatus, time.Now()).Scan(
		&booking.ID,
		&booking.CustomerID,
		&booking.ProviderID,
		&booking.ServiceID,
		&booking.BookingDate,
		&booking.ReminderTime,
		&booking.Status,
		&booking.PaymentStatus,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to update booking statuses",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("update booking %s: %w", id.String(), err)
	}

	return &booking, nil
}

// CountByServiceID backs the deletion guard on services: a service with
// historical bookings cannot be removed.
func (r *bookingRepository) CountByServiceID(ctx context.Context, serviceID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE service_id = $1`

	var count int64
	err := r.db.QueryRow(ctx, query, serviceID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count bookings by service ID",
			zap.Error(err),
			zap.String("service_id", serviceID.String()),
		)
		return 0, fmt.Errorf("count bookings by service ID %s: %w", serviceID.String(), err)
	}

	return count, nil
}
