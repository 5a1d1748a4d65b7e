package usecase

import (
	"context"
	"testing"
	"time"

	"service-booking/internal/data/entity"
	"service-booking/internal/dto/request"
	"service-booking/pkg/apperrors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func testUser(id uuid.UUID, email, name string) *entity.User {
	return &entity.User{
		Base:       entity.Base{ID: id},
		Email:      email,
		FullName:   name,
		IsActive:   true,
		IsVerified: true,
	}
}

func assertCode(t *testing.T, err error, want apperrors.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error with code %s, got nil", want)
	}
	appErr := apperrors.FromError(err)
	if appErr.Code != want {
		t.Fatalf("expected code %s, got %s (%v)", want, appErr.Code, err)
	}
}

func TestCreateBookingComputesReminderTime(t *testing.T) {
	customerID := uuid.New()
	providerID := uuid.New()
	serviceID := uuid.New()
	bookingDate := time.Now().Add(72 * time.Hour)
	lead := 24 * time.Hour

	var created *entity.Booking
	bookings := &mockBookingRepo{
		createFn: func(ctx context.Context, b *entity.Booking) error {
			created = b
			return nil
		},
	}
	users := &mockUserRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.User, error) {
			switch id {
			case customerID:
				return testUser(customerID, "customer@example.com", "Customer"), nil
			case providerID:
				return testUser(providerID, "provider@example.com", "Provider"), nil
			}
			return nil, nil
		},
	}
	services := &mockServiceRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Service, error) {
			return &entity.Service{
				BaseNoDelete: entity.BaseNoDelete{ID: serviceID},
				Name:         "Haircut",
				UserID:       providerID,
			}, nil
		},
	}
	mail := newMockMailer()
	sched := newMockScheduler()

	svc := NewBookingService(newTestRepo(users, nil, nil, services, bookings), mail, sched, lead, zap.NewNop())

	resp, err := svc.Create(context.Background(), customerID, &request.CreateBookingRequest{
		ServiceID:   serviceID.String(),
		BookingDate: bookingDate,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if created == nil {
		t.Fatal("booking was not persisted")
	}

	wantReminder := bookingDate.Add(-lead)
	if !created.ReminderTime.Equal(wantReminder) {
		t.Errorf("reminder time = %v, want %v", created.ReminderTime, wantReminder)
	}
	if !created.ReminderTime.Before(created.BookingDate) {
		t.Error("reminder time should be strictly before the booking date")
	}
	if created.Status != entity.BookingStatusPending {
		t.Errorf("status = %s, want pending", created.Status)
	}
	if created.PaymentStatus != entity.PaymentStatusUnpaid {
		t.Errorf("payment status = %s, want unpaid", created.PaymentStatus)
	}

	sched.mu.Lock()
	if len(sched.enqueued) != 1 || sched.enqueued[0] != created.ID.String() {
		t.Errorf("reminder not enqueued under the booking id: %v", sched.enqueued)
	}
	if !sched.fireAts[created.ID.String()].Equal(wantReminder) {
		t.Errorf("reminder enqueued for %v, want %v", sched.fireAts[created.ID.String()], wantReminder)
	}
	sched.mu.Unlock()

	if resp.ServiceName != "Haircut" {
		t.Errorf("response service name = %q, want Haircut", resp.ServiceName)
	}

	if !mail.waitSent(2 * time.Second) {
		t.Error("confirmation email was never sent")
	}
}

func TestCreateBookingMissingServiceNothingPersisted(t *testing.T) {
	customerID := uuid.New()

	insertCalled := false
	bookings := &mockBookingRepo{
		createFn: func(ctx context.Context, b *entity.Booking) error {
			insertCalled = true
			return nil
		},
	}
	users := &mockUserRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.User, error) {
			return testUser(id, "customer@example.com", "Customer"), nil
		},
	}

	svc := NewBookingService(newTestRepo(users, nil, nil, &mockServiceRepo{}, bookings),
		newMockMailer(), newMockScheduler(), time.Hour, zap.NewNop())

	_, err := svc.Create(context.Background(), customerID, &request.CreateBookingRequest{
		ServiceID:   uuid.NewString(),
		BookingDate: time.Now().Add(48 * time.Hour),
	})

	assertCode(t, err, apperrors.CodeNotFound)
	if insertCalled {
		t.Error("booking must not be persisted when the service is missing")
	}
}

func TestCreateBookingMissingProviderNothingPersisted(t *testing.T) {
	customerID := uuid.New()
	providerID := uuid.New()
	serviceID := uuid.New()

	insertCalled := false
	bookings := &mockBookingRepo{
		createFn: func(ctx context.Context, b *entity.Booking) error {
			insertCalled = true
			return nil
		},
	}
	users := &mockUserRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.User, error) {
			if id == customerID {
				return testUser(customerID, "customer@example.com", "Customer"), nil
			}
			return nil, nil
		},
	}
	services := &mockServiceRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Service, error) {
			return &entity.Service{
				BaseNoDelete: entity.BaseNoDelete{ID: serviceID},
				UserID:       providerID,
			}, nil
		},
	}

	svc := NewBookingService(newTestRepo(users, nil, nil, services, bookings),
		newMockMailer(), newMockScheduler(), time.Hour, zap.NewNop())

	_, err := svc.Create(context.Background(), customerID, &request.CreateBookingRequest{
		ServiceID:   serviceID.String(),
		BookingDate: time.Now().Add(48 * time.Hour),
	})

	assertCode(t, err, apperrors.CodeNotFound)
	if insertCalled {
		t.Error("booking must not be persisted when the provider is missing")
	}
}

func TestUpdateBookingRejectsUnknownStatus(t *testing.T) {
	svc := NewBookingService(newTestRepo(nil, nil, nil, nil, nil),
		newMockMailer(), newMockScheduler(), time.Hour, zap.NewNop())

	bad := "archived"
	_, err := svc.Update(context.Background(), uuid.New(), uuid.NewString(), &request.UpdateBookingRequest{
		Status: &bad,
	})

	assertCode(t, err, apperrors.CodeValidation)
}

func TestUpdateBookingRejectsUnknownPaymentStatus(t *testing.T) {
	svc := NewBookingService(newTestRepo(nil, nil, nil, nil, nil),
		newMockMailer(), newMockScheduler(), time.Hour, zap.NewNop())

	bad := "invoiced"
	_, err := svc.Update(context.Background(), uuid.New(), uuid.NewString(), &request.UpdateBookingRequest{
		PaymentStatus: &bad,
	})

	assertCode(t, err, apperrors.CodeValidation)
}

func TestUpdateBookingCancelDropsReminder(t *testing.T) {
	customerID := uuid.New()
	bookingID := uuid.New()

	existing := &entity.Booking{
		BaseNoDelete: entity.BaseNoDelete{ID: bookingID},
		CustomerID:   customerID,
		Status:       entity.BookingStatusPending,
	}
	bookings := &mockBookingRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
			return existing, nil
		},
		updateStatusesFn: func(ctx context.Context, id uuid.UUID, status *entity.BookingStatus, paymentStatus *entity.PaymentStatus) (*entity.Booking, error) {
			updated := *existing
			if status != nil {
				updated.Status = *status
			}
			return &updated, nil
		},
	}
	sched := newMockScheduler()

	svc := NewBookingService(newTestRepo(nil, nil, nil, nil, bookings),
		newMockMailer(), sched, time.Hour, zap.NewNop())

	cancelled := "cancelled"
	resp, err := svc.Update(context.Background(), customerID, bookingID.String(), &request.UpdateBookingRequest{
		Status: &cancelled,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Status != entity.BookingStatusCancelled {
		t.Errorf("status = %s, want cancelled", resp.Status)
	}

	sched.mu.Lock()
	defer sched.mu.Unlock()
	if len(sched.cancelled) != 1 || sched.cancelled[0] != bookingID.String() {
		t.Errorf("reminder was not cancelled: %v", sched.cancelled)
	}
}

func TestUpdateBookingForbiddenForStranger(t *testing.T) {
	bookings := &mockBookingRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
			return &entity.Booking{
				BaseNoDelete: entity.BaseNoDelete{ID: id},
				CustomerID:   uuid.New(),
				ProviderID:   uuid.New(),
			}, nil
		},
	}
	roles := &mockRoleRepo{
		findNamesByUserIDFn: func(ctx context.Context, userID uuid.UUID) ([]string, error) {
			return []string{"customer"}, nil
		},
	}

	svc := NewBookingService(newTestRepo(nil, roles, nil, nil, bookings),
		newMockMailer(), newMockScheduler(), time.Hour, zap.NewNop())

	confirmed := "confirmed"
	_, err := svc.Update(context.Background(), uuid.New(), uuid.NewString(), &request.UpdateBookingRequest{
		Status: &confirmed,
	})

	assertCode(t, err, apperrors.CodeForbidden)
}

func TestUpdateBookingAdminAllowed(t *testing.T) {
	bookingID := uuid.New()
	bookings := &mockBookingRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
			return &entity.Booking{
				BaseNoDelete: entity.BaseNoDelete{ID: bookingID},
				CustomerID:   uuid.New(),
				ProviderID:   uuid.New(),
			}, nil
		},
		updateStatusesFn: func(ctx context.Context, id uuid.UUID, status *entity.BookingStatus, paymentStatus *entity.PaymentStatus) (*entity.Booking, error) {
			return &entity.Booking{
				BaseNoDelete: entity.BaseNoDelete{ID: bookingID},
				Status:       *status,
			}, nil
		},
	}
	roles := &mockRoleRepo{
		findNamesByUserIDFn: func(ctx context.Context, userID uuid.UUID) ([]string, error) {
			return []string{"Admin"}, nil
		},
	}

	svc := NewBookingService(newTestRepo(nil, roles, nil, nil, bookings),
		newMockMailer(), newMockScheduler(), time.Hour, zap.NewNop())

	confirmed := "confirmed"
	_, err := svc.Update(context.Background(), uuid.New(), bookingID.String(), &request.UpdateBookingRequest{
		Status: &confirmed,
	})
	if err != nil {
		t.Fatalf("admin update should succeed, got %v", err)
	}
}

func TestListForUserEmptyIsNotAnError(t *testing.T) {
	userID := uuid.New()
	svc := NewBookingService(newTestRepo(nil, nil, nil, nil, nil),
		newMockMailer(), newMockScheduler(), time.Hour, zap.NewNop())

	resp, err := svc.ListForUser(context.Background(), userID, userID.String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp == nil {
		t.Fatal("expected an empty list, got nil")
	}
	if len(resp) != 0 {
		t.Fatalf("expected no bookings, got %d", len(resp))
	}
}

func TestListForUserForbiddenForOtherUser(t *testing.T) {
	roles := &mockRoleRepo{
		findNamesByUserIDFn: func(ctx context.Context, userID uuid.UUID) ([]string, error) {
			return []string{"customer"}, nil
		},
	}
	svc := NewBookingService(newTestRepo(nil, roles, nil, nil, nil),
		newMockMailer(), newMockScheduler(), time.Hour, zap.NewNop())

	_, err := svc.ListForUser(context.Background(), uuid.New(), uuid.NewString())
	assertCode(t, err, apperrors.CodeForbidden)
}
