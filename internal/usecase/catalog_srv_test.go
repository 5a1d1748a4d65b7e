package usecase

import (
	"context"
	"testing"

	"service-booking/internal/data/entity"
	"service-booking/internal/dto/request"
	"service-booking/pkg/apperrors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func TestDeleteServiceWithBookingsConflict(t *testing.T) {
	ownerID := uuid.New()
	serviceID := uuid.New()

	deleteCalled := false
	services := &mockServiceRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Service, error) {
			return &entity.Service{
				BaseNoDelete: entity.BaseNoDelete{ID: serviceID},
				UserID:       ownerID,
			}, nil
		},
		deleteFn: func(ctx context.Context, id uuid.UUID) error {
			deleteCalled = true
			return nil
		},
	}
	bookings := &mockBookingRepo{
		countByServiceIDFn: func(ctx context.Context, id uuid.UUID) (int64, error) {
			return 3, nil
		},
	}

	svc := NewCatalogService(newTestRepo(nil, nil, nil, services, bookings), zap.NewNop())

	err := svc.Delete(context.Background(), ownerID, serviceID.String())
	assertCode(t, err, apperrors.CodeConflict)
	if deleteCalled {
		t.Error("a referenced service must not be deleted")
	}
}

func TestDeleteUnreferencedServiceSucceeds(t *testing.T) {
	ownerID := uuid.New()
	serviceID := uuid.New()

	deleteCalled := false
	services := &mockServiceRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Service, error) {
			return &entity.Service{
				BaseNoDelete: entity.BaseNoDelete{ID: serviceID},
				UserID:       ownerID,
			}, nil
		},
		deleteFn: func(ctx context.Context, id uuid.UUID) error {
			deleteCalled = true
			return nil
		},
	}

	svc := NewCatalogService(newTestRepo(nil, nil, nil, services, nil), zap.NewNop())

	if err := svc.Delete(context.Background(), ownerID, serviceID.String()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !deleteCalled {
		t.Error("delete was never issued")
	}
}

func TestUpdateServiceByNonOwnerForbidden(t *testing.T) {
	services := &mockServiceRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Service, error) {
			return &entity.Service{
				BaseNoDelete: entity.BaseNoDelete{ID: id},
				UserID:       uuid.New(),
			}, nil
		},
	}
	roles := &mockRoleRepo{
		findNamesByUserIDFn: func(ctx context.Context, userID uuid.UUID) ([]string, error) {
			return []string{"customer"}, nil
		},
	}

	svc := NewCatalogService(newTestRepo(nil, roles, nil, services, nil), zap.NewNop())

	name := "New name"
	_, err := svc.Update(context.Background(), uuid.New(), uuid.NewString(), &request.UpdateServiceRequest{
		Name: &name,
	})

	assertCode(t, err, apperrors.CodeForbidden)
}

func TestCreateServiceDefaultsCurrency(t *testing.T) {
	ownerID := uuid.New()

	var created *entity.Service
	services := &mockServiceRepo{
		createFn: func(ctx context.Context, s *entity.Service) error {
			created = s
			return nil
		},
	}

	svc := NewCatalogService(newTestRepo(nil, nil, nil, services, nil), zap.NewNop())

	_, err := svc.Create(context.Background(), ownerID, &request.CreateServiceRequest{
		Name:  "Haircut",
		Price: 50,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Currency != "MYR" {
		t.Errorf("currency = %q, want MYR", created.Currency)
	}
}

func TestCreateServiceUnknownCareerType(t *testing.T) {
	svc := NewCatalogService(newTestRepo(nil, nil, nil, nil, nil), zap.NewNop())

	careerTypeID := uuid.NewString()
	_, err := svc.Create(context.Background(), uuid.New(), &request.CreateServiceRequest{
		Name:         "Haircut",
		Price:        50,
		CareerTypeID: &careerTypeID,
	})

	assertCode(t, err, apperrors.CodeNotFound)
}
