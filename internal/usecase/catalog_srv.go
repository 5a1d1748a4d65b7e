package usecase

import (
	"context"
	"time"

	"service-booking/internal/data/entity"
	"service-booking/internal/data/repository"
	"service-booking/internal/dto/request"
	"service-booking/internal/dto/response"
	"service-booking/pkg/apperrors"
	"service-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CatalogService manages the service listings providers offer.
type CatalogService interface {
	Create(ctx context.Context, ownerID uuid.UUID, req *request.CreateServiceRequest) (*response.ServiceResponse, error)
	GetByID(ctx context.Context, id string) (*response.ServiceResponse, error)
	List(ctx context.Context, req *request.PaginatedRequest) ([]response.ServiceResponse, error)
	Update(ctx context.Context, callerID uuid.UUID, id string, req *request.UpdateServiceRequest) (*response.ServiceResponse, error)
	Delete(ctx context.Context, callerID uuid.UUID, id string) error
}

type catalogService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCatalogService(repo *repository.Repository, log *zap.Logger) CatalogService {
	return &catalogService{
		repo: repo,
		log:  log.With(zap.String("service", "catalog")),
	}
}

func (s *catalogService) Create(ctx context.Context, ownerID uuid.UUID, req *request.CreateServiceRequest) (*response.ServiceResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperrors.Validation("Validation failed").WithDetails(errs)
	}

	var careerTypeID *uuid.UUID
	if req.CareerTypeID != nil {
		id, err := uuid.Parse(*req.CareerTypeID)
		if err != nil {
			return nil, apperrors.Validation("Invalid career type ID")
		}

		careerType, err := s.repo.CareerType.FindByID(ctx, id)
		if err != nil {
			return nil, apperrors.Internal("Failed to find career type", err)
		}
		if careerType == nil {
			return nil, apperrors.NotFound("Career type not found")
		}

		careerTypeID = &id
	}

	currency := req.Currency
	if currency == "" {
		currency = "MYR"
	}

	now := time.Now()
	svc := &entity.Service{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		Category:     req.Category,
		Currency:     currency,
		UserID:       ownerID,
		CareerTypeID: careerTypeID,
	}

	if err := s.repo.Service.Create(ctx, svc); err != nil {
		return nil, apperrors.Internal("Failed to create service", err)
	}

	s.log.Info("Service created",
		zap.String("service_id", svc.ID.String()),
		zap.String("provider_id", ownerID.String()))

	resp := response.ServiceToResponse(svc)
	return &resp, nil
}

func (s *catalogService) GetByID(ctx context.Context, id string) (*response.ServiceResponse, error) {
	serviceID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperrors.Validation("Invalid service ID")
	}

	svc, err := s.repo.Service.FindByID(ctx, serviceID)
	if err != nil {
		return nil, apperrors.Internal("Failed to find service", err)
	}
	if svc == nil {
		return nil, apperrors.NotFound("Service not found")
	}

	resp := response.ServiceToResponse(svc)
	return &resp, nil
}

func (s *catalogService) List(ctx context.Context, req *request.PaginatedRequest) ([]response.ServiceResponse, error) {
	services, err := s.repo.Service.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		return nil, apperrors.Internal("Failed to list services", err)
	}

	return response.ServicesToResponse(services), nil
}

func (s *catalogService) Update(ctx context.Context, callerID uuid.UUID, id string, req *request.UpdateServiceRequest) (*response.ServiceResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperrors.Validation("Validation failed").WithDetails(errs)
	}

	svc, err := s.loadOwned(ctx, callerID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		svc.Name = *req.Name
	}
	if req.Description != nil {
		svc.Description = *req.Description
	}
	if req.Price != nil {
		svc.Price = *req.Price
	}
	if req.Category != nil {
		svc.Category = *req.Category
	}
	if req.Currency != nil {
		svc.Currency = *req.Currency
	}
	svc.UpdatedAt = time.Now()

	if err := s.repo.Service.Update(ctx, svc); err != nil {
		return nil, apperrors.Internal("Failed to update service", err)
	}

	resp := response.ServiceToResponse(svc)
	return &resp, nil
}

// Delete removes a listing. A service that bookings still reference
// cannot be deleted; the rows would lose their target.
func (s *catalogService) Delete(ctx context.Context, callerID uuid.UUID, id string) error {
	svc, err := s.loadOwned(ctx, callerID, id)
	if err != nil {
		return err
	}

	count, err := s.repo.Booking.CountByServiceID(ctx, svc.ID)
	if err != nil {
		return apperrors.Internal("Failed to check bookings", err)
	}
	if count > 0 {
		return apperrors.Conflict("Service has bookings and cannot be deleted")
	}

	if err := s.repo.Service.Delete(ctx, svc.ID); err != nil {
		return apperrors.Internal("Failed to delete service", err)
	}

	s.log.Info("Service deleted",
		zap.String("service_id", svc.ID.String()),
		zap.String("caller_id", callerID.String()))

	return nil
}

// loadOwned fetches the service and checks the caller may modify it:
// the owner or an admin.
func (s *catalogService) loadOwned(ctx context.Context, callerID uuid.UUID, id string) (*entity.Service, error) {
	serviceID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperrors.Validation("Invalid service ID")
	}

	svc, err := s.repo.Service.FindByID(ctx, serviceID)
	if err != nil {
		return nil, apperrors.Internal("Failed to find service", err)
	}
	if svc == nil {
		return nil, apperrors.NotFound("Service not found")
	}

	if svc.UserID != callerID {
		admin, err := hasRole(ctx, s.repo.Role, callerID, entity.RoleAdmin)
		if err != nil {
			return nil, apperrors.Internal("Failed to check permissions", err)
		}
		if !admin {
			return nil, apperrors.Forbidden("Not allowed to modify this service")
		}
	}

	return svc, nil
}
