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

type CareerTypeService interface {
	Create(ctx context.Context, req *request.CreateCareerTypeRequest) (*response.CareerTypeResponse, error)
	List(ctx context.Context) ([]response.CareerTypeResponse, error)
	Approve(ctx context.Context, id string) (*response.CareerTypeResponse, error)
}

type careerTypeService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCareerTypeService(repo *repository.Repository, log *zap.Logger) CareerTypeService {
	return &careerTypeService{
		repo: repo,
		log:  log.With(zap.String("service", "career_type")),
	}
}

// Create adds a career type awaiting admin approval.
func (s *careerTypeService) Create(ctx context.Context, req *request.CreateCareerTypeRequest) (*response.CareerTypeResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperrors.Validation("Validation failed").WithDetails(errs)
	}

	existing, err := s.repo.CareerType.FindByName(ctx, req.Name)
	if err != nil {
		return nil, apperrors.Internal("Failed to check career type", err)
	}
	if existing != nil {
		return nil, apperrors.Conflict("Career type already exists")
	}

	careerType := &entity.CareerType{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Name:       req.Name,
		IsApproved: false,
	}

	if err := s.repo.CareerType.Create(ctx, careerType); err != nil {
		return nil, apperrors.Internal("Failed to create career type", err)
	}

	s.log.Info("Career type created",
		zap.String("career_type_id", careerType.ID.String()),
		zap.String("name", careerType.Name))

	resp := response.CareerTypeToResponse(careerType)
	return &resp, nil
}

func (s *careerTypeService) List(ctx context.Context) ([]response.CareerTypeResponse, error) {
	careerTypes, err := s.repo.CareerType.FindAll(ctx)
	if err != nil {
		return nil, apperrors.Internal("Failed to list career types", err)
	}

	return response.CareerTypesToResponse(careerTypes), nil
}

func (s *careerTypeService) Approve(ctx context.Context, id string) (*response.CareerTypeResponse, error) {
	careerTypeID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperrors.Validation("Invalid career type ID")
	}

	careerType, err := s.repo.CareerType.FindByID(ctx, careerTypeID)
	if err != nil {
		return nil, apperrors.Internal("Failed to find career type", err)
	}
	if careerType == nil {
		return nil, apperrors.NotFound("Career type not found")
	}

	if !careerType.IsApproved {
		if err := s.repo.CareerType.Approve(ctx, careerTypeID); err != nil {
			return nil, apperrors.Internal("Failed to approve career type", err)
		}
		careerType.IsApproved = true
	}

	resp := response.CareerTypeToResponse(careerType)
	return &resp, nil
}
