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

type ProfileService interface {
	Create(ctx context.Context, userID uuid.UUID, req *request.CreateProfileRequest) (*response.ProfileResponse, error)
	Get(ctx context.Context, userID uuid.UUID) (*response.ProfileResponse, error)
	Update(ctx context.Context, userID uuid.UUID, req *request.UpdateProfileRequest) (*response.ProfileResponse, error)
}

type profileService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewProfileService(repo *repository.Repository, log *zap.Logger) ProfileService {
	return &profileService{
		repo: repo,
		log:  log.With(zap.String("service", "profile")),
	}
}

func (s *profileService) Create(ctx context.Context, userID uuid.UUID, req *request.CreateProfileRequest) (*response.ProfileResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperrors.Validation("Validation failed").WithDetails(errs)
	}

	existing, err := s.repo.UserProfile.FindByUserID(ctx, userID)
	if err != nil {
		return nil, apperrors.Internal("Failed to check profile", err)
	}
	if existing != nil {
		return nil, apperrors.Conflict("Profile already exists")
	}

	now := time.Now()
	profile := &entity.UserProfile{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:         userID,
		Name:           req.Name,
		Bio:            req.Bio,
		ProfilePicture: req.ProfilePicture,
		PhoneNumber:    req.PhoneNumber,
	}

	if err := s.repo.UserProfile.Create(ctx, profile); err != nil {
		return nil, apperrors.Internal("Failed to create profile", err)
	}

	resp := response.ProfileToResponse(profile)
	return &resp, nil
}

func (s *profileService) Get(ctx context.Context, userID uuid.UUID) (*response.ProfileResponse, error) {
	profile, err := s.repo.UserProfile.FindByUserID(ctx, userID)
	if err != nil {
		return nil, apperrors.Internal("Failed to find profile", err)
	}
	if profile == nil {
		return nil, apperrors.NotFound("Profile not found")
	}

	resp := response.ProfileToResponse(profile)
	return &resp, nil
}

func (s *profileService) Update(ctx context.Context, userID uuid.UUID, req *request.UpdateProfileRequest) (*response.ProfileResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperrors.Validation("Validation failed").WithDetails(errs)
	}

	profile, err := s.repo.UserProfile.FindByUserID(ctx, userID)
	if err != nil {
		return nil, apperrors.Internal("Failed to find profile", err)
	}
	if profile == nil {
		return nil, apperrors.NotFound("Profile not found")
	}

	if req.Name != nil {
		profile.Name = *req.Name
	}
	if req.Bio != nil {
		profile.Bio = req.Bio
	}
	if req.ProfilePicture != nil {
		profile.ProfilePicture = req.ProfilePicture
	}
	if req.PhoneNumber != nil {
		profile.PhoneNumber = req.PhoneNumber
	}
	profile.UpdatedAt = time.Now()

	if err := s.repo.UserProfile.Update(ctx, profile); err != nil {
		return nil, apperrors.Internal("Failed to update profile", err)
	}

	resp := response.ProfileToResponse(profile)
	return &resp, nil
}
