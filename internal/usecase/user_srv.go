package usecase

import (
	"context"

	"service-booking/internal/data/repository"
	"service-booking/internal/dto/response"
	"service-booking/pkg/apperrors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserService interface {
	Me(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error)
}

type userService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewUserService(repo *repository.Repository, log *zap.Logger) UserService {
	return &userService{
		repo: repo,
		log:  log.With(zap.String("service", "user")),
	}
}

func (s *userService) Me(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error) {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return nil, apperrors.Internal("Failed to find user", err)
	}
	if user == nil {
		return nil, apperrors.NotFound("User not found")
	}

	roles, err := s.repo.Role.FindNamesByUserID(ctx, user.ID)
	if err != nil {
		return nil, apperrors.Internal("Failed to load roles", err)
	}

	resp := response.UserToResponse(user, roles)
	return &resp, nil
}
