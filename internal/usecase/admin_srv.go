package usecase

import (
	"context"
	"fmt"
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

type AdminService interface {
	ListUsers(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error)
	GetUser(ctx context.Context, id string) (*response.UserResponse, error)
	CreateUser(ctx context.Context, actorID uuid.UUID, req *request.AdminCreateUserRequest) (*response.UserResponse, error)
	UpdateUser(ctx context.Context, actorID uuid.UUID, id string, req *request.AdminUpdateUserRequest) (*response.UserResponse, error)
	DeactivateUser(ctx context.Context, actorID uuid.UUID, id string) error
	AssignRole(ctx context.Context, actorID uuid.UUID, req *request.AssignRoleRequest) error
	ActivityLogs(ctx context.Context, req *request.PaginatedRequest) ([]response.ActivityLogResponse, error)
}

type adminService struct {
	repo  *repository.Repository
	mail  Mailer
	issue func(subject string) (string, error)
	audit *AuditRecorder
	log   *zap.Logger
}

func NewAdminService(
	repo *repository.Repository,
	mail Mailer,
	issue func(subject string) (string, error),
	audit *AuditRecorder,
	log *zap.Logger,
) AdminService {
	return &adminService{
		repo:  repo,
		mail:  mail,
		issue: issue,
		audit: audit,
		log:   log.With(zap.String("service", "admin")),
	}
}

func (s *adminService) ListUsers(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error) {
	users, err := s.repo.User.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		return nil, apperrors.Internal("Failed to list users", err)
	}

	total, err := s.repo.User.CountAll(ctx)
	if err != nil {
		return nil, apperrors.Internal("Failed to count users", err)
	}

	result := make([]response.UserResponse, 0, len(users))
	for _, user := range users {
		result = append(result, response.UserToResponse(user, nil))
	}

	return response.NewPaginatedResponse(result, req.Page, req.Limit(), total), nil
}

func (s *adminService) GetUser(ctx context.Context, id string) (*response.UserResponse, error) {
	userID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperrors.Validation("Invalid user ID")
	}

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

// CreateUser provisions an account on someone's behalf. The account
// starts inactive and unverified; the owner activates it through the
// emailed verification link.
func (s *adminService) CreateUser(ctx context.Context, actorID uuid.UUID, req *request.AdminCreateUserRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperrors.Validation("Validation failed").WithDetails(errs)
	}

	existing, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperrors.Internal("Failed to check email", err)
	}
	if existing != nil {
		return nil, apperrors.Conflict("Email already registered")
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.Internal("Failed to process password", err)
	}

	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Email:        req.Email,
		FullName:     req.FullName,
		PasswordHash: hashed,
		IsActive:     false,
		IsVerified:   false,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		return nil, apperrors.Internal("Failed to create user", err)
	}

	roleNames := req.Roles
	if len(roleNames) == 0 {
		roleNames = []string{entity.RoleAdmin}
	}

	for _, name := range roleNames {
		role, err := ensureRole(ctx, s.repo.Role, name)
		if err != nil {
			return nil, apperrors.Internal("Failed to resolve role", err)
		}
		if err := s.repo.Role.Attach(ctx, user.ID, role.ID); err != nil {
			return nil, apperrors.Internal("Failed to attach role", err)
		}
	}

	go func(email string) {
		verifyToken, err := s.issue(email)
		if err != nil {
			s.log.Error("Failed to issue verification token",
				zap.String("email", email),
				zap.Error(err))
			return
		}
		if err := s.mail.SendVerification(email, verifyToken); err != nil {
			s.log.Error("Failed to send verification email",
				zap.String("email", email),
				zap.Error(err))
		}
	}(user.Email)

	s.audit.Record(&actorID, "admin_create_user",
		fmt.Sprintf("created user %s (%s)", user.ID.String(), user.Email))

	resp := response.UserToResponse(user, roleNames)
	return &resp, nil
}

func (s *adminService) UpdateUser(ctx context.Context, actorID uuid.UUID, id string, req *request.AdminUpdateUserRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperrors.Validation("Validation failed").WithDetails(errs)
	}

	userID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperrors.Validation("Invalid user ID")
	}

	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return nil, apperrors.Internal("Failed to find user", err)
	}
	if user == nil {
		return nil, apperrors.NotFound("User not found")
	}

	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	user.UpdatedAt = time.Now()

	if err := s.repo.User.Update(ctx, user); err != nil {
		return nil, apperrors.Internal("Failed to update user", err)
	}

	if req.Roles != nil {
		roleIDs := make([]uuid.UUID, 0, len(*req.Roles))
		for _, name := range *req.Roles {
			role, err := ensureRole(ctx, s.repo.Role, name)
			if err != nil {
				return nil, apperrors.Internal("Failed to resolve role", err)
			}
			roleIDs = append(roleIDs, role.ID)
		}
		if err := s.repo.Role.ReplaceForUser(ctx, user.ID, roleIDs); err != nil {
			return nil, apperrors.Internal("Failed to replace roles", err)
		}
	}

	s.audit.Record(&actorID, "admin_update_user",
		fmt.Sprintf("updated user %s", user.ID.String()))

	roles, err := s.repo.Role.FindNamesByUserID(ctx, user.ID)
	if err != nil {
		return nil, apperrors.Internal("Failed to load roles", err)
	}

	resp := response.UserToResponse(user, roles)
	return &resp, nil
}

func (s *adminService) DeactivateUser(ctx context.Context, actorID uuid.UUID, id string) error {
	userID, err := uuid.Parse(id)
	if err != nil {
		return apperrors.Validation("Invalid user ID")
	}

	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return apperrors.Internal("Failed to find user", err)
	}
	if user == nil {
		return apperrors.NotFound("User not found")
	}

	if user.IsActive {
		user.IsActive = false
		user.UpdatedAt = time.Now()
		if err := s.repo.User.Update(ctx, user); err != nil {
			return apperrors.Internal("Failed to deactivate user", err)
		}
	}

	s.audit.Record(&actorID, "admin_deactivate_user",
		fmt.Sprintf("deactivated user %s", user.ID.String()))

	return nil
}

// AssignRole attaches a role to a user, creating the role row on first
// use. Attaching a role the user already holds is a no-op.
func (s *adminService) AssignRole(ctx context.Context, actorID uuid.UUID, req *request.AssignRoleRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return apperrors.Validation("Validation failed").WithDetails(errs)
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return apperrors.Validation("Invalid user ID")
	}

	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return apperrors.Internal("Failed to find user", err)
	}
	if user == nil {
		return apperrors.NotFound("User not found")
	}

	role, err := ensureRole(ctx, s.repo.Role, req.Role)
	if err != nil {
		return apperrors.Internal("Failed to resolve role", err)
	}

	if err := s.repo.Role.Attach(ctx, user.ID, role.ID); err != nil {
		return apperrors.Internal("Failed to attach role", err)
	}

	s.audit.Record(&actorID, "assign_role",
		fmt.Sprintf("assigned role %s to user %s", role.Name, user.ID.String()))

	return nil
}

func (s *adminService) ActivityLogs(ctx context.Context, req *request.PaginatedRequest) ([]response.ActivityLogResponse, error) {
	entries, err := s.repo.ActivityLog.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		return nil, apperrors.Internal("Failed to list activity logs", err)
	}

	return response.ActivityLogsToResponse(entries), nil
}
