package usecase

import (
	"context"
	"time"

	"service-booking/internal/data/entity"
	"service-booking/internal/data/repository"
	"service-booking/internal/dto/request"
	"service-booking/internal/dto/response"
	"service-booking/internal/mailer"
	"service-booking/internal/token"
	"service-booking/pkg/apperrors"
	"service-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// verification and password-reset tokens are short-lived and carry no
// role snapshot.
const resetTokenTTL = time.Hour

// Mailer is the slice of the composer the services need. Satisfied by
// *mailer.Composer; tests swap in a recording fake.
type Mailer interface {
	SendVerification(to, tokenString string) error
	SendPasswordReset(to, tokenString string) error
	SendBookingConfirmation(to string, mail mailer.BookingMail) error
}

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	VerifyEmail(ctx context.Context, tokenString string) (string, error)
	ForgotPassword(ctx context.Context, req *request.ForgotPasswordRequest) error
	ResetPassword(ctx context.Context, req *request.ResetPasswordRequest) error
}

type authService struct {
	repo   *repository.Repository
	issuer *token.Issuer
	mail   Mailer
	audit  *AuditRecorder
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	issuer *token.Issuer,
	mail Mailer,
	audit *AuditRecorder,
	config *utils.Config,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		issuer: issuer,
		mail:   mail,
		audit:  audit,
		config: config,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error) {
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
		IsActive:     true,
		IsVerified:   false,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		return nil, apperrors.Internal("Failed to create account", err)
	}

	if err := s.attachRoleByName(ctx, user.ID, "customer"); err != nil {
		s.log.Warn("Failed to attach default role",
			zap.String("user_id", user.ID.String()),
			zap.Error(err))
	}

	go s.sendVerificationMail(user.Email)

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	resp := response.UserToResponse(user, []string{"customer"})
	return &resp, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperrors.Validation("Validation failed").WithDetails(errs)
	}

	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperrors.Internal("Failed to check credentials", err)
	}

	// Unknown email, wrong password and deactivated account all share
	// one generic message so the response does not leak which it was.
	if user == nil || !user.IsActive || !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.InvalidCredentials("Invalid credentials")
	}

	if !user.IsVerified {
		return nil, apperrors.Unverified("Email not verified")
	}

	roles, err := s.repo.Role.FindNamesByUserID(ctx, user.ID)
	if err != nil {
		return nil, apperrors.Internal("Failed to load roles", err)
	}

	ttl := time.Duration(s.config.JWT.ExpiryMinutes) * time.Minute
	tokenString, err := s.issuer.Issue(user.Email, roles, ttl)
	if err != nil {
		return nil, apperrors.Internal("Failed to issue token", err)
	}

	s.log.Info("User logged in", zap.String("user_id", user.ID.String()))

	resp := response.AuthToResponse(user, roles, tokenString, time.Now().Add(ttl))
	return &resp, nil
}

// VerifyEmail flips is_verified once. Verifying twice is not an error;
// the second call reports the state without writing.
func (s *authService) VerifyEmail(ctx context.Context, tokenString string) (string, error) {
	claims, err := s.issuer.Validate(tokenString)
	if err != nil {
		if err == token.ErrExpired {
			return "", apperrors.Validation("Verification token has expired")
		}
		return "", apperrors.Validation("Invalid verification token")
	}

	user, err := s.repo.User.FindByEmail(ctx, claims.Subject)
	if err != nil {
		return "", apperrors.Internal("Failed to find user", err)
	}
	if user == nil {
		return "", apperrors.NotFound("User not found")
	}

	if user.IsVerified {
		return "Email already verified", nil
	}

	user.IsVerified = true
	user.UpdatedAt = time.Now()
	if err := s.repo.User.Update(ctx, user); err != nil {
		return "", apperrors.Internal("Failed to verify email", err)
	}

	s.audit.Record(&user.ID, "email_verified", user.Email)

	return "Email verified successfully", nil
}

// ForgotPassword always reports success to the caller; whether the
// email exists is never revealed.
func (s *authService) ForgotPassword(ctx context.Context, req *request.ForgotPasswordRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return apperrors.Validation("Validation failed").WithDetails(errs)
	}

	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		return apperrors.Internal("Failed to find user", err)
	}
	if user == nil {
		s.log.Info("Password reset requested for unknown email", zap.String("email", req.Email))
		return nil
	}

	resetToken, err := s.issuer.Issue(user.Email, nil, resetTokenTTL)
	if err != nil {
		return apperrors.Internal("Failed to issue reset token", err)
	}

	go func() {
		if err := s.mail.SendPasswordReset(user.Email, resetToken); err != nil {
			s.log.Error("Failed to send password reset email",
				zap.String("email", user.Email),
				zap.Error(err))
		}
	}()

	return nil
}

func (s *authService) ResetPassword(ctx context.Context, req *request.ResetPasswordRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return apperrors.Validation("Validation failed").WithDetails(errs)
	}

	claims, err := s.issuer.Validate(req.Token)
	if err != nil {
		if err == token.ErrExpired {
			return apperrors.Validation("Reset token has expired")
		}
		return apperrors.Validation("Invalid reset token")
	}

	user, err := s.repo.User.FindByEmail(ctx, claims.Subject)
	if err != nil {
		return apperrors.Internal("Failed to find user", err)
	}
	if user == nil {
		return apperrors.NotFound("User not found")
	}

	hashed, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return apperrors.Internal("Failed to process password", err)
	}

	user.PasswordHash = hashed
	user.UpdatedAt = time.Now()
	if err := s.repo.User.Update(ctx, user); err != nil {
		return apperrors.Internal("Failed to reset password", err)
	}

	s.log.Info("Password reset", zap.String("user_id", user.ID.String()))

	return nil
}

func (s *authService) attachRoleByName(ctx context.Context, userID uuid.UUID, name string) error {
	role, err := ensureRole(ctx, s.repo.Role, name)
	if err != nil {
		return err
	}
	return s.repo.Role.Attach(ctx, userID, role.ID)
}

func (s *authService) sendVerificationMail(email string) {
	verifyToken, err := s.issuer.Issue(email, nil, resetTokenTTL)
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
}
