package usecase

import (
	"context"
	"testing"
	"time"

	"service-booking/internal/data/entity"
	"service-booking/internal/dto/request"
	"service-booking/internal/token"
	"service-booking/pkg/apperrors"
	"service-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func newAuthService(users *mockUserRepo, roles *mockRoleRepo, mail *mockMailer) (AuthService, *token.Issuer) {
	issuer := token.NewIssuer("test-secret", 30*time.Minute)
	config := &utils.Config{JWT: utils.JWTConfig{ExpiryMinutes: 30}}
	if roles == nil {
		roles = &mockRoleRepo{}
	}
	repo := newTestRepo(users, roles, nil, nil, nil)
	audit := NewAuditRecorder(&mockActivityLogRepo{}, zap.NewNop())
	return NewAuthService(repo, issuer, mail, audit, config, zap.NewNop()), issuer
}

func hashedUser(id uuid.UUID, email, password string, active, verified bool) *entity.User {
	hash, _ := utils.HashPassword(password)
	return &entity.User{
		Base:         entity.Base{ID: id},
		Email:        email,
		FullName:     "Test User",
		PasswordHash: hash,
		IsActive:     active,
		IsVerified:   verified,
	}
}

func TestLoginUnknownEmailAndWrongPasswordShareMessage(t *testing.T) {
	user := hashedUser(uuid.New(), "known@example.com", "correct-password", true, true)
	users := &mockUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*entity.User, error) {
			if email == user.Email {
				return user, nil
			}
			return nil, nil
		},
	}
	svc, _ := newAuthService(users, nil, newMockMailer())

	_, errUnknown := svc.Login(context.Background(), &request.LoginRequest{
		Email:    "unknown@example.com",
		Password: "whatever1",
	})
	_, errWrongPw := svc.Login(context.Background(), &request.LoginRequest{
		Email:    user.Email,
		Password: "wrong-password",
	})

	assertCode(t, errUnknown, apperrors.CodeInvalidCredentials)
	assertCode(t, errWrongPw, apperrors.CodeInvalidCredentials)

	if apperrors.FromError(errUnknown).Message != apperrors.FromError(errWrongPw).Message {
		t.Error("unknown email and wrong password must be indistinguishable")
	}
}

func TestLoginUnverifiedIsDistinct(t *testing.T) {
	user := hashedUser(uuid.New(), "unverified@example.com", "correct-password", true, false)
	users := &mockUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*entity.User, error) {
			return user, nil
		},
	}
	svc, _ := newAuthService(users, nil, newMockMailer())

	_, err := svc.Login(context.Background(), &request.LoginRequest{
		Email:    user.Email,
		Password: "correct-password",
	})

	assertCode(t, err, apperrors.CodeUnverified)
}

func TestLoginTokenCarriesRoleSnapshot(t *testing.T) {
	user := hashedUser(uuid.New(), "provider@example.com", "correct-password", true, true)
	users := &mockUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*entity.User, error) {
			return user, nil
		},
	}
	roles := &mockRoleRepo{
		findNamesByUserIDFn: func(ctx context.Context, userID uuid.UUID) ([]string, error) {
			return []string{"customer", "provider"}, nil
		},
	}
	svc, issuer := newAuthService(users, roles, newMockMailer())

	resp, err := svc.Login(context.Background(), &request.LoginRequest{
		Email:    user.Email,
		Password: "correct-password",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := issuer.Validate(resp.Token)
	if err != nil {
		t.Fatalf("issued token failed validation: %v", err)
	}
	if claims.Subject != user.Email {
		t.Errorf("subject = %q, want %q", claims.Subject, user.Email)
	}
	if len(claims.Roles) != 2 || claims.Roles[0] != "customer" || claims.Roles[1] != "provider" {
		t.Errorf("roles = %v, want [customer provider]", claims.Roles)
	}
}

func TestRegisterDuplicateEmailConflict(t *testing.T) {
	users := &mockUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*entity.User, error) {
			return hashedUser(uuid.New(), email, "x", true, true), nil
		},
	}
	svc, _ := newAuthService(users, nil, newMockMailer())

	_, err := svc.Register(context.Background(), &request.RegisterRequest{
		Email:    "taken@example.com",
		FullName: "Someone",
		Password: "password123",
	})

	assertCode(t, err, apperrors.CodeConflict)
}

func TestRegisterSendsVerificationEmail(t *testing.T) {
	users := &mockUserRepo{}
	mail := newMockMailer()
	svc, _ := newAuthService(users, nil, mail)

	_, err := svc.Register(context.Background(), &request.RegisterRequest{
		Email:    "new@example.com",
		FullName: "New User",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !mail.waitSent(2 * time.Second) {
		t.Fatal("verification email was never sent")
	}

	mail.mu.Lock()
	defer mail.mu.Unlock()
	if len(mail.verifications) != 1 || mail.verifications[0] != "new@example.com" {
		t.Errorf("verification sent to %v, want [new@example.com]", mail.verifications)
	}
}

func TestVerifyEmailFlipsVerifiedOnce(t *testing.T) {
	user := hashedUser(uuid.New(), "pending@example.com", "x", true, false)
	updates := 0
	users := &mockUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*entity.User, error) {
			return user, nil
		},
		updateFn: func(ctx context.Context, u *entity.User) error {
			updates++
			return nil
		},
	}
	svc, issuer := newAuthService(users, nil, newMockMailer())

	verifyToken, _ := issuer.Issue(user.Email, nil, time.Hour)

	msg, err := svc.VerifyEmail(context.Background(), verifyToken)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg != "Email verified successfully" {
		t.Errorf("message = %q", msg)
	}
	if !user.IsVerified {
		t.Error("user should be verified")
	}
	if updates != 1 {
		t.Fatalf("expected one store write, got %d", updates)
	}

	// Second verification reports the state without another write.
	msg, err = svc.VerifyEmail(context.Background(), verifyToken)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg != "Email already verified" {
		t.Errorf("message = %q", msg)
	}
	if updates != 1 {
		t.Errorf("second verify must not write, got %d writes", updates)
	}
}

func TestVerifyEmailExpiredToken(t *testing.T) {
	svc, issuer := newAuthService(&mockUserRepo{}, nil, newMockMailer())

	expired, _ := issuer.Issue("pending@example.com", nil, -time.Minute)

	_, err := svc.VerifyEmail(context.Background(), expired)
	assertCode(t, err, apperrors.CodeValidation)
}

func TestForgotPasswordUnknownEmailSilent(t *testing.T) {
	mail := newMockMailer()
	svc, _ := newAuthService(&mockUserRepo{}, nil, mail)

	err := svc.ForgotPassword(context.Background(), &request.ForgotPasswordRequest{
		Email: "unknown@example.com",
	})
	if err != nil {
		t.Fatalf("unknown email must not error: %v", err)
	}

	if mail.waitSent(100 * time.Millisecond) {
		t.Error("no email should be sent for an unknown address")
	}
}

func TestResetPasswordChangesHash(t *testing.T) {
	user := hashedUser(uuid.New(), "reset@example.com", "old-password", true, true)
	oldHash := user.PasswordHash
	users := &mockUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*entity.User, error) {
			return user, nil
		},
	}
	svc, issuer := newAuthService(users, nil, newMockMailer())

	resetToken, _ := issuer.Issue(user.Email, nil, time.Hour)

	err := svc.ResetPassword(context.Background(), &request.ResetPasswordRequest{
		Token:       resetToken,
		NewPassword: "brand-new-password",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if user.PasswordHash == oldHash {
		t.Error("password hash did not change")
	}
	if !utils.CheckPasswordHash("brand-new-password", user.PasswordHash) {
		t.Error("new password does not verify against the stored hash")
	}
}
