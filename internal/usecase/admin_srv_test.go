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

func newAdminService(users *mockUserRepo, roles *mockRoleRepo, mail *mockMailer) AdminService {
	repo := newTestRepo(users, roles, nil, nil, nil)
	audit := NewAuditRecorder(&mockActivityLogRepo{}, zap.NewNop())
	issue := func(subject string) (string, error) { return "verify-token", nil }
	return NewAdminService(repo, mail, issue, audit, zap.NewNop())
}

func TestAdminCreateUserStartsInactive(t *testing.T) {
	var created *entity.User
	users := &mockUserRepo{
		createFn: func(ctx context.Context, u *entity.User) error {
			created = u
			return nil
		},
	}
	adminRole := &entity.Role{BaseSimple: entity.BaseSimple{ID: uuid.New()}, Name: "admin"}
	var attachedRole uuid.UUID
	roles := &mockRoleRepo{
		findByNameFn: func(ctx context.Context, name string) (*entity.Role, error) {
			return adminRole, nil
		},
		attachFn: func(ctx context.Context, userID, roleID uuid.UUID) error {
			attachedRole = roleID
			return nil
		},
	}

	svc := newAdminService(users, roles, newMockMailer())

	resp, err := svc.CreateUser(context.Background(), uuid.New(), &request.AdminCreateUserRequest{
		Email:    "new-admin@example.com",
		FullName: "New Admin",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if created == nil {
		t.Fatal("user was not persisted")
	}
	if created.IsActive {
		t.Error("admin-created user must start inactive")
	}
	if created.IsVerified {
		t.Error("admin-created user must start unverified")
	}
	if attachedRole != adminRole.ID {
		t.Error("admin role was not attached")
	}
	if resp.IsActive {
		t.Error("response must reflect the inactive state")
	}
}

func TestAssignRoleCreatesRoleOnFirstUse(t *testing.T) {
	userID := uuid.New()
	users := &mockUserRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.User, error) {
			return testUser(userID, "user@example.com", "User"), nil
		},
	}

	var createdRole *entity.Role
	attachCalled := false
	roles := &mockRoleRepo{
		findByNameFn: func(ctx context.Context, name string) (*entity.Role, error) {
			return nil, nil
		},
		createFn: func(ctx context.Context, role *entity.Role) error {
			createdRole = role
			return nil
		},
		attachFn: func(ctx context.Context, uid, roleID uuid.UUID) error {
			attachCalled = true
			return nil
		},
	}

	svc := newAdminService(users, roles, newMockMailer())

	err := svc.AssignRole(context.Background(), uuid.New(), &request.AssignRoleRequest{
		UserID: userID.String(),
		Role:   "moderator",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if createdRole == nil || createdRole.Name != "moderator" {
		t.Errorf("role row was not created: %+v", createdRole)
	}
	if !attachCalled {
		t.Error("role was not attached")
	}
}

func TestAdminUpdateUserPartial(t *testing.T) {
	userID := uuid.New()
	user := testUser(userID, "user@example.com", "Old Name")
	users := &mockUserRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.User, error) {
			return user, nil
		},
	}

	replaceCalled := false
	roles := &mockRoleRepo{
		replaceForUserFn: func(ctx context.Context, uid uuid.UUID, roleIDs []uuid.UUID) error {
			replaceCalled = true
			return nil
		},
	}

	svc := newAdminService(users, roles, newMockMailer())

	newName := "New Name"
	resp, err := svc.UpdateUser(context.Background(), uuid.New(), userID.String(), &request.AdminUpdateUserRequest{
		FullName: &newName,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.FullName != "New Name" {
		t.Errorf("full name = %q, want New Name", resp.FullName)
	}
	if !resp.IsActive {
		t.Error("is_active must be untouched when not in the request")
	}
	if replaceCalled {
		t.Error("roles must be untouched when not in the request")
	}
}

func TestAdminDeactivateUser(t *testing.T) {
	userID := uuid.New()
	user := testUser(userID, "user@example.com", "User")
	updated := false
	users := &mockUserRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.User, error) {
			return user, nil
		},
		updateFn: func(ctx context.Context, u *entity.User) error {
			updated = true
			return nil
		},
	}

	svc := newAdminService(users, &mockRoleRepo{}, newMockMailer())

	if err := svc.DeactivateUser(context.Background(), uuid.New(), userID.String()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.IsActive {
		t.Error("user should be inactive")
	}
	if !updated {
		t.Error("store was never written")
	}
}

func TestAdminGetUserNotFound(t *testing.T) {
	svc := newAdminService(&mockUserRepo{}, &mockRoleRepo{}, newMockMailer())

	_, err := svc.GetUser(context.Background(), uuid.NewString())
	assertCode(t, err, apperrors.CodeNotFound)
}
