package usecase

import (
	"context"
	"strings"
	"time"

	"service-booking/internal/data/entity"
	"service-booking/internal/data/repository"

	"github.com/google/uuid"
)

// ensureRole resolves a role by name, creating the row on first use.
func ensureRole(ctx context.Context, roles repository.RoleRepository, name string) (*entity.Role, error) {
	role, err := roles.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if role != nil {
		return role, nil
	}

	role = &entity.Role{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Name: strings.ToLower(name),
	}
	if err := roles.Create(ctx, role); err != nil {
		return nil, err
	}

	return role, nil
}

// hasRole reports whether the user holds the named role. Membership is
// read from the store, not from token claims.
func hasRole(ctx context.Context, roles repository.RoleRepository, userID uuid.UUID, name string) (bool, error) {
	names, err := roles.FindNamesByUserID(ctx, userID)
	if err != nil {
		return false, err
	}
	for _, n := range names {
		if strings.EqualFold(n, name) {
			return true, nil
		}
	}
	return false, nil
}
