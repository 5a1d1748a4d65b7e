package repository

import (
	"context"
	"fmt"

	"service-booking/internal/data/entity"
	"service-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type RoleRepository interface {
	Create(ctx context.Context, role *entity.Role) error
	FindByName(ctx context.Context, name string) (*entity.Role, error)
	FindNamesByUserID(ctx context.Context, userID uuid.UUID) ([]string, error)
	Attach(ctx context.Context, userID, roleID uuid.UUID) error
	Detach(ctx context.Context, userID, roleID uuid.UUID) error
	ReplaceForUser(ctx context.Context, userID uuid.UUID, roleIDs []uuid.UUID) error
}

type roleRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRoleRepository(db database.PgxIface, log *zap.Logger) RoleRepository {
	return &roleRepository{
		db:  db,
		log: log.With(zap.String("repository", "role")),
	}
}

func (rr *roleRepository) Create(ctx context.Context, role *entity.Role) error {
	query := `INSERT INTO roles (id, name, created_at) VALUES ($1, $2, $3)`

	_, err := rr.db.Exec(ctx, query, role.ID, role.Name, role.CreatedAt)
	if err != nil {
		rr.log.Error("Failed to create role",
			zap.Error(err),
			zap.String("name", role.Name),
		)
		return fmt.Errorf("create role %s: %w", role.Name, err)
	}

	return nil
}

func (rr *roleRepository) FindByName(ctx context.Context, name string) (*entity.Role, error) {
	query := `SELECT id, name, created_at FROM roles WHERE LOWER(name) = LOWER($1)`

	var role entity.Role
	err := rr.db.QueryRow(ctx, query, name).Scan(&role.ID, &role.Name, &role.CreatedAt)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		rr.log.Error("Failed to find role by name",
			zap.Error(err),
			zap.String("name", name),
		)
		return nil, fmt.Errorf("find role by name %s: %w", name, err)
	}

	return &role, nil
}

// FindNamesByUserID returns the live role membership for a user. The
// authorization guard relies on this instead of token claims so that a
// revoked role takes effect immediately.
func (rr *roleRepository) FindNamesByUserID(ctx context.Context, userID uuid.UUID) ([]string, error) {
	query := `
		SELECT r.name
		FROM roles r
		JOIN user_roles ur ON ur.role_id = r.id
		WHERE ur.user_id = $1
		ORDER BY r.name
	`

	rows, err := rr.db.Query(ctx, query, userID)
	if err != nil {
		rr.log.Error("Failed to find roles by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find roles by user ID %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			rr.log.Error("Failed to scan role row", zap.Error(err))
			return nil, fmt.Errorf("scan role row: %w", err)
		}
		names = append(names, name)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate role rows: %w", err)
	}

	return names, nil
}

// Attach is idempotent: attaching an already-held role is a no-op.
func (rr *roleRepository) Attach(ctx context.Context, userID, roleID uuid.UUID) error {
	query := `
		INSERT INTO user_roles (user_id, role_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`

	_, err := rr.db.Exec(ctx, query, userID, roleID)
	if err != nil {
		rr.log.Error("Failed to attach role",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("role_id", roleID.String()),
		)
		return fmt.Errorf("attach role %s to user %s: %w", roleID.String(), userID.String(), err)
	}

	return nil
}

func (rr *roleRepository) Detach(ctx context.Context, userID, roleID uuid.UUID) error {
	query := `DELETE FROM user_roles WHERE user_id = $1 AND role_id = $2`

	_, err := rr.db.Exec(ctx, query, userID, roleID)
	if err != nil {
		rr.log.Error("Failed to detach role",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("role_id", roleID.String()),
		)
		return fmt.Errorf("detach role %s from user %s: %w", roleID.String(), userID.String(), err)
	}

	return nil
}

// ReplaceForUser swaps the whole membership set in one transaction, used
// by the admin user update when a roles list is supplied.
func (rr *roleRepository) ReplaceForUser(ctx context.Context, userID uuid.UUID, roleIDs []uuid.UUID) error {
	tx, err := rr.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin replace roles for user %s: %w", userID.String(), err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM user_roles WHERE user_id = $1`, userID); err != nil {
		rr.log.Error("Failed to clear roles",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return fmt.Errorf("clear roles for user %s: %w", userID.String(), err)
	}

	for _, roleID := range roleIDs {
		if _, err := tx.Exec(ctx,
			`INSERT INTO user_roles (user_id, role_id) VALUES ($1, $2)`,
			userID, roleID,
		); err != nil {
			rr.log.Error("Failed to insert role membership",
				zap.Error(err),
				zap.String("user_id", userID.String()),
				zap.String("role_id", roleID.String()),
			)
			return fmt.Errorf("insert role %s for user %s: %w", roleID.String(), userID.String(), err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit replace roles for user %s: %w", userID.String(), err)
	}

	return nil
}
