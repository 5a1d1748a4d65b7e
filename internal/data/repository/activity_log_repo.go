package repository

import (
	"context"
	"fmt"

	"service-booking/internal/data/entity"
	"service-booking/pkg/database"

	"go.uber.org/zap"
)

// ActivityLogRepository is append-only on purpose: there are no update
// or delete operations, so a written record is immutable.
type ActivityLogRepository interface {
	Create(ctx context.Context, log *entity.ActivityLog) error
	FindAll(ctx context.Context, limit, offset int) ([]*entity.ActivityLog, error)
}

type activityLogRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewActivityLogRepository(db database.PgxIface, log *zap.Logger) ActivityLogRepository {
	return &activityLogRepository{
		db:  db,
		log: log.With(zap.String("repository", "activity_log")),
	}
}

func (r *activityLogRepository) Create(ctx context.Context, entry *entity.ActivityLog) error {
	query := `
		INSERT INTO activity_logs (id, user_id, action, details, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		entry.ID,
		entry.UserID,
		entry.Action,
		entry.Details,
		entry.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create activity log",
			zap.Error(err),
			zap.String("action", entry.Action),
		)
		return fmt.Errorf("create activity log %s: %w", entry.Action, err)
	}

	return nil
}

func (r *activityLogRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.ActivityLog, error) {
	query := `
		SELECT id, user_id, action, details, created_at
		FROM activity_logs
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to get activity logs",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find activity logs limit %d offset %d: %w", limit, offset, err)
	}
	defer rows.Close()

	var entries []*entity.ActivityLog
	for rows.Next() {
		var entry entity.ActivityLog
		err := rows.Scan(
			&entry.ID,
			&entry.UserID,
			&entry.Action,
			&entry.Details,
			&entry.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan activity log row", zap.Error(err))
			return nil, fmt.Errorf("scan activity log row: %w", err)
		}
		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate activity log rows: %w", err)
	}

	return entries, nil
}
