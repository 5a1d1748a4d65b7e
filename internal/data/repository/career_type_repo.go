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

type CareerTypeRepository interface {
	Create(ctx context.Context, careerType *entity.CareerType) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.CareerType, error)
	FindByName(ctx context.Context, name string) (*entity.CareerType, error)
	FindAll(ctx context.Context) ([]*entity.CareerType, error)
	Approve(ctx context.Context, id uuid.UUID) error
}

type careerTypeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCareerTypeRepository(db database.PgxIface, log *zap.Logger) CareerTypeRepository {
	return &careerTypeRepository{
		db:  db,
		log: log.With(zap.String("repository", "career_type")),
	}
}

func (r *careerTypeRepository) Create(ctx context.Context, careerType *entity.CareerType) error {
	query := `INSERT INTO career_types (id, name, is_approved, created_at) VALUES ($1, $2, $3, $4)`

	_, err := r.db.Exec(ctx, query,
		careerType.ID,
		careerType.Name,
		careerType.IsApproved,
		careerType.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create career type",
			zap.Error(err),
			zap.String("name", careerType.Name),
		)
		return fmt.Errorf("create career type %s: %w", careerType.Name, err)
	}

	return nil
}

func (r *careerTypeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CareerType, error) {
	query := `SELECT id, name, is_approved, created_at FROM career_types WHERE id = $1`

	var careerType entity.CareerType
	err := r.db.QueryRow(ctx, query, id).Scan(
		&careerType.ID,
		&careerType.Name,
		&careerType.IsApproved,
		&careerType.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find career type by ID",
			zap.Error(err),
			zap.String("career_type_id", id.String()),
		)
		return nil, fmt.Errorf("find career type by ID %s: %w", id.String(), err)
	}

	return &careerType, nil
}

func (r *careerTypeRepository) FindByName(ctx context.Context, name string) (*entity.CareerType, error) {
	query := `SELECT id, name, is_approved, created_at FROM career_types WHERE LOWER(name) = LOWER($1)`

	var careerType entity.CareerType
	err := r.db.QueryRow(ctx, query, name).Scan(
		&careerType.ID,
		&careerType.Name,
		&careerType.IsApproved,
		&careerType.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find career type by name",
			zap.Error(err),
			zap.String("name", name),
		)
		return nil, fmt.Errorf("find career type by name %s: %w", name, err)
	}

	return &careerType, nil
}

func (r *careerTypeRepository) FindAll(ctx context.Context) ([]*entity.CareerType, error) {
	query := `SELECT id, name, is_approved, created_at FROM career_types ORDER BY name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to get all career types", zap.Error(err))
		return nil, fmt.Errorf("find all career types: %w", err)
	}
	defer rows.Close()

	var careerTypes []*entity.CareerType
	for rows.Next() {
		var careerType entity.CareerType
		err := rows.Scan(
			&careerType.ID,
			&careerType.Name,
			&careerType.IsApproved,
			&careerType.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan career type row", zap.Error(err))
			return nil, fmt.Errorf("scan career type row: %w", err)
		}
		careerTypes = append(careerTypes, &careerType)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate career type rows: %w", err)
	}

	return careerTypes, nil
}

func (r *careerTypeRepository) Approve(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE career_types SET is_approved = TRUE WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to approve career type",
			zap.Error(err),
			zap.String("career_type_id", id.String()),
		)
		return fmt.Errorf("approve career type %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("career type %s not found", id.String())
	}

	return nil
}
