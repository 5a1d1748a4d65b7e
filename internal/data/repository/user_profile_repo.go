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

type UserProfileRepository interface {
	Create(ctx context.Context, profile *entity.UserProfile) error
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.UserProfile, error)
	Update(ctx context.Context, profile *entity.UserProfile) error
}

type userProfileRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewUserProfileRepository(db database.PgxIface, log *zap.Logger) UserProfileRepository {
	return &userProfileRepository{
		db:  db,
		log: log.With(zap.String("repository", "user_profile")),
	}
}

func (r *userProfileRepository) Create(ctx context.Context, profile *entity.UserProfile) error {
	query := `
		INSERT INTO user_profiles (id, user_id, name, bio, profile_picture, phone_number, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		profile.ID,
		profile.UserID,
		profile.Name,
		profile.Bio,
		profile.ProfilePicture,
		profile.PhoneNumber,
		profile.CreatedAt,
		profile.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create user profile",
			zap.Error(err),
			zap.String("user_id", profile.UserID.String()),
		)
		return fmt.Errorf("create profile for user %s: %w", profile.UserID.String(), err)
	}

	return nil
}

func (r *userProfileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.UserProfile, error) {
	query := `
		SELECT id, user_id, name, bio, profile_picture, phone_number, created_at, updated_at
		FROM user_profiles
		WHERE user_id = $1
	`

	var profile entity.UserProfile
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&profile.ID,
		&profile.UserID,
		&profile.Name,
		&profile.Bio,
		&profile.ProfilePicture,
		&profile.PhoneNumber,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find profile by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find profile by user ID %s: %w", userID.String(), err)
	}

	return &profile, nil
}

func (r *userProfileRepository) Update(ctx context.Context, profile *entity.UserProfile) error {
	query := `
		UPDATE user_profiles
		SET name = $2, bio = $3, profile_picture = $4, phone_number = $5, updated_at = $6
		WHERE user_id = $1
	`

	result, err := r.db.Exec(ctx, query,
		profile.UserID,
		profile.Name,
		profile.Bio,
		profile.ProfilePicture,
		profile.PhoneNumber,
		profile.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update user profile",
			zap.Error(err),
			zap.String("user_id", profile.UserID.String()),
		)
		return fmt.Errorf("update profile for user %s: %w", profile.UserID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("profile for user %s not found", profile.UserID.String())
	}

	return nil
}
