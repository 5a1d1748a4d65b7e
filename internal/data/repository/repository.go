package repository

import (
	"service-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User        UserRepository
	Role        RoleRepository
	CareerType  CareerTypeRepository
	Service     ServiceRepository
	Booking     BookingRepository
	UserProfile UserProfileRepository
	ActivityLog ActivityLogRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:        NewUserRepository(db, log),
		Role:        NewRoleRepository(db, log),
		CareerType:  NewCareerTypeRepository(db, log),
		Service:     NewServiceRepository(db, log),
		Booking:     NewBookingRepository(db, log),
		UserProfile: NewUserProfileRepository(db, log),
		ActivityLog: NewActivityLogRepository(db, log),
	}
}
