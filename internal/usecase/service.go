package usecase

import (
	"time"

	"service-booking/internal/data/repository"
	"service-booking/internal/token"
	"service-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	User    UserService
	Booking BookingService
	Catalog CatalogService
	Career  CareerTypeService
	Profile ProfileService
	Admin   AdminService
}

func NewService(
	repo *repository.Repository,
	issuer *token.Issuer,
	mail Mailer,
	reminders ReminderScheduler,
	config *utils.Config,
	log *zap.Logger,
) *Service {
	audit := NewAuditRecorder(repo.ActivityLog, log)
	lead := time.Duration(config.Scheduler.ReminderLeadHours) * time.Hour

	// Verification links issued on behalf of admin-created users carry
	// the same short TTL as self-registration ones.
	issueVerification := func(subject string) (string, error) {
		return issuer.Issue(subject, nil, resetTokenTTL)
	}

	return &Service{
		Auth:    NewAuthService(repo, issuer, mail, audit, config, log),
		User:    NewUserService(repo, log),
		Booking: NewBookingService(repo, mail, reminders, lead, log),
		Catalog: NewCatalogService(repo, log),
		Career:  NewCareerTypeService(repo, log),
		Profile: NewProfileService(repo, log),
		Admin:   NewAdminService(repo, mail, issueVerification, audit, log),
	}
}
