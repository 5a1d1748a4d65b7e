package usecase

import (
	"context"
	"time"

	"service-booking/internal/data/entity"
	"service-booking/internal/data/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AuditRecorder writes the append-only activity trail. Recording is
// fire-and-forget: a failed insert is logged and never fails the
// operation that triggered it.
type AuditRecorder struct {
	logs repository.ActivityLogRepository
	log  *zap.Logger
}

func NewAuditRecorder(logs repository.ActivityLogRepository, log *zap.Logger) *AuditRecorder {
	return &AuditRecorder{
		logs: logs,
		log:  log.With(zap.String("service", "audit")),
	}
}

// Record persists one audit entry. A nil actorID marks a system action.
// The write runs detached from the caller's context so a finished
// request cannot cancel it.
func (a *AuditRecorder) Record(actorID *uuid.UUID, action, details string) {
	entry := &entity.ActivityLog{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID:  actorID,
		Action:  action,
		Details: details,
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := a.logs.Create(ctx, entry); err != nil {
			a.log.Error("Failed to record audit entry",
				zap.String("action", action),
				zap.Error(err))
		}
	}()
}
