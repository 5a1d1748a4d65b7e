package entity

import "github.com/google/uuid"

// ActivityLog is append-only. Rows are never updated or deleted; a nil
// UserID marks a system action.
type ActivityLog struct {
	BaseSimple
	UserID  *uuid.UUID `db:"user_id"`
	Action  string     `db:"action"`
	Details string     `db:"details"`
}
