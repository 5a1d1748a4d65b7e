package response

import (
	"time"

	"service-booking/internal/data/entity"
)

type ActivityLogResponse struct {
	ID        string    `json:"id"`
	UserID    *string   `json:"user_id,omitempty"`
	Action    string    `json:"action"`
	Details   string    `json:"details"`
	CreatedAt time.Time `json:"created_at"`
}

func ActivityLogToResponse(entry *entity.ActivityLog) ActivityLogResponse {
	resp := ActivityLogResponse{
		ID:        entry.ID.String(),
		Action:    entry.Action,
		Details:   entry.Details,
		CreatedAt: entry.CreatedAt,
	}

	if entry.UserID != nil {
		id := entry.UserID.String()
		resp.UserID = &id
	}

	return resp
}

func ActivityLogsToResponse(entries []*entity.ActivityLog) []ActivityLogResponse {
	result := make([]ActivityLogResponse, 0, len(entries))
	for _, e := range entries {
		result = append(result, ActivityLogToResponse(e))
	}
	return result
}
