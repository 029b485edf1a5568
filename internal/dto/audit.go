package dto

import (
	"time"

	"github.com/GlebRadaev/fitquest/internal/domain"
)

type AuditEventDTO struct {
	ID        int64     `json:"id" example:"42"`
	UserID    string    `json:"user_id" example:"8d0f6c1e-2b1a-4d3c-9e8f-7a6b5c4d3e2f"`
	Action    string    `json:"action" example:"micro_goal.toggled"`
	SubjectID string    `json:"subject_id,omitempty"`
	Details   string    `json:"details,omitempty" example:"done=true xp_awarded=15"`
	CreatedAt time.Time `json:"created_at" example:"2025-02-12T10:00:00Z"`
}

func FromAuditEvents(events []domain.AuditEvent) []AuditEventDTO {
	resp := make([]AuditEventDTO, 0, len(events))
	for _, e := range events {
		resp = append(resp, AuditEventDTO{
			ID:        e.ID,
			UserID:    e.UserID,
			Action:    e.Action,
			SubjectID: e.SubjectID,
			Details:   e.Details,
			CreatedAt: e.CreatedAt,
		})
	}
	return resp
}
