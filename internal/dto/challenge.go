package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/GlebRadaev/fitquest/internal/domain"
)

type CreateChallengeRequestDTO struct {
	Week        string `json:"week,omitempty" validate:"omitempty,len=8" example:"2025-W07"`
	Title       string `json:"title" validate:"required,max=120" example:"Walk every day"`
	Description string `json:"description,omitempty" validate:"max=1000"`
}

type CheckInRequestDTO struct {
	Day *int `json:"day,omitempty" validate:"omitempty,gte=0,lte=6" example:"2"`
}

type ChallengeResponseDTO struct {
	ID          uuid.UUID   `json:"id" example:"3d2c1b0a-9f8e-4d7c-b6a5-443322110001"`
	Week        string      `json:"week" example:"2025-W07"`
	Title       string      `json:"title" example:"Walk every day"`
	Description string      `json:"description,omitempty"`
	Days        []bool      `json:"days" example:"true,true,true,false,false,false,false"`
	Progress    ProgressDTO `json:"progress"`
	ClaimedAt   *time.Time  `json:"claimed_at,omitempty"`
	CreatedAt   time.Time   `json:"created_at" example:"2025-02-10T09:00:00Z"`
}

func FromChallenge(c *domain.WeeklyChallenge) ChallengeResponseDTO {
	days := make([]bool, domain.DaysPerWeek)
	copy(days, c.Progress[:])
	return ChallengeResponseDTO{
		ID:          c.ID,
		Week:        c.Week,
		Title:       c.Title,
		Description: c.Description,
		Days:        days,
		Progress:    FromProgress(c.WeeklyProgress()),
		ClaimedAt:   c.ClaimedAt,
		CreatedAt:   c.CreatedAt,
	}
}

type ClaimResponseDTO struct {
	Challenge ChallengeResponseDTO `json:"challenge"`
	XPAwarded int                  `json:"xp_awarded" example:"50"`
	Ledger    *LedgerResponseDTO   `json:"ledger,omitempty"`
}
