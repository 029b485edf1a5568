package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/GlebRadaev/fitquest/internal/domain"
)

const DateLayout = "2006-01-02"

type CreateGoalRequestDTO struct {
	Title       string `json:"title" validate:"required,max=120" example:"Lose 5kg"`
	Description string `json:"description,omitempty" validate:"max=1000" example:"Before summer"`
	Category    string `json:"category,omitempty" validate:"max=60" example:"weight"`
	Difficulty  string `json:"difficulty,omitempty" validate:"omitempty,oneof=easy medium hard" example:"medium"`
	StartDate   string `json:"start_date,omitempty" validate:"omitempty,datetime=2006-01-02" example:"2025-02-10"`
	EndDate     string `json:"end_date,omitempty" validate:"omitempty,datetime=2006-01-02" example:"2025-05-10"`
}

// ToGoal assumes the request already passed validation.
func (r CreateGoalRequestDTO) ToGoal() *domain.Goal {
	g := &domain.Goal{
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		Difficulty:  r.Difficulty,
	}
	if t, err := time.Parse(DateLayout, r.StartDate); err == nil {
		g.StartDate = t
	}
	if t, err := time.Parse(DateLayout, r.EndDate); err == nil {
		g.EndDate = &t
	}
	return g
}

type ProgressDTO struct {
	Completed int     `json:"completed" example:"3"`
	Total     int     `json:"total" example:"7"`
	Percent   float64 `json:"percent" example:"0.4286"`
}

func FromProgress(p domain.Progress) ProgressDTO {
	return ProgressDTO{Completed: p.Completed, Total: p.Total, Percent: p.Percent}
}

type GoalResponseDTO struct {
	ID          uuid.UUID   `json:"id" example:"6f1c7f4e-9a55-4a8f-8d39-1f0a3b1c2d01"`
	Title       string      `json:"title" example:"Lose 5kg"`
	Description string      `json:"description,omitempty"`
	Category    string      `json:"category,omitempty" example:"weight"`
	Difficulty  string      `json:"difficulty" example:"medium"`
	StartDate   string      `json:"start_date" example:"2025-02-10"`
	EndDate     string      `json:"end_date,omitempty" example:"2025-05-10"`
	Status      string      `json:"status" example:"active"`
	Progress    ProgressDTO `json:"progress"`
	CreatedAt   time.Time   `json:"created_at" example:"2025-02-10T09:00:00Z"`
}

func FromGoal(g domain.Goal, p domain.Progress) GoalResponseDTO {
	resp := GoalResponseDTO{
		ID:          g.ID,
		Title:       g.Title,
		Description: g.Description,
		Category:    g.Category,
		Difficulty:  g.Difficulty,
		StartDate:   g.StartDate.Format(DateLayout),
		Status:      domain.GoalSummary{Goal: g, Progress: p}.Status(),
		Progress:    FromProgress(p),
		CreatedAt:   g.CreatedAt,
	}
	if g.EndDate != nil {
		resp.EndDate = g.EndDate.Format(DateLayout)
	}
	return resp
}

type GoalDetailsResponseDTO struct {
	GoalResponseDTO
	MicroGoals []MicroGoalResponseDTO `json:"micro_goals"`
}

type CreateMicroGoalRequestDTO struct {
	Title       string `json:"title" validate:"required,max=120" example:"Run 5km three times"`
	Description string `json:"description,omitempty" validate:"max=1000"`
	Week        int    `json:"week" validate:"gte=1,lte=52" example:"3"`
}

type MicroGoalResponseDTO struct {
	ID          uuid.UUID `json:"id" example:"0b8e2d3a-7c41-4e0b-a2f7-5d6c9e8f1a02"`
	GoalID      uuid.UUID `json:"goal_id" example:"6f1c7f4e-9a55-4a8f-8d39-1f0a3b1c2d01"`
	Title       string    `json:"title" example:"Run 5km three times"`
	Description string    `json:"description,omitempty"`
	Week        int       `json:"week" example:"3"`
	Done        bool      `json:"done" example:"true"`
	UpdatedAt   time.Time `json:"updated_at" example:"2025-02-12T10:00:00Z"`
}

func FromMicroGoal(mg domain.MicroGoal) MicroGoalResponseDTO {
	return MicroGoalResponseDTO{
		ID:          mg.ID,
		GoalID:      mg.GoalID,
		Title:       mg.Title,
		Description: mg.Description,
		Week:        mg.Week,
		Done:        mg.Done,
		UpdatedAt:   mg.UpdatedAt,
	}
}

type ToggleResponseDTO struct {
	MicroGoal MicroGoalResponseDTO `json:"micro_goal"`
	XPAwarded int                  `json:"xp_awarded" example:"15"`
	Ledger    *LedgerResponseDTO   `json:"ledger,omitempty"`
}
