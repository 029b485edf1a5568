package dto

import (
	"time"

	"github.com/GlebRadaev/fitquest/internal/domain"
	"github.com/GlebRadaev/fitquest/internal/xp"
)

type LedgerResponseDTO struct {
	UserID      string    `json:"user_id" example:"8d0f6c1e-2b1a-4d3c-9e8f-7a6b5c4d3e2f"`
	XP          int       `json:"xp" example:"505"`
	Level       int       `json:"level" example:"6"`
	Badges      []string  `json:"badges" example:"Iniciante dedicado"`
	NextLevelXP int       `json:"next_level_xp" example:"600"`
	UpdatedAt   time.Time `json:"updated_at" example:"2025-02-12T10:00:00Z"`
}

type AwardXPRequestDTO struct {
	Delta  int    `json:"delta" validate:"gte=0,lte=10000" example:"15"`
	Reason string `json:"reason,omitempty" validate:"max=200" example:"event bonus"`
}

func FromLedger(e *domain.LedgerEntry) LedgerResponseDTO {
	badges := e.Badges
	if badges == nil {
		badges = []string{}
	}
	return LedgerResponseDTO{
		UserID:      e.UserID,
		XP:          e.XP,
		Level:       e.Level,
		Badges:      badges,
		NextLevelXP: e.Level * xp.PointsPerLevel,
		UpdatedAt:   e.UpdatedAt,
	}
}
