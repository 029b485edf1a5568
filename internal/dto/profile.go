package dto

import (
	"time"

	"github.com/GlebRadaev/fitquest/internal/domain"
)

type ProvisionRequestDTO struct {
	DisplayName string `json:"display_name" validate:"max=80" example:"Ana"`
	AvatarURL   string `json:"avatar_url,omitempty" validate:"omitempty,url" example:"https://cdn.fitquest.app/a/ana.png"`
}

type ProfileResponseDTO struct {
	UserID      string    `json:"user_id" example:"8d0f6c1e-2b1a-4d3c-9e8f-7a6b5c4d3e2f"`
	Email       string    `json:"email" example:"ana@fitquest.app"`
	DisplayName string    `json:"display_name" example:"Ana"`
	AvatarURL   string    `json:"avatar_url,omitempty" example:"https://cdn.fitquest.app/a/ana.png"`
	CreatedAt   time.Time `json:"created_at" example:"2025-02-10T09:00:00Z"`
}

type ProvisionResponseDTO struct {
	Profile ProfileResponseDTO `json:"profile"`
	Ledger  LedgerResponseDTO  `json:"ledger"`
}

func FromProfile(p *domain.Profile) ProfileResponseDTO {
	return ProfileResponseDTO{
		UserID:      p.UserID,
		Email:       p.Email,
		DisplayName: p.DisplayName,
		AvatarURL:   p.AvatarURL,
		CreatedAt:   p.CreatedAt,
	}
}
