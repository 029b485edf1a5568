package dto

import "github.com/GlebRadaev/fitquest/internal/domain"

type RankingRowDTO struct {
	Rank        int    `json:"rank" example:"1"`
	UserID      string `json:"user_id" example:"8d0f6c1e-2b1a-4d3c-9e8f-7a6b5c4d3e2f"`
	DisplayName string `json:"display_name" example:"Ana"`
	AvatarURL   string `json:"avatar_url,omitempty"`
	WeeklyXP    int    `json:"weekly_xp" example:"300"`
}

type RankingResponseDTO struct {
	Week string          `json:"week" example:"2025-W07"`
	Top  []RankingRowDTO `json:"top"`
	Me   *RankingRowDTO  `json:"me,omitempty"`
}

func FromRankingRow(r *domain.RankingRow) *RankingRowDTO {
	if r == nil {
		return nil
	}
	return &RankingRowDTO{
		Rank:        r.Rank,
		UserID:      r.UserID,
		DisplayName: r.DisplayName,
		AvatarURL:   r.AvatarURL,
		WeeklyXP:    r.WeeklyXP,
	}
}

func FromRanking(v *domain.RankingView) RankingResponseDTO {
	resp := RankingResponseDTO{Week: v.Week, Top: make([]RankingRowDTO, 0, len(v.Top)), Me: FromRankingRow(v.Me)}
	for i := range v.Top {
		resp.Top = append(resp.Top, *FromRankingRow(&v.Top[i]))
	}
	return resp
}
