package dto

import "github.com/GlebRadaev/fitquest/internal/domain"

type DashboardResponseDTO struct {
	Profile   *ProfileResponseDTO   `json:"profile,omitempty"`
	Ledger    LedgerResponseDTO     `json:"ledger"`
	Rank      *RankingRowDTO        `json:"rank,omitempty"`
	Goals     []GoalResponseDTO     `json:"goals"`
	Challenge *ChallengeResponseDTO `json:"challenge,omitempty"`
}

func FromDashboard(d *domain.Dashboard) DashboardResponseDTO {
	resp := DashboardResponseDTO{
		Ledger: FromLedger(d.Ledger),
		Rank:   FromRankingRow(d.Rank),
		Goals:  make([]GoalResponseDTO, 0, len(d.Goals)),
	}
	if d.Profile != nil {
		p := FromProfile(d.Profile)
		resp.Profile = &p
	}
	for _, g := range d.Goals {
		resp.Goals = append(resp.Goals, FromGoal(g.Goal, g.Progress))
	}
	if d.Challenge != nil {
		c := FromChallenge(d.Challenge)
		resp.Challenge = &c
	}
	return resp
}
