package service

import (
	"github.com/GlebRadaev/fitquest/internal/audit"
	"github.com/GlebRadaev/fitquest/internal/config"
	"github.com/GlebRadaev/fitquest/internal/handlers/admin"
	"github.com/GlebRadaev/fitquest/internal/handlers/challenges"
	"github.com/GlebRadaev/fitquest/internal/handlers/dashboard"
	"github.com/GlebRadaev/fitquest/internal/handlers/goals"
	"github.com/GlebRadaev/fitquest/internal/handlers/profile"
	"github.com/GlebRadaev/fitquest/internal/handlers/ranking"
	"github.com/GlebRadaev/fitquest/internal/pg"
	"github.com/GlebRadaev/fitquest/internal/repo"
	"github.com/GlebRadaev/fitquest/internal/xp"

	challengeservice "github.com/GlebRadaev/fitquest/internal/service/challengeservice"
	dashboardservice "github.com/GlebRadaev/fitquest/internal/service/dashboardservice"
	goalservice "github.com/GlebRadaev/fitquest/internal/service/goalservice"
	ledgerservice "github.com/GlebRadaev/fitquest/internal/service/ledgerservice"
	profileservice "github.com/GlebRadaev/fitquest/internal/service/profileservice"
	rankingservice "github.com/GlebRadaev/fitquest/internal/service/rankingservice"
)

type Services struct {
	ProfileService   profile.Service
	LedgerService    admin.LedgerService
	GoalService      goals.Service
	ChallengeService challenges.Service
	RankingService   ranking.Service
	DashboardService dashboard.Service
	AuditService     admin.AuditService
}

func New(repo *repo.Repositories, txManager pg.TXManager, recorder *audit.Recorder, cfg *config.Config) *Services {
	ledgerService := ledgerservice.New(repo.LedgerRepo, txManager, xp.New(xp.DefaultTiers), recorder)
	profileService := profileservice.New(repo.ProfileRepo, repo.LedgerRepo, txManager, recorder)
	goalService := goalservice.New(repo.GoalRepo, repo.MicroGoalRepo, txManager, ledgerService, recorder, cfg.MicroGoalReward, cfg.RewardPolicy)
	challengeService := challengeservice.New(repo.ChallengeRepo, txManager, ledgerService, recorder, cfg.ChallengeReward)
	rankingService := rankingservice.New(repo.RankingRepo)
	dashboardService := dashboardservice.New(profileService, ledgerService, rankingService, goalService, challengeService)

	return &Services{
		ProfileService:   profileService,
		LedgerService:    ledgerService,
		GoalService:      goalService,
		ChallengeService: challengeService,
		RankingService:   rankingService,
		DashboardService: dashboardService,
		AuditService:     recorder,
	}
}
