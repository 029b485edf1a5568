package repo

import (
	"github.com/GlebRadaev/fitquest/internal/audit"
	"github.com/GlebRadaev/fitquest/internal/pg"
	auditrepo "github.com/GlebRadaev/fitquest/internal/repo/audit-repo"
	challengerepo "github.com/GlebRadaev/fitquest/internal/repo/challenge-repo"
	goalrepo "github.com/GlebRadaev/fitquest/internal/repo/goal-repo"
	ledgerrepo "github.com/GlebRadaev/fitquest/internal/repo/ledger-repo"
	microgoalrepo "github.com/GlebRadaev/fitquest/internal/repo/microgoal-repo"
	profilerepo "github.com/GlebRadaev/fitquest/internal/repo/profile-repo"
	rankingrepo "github.com/GlebRadaev/fitquest/internal/repo/ranking-repo"
	"github.com/GlebRadaev/fitquest/internal/service/challengeservice"
	"github.com/GlebRadaev/fitquest/internal/service/goalservice"
	"github.com/GlebRadaev/fitquest/internal/service/ledgerservice"
	"github.com/GlebRadaev/fitquest/internal/service/profileservice"
	"github.com/GlebRadaev/fitquest/internal/service/rankingservice"
)

// LedgerRepo is used by accrual and by provisioning.
type LedgerRepo interface {
	ledgerservice.LedgerRepo
	profileservice.LedgerRepo
}

type Repositories struct {
	ProfileRepo   profileservice.ProfileRepo
	LedgerRepo    LedgerRepo
	GoalRepo      goalservice.GoalRepo
	MicroGoalRepo goalservice.MicroGoalRepo
	ChallengeRepo challengeservice.Repo
	RankingRepo   rankingservice.Repo
	AuditRepo     audit.Repo
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		ProfileRepo:   profilerepo.New(conn),
		LedgerRepo:    ledgerrepo.New(conn),
		GoalRepo:      goalrepo.New(conn),
		MicroGoalRepo: microgoalrepo.New(conn),
		ChallengeRepo: challengerepo.New(conn),
		RankingRepo:   rankingrepo.New(conn),
		AuditRepo:     auditrepo.New(conn),
	}
}
