package repo

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	auditrepo "github.com/GlebRadaev/fitquest/internal/repo/audit-repo"
	challengerepo "github.com/GlebRadaev/fitquest/internal/repo/challenge-repo"
	goalrepo "github.com/GlebRadaev/fitquest/internal/repo/goal-repo"
	ledgerrepo "github.com/GlebRadaev/fitquest/internal/repo/ledger-repo"
	microgoalrepo "github.com/GlebRadaev/fitquest/internal/repo/microgoal-repo"
	profilerepo "github.com/GlebRadaev/fitquest/internal/repo/profile-repo"
	rankingrepo "github.com/GlebRadaev/fitquest/internal/repo/ranking-repo"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	t.Cleanup(mockDB.Close)

	return New(mockDB), mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.IsType(t, &profilerepo.Repository{}, repo.ProfileRepo)
	assert.IsType(t, &ledgerrepo.Repository{}, repo.LedgerRepo)
	assert.IsType(t, &goalrepo.Repository{}, repo.GoalRepo)
	assert.IsType(t, &microgoalrepo.Repository{}, repo.MicroGoalRepo)
	assert.IsType(t, &challengerepo.Repository{}, repo.ChallengeRepo)
	assert.IsType(t, &rankingrepo.Repository{}, repo.RankingRepo)
	assert.IsType(t, &auditrepo.Repository{}, repo.AuditRepo)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
