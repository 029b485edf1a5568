package auditrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/GlebRadaev/fitquest/internal/domain"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_Insert(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	repo := New(mock)
	createdAt := time.Now()
	query := regexp.QuoteMeta(`INSERT INTO audit_log (user_id, action, subject_id, details, created_at)`)

	mock.ExpectExec(query).
		WithArgs("u1", "micro_goal.toggled", "mg-1", "done=true", createdAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec(query).
		WithArgs("u1", "micro_goal.toggled", "mg-1", "done=true", createdAt).
		WillReturnError(errors.New("database error"))

	event := &domain.AuditEvent{UserID: "u1", Action: "micro_goal.toggled", SubjectID: "mg-1", Details: "done=true", CreatedAt: createdAt}
	assert.NoError(t, repo.Insert(context.Background(), event))
	assert.Error(t, repo.Insert(context.Background(), event))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_List(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	repo := New(mock)
	createdAt := time.Now()
	query := regexp.QuoteMeta(`FROM audit_log WHERE ($1 = '' OR user_id = $1)`)

	mock.ExpectQuery(query).WithArgs("", 100).
		WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "action", "subject_id", "details", "created_at"}).
			AddRow(int64(2), "u1", "xp.accrued", "u1", "delta=15", createdAt))
	mock.ExpectQuery(query).WithArgs("u1", 10).
		WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "action", "subject_id", "details", "created_at"}))

	events, err := repo.List(context.Background(), domain.AuditFilter{Limit: 5000})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "xp.accrued", events[0].Action)

	events, err = repo.List(context.Background(), domain.AuditFilter{UserID: "u1", Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, events)

	assert.NoError(t, mock.ExpectationsWereMet())
}
