package microgoalrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/GlebRadaev/fitquest/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)
	return New(mockDB), mockDB
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	updatedAt := time.Now()
	mg := &domain.MicroGoal{ID: uuid.New(), GoalID: uuid.New(), Title: "Walk 10k steps", Week: 3}

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO micro_goals (id, goal_id, title, description, week, done, rewarded)`)).
		WithArgs(mg.ID, mg.GoalID, "Walk 10k steps", "", 3).
		WillReturnRows(pgxmock.NewRows([]string{"updated_at"}).AddRow(updatedAt))

	saved, err := repo.Create(context.Background(), mg)

	require.NoError(t, err)
	assert.Equal(t, updatedAt, saved.UpdatedAt)
	assert.False(t, saved.Done)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListByGoal(t *testing.T) {
	repo, mock := NewMock(t)
	goalID, first, second := uuid.New(), uuid.New(), uuid.New()
	updatedAt := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM micro_goals WHERE goal_id = $1 ORDER BY week ASC`)).
		WithArgs(goalID).
		WillReturnRows(pgxmock.NewRows([]string{"id", "goal_id", "title", "description", "week", "done", "rewarded", "updated_at"}).
			AddRow(first, goalID, "Walk", "", 1, true, true, updatedAt).
			AddRow(second, goalID, "Swim", "", 2, false, false, updatedAt))

	microGoals, err := repo.ListByGoal(context.Background(), goalID)

	require.NoError(t, err)
	require.Len(t, microGoals, 2)
	assert.True(t, microGoals[0].Done)
	assert.Equal(t, 2, microGoals[1].Week)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_LockForOwner(t *testing.T) {
	repo, mock := NewMock(t)
	id, goalID := uuid.New(), uuid.New()
	updatedAt := time.Now()
	query := regexp.QuoteMeta(`JOIN goals g ON g.id = m.goal_id WHERE m.id = $1 AND g.user_id = $2 FOR UPDATE OF m`)

	tests := []struct {
		name      string
		userID    string
		mockSetup func()
		expectErr bool
		expected  *domain.OwnedMicroGoal
	}{
		{
			name:   "Owner locks row",
			userID: "u1",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(id, "u1").
					WillReturnRows(pgxmock.NewRows([]string{"id", "goal_id", "title", "description", "week", "done", "rewarded", "updated_at", "user_id"}).
						AddRow(id, goalID, "Walk", "", 4, false, false, updatedAt, "u1"))
			},
			expected: &domain.OwnedMicroGoal{
				MicroGoal: domain.MicroGoal{ID: id, GoalID: goalID, Title: "Walk", Week: 4, UpdatedAt: updatedAt},
				OwnerID:   "u1",
			},
		},
		{
			name:   "Other user sees nothing",
			userID: "u2",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(id, "u2").WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name:   "Database error",
			userID: "u1",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(id, "u1").WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.LockForOwner(context.Background(), tt.userID, id)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expected, result)
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateState(t *testing.T) {
	repo, mock := NewMock(t)
	updatedAt := time.Now()
	mg := &domain.MicroGoal{ID: uuid.New(), Done: true, Rewarded: true, UpdatedAt: updatedAt}
	query := regexp.QuoteMeta(`UPDATE micro_goals SET done = $1, rewarded = $2, updated_at = $3 WHERE id = $4`)

	mock.ExpectExec(query).WithArgs(true, true, updatedAt, mg.ID).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(query).WithArgs(true, true, updatedAt, mg.ID).WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	assert.NoError(t, repo.UpdateState(context.Background(), mg))
	assert.ErrorIs(t, repo.UpdateState(context.Background(), mg), pgx.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Delete(t *testing.T) {
	repo, mock := NewMock(t)
	id := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM micro_goals m USING goals g`)).
		WithArgs(id, "u1").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	deleted, err := repo.Delete(context.Background(), "u1", id)

	require.NoError(t, err)
	assert.True(t, deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}
