package challengerepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/GlebRadaev/fitquest/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var columns = []string{"id", "user_id", "week", "title", "description", "progress", "claimed_at", "created_at"}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)
	return New(mockDB), mockDB
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Now()
	challenge := &domain.WeeklyChallenge{ID: uuid.New(), UserID: "u1", Week: "2025-W07", Title: "Move every day"}
	query := regexp.QuoteMeta(`INSERT INTO weekly_challenges (id, user_id, week, title, description, progress)`)
	empty := []bool{false, false, false, false, false, false, false}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr error
	}{
		{
			name: "Creates challenge",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(challenge.ID, "u1", "2025-W07", "Move every day", "", empty).
					WillReturnRows(pgxmock.NewRows(columns).
						AddRow(challenge.ID, "u1", "2025-W07", "Move every day", "", empty, nil, createdAt))
			},
		},
		{
			name: "Duplicate week is a conflict",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(challenge.ID, "u1", "2025-W07", "Move every day", "", empty).
					WillReturnError(&pgconn.PgError{Code: "23505"})
			},
			expectErr: domain.ErrConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			created, err := repo.Create(context.Background(), challenge)
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				assert.Nil(t, created)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, createdAt, created.CreatedAt)
			assert.Equal(t, 0, created.CompletedDays())
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Get(t *testing.T) {
	repo, mock := NewMock(t)
	id := uuid.New()
	createdAt := time.Now()
	claimedAt := createdAt.Add(time.Hour)
	query := regexp.QuoteMeta(`FROM weekly_challenges WHERE id = $1 AND user_id = $2`)

	mock.ExpectQuery(query).WithArgs(id, "u1").
		WillReturnRows(pgxmock.NewRows(columns).
			AddRow(id, "u1", "2025-W07", "Move", "", []bool{true, true, true, false, false, false, false}, &claimedAt, createdAt))
	mock.ExpectQuery(query).WithArgs(id, "u2").WillReturnError(pgx.ErrNoRows)
	mock.ExpectQuery(query).WithArgs(id, "u3").
		WillReturnRows(pgxmock.NewRows(columns).
			AddRow(id, "u3", "2025-W07", "Move", "", []bool{true}, nil, createdAt))

	c, err := repo.Get(context.Background(), "u1", id)
	require.NoError(t, err)
	assert.Equal(t, [domain.DaysPerWeek]bool{true, true, true}, c.Progress)
	assert.Equal(t, &claimedAt, c.ClaimedAt)

	c, err = repo.Get(context.Background(), "u2", id)
	require.NoError(t, err)
	assert.Nil(t, c)

	_, err = repo.Get(context.Background(), "u3", id)
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_LockAndUpdate(t *testing.T) {
	repo, mock := NewMock(t)
	id := uuid.New()
	now := time.Now()
	progress := [domain.DaysPerWeek]bool{true, false, true}

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE id = $1 AND user_id = $2 FOR UPDATE`)).
		WithArgs(id, "u1").
		WillReturnRows(pgxmock.NewRows(columns).
			AddRow(id, "u1", "2025-W07", "Move", "", []bool{true, false, false, false, false, false, false}, nil, now))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE weekly_challenges SET progress = $1 WHERE id = $2`)).
		WithArgs(progress[:], id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE weekly_challenges SET claimed_at = $1 WHERE id = $2 AND claimed_at IS NULL`)).
		WithArgs(now, id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE weekly_challenges SET progress = $1`)).
		WithArgs(progress[:], id).
		WillReturnError(errors.New("database error"))

	c, err := repo.Lock(context.Background(), "u1", id)
	require.NoError(t, err)
	assert.Nil(t, c.ClaimedAt)

	require.NoError(t, repo.UpdateProgress(context.Background(), id, progress))

	claimed, err := repo.MarkClaimed(context.Background(), id, now)
	require.NoError(t, err)
	assert.False(t, claimed)

	assert.Error(t, repo.UpdateProgress(context.Background(), id, progress))
	assert.NoError(t, mock.ExpectationsWereMet())
}
