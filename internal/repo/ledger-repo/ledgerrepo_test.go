package ledgerrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/GlebRadaev/fitquest/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ledgerColumns = []string{"user_id", "xp", "level", "badges", "updated_at"}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)
	return New(mockDB), mockDB
}

func TestRepository_GetEntry(t *testing.T) {
	repo, mock := NewMock(t)
	updatedAt := time.Date(2025, time.February, 12, 10, 0, 0, 0, time.UTC)
	query := regexp.QuoteMeta(`SELECT user_id, xp, level, badges, updated_at FROM ledger WHERE user_id = $1`)

	tests := []struct {
		name      string
		userID    string
		mockSetup func()
		expectErr bool
		result    *domain.LedgerEntry
	}{
		{
			name:   "Existing entry",
			userID: "u1",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs("u1").
					WillReturnRows(pgxmock.NewRows(ledgerColumns).
						AddRow("u1", 440, 5, []string{"Iniciante dedicado"}, updatedAt))
			},
			result: &domain.LedgerEntry{
				UserID: "u1", XP: 440, Level: 5, Badges: []string{"Iniciante dedicado"}, UpdatedAt: updatedAt,
			},
		},
		{
			name:   "Missing entry returns nil",
			userID: "u2",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("u2").WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name:   "Database error",
			userID: "u1",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("u1").WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetEntry(context.Background(), tt.userID)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_LockEntry(t *testing.T) {
	repo, mock := NewMock(t)
	updatedAt := time.Date(2025, time.February, 12, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM ledger WHERE user_id = $1 FOR UPDATE`)).
		WithArgs("u1").
		WillReturnRows(pgxmock.NewRows(ledgerColumns).AddRow("u1", 0, 1, nil, updatedAt))

	entry, err := repo.LockEntry(context.Background(), "u1")

	require.NoError(t, err)
	assert.Equal(t, &domain.LedgerEntry{UserID: "u1", XP: 0, Level: 1, Badges: []string{}, UpdatedAt: updatedAt}, entry)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CreateEntry(t *testing.T) {
	repo, mock := NewMock(t)
	updatedAt := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO ledger (user_id, xp, level, badges) VALUES ($1, 0, 1, '{}') ON CONFLICT (user_id)`)).
		WithArgs("u1").
		WillReturnRows(pgxmock.NewRows(ledgerColumns).AddRow("u1", 0, 1, []string{}, updatedAt))

	entry, err := repo.CreateEntry(context.Background(), "u1")

	require.NoError(t, err)
	assert.Equal(t, 1, entry.Level)
	assert.Empty(t, entry.Badges)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_SaveEntry(t *testing.T) {
	repo, mock := NewMock(t)
	updatedAt := time.Date(2025, time.February, 12, 10, 0, 0, 0, time.UTC)
	query := regexp.QuoteMeta(`UPDATE ledger SET xp = $1, level = $2, badges = $3, updated_at = $4 WHERE user_id = $5 RETURNING user_id, xp, level, badges, updated_at`)
	input := &domain.LedgerEntry{UserID: "u1", XP: 500, Level: 6, Badges: []string{"Iniciante dedicado"}, UpdatedAt: updatedAt}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		expected  *domain.LedgerEntry
	}{
		{
			name: "Successfully saves entry",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(500, 6, []string{"Iniciante dedicado"}, updatedAt, "u1").
					WillReturnRows(pgxmock.NewRows(ledgerColumns).
						AddRow("u1", 500, 6, []string{"Iniciante dedicado"}, updatedAt))
			},
			expected: input,
		},
		{
			name: "Check constraint violation",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(500, 6, []string{"Iniciante dedicado"}, updatedAt, "u1").
					WillReturnError(errors.New("violates check constraint \"ledger_level_derived\""))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.SaveEntry(context.Background(), input)

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_AddEvent(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Now()
	event := &domain.XPEvent{UserID: "u1", Delta: 15, Source: domain.XPSourceMicroGoal, SourceID: "mg-1", CreatedAt: createdAt}

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO xp_events (user_id, delta, source, source_id, created_at)`)).
		WithArgs("u1", 15, "micro_goal", "mg-1", createdAt).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(7)))

	err := repo.AddEvent(context.Background(), event)

	require.NoError(t, err)
	assert.Equal(t, int64(7), event.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
