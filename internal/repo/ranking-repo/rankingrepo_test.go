package rankingrepo

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

func TestRepository_WeeklyTotals(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	repo := New(mock)

	from := time.Date(2025, time.February, 10, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 7)
	query := regexp.QuoteMeta(`SELECT user_id, display_name, avatar_url, weekly_xp FROM weekly_xp_totals($1, $2)`)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		expected  []domain.RankingRow
	}{
		{
			name: "Returns totals",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(from, to).
					WillReturnRows(pgxmock.NewRows([]string{"user_id", "display_name", "avatar_url", "weekly_xp"}).
						AddRow("u2", "Bia", "", 150).
						AddRow("u1", "Ana", "https://cdn/a.png", 300))
			},
			expected: []domain.RankingRow{
				{UserID: "u2", DisplayName: "Bia", WeeklyXP: 150},
				{UserID: "u1", DisplayName: "Ana", AvatarURL: "https://cdn/a.png", WeeklyXP: 300},
			},
		},
		{
			name: "Empty week",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(from, to).
					WillReturnRows(pgxmock.NewRows([]string{"user_id", "display_name", "avatar_url", "weekly_xp"}))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(from, to).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			rows, err := repo.WeeklyTotals(context.Background(), from, to)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, rows)
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}
