package rankingrepo

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/fitquest/internal/domain"
	"github.com/GlebRadaev/fitquest/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// WeeklyTotals calls the weekly_xp_totals function for [from, to). Rows come
// back unranked; ordering is the caller's concern.
func (r *Repository) WeeklyTotals(ctx context.Context, from, to time.Time) ([]domain.RankingRow, error) {
	query := `
        SELECT user_id, display_name, avatar_url, weekly_xp
        FROM weekly_xp_totals($1, $2)
    `
	rows, err := r.db.Query(ctx, query, from, to)
	if err != nil {
		zap.L().Error("can't get weekly xp totals", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var totals []domain.RankingRow
	for rows.Next() {
		var row domain.RankingRow
		if err := rows.Scan(&row.UserID, &row.DisplayName, &row.AvatarURL, &row.WeeklyXP); err != nil {
			zap.L().Error("can't scan weekly xp row", zap.Error(err))
			return nil, err
		}
		totals = append(totals, row)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate weekly xp rows", zap.Error(err))
		return nil, err
	}
	return totals, nil
}
