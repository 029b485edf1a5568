package rankingservice

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/fitquest/internal/domain"
)

//go:generate mockgen -source=rankingservice.go -destination=mock_rankingservice.go -package=rankingservice

const DefaultLimit = 3

type Repo interface {
	WeeklyTotals(ctx context.Context, from, to time.Time) ([]domain.RankingRow, error)
}

type Service struct {
	repo Repo
	now  func() time.Time
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// WeeklyRanking ranks users by XP earned in the current ISO week. Ties are
// broken by user id so equal totals always get the same order.
func (s *Service) WeeklyRanking(ctx context.Context) ([]domain.RankingRow, error) {
	from, to := domain.WeekBounds(s.now())
	rows, err := s.repo.WeeklyTotals(ctx, from, to)
	if err != nil {
		zap.L().Error("failed to load weekly ranking", zap.Error(err))
		return nil, domain.StoreError(err)
	}
	return rank(rows), nil
}

func rank(rows []domain.RankingRow) []domain.RankingRow {
	ranked := make([]domain.RankingRow, len(rows))
	copy(ranked, rows)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].WeeklyXP != ranked[j].WeeklyXP {
			return ranked[i].WeeklyXP > ranked[j].WeeklyXP
		}
		return ranked[i].UserID < ranked[j].UserID
	})
	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked
}

// MyRank returns nil when the user earned no XP this week.
func (s *Service) MyRank(ctx context.Context, userID string) (*domain.RankingRow, error) {
	rows, err := s.WeeklyRanking(ctx)
	if err != nil {
		return nil, err
	}
	return find(rows, userID), nil
}

func find(rows []domain.RankingRow, userID string) *domain.RankingRow {
	for i := range rows {
		if rows[i].UserID == userID {
			row := rows[i]
			return &row
		}
	}
	return nil
}

func (s *Service) Ranking(ctx context.Context, userID string, limit int) (*domain.RankingView, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	rows, err := s.WeeklyRanking(ctx)
	if err != nil {
		return nil, err
	}
	top := rows
	if len(top) > limit {
		top = top[:limit]
	}
	return &domain.RankingView{
		Week: domain.WeekID(s.now()),
		Top:  top,
		Me:   find(rows, userID),
	}, nil
}
