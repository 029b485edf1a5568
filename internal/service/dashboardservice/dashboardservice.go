package dashboardservice

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/fitquest/internal/domain"
)

//go:generate mockgen -source=dashboardservice.go -destination=mock_dashboardservice.go -package=dashboardservice

type Profiles interface {
	GetProfile(ctx context.Context, userID string) (*domain.Profile, error)
}

type Ledger interface {
	GetLedger(ctx context.Context, userID string) (*domain.LedgerEntry, error)
}

type Ranking interface {
	MyRank(ctx context.Context, userID string) (*domain.RankingRow, error)
}

type Goals interface {
	ListGoals(ctx context.Context, userID, status string) ([]domain.GoalSummary, error)
}

type Challenges interface {
	CurrentChallenge(ctx context.Context, userID string) (*domain.WeeklyChallenge, error)
}

type Service struct {
	profiles   Profiles
	ledger     Ledger
	ranking    Ranking
	goals      Goals
	challenges Challenges
}

func New(profiles Profiles, ledger Ledger, ranking Ranking, goals Goals, challenges Challenges) *Service {
	return &Service{
		profiles:   profiles,
		ledger:     ledger,
		ranking:    ranking,
		goals:      goals,
		challenges: challenges,
	}
}

// Dashboard loads everything the home page shows. The ledger is required; a
// failing ranking only hides the rank, and missing profile or challenge rows
// are left empty.
func (s *Service) Dashboard(ctx context.Context, userID string) (*domain.Dashboard, error) {
	var d domain.Dashboard
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		entry, err := s.ledger.GetLedger(ctx, userID)
		if err != nil {
			return err
		}
		d.Ledger = entry
		return nil
	})
	g.Go(func() error {
		profile, err := s.profiles.GetProfile(ctx, userID)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return err
		}
		d.Profile = profile
		return nil
	})
	g.Go(func() error {
		rank, err := s.ranking.MyRank(ctx, userID)
		if err != nil {
			zap.L().Warn("dashboard rank unavailable", zap.String("user_id", userID), zap.Error(err))
			return nil
		}
		d.Rank = rank
		return nil
	})
	g.Go(func() error {
		goals, err := s.goals.ListGoals(ctx, userID, "")
		if err != nil {
			return err
		}
		d.Goals = goals
		return nil
	})
	g.Go(func() error {
		challenge, err := s.challenges.CurrentChallenge(ctx, userID)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return err
		}
		d.Challenge = challenge
		return nil
	})

	if err := g.Wait(); err != nil {
		zap.L().Error("failed to load dashboard", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}
	return &d, nil
}
