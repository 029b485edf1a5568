package challengeservice

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/fitquest/internal/audit"
	"github.com/GlebRadaev/fitquest/internal/domain"
	"github.com/GlebRadaev/fitquest/internal/pg"
)

//go:generate mockgen -source=challengeservice.go -destination=mock_challengeservice.go -package=challengeservice

type Repo interface {
	Create(ctx context.Context, c *domain.WeeklyChallenge) (*domain.WeeklyChallenge, error)
	Get(ctx context.Context, userID string, id uuid.UUID) (*domain.WeeklyChallenge, error)
	GetByWeek(ctx context.Context, userID, week string) (*domain.WeeklyChallenge, error)
	Lock(ctx context.Context, userID string, id uuid.UUID) (*domain.WeeklyChallenge, error)
	UpdateProgress(ctx context.Context, id uuid.UUID, progress [domain.DaysPerWeek]bool) error
	MarkClaimed(ctx context.Context, id uuid.UUID, at time.Time) (bool, error)
}

type Accruer interface {
	AccrueXP(ctx context.Context, userID string, delta int, source domain.XPSource, sourceID string) (*domain.LedgerEntry, error)
}

type Recorder interface {
	Record(event domain.AuditEvent)
}

var (
	ErrAlreadyClaimed      = fmt.Errorf("%w: challenge reward already claimed", domain.ErrConflict)
	ErrChallengeIncomplete = fmt.Errorf("%w: challenge is not complete", domain.ErrConflict)
)

type Service struct {
	repo     Repo
	tx       pg.TXManager
	ledger   Accruer
	recorder Recorder
	reward   int
	now      func() time.Time
	newID    func() uuid.UUID
}

func New(repo Repo, tx pg.TXManager, ledger Accruer, recorder Recorder, reward int) *Service {
	return &Service{
		repo:     repo,
		tx:       tx,
		ledger:   ledger,
		recorder: recorder,
		reward:   reward,
		now:      time.Now,
		newID:    uuid.New,
	}
}

func notFound(id uuid.UUID) error {
	return fmt.Errorf("%w: challenge %s", domain.ErrNotFound, id)
}

// CreateChallenge opens a challenge for an ISO week, the current one when
// c.Week is empty. A user has at most one challenge per week.
func (s *Service) CreateChallenge(ctx context.Context, userID string, c *domain.WeeklyChallenge) (*domain.WeeklyChallenge, error) {
	c.Title = strings.TrimSpace(c.Title)
	if c.Title == "" {
		return nil, domain.InvalidInput("challenge title is required")
	}
	if c.Week == "" {
		c.Week = domain.WeekID(s.now())
	}
	start, err := domain.ParseWeekID(c.Week)
	if err != nil {
		return nil, err
	}
	c.Week = domain.WeekID(start)

	c.ID = s.newID()
	c.UserID = userID
	c.Progress = [domain.DaysPerWeek]bool{}
	c.ClaimedAt = nil
	created, err := s.repo.Create(ctx, c)
	if err != nil {
		zap.L().Error("failed to create challenge", zap.Error(err))
		return nil, domain.Classify(err)
	}
	return created, nil
}

func (s *Service) GetChallenge(ctx context.Context, userID string, id uuid.UUID) (*domain.WeeklyChallenge, error) {
	c, err := s.repo.Get(ctx, userID, id)
	if err != nil {
		zap.L().Error("failed to get challenge", zap.Error(err))
		return nil, domain.StoreError(err)
	}
	if c == nil {
		return nil, notFound(id)
	}
	return c, nil
}

func (s *Service) CurrentChallenge(ctx context.Context, userID string) (*domain.WeeklyChallenge, error) {
	week := domain.WeekID(s.now())
	c, err := s.repo.GetByWeek(ctx, userID, week)
	if err != nil {
		zap.L().Error("failed to get current challenge", zap.Error(err))
		return nil, domain.StoreError(err)
	}
	if c == nil {
		return nil, fmt.Errorf("%w: no challenge for week %s", domain.ErrNotFound, week)
	}
	return c, nil
}

func (s *Service) WeeklyProgress(ctx context.Context, userID string, id uuid.UUID) (domain.Progress, error) {
	c, err := s.GetChallenge(ctx, userID, id)
	if err != nil {
		return domain.Progress{}, err
	}
	return c.WeeklyProgress(), nil
}

// CheckIn marks a day (0 is Monday) as done. A nil day means today and is
// only accepted for a challenge of the current week.
func (s *Service) CheckIn(ctx context.Context, userID string, id uuid.UUID, day *int) (*domain.WeeklyChallenge, error) {
	now := s.now().UTC()
	d := domain.DayIndex(now)
	if day != nil {
		d = *day
	}
	if d < 0 || d >= domain.DaysPerWeek {
		return nil, domain.InvalidInput("day must be between 0 and %d, got %d", domain.DaysPerWeek-1, d)
	}

	var result *domain.WeeklyChallenge
	err := s.tx.Begin(ctx, func(ctx context.Context) error {
		c, err := s.repo.Lock(ctx, userID, id)
		if err != nil {
			return domain.StoreError(err)
		}
		if c == nil {
			return notFound(id)
		}
		if day == nil && c.Week != domain.WeekID(now) {
			return domain.InvalidInput("day is required for a challenge of week %s", c.Week)
		}
		if !c.Progress[d] {
			c.Progress[d] = true
			if err := s.repo.UpdateProgress(ctx, c.ID, c.Progress); err != nil {
				return domain.StoreError(err)
			}
		}
		result = c
		return nil
	})
	if err != nil {
		zap.L().Error("failed to check in", zap.String("challenge_id", id.String()), zap.Error(err))
		return nil, domain.Classify(err)
	}
	return result, nil
}

// ClaimReward awards the challenge XP once all seven days are done. The claim
// mark and the accrual commit together.
func (s *Service) ClaimReward(ctx context.Context, userID string, id uuid.UUID) (*domain.ClaimResult, error) {
	var result domain.ClaimResult
	err := s.tx.Begin(ctx, func(ctx context.Context) error {
		c, err := s.repo.Lock(ctx, userID, id)
		if err != nil {
			return domain.StoreError(err)
		}
		if c == nil {
			return notFound(id)
		}
		if c.ClaimedAt != nil {
			return ErrAlreadyClaimed
		}
		if !c.WeeklyProgress().Done() {
			return ErrChallengeIncomplete
		}

		at := s.now()
		claimed, err := s.repo.MarkClaimed(ctx, c.ID, at)
		if err != nil {
			return domain.StoreError(err)
		}
		if !claimed {
			return ErrAlreadyClaimed
		}
		c.ClaimedAt = &at
		result.Challenge = *c

		if s.reward > 0 {
			entry, err := s.ledger.AccrueXP(ctx, userID, s.reward, domain.XPSourceChallenge, c.ID.String())
			if err != nil {
				return err
			}
			result.XPAwarded = s.reward
			result.Ledger = entry
		}
		return nil
	})
	if err != nil {
		zap.L().Error("failed to claim challenge reward", zap.String("challenge_id", id.String()), zap.Error(err))
		return nil, domain.Classify(err)
	}

	s.recorder.Record(domain.AuditEvent{
		UserID:    userID,
		Action:    audit.ActionChallengeClaimed,
		SubjectID: id.String(),
		Details:   fmt.Sprintf("week=%s xp_awarded=%d", result.Challenge.Week, result.XPAwarded),
	})
	return &result, nil
}
