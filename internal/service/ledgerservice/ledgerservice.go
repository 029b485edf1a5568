package ledgerservice

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/fitquest/internal/audit"
	"github.com/GlebRadaev/fitquest/internal/domain"
	"github.com/GlebRadaev/fitquest/internal/pg"
	"github.com/GlebRadaev/fitquest/internal/xp"
)

//go:generate mockgen -source=ledgerservice.go -destination=mock_ledgerservice.go -package=ledgerservice

type LedgerRepo interface {
	GetEntry(ctx context.Context, userID string) (*domain.LedgerEntry, error)
	LockEntry(ctx context.Context, userID string) (*domain.LedgerEntry, error)
	SaveEntry(ctx context.Context, entry *domain.LedgerEntry) (*domain.LedgerEntry, error)
	AddEvent(ctx context.Context, event *domain.XPEvent) error
}

type Recorder interface {
	Record(event domain.AuditEvent)
}

type Service struct {
	repo     LedgerRepo
	tx       pg.TXManager
	engine   *xp.Engine
	recorder Recorder
	now      func() time.Time
}

func New(repo LedgerRepo, tx pg.TXManager, engine *xp.Engine, recorder Recorder) *Service {
	return &Service{
		repo:     repo,
		tx:       tx,
		engine:   engine,
		recorder: recorder,
		now:      time.Now,
	}
}

// AccrueXP adds delta to the user's ledger row and records the XP event. When
// ctx already carries a transaction the accrual joins it, and the caller is
// responsible for auditing after its own commit.
func (s *Service) AccrueXP(ctx context.Context, userID string, delta int, source domain.XPSource, sourceID string) (*domain.LedgerEntry, error) {
	if userID == "" {
		return nil, domain.InvalidInput("user id is required")
	}
	if delta < 0 {
		return nil, domain.InvalidInput("xp delta must not be negative, got %d", delta)
	}
	if delta > xp.MaxDelta {
		return nil, domain.InvalidInput("xp delta must be at most %d, got %d", xp.MaxDelta, delta)
	}

	outer := pg.InTx(ctx)
	var result *domain.LedgerEntry
	err := s.tx.Begin(ctx, func(ctx context.Context) error {
		entry, err := s.repo.LockEntry(ctx, userID)
		if err != nil {
			return domain.StoreError(err)
		}
		if entry == nil {
			return fmt.Errorf("%w: ledger entry for user %s", domain.ErrNotFound, userID)
		}

		now := s.now()
		next, err := s.engine.Apply(*entry, delta, now)
		if err != nil {
			return domain.InvalidInput("%v", err)
		}

		saved, err := s.repo.SaveEntry(ctx, &next)
		if err != nil {
			return domain.StoreError(err)
		}
		if saved == nil {
			return fmt.Errorf("%w: ledger entry for user %s", domain.ErrNotFound, userID)
		}

		event := &domain.XPEvent{
			UserID:    userID,
			Delta:     delta,
			Source:    source,
			SourceID:  sourceID,
			CreatedAt: now,
		}
		if err := s.repo.AddEvent(ctx, event); err != nil {
			return domain.StoreError(err)
		}
		result = saved
		return nil
	})
	if err != nil {
		zap.L().Error("failed to accrue xp",
			zap.String("user_id", userID),
			zap.Int("delta", delta),
			zap.Error(err))
		return nil, domain.Classify(err)
	}

	if !outer {
		s.recorder.Record(domain.AuditEvent{
			UserID:    userID,
			Action:    audit.ActionXPAccrued,
			SubjectID: sourceID,
			Details:   fmt.Sprintf("source=%s delta=%d xp=%d level=%d", source, delta, result.XP, result.Level),
		})
	}
	return result, nil
}

func (s *Service) GetLedger(ctx context.Context, userID string) (*domain.LedgerEntry, error) {
	entry, err := s.repo.GetEntry(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get ledger", zap.Error(err))
		return nil, domain.StoreError(err)
	}
	if entry == nil {
		return nil, fmt.Errorf("%w: ledger entry for user %s", domain.ErrNotFound, userID)
	}
	return entry, nil
}
