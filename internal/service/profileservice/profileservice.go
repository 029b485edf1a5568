package profileservice

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/GlebRadaev/fitquest/internal/audit"
	"github.com/GlebRadaev/fitquest/internal/domain"
	"github.com/GlebRadaev/fitquest/internal/pg"
)

//go:generate mockgen -source=profileservice.go -destination=mock_profileservice.go -package=profileservice

type ProfileRepo interface {
	Get(ctx context.Context, userID string) (*domain.Profile, error)
	Upsert(ctx context.Context, profile *domain.Profile) (*domain.Profile, error)
}

type LedgerRepo interface {
	CreateEntry(ctx context.Context, userID string) (*domain.LedgerEntry, error)
}

type Recorder interface {
	Record(event domain.AuditEvent)
}

type Service struct {
	profileRepo ProfileRepo
	ledgerRepo  LedgerRepo
	tx          pg.TXManager
	recorder    Recorder
}

func New(profileRepo ProfileRepo, ledgerRepo LedgerRepo, tx pg.TXManager, recorder Recorder) *Service {
	return &Service{
		profileRepo: profileRepo,
		ledgerRepo:  ledgerRepo,
		tx:          tx,
		recorder:    recorder,
	}
}

// Provision creates or refreshes the profile and makes sure the user has a
// ledger row. Calling it again never resets XP.
func (s *Service) Provision(ctx context.Context, userID, email, displayName, avatarURL string) (*domain.Profile, *domain.LedgerEntry, error) {
	if userID == "" {
		return nil, nil, domain.InvalidInput("user id is required")
	}

	var (
		profile *domain.Profile
		entry   *domain.LedgerEntry
		created bool
	)
	err := s.tx.Begin(ctx, func(ctx context.Context) error {
		existing, err := s.profileRepo.Get(ctx, userID)
		if err != nil {
			return domain.StoreError(err)
		}
		created = existing == nil

		name := strings.TrimSpace(displayName)
		if name == "" && created {
			name, _, _ = strings.Cut(email, "@")
		}
		profile, err = s.profileRepo.Upsert(ctx, &domain.Profile{
			UserID:      userID,
			Email:       email,
			DisplayName: name,
			AvatarURL:   strings.TrimSpace(avatarURL),
		})
		if err != nil {
			return domain.StoreError(err)
		}

		entry, err = s.ledgerRepo.CreateEntry(ctx, userID)
		if err != nil {
			return domain.StoreError(err)
		}
		return nil
	})
	if err != nil {
		zap.L().Error("failed to provision profile", zap.String("user_id", userID), zap.Error(err))
		return nil, nil, domain.Classify(err)
	}

	if created {
		s.recorder.Record(domain.AuditEvent{
			UserID:    userID,
			Action:    audit.ActionProfileCreated,
			SubjectID: userID,
		})
	}
	return profile, entry, nil
}

func (s *Service) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	profile, err := s.profileRepo.Get(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get profile", zap.Error(err))
		return nil, domain.StoreError(err)
	}
	if profile == nil {
		return nil, fmt.Errorf("%w: profile for user %s", domain.ErrNotFound, userID)
	}
	return profile, nil
}
