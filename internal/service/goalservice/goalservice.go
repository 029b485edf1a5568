package goalservice

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/fitquest/internal/audit"
	"github.com/GlebRadaev/fitquest/internal/config"
	"github.com/GlebRadaev/fitquest/internal/domain"
	"github.com/GlebRadaev/fitquest/internal/pg"
)

//go:generate mockgen -source=goalservice.go -destination=mock_goalservice.go -package=goalservice

type GoalRepo interface {
	Create(ctx context.Context, goal *domain.Goal) (*domain.Goal, error)
	Get(ctx context.Context, userID string, goalID uuid.UUID) (*domain.Goal, error)
	List(ctx context.Context, userID string) ([]domain.GoalSummary, error)
	Delete(ctx context.Context, userID string, goalID uuid.UUID) (bool, error)
}

type MicroGoalRepo interface {
	Create(ctx context.Context, mg *domain.MicroGoal) (*domain.MicroGoal, error)
	ListByGoal(ctx context.Context, goalID uuid.UUID) ([]domain.MicroGoal, error)
	LockForOwner(ctx context.Context, userID string, id uuid.UUID) (*domain.OwnedMicroGoal, error)
	UpdateState(ctx context.Context, mg *domain.MicroGoal) error
	Delete(ctx context.Context, userID string, id uuid.UUID) (bool, error)
}

type Accruer interface {
	AccrueXP(ctx context.Context, userID string, delta int, source domain.XPSource, sourceID string) (*domain.LedgerEntry, error)
}

type Recorder interface {
	Record(event domain.AuditEvent)
}

type Service struct {
	goalRepo      GoalRepo
	microGoalRepo MicroGoalRepo
	tx            pg.TXManager
	ledger        Accruer
	recorder      Recorder
	reward        int
	rewardEvery   bool
	now           func() time.Time
	newID         func() uuid.UUID
}

func New(goalRepo GoalRepo, microGoalRepo MicroGoalRepo, tx pg.TXManager, ledger Accruer, recorder Recorder, reward int, policy string) *Service {
	return &Service{
		goalRepo:      goalRepo,
		microGoalRepo: microGoalRepo,
		tx:            tx,
		ledger:        ledger,
		recorder:      recorder,
		reward:        reward,
		rewardEvery:   policy == config.RewardEveryCompletion,
		now:           time.Now,
		newID:         uuid.New,
	}
}

func goalNotFound(goalID uuid.UUID) error {
	return fmt.Errorf("%w: goal %s", domain.ErrNotFound, goalID)
}

func microGoalNotFound(id uuid.UUID) error {
	return fmt.Errorf("%w: micro goal %s", domain.ErrNotFound, id)
}

func (s *Service) CreateGoal(ctx context.Context, userID string, goal *domain.Goal) (*domain.Goal, error) {
	goal.Title = strings.TrimSpace(goal.Title)
	if goal.Title == "" {
		return nil, domain.InvalidInput("goal title is required")
	}
	switch goal.Difficulty {
	case "":
		goal.Difficulty = domain.DifficultyMedium
	case domain.DifficultyEasy, domain.DifficultyMedium, domain.DifficultyHard:
	default:
		return nil, domain.InvalidInput("unknown difficulty %q", goal.Difficulty)
	}
	if goal.StartDate.IsZero() {
		goal.StartDate = s.now().UTC().Truncate(24 * time.Hour)
	}
	if goal.EndDate != nil && goal.EndDate.Before(goal.StartDate) {
		return nil, domain.InvalidInput("end date is before start date")
	}

	goal.ID = s.newID()
	goal.UserID = userID
	created, err := s.goalRepo.Create(ctx, goal)
	if err != nil {
		zap.L().Error("failed to create goal", zap.Error(err))
		return nil, domain.StoreError(err)
	}
	return created, nil
}

// ListGoals filters by derived status: a goal is completed once it has
// micro-goals and all of them are done.
func (s *Service) ListGoals(ctx context.Context, userID, status string) ([]domain.GoalSummary, error) {
	switch status {
	case "", domain.GoalStatusActive, domain.GoalStatusCompleted:
	default:
		return nil, domain.InvalidInput("unknown goal status %q", status)
	}

	goals, err := s.goalRepo.List(ctx, userID)
	if err != nil {
		zap.L().Error("failed to list goals", zap.Error(err))
		return nil, domain.StoreError(err)
	}
	if status == "" {
		return goals, nil
	}

	filtered := make([]domain.GoalSummary, 0, len(goals))
	for _, g := range goals {
		if g.Status() == status {
			filtered = append(filtered, g)
		}
	}
	return filtered, nil
}

func (s *Service) GetGoal(ctx context.Context, userID string, goalID uuid.UUID) (*domain.GoalDetails, error) {
	goal, err := s.goalRepo.Get(ctx, userID, goalID)
	if err != nil {
		zap.L().Error("failed to get goal", zap.Error(err))
		return nil, domain.StoreError(err)
	}
	if goal == nil {
		return nil, goalNotFound(goalID)
	}

	microGoals, err := s.microGoalRepo.ListByGoal(ctx, goalID)
	if err != nil {
		zap.L().Error("failed to list micro goals", zap.Error(err))
		return nil, domain.StoreError(err)
	}
	if microGoals == nil {
		microGoals = []domain.MicroGoal{}
	}
	return &domain.GoalDetails{
		Goal:       *goal,
		MicroGoals: microGoals,
		Progress:   progressOf(microGoals),
	}, nil
}

func (s *Service) DeleteGoal(ctx context.Context, userID string, goalID uuid.UUID) error {
	deleted, err := s.goalRepo.Delete(ctx, userID, goalID)
	if err != nil {
		zap.L().Error("failed to delete goal", zap.Error(err))
		return domain.StoreError(err)
	}
	if !deleted {
		return goalNotFound(goalID)
	}
	return nil
}

func (s *Service) GoalProgress(ctx context.Context, userID string, goalID uuid.UUID) (domain.Progress, error) {
	details, err := s.GetGoal(ctx, userID, goalID)
	if err != nil {
		return domain.Progress{}, err
	}
	return details.Progress, nil
}

func progressOf(microGoals []domain.MicroGoal) domain.Progress {
	done := 0
	for _, mg := range microGoals {
		if mg.Done {
			done++
		}
	}
	return domain.NewProgress(done, len(microGoals))
}

func (s *Service) CreateMicroGoal(ctx context.Context, userID string, goalID uuid.UUID, mg *domain.MicroGoal) (*domain.MicroGoal, error) {
	mg.Title = strings.TrimSpace(mg.Title)
	if mg.Title == "" {
		return nil, domain.InvalidInput("micro goal title is required")
	}
	if mg.Week < domain.MinWeek || mg.Week > domain.MaxWeek {
		return nil, domain.InvalidInput("week must be between %d and %d, got %d", domain.MinWeek, domain.MaxWeek, mg.Week)
	}

	goal, err := s.goalRepo.Get(ctx, userID, goalID)
	if err != nil {
		zap.L().Error("failed to get goal", zap.Error(err))
		return nil, domain.StoreError(err)
	}
	if goal == nil {
		return nil, goalNotFound(goalID)
	}

	mg.ID = s.newID()
	mg.GoalID = goalID
	mg.Done = false
	mg.Rewarded = false
	created, err := s.microGoalRepo.Create(ctx, mg)
	if err != nil {
		zap.L().Error("failed to create micro goal", zap.Error(err))
		return nil, domain.StoreError(err)
	}
	return created, nil
}

func (s *Service) DeleteMicroGoal(ctx context.Context, userID string, id uuid.UUID) error {
	deleted, err := s.microGoalRepo.Delete(ctx, userID, id)
	if err != nil {
		zap.L().Error("failed to delete micro goal", zap.Error(err))
		return domain.StoreError(err)
	}
	if !deleted {
		return microGoalNotFound(id)
	}
	return nil
}

// ToggleMicroGoal flips the done flag. Turning it on may award XP in the same
// transaction; turning it off never takes XP back.
func (s *Service) ToggleMicroGoal(ctx context.Context, userID string, id uuid.UUID) (*domain.ToggleResult, error) {
	var result domain.ToggleResult
	err := s.tx.Begin(ctx, func(ctx context.Context) error {
		owned, err := s.microGoalRepo.LockForOwner(ctx, userID, id)
		if err != nil {
			return domain.StoreError(err)
		}
		if owned == nil {
			return microGoalNotFound(id)
		}

		mg := owned.MicroGoal
		mg.Done = !mg.Done
		mg.UpdatedAt = s.now()
		award := mg.Done && s.reward > 0 && (s.rewardEvery || !mg.Rewarded)
		if mg.Done {
			mg.Rewarded = true
		}
		if err := s.microGoalRepo.UpdateState(ctx, &mg); err != nil {
			return domain.StoreError(err)
		}
		result.MicroGoal = mg

		if award {
			entry, err := s.ledger.AccrueXP(ctx, userID, s.reward, domain.XPSourceMicroGoal, id.String())
			if err != nil {
				return err
			}
			result.XPAwarded = s.reward
			result.Ledger = entry
		}
		return nil
	})
	if err != nil {
		zap.L().Error("failed to toggle micro goal",
			zap.String("micro_goal_id", id.String()),
			zap.Error(err))
		return nil, domain.Classify(err)
	}

	s.recorder.Record(domain.AuditEvent{
		UserID:    userID,
		Action:    audit.ActionMicroGoalToggled,
		SubjectID: id.String(),
		Details:   fmt.Sprintf("done=%t xp_awarded=%d", result.MicroGoal.Done, result.XPAwarded),
	})
	return &result, nil
}
