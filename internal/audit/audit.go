package audit

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/fitquest/internal/domain"
)

//go:generate mockgen -source=audit.go -destination=mock_audit.go -package=audit

const (
	ActionXPAccrued        = "xp.accrued"
	ActionMicroGoalToggled = "micro_goal.toggled"
	ActionChallengeClaimed = "challenge.claimed"
	ActionProfileCreated   = "profile.provisioned"

	writeTimeout = 5 * time.Second
)

type Repo interface {
	Insert(ctx context.Context, event *domain.AuditEvent) error
	List(ctx context.Context, filter domain.AuditFilter) ([]domain.AuditEvent, error)
}

// Recorder writes audit events in the background. Losing an event never
// fails the operation that produced it.
type Recorder struct {
	repo Repo
	pool *WorkerPool
	now  func() time.Time
}

func New(repo Repo, workers, queue int) *Recorder {
	return &Recorder{
		repo: repo,
		pool: NewWorkerPool(workers, queue),
		now:  time.Now,
	}
}

func (r *Recorder) Record(event domain.AuditEvent) {
	if event.CreatedAt.IsZero() {
		event.CreatedAt = r.now()
	}
	accepted := r.pool.TryAdd(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		defer cancel()
		return r.repo.Insert(ctx, &event)
	})
	if !accepted {
		zap.L().Warn("audit queue is full, event dropped",
			zap.String("action", event.Action),
			zap.String("user_id", event.UserID))
	}
}

func (r *Recorder) List(ctx context.Context, filter domain.AuditFilter) ([]domain.AuditEvent, error) {
	events, err := r.repo.List(ctx, filter)
	if err != nil {
		zap.L().Error("failed to list audit events", zap.Error(err))
		return nil, domain.StoreError(err)
	}
	return events, nil
}

// Close flushes queued events.
func (r *Recorder) Close() {
	r.pool.Close()
}
