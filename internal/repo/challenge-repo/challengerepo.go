package challengerepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/GlebRadaev/fitquest/internal/domain"
	"github.com/GlebRadaev/fitquest/internal/pg"
)

const uniqueViolation = "23505"

const challengeColumns = `id, user_id, week, title, description, progress, claimed_at, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanChallenge(row pgx.Row) (*domain.WeeklyChallenge, error) {
	var (
		c        domain.WeeklyChallenge
		progress []bool
	)
	err := row.Scan(&c.ID, &c.UserID, &c.Week, &c.Title, &c.Description, &progress, &c.ClaimedAt, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	if len(progress) != domain.DaysPerWeek {
		return nil, fmt.Errorf("challenge %s has %d progress days", c.ID, len(progress))
	}
	copy(c.Progress[:], progress)
	return &c, nil
}

func (r *Repository) Create(ctx context.Context, c *domain.WeeklyChallenge) (*domain.WeeklyChallenge, error) {
	query := `
        INSERT INTO weekly_challenges (id, user_id, week, title, description, progress)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING ` + challengeColumns
	created, err := scanChallenge(r.db.QueryRow(ctx, query, c.ID, c.UserID, c.Week, c.Title, c.Description, c.Progress[:]))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, fmt.Errorf("%w: challenge for week %s already exists", domain.ErrConflict, c.Week)
		}
		zap.L().Error("can't save weekly challenge", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) get(ctx context.Context, query string, args ...any) (*domain.WeeklyChallenge, error) {
	c, err := scanChallenge(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find weekly challenge", zap.Error(err))
		return nil, err
	}
	return c, nil
}

func (r *Repository) Get(ctx context.Context, userID string, id uuid.UUID) (*domain.WeeklyChallenge, error) {
	return r.get(ctx, `SELECT `+challengeColumns+` FROM weekly_challenges WHERE id = $1 AND user_id = $2`, id, userID)
}

func (r *Repository) GetByWeek(ctx context.Context, userID, week string) (*domain.WeeklyChallenge, error) {
	return r.get(ctx, `SELECT `+challengeColumns+` FROM weekly_challenges WHERE user_id = $1 AND week = $2`, userID, week)
}

func (r *Repository) Lock(ctx context.Context, userID string, id uuid.UUID) (*domain.WeeklyChallenge, error) {
	return r.get(ctx, `SELECT `+challengeColumns+` FROM weekly_challenges WHERE id = $1 AND user_id = $2 FOR UPDATE`, id, userID)
}

func (r *Repository) UpdateProgress(ctx context.Context, id uuid.UUID, progress [domain.DaysPerWeek]bool) error {
	_, err := r.db.Exec(ctx, `UPDATE weekly_challenges SET progress = $1 WHERE id = $2`, progress[:], id)
	if err != nil {
		zap.L().Error("failed to update challenge progress", zap.Error(err))
		return err
	}
	return nil
}

// MarkClaimed only succeeds for an unclaimed challenge.
func (r *Repository) MarkClaimed(ctx context.Context, id uuid.UUID, at time.Time) (bool, error) {
	tag, err := r.db.Exec(ctx, `UPDATE weekly_challenges SET claimed_at = $1 WHERE id = $2 AND claimed_at IS NULL`, at, id)
	if err != nil {
		zap.L().Error("failed to mark challenge claimed", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
