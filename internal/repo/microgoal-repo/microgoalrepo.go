package microgoalrepo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
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

func (r *Repository) Create(ctx context.Context, mg *domain.MicroGoal) (*domain.MicroGoal, error) {
	query := `
        INSERT INTO micro_goals (id, goal_id, title, description, week, done, rewarded)
        VALUES ($1, $2, $3, $4, $5, FALSE, FALSE)
        RETURNING updated_at
    `
	err := r.db.QueryRow(ctx, query, mg.ID, mg.GoalID, mg.Title, mg.Description, mg.Week).Scan(&mg.UpdatedAt)
	if err != nil {
		zap.L().Error("can't save micro goal", zap.Error(err))
		return nil, err
	}
	return mg, nil
}

func (r *Repository) ListByGoal(ctx context.Context, goalID uuid.UUID) ([]domain.MicroGoal, error) {
	query := `
        SELECT id, goal_id, title, description, week, done, rewarded, updated_at
        FROM micro_goals
        WHERE goal_id = $1
        ORDER BY week ASC, title ASC
    `
	rows, err := r.db.Query(ctx, query, goalID)
	if err != nil {
		zap.L().Error("can't get micro goals", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var microGoals []domain.MicroGoal
	for rows.Next() {
		var mg domain.MicroGoal
		err := rows.Scan(&mg.ID, &mg.GoalID, &mg.Title, &mg.Description, &mg.Week, &mg.Done, &mg.Rewarded, &mg.UpdatedAt)
		if err != nil {
			zap.L().Error("can't scan micro goal row", zap.Error(err))
			return nil, err
		}
		microGoals = append(microGoals, mg)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate micro goal rows", zap.Error(err))
		return nil, err
	}
	return microGoals, nil
}

// LockForOwner locks the micro-goal row when its goal belongs to userID.
func (r *Repository) LockForOwner(ctx context.Context, userID string, id uuid.UUID) (*domain.OwnedMicroGoal, error) {
	query := `
        SELECT m.id, m.goal_id, m.title, m.description, m.week, m.done, m.rewarded, m.updated_at, g.user_id
        FROM micro_goals m
        JOIN goals g ON g.id = m.goal_id
        WHERE m.id = $1 AND g.user_id = $2
        FOR UPDATE OF m
    `
	var mg domain.OwnedMicroGoal
	err := r.db.QueryRow(ctx, query, id, userID).Scan(
		&mg.ID, &mg.GoalID, &mg.Title, &mg.Description, &mg.Week, &mg.Done, &mg.Rewarded, &mg.UpdatedAt, &mg.OwnerID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't lock micro goal", zap.Error(err))
		return nil, err
	}
	return &mg, nil
}

func (r *Repository) UpdateState(ctx context.Context, mg *domain.MicroGoal) error {
	query := `
        UPDATE micro_goals
        SET done = $1, rewarded = $2, updated_at = $3
        WHERE id = $4
    `
	tag, err := r.db.Exec(ctx, query, mg.Done, mg.Rewarded, mg.UpdatedAt, mg.ID)
	if err != nil {
		zap.L().Error("failed to update micro goal", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, userID string, id uuid.UUID) (bool, error) {
	query := `
        DELETE FROM micro_goals m
        USING goals g
        WHERE m.id = $1 AND g.id = m.goal_id AND g.user_id = $2
    `
	tag, err := r.db.Exec(ctx, query, id, userID)
	if err != nil {
		zap.L().Error("can't delete micro goal", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
