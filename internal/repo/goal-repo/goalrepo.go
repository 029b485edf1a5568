package goalrepo

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

func (r *Repository) Create(ctx context.Context, goal *domain.Goal) (*domain.Goal, error) {
	query := `
        INSERT INTO goals (id, user_id, title, description, category, difficulty, start_date, end_date)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING created_at
    `
	err := r.db.QueryRow(ctx, query,
		goal.ID, goal.UserID, goal.Title, goal.Description, goal.Category, goal.Difficulty, goal.StartDate, goal.EndDate,
	).Scan(&goal.CreatedAt)
	if err != nil {
		zap.L().Error("can't save goal", zap.Error(err))
		return nil, err
	}
	return goal, nil
}

func (r *Repository) Get(ctx context.Context, userID string, goalID uuid.UUID) (*domain.Goal, error) {
	query := `
        SELECT id, user_id, title, description, category, difficulty, start_date, end_date, created_at
        FROM goals
        WHERE id = $1 AND user_id = $2
    `
	var g domain.Goal
	err := r.db.QueryRow(ctx, query, goalID, userID).Scan(
		&g.ID, &g.UserID, &g.Title, &g.Description, &g.Category, &g.Difficulty, &g.StartDate, &g.EndDate, &g.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find goal", zap.Error(err))
		return nil, err
	}
	return &g, nil
}

// List returns the user's goals with micro-goal counts, newest first.
func (r *Repository) List(ctx context.Context, userID string) ([]domain.GoalSummary, error) {
	query := `
        SELECT g.id, g.user_id, g.title, g.description, g.category, g.difficulty, g.start_date, g.end_date, g.created_at,
               COUNT(m.id) FILTER (WHERE m.done) AS completed,
               COUNT(m.id) AS total
        FROM goals g
        LEFT JOIN micro_goals m ON m.goal_id = g.id
        WHERE g.user_id = $1
        GROUP BY g.id
        ORDER BY g.created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get goals", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var goals []domain.GoalSummary
	for rows.Next() {
		var (
			g                domain.Goal
			completed, total int
		)
		err := rows.Scan(
			&g.ID, &g.UserID, &g.Title, &g.Description, &g.Category, &g.Difficulty, &g.StartDate, &g.EndDate, &g.CreatedAt,
			&completed, &total,
		)
		if err != nil {
			zap.L().Error("can't scan goal row", zap.Error(err))
			return nil, err
		}
		goals = append(goals, domain.GoalSummary{Goal: g, Progress: domain.NewProgress(completed, total)})
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate goal rows", zap.Error(err))
		return nil, err
	}
	return goals, nil
}

func (r *Repository) Delete(ctx context.Context, userID string, goalID uuid.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM goals WHERE id = $1 AND user_id = $2`, goalID, userID)
	if err != nil {
		zap.L().Error("can't delete goal", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
