package auditrepo

import (
	"context"

	"go.uber.org/zap"

	"github.com/GlebRadaev/fitquest/internal/domain"
	"github.com/GlebRadaev/fitquest/internal/pg"
)

const defaultLimit = 100

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Insert(ctx context.Context, event *domain.AuditEvent) error {
	query := `
        INSERT INTO audit_log (user_id, action, subject_id, details, created_at)
        VALUES ($1, $2, $3, $4, $5)
    `
	_, err := r.db.Exec(ctx, query, event.UserID, event.Action, event.SubjectID, event.Details, event.CreatedAt)
	if err != nil {
		zap.L().Error("can't save audit event", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) List(ctx context.Context, filter domain.AuditFilter) ([]domain.AuditEvent, error) {
	limit := filter.Limit
	if limit <= 0 || limit > defaultLimit {
		limit = defaultLimit
	}
	query := `
        SELECT id, user_id, action, subject_id, details, created_at
        FROM audit_log
        WHERE ($1 = '' OR user_id = $1)
        ORDER BY created_at DESC, id DESC
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, filter.UserID, limit)
	if err != nil {
		zap.L().Error("can't get audit events", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var events []domain.AuditEvent
	for rows.Next() {
		var e domain.AuditEvent
		if err := rows.Scan(&e.ID, &e.UserID, &e.Action, &e.SubjectID, &e.Details, &e.CreatedAt); err != nil {
			zap.L().Error("can't scan audit row", zap.Error(err))
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}
