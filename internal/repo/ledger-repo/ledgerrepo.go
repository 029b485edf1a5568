package ledgerrepo

import (
	"context"
	"errors"

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

func scanEntry(row pgx.Row) (*domain.LedgerEntry, error) {
	var entry domain.LedgerEntry
	err := row.Scan(&entry.UserID, &entry.XP, &entry.Level, &entry.Badges, &entry.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if entry.Badges == nil {
		entry.Badges = []string{}
	}
	return &entry, nil
}

func (r *Repository) GetEntry(ctx context.Context, userID string) (*domain.LedgerEntry, error) {
	query := `
        SELECT user_id, xp, level, badges, updated_at
        FROM ledger
        WHERE user_id = $1
    `
	entry, err := scanEntry(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get ledger entry", zap.Error(err))
		return nil, err
	}
	return entry, nil
}

// LockEntry reads the row with FOR UPDATE; it must run inside a transaction so
// concurrent accruals for the same user queue behind each other.
func (r *Repository) LockEntry(ctx context.Context, userID string) (*domain.LedgerEntry, error) {
	query := `
        SELECT user_id, xp, level, badges, updated_at
        FROM ledger
        WHERE user_id = $1
        FOR UPDATE
    `
	entry, err := scanEntry(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to lock ledger entry", zap.Error(err))
		return nil, err
	}
	return entry, nil
}

func (r *Repository) CreateEntry(ctx context.Context, userID string) (*domain.LedgerEntry, error) {
	query := `
        INSERT INTO ledger (user_id, xp, level, badges)
        VALUES ($1, 0, 1, '{}')
        ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id
        RETURNING user_id, xp, level, badges, updated_at
    `
	entry, err := scanEntry(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		zap.L().Error("failed to create ledger entry", zap.Error(err))
		return nil, err
	}
	return entry, nil
}

func (r *Repository) SaveEntry(ctx context.Context, entry *domain.LedgerEntry) (*domain.LedgerEntry, error) {
	query := `
        UPDATE ledger
        SET xp = $1, level = $2, badges = $3, updated_at = $4
        WHERE user_id = $5
        RETURNING user_id, xp, level, badges, updated_at
    `
	updated, err := scanEntry(r.db.QueryRow(ctx, query, entry.XP, entry.Level, entry.Badges, entry.UpdatedAt, entry.UserID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to save ledger entry", zap.Error(err))
		return nil, err
	}
	return updated, nil
}

func (r *Repository) AddEvent(ctx context.Context, event *domain.XPEvent) error {
	query := `
        INSERT INTO xp_events (user_id, delta, source, source_id, created_at)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query, event.UserID, event.Delta, string(event.Source), event.SourceID, event.CreatedAt).Scan(&event.ID)
	if err != nil {
		zap.L().Error("failed to save xp event", zap.Error(err))
		return err
	}
	return nil
}
