package profilerepo

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

func (r *Repository) Get(ctx context.Context, userID string) (*domain.Profile, error) {
	query := `
        SELECT user_id, email, display_name, avatar_url, created_at
        FROM profiles
        WHERE user_id = $1
    `
	var p domain.Profile
	err := r.db.QueryRow(ctx, query, userID).Scan(&p.UserID, &p.Email, &p.DisplayName, &p.AvatarURL, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find profile", zap.Error(err))
		return nil, err
	}
	return &p, nil
}

// Upsert keeps the original created_at; empty display name or avatar leave
// the stored values untouched.
func (r *Repository) Upsert(ctx context.Context, profile *domain.Profile) (*domain.Profile, error) {
	query := `
        INSERT INTO profiles (user_id, email, display_name, avatar_url)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (user_id) DO UPDATE SET
            email = EXCLUDED.email,
            display_name = COALESCE(NULLIF(EXCLUDED.display_name, ''), profiles.display_name),
            avatar_url = COALESCE(NULLIF(EXCLUDED.avatar_url, ''), profiles.avatar_url)
        RETURNING user_id, email, display_name, avatar_url, created_at
    `
	var p domain.Profile
	err := r.db.QueryRow(ctx, query, profile.UserID, profile.Email, profile.DisplayName, profile.AvatarURL).
		Scan(&p.UserID, &p.Email, &p.DisplayName, &p.AvatarURL, &p.CreatedAt)
	if err != nil {
		zap.L().Error("can't save profile", zap.Error(err))
		return nil, err
	}
	return &p, nil
}
