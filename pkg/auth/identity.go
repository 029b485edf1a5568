package auth

import (
	"context"
	"errors"
)

//go:generate mockgen -source=identity.go -destination=mock_identity.go -package=auth

var ErrUnauthorized = errors.New("unauthorized")

// Identity is what the auth provider tells us about the caller.
type Identity struct {
	UserID string `json:"id"`
	Email  string `json:"email"`
}

type IdentityProvider interface {
	Verify(ctx context.Context, token string) (*Identity, error)
}

type ContextKey string

const IdentityKey ContextKey = "identity"

func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, IdentityKey, id)
}

func FromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(IdentityKey).(Identity)
	return id, ok
}
