package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/GlebRadaev/fitquest/pkg/clients"
)

const userPath = "/auth/v1/user"

// RemoteProvider asks the auth provider who owns the token.
type RemoteProvider struct {
	baseURL string
	apiKey  string
	client  clients.HTTPClientI
}

func NewRemoteProvider(baseURL, apiKey string, client clients.HTTPClientI) *RemoteProvider {
	return &RemoteProvider{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  client,
	}
}

func (p *RemoteProvider) Verify(ctx context.Context, token string) (*Identity, error) {
	headers := http.Header{}
	headers.Set("Authorization", "Bearer "+token)
	if p.apiKey != "" {
		headers.Set("apikey", p.apiKey)
	}

	status, body, err := p.client.Get(ctx, p.baseURL+userPath, headers)
	if err != nil {
		zap.L().Error("auth provider request failed", zap.Error(err))
		return nil, fmt.Errorf("auth provider: %w", err)
	}
	switch status {
	case http.StatusOK:
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, fmt.Errorf("%w: token rejected by provider", ErrUnauthorized)
	default:
		return nil, fmt.Errorf("auth provider: unexpected status %d", status)
	}

	var id Identity
	if err := json.Unmarshal(body, &id); err != nil {
		return nil, fmt.Errorf("auth provider: %w", err)
	}
	if id.UserID == "" {
		return nil, fmt.Errorf("%w: provider returned no user", ErrUnauthorized)
	}
	return &id, nil
}
