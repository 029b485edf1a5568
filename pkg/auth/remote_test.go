package auth

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/GlebRadaev/fitquest/pkg/clients"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestRemoteProvider_Verify(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := clients.NewMockHTTPClientI(ctrl)
	provider := NewRemoteProvider("http://auth.local", "anon-key", client)

	expectedHeaders := http.Header{}
	expectedHeaders.Set("Authorization", "Bearer token")
	expectedHeaders.Set("apikey", "anon-key")

	tests := []struct {
		name          string
		prepareMock   func()
		expected      *Identity
		expectedError error
		expectError   bool
	}{
		{
			name: "Known user",
			prepareMock: func() {
				client.EXPECT().Get(gomock.Any(), "http://auth.local/auth/v1/user", expectedHeaders).
					Return(http.StatusOK, []byte(`{"id":"u1","email":"ana@fit.app","role":"authenticated"}`), nil)
			},
			expected: &Identity{UserID: "u1", Email: "ana@fit.app"},
		},
		{
			name: "Rejected token",
			prepareMock: func() {
				client.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(http.StatusUnauthorized, []byte(`{"msg":"invalid JWT"}`), nil)
			},
			expectedError: ErrUnauthorized,
		},
		{
			name: "Provider down",
			prepareMock: func() {
				client.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(0, nil, errors.New("connection refused"))
			},
			expectError: true,
		},
		{
			name: "Unexpected status",
			prepareMock: func() {
				client.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(http.StatusBadGateway, nil, nil)
			},
			expectError: true,
		},
		{
			name: "Empty user",
			prepareMock: func() {
				client.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(http.StatusOK, []byte(`{}`), nil)
			},
			expectedError: ErrUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			id, err := provider.Verify(context.Background(), "token")
			switch {
			case tt.expectedError != nil:
				assert.ErrorIs(t, err, tt.expectedError)
			case tt.expectError:
				assert.Error(t, err)
				assert.NotErrorIs(t, err, ErrUnauthorized)
			default:
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, id)
			}
		})
	}
}
