package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := NewMockIdentityProvider(ctrl)

	var seen Identity
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = FromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	handler := AuthMiddleware(provider)(next)

	tests := []struct {
		name           string
		header         string
		prepareMock    func()
		expectedStatus int
	}{
		{
			name:           "No header",
			prepareMock:    func() {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Not a bearer token",
			header:         "Basic abc",
			prepareMock:    func() {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:   "Rejected token",
			header: "Bearer bad",
			prepareMock: func() {
				provider.EXPECT().Verify(gomock.Any(), "bad").Return(nil, ErrUnauthorized)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:   "Provider unavailable",
			header: "Bearer good",
			prepareMock: func() {
				provider.EXPECT().Verify(gomock.Any(), "good").Return(nil, errors.New("timeout"))
			},
			expectedStatus: http.StatusServiceUnavailable,
		},
		{
			name:   "Valid token",
			header: "Bearer good",
			prepareMock: func() {
				provider.EXPECT().Verify(gomock.Any(), "good").Return(&Identity{UserID: "u1", Email: "ana@fit.app"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, r)
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
	assert.Equal(t, Identity{UserID: "u1", Email: "ana@fit.app"}, seen)
}

func TestAdminOnly(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := AdminOnly("admin@fitquest.app")(next)

	tests := []struct {
		name           string
		identity       *Identity
		expectedStatus int
	}{
		{name: "No identity", expectedStatus: http.StatusUnauthorized},
		{name: "Regular user", identity: &Identity{UserID: "u1", Email: "ana@fit.app"}, expectedStatus: http.StatusForbidden},
		{name: "Admin with other case", identity: &Identity{UserID: "u0", Email: "Admin@FitQuest.app"}, expectedStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.identity != nil {
				r = r.WithContext(WithIdentity(r.Context(), *tt.identity))
			}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, r)
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestAdminOnlyWithoutConfiguredAdmin(t *testing.T) {
	jwtService := NewJWTService("local-secret")
	token, err := jwtService.GenerateJWT(Identity{UserID: "u0", Email: "admin@fitquest.app"}, time.Now().Add(time.Hour))
	assert.NoError(t, err)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := AuthMiddleware(jwtService)(AdminOnly("")(next))

	r := httptest.NewRequest(http.MethodPost, "/api/admin/ledger/u1/xp", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
