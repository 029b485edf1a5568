package profile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GlebRadaev/fitquest/internal/domain"
	"github.com/GlebRadaev/fitquest/internal/dto"
	"github.com/GlebRadaev/fitquest/pkg/auth"
	"github.com/GlebRadaev/fitquest/pkg/validate"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

var identity = auth.Identity{UserID: "u1", Email: "ana@fit.app"}

func NewMock(t *testing.T) (*ProfileHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	return New(service, validate.New()), service
}

func TestProvisionHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
		expectedXP   int
	}{
		{
			name: "Provision with details",
			body: `{"display_name":"Ana","avatar_url":"https://cdn.fit.app/ana.png"}`,
			prepareMock: func() {
				service.EXPECT().Provision(gomock.Any(), "u1", "ana@fit.app", "Ana", "https://cdn.fit.app/ana.png").
					Return(&domain.Profile{UserID: "u1", DisplayName: "Ana"}, &domain.LedgerEntry{UserID: "u1", XP: 40, Level: 1}, nil)
			},
			expectedCode: http.StatusOK,
			expectedXP:   40,
		},
		{
			name: "Empty body",
			prepareMock: func() {
				service.EXPECT().Provision(gomock.Any(), "u1", "ana@fit.app", "", "").
					Return(&domain.Profile{UserID: "u1"}, &domain.LedgerEntry{UserID: "u1", Level: 1}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Broken json",
			body:         `{"display_name":`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Bad avatar url",
			body:         `{"avatar_url":"not a url"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name: "Store down",
			body: `{}`,
			prepareMock: func() {
				service.EXPECT().Provision(gomock.Any(), "u1", "ana@fit.app", "", "").
					Return(nil, nil, domain.StoreError(errors.New("timeout")))
			},
			expectedCode: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/api/user/profile", bytes.NewBufferString(tt.body))
			r = r.WithContext(auth.WithIdentity(context.Background(), identity))
			w := httptest.NewRecorder()
			handler.Provision(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.ProvisionResponseDTO
				assert.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, "u1", body.Profile.UserID)
				assert.Equal(t, tt.expectedXP, body.Ledger.XP)
			}
		})
	}
}

func TestGetProfileHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		withIdentity bool
		prepareMock  func()
		expectedCode int
	}{
		{
			name:         "Existing profile",
			withIdentity: true,
			prepareMock: func() {
				service.EXPECT().GetProfile(gomock.Any(), "u1").Return(&domain.Profile{UserID: "u1", DisplayName: "Ana"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Not provisioned",
			withIdentity: true,
			prepareMock: func() {
				service.EXPECT().GetProfile(gomock.Any(), "u1").Return(nil, fmt.Errorf("%w: profile", domain.ErrNotFound))
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "Anonymous",
			prepareMock:  func() {},
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodGet, "/api/user/profile", nil)
			if tt.withIdentity {
				r = r.WithContext(auth.WithIdentity(context.Background(), identity))
			}
			w := httptest.NewRecorder()
			handler.GetProfile(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
