package ledger

import (
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
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*LedgerHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	return New(service), service
}

func TestGetLedgerHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedBody dto.LedgerResponseDTO
	}{
		{
			name: "Ledger with badge",
			prepareMock: func() {
				service.EXPECT().GetLedger(gomock.Any(), "u1").
					Return(&domain.LedgerEntry{UserID: "u1", XP: 505, Level: 6, Badges: []string{"Iniciante dedicado"}}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.LedgerResponseDTO{UserID: "u1", XP: 505, Level: 6, Badges: []string{"Iniciante dedicado"}, NextLevelXP: 600},
		},
		{
			name: "Not provisioned",
			prepareMock: func() {
				service.EXPECT().GetLedger(gomock.Any(), "u1").Return(nil, fmt.Errorf("%w: ledger", domain.ErrNotFound))
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Store down",
			prepareMock: func() {
				service.EXPECT().GetLedger(gomock.Any(), "u1").Return(nil, domain.StoreError(errors.New("timeout")))
			},
			expectedCode: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodGet, "/api/user/ledger", nil)
			r = r.WithContext(auth.WithIdentity(context.Background(), auth.Identity{UserID: "u1"}))
			w := httptest.NewRecorder()
			handler.GetLedger(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.LedgerResponseDTO
				assert.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}
