package admin

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/fitquest/internal/domain"
	"github.com/GlebRadaev/fitquest/internal/dto"
	"github.com/GlebRadaev/fitquest/pkg/validate"
)

func NewMock(t *testing.T) (*AdminHandler, *MockLedgerService, *MockAuditService) {
	ctrl := gomock.NewController(t)
	ledger := NewMockLedgerService(ctrl)
	audit := NewMockAuditService(ctrl)
	return New(ledger, audit, validate.New()), ledger, audit
}

func withUser(r *http.Request, userID string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("userID", userID)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestGetLedgerHandler(t *testing.T) {
	handler, ledger, _ := NewMock(t)

	ledger.EXPECT().GetLedger(gomock.Any(), "u2").Return(&domain.LedgerEntry{UserID: "u2", XP: 120, Level: 2}, nil)
	w := httptest.NewRecorder()
	handler.GetLedger(w, withUser(httptest.NewRequest(http.MethodGet, "/", nil), "u2"))
	assert.Equal(t, http.StatusOK, w.Code)

	ledger.EXPECT().GetLedger(gomock.Any(), "ghost").Return(nil, fmt.Errorf("%w: ledger for ghost", domain.ErrNotFound))
	w = httptest.NewRecorder()
	handler.GetLedger(w, withUser(httptest.NewRequest(http.MethodGet, "/", nil), "ghost"))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAwardXPHandler(t *testing.T) {
	handler, ledger, _ := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
		expectedBody dto.LedgerResponseDTO
	}{
		{
			name: "Crosses level 5",
			body: `{"delta":20,"reason":"event bonus"}`,
			prepareMock: func() {
				ledger.EXPECT().AccrueXP(gomock.Any(), "u2", 20, domain.XPSourceAdmin, "event bonus").
					Return(&domain.LedgerEntry{UserID: "u2", XP: 405, Level: 5, Badges: []string{"Iniciante dedicado"}}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.LedgerResponseDTO{UserID: "u2", XP: 405, Level: 5, Badges: []string{"Iniciante dedicado"}, NextLevelXP: 500},
		},
		{
			name:         "Negative delta",
			body:         `{"delta":-5}`,
			prepareMock:  func() {},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name:         "Malformed body",
			body:         `[]`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Store down",
			body: `{"delta":5}`,
			prepareMock: func() {
				ledger.EXPECT().AccrueXP(gomock.Any(), "u2", 5, domain.XPSourceAdmin, "").
					Return(nil, domain.StoreError(errors.New("timeout")))
			},
			expectedCode: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			w := httptest.NewRecorder()
			handler.AwardXP(w, withUser(httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body)), "u2"))
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.LedgerResponseDTO
				assert.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}

func TestListAuditHandler(t *testing.T) {
	handler, _, audit := NewMock(t)

	tests := []struct {
		name         string
		query        string
		prepareMock  func()
		expectedCode int
		expectedLen  int
	}{
		{
			name:  "Filtered by user",
			query: "?user_id=u1&limit=5",
			prepareMock: func() {
				audit.EXPECT().List(gomock.Any(), domain.AuditFilter{UserID: "u1", Limit: 5}).
					Return([]domain.AuditEvent{{ID: 2, UserID: "u1", Action: "xp.accrued"}, {ID: 1, UserID: "u1", Action: "profile.provisioned"}}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  2,
		},
		{
			name:  "No events",
			query: "",
			prepareMock: func() {
				audit.EXPECT().List(gomock.Any(), domain.AuditFilter{}).Return(nil, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  0,
		},
		{
			name:         "Bad limit",
			query:        "?limit=-1",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			w := httptest.NewRecorder()
			handler.ListAudit(w, httptest.NewRequest(http.MethodGet, "/api/admin/audit"+tt.query, nil))
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body []dto.AuditEventDTO
				assert.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Len(t, body, tt.expectedLen)
			}
		})
	}
}
