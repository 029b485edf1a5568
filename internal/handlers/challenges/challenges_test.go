package challenges

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/fitquest/internal/domain"
	"github.com/GlebRadaev/fitquest/internal/dto"
	"github.com/GlebRadaev/fitquest/internal/service/challengeservice"
	"github.com/GlebRadaev/fitquest/pkg/auth"
	"github.com/GlebRadaev/fitquest/pkg/validate"
)

func NewMock(t *testing.T) (*ChallengeHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	return New(service, validate.New()), service
}

func newRequest(method, body string, id string) *http.Request {
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, "/", nil)
	} else {
		r = httptest.NewRequest(method, "/", strings.NewReader(body))
	}
	rctx := chi.NewRouteContext()
	if id != "" {
		rctx.URLParams.Add("challengeID", id)
	}
	ctx := context.WithValue(context.Background(), chi.RouteCtxKey, rctx)
	ctx = auth.WithIdentity(ctx, auth.Identity{UserID: "u1"})
	return r.WithContext(ctx)
}

func TestCreateChallengeHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Current week",
			body: `{"title":"Walk every day"}`,
			prepareMock: func() {
				service.EXPECT().CreateChallenge(gomock.Any(), "u1", &domain.WeeklyChallenge{Title: "Walk every day"}).
					Return(&domain.WeeklyChallenge{ID: uuid.New(), UserID: "u1", Week: "2025-W07", Title: "Walk every day"}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "Bad week format",
			body:         `{"title":"x","week":"W7"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name: "Duplicate week",
			body: `{"title":"x","week":"2025-W07"}`,
			prepareMock: func() {
				service.EXPECT().CreateChallenge(gomock.Any(), "u1", gomock.Any()).
					Return(nil, fmt.Errorf("%w: challenge for week 2025-W07 already exists", domain.ErrConflict))
			},
			expectedCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			w := httptest.NewRecorder()
			handler.CreateChallenge(w, newRequest(http.MethodPost, tt.body, ""))
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestCurrentChallengeHandler(t *testing.T) {
	handler, service := NewMock(t)

	c := &domain.WeeklyChallenge{ID: uuid.New(), Week: "2025-W07"}
	c.Progress[0], c.Progress[1] = true, true
	service.EXPECT().CurrentChallenge(gomock.Any(), "u1").Return(c, nil)

	w := httptest.NewRecorder()
	handler.CurrentChallenge(w, newRequest(http.MethodGet, "", ""))
	assert.Equal(t, http.StatusOK, w.Code)

	var body dto.ChallengeResponseDTO
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, []bool{true, true, false, false, false, false, false}, body.Days)
	assert.Equal(t, 2, body.Progress.Completed)
	assert.Equal(t, 7, body.Progress.Total)

	service.EXPECT().CurrentChallenge(gomock.Any(), "u1").Return(nil, fmt.Errorf("%w: challenge", domain.ErrNotFound))
	w = httptest.NewRecorder()
	handler.CurrentChallenge(w, newRequest(http.MethodGet, "", ""))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetChallengeHandler(t *testing.T) {
	handler, service := NewMock(t)
	id := uuid.New()

	service.EXPECT().GetChallenge(gomock.Any(), "u1", id).Return(&domain.WeeklyChallenge{ID: id}, nil)
	w := httptest.NewRecorder()
	handler.GetChallenge(w, newRequest(http.MethodGet, "", id.String()))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	handler.GetChallenge(w, newRequest(http.MethodGet, "", "42"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWeeklyProgressHandler(t *testing.T) {
	handler, service := NewMock(t)
	id := uuid.New()

	service.EXPECT().WeeklyProgress(gomock.Any(), "u1", id).Return(domain.NewProgress(7, 7), nil)
	w := httptest.NewRecorder()
	handler.WeeklyProgress(w, newRequest(http.MethodGet, "", id.String()))
	assert.Equal(t, http.StatusOK, w.Code)

	var body dto.ProgressDTO
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, dto.ProgressDTO{Completed: 7, Total: 7, Percent: 1}, body)
}

func TestCheckInHandler(t *testing.T) {
	handler, service := NewMock(t)
	id := uuid.New()
	three := 3

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Explicit day",
			body: `{"day":3}`,
			prepareMock: func() {
				service.EXPECT().CheckIn(gomock.Any(), "u1", id, &three).Return(&domain.WeeklyChallenge{ID: id}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "No body means today",
			body: "",
			prepareMock: func() {
				service.EXPECT().CheckIn(gomock.Any(), "u1", id, nil).Return(&domain.WeeklyChallenge{ID: id}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Day out of range",
			body:         `{"day":7}`,
			prepareMock:  func() {},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name:         "Malformed body",
			body:         `{"day":`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			w := httptest.NewRecorder()
			handler.CheckIn(w, newRequest(http.MethodPost, tt.body, id.String()))
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestClaimRewardHandler(t *testing.T) {
	handler, service := NewMock(t)
	id := uuid.New()
	claimedAt := time.Date(2025, 2, 16, 20, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedXP   int
	}{
		{
			name: "Claimed",
			prepareMock: func() {
				service.EXPECT().ClaimReward(gomock.Any(), "u1", id).Return(&domain.ClaimResult{
					Challenge: domain.WeeklyChallenge{ID: id, ClaimedAt: &claimedAt},
					XPAwarded: 50,
					Ledger:    &domain.LedgerEntry{UserID: "u1", XP: 50, Level: 1},
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedXP:   50,
		},
		{
			name: "Incomplete",
			prepareMock: func() {
				service.EXPECT().ClaimReward(gomock.Any(), "u1", id).Return(nil, challengeservice.ErrChallengeIncomplete)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Already claimed",
			prepareMock: func() {
				service.EXPECT().ClaimReward(gomock.Any(), "u1", id).Return(nil, challengeservice.ErrAlreadyClaimed)
			},
			expectedCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			w := httptest.NewRecorder()
			handler.ClaimReward(w, newRequest(http.MethodPost, "", id.String()))
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.ClaimResponseDTO
				assert.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, tt.expectedXP, body.XPAwarded)
				assert.NotNil(t, body.Challenge.ClaimedAt)
			}
		})
	}
}
