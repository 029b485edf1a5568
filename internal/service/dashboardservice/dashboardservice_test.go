package dashboardservice

import (
	"context"
	"fmt"
	"testing"

	"github.com/GlebRadaev/fitquest/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

type mocks struct {
	profiles   *MockProfiles
	ledger     *MockLedger
	ranking    *MockRanking
	goals      *MockGoals
	challenges *MockChallenges
}

func NewMock(t *testing.T) (*Service, mocks) {
	ctrl := gomock.NewController(t)
	m := mocks{
		profiles:   NewMockProfiles(ctrl),
		ledger:     NewMockLedger(ctrl),
		ranking:    NewMockRanking(ctrl),
		goals:      NewMockGoals(ctrl),
		challenges: NewMockChallenges(ctrl),
	}
	return New(m.profiles, m.ledger, m.ranking, m.goals, m.challenges), m
}

func TestDashboard(t *testing.T) {
	entry := &domain.LedgerEntry{UserID: "u1", XP: 120, Level: 2, Badges: []string{}}
	profile := &domain.Profile{UserID: "u1", DisplayName: "Ana"}
	rank := &domain.RankingRow{UserID: "u1", WeeklyXP: 30, Rank: 1}
	goals := []domain.GoalSummary{{Goal: domain.Goal{Title: "Run"}}}
	challenge := &domain.WeeklyChallenge{Week: "2025-W07"}
	notFound := fmt.Errorf("%w: nothing", domain.ErrNotFound)
	storeErr := domain.StoreError(assert.AnError)

	tests := []struct {
		name          string
		prepareMock   func(m mocks)
		expected      *domain.Dashboard
		expectedError error
	}{
		{
			name: "Everything loads",
			prepareMock: func(m mocks) {
				m.ledger.EXPECT().GetLedger(gomock.Any(), "u1").Return(entry, nil)
				m.profiles.EXPECT().GetProfile(gomock.Any(), "u1").Return(profile, nil)
				m.ranking.EXPECT().MyRank(gomock.Any(), "u1").Return(rank, nil)
				m.goals.EXPECT().ListGoals(gomock.Any(), "u1", "").Return(goals, nil)
				m.challenges.EXPECT().CurrentChallenge(gomock.Any(), "u1").Return(challenge, nil)
			},
			expected: &domain.Dashboard{Profile: profile, Ledger: entry, Rank: rank, Goals: goals, Challenge: challenge},
		},
		{
			name: "Ranking failure and missing rows degrade",
			prepareMock: func(m mocks) {
				m.ledger.EXPECT().GetLedger(gomock.Any(), "u1").Return(entry, nil)
				m.profiles.EXPECT().GetProfile(gomock.Any(), "u1").Return(nil, notFound)
				m.ranking.EXPECT().MyRank(gomock.Any(), "u1").Return(nil, storeErr)
				m.goals.EXPECT().ListGoals(gomock.Any(), "u1", "").Return(goals, nil)
				m.challenges.EXPECT().CurrentChallenge(gomock.Any(), "u1").Return(nil, notFound)
			},
			expected: &domain.Dashboard{Ledger: entry, Goals: goals},
		},
		{
			name: "Ledger failure fails the page",
			prepareMock: func(m mocks) {
				m.ledger.EXPECT().GetLedger(gomock.Any(), "u1").Return(nil, storeErr)
				m.profiles.EXPECT().GetProfile(gomock.Any(), "u1").Return(profile, nil).AnyTimes()
				m.ranking.EXPECT().MyRank(gomock.Any(), "u1").Return(rank, nil).AnyTimes()
				m.goals.EXPECT().ListGoals(gomock.Any(), "u1", "").Return(goals, nil).AnyTimes()
				m.challenges.EXPECT().CurrentChallenge(gomock.Any(), "u1").Return(challenge, nil).AnyTimes()
			},
			expectedError: domain.ErrStore,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)
			d, err := service.Dashboard(context.Background(), "u1")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, d)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, d)
		})
	}
}
