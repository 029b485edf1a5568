package profileservice

import (
	"context"
	"errors"
	"testing"

	"github.com/GlebRadaev/fitquest/internal/domain"
	"github.com/GlebRadaev/fitquest/internal/pg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockProfileRepo, *MockLedgerRepo, *pg.MockTXManager, *MockRecorder) {
	ctrl := gomock.NewController(t)
	profileRepo := NewMockProfileRepo(ctrl)
	ledgerRepo := NewMockLedgerRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	recorder := NewMockRecorder(ctrl)
	return New(profileRepo, ledgerRepo, txManager, recorder), profileRepo, ledgerRepo, txManager, recorder
}

func runInTx(txManager *pg.MockTXManager) {
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
			return fn(ctx)
		})
}

func TestProvision(t *testing.T) {
	service, profileRepo, ledgerRepo, txManager, recorder := NewMock(t)
	fresh := &domain.LedgerEntry{UserID: "u1", XP: 0, Level: 1, Badges: []string{}}

	tests := []struct {
		name          string
		displayName   string
		prepareMock   func()
		expectedName  string
		expectedError error
	}{
		{
			name: "New user gets a name from the email",
			prepareMock: func() {
				runInTx(txManager)
				profileRepo.EXPECT().Get(gomock.Any(), "u1").Return(nil, nil)
				profileRepo.EXPECT().Upsert(gomock.Any(), &domain.Profile{UserID: "u1", Email: "ana@fit.app", DisplayName: "ana"}).
					Return(&domain.Profile{UserID: "u1", Email: "ana@fit.app", DisplayName: "ana"}, nil)
				ledgerRepo.EXPECT().CreateEntry(gomock.Any(), "u1").Return(fresh, nil)
				recorder.EXPECT().Record(gomock.Any())
			},
			expectedName: "ana",
		},
		{
			name:        "Existing user keeps the ledger",
			displayName: "Ana Souza",
			prepareMock: func() {
				runInTx(txManager)
				profileRepo.EXPECT().Get(gomock.Any(), "u1").Return(&domain.Profile{UserID: "u1", DisplayName: "ana"}, nil)
				profileRepo.EXPECT().Upsert(gomock.Any(), &domain.Profile{UserID: "u1", Email: "ana@fit.app", DisplayName: "Ana Souza"}).
					Return(&domain.Profile{UserID: "u1", Email: "ana@fit.app", DisplayName: "Ana Souza"}, nil)
				ledgerRepo.EXPECT().CreateEntry(gomock.Any(), "u1").
					Return(&domain.LedgerEntry{UserID: "u1", XP: 230, Level: 3, Badges: []string{}}, nil)
			},
			expectedName: "Ana Souza",
		},
		{
			name: "Ledger failure rolls back",
			prepareMock: func() {
				runInTx(txManager)
				profileRepo.EXPECT().Get(gomock.Any(), "u1").Return(nil, nil)
				profileRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(&domain.Profile{UserID: "u1"}, nil)
				ledgerRepo.EXPECT().CreateEntry(gomock.Any(), "u1").Return(nil, errors.New("db error"))
			},
			expectedError: domain.ErrStore,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			profile, entry, err := service.Provision(context.Background(), "u1", "ana@fit.app", tt.displayName, "")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedName, profile.DisplayName)
			assert.NotNil(t, entry)
		})
	}
}

func TestProvision_RequiresUser(t *testing.T) {
	service, _, _, _, _ := NewMock(t)
	_, _, err := service.Provision(context.Background(), "", "a@b.c", "", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGetProfile(t *testing.T) {
	service, profileRepo, _, _, _ := NewMock(t)

	profileRepo.EXPECT().Get(gomock.Any(), "u1").Return(&domain.Profile{UserID: "u1"}, nil)
	profile, err := service.GetProfile(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "u1", profile.UserID)

	profileRepo.EXPECT().Get(gomock.Any(), "u1").Return(nil, nil)
	_, err = service.GetProfile(context.Background(), "u1")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	profileRepo.EXPECT().Get(gomock.Any(), "u1").Return(nil, errors.New("db error"))
	_, err = service.GetProfile(context.Background(), "u1")
	assert.ErrorIs(t, err, domain.ErrStore)
}
