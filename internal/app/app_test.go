package app

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/GlebRadaev/fitquest/internal/config"
	"github.com/GlebRadaev/fitquest/pkg/auth"
)

type ApplicationSuite struct {
	suite.Suite
	app       *Application
	testError error
}

func TestApplication(t *testing.T) {
	suite.Run(t, &ApplicationSuite{})
}

func (s *ApplicationSuite) SetupTest() {
	s.app = New()
}

func (s *ApplicationSuite) TestIdentityProvider() {
	remote, err := identityProvider(&config.Config{AuthURL: "http://auth.local", AuthAPIKey: "anon", StoreTimeout: time.Second})
	s.Require().NoError(err)
	s.IsType(&auth.RemoteProvider{}, remote)

	local, err := identityProvider(&config.Config{JWTSecret: "secret"})
	s.Require().NoError(err)
	s.IsType(&auth.JWTService{}, local)
}

func (s *ApplicationSuite) TestIdentityProviderRequiresSecret() {
	provider, err := identityProvider(&config.Config{})
	s.ErrorIs(err, errNoJWTSecret)
	s.Nil(provider)
}

func (s *ApplicationSuite) TestWait() {
	ctx, cancel := context.WithCancel(context.Background())

	s.app.errCh = make(chan error)
	go func() {
		s.app.errCh <- fmt.Errorf("mock error")
	}()

	err := s.app.Wait(ctx, cancel)

	s.Require().Error(err)
	s.Contains(err.Error(), "mock error")
}
