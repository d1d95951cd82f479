package app

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/GlebRadaev/topups/internal/config"
	"github.com/GlebRadaev/topups/internal/policy"
)

type ApplicationSuite struct {
	suite.Suite
	app *Application
}

func TestApplication(t *testing.T) {
	suite.Run(t, &ApplicationSuite{})
}

func (s *ApplicationSuite) SetupTest() {
	s.app = New()
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

func (s *ApplicationSuite) TestBuildRepositories_UnknownBackend() {
	s.app.cfg = &config.Config{StoreBackend: "redis"}

	repos, err := s.app.buildRepositories(context.Background())

	s.Nil(repos)
	s.ErrorContains(err, `unknown store backend "redis"`)
}

func (s *ApplicationSuite) TestBuildRepositories_MissingGoogleCredentials() {
	s.app.cfg = &config.Config{
		StoreBackend:          config.BackendSheets,
		GoogleCredentialsFile: s.T().TempDir() + "/missing.json",
	}

	repos, err := s.app.buildRepositories(context.Background())

	s.Nil(repos)
	s.ErrorContains(err, "can't build google client")
}

func (s *ApplicationSuite) TestBuildRepositories_BadDSN() {
	s.app.cfg = &config.Config{
		StoreBackend: config.BackendPostgres,
		Database:     "://not a dsn",
	}

	repos, err := s.app.buildRepositories(context.Background())

	s.Nil(repos)
	s.ErrorContains(err, "can't build pgx pool")
}

func (s *ApplicationSuite) TestLoadPolicy() {
	tests := []struct {
		name     string
		raw      string
		amount   int64
		expected string
	}{
		{"Default map", "", 1500, policy.RoleVIPI},
		{"Override map", `{"99":"trial"}`, 99, "trial"},
		{"Invalid map falls back to default", `{"99":`, 2500, policy.RoleVIPII},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			p := loadPolicy(&config.Config{RoleMapJSON: tt.raw, RoleMonths: 1})
			role, ok := p.RoleFor(decimal.NewFromInt(tt.amount))
			s.True(ok)
			s.Equal(tt.expected, role)
		})
	}
}
