package service

import (
	"github.com/GlebRadaev/topups/internal/config"
	"github.com/GlebRadaev/topups/internal/handlers/credentials"
	"github.com/GlebRadaev/topups/internal/handlers/health"
	"github.com/GlebRadaev/topups/internal/handlers/topups"
	"github.com/GlebRadaev/topups/internal/policy"
	"github.com/GlebRadaev/topups/internal/repo"
	"github.com/GlebRadaev/topups/internal/service/credentialservice"
	"github.com/GlebRadaev/topups/internal/service/healthservice"
	"github.com/GlebRadaev/topups/internal/service/topupservice"
)

type Services struct {
	TopupService      topups.Service
	CredentialService credentials.Service
	HealthService     health.Service
}

func New(cfg *config.Config, repo *repo.Repositories, p *policy.Policy) *Services {
	return &Services{
		TopupService:      topupservice.New(repo.Topups, repo.Users, p),
		CredentialService: credentialservice.New(cfg.SecretDir, cfg.TokenFiles()),
		HealthService:     healthservice.New(repo.Topups, repo.Users),
	}
}
