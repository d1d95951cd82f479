package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/topups/docs"
	credentialhandlers "github.com/GlebRadaev/topups/internal/handlers/credentials"
	healthhandlers "github.com/GlebRadaev/topups/internal/handlers/health"
	topuphandlers "github.com/GlebRadaev/topups/internal/handlers/topups"
	"github.com/GlebRadaev/topups/internal/metrics"
	"github.com/GlebRadaev/topups/internal/service"
	"github.com/GlebRadaev/topups/pkg/auth"
)

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers
type TopupHandler interface {
	Request(w http.ResponseWriter, r *http.Request)
	MarkPaid(w http.ResponseWriter, r *http.Request)
}

type CredentialHandler interface {
	GetCredentials(w http.ResponseWriter, r *http.Request)
}

type HealthHandler interface {
	Root(w http.ResponseWriter, r *http.Request)
	Health(w http.ResponseWriter, r *http.Request)
	Ready(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	TopupHandler      TopupHandler
	CredentialHandler CredentialHandler
	HealthHandler     HealthHandler

	internalSecret string
}

func New(s *service.Services, internalSecret string) *Handlers {
	return &Handlers{
		TopupHandler:      topuphandlers.New(s.TopupService),
		CredentialHandler: credentialhandlers.New(s.CredentialService),
		HealthHandler:     healthhandlers.New(s.HealthService),
		internalSecret:    internalSecret,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		metrics.Middleware,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Handle("/metrics", promhttp.Handler())

	r.Get("/", h.HealthHandler.Root)
	r.Get("/health", h.HealthHandler.Health)
	r.Get("/ready", h.HealthHandler.Ready)
	r.Get("/get-credentials", h.CredentialHandler.GetCredentials)

	r.Route("/internal/topups", func(r chi.Router) {
		r.Use(auth.InternalAuth(h.internalSecret))
		r.Post("/request", h.TopupHandler.Request)
		r.Post("/mark-paid", h.TopupHandler.MarkPaid)
	})

	return r
}
