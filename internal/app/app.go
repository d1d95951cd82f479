package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
	"google.golang.org/api/sheets/v4"

	"github.com/GlebRadaev/topups/internal/config"
	"github.com/GlebRadaev/topups/internal/handlers"
	"github.com/GlebRadaev/topups/internal/pg"
	"github.com/GlebRadaev/topups/internal/policy"
	"github.com/GlebRadaev/topups/internal/repo"
	"github.com/GlebRadaev/topups/internal/service"
	"github.com/GlebRadaev/topups/internal/store/sheetstore"
	"github.com/GlebRadaev/topups/pkg/clients"
	"github.com/GlebRadaev/topups/pkg/logger"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg  *config.Config
	api  *handlers.Handlers
	srv  *service.Services
	repo *repo.Repositories
	pool *pgxpool.Pool

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}
	if cfg.InternalAuthSecret == "" {
		zap.L().Warn("INTERNAL_AUTH_SECRET is not set, internal topup routes will reject every call")
	}

	a.cfg = cfg
	a.repo, err = a.buildRepositories(ctx)
	if err != nil {
		return err
	}
	a.srv = service.New(cfg, a.repo, loadPolicy(cfg))
	a.api = handlers.New(a.srv, cfg.InternalAuthSecret)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.ready = true
	zap.L().Info("all systems started successfully", zap.String("backend", cfg.StoreBackend))
	return nil
}

func (a *Application) buildRepositories(ctx context.Context) (*repo.Repositories, error) {
	switch a.cfg.StoreBackend {
	case config.BackendSheets:
		httpClient, err := clients.NewGoogleClientFromFile(ctx, a.cfg.GoogleCredentialsFile, sheets.SpreadsheetsScope)
		if err != nil {
			zap.L().Error("google client failed: ", zap.Error(err))
			return nil, fmt.Errorf("can't build google client: %w", err)
		}
		srv, err := sheetstore.NewService(ctx, httpClient)
		if err != nil {
			return nil, fmt.Errorf("can't build sheets service: %w", err)
		}
		return repo.NewSheets(sheetstore.New(srv, a.cfg.SpreadsheetKey), a.cfg.TopupSheetName, a.cfg.UsersSheetName), nil

	case config.BackendPostgres:
		pool, err := getPgxpool(ctx, a.cfg)
		if err != nil {
			zap.L().Error("build pgx pool failed: ", zap.Error(err))
			return nil, fmt.Errorf("can't build pgx pool: %w", err)
		}
		if err := pg.RunMigrations(pool); err != nil {
			pool.Close()
			zap.L().Error("migrations failed: ", zap.Error(err))
			return nil, fmt.Errorf("can't run migrations: %w", err)
		}
		a.pool = pool
		return repo.NewPostgres(pg.New(pool), pg.NewTXManager(pool)), nil

	default:
		return nil, fmt.Errorf("unknown store backend %q", a.cfg.StoreBackend)
	}
}

// loadPolicy falls back to the default role map when ROLE_MAP_JSON does not parse.
func loadPolicy(cfg *config.Config) *policy.Policy {
	roles, err := policy.ParseRoleMap(cfg.RoleMapJSON)
	if err != nil {
		zap.L().Warn("ROLE_MAP_JSON ignored, using default role map", zap.Error(err))
		roles = policy.DefaultRoleMap()
	}
	return policy.New(roles, cfg.RoleMonths)
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		dbpool.Close()
		return nil, err
	}
	return dbpool, nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:              a.cfg.Address,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(sCtx)
		if a.pool != nil {
			a.pool.Close()
		}
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	return appErr
}
