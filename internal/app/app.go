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

	"github.com/GlebRadaev/fitquest/internal/audit"
	"github.com/GlebRadaev/fitquest/internal/config"
	"github.com/GlebRadaev/fitquest/internal/handlers"
	"github.com/GlebRadaev/fitquest/internal/pg"
	"github.com/GlebRadaev/fitquest/internal/repo"
	"github.com/GlebRadaev/fitquest/internal/service"
	"github.com/GlebRadaev/fitquest/pkg/auth"
	"github.com/GlebRadaev/fitquest/pkg/clients"
	"github.com/GlebRadaev/fitquest/pkg/logger"
)

const shutdownTimeout = 5 * time.Second

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg      *config.Config
	api      *handlers.Handlers
	srv      *service.Services
	repo     *repo.Repositories
	recorder *audit.Recorder
	pool     *pgxpool.Pool

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
	cfg, err := config.New()
	if err != nil {
		return fmt.Errorf("can't load config: %w", err)
	}

	err = logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	identity, err := identityProvider(cfg)
	if err != nil {
		return fmt.Errorf("can't build identity provider: %w", err)
	}

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		pool.Close()
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)

	conn := pg.New(pool)
	a.cfg = cfg
	a.pool = pool
	a.repo = repo.New(conn)
	a.recorder = audit.New(a.repo.AuditRepo, cfg.AuditWorkers, cfg.AuditQueue)
	a.srv = service.New(a.repo, txManager, a.recorder, cfg)
	a.api = handlers.New(a.srv, identity, cfg)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

var errNoJWTSecret = errors.New("JWT_SECRET is required when AUTH_URL is empty")

// identityProvider prefers the external auth service and falls back to
// verifying HS256 tokens with the local secret, which must be configured.
func identityProvider(cfg *config.Config) (auth.IdentityProvider, error) {
	if cfg.AuthURL != "" {
		zap.L().Info("verifying tokens with auth provider", zap.String("url", cfg.AuthURL))
		return auth.NewRemoteProvider(cfg.AuthURL, cfg.AuthAPIKey, clients.NewHTTPClient(cfg.StoreTimeout)), nil
	}
	if cfg.JWTSecret == "" {
		return nil, errNoJWTSecret
	}
	zap.L().Warn("AUTH_URL is empty, verifying tokens with the local JWT secret")
	return auth.NewJWTService(cfg.JWTSecret), nil
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
		ReadHeaderTimeout: a.cfg.StoreTimeout,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(sCtx); err != nil {
			zap.L().Error("http server shutdown failed", zap.Error(err))
		}

		// in-flight requests are done, so no more audit events can arrive
		a.recorder.Close()
		a.pool.Close()
		zap.L().Info("audit recorder drained, database pool closed")
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
