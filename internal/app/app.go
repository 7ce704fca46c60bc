package app

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/fuelwatch/fuelwatch/internal/cache"
	"github.com/fuelwatch/fuelwatch/internal/config"
	"github.com/fuelwatch/fuelwatch/internal/events"
	"github.com/fuelwatch/fuelwatch/internal/handlers"
	"github.com/fuelwatch/fuelwatch/internal/metrics"
	"github.com/fuelwatch/fuelwatch/internal/notify"
	"github.com/fuelwatch/fuelwatch/internal/pg"
	"github.com/fuelwatch/fuelwatch/internal/repo"
	"github.com/fuelwatch/fuelwatch/internal/service"
	"github.com/fuelwatch/fuelwatch/internal/sweeper"
	"github.com/fuelwatch/fuelwatch/pkg/clients"
	"github.com/fuelwatch/fuelwatch/pkg/logger"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg     *config.Config
	api     *handlers.Handlers
	srv     *service.Services
	repo    *repo.Repositories
	metrics *metrics.Collector

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

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)
	conn := pg.New(pool)

	a.cfg = cfg
	a.metrics = metrics.NewCollector()

	appCache := cache.New(newCacheBackend(cfg), cfg.CacheTTL).WithMetrics(a.metrics)
	dispatcher := events.NewDispatcher().WithMetrics(a.metrics)
	a.subscribeEvents(dispatcher)

	a.repo = repo.New(conn)
	a.srv = service.New(cfg, a.repo, service.Deps{
		Cache:     appCache,
		Notifier:  newNotifier(cfg),
		Events:    dispatcher,
		TXManager: txManager,
	})
	a.api = handlers.New(a.srv, a.metrics.Handler())

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.startSweepers(ctx)

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
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
		return nil, err
	}
	return dbpool, nil
}

func newCacheBackend(cfg *config.Config) cache.Backend {
	if cfg.RedisAddress == "" {
		zap.L().Info("no redis address configured, using in-memory cache")
		return cache.NewMemoryBackend()
	}
	client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddress})
	return cache.NewRedisBackend(client)
}

func newNotifier(cfg *config.Config) notify.Sender {
	if cfg.NotifyWebhookURL == "" {
		zap.L().Info("no webhook URL configured, notifications go to the log")
		return notify.LogSender{}
	}
	return notify.NewWebhookSender(cfg.NotifyWebhookURL, clients.NewHTTPClient())
}

// subscribeEvents wires the in-process subscribers: an audit log line and a
// published-events counter for every event.
func (a *Application) subscribeEvents(dispatcher *events.Dispatcher) {
	names := []string{events.UserBannedName, events.UserUnlockedName, events.PriceProposalEvaluatedName}
	for _, name := range names {
		dispatcher.Subscribe(name, func(_ context.Context, event events.Event) error {
			zap.L().Info("audit", zap.String("event", event.Name()))
			return nil
		})
		dispatcher.Subscribe(name, func(_ context.Context, event events.Event) error {
			a.metrics.RecordEventPublished(event.Name())
			return nil
		})
	}
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:    a.cfg.Address,
		Handler: router,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(sCtx)
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) startSweepers(ctx context.Context) {
	banSweeper := sweeper.New("bans", a.cfg.BanSweepInterval, func(ctx context.Context, now time.Time) error {
		expired, err := a.srv.BanService.ExpireBans(ctx, now)
		a.metrics.RecordExpiredBans(expired)
		return err
	}).WithMetrics(a.metrics)

	proposalSweeper := sweeper.New("proposals", a.cfg.ProposalSweepInterval, func(ctx context.Context, now time.Time) error {
		expired, err := a.srv.ProposalService.ExpireProposals(ctx, now)
		a.metrics.RecordExpiredProposals(expired)
		return err
	}).WithMetrics(a.metrics)

	for _, s := range []*sweeper.Sweeper{banSweeper, proposalSweeper} {
		s := s
		a.wg.Add(1)
		go func() {
			defer a.wg.Done()
			s.Start(ctx)
		}()
	}
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
