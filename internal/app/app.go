package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"strconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"

	"github.com/heartmarshall/coursetrack-backend/internal/adapter/postgres"
	certificaterepo "github.com/heartmarshall/coursetrack-backend/internal/adapter/postgres/certificate"
	curriculumrepo "github.com/heartmarshall/coursetrack-backend/internal/adapter/postgres/curriculum"
	doubtrepo "github.com/heartmarshall/coursetrack-backend/internal/adapter/postgres/doubt"
	learnerrepo "github.com/heartmarshall/coursetrack-backend/internal/adapter/postgres/learner"
	progressrepo "github.com/heartmarshall/coursetrack-backend/internal/adapter/postgres/progress"
	"github.com/heartmarshall/coursetrack-backend/internal/adapter/redis"
	"github.com/heartmarshall/coursetrack-backend/internal/auth"
	"github.com/heartmarshall/coursetrack-backend/internal/config"
	"github.com/heartmarshall/coursetrack-backend/internal/domain"
	"github.com/heartmarshall/coursetrack-backend/internal/service/completion"
	"github.com/heartmarshall/coursetrack-backend/internal/service/doubt"
	"github.com/heartmarshall/coursetrack-backend/internal/service/entitlement"
	"github.com/heartmarshall/coursetrack-backend/internal/service/progress"
	"github.com/heartmarshall/coursetrack-backend/internal/transport/dataloader"
	"github.com/heartmarshall/coursetrack-backend/internal/transport/middleware"
	"github.com/heartmarshall/coursetrack-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL and the optional Redis cache, wires services and serves HTTP
// until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log, os.Stderr)

	logger.Info("starting application",
		slog.String("build", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.Int("engagement_threshold_seconds", cfg.Ledger.EngagementThresholdSeconds()),
		slog.Int("certificate_threshold", cfg.Ledger.CertificateThreshold),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	var cache *goredis.Client
	if cfg.Redis.Enabled() {
		cache, err = redis.NewClient(ctx, cfg.Redis)
		if err != nil {
			return fmt.Errorf("connect redis: %w", err)
		}
		defer cache.Close() //nolint:errcheck
		logger.Info("curriculum cache enabled", slog.String("addr", cfg.Redis.Addr))
	}

	handler, stop := NewHTTPHandler(cfg, logger, pool, cache)
	defer stop()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}

// curriculumSource is satisfied by the PostgreSQL curriculum repo and by the
// Redis cache that wraps it.
type curriculumSource interface {
	GetCourse(ctx context.Context, courseID uuid.UUID) (*domain.Curriculum, error)
	GetCourses(ctx context.Context, courseIDs []uuid.UUID) (map[uuid.UUID]*domain.Curriculum, error)
	CourseExists(ctx context.Context, courseID uuid.UUID) (bool, error)
	TopicExists(ctx context.Context, courseID, topicID uuid.UUID) (bool, error)
}

// NewHTTPHandler builds repos, services and the middleware chain on top of an
// open pool. A nil cache serves curricula straight from PostgreSQL. The
// returned stop func releases background resources.
func NewHTTPHandler(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool, cache *goredis.Client) (http.Handler, func()) {
	var source curriculumSource = curriculumrepo.New(pool)
	if cache != nil {
		source = redis.NewCurriculumCache(cache, source, cfg.Redis.CurriculumTTL, logger)
	}

	txm := postgres.NewTxManager(pool)

	learners := learnerrepo.New(pool)
	progressRepo := progressrepo.New(pool)
	doubts := doubtrepo.New(pool)
	certificates := certificaterepo.New(pool)
	curriculum := dataloader.NewCurriculumReader(source)

	entitlementSvc := entitlement.NewService(logger, learners, curriculum, txm)
	progressSvc := progress.NewService(logger, learners, progressRepo, curriculum,
		progress.ReportedWatchTimeGate{RequiredSeconds: cfg.Ledger.EngagementThresholdSeconds()}, txm)
	completionSvc := completion.NewService(logger, curriculum, progressRepo, learners, certificates, completion.Config{
		CertificateThreshold: cfg.Ledger.CertificateThreshold,
		DashboardConcurrency: cfg.Ledger.DashboardConcurrency,
	})
	doubtSvc := doubt.NewService(logger, doubts, learners, doubt.Config{
		QueryMaxLength:   cfg.Ledger.DoubtQueryMaxLength,
		ListDefaultLimit: cfg.Ledger.DoubtListDefaultLimit,
		ListMaxLimit:     cfg.Ledger.DoubtListMaxLimit,
	})

	health := rest.NewHealthHandler(pool, Version)
	if cache != nil {
		health.WithOptional("cache", rest.PingFunc(func(ctx context.Context) error {
			return cache.Ping(ctx).Err()
		}))
	}

	mux := rest.NewRouter(rest.Handlers{
		Health:      health,
		Entitlement: rest.NewEntitlementHandler(entitlementSvc, logger),
		Progress:    rest.NewProgressHandler(progressSvc, logger),
		Completion:  rest.NewCompletionHandler(completionSvc, logger),
		Doubt:       rest.NewDoubtHandler(doubtSvc, logger),
	})

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	var limit middleware.Middleware
	stop := func() {}
	if cfg.RateLimit.RequestsPerMinute > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
		limit = limiter.Limit(cfg.RateLimit.RequestsPerMinute)
		stop = limiter.Stop
	}

	chain := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		limit,
		middleware.Auth(jwtManager),
		dataloader.Middleware(source),
	)

	return chain(mux), stop
}
