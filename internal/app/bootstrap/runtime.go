package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	cacheadapter "github.com/oceansouq/platform-core/internal/adapters/cache"
	httpadapter "github.com/oceansouq/platform-core/internal/adapters/http"
	"github.com/oceansouq/platform-core/internal/adapters/postgres"
	"github.com/oceansouq/platform-core/internal/adapters/security"
	"github.com/oceansouq/platform-core/internal/application"
	"github.com/oceansouq/platform-core/internal/ports"
)

type Runtime struct {
	cfg        Config
	logger     *slog.Logger
	httpServer *http.Server
	cleanupFn  func(context.Context)
}

func NewRuntime(ctx context.Context, configPath string) (*Runtime, error) {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)
	logger.Info("bootstrapping identity core", "service_id", cfg.ServiceID, "http_port", cfg.HTTPPort)

	db, err := postgres.Connect(ctx, cfg.DatabaseURL, cfg.MaxDBConns)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("gorm sql db: %w", err)
	}
	if err := postgres.RunMigrations(ctx, db); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	// Redis backs the cross-instance registration lock; without it a
	// single-instance in-process lock still serializes registrations.
	var regLock ports.RegistrationLock = cacheadapter.NewMemoryRegistrationLock()
	cleanup := func(context.Context) { _ = sqlDB.Close() }
	if cfg.RedisURL != "" {
		redisClient, err := cacheadapter.Connect(ctx, cfg.RedisURL)
		if err != nil {
			_ = sqlDB.Close()
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		if err := redisClient.Ping(ctx).Err(); err != nil {
			_ = sqlDB.Close()
			return nil, fmt.Errorf("ping redis: %w", err)
		}
		regLock = cacheadapter.NewRedisRegistrationLock(redisClient)
		cleanup = func(context.Context) {
			_ = redisClient.Close()
			_ = sqlDB.Close()
		}
	} else {
		logger.Warn("redis not configured, registration lock is per-instance only")
	}

	codec, err := security.NewTokenCodec(cfg.AudienceSecrets)
	if err != nil {
		cleanup(ctx)
		return nil, fmt.Errorf("init token codec: %w", err)
	}

	svc := application.NewService(application.Dependencies{
		Config: application.Config{
			UserTokenTTL:     cfg.UserTokenTTL,
			ProviderTokenTTL: cfg.ProviderTokenTTL,
		},
		Subjects: postgres.NewSubjectRepository(db),
		Hasher:   security.NewArgon2Hasher(cfg.Argon2MemoryKB, cfg.Argon2Iterations, cfg.Argon2Parallelism),
		Tokens:   codec,
		RegLock:  regLock,
	})

	handler := httpadapter.NewHandler(svc)
	router := httpadapter.NewRouter(handler, httpadapter.RouterConfig{
		RegisterRateLimitRPS:   cfg.RegisterRateLimitRPS,
		RegisterRateLimitBurst: cfg.RegisterRateLimitBurst,
	})

	return &Runtime{
		cfg:    cfg,
		logger: logger,
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
			Handler:           router,
			ReadHeaderTimeout: 5 * time.Second,
		},
		cleanupFn: cleanup,
	}, nil
}

func (r *Runtime) RunAPI(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		r.logger.Info("http server started", "addr", r.httpServer.Addr)
		if err := r.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		r.logger.Info("shutdown signal received")
	case err := <-errCh:
		r.logger.Error("server failure", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = r.httpServer.Shutdown(shutdownCtx)
	r.cleanupFn(shutdownCtx)
	return nil
}
