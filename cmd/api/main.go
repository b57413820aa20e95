// Copyright (c) 2026 Classboard. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the classboard HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Run database migrations (idempotent).
//  5. Connect to Redis when REDIS_URL is set.
//  6. Build the token service and wire domain handlers.
//  7. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	goredis "github.com/redis/go-redis/v9"

	"github.com/taibuivan/classboard/internal/api"
	"github.com/taibuivan/classboard/internal/content/post"
	"github.com/taibuivan/classboard/internal/platform/config"
	"github.com/taibuivan/classboard/internal/platform/constants"
	"github.com/taibuivan/classboard/internal/platform/migration"
	pgstore "github.com/taibuivan/classboard/internal/platform/postgres"
	redisstore "github.com/taibuivan/classboard/internal/platform/redis"
	"github.com/taibuivan/classboard/internal/platform/sec"
	"github.com/taibuivan/classboard/internal/users/account"
	"github.com/taibuivan/classboard/internal/users/auth"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	log := newLogger(slog.LevelInfo)
	log.Info("service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		log = newLogger(slog.LevelDebug)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.Bool("tls", cfg.TLSEnabled()),
		slog.Bool("cache", cfg.CacheEnabled()),
	)

	startupCtx, startupCancel := context.WithTimeout(context.Background(), constants.StartupTimeout)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("postgres_pool_closing")
		pool.Close()
	}()

	// ── 4. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	healthDeps := api.HealthDependencies{
		CheckDatabase: func(ctx context.Context) error {
			return pgstore.Ping(ctx, pool)
		},
	}

	// ── 5. Redis (optional) ───────────────────────────────────────────────
	var postCache post.Cache = post.NoCache{}
	if cfg.CacheEnabled() {
		var rdb *goredis.Client
		rdb, err = redisstore.NewClient(startupCtx, cfg.RedisURL, log)
		must(log, err, "connect to redis")
		defer func() {
			log.Info("redis_client_closing")
			if cerr := rdb.Close(); cerr != nil {
				log.Error("redis_close_failed", slog.Any("error", cerr))
			}
		}()

		postCache = post.NewRedisCache(rdb, cfg.PostCacheTTL, log)
		healthDeps.CheckCache = func(ctx context.Context) error {
			return redisstore.Ping(ctx, rdb)
		}
	}

	// ── 6. Token Service & Domain Wiring ─────────────────────────────────
	tokenService, err := sec.NewTokenService([]byte(cfg.JWTSecret), cfg.JWTIssuer, cfg.JWTTTL)
	must(log, err, "initialize token service")

	authService := auth.NewService(auth.NewUserRepository(pool), tokenService, log)
	accountService := account.NewService(account.NewAccountRepository(pool), postCache, log)
	postService := post.NewService(post.NewPostgresRepository(pool), postCache, log)

	liveness, readiness := api.NewHealthHandlers(healthDeps, log)

	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Auth:      auth.NewHandler(authService, tokenService),
		Users:     account.NewHandler(accountService, tokenService),
		Posts:     post.NewHandler(postService, tokenService),
	}

	server := api.NewServer(cfg, log, handlers)

	// ── 7. Graceful Shutdown ──────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown_signal_received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server_startup_failed", slog.Any("error", err))
	}

	log.Info("server_shutting_down", slog.Duration("timeout", constants.ShutdownTimeout))

	if err := server.Shutdown(constants.ShutdownTimeout); err != nil {
		log.Error("server_shutdown_failed", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server_stopped")
}

// newLogger builds the JSON logger and installs it as the process default.
func newLogger(level slog.Level) *slog.Logger {
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})).With(slog.String("app", constants.AppName))

	slog.SetDefault(log)
	return log
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is limited to startup wiring. After startup, all errors are returned
// and handled explicitly.
func must(log *slog.Logger, err error, step string) {
	if err != nil {
		log.Error("startup_failed",
			slog.String("step", step),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
