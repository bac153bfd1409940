package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/scheduler-web/internal/audit"
	"github.com/BruksfildServices01/scheduler-web/internal/config"
	dbpkg "github.com/BruksfildServices01/scheduler-web/internal/db"
	infraRepo "github.com/BruksfildServices01/scheduler-web/internal/infra/repository"
	"github.com/BruksfildServices01/scheduler-web/internal/logging"
	"github.com/BruksfildServices01/scheduler-web/internal/middleware"
	"github.com/BruksfildServices01/scheduler-web/internal/preference"
	"github.com/BruksfildServices01/scheduler-web/internal/routes"
	"github.com/BruksfildServices01/scheduler-web/internal/timezone"
)

const (
	auditQueueSize  = 100
	shutdownTimeout = 10 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger); err != nil {
		logger.Errorf("server stopped: %v", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *logging.ZapLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if !timezone.SetApp(cfg.Timezone) {
		logger.Warnf("invalid APP_TIMEZONE %q, using %s", cfg.Timezone, timezone.DefaultTimezone)
	}

	// ======================================================
	// 🔧 INFRA
	// ======================================================
	repo := infraRepo.NewAppointmentHTTPRepository(cfg.APIUrl, cfg.APITimeout, logger)

	var db *gorm.DB
	var sink audit.Sink = audit.NewLogSink(logger)
	if cfg.DBUrl != "" {
		conn, err := dbpkg.NewDB(cfg.DBUrl)
		if err != nil {
			return err
		}
		defer func() { _ = dbpkg.Close(conn) }()
		db = conn
		sink = audit.New(db)
		logger.Info("audit trail stored in postgres")
	}
	dispatcher := audit.NewDispatcher(sink, logger, auditQueueSize)
	defer dispatcher.Close()

	var prefs preference.Store = preference.NewMemoryStore()
	if cfg.RedisURL != "" {
		client, err := preference.ConnectRedis(ctx, cfg.RedisURL)
		if err != nil {
			return err
		}
		defer func() { _ = client.Close() }()
		prefs = preference.NewRedisStore(client, 0)
		logger.Info("preferences stored in redis")
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	go sweepLimiter(ctx, limiter)

	// ======================================================
	// 🌐 HTTP
	// ======================================================
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	if err := routes.RegisterRoutes(r, cfg, routes.Infra{
		Repo:        repo,
		Audit:       dispatcher,
		Preferences: prefs,
		Limiter:     limiter,
		Logger:      logger,
		DB:          db,
	}); err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("server running on %s, api %s", cfg.Addr(), cfg.APIUrl)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func sweepLimiter(ctx context.Context, rl *middleware.RateLimiter) {
	t := time.NewTicker(time.Minute)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			rl.Sweep(now)
		}
	}
}
