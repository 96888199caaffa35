package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AlexHopeIT/notes-servise-test/config"
	"github.com/AlexHopeIT/notes-servise-test/internal/health"
	"github.com/AlexHopeIT/notes-servise-test/internal/infrastructure/postgres"
	ctxlog "github.com/AlexHopeIT/notes-servise-test/internal/log"
	"github.com/AlexHopeIT/notes-servise-test/internal/metrics"
	"github.com/AlexHopeIT/notes-servise-test/internal/spell"
	"github.com/AlexHopeIT/notes-servise-test/internal/stats"
	"github.com/AlexHopeIT/notes-servise-test/internal/token"
	httptransport "github.com/AlexHopeIT/notes-servise-test/internal/transport/http"
	"github.com/AlexHopeIT/notes-servise-test/internal/transport/http/handler"
	"github.com/AlexHopeIT/notes-servise-test/internal/usecase"
	"github.com/gin-gonic/gin"
	"github.com/lmittmann/tint"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger := newLogger(cfg.Env, cfg.SlogLevel())

	if cfg.Env != "local" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	if err := postgres.Migrate(ctx, cfg.DatabaseURL); err != nil {
		stop()
		log.Fatalf("migrate: %v", err)
	}

	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		stop()
		log.Fatalf("db: %v", err)
	}
	defer pool.Close()

	// Auth
	userRepo := postgres.NewUserRepository(pool)
	tokens := token.NewService([]byte(cfg.JWTSecret), time.Duration(cfg.TokenTTLMin)*time.Minute)
	authUsecase := usecase.NewAuthUsecase(userRepo, tokens)
	authHandler := handler.NewAuthHandler(authUsecase, logger)

	// Notes
	noteRepo := postgres.NewNoteRepository(pool)
	speller := spell.NewChecker(cfg.SpellcheckEnabled, cfg.SpellcheckURL)
	noteUsecase := usecase.NewNoteUsecase(noteRepo, speller, logger)
	noteHandler := handler.NewNoteHandler(noteUsecase, logger)

	metrics.Register()
	checker := health.NewChecker(pool, logger, prometheus.DefaultRegisterer)

	collector := stats.NewCollector(userRepo, noteRepo, logger)
	if err := collector.Start(); err != nil {
		stop()
		log.Fatalf("stats collector: %v", err)
	}
	defer collector.Stop()

	srv := http.Server{
		Addr:    ":" + cfg.Port,
		Handler: httptransport.NewRouter(logger, authHandler, noteHandler, userRepo, tokens),
	}

	metricsSrv := metrics.NewServer(":"+cfg.MetricsPort, checker)

	go func() {
		logger.Info("server started", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server: %v", err)
		}
	}()

	go func() {
		logger.Info("metrics server started", "port", cfg.MetricsPort)
		if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server", "error", err)
		}
	}()

	<-ctx.Done()
	stop()
	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", "error", err)
	}
	if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error("metrics server shutdown", "error", err)
	}
}

func newLogger(env string, level slog.Level) *slog.Logger {
	var inner slog.Handler
	if env == "local" {
		inner = tint.NewHandler(os.Stdout, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		})
	} else {
		inner = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: level,
		})
	}
	return slog.New(ctxlog.NewContextHandler(inner))
}
