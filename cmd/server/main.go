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

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/rqapp/rq-mobile-api/config"
	"github.com/rqapp/rq-mobile-api/internal/catalog"
	"github.com/rqapp/rq-mobile-api/internal/health"
	ctxlog "github.com/rqapp/rq-mobile-api/internal/log"
	"github.com/rqapp/rq-mobile-api/internal/metrics"
	"github.com/rqapp/rq-mobile-api/internal/random"
	"github.com/rqapp/rq-mobile-api/internal/store"
	"github.com/rqapp/rq-mobile-api/internal/token"
	httptransport "github.com/rqapp/rq-mobile-api/internal/transport/http"
	"github.com/rqapp/rq-mobile-api/internal/transport/http/handler"
	"github.com/rqapp/rq-mobile-api/internal/usecase"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger := newLogger(cfg.Env, cfg.SlogLevel())

	if cfg.Env != "local" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Generated once; the catalog is read-only for the process lifetime.
	rng := random.New(cfg.CatalogSeed)
	st := store.New(catalog.Generate(rng))
	logger.Info("catalog generated", "properties", st.PropertyCount())

	var issuer token.Issuer
	if cfg.TokenMode == "jwt" {
		issuer = token.NewJWTIssuer([]byte(cfg.JWTSecret))
	} else {
		issuer = token.NewMockIssuer()
	}

	authHandler := handler.NewAuthHandler(usecase.NewAuthUsecase(st, issuer), logger)
	propertyHandler := handler.NewPropertyHandler(usecase.NewPropertyUsecase(st, rng), logger)
	savedHandler := handler.NewSavedHandler(usecase.NewSavedUsecase(st, rng), logger)
	userHandler := handler.NewUserHandler(usecase.NewUserUsecase(st), logger)
	notificationHandler := handler.NewNotificationHandler(usecase.NewNotificationUsecase(rng), logger)
	billingHandler := handler.NewBillingHandler(usecase.NewBillingUsecase(), logger)

	metrics.Register()
	metrics.CatalogSize.Set(float64(st.PropertyCount()))
	checker := health.NewChecker(st, catalog.Size, logger, prometheus.DefaultRegisterer)

	srv := http.Server{
		Addr: ":" + cfg.Port,
		Handler: httptransport.NewRouter(
			logger,
			authHandler,
			propertyHandler,
			savedHandler,
			userHandler,
			notificationHandler,
			billingHandler,
		),
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
