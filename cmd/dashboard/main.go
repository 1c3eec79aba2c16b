package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	application "dashboard/internal/app"
	"dashboard/internal/handlers/kafka-consumer/order_changed"
	"dashboard/internal/handlers/rest/healthcheck_head"
	"dashboard/internal/handlers/rest/navigation_get"
	"dashboard/internal/handlers/rest/order_assignment_post"
	"dashboard/internal/handlers/rest/order_get"
	"dashboard/internal/handlers/rest/order_history_get"
	"dashboard/internal/handlers/rest/order_resources_get"
	"dashboard/internal/handlers/rest/order_submissions_get"
	"dashboard/internal/handlers/rest/orders_get"
	"dashboard/internal/handlers/rest/orders_stats_get"
	"dashboard/internal/handlers/rest/ping_get"
	"dashboard/internal/handlers/rest/status_get"
	"dashboard/internal/handlers/rest/statuses_get"
	"dashboard/internal/pkg/config"
	"dashboard/internal/pkg/dotenv"
	"dashboard/internal/pkg/kafka"
	metrics_system "dashboard/internal/pkg/metrics"
	"dashboard/internal/pkg/middlewares/actor"
	"dashboard/internal/pkg/middlewares/graceful_shutdown"
	"dashboard/internal/pkg/middlewares/metrics"
	"dashboard/internal/pkg/middlewares/rate_limiter"
	"dashboard/internal/pkg/middlewares/timeout"
	"dashboard/internal/pkg/migrations"
	"dashboard/internal/pkg/postgres"
	"dashboard/pkg/logger"
	"dashboard/pkg/logger/zap_adapter"
	"dashboard/pkg/token_bucket"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	zapLogger, err := zap_adapter.NewZapAdapter(os.Getenv("LOG_LEVEL"))
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting dashboard application")

	if _, err := os.Stat(".env"); err == nil {
		if err := dotenv.Load(); err != nil {
			mainLog.Error("failed to load .env file", logger.NewField("error", err))
			return
		}
	} else {
		mainLog.Warn("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // ongoingCtx и shutdownCtx намеренно отвязаны от ctx сигнала
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	if err := migrations.Up(ctx, pool); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}

	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	metrics_system.StartSystemMetricsCollector(ctx)

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	// основной http сервер
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(log, &isShuttingDown, pool, businessApp, cfg.Server),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	// pprof http сервер
	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(log, &isShuttingDown, pool),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}

	// события об изменении заказов, без них рабочие наборы обновляются только по запросу
	var consumer *kafka.Consumer
	var consumerErr chan error
	if cfg.Kafka.Enabled {
		consumer, err = kafka.NewConsumer(ctx, log, &cfg.Kafka, order_changed.New(log, businessApp.Registry))
		if err != nil {
			return fmt.Errorf("kafka consumer: %w", err)
		}

		consumerErr = make(chan error, 1)
		go func() {
			defer close(consumerErr)
			runLog.Info("kafka consumer starting",
				logger.NewField("brokers", cfg.Kafka.Brokers),
				logger.NewField("topic", cfg.Kafka.Topic),
				logger.NewField("group", cfg.Kafka.ConsumerGroup),
			)
			if err := consumer.Start(ongoingCtx); err != nil {
				consumerErr <- err
			}
		}()
	}

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // nil канал, если pprof выключен
		return fmt.Errorf("pprof server: %w", err)
	case err := <-consumerErr: // nil канал, если kafka выключена
		return fmt.Errorf("consumer: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx должен быть независим от ctx, который уже отменен на этом этапе.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)
	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	if consumer != nil {
		if err := consumer.Close(); err != nil {
			runLog.Error("failed to close kafka consumer", logger.NewField("error", err))
		}
	}

	businessApp.Registry.Close()
	businessApp.BackgroundWorkers.Wait()

	runLog.Info("Server stopped")
	return nil
}

func initRouter(log logger.Logger, isShuttingDown *atomic.Bool, pool *pgxpool.Pool, app *application.Application, cfg config.HTTPServer) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown))

	router.Use(timeout.Middleware(cfg.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.RateLimiterQPS, float64(cfg.RateLimiterBurst))))
	router.Use(actor.Middleware())
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(log, isShuttingDown, pool)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log)).Methods("GET")

	router.Handle("/navigation", navigation_get.New(log, app.Navigator)).Methods("GET")
	router.Handle("/statuses", statuses_get.New(log, app.Statuses)).Methods("GET")
	router.Handle("/statuses/{status}", status_get.New(log, app.Statuses)).Methods("GET")

	router.Handle("/orders", orders_get.New(log, app.Registry, app.Navigator, app.Statuses)).Methods("GET")
	router.Handle("/orders/stats", orders_stats_get.New(log, app.Registry, app.Navigator, app.Statuses)).Methods("GET")
	router.Handle("/orders/{id}", order_get.New(log, app.Gateway, app.Navigator, app.Statuses)).Methods("GET")
	router.Handle("/orders/{id}/resources", order_resources_get.New(log, app.Catalog)).Methods("GET")
	router.Handle("/orders/{id}/assignment", order_assignment_post.New(log, app.Engine, app.Registry, app.Navigator, app.Statuses)).Methods("POST")
	router.Handle("/orders/{id}/history", order_history_get.New(log, app.Ledger)).Methods("GET")
	router.Handle("/orders/{id}/submissions", order_submissions_get.New(log, app.Journal)).Methods("GET")

	return router
}

func initPprofRouter(log logger.Logger, isShuttingDown *atomic.Bool, pool *pgxpool.Pool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(log, isShuttingDown, pool)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
