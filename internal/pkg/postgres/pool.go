package postgres

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"dashboard/internal/pkg/config"
	"dashboard/internal/repository"
	"dashboard/pkg/logger"
	"dashboard/pkg/retrier"
	"dashboard/pkg/retrier/backoff_adapter"

	"github.com/jackc/pgx/v5/pgxpool"
)

const applicationName = "dashboard"

// журнал пишется по одной строке на назначение, большой пул не нужен
const (
	maxConns          = 8
	minConns          = 2
	maxConnLifetime   = time.Hour
	maxConnIdleTime   = 15 * time.Minute
	healthCheckPeriod = time.Minute
)

var connectRetry = retrier.Config{
	InitialInterval: 2 * time.Second,
	MaxInterval:     20 * time.Second,
	MaxElapsedTime:  2 * time.Minute,
	Randomization:   0.5,
	Multiplier:      2,
	ShouldRetry:     retryableConnectError,
}

func NewConnPool(ctx context.Context, log logger.Logger, cfg *config.Database) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(DSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("parse database config: %w", err)
	}
	poolCfg.MaxConns = maxConns
	poolCfg.MinConns = minConns
	poolCfg.MaxConnLifetime = maxConnLifetime
	poolCfg.MaxConnIdleTime = maxConnIdleTime
	poolCfg.HealthCheckPeriod = healthCheckPeriod
	poolCfg.ConnConfig.RuntimeParams["application_name"] = applicationName

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("connection pool: %w", err)
	}

	dbLog := log.With(
		logger.NewField("host", cfg.Host),
		logger.NewField("port", cfg.Port),
		logger.NewField("db", cfg.DBName),
	)

	if err := waitForDatabase(ctx, dbLog, pool); err != nil {
		pool.Close()
		return nil, err
	}

	return pool, nil
}

// DSN собирает строку подключения, экранируя логин и пароль.
func DSN(cfg *config.Database) string {
	dsn := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(cfg.User, cfg.Password),
		Host:   cfg.Host + ":" + cfg.Port,
		Path:   "/" + cfg.DBName,
	}
	if cfg.SSLMode != "" {
		dsn.RawQuery = url.Values{"sslmode": []string{cfg.SSLMode}}.Encode()
	}
	return dsn.String()
}

func waitForDatabase(ctx context.Context, log logger.Logger, pool *pgxpool.Pool) error {
	var attempt uint64
	err := backoff_adapter.New(connectRetry).ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		log.Info("pinging database", logger.NewField("attempt", attempt))
		return pool.Ping(ctx)
	})
	if err != nil {
		log.Error("database unreachable",
			logger.NewField("attempts", attempt),
			logger.NewField("error", err),
		)
		return fmt.Errorf("ping database: %w", err)
	}

	log.Info("database connection established", logger.NewField("attempts", attempt))
	return nil
}

// retryableConnectError не повторяет попытки при неверных учетных данных или отсутствии базы.
func retryableConnectError(err error) bool {
	return !repository.IsPgErrorWithCode(err, repository.PgErrInvalidPassword) &&
		!repository.IsPgErrorWithCode(err, repository.PgErrInvalidCatalogName)
}
