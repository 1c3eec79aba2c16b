//go:build integration

package integration_test

import (
	"context"
	"log"
	"sync"
	"testing"
	"time"

	"dashboard/internal/pkg/config"
	"dashboard/internal/pkg/migrations"
	"dashboard/internal/pkg/postgres"
	"dashboard/pkg/logger/zap_adapter"
	"dashboard/pkg/querier"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	dbName     = "dashboard"
	dbUser     = "dashboard"
	dbPassword = "dashboard"
)

var (
	poolInstance    *pgxpool.Pool
	querierInstance *querier.Querier
	suiteOnce       sync.Once
)

// start поднимает один контейнер на весь пакет тестов; контейнер убирает reaper testcontainers.
func start() {
	suiteOnce.Do(func() {
		ctx := context.Background()

		container, err := tcpostgres.Run(ctx,
			"postgres:16-alpine",
			tcpostgres.WithDatabase(dbName),
			tcpostgres.WithUsername(dbUser),
			tcpostgres.WithPassword(dbPassword),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(60*time.Second),
			),
		)
		if err != nil {
			log.Fatalf("failed to start postgres container: %v", err)
		}

		host, err := container.Host(ctx)
		if err != nil {
			log.Fatalf("failed to get container host: %v", err)
		}
		port, err := container.MappedPort(ctx, "5432/tcp")
		if err != nil {
			log.Fatalf("failed to get container port: %v", err)
		}

		zapLogger, err := zap_adapter.NewZapAdapter("error")
		if err != nil {
			log.Fatalf("failed to initialize logger: %v", err)
		}

		pool, err := postgres.NewConnPool(ctx, zapLogger, &config.Database{
			Host:     host,
			Port:     port.Port(),
			User:     dbUser,
			Password: dbPassword,
			DBName:   dbName,
			SSLMode:  "disable",
		})
		if err != nil {
			log.Fatalf("failed to connect to postgres: %v", err)
		}

		if err := migrations.Up(ctx, pool); err != nil {
			log.Fatalf("failed to apply migrations: %v", err)
		}

		poolInstance = pool
		querierInstance = querier.New(pool, pgxv5.DefaultCtxGetter)
	})
}

func GetQuerier() *querier.Querier {
	start()
	return querierInstance
}

// GetPool нужен тестам, которые собирают tx.Manager поверх того же пула.
func GetPool() *pgxpool.Pool {
	start()
	return poolInstance
}

func SetupDB(t *testing.T, setupSql string) {
	t.Helper()
	if setupSql == "" {
		start()
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, setupSql)
	require.NoError(t, err)
}

func TeardownDB(t *testing.T) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, `
		TRUNCATE TABLE assignment_submissions RESTART IDENTITY;
	`)
	require.NoError(t, err)
}
