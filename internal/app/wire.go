//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"net/http"
	"time"

	"dashboard/internal/gateway/rest/backend"
	"dashboard/internal/handlers/tasks/submission_cleanup"
	"dashboard/internal/pkg/config"
	submissionRepo "dashboard/internal/repository/submission"
	"dashboard/internal/service/assignment"
	"dashboard/internal/service/catalog"
	"dashboard/internal/service/history"
	"dashboard/internal/service/journal"
	"dashboard/internal/service/navigation"
	"dashboard/internal/service/reconciler"
	"dashboard/internal/service/status"
	"dashboard/pkg/background"
	"dashboard/pkg/logger"
	"dashboard/pkg/querier"
	"dashboard/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

// InitializeApplication собирает граф зависимостей HTTP сервиса (cmd/dashboard).
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideSubmissionRepository,

		provideHTTPClient,
		provideBackendGateway,

		provideJournal,
		provideCatalog,
		provideEngine,
		provideRegistry,
		history.New,
		status.New,
		navigation.New,

		provideCleanupInterval,
		provideSubmissionCleanupTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(journal.Repository), new(*submissionRepo.Repository)),
		wire.Bind(new(journal.TxManager), new(*tx.Manager)),

		wire.Bind(new(catalog.Gateway), new(*backend.Gateway)),
		wire.Bind(new(assignment.Gateway), new(*backend.Gateway)),
		wire.Bind(new(assignment.Journal), new(*journal.Journal)),
		wire.Bind(new(reconciler.Gateway), new(*backend.Gateway)),
		wire.Bind(new(history.Gateway), new(*backend.Gateway)),

		wire.Bind(new(submission_cleanup.Journal), new(*journal.Journal)),
	)
	return &Application{}, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideSubmissionRepository(querier *querier.Querier) *submissionRepo.Repository {
	return submissionRepo.New(querier)
}

func provideHTTPClient(cfg *config.Config) *http.Client {
	return &http.Client{Timeout: cfg.Backend.RequestTimeout}
}

func provideBackendGateway(cfg *config.Config, client *http.Client) *backend.Gateway {
	return backend.New(backend.Config{
		BaseURL: cfg.Backend.BaseURL,
		Token:   cfg.Backend.Token,
	}, client)
}

func provideJournal(repository journal.Repository, txManager journal.TxManager, cfg *config.Config) *journal.Journal {
	return journal.New(repository, txManager, cfg.Journal.Retention)
}

func provideCatalog(log logger.Logger, gateway catalog.Gateway) *catalog.Accessor {
	return catalog.New(log, gateway)
}

func provideEngine(log logger.Logger, gateway assignment.Gateway, journal assignment.Journal) *assignment.Engine {
	return assignment.New(log, gateway, journal, assignment.DefaultSubmitTimeout)
}

func provideRegistry(log logger.Logger, gateway reconciler.Gateway, cfg *config.Config) *reconciler.Registry {
	return reconciler.NewRegistry(log, gateway, reconciler.NewLogObserver(log), cfg.Reconciler.RefreshTimeout)
}

func provideCleanupInterval(cfg *config.Config) CleanupInterval {
	return CleanupInterval(cfg.Tasks.JournalCleanupInterval)
}

func provideSubmissionCleanupTask(
	log logger.Logger,
	journal submission_cleanup.Journal,
	interval CleanupInterval,
) *submission_cleanup.SubmissionCleanup {
	return submission_cleanup.New(log, journal, time.Duration(interval))
}

func provideTaskList(cleanupTask *submission_cleanup.SubmissionCleanup) []background.Task {
	return []background.Task{
		cleanupTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
