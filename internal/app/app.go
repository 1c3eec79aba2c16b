package app

import (
	"time"

	"dashboard/internal/gateway/rest/backend"
	"dashboard/internal/service/assignment"
	"dashboard/internal/service/catalog"
	"dashboard/internal/service/history"
	"dashboard/internal/service/journal"
	"dashboard/internal/service/navigation"
	"dashboard/internal/service/reconciler"
	"dashboard/internal/service/status"
	"dashboard/pkg/background"
)

type (
	CleanupInterval time.Duration
)

type Application struct {
	Gateway           *backend.Gateway
	Catalog           *catalog.Accessor
	Engine            *assignment.Engine
	Journal           *journal.Journal
	Registry          *reconciler.Registry
	Ledger            *history.Ledger
	Statuses          *status.Registry
	Navigator         *navigation.Router
	BackgroundWorkers *background.Worker
}
