package reconciler

import (
	"dashboard/internal/entities"
	"dashboard/pkg/logger"
)

type NopObserver struct{}

func (NopObserver) OnAssigned(entities.OrderScope, string)                                        {}
func (NopObserver) OnConfirmed(entities.OrderScope, string)                                       {}
func (NopObserver) OnSuperseded(entities.OrderScope, string, entities.Selections, entities.Order) {}
func (NopObserver) OnRefreshing(entities.OrderScope, string, error)                               {}
func (NopObserver) OnReloadFailed(entities.OrderScope, error)                                     {}

// LogObserver пишет события сверки в лог сервиса.
type LogObserver struct {
	log serviceLogger
}

func NewLogObserver(log serviceLogger) *LogObserver {
	return &LogObserver{log: log}
}

func (o *LogObserver) OnAssigned(scope entities.OrderScope, orderID string) {
	o.log.Info("assignment applied to working set",
		logger.NewField("scope", scope.Key()),
		logger.NewField("order_id", orderID),
	)
}

func (o *LogObserver) OnConfirmed(scope entities.OrderScope, orderID string) {
	o.log.Info("order confirmed by backend",
		logger.NewField("scope", scope.Key()),
		logger.NewField("order_id", orderID),
	)
}

func (o *LogObserver) OnSuperseded(scope entities.OrderScope, orderID string, submitted entities.Selections, actual entities.Order) {
	o.log.Warn("assignment superseded by a later write",
		logger.NewField("scope", scope.Key()),
		logger.NewField("order_id", orderID),
		logger.NewField("vehicle_id", actual.Vehicle.ID),
		logger.NewField("driver_id", actual.Driver.ID),
		logger.NewField("trailer_id", actual.Trailer.ID),
	)
}

func (o *LogObserver) OnRefreshing(scope entities.OrderScope, orderID string, err error) {
	o.log.Warn("order refresh failed",
		logger.NewField("scope", scope.Key()),
		logger.NewField("order_id", orderID),
		logger.NewField("error", err),
	)
}

func (o *LogObserver) OnReloadFailed(scope entities.OrderScope, err error) {
	o.log.Error("working set is stale",
		logger.NewField("scope", scope.Key()),
		logger.NewField("error", err),
	)
}
