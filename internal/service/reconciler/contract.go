//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=reconciler_test
package reconciler

import (
	"context"

	"dashboard/internal/entities"
	"dashboard/pkg/logger"
)

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
}

type Gateway interface {
	GetOrderByID(ctx context.Context, orderID string) (*entities.Order, error)
	GetOrders(ctx context.Context) ([]entities.Order, error)
	GetOrdersForFleet(ctx context.Context) ([]entities.Order, error)
	GetOrdersByFleetPersonID(ctx context.Context, personID string) ([]entities.Order, error)
}

// Observer получает события сверки. Вызовы идут из фоновых горутин и после Close прекращаются.
type Observer interface {
	OnAssigned(scope entities.OrderScope, orderID string)
	OnConfirmed(scope entities.OrderScope, orderID string)
	OnSuperseded(scope entities.OrderScope, orderID string, submitted entities.Selections, actual entities.Order)
	OnRefreshing(scope entities.OrderScope, orderID string, err error)
	OnReloadFailed(scope entities.OrderScope, err error)
}
