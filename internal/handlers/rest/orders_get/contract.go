//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=orders_get_test
package orders_get

import (
	"context"

	"dashboard/internal/entities"
	"dashboard/internal/service/reconciler"
	"dashboard/internal/service/status"
	"dashboard/pkg/logger"
)

type handlerLogger interface {
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
}

type Orders interface {
	View(ctx context.Context, scope entities.OrderScope, force bool) (reconciler.View, error)
}

type Navigator interface {
	ScopeFor(user entities.User, mine bool) entities.OrderScope
	BackPathFor(user entities.User) string
}

type Statuses interface {
	Resolve(s entities.OrderStatus) status.Descriptor
}
