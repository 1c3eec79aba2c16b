//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_get_test
package order_get

import (
	"context"

	"dashboard/internal/entities"
	"dashboard/internal/service/status"
	"dashboard/pkg/logger"
)

type handlerLogger interface {
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
}

type Gateway interface {
	GetOrderByID(ctx context.Context, orderID string) (*entities.Order, error)
}

type Navigator interface {
	CanEdit(order entities.Order, user entities.User) bool
	CanAssign(user entities.User) bool
	BackPathFor(user entities.User) string
}

type Statuses interface {
	Resolve(s entities.OrderStatus) status.Descriptor
}
