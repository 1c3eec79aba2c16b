//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_assignment_post_test
package order_assignment_post

import (
	"context"

	"dashboard/internal/entities"
	"dashboard/internal/service/assignment"
	"dashboard/internal/service/status"
	"dashboard/pkg/logger"
)

type handlerLogger interface {
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
}

type Engine interface {
	Assign(ctx context.Context, orderID string, sel entities.Selections, actorID string) (*assignment.Result, error)
}

// Registry получает подтвержденное назначение и сверяет рабочие наборы заказов.
type Registry interface {
	AssignmentSucceeded(origin entities.OrderScope, orderID string, sel entities.Selections, updated *entities.Order)
}

type Navigator interface {
	ScopeFor(user entities.User, mine bool) entities.OrderScope
	CanAssign(user entities.User) bool
	BackPathFor(user entities.User) string
}

type Statuses interface {
	Resolve(s entities.OrderStatus) status.Descriptor
}
