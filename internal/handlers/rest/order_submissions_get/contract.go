//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_submissions_get_test
package order_submissions_get

import (
	"context"

	"dashboard/internal/entities"
	"dashboard/pkg/logger"
)

type handlerLogger interface {
	Error(msg string, fields ...logger.Field)
}

type Journal interface {
	ListByOrder(ctx context.Context, orderID string) ([]entities.Submission, error)
}
