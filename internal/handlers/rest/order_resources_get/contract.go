//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_resources_get_test
package order_resources_get

import (
	"context"

	"dashboard/internal/entities"
	"dashboard/pkg/logger"
)

type handlerLogger interface {
	Error(msg string, fields ...logger.Field)
}

type Catalog interface {
	LoadPools(ctx context.Context) entities.Pools
}
