//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=status_get_test
package status_get

import (
	"dashboard/internal/entities"
	"dashboard/internal/service/status"
	"dashboard/pkg/logger"
)

type handlerLogger interface {
	Error(msg string, fields ...logger.Field)
}

type Statuses interface {
	Resolve(s entities.OrderStatus) status.Descriptor
}
