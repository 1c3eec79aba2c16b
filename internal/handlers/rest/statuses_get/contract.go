//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=statuses_get_test
package statuses_get

import (
	"dashboard/internal/entities"
	"dashboard/internal/service/status"
	"dashboard/pkg/logger"
)

type handlerLogger interface {
	Error(msg string, fields ...logger.Field)
}

type Statuses interface {
	ViewFor(role entities.Role) []status.Descriptor
}
