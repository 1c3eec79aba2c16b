//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=ping_get_test
package ping_get

import (
	"dashboard/pkg/logger"
)

type handlerLogger interface {
	Error(msg string, fields ...logger.Field)
}
