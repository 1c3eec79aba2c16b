//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=healthcheck_head_test
package healthcheck_head

import (
	"context"

	"dashboard/pkg/logger"
)

type handlerLogger interface {
	Warn(msg string, fields ...logger.Field)
}

type Pinger interface {
	Ping(ctx context.Context) error
}
