package submission_cleanup

import (
	"context"

	"dashboard/pkg/logger"
)

//go:generate mockgen -source=contract.go -destination=contract_mocks_test.go -package=submission_cleanup_test

type taskLogger interface {
	Info(msg string, fields ...logger.Field)
}

type Journal interface {
	Cleanup(ctx context.Context) (int64, error)
}
