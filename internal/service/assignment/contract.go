//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=assignment_test
package assignment

import (
	"context"

	"dashboard/internal/entities"
	"dashboard/pkg/logger"
)

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
}

type Gateway interface {
	AssignFleetResources(ctx context.Context, requestID string, orderID string, sel entities.Selections, actorID string) (*entities.Order, error)
}

type Journal interface {
	Record(ctx context.Context, submission entities.Submission) (*entities.Submission, error)
}
