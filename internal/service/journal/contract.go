//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=journal_test
package journal

import (
	"context"
	"time"

	"dashboard/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, submission entities.Submission) (*entities.Submission, error)
	MarkSuperseded(ctx context.Context, orderID string) (int64, error)
	ListByOrder(ctx context.Context, orderID string, limit uint64) ([]entities.Submission, error)
	DeleteOlderThan(ctx context.Context, before time.Time) (int64, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
