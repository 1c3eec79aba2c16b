//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=history_test
package history

import (
	"context"

	"dashboard/internal/entities"
)

type Gateway interface {
	GetAssignmentHistory(ctx context.Context, orderID string) ([]entities.HistoryEntry, error)
}
