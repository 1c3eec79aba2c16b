package history

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"dashboard/internal/entities"
	"dashboard/internal/gateway/rest/backend"
)

// Ledger - read-only журнал назначений по заказу. Не кэшируется, читается при каждом открытии.
type Ledger struct {
	gateway Gateway
}

func New(gateway Gateway) *Ledger {
	return &Ledger{gateway: gateway}
}

// History возвращает записи от новых к старым. Отсутствие истории у заказа - пустой список, не ошибка.
func (l *Ledger) History(ctx context.Context, orderID string) ([]entities.HistoryEntry, error) {
	if strings.TrimSpace(orderID) == "" {
		return nil, ErrInvalidOrderID
	}

	entries, err := l.gateway.GetAssignmentHistory(ctx, orderID)
	if err != nil {
		if errors.Is(err, backend.ErrNotFound) {
			return []entities.HistoryEntry{}, nil
		}
		return nil, fmt.Errorf("history %s: %w", orderID, err)
	}

	out := make([]entities.HistoryEntry, len(entries))
	copy(out, entries)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].OccurredAt.After(out[j].OccurredAt)
	})

	return out, nil
}
