package tx

import (
	"context"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/avito-tech/go-transaction-manager/trm/manager"
	"github.com/avito-tech/go-transaction-manager/trm/settings"
	"github.com/jackc/pgx/v5"
)

// Manager инкапсулирует логику управления транзакциями.
type Manager struct {
	internal *manager.Manager
	level    pgx.TxIsoLevel
}

// New создаёт менеджер транзакций c уровнем изоляции ReadCommitted.
// Журнал пишет одну строку на заказ и помечает предыдущие, сериализуемость тут не нужна.
func New(db pgxv5.Transactional) *Manager {
	return NewWithIsoLevel(db, pgx.ReadCommitted)
}

func NewWithIsoLevel(db pgxv5.Transactional, level pgx.TxIsoLevel) *Manager {
	return &Manager{
		internal: manager.Must(pgxv5.NewDefaultFactory(db)),
		level:    level,
	}
}

func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	txSettings := pgxv5.MustSettings(
		settings.Must(),
		pgxv5.WithTxOptions(pgx.TxOptions{IsoLevel: m.level}),
	)
	return m.internal.DoWithSettings(ctx, txSettings, fn)
}
