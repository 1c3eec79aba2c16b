package reconciler

import (
	"context"
	"time"

	"dashboard/internal/entities"
)

// View - согласованный снимок рабочего набора для отдачи наружу.
type View struct {
	Scope    entities.OrderScope
	Orders   []entities.Order
	Notice   Notice
	LoadedAt time.Time
}

func (r *Reconciler) View() View {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := make([]entities.Order, len(r.orders))
	copy(orders, r.orders)

	return View{
		Scope:    r.scope,
		Orders:   orders,
		Notice:   r.notice,
		LoadedAt: r.loadedAt,
	}
}

// View загружает область при необходимости и возвращает ее снимок.
func (r *Registry) View(ctx context.Context, scope entities.OrderScope, force bool) (View, error) {
	rec, err := r.Load(ctx, scope, force)
	if err != nil {
		return View{}, err
	}
	return rec.View(), nil
}
