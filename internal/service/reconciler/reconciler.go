package reconciler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"dashboard/internal/entities"
)

const DefaultRefreshTimeout = 10 * time.Second

// Reconciler держит рабочий набор заказов одной области видимости, ключ - id заказа.
// Записи заменяются только по id, дублей по id не бывает.
type Reconciler struct {
	scope          entities.OrderScope
	gateway        Gateway
	observer       Observer
	refreshTimeout time.Duration

	mu       sync.RWMutex
	orders   []entities.Order
	index    map[string]int
	loaded   bool
	loadedAt time.Time
	notice   Notice
	closed   bool

	// gen растет на каждом чтении и намерении. touched[id] - поколение самого свежего
	// чтения или назначения по заказу; ответ старше этого поколения не применяется.
	gen     uint64
	touched map[string]uint64

	lifetime context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
}

func New(
	scope entities.OrderScope,
	gateway Gateway,
	observer Observer,
	refreshTimeout time.Duration,
) *Reconciler {
	if observer == nil {
		observer = NopObserver{}
	}
	if refreshTimeout <= 0 {
		refreshTimeout = DefaultRefreshTimeout
	}

	lifetime, cancel := context.WithCancel(context.Background())

	return &Reconciler{
		scope:          scope,
		gateway:        gateway,
		observer:       observer,
		refreshTimeout: refreshTimeout,
		orders:         []entities.Order{},
		index:          map[string]int{},
		touched:        map[string]uint64{},
		lifetime:       lifetime,
		cancel:         cancel,
	}
}

func (r *Reconciler) Scope() entities.OrderScope {
	return r.scope
}

// Load полностью перечитывает рабочий набор. При ошибке прежний набор сохраняется.
func (r *Reconciler) Load(ctx context.Context) error {
	start := r.nextGen()

	orders, err := r.fetchList(ctx)
	if err != nil {
		return fmt.Errorf("reconciler %s, load: %w", r.scope.Key(), err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return ErrClosed
	}

	r.applyListLocked(orders, start)
	r.notice = NoticeNone
	return nil
}

func (r *Reconciler) Loaded() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.loaded
}

func (r *Reconciler) LoadedAt() time.Time {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.loadedAt
}

func (r *Reconciler) Orders() []entities.Order {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.Order, len(r.orders))
	copy(out, r.orders)
	return out
}

func (r *Reconciler) Get(orderID string) (entities.Order, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[orderID]
	if !ok {
		return entities.Order{}, false
	}
	return r.orders[i], true
}

func (r *Reconciler) Has(orderID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.index[orderID]
	return ok
}

func (r *Reconciler) Notice() Notice {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.notice
}

// AssignmentSucceeded - реакция на принятое бэкендом назначение.
// Фаза 1 синхронно правит кэш и уведомляет наблюдателя, фаза 2 в фоне перечитывает заказ.
func (r *Reconciler) AssignmentSucceeded(orderID string, sel entities.Selections, updated *entities.Order) {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}

	r.touchLocked(orderID)
	if updated != nil && updated.ID != "" {
		r.upsertLocked(*updated)
	} else if i, ok := r.index[orderID]; ok {
		r.orders[i] = mergeSelections(r.orders[i], sel)
	}
	r.mu.Unlock()

	r.observer.OnAssigned(r.scope, orderID)

	submitted := sel.Normalized()
	r.spawn(func() {
		r.refresh(orderID, &submitted)
	})
}

// Invalidate запускает только фоновую перечитку заказа.
func (r *Reconciler) Invalidate(orderID string) {
	r.spawn(func() {
		r.refresh(orderID, nil)
	})
}

// Close прекращает прием фоновых результатов. Поздние ответы отбрасываются.
func (r *Reconciler) Close() {
	r.mu.Lock()
	r.closed = true
	r.mu.Unlock()

	r.cancel()
}

// Wait блокируется, пока не завершатся запущенные фоновые перечитки.
func (r *Reconciler) Wait() {
	r.wg.Wait()
}

func (r *Reconciler) spawn(fn func()) {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.wg.Add(1)
	r.mu.Unlock()

	go func() {
		defer r.wg.Done()
		fn()
	}()
}

func (r *Reconciler) refresh(orderID string, submitted *entities.Selections) {
	gen, ok := r.touch(orderID)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.lifetime, r.refreshTimeout)
	defer cancel()

	order, err := r.gateway.GetOrderByID(ctx, orderID)
	if err == nil && order != nil {
		if !r.replaceIfCurrent(orderID, *order, gen) {
			return
		}

		RefreshOutcomesTotal.WithLabelValues("confirmed").Inc()
		r.observer.OnConfirmed(r.scope, orderID)

		if submitted != nil && !matchesSelections(*order, *submitted) {
			RefreshOutcomesTotal.WithLabelValues("superseded").Inc()
			r.observer.OnSuperseded(r.scope, orderID, *submitted, *order)
		}
		return
	}
	if err == nil {
		err = fmt.Errorf("order %s: empty response", orderID)
	}

	if r.isClosed() {
		return
	}

	r.setNotice(NoticeRefreshing)
	r.observer.OnRefreshing(r.scope, orderID, err)

	reloadStart := r.nextGen()
	reloadCtx, reloadCancel := context.WithTimeout(r.lifetime, r.refreshTimeout)
	defer reloadCancel()

	orders, err := r.fetchList(reloadCtx)
	if err != nil {
		if r.isClosed() {
			return
		}

		RefreshOutcomesTotal.WithLabelValues("stale").Inc()
		r.setNotice(NoticeStale)
		r.observer.OnReloadFailed(r.scope, err)
		return
	}

	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.applyListLocked(orders, reloadStart)
	r.notice = NoticeNone
	r.mu.Unlock()

	RefreshOutcomesTotal.WithLabelValues("reloaded").Inc()
}

func (r *Reconciler) fetchList(ctx context.Context) ([]entities.Order, error) {
	switch {
	case r.scope.Role == entities.RoleFleet && r.scope.FleetPersonID != "":
		return r.gateway.GetOrdersByFleetPersonID(ctx, r.scope.FleetPersonID)
	case r.scope.Role == entities.RoleFleet:
		return r.gateway.GetOrdersForFleet(ctx)
	default:
		return r.gateway.GetOrders(ctx)
	}
}

func (r *Reconciler) nextGen() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.gen++
	return r.gen
}

// touch отмечает начало чтения заказа и возвращает его поколение.
func (r *Reconciler) touch(orderID string) (uint64, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return 0, false
	}
	return r.touchLocked(orderID), true
}

func (r *Reconciler) touchLocked(orderID string) uint64 {
	r.gen++
	r.touched[orderID] = r.gen
	return r.gen
}

// replaceIfCurrent применяет перечитанный заказ, только если после начала чтения
// по нему не было нового назначения, перечитки или более позднего списка.
func (r *Reconciler) replaceIfCurrent(orderID string, order entities.Order, gen uint64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return false
	}
	if r.touched[orderID] != gen {
		RefreshOutcomesTotal.WithLabelValues("outdated").Inc()
		return false
	}
	r.upsertLocked(order)
	return true
}

func (r *Reconciler) isClosed() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.closed
}

func (r *Reconciler) setNotice(n Notice) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.closed {
		r.notice = n
	}
}

func (r *Reconciler) upsertLocked(order entities.Order) {
	if i, ok := r.index[order.ID]; ok {
		r.orders[i] = order
		return
	}
	r.index[order.ID] = len(r.orders)
	r.orders = append(r.orders, order)
}

// applyListLocked заменяет набор списком, чтение которого началось в поколении start.
// Порядок ответа бэкенда сохраняется, повторный id заменяет ранее встреченную запись.
// Заказы, тронутые после start, остаются в текущем виде: список для них устарел.
func (r *Reconciler) applyListLocked(orders []entities.Order, start uint64) {
	prevOrders, prevIndex := r.orders, r.index

	r.orders = make([]entities.Order, 0, len(orders))
	r.index = make(map[string]int, len(orders))
	touched := make(map[string]uint64, len(orders))

	newer := func(id string) bool {
		return r.touched[id] > start
	}

	for _, o := range orders {
		if o.ID == "" {
			continue
		}
		if newer(o.ID) {
			if i, ok := prevIndex[o.ID]; ok {
				o = prevOrders[i]
			}
			touched[o.ID] = r.touched[o.ID]
		} else {
			touched[o.ID] = start
		}
		r.upsertLocked(o)
	}

	for _, prev := range prevOrders {
		if _, ok := r.index[prev.ID]; !ok && newer(prev.ID) {
			r.upsertLocked(prev)
		}
	}
	for id, gen := range r.touched {
		if gen > start {
			touched[id] = gen
		}
	}

	r.touched = touched
	r.loaded = true
	r.loadedAt = time.Now().UTC()
}

// mergeSelections переносит выбранные id в закэшированный заказ. Подписи неизвестны до перечитки.
func mergeSelections(order entities.Order, sel entities.Selections) entities.Order {
	sel = sel.Normalized()
	if sel.VehicleID != nil && *sel.VehicleID != order.Vehicle.ID {
		order.Vehicle = entities.ResourceRef{ID: *sel.VehicleID}
	}
	if sel.DriverID != nil && *sel.DriverID != order.Driver.ID {
		order.Driver = entities.ResourceRef{ID: *sel.DriverID}
	}
	if sel.TrailerID != nil && *sel.TrailerID != order.Trailer.ID {
		order.Trailer = entities.ResourceRef{ID: *sel.TrailerID}
	}
	return order
}

func matchesSelections(order entities.Order, sel entities.Selections) bool {
	if sel.VehicleID != nil && *sel.VehicleID != order.Vehicle.ID {
		return false
	}
	if sel.DriverID != nil && *sel.DriverID != order.Driver.ID {
		return false
	}
	if sel.TrailerID != nil && *sel.TrailerID != order.Trailer.ID {
		return false
	}
	return true
}
