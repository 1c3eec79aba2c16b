package reconciler

import (
	"context"
	"sync"
	"time"

	"dashboard/internal/entities"
	"dashboard/pkg/logger"
)

// Registry лениво создает по одному Reconciler на область видимости и рассылает им
// уведомления о назначениях и инвалидациях.
type Registry struct {
	gateway        Gateway
	observer       Observer
	log            serviceLogger
	refreshTimeout time.Duration

	mu          sync.Mutex
	reconcilers map[string]*Reconciler
	closed      bool
}

func NewRegistry(log serviceLogger, gateway Gateway, observer Observer, refreshTimeout time.Duration) *Registry {
	return &Registry{
		gateway:        gateway,
		observer:       observer,
		log:            log,
		refreshTimeout: refreshTimeout,
		reconcilers:    map[string]*Reconciler{},
	}
}

func (r *Registry) For(scope entities.OrderScope) (*Reconciler, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil, ErrClosed
	}

	key := scope.Key()
	if rec, ok := r.reconcilers[key]; ok {
		return rec, nil
	}

	rec := New(scope, r.gateway, r.observer, r.refreshTimeout)
	r.reconcilers[key] = rec
	LoadedScopes.Set(float64(len(r.reconcilers)))

	r.log.Info("order working set created", logger.NewField("scope", key))
	return rec, nil
}

// Load отдает рабочий набор области, перечитывая его при первом обращении или по force.
func (r *Registry) Load(ctx context.Context, scope entities.OrderScope, force bool) (*Reconciler, error) {
	rec, err := r.For(scope)
	if err != nil {
		return nil, err
	}

	if force || !rec.Loaded() {
		if err := rec.Load(ctx); err != nil {
			return nil, err
		}
	}
	return rec, nil
}

// AssignmentSucceeded проводит обе фазы в исходной области, а остальные области,
// где есть этот заказ, только перечитывают его.
func (r *Registry) AssignmentSucceeded(origin entities.OrderScope, orderID string, sel entities.Selections, updated *entities.Order) {
	originRec, err := r.For(origin)
	if err != nil {
		return
	}

	originRec.AssignmentSucceeded(orderID, sel, updated)

	for _, rec := range r.snapshot() {
		if rec == originRec || !rec.Has(orderID) {
			continue
		}
		rec.Invalidate(orderID)
	}
}

// Invalidate перечитывает заказ во всех областях, где он есть. Возвращает число затронутых областей.
func (r *Registry) Invalidate(orderID string) int {
	touched := 0
	for _, rec := range r.snapshot() {
		if !rec.Has(orderID) {
			continue
		}
		rec.Invalidate(orderID)
		touched++
	}
	return touched
}

// Close закрывает все области и дожидается фоновых перечиток.
func (r *Registry) Close() {
	r.mu.Lock()
	r.closed = true
	recs := make([]*Reconciler, 0, len(r.reconcilers))
	for _, rec := range r.reconcilers {
		recs = append(recs, rec)
	}
	r.mu.Unlock()

	for _, rec := range recs {
		rec.Close()
	}
	for _, rec := range recs {
		rec.Wait()
	}
}

// Wait дожидается фоновых перечиток во всех областях, не закрывая их.
func (r *Registry) Wait() {
	for _, rec := range r.snapshot() {
		rec.Wait()
	}
}

func (r *Registry) snapshot() []*Reconciler {
	r.mu.Lock()
	defer r.mu.Unlock()

	recs := make([]*Reconciler, 0, len(r.reconcilers))
	for _, rec := range r.reconcilers {
		recs = append(recs, rec)
	}
	return recs
}
