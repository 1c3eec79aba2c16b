package catalog

import (
	"context"

	"dashboard/internal/entities"
	"dashboard/pkg/logger"

	"golang.org/x/sync/errgroup"
)

// Accessor загружает три пула ресурсов параллельно. Ошибка одного пула не отменяет остальные:
// упавший пул становится пустым, а причина попадает в Pools.Failures.
type Accessor struct {
	gateway Gateway
	log     serviceLogger
}

func New(log serviceLogger, gateway Gateway) *Accessor {
	return &Accessor{
		gateway: gateway,
		log:     log,
	}
}

func (a *Accessor) LoadPools(ctx context.Context) entities.Pools {
	pools := entities.Pools{
		Vehicles: []entities.Vehicle{},
		Drivers:  []entities.Driver{},
		Trailers: []entities.Trailer{},
		Failures: []entities.PoolFailure{},
	}

	// индекс совпадает с порядком пулов, чтобы Failures не зависел от порядка завершения
	var failures [3]error

	var g errgroup.Group

	g.Go(func() error {
		vehicles, err := a.gateway.GetVehicles(ctx)
		if err != nil {
			failures[0] = err
			return nil
		}
		if vehicles != nil {
			pools.Vehicles = vehicles
		}
		return nil
	})

	g.Go(func() error {
		drivers, err := a.gateway.GetDrivers(ctx)
		if err != nil {
			failures[1] = err
			return nil
		}
		if drivers != nil {
			pools.Drivers = drivers
		}
		return nil
	})

	g.Go(func() error {
		trailers, err := a.gateway.GetTrailers(ctx)
		if err != nil {
			failures[2] = err
			return nil
		}
		if trailers != nil {
			pools.Trailers = trailers
		}
		return nil
	})

	_ = g.Wait()

	names := [3]entities.PoolName{entities.PoolVehicles, entities.PoolDrivers, entities.PoolTrailers}
	for i, err := range failures {
		if err == nil {
			continue
		}

		pools.Failures = append(pools.Failures, entities.PoolFailure{
			Pool:    names[i],
			Message: err.Error(),
		})

		a.log.Warn("resource pool unavailable, using empty pool",
			logger.NewField("pool", names[i].String()),
			logger.NewField("error", err),
		)
		PoolLoadFailuresTotal.WithLabelValues(names[i].String()).Inc()
	}

	return pools
}
