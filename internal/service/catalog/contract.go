//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=catalog_test
package catalog

import (
	"context"

	"dashboard/internal/entities"
	"dashboard/pkg/logger"
)

type serviceLogger interface {
	Warn(msg string, fields ...logger.Field)
}

type Gateway interface {
	GetVehicles(ctx context.Context) ([]entities.Vehicle, error)
	GetDrivers(ctx context.Context) ([]entities.Driver, error)
	GetTrailers(ctx context.Context) ([]entities.Trailer, error)
}
