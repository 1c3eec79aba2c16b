//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=navigation_get_test
package navigation_get

import (
	"dashboard/internal/entities"
	"dashboard/internal/service/navigation"
	"dashboard/pkg/logger"
)

type handlerLogger interface {
	Error(msg string, fields ...logger.Field)
}

type Navigator interface {
	MenuFor(role entities.Role) []navigation.MenuItem
	LandingPathFor(role entities.Role) string
}
