package order_resources_get

import (
	"net/http"

	"dashboard/internal/entities"
	"dashboard/internal/generated/dto"
	"dashboard/internal/handlers/rest/response"
	"dashboard/internal/pkg/middlewares/actor"
	"dashboard/internal/service/navigation"
)

type Handler struct {
	log     handlerLogger
	catalog Catalog
}

func New(log handlerLogger, catalog Catalog) *Handler {
	return &Handler{
		log:     log,
		catalog: catalog,
	}
}

// ServeHTTP отвечает 200 даже при частичном отказе: упавший пул пустой и описан в failures.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !actor.FromContext(r.Context()).Authenticated() {
		response.PageError(w, h.log, http.StatusUnauthorized, "authentication required", navigation.LoginPath)
		return
	}

	pools := h.catalog.LoadPools(r.Context())

	response.JSON(w, h.log, http.StatusOK, toResponse(pools))
}

func toResponse(pools entities.Pools) dto.ResourcesResponse {
	res := dto.ResourcesResponse{
		Vehicles: make([]dto.Vehicle, 0, len(pools.Vehicles)),
		Drivers:  make([]dto.Driver, 0, len(pools.Drivers)),
		Trailers: make([]dto.Trailer, 0, len(pools.Trailers)),
		Failures: make([]dto.PoolFailure, 0, len(pools.Failures)),
	}

	for _, v := range pools.Vehicles {
		item := dto.Vehicle{
			Id:          v.ID,
			PlateNumber: v.PlateNumber,
			Brand:       optional(v.Brand),
			Model:       optional(v.Model),
		}
		if v.Year != 0 {
			year := v.Year
			item.Year = &year
		}
		res.Vehicles = append(res.Vehicles, item)
	}

	for _, d := range pools.Drivers {
		res.Drivers = append(res.Drivers, dto.Driver{
			Id:            d.ID,
			FullName:      d.FullName,
			Phone:         optional(d.Phone),
			LicenseNumber: optional(d.LicenseNumber),
		})
	}

	for _, t := range pools.Trailers {
		item := dto.Trailer{
			Id:          t.ID,
			PlateNumber: t.PlateNumber,
			Type:        optional(t.Type),
		}
		if t.CapacityKg != 0 {
			capacity := t.CapacityKg
			item.CapacityKg = &capacity
		}
		res.Trailers = append(res.Trailers, item)
	}

	for _, f := range pools.Failures {
		res.Failures = append(res.Failures, dto.PoolFailure{
			Pool:    f.Pool.String(),
			Message: f.Message,
		})
	}

	return res
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
