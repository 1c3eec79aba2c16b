package backend

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"dashboard/internal/entities"
)

// decodeList принимает и голый массив, и обертку {"data": [...]}.
func decodeList[T any](body []byte) ([]T, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return []T{}, nil
	}

	if trimmed[0] == '[' {
		items := []T{}
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, fmt.Errorf("decode list: %w", err)
		}
		return items, nil
	}

	var envelope responseEnvelope
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, fmt.Errorf("decode list envelope: %w", err)
	}

	data := bytes.TrimSpace(envelope.Data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return []T{}, nil
	}
	if data[0] != '[' {
		return nil, fmt.Errorf("decode list: data is not an array")
	}

	items := []T{}
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode list: %w", err)
	}
	return items, nil
}

// decodeObject принимает объект как есть или в обертках {"data": {...}} / {"order": {...}}.
// Возвращает false, если в ответе нет объекта с идентификатором.
func decodeObject[T any](body []byte) (*T, bool, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, false, nil
	}

	var envelope responseEnvelope
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, false, fmt.Errorf("decode object envelope: %w", err)
	}

	candidate := trimmed
	switch {
	case envelope.ID != nil && *envelope.ID != "":
	case isObject(envelope.Data):
		candidate = bytes.TrimSpace(envelope.Data)
	case isObject(envelope.Order):
		candidate = bytes.TrimSpace(envelope.Order)
	default:
		return nil, false, nil
	}

	var probe struct {
		ID flexID `json:"id"`
	}
	if err := json.Unmarshal(candidate, &probe); err != nil {
		return nil, false, fmt.Errorf("decode object: %w", err)
	}
	if probe.ID == "" {
		return nil, false, nil
	}

	var out T
	if err := json.Unmarshal(candidate, &out); err != nil {
		return nil, false, fmt.Errorf("decode object: %w", err)
	}
	return &out, true, nil
}

func isObject(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) > 0 && raw[0] == '{'
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

func toDomainOrders(dtos []orderDTO) []entities.Order {
	orders := make([]entities.Order, 0, len(dtos))
	for i := range dtos {
		if dtos[i].ID == "" {
			continue
		}
		orders = append(orders, toDomainOrder(&dtos[i]))
	}
	return orders
}

func toDomainOrder(dto *orderDTO) entities.Order {
	order := entities.Order{
		ID: string(dto.ID),
		Departure: entities.RouteEnd{
			City:         dto.DepartureCity,
			Country:      dto.DepartureCountry,
			Address:      dto.DepartureAddress,
			District:     dto.DepartureDistrict,
			PostalCode:   dto.DeparturePostalCode,
			ContactName:  dto.DepartureContactName,
			ContactPhone: dto.DepartureContactPhone,
			ContactEmail: dto.DepartureContactEmail,
		},
		Arrival: entities.RouteEnd{
			City:         dto.ArrivalCity,
			Country:      dto.ArrivalCountry,
			Address:      dto.ArrivalAddress,
			District:     dto.ArrivalDistrict,
			PostalCode:   dto.ArrivalPostalCode,
			ContactName:  dto.ArrivalContactName,
			ContactPhone: dto.ArrivalContactPhone,
			ContactEmail: dto.ArrivalContactEmail,
		},
		Cargo: entities.Cargo{
			Type:         dto.CargoType,
			WeightKg:     float64(dto.Weight),
			WidthM:       float64(dto.Width),
			LengthM:      float64(dto.Length),
			HeightM:      float64(dto.Height),
			Transferable: dto.IsTransferable,
		},
		Price:        float64(dto.Price),
		CustomerID:   string(dto.CustomerID),
		CustomerName: dto.CustomerName,

		CreatedAt:   dto.CreatedAt.Time,
		LoadingDate: dto.LoadingDate.ptr(),
		Deadline:    dto.DeadlineDate.ptr(),

		SalesPerson:     entities.PersonRef{ID: string(dto.SalesPersonID), Name: dto.SalesPersonName},
		OperationPerson: entities.PersonRef{ID: string(dto.OperationPersonID), Name: dto.OperationPersonName},
		FleetPerson:     entities.PersonRef{ID: string(dto.FleetPersonID), Name: dto.FleetPersonName},
		CustomsPerson:   entities.PersonRef{ID: string(dto.CustomsPersonID), Name: dto.CustomsPersonName},

		Vehicle: entities.ResourceRef{ID: string(dto.VehicleID), Display: firstNonEmpty(dto.PlateNumber, dto.VehiclePlate, dto.PlateNumberSnake)},
		Driver:  entities.ResourceRef{ID: string(dto.DriverID), Display: firstNonEmpty(dto.DriverName, dto.DriverNameSnake, dto.DriverFullName)},
		Trailer: entities.ResourceRef{ID: string(dto.TrailerID), Display: firstNonEmpty(dto.TrailerPlate, dto.TrailerPlateNumber, dto.TrailerPlateSnake)},

		Status: entities.OrderStatus(strings.TrimSpace(dto.Status)),
	}

	if order.Deadline == nil {
		order.Deadline = dto.Deadline.ptr()
	}
	order.EstimatedArrival = dto.EstimatedArrivalDate.ptr()
	if order.EstimatedArrival == nil {
		order.EstimatedArrival = dto.EstimatedDeliveryDate.ptr()
	}

	if c := dto.Customer; c != nil {
		if order.CustomerID == "" {
			order.CustomerID = string(c.ID)
		}
		order.CustomerName = firstNonEmpty(order.CustomerName, c.Name, c.FullName)
	}

	order.Vehicle = mergeNested(order.Vehicle, dto.Vehicle, func(n *namedRef) string { return n.PlateNumber })
	order.Driver = mergeNested(order.Driver, dto.Driver, func(n *namedRef) string { return firstNonEmpty(n.FullName, n.Name) })
	order.Trailer = mergeNested(order.Trailer, dto.Trailer, func(n *namedRef) string { return n.PlateNumber })

	return order
}

// mergeNested дополняет плоские поля заказа из вложенного объекта ресурса, если бэкенд прислал его.
func mergeNested(ref entities.ResourceRef, nested *namedRef, display func(*namedRef) string) entities.ResourceRef {
	if nested == nil {
		return ref
	}
	if ref.ID == "" {
		ref.ID = string(nested.ID)
	}
	if ref.Display == "" {
		ref.Display = display(nested)
	}
	return ref
}

func toDomainVehicles(dtos []vehicleDTO) []entities.Vehicle {
	vehicles := make([]entities.Vehicle, 0, len(dtos))
	for _, dto := range dtos {
		if dto.ID == "" {
			continue
		}
		year, _ := strconv.Atoi(string(dto.Year))
		vehicles = append(vehicles, entities.Vehicle{
			ID:          string(dto.ID),
			PlateNumber: firstNonEmpty(dto.PlateNumber, dto.Plate),
			Brand:       dto.Brand,
			Model:       dto.Model,
			Year:        year,
		})
	}
	return vehicles
}

func toDomainDrivers(dtos []driverDTO) []entities.Driver {
	drivers := make([]entities.Driver, 0, len(dtos))
	for _, dto := range dtos {
		if dto.ID == "" {
			continue
		}
		fullName := firstNonEmpty(dto.FullName, dto.Name)
		if fullName == "" {
			fullName = strings.TrimSpace(dto.FirstName + " " + dto.LastName)
		}
		drivers = append(drivers, entities.Driver{
			ID:            string(dto.ID),
			FullName:      fullName,
			Phone:         dto.Phone,
			LicenseNumber: dto.LicenseNumber,
		})
	}
	return drivers
}

func toDomainTrailers(dtos []trailerDTO) []entities.Trailer {
	trailers := make([]entities.Trailer, 0, len(dtos))
	for _, dto := range dtos {
		if dto.ID == "" {
			continue
		}
		trailers = append(trailers, entities.Trailer{
			ID:          string(dto.ID),
			PlateNumber: firstNonEmpty(dto.PlateNumber, dto.Plate),
			Type:        firstNonEmpty(dto.Type, dto.TrailerType),
			CapacityKg:  float64(dto.Capacity),
		})
	}
	return trailers
}

func toDomainHistory(dtos []historyDTO) []entities.HistoryEntry {
	entries := make([]entities.HistoryEntry, 0, len(dtos))
	for _, dto := range dtos {
		occurredAt := dto.Timestamp
		if !occurredAt.Valid {
			occurredAt = dto.CreatedAt
		}
		entries = append(entries, entities.HistoryEntry{
			ID:           string(dto.ID),
			Action:       dto.Action,
			ResourceName: dto.ResourceName,
			ActorName:    firstNonEmpty(dto.UserName, dto.PerformedBy),
			OccurredAt:   occurredAt.Time,
			OldValue:     dto.OldValue,
			NewValue:     dto.NewValue,
		})
	}
	return entries
}

func toAssignRequest(sel entities.Selections, actorID string) assignRequest {
	sel = sel.Normalized()
	return assignRequest{
		VehicleID: toWireID(sel.VehicleID),
		DriverID:  toWireID(sel.DriverID),
		TrailerID: toWireID(sel.TrailerID),
		UserID:    wireID(actorID),
	}
}

func toWireID(id *string) *wireID {
	if id == nil {
		return nil
	}
	w := wireID(*id)
	return &w
}
