package response

import (
	"dashboard/internal/entities"
	"dashboard/internal/generated/dto"
	"dashboard/internal/service/status"
)

func StatusDescriptor(d status.Descriptor) dto.StatusDescriptor {
	return dto.StatusDescriptor{
		Status:   d.Status.String(),
		Label:    d.Label,
		Color:    d.Color,
		Icon:     d.Icon,
		Terminal: d.Terminal,
		Known:    d.Known,
	}
}

func StatusDescriptors(ds []status.Descriptor) []dto.StatusDescriptor {
	out := make([]dto.StatusDescriptor, 0, len(ds))
	for _, d := range ds {
		out = append(out, StatusDescriptor(d))
	}
	return out
}

func Order(o entities.Order, badge status.Descriptor) dto.Order {
	return dto.Order{
		Id:               o.ID,
		Status:           o.Status.String(),
		StatusBadge:      StatusDescriptor(badge),
		Departure:        routeEnd(o.Departure),
		Arrival:          routeEnd(o.Arrival),
		Cargo:            cargo(o.Cargo),
		Price:            o.Price,
		CustomerId:       o.CustomerID,
		CustomerName:     o.CustomerName,
		CreatedAt:        o.CreatedAt,
		LoadingDate:      o.LoadingDate,
		Deadline:         o.Deadline,
		EstimatedArrival: o.EstimatedArrival,
		SalesPerson:      personRef(o.SalesPerson),
		OperationPerson:  personRef(o.OperationPerson),
		FleetPerson:      personRef(o.FleetPerson),
		CustomsPerson:    personRef(o.CustomsPerson),
		Vehicle:          resourceRef(o.Vehicle),
		Driver:           resourceRef(o.Driver),
		Trailer:          resourceRef(o.Trailer),
	}
}

func routeEnd(r entities.RouteEnd) dto.RouteEnd {
	return dto.RouteEnd{
		City:         r.City,
		Country:      r.Country,
		Address:      r.Address,
		District:     optional(r.District),
		PostalCode:   optional(r.PostalCode),
		ContactName:  optional(r.ContactName),
		ContactPhone: optional(r.ContactPhone),
		ContactEmail: optional(r.ContactEmail),
	}
}

func cargo(c entities.Cargo) dto.Cargo {
	return dto.Cargo{
		Type:         c.Type,
		WeightKg:     c.WeightKg,
		WidthM:       c.WidthM,
		LengthM:      c.LengthM,
		HeightM:      c.HeightM,
		Transferable: c.Transferable,
	}
}

func personRef(p entities.PersonRef) dto.Ref {
	return dto.Ref{Id: p.ID, Name: p.Name}
}

func resourceRef(r entities.ResourceRef) dto.Ref {
	return dto.Ref{Id: r.ID, Name: r.Display}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
