package entities

import "time"

type Order struct {
	ID string

	Departure RouteEnd
	Arrival   RouteEnd
	Cargo     Cargo

	Price        float64
	CustomerID   string
	CustomerName string

	CreatedAt        time.Time
	LoadingDate      *time.Time
	Deadline         *time.Time
	EstimatedArrival *time.Time

	SalesPerson     PersonRef
	OperationPerson PersonRef
	FleetPerson     PersonRef
	CustomsPerson   PersonRef

	Vehicle ResourceRef
	Driver  ResourceRef
	Trailer ResourceRef

	Status OrderStatus
}

type RouteEnd struct {
	City         string
	Country      string
	Address      string
	District     string
	PostalCode   string
	ContactName  string
	ContactPhone string
	ContactEmail string
}

type Cargo struct {
	Type         string
	WeightKg     float64
	WidthM       float64
	LengthM      float64
	HeightM      float64
	Transferable bool
}

// PersonRef - назначенный сотрудник. Пустой ID значит никто не назначен.
type PersonRef struct {
	ID   string
	Name string
}

// ResourceRef - ссылка на единицу каталога (тягач, водитель, прицеп).
// Display приходит от бэкенда денормализованным (номер, ФИО), чтобы не делать join на чтении.
type ResourceRef struct {
	ID      string
	Display string
}

func (r ResourceRef) Assigned() bool {
	return r.ID != ""
}

type OrderStatus string

// Значения статусов приходят с бэкенда как есть, на турецком.
const (
	OrderOfferStage    OrderStatus = "teklif aşaması"
	OrderPending       OrderStatus = "beklemede"
	OrderOfferApproved OrderStatus = "onaylanan teklif"
	OrderProcessed     OrderStatus = "işlendi"
	OrderLoading       OrderStatus = "yüklemede"
	OrderInCustoms     OrderStatus = "gümrükte"
	OrderOnTheWay      OrderStatus = "yolda"
	OrderDelivered     OrderStatus = "teslim edildi"
	OrderCancelled     OrderStatus = "iptal edildi"
)

// OrderInitialStage - единственный статус, в котором разрешено редактирование полей заказа.
const OrderInitialStage = OrderOfferStage

func (s OrderStatus) String() string {
	return string(s)
}
