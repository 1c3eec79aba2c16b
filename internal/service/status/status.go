package status

import (
	"sort"

	"dashboard/internal/entities"
)

const (
	DefaultColor = "secondary"
	DefaultIcon  = "pi pi-question-circle"
)

type Descriptor struct {
	Status   entities.OrderStatus
	Label    string
	Color    string
	Icon     string
	Terminal bool
	Known    bool
}

type StatusCount struct {
	Descriptor Descriptor
	Count      int
}

// Registry - единая таблица статусов. Два исторических словаря (продажи и операции)
// выражены через представления ролей, а не через две таблицы с поиском по очереди.
type Registry struct {
	order       []entities.OrderStatus
	descriptors map[entities.OrderStatus]Descriptor
	canonical   map[entities.OrderStatus]entities.OrderStatus
	views       map[entities.Role][]entities.OrderStatus
}

func New() *Registry {
	table := []Descriptor{
		{Status: entities.OrderOfferStage, Label: "Teklif Aşaması", Color: "info", Icon: "pi pi-file-edit"},
		{Status: entities.OrderPending, Label: "Beklemede", Color: "info", Icon: "pi pi-clock"},
		{Status: entities.OrderOfferApproved, Label: "Onaylanan Teklif", Color: "success", Icon: "pi pi-check-circle"},
		{Status: entities.OrderProcessed, Label: "İşlendi", Color: "success", Icon: "pi pi-check-square"},
		{Status: entities.OrderLoading, Label: "Yüklemede", Color: "warning", Icon: "pi pi-box"},
		{Status: entities.OrderInCustoms, Label: "Gümrükte", Color: "warning", Icon: "pi pi-building"},
		{Status: entities.OrderOnTheWay, Label: "Yolda", Color: "contrast", Icon: "pi pi-truck"},
		{Status: entities.OrderDelivered, Label: "Teslim Edildi", Color: "success", Icon: "pi pi-flag", Terminal: true},
		{Status: entities.OrderCancelled, Label: "İptal Edildi", Color: "danger", Icon: "pi pi-times-circle", Terminal: true},
	}

	r := &Registry{
		order:       make([]entities.OrderStatus, 0, len(table)),
		descriptors: make(map[entities.OrderStatus]Descriptor, len(table)),
		canonical: map[entities.OrderStatus]entities.OrderStatus{
			entities.OrderPending:   entities.OrderOfferStage,
			entities.OrderProcessed: entities.OrderOfferApproved,
		},
	}
	for _, d := range table {
		d.Known = true
		r.order = append(r.order, d.Status)
		r.descriptors[d.Status] = d
	}

	shared := []entities.OrderStatus{
		entities.OrderOfferStage,
		entities.OrderOfferApproved,
		entities.OrderLoading,
		entities.OrderInCustoms,
		entities.OrderOnTheWay,
		entities.OrderDelivered,
		entities.OrderCancelled,
	}
	operation := []entities.OrderStatus{
		entities.OrderPending,
		entities.OrderProcessed,
		entities.OrderLoading,
		entities.OrderInCustoms,
		entities.OrderOnTheWay,
		entities.OrderDelivered,
		entities.OrderCancelled,
	}
	r.views = map[entities.Role][]entities.OrderStatus{
		entities.RoleSales:     shared,
		entities.RoleFleet:     shared,
		entities.RoleOperation: operation,
		entities.RoleAdmin:     r.order,
	}

	return r
}

// Resolve никогда не падает: неизвестный статус отображается как есть с нейтральными цветом и иконкой.
func (r *Registry) Resolve(s entities.OrderStatus) Descriptor {
	if d, ok := r.descriptors[s]; ok {
		return d
	}
	return Descriptor{
		Status: s,
		Label:  string(s),
		Color:  DefaultColor,
		Icon:   DefaultIcon,
	}
}

func (r *Registry) ViewFor(role entities.Role) []Descriptor {
	view := r.views[role]
	out := make([]Descriptor, 0, len(view))
	for _, s := range view {
		out = append(out, r.descriptors[s])
	}
	return out
}

func (r *Registry) Selectable(role entities.Role, s entities.OrderStatus) bool {
	for _, v := range r.views[role] {
		if v == s {
			return true
		}
	}
	return false
}

// Canonical сводит операторские синонимы к общему понятию.
func (r *Registry) Canonical(s entities.OrderStatus) entities.OrderStatus {
	if c, ok := r.canonical[s]; ok {
		return c
	}
	return s
}

// Tally считает заказы по каноническим статусам: сначала известные в порядке реестра,
// потом неизвестные по алфавиту.
func (r *Registry) Tally(orders []entities.Order) []StatusCount {
	counts := make(map[entities.OrderStatus]int)
	for _, o := range orders {
		counts[r.Canonical(o.Status)]++
	}

	out := make([]StatusCount, 0, len(counts))
	for _, s := range r.order {
		if n, ok := counts[s]; ok {
			out = append(out, StatusCount{Descriptor: r.descriptors[s], Count: n})
			delete(counts, s)
		}
	}

	unknown := make([]entities.OrderStatus, 0, len(counts))
	for s := range counts {
		unknown = append(unknown, s)
	}
	sort.Slice(unknown, func(i, j int) bool { return unknown[i] < unknown[j] })
	for _, s := range unknown {
		out = append(out, StatusCount{Descriptor: r.Resolve(s), Count: counts[s]})
	}

	return out
}
