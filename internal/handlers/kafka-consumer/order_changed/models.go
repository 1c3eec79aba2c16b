package order_changed

type changedEvent struct {
	OrderID string `json:"order_id"`
	Event   string `json:"event"`
}
