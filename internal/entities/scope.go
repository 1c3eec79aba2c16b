package entities

// OrderScope задает рабочий набор заказов: роль и, для флита, конкретного сотрудника.
type OrderScope struct {
	Role          Role
	FleetPersonID string
}

func (s OrderScope) Key() string {
	if s.FleetPersonID == "" {
		return s.Role.String()
	}
	return s.Role.String() + ":" + s.FleetPersonID
}
