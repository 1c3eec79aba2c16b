package navigation

import "dashboard/internal/entities"

const LoginPath = "/login"

type MenuItem struct {
	Label string
	Path  string
}

type Router struct {
	menus    map[entities.Role][]MenuItem
	landings map[entities.Role]string
}

func New() *Router {
	return &Router{
		menus: map[entities.Role][]MenuItem{
			entities.RoleSales: {
				{Label: "Siparişler", Path: "/sales/orders"},
				{Label: "Yeni Sipariş", Path: "/sales/orders/new"},
				{Label: "İstatistikler", Path: "/sales/stats"},
			},
			entities.RoleOperation: {
				{Label: "Siparişler", Path: "/operation/orders"},
				{Label: "İstatistikler", Path: "/operation/stats"},
			},
			entities.RoleFleet: {
				{Label: "Siparişler", Path: "/fleet/orders"},
				{Label: "Atamalarım", Path: "/fleet/my-orders"},
			},
			entities.RoleAdmin: {
				{Label: "Panel", Path: "/admin/dashboard"},
				{Label: "Siparişler", Path: "/admin/orders"},
				{Label: "Kullanıcılar", Path: "/admin/users"},
			},
		},
		landings: map[entities.Role]string{
			entities.RoleSales:     "/sales/orders",
			entities.RoleOperation: "/operation/orders",
			entities.RoleFleet:     "/fleet/orders",
			entities.RoleAdmin:     "/admin/dashboard",
		},
	}
}

// CanEdit: поля заказа редактируются только на стадии предложения и не флитом.
// Флит назначает ресурсы, но основные поля заказа не трогает.
func (r *Router) CanEdit(order entities.Order, user entities.User) bool {
	if !user.Authenticated() {
		return false
	}
	if order.Status != entities.OrderInitialStage {
		return false
	}
	switch user.Role {
	case entities.RoleSales, entities.RoleOperation, entities.RoleAdmin:
		return true
	default:
		return false
	}
}

// CanAssign - назначать ресурсы может флит (и админ).
func (r *Router) CanAssign(user entities.User) bool {
	if !user.Authenticated() {
		return false
	}
	return user.Role == entities.RoleFleet || user.Role == entities.RoleAdmin
}

func (r *Router) MenuFor(role entities.Role) []MenuItem {
	items := r.menus[role]
	out := make([]MenuItem, len(items))
	copy(out, items)
	return out
}

func (r *Router) LandingPathFor(role entities.Role) string {
	if path, ok := r.landings[role]; ok {
		return path
	}
	return LoginPath
}

// BackPathFor - куда уводить пользователя со страницы "не найдено" или "нет доступа".
func (r *Router) BackPathFor(user entities.User) string {
	if !user.Authenticated() {
		return LoginPath
	}
	return r.LandingPathFor(user.Role)
}

// ScopeFor возвращает рабочий набор заказов пользователя. mine сужает набор до
// назначенных на сотрудника флита и для других ролей игнорируется.
func (r *Router) ScopeFor(user entities.User, mine bool) entities.OrderScope {
	scope := entities.OrderScope{Role: user.Role}
	if mine && user.Role == entities.RoleFleet {
		scope.FleetPersonID = user.ID
	}
	return scope
}
