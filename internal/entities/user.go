package entities

import "strings"

type Role string

const (
	RoleSales     Role = "sales"
	RoleOperation Role = "operation"
	RoleFleet     Role = "fleet"
	RoleAdmin     Role = "admin"
	RoleUnknown   Role = ""
)

func (r Role) String() string {
	return string(r)
}

// ParseRole приводит роль к каноническому виду, "operator" и "operation" - синонимы.
func ParseRole(raw string) Role {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "sales":
		return RoleSales
	case "operation", "operator":
		return RoleOperation
	case "fleet":
		return RoleFleet
	case "admin":
		return RoleAdmin
	default:
		return RoleUnknown
	}
}

// User - действующий пользователь, передается в сервисы явно аргументом.
type User struct {
	ID   string
	Role Role
}

func (u User) Authenticated() bool {
	return strings.TrimSpace(u.ID) != ""
}
