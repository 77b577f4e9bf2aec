package models

// Roles as the backend stores them. The wire values are Portuguese because
// the backend predates this dashboard.
const (
	RoleAdmin  = "admin"
	RoleBroker = "corretor"
	RoleClient = "cliente"
)

type User struct {
	ID       int    `json:"id,omitempty"`
	Name     string `json:"nome"`
	Email    string `json:"email"`
	Password string `json:"senha,omitempty"`
	Role     string `json:"role"`
}

// Capabilities are the mutating controls a role is allowed to see. They hide
// buttons and short-circuit handlers, nothing more; real enforcement has to
// live in the backend.
type Capabilities struct {
	CanCreate bool
	CanEdit   bool
	CanDelete bool
}

func CapabilitiesFor(role string) Capabilities {
	return Capabilities{
		CanCreate: role == RoleAdmin || role == RoleBroker,
		CanEdit:   role == RoleAdmin || role == RoleBroker,
		CanDelete: role == RoleAdmin,
	}
}

func RoleLabel(role string) string {
	switch role {
	case RoleAdmin:
		return "Administrador"
	case RoleBroker:
		return "Corretor"
	case RoleClient:
		return "Cliente"
	}
	return role
}
