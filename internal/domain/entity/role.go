package entity

// Nombres de rol conocidos (la tabla roles puede contener otros).
const (
	RoleAdmin     = "admin"
	RoleBodeguero = "bodeguero"
	RoleVendedor  = "vendedor"
)

// Role representa un rol de la aplicación, referenciado por id desde User.
type Role struct {
	ID          string
	Name        string
	Description string
}
