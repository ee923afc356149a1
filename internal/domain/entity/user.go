package entity

import "time"

// User representa un usuario del sistema (pertenece a una Company).
// La regla de autoprotección vive en el caso de uso: el usuario autenticado
// no puede eliminarse a sí mismo.
type User struct {
	ID           string
	CompanyID    string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	RoleID       string
	RoleName     string // resuelto por join, solo para presentación
	Active       bool
	LastLoginAt  *time.Time // nil = nunca ha iniciado sesión
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
