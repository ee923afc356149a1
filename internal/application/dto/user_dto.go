package dto

import "time"

// CreateUserRequest alta de usuario.
type CreateUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	RoleID   string `json:"role_id"`
}

// UserResponse fila de usuario para el listado.
type UserResponse struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	Name        string     `json:"name"`
	RoleID      string     `json:"role_id"`
	RoleName    string     `json:"role_name"`
	Active      bool       `json:"active"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	LastLogin   string     `json:"last_login,omitempty"` // forma corta para filas
}

// RoleResponse rol de la aplicación.
type RoleResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
