package dto

// CreateCompanyRequest alta de empresa (onboarding, previo al registro de usuarios).
type CreateCompanyRequest struct {
	Name    string `json:"name"`
	NIT     string `json:"nit"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

// CompanyResponse empresa creada u obtenida.
type CompanyResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	NIT    string `json:"nit"`
	Status string `json:"status"`
}

// RegisterRequest registro de usuario en una empresa existente.
type RegisterRequest struct {
	CompanyID string `json:"company_id"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Name      string `json:"name"`
	RoleID    string `json:"role_id"`
}

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse token más el usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
