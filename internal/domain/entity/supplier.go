package entity

import "time"

// Supplier representa un proveedor con su información de contacto.
type Supplier struct {
	ID            string
	CompanyID     string
	Name          string
	ContactPerson string
	Email         string
	Phone         string
	Address       string
	City          string
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
