package entity

import "time"

// Tipos de identificación aceptados para clientes.
const (
	IdentificationCC  = "CC"  // cédula de ciudadanía
	IdentificationNIT = "NIT" // NIT empresarial
	IdentificationCE  = "CE"  // cédula de extranjería
)

// Customer representa un cliente de la empresa.
// IsActive implementa el borrado suave: un cliente con facturas asociadas
// nunca se elimina físicamente, solo se desactiva.
type Customer struct {
	ID                   string
	CompanyID            string
	Name                 string
	IdentificationType   string // CC, NIT, CE
	IdentificationNumber string
	Email                string
	Phone                string
	Address              string
	City                 string
	State                string
	IsActive             bool
	CreatedAt            time.Time
	UpdatedAt            time.Time
}
