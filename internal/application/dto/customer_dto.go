package dto

import "github.com/opencomercio/gestion-api/pkg/format"

// CreateCustomerRequest alta o edición de cliente.
type CreateCustomerRequest struct {
	Name                 string `json:"name"`
	IdentificationType   string `json:"identification_type"`
	IdentificationNumber string `json:"identification_number"`
	Email                string `json:"email"`
	Phone                string `json:"phone"`
	Address              string `json:"address"`
	City                 string `json:"city"`
	State                string `json:"state"`
}

// CustomerResponse fila de cliente para el listado y el detalle.
type CustomerResponse struct {
	ID                   string             `json:"id"`
	Name                 string             `json:"name"`
	IdentificationType   string             `json:"identification_type"`
	IdentificationNumber string             `json:"identification_number"`
	Email                string             `json:"email"`
	Phone                string             `json:"phone"`
	Address              string             `json:"address"`
	City                 string             `json:"city"`
	State                string             `json:"state"`
	IsActive             bool               `json:"is_active"`
	StatusBadge          format.StatusBadge `json:"status_badge"`
}
