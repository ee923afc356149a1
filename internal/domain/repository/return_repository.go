package repository

import (
	"context"

	"github.com/opencomercio/gestion-api/internal/domain/entity"
)

// ReturnWithInvoice devolución con los campos de factura y cliente resueltos
// por join. El join es solo para presentación, nunca para filtrar.
type ReturnWithInvoice struct {
	entity.Return
	InvoiceNumber string
	CustomerName  string
}

// ReturnRepository puerto de persistencia para devoluciones.
// ListByCompany devuelve el conjunto completo ordenado por fecha descendente.
type ReturnRepository interface {
	ListByCompany(ctx context.Context, companyID string) ([]*ReturnWithInvoice, error)
	GetByID(ctx context.Context, id string) (*ReturnWithInvoice, error) // (nil, nil) si no existe
	ListItems(ctx context.Context, returnID string) ([]*entity.ReturnItem, error)
	UpdateStatus(ctx context.Context, id, status string) error
}
