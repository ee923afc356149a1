package repository

import (
	"context"

	"github.com/opencomercio/gestion-api/internal/domain/entity"
)

// SupplierRepository puerto de persistencia para proveedores.
type SupplierRepository interface {
	Create(ctx context.Context, supplier *entity.Supplier) error
	GetByID(ctx context.Context, id string) (*entity.Supplier, error) // (nil, nil) si no existe
	ListByCompany(ctx context.Context, companyID string) ([]*entity.Supplier, error)
	Update(ctx context.Context, supplier *entity.Supplier) error
	Delete(ctx context.Context, id string) error
}
