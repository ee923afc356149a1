package repository

import (
	"context"

	"github.com/opencomercio/gestion-api/internal/domain/entity"
)

// CustomerRepository puerto de persistencia para clientes.
// ListByCompany devuelve el conjunto completo con orden fijo por nombre:
// la búsqueda y la paginación son derivaciones en memoria del controlador
// de lista, nunca re-consultas.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id string) (*entity.Customer, error) // (nil, nil) si no existe
	ListByCompany(ctx context.Context, companyID string) ([]*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, id string) error
	SetActive(ctx context.Context, id string, active bool) error
}
