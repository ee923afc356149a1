package repository

import (
	"context"

	"github.com/opencomercio/gestion-api/internal/domain/entity"
)

// CompanyRepository puerto de persistencia para empresas (tenants).
type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) error
	GetByID(ctx context.Context, id string) (*entity.Company, error) // (nil, nil) si no existe
}
