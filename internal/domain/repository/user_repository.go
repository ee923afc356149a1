package repository

import (
	"context"
	"time"

	"github.com/opencomercio/gestion-api/internal/domain/entity"
)

// UserRepository puerto de persistencia para usuarios de la aplicación.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error) // (nil, nil) si no existe
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByEmailAndCompany(ctx context.Context, email, companyID string) (*entity.User, error)
	ListByCompany(ctx context.Context, companyID string) ([]*entity.User, error) // orden por nombre, incluye RoleName
	Delete(ctx context.Context, id string) error
	SetLastLogin(ctx context.Context, id string, at time.Time) error
}

// RoleRepository puerto de lectura para roles.
type RoleRepository interface {
	List(ctx context.Context) ([]*entity.Role, error)
	GetByID(ctx context.Context, id string) (*entity.Role, error)
}
