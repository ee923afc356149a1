package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/opencomercio/gestion-api/internal/application/dto"
	"github.com/opencomercio/gestion-api/internal/application/listview"
	"github.com/opencomercio/gestion-api/internal/domain"
	"github.com/opencomercio/gestion-api/internal/domain/entity"
	"github.com/opencomercio/gestion-api/internal/domain/repository"
	"github.com/opencomercio/gestion-api/pkg/format"
)

const userPageSize = 10

// UserUseCase listado y administración de usuarios de la aplicación.
// Regla de autoprotección: el usuario autenticado no puede eliminarse a sí mismo.
type UserUseCase struct {
	users    repository.UserRepository
	roles    repository.RoleRepository
	notifier listview.Notifier
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(users repository.UserRepository, roles repository.RoleRepository, notifier listview.Notifier) *UserUseCase {
	return &UserUseCase{users: users, roles: roles, notifier: notifier}
}

func (uc *UserUseCase) controller(companyID string) *listview.Controller[*dto.UserResponse] {
	return listview.New(listview.Config[*dto.UserResponse]{
		PageSize: userPageSize,
		SearchFields: func(u *dto.UserResponse) []string {
			return []string{u.Name, u.Email, u.RoleName}
		},
		Status: func(u *dto.UserResponse) string {
			if u.Active {
				return "active"
			}
			return "inactive"
		},
		Fetch: func(ctx context.Context) ([]*dto.UserResponse, error) {
			list, err := uc.users.ListByCompany(ctx, companyID)
			if err != nil {
				return nil, err
			}
			out := make([]*dto.UserResponse, 0, len(list))
			for _, u := range list {
				out = append(out, toUserResponse(u))
			}
			return out, nil
		},
	}, uc.notifier)
}

// List carga los usuarios de la empresa y deriva el subconjunto visible.
func (uc *UserUseCase) List(ctx context.Context, companyID string, q dto.ListQuery) (listview.Page[*dto.UserResponse], error) {
	q.Normalize()
	ctrl := uc.controller(companyID)
	if err := ctrl.Load(ctx); err != nil {
		return listview.Page[*dto.UserResponse]{}, err
	}
	ctrl.SetSearchTerm(q.Search)
	ctrl.SetStatusFilter(q.Status)
	ctrl.SetPage(q.Page)
	return ctrl.Visible(), nil
}

// Create crea un usuario activo con password hasheado.
func (uc *UserUseCase) Create(ctx context.Context, companyID string, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if in.Email == "" || in.Password == "" || in.RoleID == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.users.GetByEmailAndCompany(ctx, in.Email, companyID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	role, err := uc.roles.GetByID(ctx, in.RoleID)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, domain.ErrNotFound
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	name := in.Name
	if name == "" {
		name = in.Email
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		CompanyID:    companyID,
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         name,
		RoleID:       role.ID,
		RoleName:     role.Name,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Delete elimina un usuario. Guardas: confirmación previa, autoprotección
// (actorID == targetID se rechaza localmente) y pertenencia a la empresa.
func (uc *UserUseCase) Delete(ctx context.Context, companyID, actorID, targetID string, confirmed bool) error {
	ctrl := uc.controller(companyID)
	if err := ctrl.Load(ctx); err != nil {
		return err
	}
	return ctrl.Mutate(ctx, confirmed,
		func(ctx context.Context) error {
			if actorID == targetID {
				return domain.ErrSelfAction
			}
			target, err := uc.users.GetByID(ctx, targetID)
			if err != nil {
				return err
			}
			if target == nil || target.CompanyID != companyID {
				return domain.ErrUserNotFound
			}
			return nil
		},
		func(ctx context.Context) error {
			return uc.users.Delete(ctx, targetID)
		},
	)
}

// Roles lista los roles disponibles.
func (uc *UserUseCase) Roles(ctx context.Context) ([]*dto.RoleResponse, error) {
	list, err := uc.roles.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.RoleResponse, 0, len(list))
	for _, r := range list {
		out = append(out, &dto.RoleResponse{ID: r.ID, Name: r.Name, Description: r.Description})
	}
	return out, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	resp := &dto.UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		Name:        u.Name,
		RoleID:      u.RoleID,
		RoleName:    u.RoleName,
		Active:      u.Active,
		LastLoginAt: u.LastLoginAt,
	}
	if u.LastLoginAt != nil {
		resp.LastLogin = format.ShortDate(*u.LastLoginAt)
	}
	return resp
}
