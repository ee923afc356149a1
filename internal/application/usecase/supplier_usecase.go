package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/opencomercio/gestion-api/internal/application/detailview"
	"github.com/opencomercio/gestion-api/internal/application/dto"
	"github.com/opencomercio/gestion-api/internal/application/listview"
	"github.com/opencomercio/gestion-api/internal/domain"
	"github.com/opencomercio/gestion-api/internal/domain/entity"
	"github.com/opencomercio/gestion-api/internal/domain/repository"
)

const supplierPageSize = 10

// SupplierUseCase listado, detalle y mutaciones de proveedores.
type SupplierUseCase struct {
	suppliers repository.SupplierRepository
	notifier  listview.Notifier
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(suppliers repository.SupplierRepository, notifier listview.Notifier) *SupplierUseCase {
	return &SupplierUseCase{suppliers: suppliers, notifier: notifier}
}

func (uc *SupplierUseCase) controller(companyID string) *listview.Controller[*dto.SupplierResponse] {
	return listview.New(listview.Config[*dto.SupplierResponse]{
		PageSize: supplierPageSize,
		SearchFields: func(s *dto.SupplierResponse) []string {
			return []string{s.Name, s.ContactPerson, s.Email, s.Phone, s.City}
		},
		Fetch: func(ctx context.Context) ([]*dto.SupplierResponse, error) {
			list, err := uc.suppliers.ListByCompany(ctx, companyID)
			if err != nil {
				return nil, err
			}
			out := make([]*dto.SupplierResponse, 0, len(list))
			for _, s := range list {
				out = append(out, toSupplierResponse(s))
			}
			return out, nil
		},
	}, uc.notifier)
}

// List carga los proveedores y deriva el subconjunto visible.
// La vista de proveedores no tiene filtro de estado.
func (uc *SupplierUseCase) List(ctx context.Context, companyID string, q dto.ListQuery) (listview.Page[*dto.SupplierResponse], error) {
	q.Normalize()
	ctrl := uc.controller(companyID)
	if err := ctrl.Load(ctx); err != nil {
		return listview.Page[*dto.SupplierResponse]{}, err
	}
	ctrl.SetSearchTerm(q.Search)
	ctrl.SetPage(q.Page)
	return ctrl.Visible(), nil
}

// Detail carga el proveedor. No-encontrado se responde inline (contrato
// unificado, modo elegido por configuración de esta vista), sin colección hija.
func (uc *SupplierUseCase) Detail(ctx context.Context, companyID, id string) (*dto.SupplierResponse, error) {
	view := detailview.New(detailview.Config[entity.Supplier, struct{}]{
		NotFound: detailview.NotFoundInline,
		FetchPrimary: func(ctx context.Context, id string) (*entity.Supplier, error) {
			s, err := uc.suppliers.GetByID(ctx, id)
			if err != nil {
				return nil, err
			}
			if s == nil || s.CompanyID != companyID {
				return nil, nil
			}
			return s, nil
		},
	})
	if err := view.Load(ctx, id); err != nil {
		return nil, err
	}
	return toSupplierResponse(view.Entity), nil
}

// Create registra un proveedor nuevo.
func (uc *SupplierUseCase) Create(ctx context.Context, companyID string, in dto.SaveSupplierRequest) (*dto.SupplierResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	supplier := &entity.Supplier{
		ID:            uuid.New().String(),
		CompanyID:     companyID,
		Name:          in.Name,
		ContactPerson: in.ContactPerson,
		Email:         in.Email,
		Phone:         in.Phone,
		Address:       in.Address,
		City:          in.City,
		Notes:         in.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.suppliers.Create(ctx, supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// Update edita el agregado de contacto del proveedor.
func (uc *SupplierUseCase) Update(ctx context.Context, companyID, id string, in dto.SaveSupplierRequest) (*dto.SupplierResponse, error) {
	supplier, err := uc.suppliers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if supplier == nil || supplier.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	supplier.Name = in.Name
	supplier.ContactPerson = in.ContactPerson
	supplier.Email = in.Email
	supplier.Phone = in.Phone
	supplier.Address = in.Address
	supplier.City = in.City
	supplier.Notes = in.Notes
	supplier.UpdatedAt = time.Now()
	if err := uc.suppliers.Update(ctx, supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// Delete elimina un proveedor previa confirmación.
func (uc *SupplierUseCase) Delete(ctx context.Context, companyID, id string, confirmed bool) error {
	ctrl := uc.controller(companyID)
	if err := ctrl.Load(ctx); err != nil {
		return err
	}
	return ctrl.Mutate(ctx, confirmed,
		func(ctx context.Context) error {
			supplier, err := uc.suppliers.GetByID(ctx, id)
			if err != nil {
				return err
			}
			if supplier == nil || supplier.CompanyID != companyID {
				return domain.ErrNotFound
			}
			return nil
		},
		func(ctx context.Context) error {
			return uc.suppliers.Delete(ctx, id)
		},
	)
}

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	return &dto.SupplierResponse{
		ID:            s.ID,
		Name:          s.Name,
		ContactPerson: s.ContactPerson,
		Email:         s.Email,
		Phone:         s.Phone,
		Address:       s.Address,
		City:          s.City,
		Notes:         s.Notes,
	}
}
