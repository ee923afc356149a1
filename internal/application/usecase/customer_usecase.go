package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/opencomercio/gestion-api/internal/application/dto"
	"github.com/opencomercio/gestion-api/internal/application/listview"
	"github.com/opencomercio/gestion-api/internal/domain"
	"github.com/opencomercio/gestion-api/internal/domain/entity"
	"github.com/opencomercio/gestion-api/internal/domain/repository"
	"github.com/opencomercio/gestion-api/pkg/format"
)

const customerPageSize = 10

// CustomerUseCase vista de lista de clientes: búsqueda, paginación y
// mutaciones con guarda de integridad (un cliente con facturas asociadas
// nunca se elimina físicamente, solo se desactiva).
type CustomerUseCase struct {
	customers repository.CustomerRepository
	invoices  repository.InvoiceRepository
	notifier  listview.Notifier
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(customers repository.CustomerRepository, invoices repository.InvoiceRepository, notifier listview.Notifier) *CustomerUseCase {
	return &CustomerUseCase{customers: customers, invoices: invoices, notifier: notifier}
}

// controller monta el controlador de lista para la empresa. Campos de
// búsqueda: nombre, número de identificación, email y teléfono.
func (uc *CustomerUseCase) controller(companyID string) *listview.Controller[*dto.CustomerResponse] {
	return listview.New(listview.Config[*dto.CustomerResponse]{
		PageSize: customerPageSize,
		SearchFields: func(c *dto.CustomerResponse) []string {
			return []string{c.Name, c.IdentificationNumber, c.Email, c.Phone}
		},
		Status: func(c *dto.CustomerResponse) string {
			if c.IsActive {
				return "active"
			}
			return "inactive"
		},
		Fetch: func(ctx context.Context) ([]*dto.CustomerResponse, error) {
			list, err := uc.customers.ListByCompany(ctx, companyID)
			if err != nil {
				return nil, err
			}
			out := make([]*dto.CustomerResponse, 0, len(list))
			for _, c := range list {
				out = append(out, toCustomerResponse(c))
			}
			return out, nil
		},
	}, uc.notifier)
}

// List carga el conjunto completo y deriva el subconjunto visible.
func (uc *CustomerUseCase) List(ctx context.Context, companyID string, q dto.ListQuery) (listview.Page[*dto.CustomerResponse], error) {
	q.Normalize()
	ctrl := uc.controller(companyID)
	if err := ctrl.Load(ctx); err != nil {
		return listview.Page[*dto.CustomerResponse]{}, err
	}
	ctrl.SetSearchTerm(q.Search)
	ctrl.SetStatusFilter(q.Status)
	ctrl.SetPage(q.Page)
	return ctrl.Visible(), nil
}

// GetByID obtiene un cliente puntual.
func (uc *CustomerUseCase) GetByID(ctx context.Context, companyID, id string) (*dto.CustomerResponse, error) {
	c, err := uc.customers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil || c.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	return toCustomerResponse(c), nil
}

// Create crea un nuevo cliente activo.
func (uc *CustomerUseCase) Create(ctx context.Context, companyID string, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.Name == "" || in.IdentificationNumber == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.IdentificationType == "" {
		in.IdentificationType = entity.IdentificationCC
	}
	now := time.Now()
	customer := &entity.Customer{
		ID:                   uuid.New().String(),
		CompanyID:            companyID,
		Name:                 in.Name,
		IdentificationType:   in.IdentificationType,
		IdentificationNumber: in.IdentificationNumber,
		Email:                in.Email,
		Phone:                in.Phone,
		Address:              in.Address,
		City:                 in.City,
		State:                in.State,
		IsActive:             true,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	if err := uc.customers.Create(ctx, customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// Update edita los campos de identidad y contacto de un cliente existente.
func (uc *CustomerUseCase) Update(ctx context.Context, companyID, id string, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := uc.customers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil || customer.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	if in.Name == "" || in.IdentificationNumber == "" {
		return nil, domain.ErrInvalidInput
	}
	customer.Name = in.Name
	customer.IdentificationType = in.IdentificationType
	customer.IdentificationNumber = in.IdentificationNumber
	customer.Email = in.Email
	customer.Phone = in.Phone
	customer.Address = in.Address
	customer.City = in.City
	customer.State = in.State
	customer.UpdatedAt = time.Now()
	if err := uc.customers.Update(ctx, customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// Delete elimina un cliente con el contrato completo de mutación: requiere
// confirmación, ejecuta la guarda (facturas asociadas → rechazo local sin
// llamada de borrado) y resincroniza con refetch.
func (uc *CustomerUseCase) Delete(ctx context.Context, companyID, id string, confirmed bool) error {
	ctrl := uc.controller(companyID)
	if err := ctrl.Load(ctx); err != nil {
		return err
	}
	return ctrl.Mutate(ctx, confirmed,
		func(ctx context.Context) error {
			customer, err := uc.customers.GetByID(ctx, id)
			if err != nil {
				return err
			}
			if customer == nil || customer.CompanyID != companyID {
				return domain.ErrNotFound
			}
			n, err := uc.invoices.CountByCustomer(ctx, id)
			if err != nil {
				return err
			}
			if n > 0 {
				return domain.ErrHasInvoices
			}
			return nil
		},
		func(ctx context.Context) error {
			return uc.customers.Delete(ctx, id)
		},
	)
}

// SetActive activa o desactiva un cliente (borrado suave). Requiere confirmación.
func (uc *CustomerUseCase) SetActive(ctx context.Context, companyID, id string, active, confirmed bool) error {
	ctrl := uc.controller(companyID)
	if err := ctrl.Load(ctx); err != nil {
		return err
	}
	return ctrl.Mutate(ctx, confirmed,
		func(ctx context.Context) error {
			customer, err := uc.customers.GetByID(ctx, id)
			if err != nil {
				return err
			}
			if customer == nil || customer.CompanyID != companyID {
				return domain.ErrNotFound
			}
			return nil
		},
		func(ctx context.Context) error {
			return uc.customers.SetActive(ctx, id, active)
		},
	)
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	status := "inactive"
	if c.IsActive {
		status = "active"
	}
	return &dto.CustomerResponse{
		ID:                   c.ID,
		Name:                 c.Name,
		IdentificationType:   c.IdentificationType,
		IdentificationNumber: c.IdentificationNumber,
		Email:                c.Email,
		Phone:                c.Phone,
		Address:              c.Address,
		City:                 c.City,
		State:                c.State,
		IsActive:             c.IsActive,
		StatusBadge:          format.Status(status),
	}
}
