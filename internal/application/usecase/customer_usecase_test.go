package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencomercio/gestion-api/internal/application/dto"
	"github.com/opencomercio/gestion-api/internal/application/listview"
	"github.com/opencomercio/gestion-api/internal/application/usecase"
	"github.com/opencomercio/gestion-api/internal/domain"
	"github.com/opencomercio/gestion-api/internal/domain/entity"
)

const testCompanyID = "co-1"

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de repositorio
// ──────────────────────────────────────────────────────────────────────────────

type fakeCustomerRepo struct {
	customers map[string]*entity.Customer
	deletes   int
}

func newFakeCustomerRepo(list ...*entity.Customer) *fakeCustomerRepo {
	m := make(map[string]*entity.Customer, len(list))
	for _, c := range list {
		m[c.ID] = c
	}
	return &fakeCustomerRepo{customers: m}
}

func (r *fakeCustomerRepo) Create(_ context.Context, c *entity.Customer) error {
	r.customers[c.ID] = c
	return nil
}

func (r *fakeCustomerRepo) GetByID(_ context.Context, id string) (*entity.Customer, error) {
	return r.customers[id], nil
}

func (r *fakeCustomerRepo) ListByCompany(_ context.Context, companyID string) ([]*entity.Customer, error) {
	var out []*entity.Customer
	for _, c := range r.customers {
		if c.CompanyID == companyID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCustomerRepo) Update(_ context.Context, c *entity.Customer) error {
	r.customers[c.ID] = c
	return nil
}

func (r *fakeCustomerRepo) Delete(_ context.Context, id string) error {
	r.deletes++
	delete(r.customers, id)
	return nil
}

func (r *fakeCustomerRepo) SetActive(_ context.Context, id string, active bool) error {
	r.customers[id].IsActive = active
	return nil
}

type fakeInvoiceRepo struct {
	countByCustomer map[string]int64
}

func (r *fakeInvoiceRepo) CountByCustomer(_ context.Context, customerID string) (int64, error) {
	return r.countByCustomer[customerID], nil
}

func (r *fakeInvoiceRepo) ListByDateRange(_ context.Context, _ string, _, _ time.Time) ([]*entity.Invoice, error) {
	return nil, nil
}

type nopNotifier struct{}

func (nopNotifier) Success(string)        {}
func (nopNotifier) Failure(string, error) {}

func cliente(id, name string) *entity.Customer {
	return &entity.Customer{
		ID:        id,
		CompanyID: testCompanyID,
		Name:      name,
		IsActive:  true,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Borrado con guarda: un cliente con facturas nunca se elimina
// ──────────────────────────────────────────────────────────────────────────────

func TestDelete_ClienteConFacturasSeRechazaLocalmente(t *testing.T) {
	customers := newFakeCustomerRepo(cliente("c1", "Ana Pérez"))
	invoices := &fakeInvoiceRepo{countByCustomer: map[string]int64{"c1": 3}}
	uc := usecase.NewCustomerUseCase(customers, invoices, nopNotifier{})

	err := uc.Delete(context.Background(), testCompanyID, "c1", true)

	assert.ErrorIs(t, err, domain.ErrHasInvoices)
	assert.Zero(t, customers.deletes, "no debe emitirse la llamada de borrado al backend")
	assert.True(t, customers.customers["c1"].IsActive, "is_active debe quedar intacto")
}

func TestDelete_ClienteSinFacturasSeElimina(t *testing.T) {
	customers := newFakeCustomerRepo(cliente("c1", "Ana Pérez"))
	invoices := &fakeInvoiceRepo{countByCustomer: map[string]int64{}}
	uc := usecase.NewCustomerUseCase(customers, invoices, nopNotifier{})

	err := uc.Delete(context.Background(), testCompanyID, "c1", true)

	require.NoError(t, err)
	assert.Equal(t, 1, customers.deletes)
	assert.NotContains(t, customers.customers, "c1")
}

func TestDelete_SinConfirmacionEsNoOp(t *testing.T) {
	customers := newFakeCustomerRepo(cliente("c1", "Ana Pérez"))
	invoices := &fakeInvoiceRepo{}
	uc := usecase.NewCustomerUseCase(customers, invoices, nopNotifier{})

	err := uc.Delete(context.Background(), testCompanyID, "c1", false)

	assert.ErrorIs(t, err, listview.ErrConfirmRequired)
	assert.Zero(t, customers.deletes)
	assert.Contains(t, customers.customers, "c1")
}

func TestDelete_ClienteDeOtraEmpresaNoEncontrado(t *testing.T) {
	otro := cliente("c9", "Otro")
	otro.CompanyID = "co-ajena"
	customers := newFakeCustomerRepo(otro)
	uc := usecase.NewCustomerUseCase(customers, &fakeInvoiceRepo{}, nopNotifier{})

	err := uc.Delete(context.Background(), testCompanyID, "c9", true)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Zero(t, customers.deletes)
}

// ──────────────────────────────────────────────────────────────────────────────
// Desactivación (borrado suave) y listado
// ──────────────────────────────────────────────────────────────────────────────

func TestSetActive_DesactivaCliente(t *testing.T) {
	customers := newFakeCustomerRepo(cliente("c1", "Ana Pérez"))
	uc := usecase.NewCustomerUseCase(customers, &fakeInvoiceRepo{}, nopNotifier{})

	err := uc.SetActive(context.Background(), testCompanyID, "c1", false, true)

	require.NoError(t, err)
	assert.False(t, customers.customers["c1"].IsActive)
}

func TestList_BuscaPorIdentificacion(t *testing.T) {
	c1 := cliente("c1", "Ana Pérez")
	c1.IdentificationNumber = "900123456"
	c2 := cliente("c2", "Luis Gómez")
	c2.IdentificationNumber = "800999888"
	customers := newFakeCustomerRepo(c1, c2)
	uc := usecase.NewCustomerUseCase(customers, &fakeInvoiceRepo{}, nopNotifier{})

	page, err := uc.List(context.Background(), testCompanyID, dto.ListQuery{Search: "900123"})

	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Ana Pérez", page.Items[0].Name)
}

func TestList_FiltraPorEstadoInactivo(t *testing.T) {
	c1 := cliente("c1", "Ana Pérez")
	c2 := cliente("c2", "Luis Gómez")
	c2.IsActive = false
	customers := newFakeCustomerRepo(c1, c2)
	uc := usecase.NewCustomerUseCase(customers, &fakeInvoiceRepo{}, nopNotifier{})

	page, err := uc.List(context.Background(), testCompanyID, dto.ListQuery{Status: "inactive"})

	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Luis Gómez", page.Items[0].Name)
}
