package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencomercio/gestion-api/internal/application/dto"
	"github.com/opencomercio/gestion-api/internal/application/listview"
	"github.com/opencomercio/gestion-api/internal/application/usecase"
	"github.com/opencomercio/gestion-api/internal/domain"
	"github.com/opencomercio/gestion-api/internal/domain/entity"
	"github.com/opencomercio/gestion-api/internal/domain/repository"
	"github.com/opencomercio/gestion-api/pkg/format"
	"github.com/opencomercio/gestion-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake de repositorio de devoluciones
// ──────────────────────────────────────────────────────────────────────────────

type fakeReturnRepo struct {
	returns map[string]*repository.ReturnWithInvoice
	items   map[string][]*entity.ReturnItem
	updates int
}

func newFakeReturnRepo(list ...*repository.ReturnWithInvoice) *fakeReturnRepo {
	m := make(map[string]*repository.ReturnWithInvoice, len(list))
	for _, r := range list {
		m[r.ID] = r
	}
	return &fakeReturnRepo{returns: m, items: map[string][]*entity.ReturnItem{}}
}

func (r *fakeReturnRepo) ListByCompany(_ context.Context, companyID string) ([]*repository.ReturnWithInvoice, error) {
	var out []*repository.ReturnWithInvoice
	for _, ret := range r.returns {
		if ret.CompanyID == companyID {
			out = append(out, ret)
		}
	}
	return out, nil
}

func (r *fakeReturnRepo) GetByID(_ context.Context, id string) (*repository.ReturnWithInvoice, error) {
	ret, ok := r.returns[id]
	if !ok {
		return nil, nil
	}
	cp := *ret
	return &cp, nil
}

func (r *fakeReturnRepo) ListItems(_ context.Context, returnID string) ([]*entity.ReturnItem, error) {
	return r.items[returnID], nil
}

func (r *fakeReturnRepo) UpdateStatus(_ context.Context, id, status string) error {
	r.updates++
	r.returns[id].Status = status
	return nil
}

func devolucion(id, status string, total int64) *repository.ReturnWithInvoice {
	return &repository.ReturnWithInvoice{
		Return: entity.Return{
			ID:          id,
			CompanyID:   testCompanyID,
			InvoiceID:   "f1",
			Status:      status,
			Reason:      "producto defectuoso",
			TotalAmount: decimal.NewFromInt(total),
		},
		InvoiceNumber: "FV-0001",
		CustomerName:  "Ana Pérez",
	}
}

func buildReturnUC(repo *fakeReturnRepo) *usecase.ReturnUseCase {
	currency := format.NewCurrencyFormatter("es-CO", "COP", 0)
	return usecase.NewReturnUseCase(repo, nopNotifier{}, currency, nil, logger.Nop())
}

// ──────────────────────────────────────────────────────────────────────────────
// Transiciones: solo las devoluciones pendientes admiten aprobar/rechazar
// ──────────────────────────────────────────────────────────────────────────────

func TestApprove_PendientePasaAProcesada(t *testing.T) {
	repo := newFakeReturnRepo(devolucion("r1", entity.ReturnStatusPendiente, 100))
	uc := buildReturnUC(repo)

	detail, err := uc.Approve(context.Background(), testCompanyID, "r1", true)

	require.NoError(t, err)
	assert.Equal(t, entity.ReturnStatusProcesada, detail.Status,
		"tras la transición y el refetch el estado debe ser procesada")
	assert.False(t, detail.CanTransition, "una devolución procesada ya no ofrece acciones")
	assert.Equal(t, 1, repo.updates)
}

func TestReject_PendientePasaARechazada(t *testing.T) {
	repo := newFakeReturnRepo(devolucion("r1", entity.ReturnStatusPendiente, 100))
	uc := buildReturnUC(repo)

	detail, err := uc.Reject(context.Background(), testCompanyID, "r1", true)

	require.NoError(t, err)
	assert.Equal(t, entity.ReturnStatusRechazada, detail.Status)
}

func TestApprove_NoPendienteSeRechazaSinMutacion(t *testing.T) {
	repo := newFakeReturnRepo(devolucion("r1", entity.ReturnStatusProcesada, 100))
	uc := buildReturnUC(repo)

	_, err := uc.Approve(context.Background(), testCompanyID, "r1", true)

	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Zero(t, repo.updates, "fuera de pendiente no debe emitirse el update")
}

func TestApprove_SinConfirmacionEsNoOp(t *testing.T) {
	repo := newFakeReturnRepo(devolucion("r1", entity.ReturnStatusPendiente, 100))
	uc := buildReturnUC(repo)

	_, err := uc.Approve(context.Background(), testCompanyID, "r1", false)

	assert.ErrorIs(t, err, listview.ErrConfirmRequired)
	assert.Zero(t, repo.updates)
}

func TestApprove_NoEncontradoRedirigeAlListado(t *testing.T) {
	repo := newFakeReturnRepo()
	uc := buildReturnUC(repo)

	_, err := uc.Approve(context.Background(), testCompanyID, "inexistente", true)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Listado y detalle
// ──────────────────────────────────────────────────────────────────────────────

func TestList_SoloPendientesExponenAcciones(t *testing.T) {
	repo := newFakeReturnRepo(
		devolucion("r1", entity.ReturnStatusPendiente, 100),
		devolucion("r2", entity.ReturnStatusProcesada, 50),
	)
	uc := buildReturnUC(repo)

	page, err := uc.List(context.Background(), testCompanyID, dto.ListQuery{})

	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	for _, row := range page.Items {
		assert.Equal(t, row.Status == entity.ReturnStatusPendiente, row.CanTransition,
			"solo las devoluciones pendientes deben ofrecer aprobar/rechazar")
	}
}

func TestDetail_MarcaDiscrepanciaDeTotales(t *testing.T) {
	ret := devolucion("r1", entity.ReturnStatusPendiente, 100)
	repo := newFakeReturnRepo(ret)
	repo.items["r1"] = []*entity.ReturnItem{
		{ID: "i1", ReturnID: "r1", Subtotal: decimal.NewFromInt(30)},
		{ID: "i2", ReturnID: "r1", Subtotal: decimal.NewFromInt(40)},
	}
	uc := buildReturnUC(repo)

	detail, err := uc.Detail(context.Background(), testCompanyID, "r1")

	require.NoError(t, err)
	assert.True(t, detail.ItemsMismatch,
		"70 != 100: la discrepancia se marca pero no se rechaza")
	assert.Len(t, detail.Items, 2)
}

func TestDetail_TotalesCoherentesSinMarca(t *testing.T) {
	ret := devolucion("r1", entity.ReturnStatusPendiente, 70)
	repo := newFakeReturnRepo(ret)
	repo.items["r1"] = []*entity.ReturnItem{
		{ID: "i1", ReturnID: "r1", Subtotal: decimal.NewFromInt(30)},
		{ID: "i2", ReturnID: "r1", Subtotal: decimal.NewFromInt(40)},
	}
	uc := buildReturnUC(repo)

	detail, err := uc.Detail(context.Background(), testCompanyID, "r1")

	require.NoError(t, err)
	assert.False(t, detail.ItemsMismatch)
}
