package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencomercio/gestion-api/internal/application/usecase"
	"github.com/opencomercio/gestion-api/internal/domain/entity"
	"github.com/opencomercio/gestion-api/internal/domain/repository"
	"github.com/opencomercio/gestion-api/pkg/format"
	"github.com/opencomercio/gestion-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// MonthlyTotal: pliegue sobre las facturas del mes
// ──────────────────────────────────────────────────────────────────────────────

func factura(status string, amount int64) *entity.Invoice {
	return &entity.Invoice{
		ID:          "f-" + status,
		CompanyID:   testCompanyID,
		Status:      status,
		TotalAmount: decimal.NewFromInt(amount),
	}
}

func TestMonthlyTotal_SoloEmitidasYPagadas(t *testing.T) {
	rows := []*entity.Invoice{
		factura(entity.InvoiceStatusEmitida, 100),
		factura(entity.InvoiceStatusBorrador, 50),
	}

	total := usecase.MonthlyTotal(rows)

	assert.True(t, total.Equal(decimal.NewFromInt(100)),
		"la factura en borrador no suma al total del mes, got %s", total)
}

func TestMonthlyTotal_AnuladasExcluidas(t *testing.T) {
	rows := []*entity.Invoice{
		factura(entity.InvoiceStatusEmitida, 100),
		factura(entity.InvoiceStatusPagada, 200),
		factura(entity.InvoiceStatusAnulada, 999),
	}

	total := usecase.MonthlyTotal(rows)

	assert.True(t, total.Equal(decimal.NewFromInt(300)))
}

func TestMonthlyTotal_SinFacturasEsCero(t *testing.T) {
	assert.True(t, usecase.MonthlyTotal(nil).IsZero())
}

// ──────────────────────────────────────────────────────────────────────────────
// GetSummary: fanout de consultas y aislamiento de fallos
// ──────────────────────────────────────────────────────────────────────────────

type fakeDashboardRepo struct {
	products      int64
	outOfStock    int64
	todayMovs     int64
	recent        []repository.MovementRow
	top           []repository.TopProductRow
	low           []repository.LowStockRow
	outOfStockErr error
	topErr        error
}

func (r *fakeDashboardRepo) CountProducts(context.Context, string) (int64, error) {
	return r.products, nil
}

func (r *fakeDashboardRepo) CountOutOfStock(context.Context, string) (int64, error) {
	return r.outOfStock, r.outOfStockErr
}

func (r *fakeDashboardRepo) CountMovementsSince(context.Context, string, time.Time) (int64, error) {
	return r.todayMovs, nil
}

func (r *fakeDashboardRepo) RecentMovements(context.Context, string, int) ([]repository.MovementRow, error) {
	return r.recent, nil
}

func (r *fakeDashboardRepo) TopProductsByQuantity(context.Context, string, time.Time, int) ([]repository.TopProductRow, error) {
	return r.top, r.topErr
}

func (r *fakeDashboardRepo) LowestStock(context.Context, string, int) ([]repository.LowStockRow, error) {
	return r.low, nil
}

type fakeDashInvoiceRepo struct {
	rows []*entity.Invoice
	err  error
}

func (r *fakeDashInvoiceRepo) CountByCustomer(context.Context, string) (int64, error) {
	return 0, nil
}

func (r *fakeDashInvoiceRepo) ListByDateRange(context.Context, string, time.Time, time.Time) ([]*entity.Invoice, error) {
	return r.rows, r.err
}

func buildDashboardUC(dash *fakeDashboardRepo, inv *fakeDashInvoiceRepo) *usecase.DashboardUseCase {
	currency := format.NewCurrencyFormatter("es-CO", "COP", 0)
	return usecase.NewDashboardUseCase(dash, inv, currency, logger.Nop())
}

func TestGetSummary_ArmaTodosLosWidgets(t *testing.T) {
	dash := &fakeDashboardRepo{
		products:   12,
		outOfStock: 3,
		todayMovs:  5,
		recent: []repository.MovementRow{
			{ID: "m1", ProductName: "Café 500g", WarehouseName: "Principal", Type: "salida", Quantity: 2},
		},
		top: []repository.TopProductRow{
			{ProductID: "p1", SKU: "CAF-500", Name: "Café 500g", TotalQuantity: decimal.NewFromInt(40)},
		},
		low: []repository.LowStockRow{
			{ProductID: "p2", SKU: "AZU-1K", Name: "Azúcar 1kg", WarehouseName: "Principal", Quantity: decimal.NewFromInt(1)},
		},
	}
	inv := &fakeDashInvoiceRepo{rows: []*entity.Invoice{
		factura(entity.InvoiceStatusEmitida, 100),
		factura(entity.InvoiceStatusBorrador, 50),
	}}
	uc := buildDashboardUC(dash, inv)

	summary, err := uc.GetSummary(context.Background(), testCompanyID)

	require.NoError(t, err)
	assert.Equal(t, int64(12), summary.ProductCount)
	assert.Equal(t, int64(3), summary.OutOfStockCount)
	assert.Equal(t, int64(5), summary.TodayMovements)
	assert.True(t, summary.MonthlyTotal.Equal(decimal.NewFromInt(100)))
	assert.NotEmpty(t, summary.MonthlyTotalFormatted)
	assert.NotEmpty(t, summary.DateLabel)
	require.Len(t, summary.RecentMovements, 1)
	assert.Equal(t, "Café 500g", summary.RecentMovements[0].ProductName)
	require.Len(t, summary.TopProducts, 1)
	require.Len(t, summary.LowestStock, 1)
}

func TestGetSummary_FalloDeUnaConsultaNoTumbaElResto(t *testing.T) {
	dash := &fakeDashboardRepo{
		products:      12,
		todayMovs:     5,
		outOfStockErr: errors.New("timeout"),
		topErr:        errors.New("timeout"),
	}
	inv := &fakeDashInvoiceRepo{rows: []*entity.Invoice{factura(entity.InvoiceStatusPagada, 200)}}
	uc := buildDashboardUC(dash, inv)

	summary, err := uc.GetSummary(context.Background(), testCompanyID)

	require.NoError(t, err, "el fallo de consultas individuales no es fallo del resumen")
	assert.Equal(t, int64(12), summary.ProductCount, "los widgets sanos conservan su valor")
	assert.Zero(t, summary.OutOfStockCount, "el widget fallido queda en cero")
	assert.Empty(t, summary.TopProducts, "el widget fallido queda vacío")
	assert.True(t, summary.MonthlyTotal.Equal(decimal.NewFromInt(200)))
}

func TestGetSummary_FacturasDelMesFallaTotalEnCero(t *testing.T) {
	dash := &fakeDashboardRepo{products: 1}
	inv := &fakeDashInvoiceRepo{err: errors.New("conexión rechazada")}
	uc := buildDashboardUC(dash, inv)

	summary, err := uc.GetSummary(context.Background(), testCompanyID)

	require.NoError(t, err)
	assert.True(t, summary.MonthlyTotal.IsZero())
	assert.Equal(t, int64(1), summary.ProductCount)
}
