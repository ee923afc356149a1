package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/opencomercio/gestion-api/internal/application/dto"
	"github.com/opencomercio/gestion-api/internal/domain/entity"
	"github.com/opencomercio/gestion-api/internal/domain/repository"
	"github.com/opencomercio/gestion-api/pkg/format"
	"github.com/opencomercio/gestion-api/pkg/logger"
)

const dashboardTopN = 5 // tamaño de los widgets top-N y de movimientos recientes

// DashboardUseCase arma el resumen del dashboard: contadores, total facturado
// del mes y tres listas top-N.
//
// Las consultas se lanzan todas en paralelo y se espera a que TODAS terminen.
// El fallo de una consulta se aísla: su widget queda en cero/vacío y se
// registra, sin bloquear el render del resto.
type DashboardUseCase struct {
	dashboard repository.DashboardRepository
	invoices  repository.InvoiceRepository
	currency  *format.CurrencyFormatter
	log       *logger.Logger
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	dashboard repository.DashboardRepository,
	invoices repository.InvoiceRepository,
	currency *format.CurrencyFormatter,
	log *logger.Logger,
) *DashboardUseCase {
	return &DashboardUseCase{dashboard: dashboard, invoices: invoices, currency: currency, log: log}
}

// MonthlyTotal suma total_amount de las facturas del rango con estado emitida
// o pagada. Es el pliegue que el dashboard aplica sobre las filas del mes.
func MonthlyTotal(invoices []*entity.Invoice) decimal.Decimal {
	total := decimal.Zero
	for _, inv := range invoices {
		if inv.Status == entity.InvoiceStatusEmitida || inv.Status == entity.InvoiceStatusPagada {
			total = total.Add(inv.TotalAmount)
		}
	}
	return total
}

// GetSummary construye el DashboardSummaryDTO para la empresa indicada.
func (uc *DashboardUseCase) GetSummary(ctx context.Context, companyID string) (*dto.DashboardSummaryDTO, error) {
	now := time.Now()

	// ── Rangos de fecha ────────────────────────────────────────────────────────
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayEnd := todayStart.Add(24*time.Hour - time.Nanosecond)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	// ── Goroutines: las 7 consultas se emiten sin esperarse entre sí ──────────
	type countResult struct {
		n   int64
		err error
	}
	type invoicesResult struct {
		rows []*entity.Invoice
		err  error
	}
	type movementsResult struct {
		rows []repository.MovementRow
		err  error
	}
	type topResult struct {
		rows []repository.TopProductRow
		err  error
	}
	type lowResult struct {
		rows []repository.LowStockRow
		err  error
	}

	productsCh := make(chan countResult, 1)
	monthCh := make(chan invoicesResult, 1)
	outOfStockCh := make(chan countResult, 1)
	todayMovsCh := make(chan countResult, 1)
	recentCh := make(chan movementsResult, 1)
	topCh := make(chan topResult, 1)
	lowCh := make(chan lowResult, 1)

	go func() {
		n, err := uc.dashboard.CountProducts(ctx, companyID)
		productsCh <- countResult{n, err}
	}()
	go func() {
		rows, err := uc.invoices.ListByDateRange(ctx, companyID, monthStart, todayEnd)
		monthCh <- invoicesResult{rows, err}
	}()
	go func() {
		n, err := uc.dashboard.CountOutOfStock(ctx, companyID)
		outOfStockCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.dashboard.CountMovementsSince(ctx, companyID, todayStart)
		todayMovsCh <- countResult{n, err}
	}()
	go func() {
		rows, err := uc.dashboard.RecentMovements(ctx, companyID, dashboardTopN)
		recentCh <- movementsResult{rows, err}
	}()
	go func() {
		rows, err := uc.dashboard.TopProductsByQuantity(ctx, companyID, monthStart, dashboardTopN)
		topCh <- topResult{rows, err}
	}()
	go func() {
		rows, err := uc.dashboard.LowestStock(ctx, companyID, dashboardTopN)
		lowCh <- lowResult{rows, err}
	}()

	products := <-productsCh
	month := <-monthCh
	outOfStock := <-outOfStockCh
	todayMovs := <-todayMovsCh
	recent := <-recentCh
	top := <-topCh
	low := <-lowCh

	// ── Aislamiento de fallos por consulta ────────────────────────────────────
	summary := &dto.DashboardSummaryDTO{
		MonthlyTotal: decimal.Zero,
		DateLabel:    format.MonthLabel(now),
	}
	if uc.failed("conteo de productos", products.err) == nil {
		summary.ProductCount = products.n
	}
	if uc.failed("facturas del mes", month.err) == nil {
		summary.MonthlyTotal = MonthlyTotal(month.rows)
	}
	if uc.failed("productos agotados", outOfStock.err) == nil {
		summary.OutOfStockCount = outOfStock.n
	}
	if uc.failed("movimientos de hoy", todayMovs.err) == nil {
		summary.TodayMovements = todayMovs.n
	}
	if uc.failed("movimientos recientes", recent.err) == nil {
		summary.RecentMovements = toMovementDTOs(recent.rows)
	}
	if uc.failed("top productos", top.err) == nil {
		summary.TopProducts = toTopProductDTOs(top.rows)
	}
	if uc.failed("stock más bajo", low.err) == nil {
		summary.LowestStock = toLowStockDTOs(low.rows)
	}
	summary.MonthlyTotalFormatted = uc.currency.Format(summary.MonthlyTotal)

	return summary, nil
}

// failed registra el fallo de una consulta individual y lo devuelve.
func (uc *DashboardUseCase) failed(widget string, err error) error {
	if err != nil && uc.log != nil {
		uc.log.Warn().Err(err).Str("widget", widget).Msg("consulta del dashboard falló, widget en cero")
	}
	return err
}

func toMovementDTOs(rows []repository.MovementRow) []dto.MovementRowDTO {
	out := make([]dto.MovementRowDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.MovementRowDTO{
			ID:            r.ID,
			ProductName:   r.ProductName,
			WarehouseName: r.WarehouseName,
			Type:          r.Type,
			TypeLabel:     movementTypeLabel(r.Type),
			Quantity:      r.Quantity,
			CreatedAt:     format.ShortDate(r.CreatedAt),
		})
	}
	return out
}

func movementTypeLabel(t string) string {
	switch t {
	case entity.MovementTypeIn:
		return "Entrada"
	case entity.MovementTypeOut:
		return "Salida"
	case entity.MovementTypeAdjust:
		return "Ajuste"
	default:
		return t
	}
}

func toTopProductDTOs(rows []repository.TopProductRow) []dto.TopProductDTO {
	out := make([]dto.TopProductDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.TopProductDTO{
			ProductID:     r.ProductID,
			SKU:           r.SKU,
			Name:          r.Name,
			TotalQuantity: r.TotalQuantity,
		})
	}
	return out
}

func toLowStockDTOs(rows []repository.LowStockRow) []dto.LowStockDTO {
	out := make([]dto.LowStockDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.LowStockDTO{
			ProductID:     r.ProductID,
			SKU:           r.SKU,
			Name:          r.Name,
			WarehouseName: r.WarehouseName,
			Quantity:      r.Quantity,
		})
	}
	return out
}
