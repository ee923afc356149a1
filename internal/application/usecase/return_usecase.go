package usecase

import (
	"context"

	"github.com/opencomercio/gestion-api/internal/application/detailview"
	"github.com/opencomercio/gestion-api/internal/application/dto"
	"github.com/opencomercio/gestion-api/internal/application/listview"
	"github.com/opencomercio/gestion-api/internal/domain"
	"github.com/opencomercio/gestion-api/internal/domain/entity"
	"github.com/opencomercio/gestion-api/internal/domain/repository"
	"github.com/opencomercio/gestion-api/pkg/format"
	"github.com/opencomercio/gestion-api/pkg/logger"
)

const returnPageSize = 10

// ReceiptGenerator puerto de generación del comprobante PDF de la devolución.
type ReceiptGenerator interface {
	GenerateReturnReceipt(ctx context.Context, ret *repository.ReturnWithInvoice, items []*entity.ReturnItem) ([]byte, error)
}

// ReturnUseCase listado y detalle de devoluciones más las transiciones de
// estado. Aprobar/rechazar solo se ofrece sobre devoluciones pendientes.
type ReturnUseCase struct {
	returns  repository.ReturnRepository
	notifier listview.Notifier
	currency *format.CurrencyFormatter
	receipts ReceiptGenerator
	log      *logger.Logger
}

// NewReturnUseCase construye el caso de uso.
func NewReturnUseCase(
	returns repository.ReturnRepository,
	notifier listview.Notifier,
	currency *format.CurrencyFormatter,
	receipts ReceiptGenerator,
	log *logger.Logger,
) *ReturnUseCase {
	return &ReturnUseCase{
		returns:  returns,
		notifier: notifier,
		currency: currency,
		receipts: receipts,
		log:      log,
	}
}

// controller monta el controlador de lista. Campos de búsqueda: número de
// factura, nombre del cliente y motivo. El orden (fecha descendente) viene
// del servidor y se preserva a través del filtro y el corte.
func (uc *ReturnUseCase) controller(companyID string) *listview.Controller[*dto.ReturnRowResponse] {
	return listview.New(listview.Config[*dto.ReturnRowResponse]{
		PageSize: returnPageSize,
		SearchFields: func(r *dto.ReturnRowResponse) []string {
			return []string{r.InvoiceNumber, r.CustomerName, r.Reason}
		},
		Status: func(r *dto.ReturnRowResponse) string { return r.Status },
		Fetch: func(ctx context.Context) ([]*dto.ReturnRowResponse, error) {
			list, err := uc.returns.ListByCompany(ctx, companyID)
			if err != nil {
				return nil, err
			}
			out := make([]*dto.ReturnRowResponse, 0, len(list))
			for _, r := range list {
				out = append(out, uc.toRow(r))
			}
			return out, nil
		},
	}, uc.notifier)
}

// List carga las devoluciones y deriva el subconjunto visible.
func (uc *ReturnUseCase) List(ctx context.Context, companyID string, q dto.ListQuery) (listview.Page[*dto.ReturnRowResponse], error) {
	q.Normalize()
	ctrl := uc.controller(companyID)
	if err := ctrl.Load(ctx); err != nil {
		return listview.Page[*dto.ReturnRowResponse]{}, err
	}
	ctrl.SetSearchTerm(q.Search)
	ctrl.SetStatusFilter(q.Status)
	ctrl.SetPage(q.Page)
	return ctrl.Visible(), nil
}

// detail monta la vista de detalle. No-encontrado redirige al listado
// (contrato unificado, modo elegido por configuración de esta vista).
func (uc *ReturnUseCase) detail(companyID string) *detailview.View[repository.ReturnWithInvoice, *entity.ReturnItem] {
	return detailview.New(detailview.Config[repository.ReturnWithInvoice, *entity.ReturnItem]{
		NotFound:   detailview.NotFoundRedirect,
		RedirectTo: "/api/returns",
		FetchPrimary: func(ctx context.Context, id string) (*repository.ReturnWithInvoice, error) {
			r, err := uc.returns.GetByID(ctx, id)
			if err != nil {
				return nil, err
			}
			if r == nil || r.CompanyID != companyID {
				return nil, nil
			}
			return r, nil
		},
		FetchChildren: func(ctx context.Context, id string) ([]*entity.ReturnItem, error) {
			return uc.returns.ListItems(ctx, id)
		},
	})
}

// Detail carga el agregado devolución + items.
func (uc *ReturnUseCase) Detail(ctx context.Context, companyID, id string) (*dto.ReturnDetailResponse, error) {
	view := uc.detail(companyID)
	if err := view.Load(ctx, id); err != nil {
		return nil, err
	}
	return uc.toDetail(view.Entity, view.Children), nil
}

// Approve procesa una devolución pendiente. El contrato de mutación aplica
// completo: confirmación, guarda de estado y refetch.
func (uc *ReturnUseCase) Approve(ctx context.Context, companyID, id string, confirmed bool) (*dto.ReturnDetailResponse, error) {
	return uc.transition(ctx, companyID, id, entity.ReturnStatusProcesada, confirmed)
}

// Reject rechaza una devolución pendiente.
func (uc *ReturnUseCase) Reject(ctx context.Context, companyID, id string, confirmed bool) (*dto.ReturnDetailResponse, error) {
	return uc.transition(ctx, companyID, id, entity.ReturnStatusRechazada, confirmed)
}

func (uc *ReturnUseCase) transition(ctx context.Context, companyID, id, newStatus string, confirmed bool) (*dto.ReturnDetailResponse, error) {
	if !confirmed {
		return nil, listview.ErrConfirmRequired
	}
	view := uc.detail(companyID)
	if err := view.Load(ctx, id); err != nil {
		return nil, err
	}
	if !view.Entity.CanTransition() {
		// La UI no ofrece aprobar/rechazar fuera de pendiente; si llega igual,
		// se rechaza localmente sin llamada de actualización.
		return nil, domain.ErrConflict
	}
	err := view.Transition(ctx, id, func(ctx context.Context) error {
		return uc.returns.UpdateStatus(ctx, id, newStatus)
	})
	if err != nil {
		if uc.notifier != nil {
			uc.notifier.Failure("no se pudo actualizar la devolución", err)
		}
		return nil, err
	}
	if uc.notifier != nil {
		uc.notifier.Success("devolución actualizada")
	}
	return uc.toDetail(view.Entity, view.Children), nil
}

// Receipt genera el comprobante PDF de la devolución.
func (uc *ReturnUseCase) Receipt(ctx context.Context, companyID, id string) ([]byte, error) {
	view := uc.detail(companyID)
	if err := view.Load(ctx, id); err != nil {
		return nil, err
	}
	return uc.receipts.GenerateReturnReceipt(ctx, view.Entity, view.Children)
}

func (uc *ReturnUseCase) toRow(r *repository.ReturnWithInvoice) *dto.ReturnRowResponse {
	return &dto.ReturnRowResponse{
		ID:             r.ID,
		InvoiceNumber:  r.InvoiceNumber,
		CustomerName:   r.CustomerName,
		Status:         r.Status,
		StatusBadge:    format.Status(r.Status),
		Reason:         r.Reason,
		TotalAmount:    r.TotalAmount,
		TotalFormatted: uc.currency.Format(r.TotalAmount),
		ReturnDate:     format.ShortDate(r.ReturnDate),
		CanTransition:  r.CanTransition(),
	}
}

func (uc *ReturnUseCase) toDetail(r *repository.ReturnWithInvoice, items []*entity.ReturnItem) *dto.ReturnDetailResponse {
	out := &dto.ReturnDetailResponse{
		ReturnRowResponse: *uc.toRow(r),
		ReturnDateLong:    format.LongDate(r.ReturnDate),
		Items:             make([]dto.ReturnItemResponse, 0, len(items)),
	}
	for _, it := range items {
		out.Items = append(out.Items, dto.ReturnItemResponse{
			ID:          it.ID,
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Subtotal:    it.Subtotal,
			Reason:      it.Reason,
		})
	}
	// Chequeo defensivo: el backend debería garantizar que la suma de
	// subtotales coincide con el total; la discrepancia se registra, no se rechaza.
	if sum := entity.ItemsTotal(items); !sum.Equal(r.TotalAmount) {
		out.ItemsMismatch = true
		if uc.log != nil {
			uc.log.Warn().
				Str("return_id", r.ID).
				Str("total_amount", r.TotalAmount.String()).
				Str("items_total", sum.String()).
				Msg("suma de subtotales no coincide con el total de la devolución")
		}
	}
	return out
}
