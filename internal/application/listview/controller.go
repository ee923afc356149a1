// Package listview implementa el controlador de lista genérico: el patrón
// fetch → filtro → paginación → mutación → refetch que comparten todas las
// vistas de listado (clientes, devoluciones, usuarios, proveedores).
//
// Disciplina única tras mutación: refetch completo contra el backend, nunca
// parches locales, para que el estado visible siempre refleje la verdad del
// servidor.
package listview

import (
	"context"
	"errors"
	"strings"
)

// StatusAll desactiva el filtro por estado.
const StatusAll = "all"

// DefaultPageSize tamaño de página cuando la vista no configura uno.
const DefaultPageSize = 10

// ErrConfirmRequired indica que la mutación fue abortada porque el usuario
// no confirmó la acción. No se emite ninguna llamada al backend.
var ErrConfirmRequired = errors.New("la acción requiere confirmación")

// Notifier sumidero de notificaciones (consumido, fire-and-forget).
// Failure recibe el mensaje corto para el usuario y el detalle para el desarrollador.
type Notifier interface {
	Success(msg string)
	Failure(userMsg string, err error)
}

// Config parametriza un controlador de lista para un tipo de entidad.
type Config[T any] struct {
	// PageSize tamaño de página fijo de la vista (por defecto DefaultPageSize).
	PageSize int
	// SearchFields extrae los campos sobre los que busca el término. Los campos
	// vacíos se omiten sin fallar. Un item coincide si CUALQUIER campo contiene
	// el término (case-insensitive).
	SearchFields func(T) []string
	// Status extrae el estado del item para el filtro exacto. nil si la vista
	// no filtra por estado.
	Status func(T) string
	// Fetch consulta el conjunto completo con el orden fijo del servidor.
	Fetch func(ctx context.Context) ([]T, error)
}

// Controller estado de una vista de lista montada.
type Controller[T any] struct {
	cfg      Config[T]
	notifier Notifier

	items        []T
	loading      bool
	searchTerm   string
	statusFilter string
	currentPage  int
}

// New construye el controlador. El estado inicial corresponde a una vista
// recién montada: sin items, página 1, sin término de búsqueda.
func New[T any](cfg Config[T], notifier Notifier) *Controller[T] {
	if cfg.PageSize <= 0 {
		cfg.PageSize = DefaultPageSize
	}
	return &Controller[T]{
		cfg:          cfg,
		notifier:     notifier,
		statusFilter: StatusAll,
		currentPage:  1,
	}
}

// Load consulta el backend y reemplaza los items por completo.
// Ante un fallo conserva los items previos, notifica y limpia loading.
// Idempotente: dos llamadas sin mutación intermedia producen el mismo conjunto.
func (c *Controller[T]) Load(ctx context.Context) error {
	c.loading = true
	items, err := c.cfg.Fetch(ctx)
	c.loading = false
	if err != nil {
		if c.notifier != nil {
			c.notifier.Failure("no se pudieron cargar los datos", err)
		}
		return err
	}
	c.items = items
	return nil
}

// Items devuelve el conjunto completo cargado (orden del servidor).
func (c *Controller[T]) Items() []T { return c.items }

// Loading indica si hay una carga en curso.
func (c *Controller[T]) Loading() bool { return c.loading }

// SetSearchTerm fija el término de búsqueda. No reinicia la página: si el
// filtro reduce el conjunto por debajo de la página actual, la página queda
// vacía (comportamiento observado, pendiente de decisión de producto).
func (c *Controller[T]) SetSearchTerm(term string) { c.searchTerm = term }

// SetStatusFilter fija el filtro de estado ("all" lo desactiva).
func (c *Controller[T]) SetStatusFilter(status string) {
	if status == "" {
		status = StatusAll
	}
	c.statusFilter = status
}

// SetPage fija la página actual (mínimo 1). No se valida contra el total de
// páginas: ver SetSearchTerm.
func (c *Controller[T]) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	c.currentPage = page
}

// Page subconjunto visible derivado más sus metadatos.
type Page[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalItems int `json:"total_items"` // items tras filtrar, antes de paginar
	TotalPages int `json:"total_pages"`
}

// Visible deriva el subconjunto visible: función pura de items, searchTerm,
// statusFilter, currentPage y pageSize. El filtrado y el corte preservan el
// orden de inserción del servidor; nunca se re-ordena.
func (c *Controller[T]) Visible() Page[T] {
	filtered := Filter(c.items, c.searchTerm, c.cfg.SearchFields)
	if c.cfg.Status != nil {
		filtered = FilterStatus(filtered, c.statusFilter, c.cfg.Status)
	}
	return Page[T]{
		Items:      Slice(filtered, c.currentPage, c.cfg.PageSize),
		Page:       c.currentPage,
		PageSize:   c.cfg.PageSize,
		TotalItems: len(filtered),
		TotalPages: TotalPages(len(filtered), c.cfg.PageSize),
	}
}

// Guard lectura de guarda previa a una mutación. Un error aborta la mutación
// localmente sin llamada al backend (ej: cliente con facturas asociadas).
type Guard func(ctx context.Context) error

// Mutate ejecuta una mutación con el contrato completo de la vista:
//
//  1. Puerta de confirmación: sin confirmación no hay llamada al backend
//     ni cambio de estado (ErrConfirmRequired).
//  2. Guarda opcional: si falla, rechazo local sin mutación.
//  3. Acción contra el backend; ante fallo el estado queda intacto y se notifica.
//  4. Éxito: refetch completo vía Load para resincronizar (sin parche local).
func (c *Controller[T]) Mutate(ctx context.Context, confirmed bool, guard Guard, action func(ctx context.Context) error) error {
	if !confirmed {
		return ErrConfirmRequired
	}
	if guard != nil {
		if err := guard(ctx); err != nil {
			if c.notifier != nil {
				c.notifier.Failure("la acción no está permitida", err)
			}
			return err
		}
	}
	if err := action(ctx); err != nil {
		if c.notifier != nil {
			c.notifier.Failure("no se pudo completar la acción", err)
		}
		return err
	}
	// El refetch fallido no revierte la mutación ya aplicada; Load notifica
	// por su cuenta y conserva los items previos.
	_ = c.Load(ctx)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Derivaciones puras
// ──────────────────────────────────────────────────────────────────────────────

// Filter devuelve los items cuyo algún campo de búsqueda contiene el término
// (case-insensitive). Término vacío devuelve el conjunto sin tocar. Los campos
// vacíos se omiten: un item con todos los campos vacíos queda excluido en
// cuanto hay término.
func Filter[T any](items []T, term string, fields func(T) []string) []T {
	if term == "" || fields == nil {
		return items
	}
	needle := strings.ToLower(term)
	out := make([]T, 0, len(items))
	for _, it := range items {
		for _, f := range fields(it) {
			if f == "" {
				continue
			}
			if strings.Contains(strings.ToLower(f), needle) {
				out = append(out, it)
				break
			}
		}
	}
	return out
}

// FilterStatus filtra por igualdad exacta de estado; StatusAll no filtra.
func FilterStatus[T any](items []T, status string, get func(T) string) []T {
	if status == StatusAll || status == "" {
		return items
	}
	out := make([]T, 0, len(items))
	for _, it := range items {
		if get(it) == status {
			out = append(out, it)
		}
	}
	return out
}

// Slice corta la página pedida: filtered[(page-1)*size : page*size].
// Una página más allá del final devuelve el corte vacío.
func Slice[T any](items []T, page, size int) []T {
	if page < 1 || size <= 0 {
		return nil
	}
	start := (page - 1) * size
	if start >= len(items) {
		return []T{}
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// TotalPages ceil(n/size); cero items produce cero páginas
// (la vista muestra "sin resultados" en lugar de una tabla vacía).
func TotalPages(n, size int) int {
	if size <= 0 {
		return 0
	}
	return (n + size - 1) / size
}
