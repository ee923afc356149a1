// Package detailview implementa el controlador de detalle genérico: carga de
// un agregado (entidad principal + colección hija por clave foránea) y
// transiciones de estado directas.
//
// El contrato de no-encontrado está unificado: cada vista declara por
// configuración si responde con un estado inline o con una redirección a la
// vista de lista, en lugar de decidirlo ad hoc.
package detailview

import (
	"context"
	"fmt"

	"github.com/opencomercio/gestion-api/internal/domain"
)

// NotFoundMode modo de respuesta cuando la entidad principal no existe.
type NotFoundMode int

const (
	// NotFoundInline la vista renderiza un estado de no-encontrado en el lugar.
	NotFoundInline NotFoundMode = iota
	// NotFoundRedirect la vista redirige a la ruta padre configurada.
	NotFoundRedirect
)

// NotFoundError condición recuperable de registro inexistente, con el modo
// de presentación elegido por la vista. Envuelve domain.ErrNotFound.
type NotFoundError struct {
	Mode       NotFoundMode
	RedirectTo string // ruta destino cuando Mode es NotFoundRedirect
}

func (e *NotFoundError) Error() string { return domain.ErrNotFound.Error() }

// Unwrap permite errors.Is(err, domain.ErrNotFound).
func (e *NotFoundError) Unwrap() error { return domain.ErrNotFound }

// Config parametriza un controlador de detalle.
type Config[T, C any] struct {
	// NotFound modo de no-encontrado de la vista.
	NotFound NotFoundMode
	// RedirectTo ruta padre para NotFoundRedirect.
	RedirectTo string
	// FetchPrimary carga la entidad principal; (nil, nil) significa no existe.
	FetchPrimary func(ctx context.Context, id string) (*T, error)
	// FetchChildren carga la colección hija filtrada por la FK igual al id.
	// nil si la vista no tiene colección hija.
	FetchChildren func(ctx context.Context, id string) ([]C, error)
}

// View agregado cargado: entidad principal más su colección hija.
type View[T, C any] struct {
	cfg Config[T, C]

	Entity   *T
	Children []C
}

// New construye el controlador de detalle.
func New[T, C any](cfg Config[T, C]) *View[T, C] {
	return &View[T, C]{cfg: cfg}
}

// Load carga el agregado: ambas lecturas deben tener éxito. Si la entidad
// principal no existe devuelve *NotFoundError con el modo configurado.
func (v *View[T, C]) Load(ctx context.Context, id string) error {
	primary, err := v.cfg.FetchPrimary(ctx, id)
	if err != nil {
		return fmt.Errorf("cargar entidad principal: %w", err)
	}
	if primary == nil {
		return &NotFoundError{Mode: v.cfg.NotFound, RedirectTo: v.cfg.RedirectTo}
	}
	var children []C
	if v.cfg.FetchChildren != nil {
		children, err = v.cfg.FetchChildren(ctx, id)
		if err != nil {
			return fmt.Errorf("cargar colección hija: %w", err)
		}
	}
	v.Entity = primary
	v.Children = children
	return nil
}

// Transition aplica un cambio de estado y recarga el agregado completo.
// Disciplina única: refetch tras mutación, nunca merge local del nuevo estado.
func (v *View[T, C]) Transition(ctx context.Context, id string, update func(ctx context.Context) error) error {
	if err := update(ctx); err != nil {
		return err
	}
	return v.Load(ctx, id)
}
