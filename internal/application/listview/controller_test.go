package listview_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencomercio/gestion-api/internal/application/listview"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type persona struct {
	Name   string
	Email  string
	Status string
}

func camposPersona(p persona) []string { return []string{p.Name, p.Email} }

// fakeNotifier captura las notificaciones emitidas por el controlador.
type fakeNotifier struct {
	successes []string
	failures  []string
}

func (n *fakeNotifier) Success(msg string)              { n.successes = append(n.successes, msg) }
func (n *fakeNotifier) Failure(userMsg string, _ error) { n.failures = append(n.failures, userMsg) }

// fakeSource fuente de datos con conjunto y error controlables.
type fakeSource struct {
	items   []persona
	err     error
	fetches int
}

func (s *fakeSource) fetch(_ context.Context) ([]persona, error) {
	s.fetches++
	if s.err != nil {
		return nil, s.err
	}
	return s.items, nil
}

func buildController(src *fakeSource, pageSize int) (*listview.Controller[persona], *fakeNotifier) {
	notifier := &fakeNotifier{}
	ctrl := listview.New(listview.Config[persona]{
		PageSize:     pageSize,
		SearchFields: camposPersona,
		Status:       func(p persona) string { return p.Status },
		Fetch:        src.fetch,
	}, notifier)
	return ctrl, notifier
}

// ──────────────────────────────────────────────────────────────────────────────
// Filter — propiedades del predicado de búsqueda
// ──────────────────────────────────────────────────────────────────────────────

func TestFilter_EsSubconjuntoYCoincideAlgunCampo(t *testing.T) {
	items := []persona{
		{Name: "Ana Pérez", Email: "ana@x.com"},
		{Name: "Luis Gómez", Email: "luis@y.com"},
		{Name: "Carlos Ruiz", Email: "carlos@ana-corp.com"},
	}
	got := listview.Filter(items, "ana", camposPersona)

	assert.Len(t, got, 2, "deben coincidir Ana (nombre) y Carlos (email)")
	for _, p := range got {
		assert.Contains(t, items, p, "todo resultado debe provenir del conjunto original")
	}
}

func TestFilter_CaseInsensitive(t *testing.T) {
	items := []persona{{Name: "Ana Pérez", Email: "ana@x.com"}}
	assert.Len(t, listview.Filter(items, "ANA", camposPersona), 1)
	assert.Len(t, listview.Filter(items, "pÉrez", camposPersona), 1)
}

func TestFilter_TerminoVacioDevuelveTodo(t *testing.T) {
	items := []persona{{Name: "Ana"}, {Name: "Luis"}}
	assert.Equal(t, items, listview.Filter(items, "", camposPersona))
}

func TestFilter_CamposVaciosSeOmiten(t *testing.T) {
	// Un item con todos los campos vacíos queda excluido en cuanto hay término,
	// sin provocar pánico.
	items := []persona{
		{Name: "", Email: ""},
		{Name: "Ana", Email: ""},
	}
	got := listview.Filter(items, "ana", camposPersona)
	require.Len(t, got, 1)
	assert.Equal(t, "Ana", got[0].Name)
}

func TestFilter_PreservaOrdenDeInsercion(t *testing.T) {
	items := []persona{{Name: "Zoe Ana"}, {Name: "Ana Luz"}, {Name: "Bea Ana"}}
	got := listview.Filter(items, "ana", camposPersona)
	require.Len(t, got, 3)
	assert.Equal(t, "Zoe Ana", got[0].Name, "el filtro no debe re-ordenar")
	assert.Equal(t, "Ana Luz", got[1].Name)
	assert.Equal(t, "Bea Ana", got[2].Name)
}

// ──────────────────────────────────────────────────────────────────────────────
// Slice / TotalPages — propiedades de paginación
// ──────────────────────────────────────────────────────────────────────────────

func TestSlice_ParticionCubreExactamenteElConjunto(t *testing.T) {
	items := []persona{{Name: "a"}, {Name: "b"}, {Name: "c"}, {Name: "d"}, {Name: "e"}}

	for _, size := range []int{1, 2, 3, 5, 10} {
		total := listview.TotalPages(len(items), size)
		var union []persona
		for page := 1; page <= total; page++ {
			union = append(union, listview.Slice(items, page, size)...)
		}
		assert.Equal(t, items, union,
			"la unión de las páginas con pageSize=%d debe cubrir el conjunto en orden y sin solapes", size)
	}
}

func TestTotalPages_Formula(t *testing.T) {
	casos := []struct {
		n, size, want int
	}{
		{0, 10, 0}, // sin resultados → cero páginas, se muestra "sin resultados"
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{25, 10, 3},
		{5, 1, 5},
	}
	for _, c := range casos {
		assert.Equal(t, c.want, listview.TotalPages(c.n, c.size),
			"TotalPages(%d, %d)", c.n, c.size)
	}
}

func TestSlice_PaginaMasAllaDelFinalQuedaVacia(t *testing.T) {
	items := []persona{{Name: "a"}, {Name: "b"}}
	assert.Empty(t, listview.Slice(items, 3, 2))
}

// ──────────────────────────────────────────────────────────────────────────────
// Controller — escenario concreto del contrato
// ──────────────────────────────────────────────────────────────────────────────

// Escenario: búsqueda "ana" reduce el conjunto a un item; con pageSize=1 la
// página 2 queda vacía porque currentPage NO se ajusta automáticamente
// (comportamiento observado, pendiente de decisión de producto).
func TestController_BusquedaConPaginaFueraDeRango(t *testing.T) {
	src := &fakeSource{items: []persona{
		{Name: "Ana Pérez", Email: "ana@x.com"},
		{Name: "Luis Gómez", Email: "luis@y.com"},
	}}
	ctrl, _ := buildController(src, 1)
	require.NoError(t, ctrl.Load(context.Background()))

	ctrl.SetSearchTerm("ana")
	page := ctrl.Visible()
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Ana Pérez", page.Items[0].Name)
	assert.Equal(t, 1, page.TotalPages)

	ctrl.SetPage(2)
	page = ctrl.Visible()
	assert.Empty(t, page.Items, "página 2 tras reducir el conjunto debe quedar vacía")
	assert.Equal(t, 1, page.TotalPages)
	assert.Equal(t, 2, page.Page, "la página actual no se ajusta automáticamente")
}

func TestController_FiltroPorEstado(t *testing.T) {
	src := &fakeSource{items: []persona{
		{Name: "a", Status: "pendiente"},
		{Name: "b", Status: "procesada"},
		{Name: "c", Status: "pendiente"},
	}}
	ctrl, _ := buildController(src, 10)
	require.NoError(t, ctrl.Load(context.Background()))

	ctrl.SetStatusFilter("pendiente")
	assert.Len(t, ctrl.Visible().Items, 2)

	ctrl.SetStatusFilter(listview.StatusAll)
	assert.Len(t, ctrl.Visible().Items, 3, "all desactiva el filtro de estado")
}

// ──────────────────────────────────────────────────────────────────────────────
// Load — idempotencia y fallo
// ──────────────────────────────────────────────────────────────────────────────

func TestLoad_IdempotenteSinMutaciones(t *testing.T) {
	src := &fakeSource{items: []persona{{Name: "Ana"}, {Name: "Luis"}}}
	ctrl, _ := buildController(src, 10)

	require.NoError(t, ctrl.Load(context.Background()))
	first := ctrl.Items()
	require.NoError(t, ctrl.Load(context.Background()))
	assert.Equal(t, first, ctrl.Items(), "dos Load sin mutación intermedia deben dar el mismo conjunto en el mismo orden")
}

func TestLoad_FalloConservaItemsPreviosYNotifica(t *testing.T) {
	src := &fakeSource{items: []persona{{Name: "Ana"}}}
	ctrl, notifier := buildController(src, 10)
	require.NoError(t, ctrl.Load(context.Background()))

	src.err = errors.New("backend caído")
	err := ctrl.Load(context.Background())

	require.Error(t, err)
	assert.Len(t, ctrl.Items(), 1, "los items previos deben conservarse ante el fallo")
	assert.False(t, ctrl.Loading(), "loading debe quedar limpio tras el fallo")
	assert.NotEmpty(t, notifier.failures, "el fallo debe notificarse al usuario")
}

// ──────────────────────────────────────────────────────────────────────────────
// Mutate — confirmación, guarda y refetch
// ──────────────────────────────────────────────────────────────────────────────

func TestMutate_SinConfirmacionNoLlamaAlBackend(t *testing.T) {
	src := &fakeSource{}
	ctrl, _ := buildController(src, 10)

	called := false
	err := ctrl.Mutate(context.Background(), false, nil, func(context.Context) error {
		called = true
		return nil
	})

	assert.ErrorIs(t, err, listview.ErrConfirmRequired)
	assert.False(t, called, "declinar la confirmación debe ser un no-op")
	assert.Zero(t, src.fetches, "tampoco debe haber refetch")
}

func TestMutate_GuardaRechazaLocalmente(t *testing.T) {
	src := &fakeSource{}
	ctrl, notifier := buildController(src, 10)

	guardErr := errors.New("tiene facturas asociadas")
	called := false
	err := ctrl.Mutate(context.Background(),
		true,
		func(context.Context) error { return guardErr },
		func(context.Context) error { called = true; return nil },
	)

	assert.ErrorIs(t, err, guardErr)
	assert.False(t, called, "la guarda debe impedir la mutación al backend")
	assert.NotEmpty(t, notifier.failures)
}

func TestMutate_ExitoDisparaRefetch(t *testing.T) {
	src := &fakeSource{items: []persona{{Name: "Ana"}}}
	ctrl, _ := buildController(src, 10)
	require.NoError(t, ctrl.Load(context.Background()))
	require.Equal(t, 1, src.fetches)

	// La mutación altera el conjunto del backend; el refetch debe reflejarlo.
	err := ctrl.Mutate(context.Background(), true, nil, func(context.Context) error {
		src.items = []persona{{Name: "Ana"}, {Name: "Nueva"}}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, src.fetches, "el éxito debe resincronizar con un Load completo")
	assert.Len(t, ctrl.Items(), 2, "el estado local refleja al backend, sin parche local")
}

func TestMutate_FalloDelBackendConservaEstado(t *testing.T) {
	src := &fakeSource{items: []persona{{Name: "Ana"}}}
	ctrl, notifier := buildController(src, 10)
	require.NoError(t, ctrl.Load(context.Background()))

	err := ctrl.Mutate(context.Background(), true, nil, func(context.Context) error {
		return errors.New("update rechazado")
	})

	require.Error(t, err)
	assert.Len(t, ctrl.Items(), 1, "ante fallo de mutación el estado queda intacto")
	assert.Equal(t, 1, src.fetches, "no debe haber refetch tras un fallo")
	assert.NotEmpty(t, notifier.failures)
}
