package dto

// ListQuery parámetros comunes de las vistas de lista: término de búsqueda,
// página y filtro de estado. El tamaño de página es fijo por vista.
type ListQuery struct {
	Search string `query:"search"`
	Page   int    `query:"page"`
	Status string `query:"status"` // "all" o vacío = sin filtro
}

// Normalize aplica los valores por defecto de una vista recién montada.
func (q *ListQuery) Normalize() {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Status == "" {
		q.Status = "all"
	}
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
