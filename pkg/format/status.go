package format

// StatusBadge apariencia de un estado en la UI: etiqueta, clase de color e icono.
type StatusBadge struct {
	Label string `json:"label"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

// statusBadges mapeo cerrado de estados conocidos. Cubre devoluciones,
// facturas y el flag activo/inactivo de clientes y usuarios.
var statusBadges = map[string]StatusBadge{
	// Devoluciones
	"pendiente": {Label: "Pendiente", Color: "warning", Icon: "clock"},
	"procesada": {Label: "Procesada", Color: "success", Icon: "check-circle"},
	"rechazada": {Label: "Rechazada", Color: "danger", Icon: "x-circle"},
	// Facturas
	"borrador": {Label: "Borrador", Color: "secondary", Icon: "file"},
	"emitida":  {Label: "Emitida", Color: "info", Icon: "send"},
	"pagada":   {Label: "Pagada", Color: "success", Icon: "dollar-sign"},
	"anulada":  {Label: "Anulada", Color: "danger", Icon: "slash"},
	// Activo / inactivo
	"active":   {Label: "Activo", Color: "success", Icon: "check"},
	"inactive": {Label: "Inactivo", Color: "secondary", Icon: "minus-circle"},
}

// fallbackBadge apariencia para estados no reconocidos: nunca se lanza un
// error por un estado nuevo del backend, se muestra tal cual en gris.
var fallbackBadge = StatusBadge{Color: "secondary", Icon: "help-circle"}

// Status devuelve la apariencia del estado, con fallback explícito para
// valores no reconocidos (la etiqueta conserva el valor crudo).
func Status(status string) StatusBadge {
	if b, ok := statusBadges[status]; ok {
		return b
	}
	b := fallbackBadge
	b.Label = status
	return b
}
