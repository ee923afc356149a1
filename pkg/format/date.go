package format

import (
	"fmt"
	"time"
)

// meses en español para la forma larga (time.Format solo conoce inglés).
var meses = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// ShortDate forma corta numérica con hora, para filas de listado.
// Ej: "30/08/2026 14:05".
func ShortDate(t time.Time) string {
	return t.Format("02/01/2006 15:04")
}

// LongDate forma larga con nombre de mes, para páginas de detalle.
// Ej: "30 de agosto de 2026".
func LongDate(t time.Time) string {
	return fmt.Sprintf("%d de %s de %d", t.Day(), meses[t.Month()-1], t.Year())
}

var mesesTitulo = [...]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// MonthLabel etiqueta del mes en curso para el encabezado del dashboard.
// Ej: "Agosto 2026".
func MonthLabel(t time.Time) string {
	return fmt.Sprintf("%s %d", mesesTitulo[t.Month()-1], t.Year())
}
