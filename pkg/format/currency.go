// Package format agrupa los formateadores de presentación: moneda, fecha y
// etiquetas de estado. Son funciones puras; la configuración regional
// (locale y código de moneda) llega por despliegue, no está cableada.
package format

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// CurrencyFormatter formatea montos según locale y código ISO 4217.
// Por defecto sin dígitos fraccionarios (pesos colombianos enteros).
type CurrencyFormatter struct {
	printer *message.Printer
	unit    currency.Unit
	digits  int
}

// NewCurrencyFormatter construye el formateador. Un locale o código inválido
// cae a es-CO / COP en lugar de fallar: el formateo nunca debe tumbar una vista.
func NewCurrencyFormatter(locale, code string, digits int) *CurrencyFormatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.MustParse("es-CO")
	}
	unit, err := currency.ParseISO(code)
	if err != nil {
		unit = currency.MustParseISO("COP")
	}
	if digits < 0 {
		digits = 0
	}
	return &CurrencyFormatter{
		printer: message.NewPrinter(tag),
		unit:    unit,
		digits:  digits,
	}
}

// Format devuelve el monto con símbolo de moneda y separadores del locale,
// redondeado a los dígitos configurados (cero por defecto).
func (f *CurrencyFormatter) Format(amount decimal.Decimal) string {
	v, _ := amount.Round(int32(f.digits)).Float64()
	return f.printer.Sprintf("%v%v",
		currency.Symbol(f.unit),
		number.Decimal(v,
			number.MaxFractionDigits(f.digits),
			number.MinFractionDigits(f.digits),
		),
	)
}
