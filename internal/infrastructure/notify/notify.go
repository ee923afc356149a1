// Package notify adapta el sumidero de notificaciones al logger estructurado.
// Las notificaciones son fire-and-forget: el detalle técnico va al log de
// desarrollo y el mensaje corto queda disponible para la capa HTTP.
package notify

import (
	"github.com/opencomercio/gestion-api/internal/application/listview"
	"github.com/opencomercio/gestion-api/pkg/logger"
)

var _ listview.Notifier = (*LogNotifier)(nil)

// LogNotifier implementación del sumidero sobre zerolog.
type LogNotifier struct {
	log *logger.Logger
}

// New construye el sumidero.
func New(log *logger.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

// Success registra un mensaje de éxito visible para el usuario.
func (n *LogNotifier) Success(msg string) {
	n.log.Info().Str("notificacion", "exito").Msg(msg)
}

// Failure registra el mensaje corto para el usuario y el detalle para el desarrollador.
func (n *LogNotifier) Failure(userMsg string, err error) {
	n.log.Warn().Err(err).Str("notificacion", "fallo").Msg(userMsg)
}
