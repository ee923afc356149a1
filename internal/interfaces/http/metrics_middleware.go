package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	requestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total de peticiones HTTP",
		},
		[]string{"service", "method", "path", "status"},
	)

	requestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duración de las peticiones HTTP en segundos",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "method", "path", "status"},
	)
)

// HTTPMetrics colector de métricas HTTP por servicio.
type HTTPMetrics struct {
	serviceName string
}

// NewHTTPMetrics registra los colectores y devuelve el middleware. Debe
// construirse una sola vez por proceso (MustRegister entra en pánico con
// registros duplicados).
func NewHTTPMetrics(serviceName string) *HTTPMetrics {
	prometheus.MustRegister(requestCounter, requestDuration)
	return &HTTPMetrics{serviceName: serviceName}
}

// Middleware registra contador y duración por método, ruta y status.
// Usa c.Route().Path (la plantilla, no la URL concreta) para acotar la
// cardinalidad de la etiqueta path.
func (m *HTTPMetrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			}
		}
		method := c.Method()
		path := c.Route().Path
		statusStr := strconv.Itoa(status)

		requestCounter.WithLabelValues(m.serviceName, method, path, statusStr).Inc()
		requestDuration.WithLabelValues(m.serviceName, method, path, statusStr).
			Observe(time.Since(start).Seconds())
		return err
	}
}

// Handler expone /metrics en formato Prometheus.
func (m *HTTPMetrics) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
