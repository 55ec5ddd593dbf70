// Package metrics implementa las métricas del motor y de HTTP con Prometheus.
package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Stock-api/internal/application/ports"
	"github.com/jhoicas/Stock-api/internal/domain"
)

var _ ports.EngineMetrics = (*Prometheus)(nil)

// Prometheus colectores del motor registrados en un registry propio.
type Prometheus struct {
	registry *prometheus.Registry

	transitions    *prometheus.CounterVec
	salesCreated   *prometheus.CounterVec
	salesAmount    prometheus.Counter
	saleItems      prometheus.Histogram
	rejections     *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// New crea y registra los colectores. withRuntime agrega los colectores de proceso y de Go.
func New(withRuntime bool) *Prometheus {
	p := &Prometheus{
		registry: prometheus.NewRegistry(),
		transitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stock_unit_transitions_total",
				Help: "Transiciones de estado aplicadas a unidades de stock",
			},
			[]string{"from", "to"},
		),
		salesCreated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sales_created_total",
				Help: "Ventas confirmadas por medio de pago",
			},
			[]string{"payment_method"},
		),
		salesAmount: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "sales_amount_total",
			Help: "Suma de los totales de venta confirmados",
		}),
		saleItems: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "sale_items_per_sale",
			Help:    "Líneas por venta",
			Buckets: []float64{1, 2, 3, 5, 10, 20, 50},
		}),
		rejections: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "engine_rejections_total",
				Help: "Operaciones rechazadas por tipo de error",
			},
			[]string{"operation", "kind"},
		),
		requestLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duración de las peticiones HTTP en segundos",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route", "status"},
		),
	}
	p.registry.MustRegister(p.transitions, p.salesCreated, p.salesAmount, p.saleItems, p.rejections, p.requestLatency)
	if withRuntime {
		p.registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	}
	return p
}

// Registry expone el registry (tests y handler).
func (p *Prometheus) Registry() *prometheus.Registry { return p.registry }

func (p *Prometheus) UnitTransition(from, to string) {
	p.transitions.WithLabelValues(from, to).Inc()
}

func (p *Prometheus) SaleCreated(paymentMethod string, total decimal.Decimal, items int) {
	p.salesCreated.WithLabelValues(paymentMethod).Inc()
	p.salesAmount.Add(total.InexactFloat64())
	p.saleItems.Observe(float64(items))
}

func (p *Prometheus) Rejected(operation string, err error) {
	p.rejections.WithLabelValues(operation, domain.KindName(err)).Inc()
}

// Middleware mide la duración de cada petición por ruta registrada (no por path, para acotar cardinalidad).
func (p *Prometheus) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			}
		}
		route := c.Route().Path
		if route == "" {
			route = "unmatched"
		}
		p.requestLatency.WithLabelValues(c.Method(), route, strconv.Itoa(status)).Observe(time.Since(start).Seconds())
		return err
	}
}

// Handler sirve el formato de exposición de Prometheus en fiber.
func (p *Prometheus) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{}))
}
