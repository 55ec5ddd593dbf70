package ports

import "github.com/shopspring/decimal"

// EngineMetrics contadores del motor de stock. La implementación de Prometheus vive en infraestructura.
type EngineMetrics interface {
	UnitTransition(from, to string)
	SaleCreated(paymentMethod string, total decimal.Decimal, items int)
	Rejected(operation string, err error)
}

// NopMetrics no registra nada (tests, herramientas).
type NopMetrics struct{}

func (NopMetrics) UnitTransition(string, string)            {}
func (NopMetrics) SaleCreated(string, decimal.Decimal, int) {}
func (NopMetrics) Rejected(string, error)                   {}
