package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer cliente de la tienda. TotalPurchases es un acumulado que solo modifica
// el procesador de ventas, dentro de la misma transacción de la venta.
type Customer struct {
	ID             string
	Name           string
	Phone          string
	TotalPurchases decimal.Decimal
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
