// Package sale implementa la aritmética de una venta en punto fijo (servicio de dominio).
package sale

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Stock-api/internal/domain"
)

// Scale decimales con que se persisten montos.
const Scale = 2

// Line precio y cantidad de una línea ya resuelta.
type Line struct {
	UnitPrice decimal.Decimal
	Quantity  int
}

// NewLine redondea el precio a Scale: lo que se persiste como precio unitario es lo que se multiplica.
func NewLine(price decimal.Decimal, quantity int) Line {
	return Line{UnitPrice: price.Round(Scale), Quantity: quantity}
}

// Total precio unitario (a Scale) × cantidad. Total == UnitPrice × Quantity sin residuo.
func (l Line) Total() decimal.Decimal {
	return l.UnitPrice.Round(Scale).Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Totals montos de cabecera de la venta.
type Totals struct {
	Subtotal decimal.Decimal
	Discount decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// Calculate aplica Subtotal = Σ líneas y Total = Subtotal - Descuento + Impuesto.
// Descuento e impuesto deben ser no negativos y el total no puede quedar negativo.
func Calculate(lines []Line, discount, tax decimal.Decimal) (Totals, error) {
	if discount.IsNegative() || tax.IsNegative() {
		return Totals{}, fmt.Errorf("%w: descuento e impuesto deben ser >= 0", domain.ErrValidation)
	}
	subtotal := decimal.Zero
	for _, l := range lines {
		if l.Quantity < 1 {
			return Totals{}, fmt.Errorf("%w: cantidad %d", domain.ErrValidation, l.Quantity)
		}
		if l.UnitPrice.IsNegative() {
			return Totals{}, fmt.Errorf("%w: precio negativo", domain.ErrValidation)
		}
		subtotal = subtotal.Add(l.Total())
	}
	discount = discount.Round(Scale)
	tax = tax.Round(Scale)
	total := subtotal.Sub(discount).Add(tax)
	if total.IsNegative() {
		return Totals{}, fmt.Errorf("%w: el descuento supera el importe de la venta", domain.ErrValidation)
	}
	return Totals{Subtotal: subtotal, Discount: discount, Tax: tax, Total: total}, nil
}
