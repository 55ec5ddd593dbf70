package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSaleRequest body para POST /api/sales. La tienda y el vendedor salen de la sesión.
type CreateSaleRequest struct {
	CustomerID    *string           `json:"customer_id,omitempty"`
	PaymentMethod string            `json:"payment_method"`
	Items         []SaleItemRequest `json:"items"`
	Discount      decimal.Decimal   `json:"discount"`
	Tax           decimal.Decimal   `json:"tax"`
}

// SaleItemRequest línea del carrito. Price nil = precio de venta guardado en la unidad.
type SaleItemRequest struct {
	UnitID   string           `json:"unit_id"`
	Price    *decimal.Decimal `json:"price,omitempty"`
	Quantity int              `json:"quantity,omitempty"` // 0 = 1
}

// SaleResponse venta con sus líneas.
type SaleResponse struct {
	ID            string             `json:"id"`
	ShopID        string             `json:"shop_id"`
	SalespersonID string             `json:"salesperson_id"`
	CustomerID    *string            `json:"customer_id,omitempty"`
	PaymentMethod string             `json:"payment_method"`
	Subtotal      decimal.Decimal    `json:"subtotal"`
	Discount      decimal.Decimal    `json:"discount"`
	Tax           decimal.Decimal    `json:"tax"`
	Total         decimal.Decimal    `json:"total"`
	CreatedAt     time.Time          `json:"created_at"`
	Items         []SaleItemResponse `json:"items"`
}

// SaleItemResponse línea de venta.
type SaleItemResponse struct {
	ID        string          `json:"id"`
	UnitID    string          `json:"unit_id"`
	Position  int             `json:"position"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Total     decimal.Decimal `json:"total"`
}
