package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Métodos de pago aceptados en una venta.
const (
	PaymentCash         = "cash"
	PaymentCard         = "card"
	PaymentBankTransfer = "bank_transfer"
	PaymentMobileWallet = "mobile_wallet"
	PaymentCredit       = "credit"
	PaymentMixed        = "mixed"
)

// ValidPaymentMethod indica si m es un método de pago aceptado.
func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentBankTransfer, PaymentMobileWallet, PaymentCredit, PaymentMixed:
		return true
	}
	return false
}

// Sale transacción completada en una tienda. Inmutable una vez creada; nunca se borra.
// Invariantes: Subtotal = Σ Items.Total y Total = Subtotal - Discount + Tax.
type Sale struct {
	ID            string
	ShopID        string
	SalespersonID string
	CustomerID    *string
	PaymentMethod string
	Subtotal      decimal.Decimal
	Discount      decimal.Decimal
	Tax           decimal.Decimal
	Total         decimal.Decimal
	CreatedAt     time.Time
	Items         []*SaleItem
}

// SaleItem línea de venta: referencia exactamente una unidad y el precio capturado.
type SaleItem struct {
	ID        string
	SaleID    string
	UnitID    string
	Position  int
	Quantity  int
	UnitPrice decimal.Decimal
	Total     decimal.Decimal
}
