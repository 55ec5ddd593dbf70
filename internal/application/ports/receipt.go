package ports

import (
	"context"

	"github.com/jhoicas/Stock-api/internal/domain/entity"
)

// ReceiptLine línea del comprobante con datos de catálogo resueltos.
type ReceiptLine struct {
	Item        *entity.SaleItem
	Description string
	Identifier  string // IMEI o serie impresos en el comprobante
}

// ReceiptGenerator genera el comprobante de venta (PDF).
type ReceiptGenerator interface {
	GenerateSaleReceipt(ctx context.Context, sale *entity.Sale, shop *entity.Shop, customer *entity.Customer, lines []ReceiptLine) ([]byte, error)
}
