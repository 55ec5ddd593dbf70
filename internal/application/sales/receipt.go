package sales

import (
	"context"
	"fmt"

	"github.com/jhoicas/Stock-api/internal/application/ports"
	"github.com/jhoicas/Stock-api/internal/application/stock"
	"github.com/jhoicas/Stock-api/internal/domain"
	"github.com/jhoicas/Stock-api/internal/domain/entity"
	"github.com/jhoicas/Stock-api/internal/domain/repository"
)

// ReceiptUseCase genera el comprobante PDF de una venta existente.
type ReceiptUseCase struct {
	processor *Processor
	units     repository.StockUnitRepository
	catalog   repository.CatalogRepository
	customers repository.CustomerRepository
	generator ports.ReceiptGenerator
}

// NewReceiptUseCase construye el caso de uso.
func NewReceiptUseCase(
	processor *Processor,
	units repository.StockUnitRepository,
	catalog repository.CatalogRepository,
	customers repository.CustomerRepository,
	generator ports.ReceiptGenerator,
) *ReceiptUseCase {
	return &ReceiptUseCase{
		processor: processor,
		units:     units,
		catalog:   catalog,
		customers: customers,
		generator: generator,
	}
}

// Generate devuelve el PDF del comprobante de la venta saleID.
func (uc *ReceiptUseCase) Generate(ctx context.Context, scope stock.Scope, saleID string) ([]byte, error) {
	s, err := uc.processor.loadSale(ctx, scope, saleID)
	if err != nil {
		return nil, err
	}
	shop, err := uc.catalog.GetShop(ctx, s.ShopID)
	if err != nil {
		return nil, err
	}
	if shop == nil {
		return nil, fmt.Errorf("%w: tienda %s", domain.ErrNotFound, s.ShopID)
	}
	var customer *entity.Customer
	if s.CustomerID != nil {
		customer, err = uc.customers.GetByID(ctx, *s.CustomerID)
		if err != nil {
			return nil, err
		}
	}

	lines := make([]ports.ReceiptLine, 0, len(s.Items))
	for _, it := range s.Items {
		line := ports.ReceiptLine{Item: it, Description: it.UnitID}
		u, err := uc.units.GetByID(ctx, it.UnitID)
		if err != nil {
			return nil, err
		}
		if u != nil {
			line.Identifier = receiptIdentifier(u)
			v, err := uc.catalog.GetVariant(ctx, u.VariantID)
			if err != nil {
				return nil, err
			}
			if v != nil {
				line.Description = v.ProductName + " " + v.Name
			}
		}
		lines = append(lines, line)
	}
	pdf, err := uc.generator.GenerateSaleReceipt(ctx, s, shop, customer, lines)
	if err != nil {
		return nil, fmt.Errorf("generar comprobante: %w", err)
	}
	return pdf, nil
}

func receiptIdentifier(u *entity.StockUnit) string {
	switch {
	case u.PrimaryID != nil:
		return *u.PrimaryID
	case u.Serial != nil:
		return *u.Serial
	case u.Barcode != nil:
		return *u.Barcode
	}
	return ""
}
