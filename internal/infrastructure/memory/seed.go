package memory

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Stock-api/internal/domain/entity"
)

// Ids fijos del catálogo de demostración.
const (
	DemoShopA    = "shop-a"
	DemoShopB    = "shop-b"
	DemoVariant  = "variant-phone-128"
	DemoCase     = "variant-case-black"
	DemoCustomer = "customer-1"
	DemoReason   = "reason-screen"
	DemoTax      = "tax-iva"
	DemoVendor   = "vendor-1"
)

// SeedDemo carga el catálogo mínimo para operar el motor en modo desarrollo.
func SeedDemo(s *Store) {
	s.AddShop(entity.Shop{ID: DemoShopA, Name: "Tienda Centro", Active: true})
	s.AddShop(entity.Shop{ID: DemoShopB, Name: "Tienda Norte", Active: true})
	s.AddVariant(entity.Variant{
		ID:           DemoVariant,
		ProductID:    "product-phone",
		ProductName:  "Galaxy A15",
		Name:         "128GB Negro",
		BrandName:    "Samsung",
		CategoryName: "Celulares",
	})
	s.AddVariant(entity.Variant{
		ID:           DemoCase,
		ProductID:    "product-case",
		ProductName:  "Funda silicona",
		Name:         "Negra",
		CategoryName: "Accesorios",
	})
	now := time.Now().UTC()
	s.AddCustomer(entity.Customer{ID: DemoCustomer, Name: "Cliente mostrador", TotalPurchases: decimal.Zero, CreatedAt: now, UpdatedAt: now})
	s.AddTax(DemoTax)
	s.AddVendor(entity.VendorRef{Kind: entity.VendorKindVendor, ID: DemoVendor})
	s.AddGarbageReason(entity.GarbageReason{ID: DemoReason, Name: "Pantalla rota"})
}
