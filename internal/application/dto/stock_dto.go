package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// UnitIdentifiersRequest identificadores físicos de una unidad. Todos opcionales.
type UnitIdentifiersRequest struct {
	PrimaryID   *string `json:"primary_imei,omitempty"`
	SecondaryID *string `json:"secondary_imei,omitempty"`
	Serial      *string `json:"serial,omitempty"`
	Barcode     *string `json:"barcode,omitempty"`
}

// UnitCommercialRequest campos comerciales compartidos por alta simple y masiva.
type UnitCommercialRequest struct {
	PurchasePrice     decimal.Decimal `json:"purchase_price"`
	SalePrice         decimal.Decimal `json:"sale_price"`
	Condition         string          `json:"condition"` // new | used | refurbished (vacío = new)
	Notes             string          `json:"notes,omitempty"`
	VendorType        string          `json:"vendor_type,omitempty"` // wholesaler | customer | vendor
	VendorID          string          `json:"vendor_id,omitempty"`
	TaxID             *string         `json:"tax_id,omitempty"`
	LowStockThreshold *int            `json:"low_stock_threshold,omitempty"`
}

// CreateUnitRequest body para POST /api/stock/units.
// ShopID vacío = tienda activa de la sesión.
type CreateUnitRequest struct {
	VariantID string `json:"variant_id"`
	ShopID    string `json:"shop_id,omitempty"`
	UnitIdentifiersRequest
	UnitCommercialRequest
}

// BulkCreateUnitsRequest body para POST /api/stock/units/bulk.
// Quantity debe coincidir con len(Units); el lote se crea completo o no se crea.
type BulkCreateUnitsRequest struct {
	VariantID string                   `json:"variant_id"`
	ShopID    string                   `json:"shop_id,omitempty"`
	Quantity  int                      `json:"quantity"`
	Units     []UnitIdentifiersRequest `json:"units"`
	UnitCommercialRequest
}

// UpdateUnitRequest body para PATCH /api/stock/units/:id. Solo se aplican los campos presentes.
// Un identificador enviado como "" se borra.
type UpdateUnitRequest struct {
	PrimaryID         *string          `json:"primary_imei,omitempty"`
	SecondaryID       *string          `json:"secondary_imei,omitempty"`
	Serial            *string          `json:"serial,omitempty"`
	Barcode           *string          `json:"barcode,omitempty"`
	PurchasePrice     *decimal.Decimal `json:"purchase_price,omitempty"`
	SalePrice         *decimal.Decimal `json:"sale_price,omitempty"`
	Condition         *string          `json:"condition,omitempty"`
	Notes             *string          `json:"notes,omitempty"`
	LowStockThreshold *int             `json:"low_stock_threshold,omitempty"`
}

// ListUnitsRequest query de GET /api/stock/units.
type ListUnitsRequest struct {
	ShopID string `query:"shop_id"`
	Status string `query:"status"`
	PageRequest
}

// UnitResponse unidad en respuestas. Los datos de catálogo solo vienen en búsquedas de punto de venta.
type UnitResponse struct {
	ID                string          `json:"id"`
	VariantID         string          `json:"variant_id"`
	ShopID            string          `json:"shop_id"`
	PrimaryID         *string         `json:"primary_imei,omitempty"`
	SecondaryID       *string         `json:"secondary_imei,omitempty"`
	Serial            *string         `json:"serial,omitempty"`
	Barcode           *string         `json:"barcode,omitempty"`
	PurchasePrice     decimal.Decimal `json:"purchase_price"`
	SalePrice         decimal.Decimal `json:"sale_price"`
	Condition         string          `json:"condition"`
	Notes             string          `json:"notes,omitempty"`
	VendorType        string          `json:"vendor_type,omitempty"`
	VendorID          string          `json:"vendor_id,omitempty"`
	TaxID             *string         `json:"tax_id,omitempty"`
	LowStockThreshold *int            `json:"low_stock_threshold,omitempty"`
	Status            string          `json:"status"`
	Sold              bool            `json:"sold"`
	SaleItemID        *string         `json:"sale_item_id,omitempty"`
	Active            bool            `json:"active"`
	Available         bool            `json:"available"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`

	ProductName  string `json:"product_name,omitempty"`
	VariantName  string `json:"variant_name,omitempty"`
	BrandName    string `json:"brand_name,omitempty"`
	CategoryName string `json:"category_name,omitempty"`
}

// LowStockItem variante en o por debajo de su umbral.
type LowStockItem struct {
	VariantID   string `json:"variant_id"`
	ProductName string `json:"product_name"`
	VariantName string `json:"variant_name"`
	Count       int    `json:"count"`
	Threshold   int    `json:"threshold"`
}
