package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// UnitStatus estado persistido de una unidad física.
type UnitStatus string

// Estados de una unidad de stock. No existe estado "en tránsito": los traslados son síncronos.
const (
	UnitStatusInStock   UnitStatus = "in_stock"
	UnitStatusSold      UnitStatus = "sold"
	UnitStatusDefective UnitStatus = "defective"
)

// Valid indica si s es un estado conocido.
func (s UnitStatus) Valid() bool {
	switch s {
	case UnitStatusInStock, UnitStatusSold, UnitStatusDefective:
		return true
	}
	return false
}

// Condition estado comercial del equipo.
type Condition string

const (
	ConditionNew         Condition = "new"
	ConditionUsed        Condition = "used"
	ConditionRefurbished Condition = "refurbished"
)

// Valid indica si c es una condición conocida.
func (c Condition) Valid() bool {
	switch c {
	case ConditionNew, ConditionUsed, ConditionRefurbished:
		return true
	}
	return false
}

// Identifiers identificadores físicos de la unidad. Todos opcionales.
// PrimaryID/SecondaryID (IMEI 1 y 2) son únicos globalmente entre unidades activas;
// Barcode es único solo dentro de la tienda dueña.
type Identifiers struct {
	PrimaryID   *string
	SecondaryID *string
	Serial      *string
	Barcode     *string
}

// PhysicalIDs devuelve los identificadores del espacio global (IMEI 1/2) no nulos.
func (i Identifiers) PhysicalIDs() []string {
	out := make([]string, 0, 2)
	if i.PrimaryID != nil {
		out = append(out, *i.PrimaryID)
	}
	if i.SecondaryID != nil {
		out = append(out, *i.SecondaryID)
	}
	return out
}

// StockUnit una unidad física rastreable (teléfono por IMEI/serie o fila de accesorio a granel).
type StockUnit struct {
	ID        string
	VariantID string
	ShopID    string
	Identifiers

	PurchasePrice     decimal.Decimal
	SalePrice         decimal.Decimal
	Condition         Condition
	Notes             string
	Vendor            *VendorRef
	TaxID             *string
	LowStockThreshold *int

	Status     UnitStatus
	Sold       bool // caché de Status == sold; se escriben siempre juntos
	SaleItemID *string
	Active     bool

	CreatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Serialized indica si la unidad se rastrea individualmente (tiene IMEI o serie).
// Las unidades no serializadas representan stock a granel y admiten cantidad > 1 en una venta.
func (u *StockUnit) Serialized() bool {
	return u.PrimaryID != nil || u.SecondaryID != nil || u.Serial != nil
}

// Available indica si la unidad puede venderse, trasladarse o marcarse defectuosa.
func (u *StockUnit) Available() bool {
	return u.Active && u.Status == UnitStatusInStock && !u.Sold && u.SaleItemID == nil
}

// UnitDetail unidad con los datos de catálogo unidos (variante, marca, categoría) para el punto de venta.
type UnitDetail struct {
	StockUnit
	ProductName  string
	VariantName  string
	BrandName    string
	CategoryName string
}

// UnitTransition cambio de estado condicional aplicado por el registro.
// El adaptador de persistencia solo escribe si la fila sigue en From (y en FromShopID);
// cero filas afectadas significa que otra escritura concurrente ganó.
type UnitTransition struct {
	UnitID     string
	From       UnitStatus
	To         UnitStatus
	FromShopID string
	ToShopID   string  // vacío = no cambia de tienda
	SaleItemID *string // solo para From=in_stock → To=sold
	At         time.Time
}
