package repository

import (
	"context"

	"github.com/jhoicas/Stock-api/internal/domain/entity"
)

// UnitFilter filtros de listado de unidades de una tienda.
type UnitFilter struct {
	ShopID string
	Status entity.UnitStatus // vacío = todos
	Limit  int
	Offset int
}

// StockUnitRepository puerto del registro de unidades.
// Los métodos que devuelven una unidad retornan (nil, nil) cuando no existe, como el resto de repos.
// Usado dentro de transacciones para garantizar consistencia.
type StockUnitRepository interface {
	Create(ctx context.Context, unit *entity.StockUnit) error
	GetByID(ctx context.Context, id string) (*entity.StockUnit, error)
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE).
	GetForUpdate(ctx context.Context, id string) (*entity.StockUnit, error)
	// UpdateFields escribe identificadores y campos comerciales; nunca estado, tienda ni vendida.
	UpdateFields(ctx context.Context, unit *entity.StockUnit) error
	List(ctx context.Context, f UnitFilter) ([]*entity.StockUnit, error)

	// LockIdentifiers serializa escritores concurrentes sobre las mismas claves hasta el fin de la tx.
	LockIdentifiers(ctx context.Context, keys []string) error
	// FindActiveByPhysicalID busca una unidad activa cuyo IMEI primario o secundario sea value,
	// ignorando excludeID (auto-actualización).
	FindActiveByPhysicalID(ctx context.Context, value, excludeID string) (*entity.StockUnit, error)
	// FindActiveByBarcode busca una unidad activa de la tienda con ese código, ignorando excludeID.
	FindActiveByBarcode(ctx context.Context, shopID, barcode, excludeID string) (*entity.StockUnit, error)
	// FindByIdentifier búsqueda de punto de venta restringida a shopIDs, con datos de catálogo unidos.
	FindByIdentifier(ctx context.Context, kind, value string, shopIDs []string) (*entity.UnitDetail, error)

	// Transition aplica un cambio de estado condicional; false si la fila ya no cumple la condición.
	Transition(ctx context.Context, t entity.UnitTransition) (bool, error)
	// SoftDelete marca active=false solo si nunca se vendió ni la referencia una línea de venta.
	SoftDelete(ctx context.Context, id string) (bool, error)
	ReferencedBySaleLine(ctx context.Context, id string) (bool, error)

	// LowStock agrupa unidades disponibles por variante y devuelve las que están en o bajo su umbral mínimo.
	LowStock(ctx context.Context, shopID string) ([]entity.LowStockRow, error)
}
