package repository

import (
	"context"

	"github.com/jhoicas/Stock-api/internal/domain/entity"
)

// CatalogRepository consultas de solo lectura sobre entidades administradas fuera del motor
// (tiendas, variantes, impuestos, proveedores, motivos de defecto).
type CatalogRepository interface {
	GetShop(ctx context.Context, id string) (*entity.Shop, error)
	GetVariant(ctx context.Context, id string) (*entity.Variant, error)
	TaxExists(ctx context.Context, id string) (bool, error)
	// VendorExists resuelve la referencia contra la tabla que indica su tipo.
	VendorExists(ctx context.Context, ref entity.VendorRef) (bool, error)
	GetGarbageReason(ctx context.Context, id string) (*entity.GarbageReason, error)
}
