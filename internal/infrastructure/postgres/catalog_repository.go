package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Stock-api/internal/domain"
	"github.com/jhoicas/Stock-api/internal/domain/entity"
	"github.com/jhoicas/Stock-api/internal/domain/repository"
)

var _ repository.CatalogRepository = (*CatalogRepo)(nil)

// CatalogRepo lecturas sobre tablas administradas por otros módulos (tiendas, catálogo, proveedores).
type CatalogRepo struct {
	q Querier
}

// NewCatalogRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCatalogRepository(q Querier) *CatalogRepo {
	return &CatalogRepo{q: q}
}

// vendorTables tabla que resuelve cada tipo de proveedor.
var vendorTables = map[entity.VendorKind]string{
	entity.VendorKindWholesaler: "wholesalers",
	entity.VendorKindCustomer:   "customers",
	entity.VendorKindVendor:     "vendors",
}

// GetShop obtiene una tienda.
func (r *CatalogRepo) GetShop(ctx context.Context, id string) (*entity.Shop, error) {
	var s entity.Shop
	err := r.q.QueryRow(ctx, `SELECT id, name, active FROM shops WHERE id = $1`, id).Scan(&s.ID, &s.Name, &s.Active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get shop: %w", err)
	}
	return &s, nil
}

// GetVariant obtiene una variante con nombre de producto, marca y categoría.
func (r *CatalogRepo) GetVariant(ctx context.Context, id string) (*entity.Variant, error) {
	query := `
		SELECT v.id, v.product_id, p.name, v.name, COALESCE(b.name, ''), COALESCE(c.name, '')
		FROM variants v
		JOIN products p ON p.id = v.product_id
		LEFT JOIN brands b ON b.id = p.brand_id
		LEFT JOIN categories c ON c.id = p.category_id
		WHERE v.id = $1`
	var v entity.Variant
	err := r.q.QueryRow(ctx, query, id).Scan(&v.ID, &v.ProductID, &v.ProductName, &v.Name, &v.BrandName, &v.CategoryName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get variant: %w", err)
	}
	return &v, nil
}

// TaxExists indica si el impuesto existe.
func (r *CatalogRepo) TaxExists(ctx context.Context, id string) (bool, error) {
	return r.exists(ctx, "taxes", id)
}

// VendorExists resuelve la referencia en la tabla de su tipo.
func (r *CatalogRepo) VendorExists(ctx context.Context, ref entity.VendorRef) (bool, error) {
	table, ok := vendorTables[ref.Kind]
	if !ok {
		return false, fmt.Errorf("%w: vendor_type %q", domain.ErrValidation, ref.Kind)
	}
	return r.exists(ctx, table, ref.ID)
}

func (r *CatalogRepo) exists(ctx context.Context, table, id string) (bool, error) {
	var ok bool
	// table sale de un conjunto cerrado, nunca de la petición.
	err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM `+table+` WHERE id = $1)`, id).Scan(&ok)
	if err != nil {
		return false, fmt.Errorf("exists %s: %w", table, err)
	}
	return ok, nil
}

// GetGarbageReason obtiene un motivo de defecto. shop_id NULL = motivo global.
func (r *CatalogRepo) GetGarbageReason(ctx context.Context, id string) (*entity.GarbageReason, error) {
	var (
		g      entity.GarbageReason
		shopID *string
	)
	err := r.q.QueryRow(ctx, `SELECT id, shop_id, name FROM garbage_reasons WHERE id = $1`, id).Scan(&g.ID, &shopID, &g.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get garbage reason: %w", err)
	}
	g.ShopID = derefOr(shopID, "")
	return &g, nil
}
