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

var _ repository.StockUnitRepository = (*StockUnitRepo)(nil)

// StockUnitRepo implementación de StockUnitRepository sobre PostgreSQL (usable con pool o tx).
type StockUnitRepo struct {
	q Querier
}

// NewStockUnitRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockUnitRepository(q Querier) *StockUnitRepo {
	return &StockUnitRepo{q: q}
}

const unitColumns = `
	u.id, u.variant_id, u.shop_id, u.primary_imei, u.secondary_imei, u.serial, u.barcode,
	u.purchase_price, u.sale_price, u.condition, u.notes, u.vendor_type, u.vendor_id, u.tax_id,
	u.low_stock_threshold, u.status, u.sold, u.sale_item_id, u.active, u.created_by, u.created_at, u.updated_at`

func scanUnit(row pgx.Row, extra ...any) (*entity.StockUnit, error) {
	var (
		u                    entity.StockUnit
		vendorType, vendorID *string
		condition, status    string
	)
	dest := []any{
		&u.ID, &u.VariantID, &u.ShopID, &u.PrimaryID, &u.SecondaryID, &u.Serial, &u.Barcode,
		&u.PurchasePrice, &u.SalePrice, &condition, &u.Notes, &vendorType, &vendorID, &u.TaxID,
		&u.LowStockThreshold, &status, &u.Sold, &u.SaleItemID, &u.Active, &u.CreatedBy, &u.CreatedAt, &u.UpdatedAt,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}
	u.Condition = entity.Condition(condition)
	u.Status = entity.UnitStatus(status)
	if vendorType != nil && vendorID != nil {
		u.Vendor = &entity.VendorRef{Kind: entity.VendorKind(*vendorType), ID: *vendorID}
	}
	return &u, nil
}

func (r *StockUnitRepo) getOne(ctx context.Context, op, query string, args ...any) (*entity.StockUnit, error) {
	u, err := scanUnit(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}

// Create persiste una nueva unidad. Una violación de índice único se devuelve como ErrConflict.
func (r *StockUnitRepo) Create(ctx context.Context, u *entity.StockUnit) error {
	query := `
		INSERT INTO stock_units (
			id, variant_id, shop_id, primary_imei, secondary_imei, serial, barcode,
			purchase_price, sale_price, condition, notes, vendor_type, vendor_id, tax_id,
			low_stock_threshold, status, sold, sale_item_id, active, created_by, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)`
	var vendorType, vendorID *string
	if u.Vendor != nil {
		vendorType = nullIfEmpty(string(u.Vendor.Kind))
		vendorID = nullIfEmpty(u.Vendor.ID)
	}
	_, err := r.q.Exec(ctx, query,
		u.ID, u.VariantID, u.ShopID, u.PrimaryID, u.SecondaryID, u.Serial, u.Barcode,
		u.PurchasePrice, u.SalePrice, string(u.Condition), u.Notes, vendorType, vendorID, u.TaxID,
		u.LowStockThreshold, string(u.Status), u.Sold, u.SaleItemID, u.Active, u.CreatedBy, u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return identifierConflict(err)
		}
		return fmt.Errorf("insert stock unit: %w", err)
	}
	return nil
}

// GetByID obtiene una unidad por ID (activa o no).
func (r *StockUnitRepo) GetByID(ctx context.Context, id string) (*entity.StockUnit, error) {
	return r.getOne(ctx, "get stock unit", `SELECT `+unitColumns+` FROM stock_units u WHERE u.id = $1`, id)
}

// GetForUpdate obtiene la unidad y bloquea la fila hasta el fin de la transacción.
func (r *StockUnitRepo) GetForUpdate(ctx context.Context, id string) (*entity.StockUnit, error) {
	return r.getOne(ctx, "get stock unit for update", `SELECT `+unitColumns+` FROM stock_units u WHERE u.id = $1 FOR UPDATE`, id)
}

// UpdateFields escribe identificadores y campos comerciales de una unidad activa.
func (r *StockUnitRepo) UpdateFields(ctx context.Context, u *entity.StockUnit) error {
	query := `
		UPDATE stock_units SET
			primary_imei = $2, secondary_imei = $3, serial = $4, barcode = $5,
			purchase_price = $6, sale_price = $7, condition = $8, notes = $9,
			low_stock_threshold = $10, updated_at = $11
		WHERE id = $1 AND active`
	tag, err := r.q.Exec(ctx, query,
		u.ID, u.PrimaryID, u.SecondaryID, u.Serial, u.Barcode,
		u.PurchasePrice, u.SalePrice, string(u.Condition), u.Notes,
		u.LowStockThreshold, u.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return identifierConflict(err)
		}
		return fmt.Errorf("update stock unit: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: unidad %s", domain.ErrNotFound, u.ID)
	}
	return nil
}

// List unidades activas de una tienda, más antiguas primero.
func (r *StockUnitRepo) List(ctx context.Context, f repository.UnitFilter) ([]*entity.StockUnit, error) {
	query := `SELECT ` + unitColumns + ` FROM stock_units u
		WHERE u.active AND u.shop_id = $1 AND ($2 = '' OR u.status = $2)
		ORDER BY u.created_at, u.id
		LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(ctx, query, f.ShopID, string(f.Status), f.Limit, f.Offset)
	if err != nil {
		return nil, fmt.Errorf("list stock units: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockUnit
	for rows.Next() {
		u, err := scanUnit(rows)
		if err != nil {
			return nil, fmt.Errorf("scan stock unit: %w", err)
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

// LockIdentifiers toma un advisory lock de transacción por clave, en el orden recibido (ya ordenado).
func (r *StockUnitRepo) LockIdentifiers(ctx context.Context, keys []string) error {
	for _, k := range keys {
		if _, err := r.q.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, k); err != nil {
			return fmt.Errorf("advisory lock %s: %w", k, err)
		}
	}
	return nil
}

// FindActiveByPhysicalID IMEI primario o secundario en cualquier tienda.
func (r *StockUnitRepo) FindActiveByPhysicalID(ctx context.Context, value, excludeID string) (*entity.StockUnit, error) {
	query := `SELECT ` + unitColumns + ` FROM stock_units u
		WHERE u.active AND (u.primary_imei = $1 OR u.secondary_imei = $1) AND u.id <> $2
		ORDER BY u.created_at LIMIT 1`
	return r.getOne(ctx, "find unit by imei", query, value, excludeID)
}

// FindActiveByBarcode código de barras dentro de una tienda.
func (r *StockUnitRepo) FindActiveByBarcode(ctx context.Context, shopID, barcode, excludeID string) (*entity.StockUnit, error) {
	query := `SELECT ` + unitColumns + ` FROM stock_units u
		WHERE u.active AND u.shop_id = $1 AND u.barcode = $2 AND u.id <> $3
		ORDER BY u.created_at LIMIT 1`
	return r.getOne(ctx, "find unit by barcode", query, shopID, barcode, excludeID)
}

// FindByIdentifier búsqueda de punto de venta con variante, producto, marca y categoría unidos.
func (r *StockUnitRepo) FindByIdentifier(ctx context.Context, kind, value string, shopIDs []string) (*entity.UnitDetail, error) {
	var predicate string
	switch kind {
	case "imei":
		predicate = "(u.primary_imei = $1 OR u.secondary_imei = $1)"
	case "serial":
		predicate = "u.serial = $1"
	case "barcode":
		predicate = "u.barcode = $1"
	default:
		return nil, fmt.Errorf("%w: tipo de identificador %q", domain.ErrValidation, kind)
	}
	query := `SELECT ` + unitColumns + `,
			p.name, v.name, COALESCE(b.name, ''), COALESCE(c.name, '')
		FROM stock_units u
		JOIN variants v ON v.id = u.variant_id
		JOIN products p ON p.id = v.product_id
		LEFT JOIN brands b ON b.id = p.brand_id
		LEFT JOIN categories c ON c.id = p.category_id
		WHERE u.active AND u.shop_id = ANY($2) AND ` + predicate + `
		ORDER BY u.created_at LIMIT 1`
	var d entity.UnitDetail
	u, err := scanUnit(r.q.QueryRow(ctx, query, value, shopIDs), &d.ProductName, &d.VariantName, &d.BrandName, &d.CategoryName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find unit by identifier: %w", err)
	}
	d.StockUnit = *u
	return &d, nil
}

// Transition UPDATE condicional: solo escribe si la fila sigue activa, en el estado y tienda de
// origen y sin línea de venta. status y sold se escriben siempre juntos.
func (r *StockUnitRepo) Transition(ctx context.Context, t entity.UnitTransition) (bool, error) {
	query := `
		UPDATE stock_units SET
			status = $2::text,
			sold = ($2::text = 'sold'),
			sale_item_id = COALESCE($5::text, sale_item_id),
			shop_id = COALESCE($6::text, shop_id),
			updated_at = $7
		WHERE id = $1 AND active AND status = $3 AND shop_id = $4 AND sale_item_id IS NULL`
	tag, err := r.q.Exec(ctx, query,
		t.UnitID, string(t.To), string(t.From), t.FromShopID, t.SaleItemID, nullIfEmpty(t.ToShopID), t.At,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return false, fmt.Errorf("%w en la tienda destino", identifierConflict(err))
		}
		return false, fmt.Errorf("transition stock unit: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// SoftDelete marca active=false solo si la unidad nunca se vendió ni la referencia una línea de venta.
func (r *StockUnitRepo) SoftDelete(ctx context.Context, id string) (bool, error) {
	query := `
		UPDATE stock_units SET active = false, updated_at = now()
		WHERE id = $1 AND active AND NOT sold AND sale_item_id IS NULL
		  AND NOT EXISTS (SELECT 1 FROM sale_items si WHERE si.unit_id = $1)`
	tag, err := r.q.Exec(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("soft delete stock unit: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// ReferencedBySaleLine indica si alguna línea de venta apunta a la unidad.
func (r *StockUnitRepo) ReferencedBySaleLine(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM sale_items WHERE unit_id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("sale line reference: %w", err)
	}
	return exists, nil
}

// LowStock cuenta unidades disponibles por variante y compara con el menor umbral de esas unidades.
func (r *StockUnitRepo) LowStock(ctx context.Context, shopID string) ([]entity.LowStockRow, error) {
	query := `
		SELECT u.variant_id, COALESCE(p.name, ''), COALESCE(v.name, ''),
			COUNT(*)::int AS available, MIN(u.low_stock_threshold)::int AS threshold
		FROM stock_units u
		LEFT JOIN variants v ON v.id = u.variant_id
		LEFT JOIN products p ON p.id = v.product_id
		WHERE u.shop_id = $1 AND u.active AND u.status = 'in_stock' AND NOT u.sold
		GROUP BY u.variant_id, p.name, v.name
		HAVING MIN(u.low_stock_threshold) IS NOT NULL AND COUNT(*) <= MIN(u.low_stock_threshold)
		ORDER BY available, u.variant_id`
	rows, err := r.q.Query(ctx, query, shopID)
	if err != nil {
		return nil, fmt.Errorf("low stock: %w", err)
	}
	defer rows.Close()
	var out []entity.LowStockRow
	for rows.Next() {
		var row entity.LowStockRow
		if err := rows.Scan(&row.VariantID, &row.ProductName, &row.VariantName, &row.Count, &row.Threshold); err != nil {
			return nil, fmt.Errorf("scan low stock: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

