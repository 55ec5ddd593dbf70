package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/jhoicas/Stock-api/internal/domain"
	"github.com/jhoicas/Stock-api/internal/domain/entity"
	"github.com/jhoicas/Stock-api/internal/domain/repository"
)

var _ repository.StockUnitRepository = (*unitRepo)(nil)

type unitRepo struct{ access }

func copyUnit(u *entity.StockUnit) *entity.StockUnit {
	if u == nil {
		return nil
	}
	cp := *u
	return &cp
}

func (r *unitRepo) Create(_ context.Context, unit *entity.StockUnit) error {
	return r.update(func(d *data) error {
		if _, ok := d.units[unit.ID]; ok {
			return fmt.Errorf("%w: unidad %s ya existe", domain.ErrConflict, unit.ID)
		}
		// Mismas restricciones que los índices únicos parciales de PostgreSQL.
		if err := checkUnique(d, unit); err != nil {
			return err
		}
		d.units[unit.ID] = copyUnit(unit)
		return nil
	})
}

func checkUnique(d *data, unit *entity.StockUnit) error {
	if !unit.Active {
		return nil
	}
	for _, o := range d.units {
		if o.ID == unit.ID || !o.Active {
			continue
		}
		for _, a := range unit.PhysicalIDs() {
			for _, b := range o.PhysicalIDs() {
				if a == b {
					return fmt.Errorf("%w: imei %s duplicado", domain.ErrConflict, a)
				}
			}
		}
		if unit.Barcode != nil && o.Barcode != nil && o.ShopID == unit.ShopID && *o.Barcode == *unit.Barcode {
			return fmt.Errorf("%w: código de barras %s duplicado", domain.ErrConflict, *unit.Barcode)
		}
	}
	return nil
}

func (r *unitRepo) GetByID(_ context.Context, id string) (*entity.StockUnit, error) {
	var out *entity.StockUnit
	r.view(func(d *data) { out = copyUnit(d.units[id]) })
	return out, nil
}

// GetForUpdate en memoria la transacción ya tiene el lock exclusivo.
func (r *unitRepo) GetForUpdate(ctx context.Context, id string) (*entity.StockUnit, error) {
	return r.GetByID(ctx, id)
}

func (r *unitRepo) UpdateFields(_ context.Context, unit *entity.StockUnit) error {
	return r.update(func(d *data) error {
		cur, ok := d.units[unit.ID]
		if !ok {
			return fmt.Errorf("%w: unidad %s", domain.ErrNotFound, unit.ID)
		}
		next := *cur
		next.Identifiers = unit.Identifiers
		next.PurchasePrice = unit.PurchasePrice
		next.SalePrice = unit.SalePrice
		next.Condition = unit.Condition
		next.Notes = unit.Notes
		next.LowStockThreshold = unit.LowStockThreshold
		next.UpdatedAt = unit.UpdatedAt
		if err := checkUnique(d, &next); err != nil {
			return err
		}
		d.units[unit.ID] = &next
		return nil
	})
}

func (r *unitRepo) List(_ context.Context, f repository.UnitFilter) ([]*entity.StockUnit, error) {
	var out []*entity.StockUnit
	r.view(func(d *data) {
		for _, u := range d.units {
			if !u.Active || u.ShopID != f.ShopID {
				continue
			}
			if f.Status != "" && u.Status != f.Status {
				continue
			}
			out = append(out, copyUnit(u))
		}
	})
	sortUnits(out)
	return page(out, f.Limit, f.Offset), nil
}

// LockIdentifiers no hace nada: las transacciones en memoria ya están serializadas.
func (r *unitRepo) LockIdentifiers(context.Context, []string) error {
	return nil
}

func (r *unitRepo) FindActiveByPhysicalID(_ context.Context, value, excludeID string) (*entity.StockUnit, error) {
	var out *entity.StockUnit
	r.view(func(d *data) {
		out = first(d, func(u *entity.StockUnit) bool {
			if u.ID == excludeID {
				return false
			}
			return eq(u.PrimaryID, value) || eq(u.SecondaryID, value)
		})
	})
	return out, nil
}

func (r *unitRepo) FindActiveByBarcode(_ context.Context, shopID, barcode, excludeID string) (*entity.StockUnit, error) {
	var out *entity.StockUnit
	r.view(func(d *data) {
		out = first(d, func(u *entity.StockUnit) bool {
			return u.ID != excludeID && u.ShopID == shopID && eq(u.Barcode, barcode)
		})
	})
	return out, nil
}

func (r *unitRepo) FindByIdentifier(_ context.Context, kind, value string, shopIDs []string) (*entity.UnitDetail, error) {
	inScope := make(map[string]struct{}, len(shopIDs))
	for _, id := range shopIDs {
		inScope[id] = struct{}{}
	}
	var out *entity.UnitDetail
	r.view(func(d *data) {
		u := first(d, func(u *entity.StockUnit) bool {
			if _, ok := inScope[u.ShopID]; !ok {
				return false
			}
			switch kind {
			case "imei":
				return eq(u.PrimaryID, value) || eq(u.SecondaryID, value)
			case "serial":
				return eq(u.Serial, value)
			case "barcode":
				return eq(u.Barcode, value)
			}
			return false
		})
		if u == nil {
			return
		}
		out = &entity.UnitDetail{StockUnit: *u}
		if v, ok := d.variants[u.VariantID]; ok {
			out.ProductName = v.ProductName
			out.VariantName = v.Name
			out.BrandName = v.BrandName
			out.CategoryName = v.CategoryName
		}
	})
	return out, nil
}

// Transition misma condición que el UPDATE de PostgreSQL: activa, en From, en FromShopID y sin línea de venta.
func (r *unitRepo) Transition(_ context.Context, t entity.UnitTransition) (bool, error) {
	applied := false
	err := r.update(func(d *data) error {
		u, ok := d.units[t.UnitID]
		if !ok || !u.Active || u.Status != t.From || u.ShopID != t.FromShopID || u.SaleItemID != nil {
			return nil
		}
		next := *u
		next.Status = t.To
		next.Sold = t.To == entity.UnitStatusSold
		if t.SaleItemID != nil {
			id := *t.SaleItemID
			next.SaleItemID = &id
		}
		if t.ToShopID != "" {
			next.ShopID = t.ToShopID
			if err := checkUnique(d, &next); err != nil {
				return err
			}
		}
		next.UpdatedAt = t.At
		d.units[t.UnitID] = &next
		applied = true
		return nil
	})
	return applied, err
}

func (r *unitRepo) SoftDelete(_ context.Context, id string) (bool, error) {
	deleted := false
	err := r.update(func(d *data) error {
		u, ok := d.units[id]
		if !ok || !u.Active || u.Sold || u.SaleItemID != nil || referenced(d, id) {
			return nil
		}
		next := *u
		next.Active = false
		d.units[id] = &next
		deleted = true
		return nil
	})
	return deleted, err
}

func (r *unitRepo) ReferencedBySaleLine(_ context.Context, id string) (bool, error) {
	var out bool
	r.view(func(d *data) { out = referenced(d, id) })
	return out, nil
}

func referenced(d *data, unitID string) bool {
	for _, it := range d.saleItems {
		if it.UnitID == unitID {
			return true
		}
	}
	return false
}

func (r *unitRepo) LowStock(_ context.Context, shopID string) ([]entity.LowStockRow, error) {
	type agg struct {
		count     int
		threshold *int
	}
	var out []entity.LowStockRow
	r.view(func(d *data) {
		groups := make(map[string]*agg)
		for _, u := range d.units {
			if !u.Active || u.ShopID != shopID || u.Status != entity.UnitStatusInStock || u.Sold {
				continue
			}
			g, ok := groups[u.VariantID]
			if !ok {
				g = &agg{}
				groups[u.VariantID] = g
			}
			g.count++
			if u.LowStockThreshold != nil && (g.threshold == nil || *u.LowStockThreshold < *g.threshold) {
				v := *u.LowStockThreshold
				g.threshold = &v
			}
		}
		for variantID, g := range groups {
			if g.threshold == nil || g.count > *g.threshold {
				continue
			}
			row := entity.LowStockRow{VariantID: variantID, Count: g.count, Threshold: *g.threshold}
			if v, ok := d.variants[variantID]; ok {
				row.ProductName = v.ProductName
				row.VariantName = v.Name
			}
			out = append(out, row)
		}
	})
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count < out[j].Count
		}
		return out[i].VariantID < out[j].VariantID
	})
	return out, nil
}

// first devuelve una copia de la unidad activa más antigua que cumple match.
func first(d *data, match func(u *entity.StockUnit) bool) *entity.StockUnit {
	var found []*entity.StockUnit
	for _, u := range d.units {
		if u.Active && match(u) {
			found = append(found, u)
		}
	}
	if len(found) == 0 {
		return nil
	}
	sortUnits(found)
	return copyUnit(found[0])
}

func sortUnits(list []*entity.StockUnit) {
	sort.Slice(list, func(i, j int) bool {
		if !list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].CreatedAt.Before(list[j].CreatedAt)
		}
		return list[i].ID < list[j].ID
	})
}

func eq(p *string, v string) bool {
	return p != nil && *p == v
}

func page[T any](list []T, limit, offset int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(list) {
		return []T{}
	}
	list = list[offset:]
	if limit > 0 && limit < len(list) {
		list = list[:limit]
	}
	return list
}
