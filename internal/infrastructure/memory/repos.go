package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Stock-api/internal/domain"
	"github.com/jhoicas/Stock-api/internal/domain/entity"
	"github.com/jhoicas/Stock-api/internal/domain/repository"
)

var (
	_ repository.SaleRepository     = (*saleRepo)(nil)
	_ repository.CustomerRepository = (*customerRepo)(nil)
	_ repository.TransferRepository = (*transferRepo)(nil)
	_ repository.GarbageRepository  = (*garbageRepo)(nil)
	_ repository.CatalogRepository  = (*catalogRepo)(nil)
)

type saleRepo struct{ access }

func (r *saleRepo) Create(_ context.Context, sale *entity.Sale) error {
	return r.update(func(d *data) error {
		if _, ok := d.sales[sale.ID]; ok {
			return fmt.Errorf("%w: venta %s ya existe", domain.ErrConflict, sale.ID)
		}
		cp := *sale
		cp.Items = nil
		d.sales[sale.ID] = &cp
		return nil
	})
}

func (r *saleRepo) CreateItem(_ context.Context, item *entity.SaleItem) error {
	return r.update(func(d *data) error {
		if _, ok := d.sales[item.SaleID]; !ok {
			return fmt.Errorf("%w: venta %s", domain.ErrNotFound, item.SaleID)
		}
		if _, ok := d.units[item.UnitID]; !ok {
			return fmt.Errorf("%w: unidad %s", domain.ErrNotFound, item.UnitID)
		}
		cp := *item
		d.saleItems[item.ID] = &cp
		return nil
	})
}

func (r *saleRepo) GetByID(_ context.Context, id string) (*entity.Sale, error) {
	var out *entity.Sale
	r.view(func(d *data) {
		if s, ok := d.sales[id]; ok {
			cp := *s
			out = &cp
		}
	})
	return out, nil
}

func (r *saleRepo) GetItemsBySaleID(_ context.Context, saleID string) ([]*entity.SaleItem, error) {
	var out []*entity.SaleItem
	r.view(func(d *data) {
		for _, it := range d.saleItems {
			if it.SaleID == saleID {
				cp := *it
				out = append(out, &cp)
			}
		}
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out, nil
}

type customerRepo struct{ access }

func (r *customerRepo) GetByID(_ context.Context, id string) (*entity.Customer, error) {
	var out *entity.Customer
	r.view(func(d *data) {
		if c, ok := d.customers[id]; ok {
			cp := *c
			out = &cp
		}
	})
	return out, nil
}

func (r *customerRepo) AddPurchase(_ context.Context, id string, amount decimal.Decimal) (bool, error) {
	found := false
	err := r.update(func(d *data) error {
		c, ok := d.customers[id]
		if !ok {
			return nil
		}
		next := *c
		next.TotalPurchases = next.TotalPurchases.Add(amount)
		d.customers[id] = &next
		found = true
		return nil
	})
	return found, err
}

type transferRepo struct{ access }

func (r *transferRepo) Create(_ context.Context, t *entity.StockTransfer) error {
	return r.update(func(d *data) error {
		cp := *t
		cp.Items = nil
		d.transfers[t.ID] = &cp
		return nil
	})
}

func (r *transferRepo) CreateItem(_ context.Context, item *entity.StockTransferItem) error {
	return r.update(func(d *data) error {
		if _, ok := d.transfers[item.TransferID]; !ok {
			return fmt.Errorf("%w: traslado %s", domain.ErrNotFound, item.TransferID)
		}
		cp := *item
		d.transferItems[item.ID] = &cp
		return nil
	})
}

func (r *transferRepo) ListByShop(_ context.Context, shopID string, limit, offset int) ([]*entity.StockTransfer, error) {
	var out []*entity.StockTransfer
	r.view(func(d *data) {
		for _, t := range d.transfers {
			if t.FromShopID != shopID && t.ToShopID != shopID {
				continue
			}
			cp := *t
			for _, it := range d.transferItems {
				if it.TransferID == t.ID {
					item := *it
					cp.Items = append(cp.Items, &item)
				}
			}
			sort.Slice(cp.Items, func(i, j int) bool { return cp.Items[i].UnitID < cp.Items[j].UnitID })
			out = append(out, &cp)
		}
	})
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return page(out, limit, offset), nil
}

type garbageRepo struct{ access }

func (r *garbageRepo) Create(_ context.Context, rec *entity.GarbageRecord) error {
	return r.update(func(d *data) error {
		if rec.Active {
			for _, g := range d.garbage {
				if g.Active && g.UnitID == rec.UnitID {
					return fmt.Errorf("%w: la unidad %s ya tiene un registro activo", domain.ErrConflict, rec.UnitID)
				}
			}
		}
		cp := *rec
		d.garbage[rec.ID] = &cp
		return nil
	})
}

func (r *garbageRepo) GetByID(_ context.Context, id string) (*entity.GarbageRecord, error) {
	var out *entity.GarbageRecord
	r.view(func(d *data) {
		if g, ok := d.garbage[id]; ok {
			cp := *g
			out = &cp
		}
	})
	return out, nil
}

func (r *garbageRepo) GetActiveByUnit(_ context.Context, unitID string) (*entity.GarbageRecord, error) {
	var out *entity.GarbageRecord
	r.view(func(d *data) {
		for _, g := range d.garbage {
			if g.Active && g.UnitID == unitID {
				cp := *g
				out = &cp
				return
			}
		}
	})
	return out, nil
}

func (r *garbageRepo) UpdateReason(_ context.Context, id, reasonID string) (bool, error) {
	return r.modify(id, func(g *entity.GarbageRecord) { g.ReasonID = reasonID })
}

func (r *garbageRepo) Deactivate(_ context.Context, id string) (bool, error) {
	return r.modify(id, func(g *entity.GarbageRecord) { g.Active = false })
}

func (r *garbageRepo) modify(id string, fn func(g *entity.GarbageRecord)) (bool, error) {
	found := false
	err := r.update(func(d *data) error {
		g, ok := d.garbage[id]
		if !ok {
			return nil
		}
		next := *g
		fn(&next)
		d.garbage[id] = &next
		found = true
		return nil
	})
	return found, err
}

func (r *garbageRepo) Delete(_ context.Context, id string) (bool, error) {
	found := false
	err := r.update(func(d *data) error {
		if _, ok := d.garbage[id]; ok {
			delete(d.garbage, id)
			found = true
		}
		return nil
	})
	return found, err
}

func (r *garbageRepo) ListByShop(_ context.Context, shopID string, activeOnly bool) ([]*entity.GarbageRecord, error) {
	var out []*entity.GarbageRecord
	r.view(func(d *data) {
		for _, g := range d.garbage {
			u, ok := d.units[g.UnitID]
			if !ok || u.ShopID != shopID || (activeOnly && !g.Active) {
				continue
			}
			cp := *g
			out = append(out, &cp)
		}
	})
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

type catalogRepo struct{ access }

func (r *catalogRepo) GetShop(_ context.Context, id string) (*entity.Shop, error) {
	var out *entity.Shop
	r.view(func(d *data) {
		if s, ok := d.shops[id]; ok {
			cp := *s
			out = &cp
		}
	})
	return out, nil
}

func (r *catalogRepo) GetVariant(_ context.Context, id string) (*entity.Variant, error) {
	var out *entity.Variant
	r.view(func(d *data) {
		if v, ok := d.variants[id]; ok {
			cp := *v
			out = &cp
		}
	})
	return out, nil
}

func (r *catalogRepo) TaxExists(_ context.Context, id string) (bool, error) {
	var ok bool
	r.view(func(d *data) { _, ok = d.taxes[id] })
	return ok, nil
}

func (r *catalogRepo) VendorExists(_ context.Context, ref entity.VendorRef) (bool, error) {
	var ok bool
	r.view(func(d *data) { _, ok = d.vendors[ref] })
	return ok, nil
}

func (r *catalogRepo) GetGarbageReason(_ context.Context, id string) (*entity.GarbageReason, error) {
	var out *entity.GarbageReason
	r.view(func(d *data) {
		if g, ok := d.reasons[id]; ok {
			cp := *g
			out = &cp
		}
	})
	return out, nil
}
