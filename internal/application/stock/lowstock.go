package stock

import (
	"context"

	"github.com/jhoicas/Stock-api/internal/application/dto"
)

// LowStock reporte de variantes cuya cantidad disponible en la tienda está en o por debajo del
// menor umbral configurado en sus unidades. Solo lectura.
func (r *Registry) LowStock(ctx context.Context, scope Scope, shopID string) ([]dto.LowStockItem, error) {
	if err := scope.Validate(); err != nil {
		return nil, err
	}
	shopID, err := scope.ResolveShop(shopID)
	if err != nil {
		return nil, err
	}
	rows, err := r.units.LowStock(ctx, shopID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LowStockItem, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.LowStockItem{
			VariantID:   row.VariantID,
			ProductName: row.ProductName,
			VariantName: row.VariantName,
			Count:       row.Count,
			Threshold:   row.Threshold,
		})
	}
	return out, nil
}
