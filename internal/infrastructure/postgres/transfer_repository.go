package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Stock-api/internal/domain/entity"
	"github.com/jhoicas/Stock-api/internal/domain/repository"
)

var _ repository.TransferRepository = (*TransferRepo)(nil)

// TransferRepo implementación de TransferRepository (usable con pool o tx).
type TransferRepo struct {
	q Querier
}

// NewTransferRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransferRepository(q Querier) *TransferRepo {
	return &TransferRepo{q: q}
}

// Create persiste la cabecera del traslado.
func (r *TransferRepo) Create(ctx context.Context, t *entity.StockTransfer) error {
	query := `
		INSERT INTO stock_transfers (id, from_shop_id, to_shop_id, status, notes, requested_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query, t.ID, t.FromShopID, t.ToShopID, t.Status, t.Notes, t.RequestedBy, t.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert stock transfer: %w", err)
	}
	return nil
}

// CreateItem persiste una unidad del traslado.
func (r *TransferRepo) CreateItem(ctx context.Context, it *entity.StockTransferItem) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO stock_transfer_items (id, transfer_id, unit_id) VALUES ($1, $2, $3)`,
		it.ID, it.TransferID, it.UnitID,
	)
	if err != nil {
		return fmt.Errorf("insert stock transfer item: %w", err)
	}
	return nil
}

// ListByShop traslados con origen o destino en la tienda, más recientes primero, con sus unidades.
func (r *TransferRepo) ListByShop(ctx context.Context, shopID string, limit, offset int) ([]*entity.StockTransfer, error) {
	query := `
		SELECT id, from_shop_id, to_shop_id, status, COALESCE(notes, ''), requested_by, created_at
		FROM stock_transfers
		WHERE from_shop_id = $1 OR to_shop_id = $1
		ORDER BY created_at DESC, id
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, shopID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stock transfers: %w", err)
	}
	var (
		list []*entity.StockTransfer
		ids  []string
		byID = make(map[string]*entity.StockTransfer)
	)
	for rows.Next() {
		var t entity.StockTransfer
		if err := rows.Scan(&t.ID, &t.FromShopID, &t.ToShopID, &t.Status, &t.Notes, &t.RequestedBy, &t.CreatedAt); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan stock transfer: %w", err)
		}
		list = append(list, &t)
		ids = append(ids, t.ID)
		byID[t.ID] = &t
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list stock transfers: %w", err)
	}
	if len(ids) == 0 {
		return list, nil
	}

	itemRows, err := r.q.Query(ctx,
		`SELECT id, transfer_id, unit_id FROM stock_transfer_items WHERE transfer_id = ANY($1) ORDER BY unit_id`,
		ids,
	)
	if err != nil {
		return nil, fmt.Errorf("list stock transfer items: %w", err)
	}
	defer itemRows.Close()
	for itemRows.Next() {
		var it entity.StockTransferItem
		if err := itemRows.Scan(&it.ID, &it.TransferID, &it.UnitID); err != nil {
			return nil, fmt.Errorf("scan stock transfer item: %w", err)
		}
		if t, ok := byID[it.TransferID]; ok {
			t.Items = append(t.Items, &it)
		}
	}
	return list, itemRows.Err()
}
