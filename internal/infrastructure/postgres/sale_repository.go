package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Stock-api/internal/domain/entity"
	"github.com/jhoicas/Stock-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste la cabecera de la venta.
func (r *SaleRepo) Create(ctx context.Context, s *entity.Sale) error {
	query := `
		INSERT INTO sales (id, shop_id, salesperson_id, customer_id, payment_method,
			subtotal, discount, tax, total, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		s.ID, s.ShopID, s.SalespersonID, s.CustomerID, s.PaymentMethod,
		s.Subtotal, s.Discount, s.Tax, s.Total, s.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// CreateItem persiste una línea de venta.
func (r *SaleRepo) CreateItem(ctx context.Context, it *entity.SaleItem) error {
	query := `
		INSERT INTO sale_items (id, sale_id, unit_id, position, quantity, unit_price, total)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query, it.ID, it.SaleID, it.UnitID, it.Position, it.Quantity, it.UnitPrice, it.Total)
	if err != nil {
		return fmt.Errorf("insert sale item: %w", err)
	}
	return nil
}

// GetByID obtiene la cabecera de una venta.
func (r *SaleRepo) GetByID(ctx context.Context, id string) (*entity.Sale, error) {
	query := `
		SELECT id, shop_id, salesperson_id, customer_id, payment_method,
			subtotal, discount, tax, total, created_at
		FROM sales WHERE id = $1`
	var s entity.Sale
	err := r.q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.ShopID, &s.SalespersonID, &s.CustomerID, &s.PaymentMethod,
		&s.Subtotal, &s.Discount, &s.Tax, &s.Total, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return &s, nil
}

// GetItemsBySaleID líneas de la venta en orden.
func (r *SaleRepo) GetItemsBySaleID(ctx context.Context, saleID string) ([]*entity.SaleItem, error) {
	query := `
		SELECT id, sale_id, unit_id, position, quantity, unit_price, total
		FROM sale_items WHERE sale_id = $1 ORDER BY position`
	rows, err := r.q.Query(ctx, query, saleID)
	if err != nil {
		return nil, fmt.Errorf("list sale items: %w", err)
	}
	defer rows.Close()
	var items []*entity.SaleItem
	for rows.Next() {
		var it entity.SaleItem
		if err := rows.Scan(&it.ID, &it.SaleID, &it.UnitID, &it.Position, &it.Quantity, &it.UnitPrice, &it.Total); err != nil {
			return nil, fmt.Errorf("scan sale item: %w", err)
		}
		items = append(items, &it)
	}
	return items, rows.Err()
}
