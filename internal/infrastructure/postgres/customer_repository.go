package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Stock-api/internal/domain/entity"
	"github.com/jhoicas/Stock-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación de CustomerRepository (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// GetByID obtiene un cliente por ID.
func (r *CustomerRepo) GetByID(ctx context.Context, id string) (*entity.Customer, error) {
	query := `
		SELECT id, name, COALESCE(phone, ''), total_purchases, created_at, updated_at
		FROM customers WHERE id = $1`
	var c entity.Customer
	err := r.q.QueryRow(ctx, query, id).Scan(&c.ID, &c.Name, &c.Phone, &c.TotalPurchases, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return &c, nil
}

// AddPurchase incrementa total_purchases en la misma sentencia (sin lectura previa).
func (r *CustomerRepo) AddPurchase(ctx context.Context, id string, amount decimal.Decimal) (bool, error) {
	tag, err := r.q.Exec(ctx,
		`UPDATE customers SET total_purchases = total_purchases + $2, updated_at = now() WHERE id = $1`,
		id, amount,
	)
	if err != nil {
		return false, fmt.Errorf("add customer purchase: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}
