package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Stock-api/internal/domain/entity"
)

// CustomerRepository puerto de clientes. El motor solo lee y acumula compras.
type CustomerRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Customer, error)
	// AddPurchase suma amount a total_purchases; false si el cliente no existe.
	AddPurchase(ctx context.Context, id string, amount decimal.Decimal) (bool, error)
}
