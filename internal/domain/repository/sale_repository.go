package repository

import (
	"context"

	"github.com/jhoicas/Stock-api/internal/domain/entity"
)

// SaleRepository persiste ventas (solo inserción; las ventas no se borran).
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	CreateItem(ctx context.Context, item *entity.SaleItem) error
	GetByID(ctx context.Context, id string) (*entity.Sale, error)
	GetItemsBySaleID(ctx context.Context, saleID string) ([]*entity.SaleItem, error)
}
