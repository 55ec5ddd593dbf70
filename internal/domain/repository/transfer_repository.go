package repository

import (
	"context"

	"github.com/jhoicas/Stock-api/internal/domain/entity"
)

// TransferRepository registro de auditoría de traslados.
type TransferRepository interface {
	Create(ctx context.Context, t *entity.StockTransfer) error
	CreateItem(ctx context.Context, item *entity.StockTransferItem) error
	ListByShop(ctx context.Context, shopID string, limit, offset int) ([]*entity.StockTransfer, error)
}
