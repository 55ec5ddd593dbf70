package repository

import (
	"context"

	"github.com/jhoicas/Stock-api/internal/domain/entity"
)

// GarbageRepository registros de defecto.
type GarbageRepository interface {
	Create(ctx context.Context, r *entity.GarbageRecord) error
	GetByID(ctx context.Context, id string) (*entity.GarbageRecord, error)
	GetActiveByUnit(ctx context.Context, unitID string) (*entity.GarbageRecord, error)
	UpdateReason(ctx context.Context, id, reasonID string) (bool, error)
	Deactivate(ctx context.Context, id string) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	ListByShop(ctx context.Context, shopID string, activeOnly bool) ([]*entity.GarbageRecord, error)
}
