package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Stock-api/internal/domain"
	"github.com/jhoicas/Stock-api/internal/domain/entity"
	"github.com/jhoicas/Stock-api/internal/domain/repository"
)

var _ repository.GarbageRepository = (*GarbageRepo)(nil)

// GarbageRepo implementación de GarbageRepository (usable con pool o tx).
type GarbageRepo struct {
	q Querier
}

// NewGarbageRepository construye el adaptador. Pasar pool o tx (Querier).
func NewGarbageRepository(q Querier) *GarbageRepo {
	return &GarbageRepo{q: q}
}

const garbageColumns = `g.id, g.unit_id, g.reason_id, g.active, g.created_by, g.created_at, g.updated_at`

func scanGarbage(row pgx.Row) (*entity.GarbageRecord, error) {
	var g entity.GarbageRecord
	if err := row.Scan(&g.ID, &g.UnitID, &g.ReasonID, &g.Active, &g.CreatedBy, &g.CreatedAt, &g.UpdatedAt); err != nil {
		return nil, err
	}
	return &g, nil
}

// Create persiste el registro. El índice único parcial impide dos registros activos por unidad.
func (r *GarbageRepo) Create(ctx context.Context, g *entity.GarbageRecord) error {
	query := `
		INSERT INTO garbage_records (id, unit_id, reason_id, active, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query, g.ID, g.UnitID, g.ReasonID, g.Active, g.CreatedBy, g.CreatedAt, g.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: la unidad %s ya tiene un registro de defecto activo", domain.ErrConflict, g.UnitID)
		}
		return fmt.Errorf("insert garbage record: %w", err)
	}
	return nil
}

// GetByID obtiene un registro por ID.
func (r *GarbageRepo) GetByID(ctx context.Context, id string) (*entity.GarbageRecord, error) {
	return r.getOne(ctx, `SELECT `+garbageColumns+` FROM garbage_records g WHERE g.id = $1`, id)
}

// GetActiveByUnit registro activo de la unidad, si existe.
func (r *GarbageRepo) GetActiveByUnit(ctx context.Context, unitID string) (*entity.GarbageRecord, error) {
	return r.getOne(ctx, `SELECT `+garbageColumns+` FROM garbage_records g WHERE g.unit_id = $1 AND g.active`, unitID)
}

func (r *GarbageRepo) getOne(ctx context.Context, query string, args ...any) (*entity.GarbageRecord, error) {
	g, err := scanGarbage(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get garbage record: %w", err)
	}
	return g, nil
}

// UpdateReason cambia el motivo.
func (r *GarbageRepo) UpdateReason(ctx context.Context, id, reasonID string) (bool, error) {
	return r.exec(ctx, "update garbage reason",
		`UPDATE garbage_records SET reason_id = $2, updated_at = now() WHERE id = $1`, id, reasonID)
}

// Deactivate marca el registro como inactivo.
func (r *GarbageRepo) Deactivate(ctx context.Context, id string) (bool, error) {
	return r.exec(ctx, "deactivate garbage record",
		`UPDATE garbage_records SET active = false, updated_at = now() WHERE id = $1`, id)
}

// Delete borra el registro.
func (r *GarbageRepo) Delete(ctx context.Context, id string) (bool, error) {
	return r.exec(ctx, "delete garbage record", `DELETE FROM garbage_records WHERE id = $1`, id)
}

func (r *GarbageRepo) exec(ctx context.Context, op, query string, args ...any) (bool, error) {
	tag, err := r.q.Exec(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return tag.RowsAffected() == 1, nil
}

// ListByShop registros de las unidades de la tienda, más recientes primero.
func (r *GarbageRepo) ListByShop(ctx context.Context, shopID string, activeOnly bool) ([]*entity.GarbageRecord, error) {
	query := `SELECT ` + garbageColumns + `
		FROM garbage_records g
		JOIN stock_units u ON u.id = g.unit_id
		WHERE u.shop_id = $1 AND (NOT $2 OR g.active)
		ORDER BY g.created_at DESC, g.id`
	rows, err := r.q.Query(ctx, query, shopID, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("list garbage records: %w", err)
	}
	defer rows.Close()
	var list []*entity.GarbageRecord
	for rows.Next() {
		g, err := scanGarbage(rows)
		if err != nil {
			return nil, fmt.Errorf("scan garbage record: %w", err)
		}
		list = append(list, g)
	}
	return list, rows.Err()
}
