// Package garbage marca unidades como defectuosas con un motivo y revierte esa marca.
package garbage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Stock-api/internal/application/dto"
	"github.com/jhoicas/Stock-api/internal/application/ports"
	"github.com/jhoicas/Stock-api/internal/application/stock"
	"github.com/jhoicas/Stock-api/internal/domain"
	"github.com/jhoicas/Stock-api/internal/domain/entity"
	"github.com/jhoicas/Stock-api/internal/domain/repository"
	domstock "github.com/jhoicas/Stock-api/internal/domain/stock"
	"github.com/jhoicas/Stock-api/pkg/logger"
)

// Workflow flujo de defectos.
type Workflow struct {
	txRunner ports.TxRunner
	registry *stock.Registry
	garbage  repository.GarbageRepository
	log      *logger.Logger
	now      func() time.Time
}

// NewWorkflow construye el flujo. garbage se usa para listados fuera de transacción.
func NewWorkflow(txRunner ports.TxRunner, registry *stock.Registry, garbage repository.GarbageRepository, log *logger.Logger) *Workflow {
	if log == nil {
		log = logger.Nop()
	}
	return &Workflow{
		txRunner: txRunner,
		registry: registry,
		garbage:  garbage,
		log:      log.Component("garbage"),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// MarkDefective crea el registro de defecto y pasa la unidad a defective.
// ErrConflict si ya tiene un registro activo; ErrUnavailable si fue vendida.
func (w *Workflow) MarkDefective(ctx context.Context, scope stock.Scope, in dto.MarkDefectiveRequest) (*dto.GarbageRecordResponse, error) {
	const op = "mark_defective"
	if err := scope.Validate(); err != nil {
		return nil, w.registry.Reject(op, err)
	}
	unitID := strings.TrimSpace(in.UnitID)
	reasonID := strings.TrimSpace(in.ReasonID)
	if unitID == "" || reasonID == "" {
		return nil, w.registry.Reject(op, fmt.Errorf("%w: unit_id y reason_id requeridos", domain.ErrValidation))
	}

	var (
		record *entity.GarbageRecord
		t      entity.UnitTransition
	)
	err := w.txRunner.Run(ctx, func(repos ports.TxRepos) error {
		u, err := repos.Units.GetForUpdate(ctx, unitID)
		if err != nil {
			return err
		}
		if u == nil || !u.Active || !scope.CanAccess(u.ShopID) {
			return fmt.Errorf("%w: unidad %s", domain.ErrNotFound, unitID)
		}
		existing, err := repos.Garbage.GetActiveByUnit(ctx, unitID)
		if err != nil {
			return err
		}
		if existing != nil {
			return fmt.Errorf("%w: la unidad %s ya tiene el registro de defecto %s", domain.ErrConflict, unitID, existing.ID)
		}
		if err := checkReason(ctx, repos.Catalog, reasonID, u.ShopID); err != nil {
			return err
		}
		t, err = w.registry.Transition(ctx, repos.Units, u, stock.Move{Op: domstock.OpMarkDefective})
		if err != nil {
			return err
		}
		now := w.now()
		rec := &entity.GarbageRecord{
			ID:        uuid.New().String(),
			UnitID:    unitID,
			ReasonID:  reasonID,
			Active:    true,
			CreatedBy: scope.UserID,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := repos.Garbage.Create(ctx, rec); err != nil {
			return err
		}
		record = rec
		return nil
	})
	if err != nil {
		return nil, w.registry.Reject(op, err)
	}
	w.registry.Observe(t)
	w.log.Info().Str("unit_id", unitID).Str("record_id", record.ID).Msg("unidad marcada como defectuosa")
	return toRecordResponse(record), nil
}

// ClearDefective borra el registro de defecto y devuelve la unidad a in_stock.
func (w *Workflow) ClearDefective(ctx context.Context, scope stock.Scope, recordID string) (*dto.UnitResponse, error) {
	const op = "clear_defective"
	if err := scope.Validate(); err != nil {
		return nil, w.registry.Reject(op, err)
	}
	var (
		unit *entity.StockUnit
		t    entity.UnitTransition
	)
	err := w.txRunner.Run(ctx, func(repos ports.TxRepos) error {
		rec, u, err := loadRecord(ctx, repos, scope, recordID, true)
		if err != nil {
			return err
		}
		ok, err := repos.Garbage.Delete(ctx, rec.ID)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: registro de defecto %s", domain.ErrNotFound, recordID)
		}
		t, err = w.registry.Transition(ctx, repos.Units, u, stock.Move{Op: domstock.OpClearDefect})
		if err != nil {
			return err
		}
		unit = u
		return nil
	})
	if err != nil {
		return nil, w.registry.Reject(op, err)
	}
	w.registry.Observe(t)
	w.log.Info().Str("unit_id", unit.ID).Str("record_id", recordID).Msg("defecto revertido")
	out := stock.ToUnitResponse(unit)
	return &out, nil
}

// UpdateReason cambia el motivo del registro sin tocar el estado de la unidad.
func (w *Workflow) UpdateReason(ctx context.Context, scope stock.Scope, recordID string, in dto.UpdateGarbageReasonRequest) (*dto.GarbageRecordResponse, error) {
	const op = "update_garbage_reason"
	if err := scope.Validate(); err != nil {
		return nil, w.registry.Reject(op, err)
	}
	reasonID := strings.TrimSpace(in.ReasonID)
	if reasonID == "" {
		return nil, w.registry.Reject(op, fmt.Errorf("%w: reason_id requerido", domain.ErrValidation))
	}
	var record *entity.GarbageRecord
	err := w.txRunner.Run(ctx, func(repos ports.TxRepos) error {
		rec, u, err := loadRecord(ctx, repos, scope, recordID, false)
		if err != nil {
			return err
		}
		if err := checkReason(ctx, repos.Catalog, reasonID, u.ShopID); err != nil {
			return err
		}
		ok, err := repos.Garbage.UpdateReason(ctx, rec.ID, reasonID)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: registro de defecto %s", domain.ErrNotFound, recordID)
		}
		rec.ReasonID = reasonID
		rec.UpdatedAt = w.now()
		record = rec
		return nil
	})
	if err != nil {
		return nil, w.registry.Reject(op, err)
	}
	return toRecordResponse(record), nil
}

// Deactivate desactiva el registro sin tocar el estado de la unidad.
func (w *Workflow) Deactivate(ctx context.Context, scope stock.Scope, recordID string) (*dto.GarbageRecordResponse, error) {
	const op = "deactivate_garbage_record"
	if err := scope.Validate(); err != nil {
		return nil, w.registry.Reject(op, err)
	}
	var record *entity.GarbageRecord
	err := w.txRunner.Run(ctx, func(repos ports.TxRepos) error {
		rec, _, err := loadRecord(ctx, repos, scope, recordID, false)
		if err != nil {
			return err
		}
		ok, err := repos.Garbage.Deactivate(ctx, rec.ID)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: registro de defecto %s", domain.ErrNotFound, recordID)
		}
		rec.Active = false
		rec.UpdatedAt = w.now()
		record = rec
		return nil
	})
	if err != nil {
		return nil, w.registry.Reject(op, err)
	}
	return toRecordResponse(record), nil
}

// List registros de defecto de las unidades de una tienda.
func (w *Workflow) List(ctx context.Context, scope stock.Scope, shopID string, activeOnly bool) ([]dto.GarbageRecordResponse, error) {
	if err := scope.Validate(); err != nil {
		return nil, err
	}
	shopID, err := scope.ResolveShop(shopID)
	if err != nil {
		return nil, err
	}
	list, err := w.garbage.ListByShop(ctx, shopID, activeOnly)
	if err != nil {
		return nil, err
	}
	out := make([]dto.GarbageRecordResponse, 0, len(list))
	for _, r := range list {
		out = append(out, *toRecordResponse(r))
	}
	return out, nil
}

// loadRecord lee el registro y su unidad verificando que la unidad esté en el alcance de la sesión.
// lockUnit bloquea la fila de la unidad cuando la operación va a transicionarla.
func loadRecord(ctx context.Context, repos ports.TxRepos, scope stock.Scope, recordID string, lockUnit bool) (*entity.GarbageRecord, *entity.StockUnit, error) {
	rec, err := repos.Garbage.GetByID(ctx, recordID)
	if err != nil {
		return nil, nil, err
	}
	if rec == nil {
		return nil, nil, fmt.Errorf("%w: registro de defecto %s", domain.ErrNotFound, recordID)
	}
	var u *entity.StockUnit
	if lockUnit {
		u, err = repos.Units.GetForUpdate(ctx, rec.UnitID)
	} else {
		u, err = repos.Units.GetByID(ctx, rec.UnitID)
	}
	if err != nil {
		return nil, nil, err
	}
	if u == nil || !scope.CanAccess(u.ShopID) {
		return nil, nil, fmt.Errorf("%w: registro de defecto %s", domain.ErrNotFound, recordID)
	}
	return rec, u, nil
}

func checkReason(ctx context.Context, catalog repository.CatalogRepository, reasonID, shopID string) error {
	reason, err := catalog.GetGarbageReason(ctx, reasonID)
	if err != nil {
		return err
	}
	if reason == nil || (reason.ShopID != "" && reason.ShopID != shopID) {
		return fmt.Errorf("%w: motivo %s", domain.ErrNotFound, reasonID)
	}
	return nil
}

func toRecordResponse(r *entity.GarbageRecord) *dto.GarbageRecordResponse {
	return &dto.GarbageRecordResponse{
		ID:        r.ID,
		UnitID:    r.UnitID,
		ReasonID:  r.ReasonID,
		Active:    r.Active,
		CreatedBy: r.CreatedBy,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
