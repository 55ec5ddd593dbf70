// Package transfer reasigna unidades disponibles de una tienda a otra y deja el registro de auditoría.
package transfer

import (
	"context"
	"fmt"
	"sort"
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

// MaxBatchUnits tope de unidades por traslado masivo.
const MaxBatchUnits = 200

// Workflow flujo de traslados entre tiendas.
type Workflow struct {
	txRunner  ports.TxRunner
	registry  *stock.Registry
	transfers repository.TransferRepository
	log       *logger.Logger
	now       func() time.Time
}

// NewWorkflow construye el flujo. transfers se usa para listados fuera de transacción.
func NewWorkflow(txRunner ports.TxRunner, registry *stock.Registry, transfers repository.TransferRepository, log *logger.Logger) *Workflow {
	if log == nil {
		log = logger.Nop()
	}
	return &Workflow{
		txRunner:  txRunner,
		registry:  registry,
		transfers: transfers,
		log:       log.Component("transfer"),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// CreateTransfer mueve una unidad (por id o por IMEI en la tienda de origen) a la tienda destino.
func (w *Workflow) CreateTransfer(ctx context.Context, scope stock.Scope, in dto.CreateTransferRequest) (*dto.TransferResponse, error) {
	const op = "create_transfer"
	unitID := strings.TrimSpace(in.UnitID)
	imei := domstock.CleanValue(in.IMEI)
	if unitID == "" && imei == "" {
		return nil, w.registry.Reject(op, fmt.Errorf("%w: unit_id o imei requerido", domain.ErrValidation))
	}
	return w.move(ctx, op, scope, in.FromShopID, in.ToShopID, in.Notes, func(ctx context.Context, repos ports.TxRepos) ([]string, error) {
		if unitID != "" {
			return []string{unitID}, nil
		}
		d, err := repos.Units.FindByIdentifier(ctx, string(domstock.KindIMEI), imei, []string{strings.TrimSpace(in.FromShopID)})
		if err != nil {
			return nil, err
		}
		if d == nil {
			return nil, fmt.Errorf("%w: imei %s en la tienda %s", domain.ErrNotFound, imei, in.FromShopID)
		}
		return []string{d.ID}, nil
	})
}

// CreateTransferBatch mueve varias unidades con las mismas reglas por unidad; todo o nada.
func (w *Workflow) CreateTransferBatch(ctx context.Context, scope stock.Scope, in dto.CreateTransferBatchRequest) (*dto.TransferResponse, error) {
	const op = "create_transfer_batch"
	if len(in.UnitIDs) == 0 {
		return nil, w.registry.Reject(op, fmt.Errorf("%w: unit_ids vacío", domain.ErrValidation))
	}
	if len(in.UnitIDs) > MaxBatchUnits {
		return nil, w.registry.Reject(op, fmt.Errorf("%w: máximo %d unidades por traslado", domain.ErrValidation, MaxBatchUnits))
	}
	ids := make([]string, 0, len(in.UnitIDs))
	seen := make(map[string]struct{}, len(in.UnitIDs))
	for _, id := range in.UnitIDs {
		id = strings.TrimSpace(id)
		if id == "" {
			return nil, w.registry.Reject(op, fmt.Errorf("%w: unit_id vacío", domain.ErrValidation))
		}
		if _, dup := seen[id]; dup {
			return nil, w.registry.Reject(op, fmt.Errorf("%w: la unidad %s aparece dos veces", domain.ErrValidation, id))
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return w.move(ctx, op, scope, in.FromShopID, in.ToShopID, in.Notes, func(context.Context, ports.TxRepos) ([]string, error) {
		return ids, nil
	})
}

// ListTransfers traslados en los que participa la tienda (origen o destino), más recientes primero.
func (w *Workflow) ListTransfers(ctx context.Context, scope stock.Scope, shopID string, page dto.PageRequest) ([]dto.TransferResponse, error) {
	if err := scope.Validate(); err != nil {
		return nil, err
	}
	shopID, err := scope.ResolveShop(shopID)
	if err != nil {
		return nil, err
	}
	page.DefaultPage()
	list, err := w.transfers.ListByShop(ctx, shopID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TransferResponse, 0, len(list))
	for _, t := range list {
		out = append(out, toTransferResponse(t, nil))
	}
	return out, nil
}

type resolveFunc func(ctx context.Context, repos ports.TxRepos) ([]string, error)

func (w *Workflow) move(ctx context.Context, op string, scope stock.Scope, fromShopID, toShopID, notes string, resolve resolveFunc) (*dto.TransferResponse, error) {
	if err := scope.Validate(); err != nil {
		return nil, w.registry.Reject(op, err)
	}
	fromShopID = strings.TrimSpace(fromShopID)
	toShopID = strings.TrimSpace(toShopID)
	if fromShopID == "" || toShopID == "" {
		return nil, w.registry.Reject(op, fmt.Errorf("%w: from_shop_id y to_shop_id requeridos", domain.ErrValidation))
	}
	if fromShopID == toShopID {
		return nil, w.registry.Reject(op, fmt.Errorf("%w: origen y destino son la misma tienda", domain.ErrValidation))
	}
	if !scope.CanAccess(fromShopID) || !scope.CanAccess(toShopID) {
		return nil, w.registry.Reject(op, fmt.Errorf("%w: se requiere acceso a ambas tiendas", domain.ErrForbidden))
	}

	var (
		record      *entity.StockTransfer
		moved       []*entity.StockUnit
		transitions []entity.UnitTransition
	)
	err := w.txRunner.Run(ctx, func(repos ports.TxRepos) error {
		moved, transitions = moved[:0], transitions[:0]

		dest, err := repos.Catalog.GetShop(ctx, toShopID)
		if err != nil {
			return err
		}
		if dest == nil || !dest.Active {
			return fmt.Errorf("%w: tienda destino %s", domain.ErrNotFound, toShopID)
		}
		unitIDs, err := resolve(ctx, repos)
		if err != nil {
			return err
		}
		locked := append([]string(nil), unitIDs...)
		sort.Strings(locked)
		units := make(map[string]*entity.StockUnit, len(locked))
		for _, id := range locked {
			u, err := repos.Units.GetForUpdate(ctx, id)
			if err != nil {
				return err
			}
			if u == nil || !u.Active || u.ShopID != fromShopID {
				return fmt.Errorf("%w: unidad %s en la tienda %s", domain.ErrNotFound, id, fromShopID)
			}
			if err := domstock.CheckUnit(domstock.OpTransfer, u); err != nil {
				return err
			}
			units[id] = u
		}
		// El código de barras es único por tienda: no puede chocar con uno activo en el destino.
		for _, id := range locked {
			if bc := units[id].Barcode; bc != nil {
				if err := stock.ReserveBarcode(ctx, repos.Units, toShopID, *bc, id); err != nil {
					return err
				}
			}
		}

		rec := &entity.StockTransfer{
			ID:          uuid.New().String(),
			FromShopID:  fromShopID,
			ToShopID:    toShopID,
			Status:      entity.TransferStatusCompleted,
			Notes:       strings.TrimSpace(notes),
			RequestedBy: scope.UserID,
			CreatedAt:   w.now(),
		}
		if err := repos.Transfers.Create(ctx, rec); err != nil {
			return err
		}
		for _, id := range unitIDs {
			u := units[id]
			t, err := w.registry.Transition(ctx, repos.Units, u, stock.Move{Op: domstock.OpTransfer, ToShopID: toShopID})
			if err != nil {
				return err
			}
			item := &entity.StockTransferItem{ID: uuid.New().String(), TransferID: rec.ID, UnitID: id}
			if err := repos.Transfers.CreateItem(ctx, item); err != nil {
				return err
			}
			rec.Items = append(rec.Items, item)
			moved = append(moved, u)
			transitions = append(transitions, t)
		}
		record = rec
		return nil
	})
	if err != nil {
		return nil, w.registry.Reject(op, err)
	}
	w.registry.Observe(transitions...)
	w.log.Info().
		Str("transfer_id", record.ID).
		Str("from_shop_id", fromShopID).
		Str("to_shop_id", toShopID).
		Int("units", len(moved)).
		Msg("traslado completado")
	out := toTransferResponse(record, moved)
	return &out, nil
}

func toTransferResponse(t *entity.StockTransfer, units []*entity.StockUnit) dto.TransferResponse {
	out := dto.TransferResponse{
		ID:          t.ID,
		FromShopID:  t.FromShopID,
		ToShopID:    t.ToShopID,
		Status:      t.Status,
		Notes:       t.Notes,
		RequestedBy: t.RequestedBy,
		CreatedAt:   t.CreatedAt,
		UnitIDs:     make([]string, 0, len(t.Items)),
	}
	for _, it := range t.Items {
		out.UnitIDs = append(out.UnitIDs, it.UnitID)
	}
	for _, u := range units {
		out.Units = append(out.Units, stock.ToUnitResponse(u))
	}
	return out
}
