// Package stock implementa el registro de unidades físicas: alta simple y masiva, edición,
// baja lógica, búsquedas de punto de venta, el índice de unicidad de identificadores y la
// primitiva de transición de estado que usan ventas, traslados y defectos.
package stock

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Stock-api/internal/application/dto"
	"github.com/jhoicas/Stock-api/internal/application/ports"
	"github.com/jhoicas/Stock-api/internal/domain"
	"github.com/jhoicas/Stock-api/internal/domain/entity"
	"github.com/jhoicas/Stock-api/internal/domain/repository"
	domstock "github.com/jhoicas/Stock-api/internal/domain/stock"
	"github.com/jhoicas/Stock-api/pkg/logger"
)

// MaxBulkUnits tope de unidades por alta masiva.
const MaxBulkUnits = 500

// Registry dueño del registro canónico de unidades y de su máquina de estados.
type Registry struct {
	txRunner ports.TxRunner
	units    repository.StockUnitRepository
	metrics  ports.EngineMetrics
	log      *logger.Logger
	now      func() time.Time
}

// NewRegistry construye el registro. units se usa para lecturas fuera de transacción.
func NewRegistry(txRunner ports.TxRunner, units repository.StockUnitRepository, metrics ports.EngineMetrics, log *logger.Logger) *Registry {
	if metrics == nil {
		metrics = ports.NopMetrics{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Registry{
		txRunner: txRunner,
		units:    units,
		metrics:  metrics,
		log:      log.Component("stock"),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Move transición pedida por un flujo sobre una unidad ya leída con GetForUpdate.
type Move struct {
	Op         domstock.Operation
	ToShopID   string  // solo traslados
	SaleItemID *string // solo ventas
}

// Transition es la única puerta de la máquina de estados. Valida la unidad contra la operación,
// escribe la transición condicional y actualiza u en memoria. Si la escritura no afecta filas,
// otra operación concurrente ganó y se devuelve ErrUnavailable para abortar la transacción.
// Las métricas se registran con Observe después del commit.
func (r *Registry) Transition(ctx context.Context, units repository.StockUnitRepository, u *entity.StockUnit, m Move) (entity.UnitTransition, error) {
	if err := domstock.CheckUnit(m.Op, u); err != nil {
		return entity.UnitTransition{}, err
	}
	t := entity.UnitTransition{
		UnitID:     u.ID,
		From:       u.Status,
		To:         domstock.Target(m.Op),
		FromShopID: u.ShopID,
		ToShopID:   m.ToShopID,
		SaleItemID: m.SaleItemID,
		At:         r.now(),
	}
	if t.To == entity.UnitStatusSold && t.SaleItemID == nil {
		return entity.UnitTransition{}, fmt.Errorf("%w: venta sin línea de venta", domain.ErrValidation)
	}
	ok, err := units.Transition(ctx, t)
	if err != nil {
		return entity.UnitTransition{}, fmt.Errorf("transición %s de la unidad %s: %w", m.Op, u.ID, err)
	}
	if !ok {
		return entity.UnitTransition{}, fmt.Errorf("%w: la unidad %s cambió durante la operación", domain.ErrUnavailable, u.ID)
	}
	u.Status = t.To
	u.Sold = t.To == entity.UnitStatusSold
	if t.SaleItemID != nil {
		u.SaleItemID = t.SaleItemID
	}
	if t.ToShopID != "" {
		u.ShopID = t.ToShopID
	}
	u.UpdatedAt = t.At
	return t, nil
}

// Observe registra transiciones ya confirmadas.
func (r *Registry) Observe(ts ...entity.UnitTransition) {
	for _, t := range ts {
		r.metrics.UnitTransition(string(t.From), string(t.To))
		r.log.Debug().
			Str("unit_id", t.UnitID).
			Str("from", string(t.From)).
			Str("to", string(t.To)).
			Str("to_shop_id", t.ToShopID).
			Msg("transición de unidad")
	}
}

// Reject registra una operación rechazada y devuelve err sin cambios.
func (r *Registry) Reject(operation string, err error) error {
	if err == nil {
		return nil
	}
	r.metrics.Rejected(operation, err)
	if errors.Is(domain.Kind(err), domain.ErrInternal) {
		r.log.Error().Err(err).Str("operation", operation).Msg("operación fallida")
	} else {
		r.log.Warn().Err(err).Str("operation", operation).Str("kind", domain.KindName(err)).Msg("operación rechazada")
	}
	return err
}

// CreateUnit da de alta una unidad en estado in_stock.
func (r *Registry) CreateUnit(ctx context.Context, scope Scope, in dto.CreateUnitRequest) (*dto.UnitResponse, error) {
	const op = "create_unit"
	if err := scope.Validate(); err != nil {
		return nil, r.Reject(op, err)
	}
	shopID, err := scope.ResolveShop(in.ShopID)
	if err != nil {
		return nil, r.Reject(op, err)
	}
	fields, err := parseCommercial(in.UnitCommercialRequest)
	if err != nil {
		return nil, r.Reject(op, err)
	}
	ids, err := domstock.Normalize(toIdentifiers(in.UnitIdentifiersRequest))
	if err != nil {
		return nil, r.Reject(op, err)
	}

	var created *entity.StockUnit
	err = r.txRunner.Run(ctx, func(repos ports.TxRepos) error {
		if err := resolveReferences(ctx, repos.Catalog, in.VariantID, shopID, fields); err != nil {
			return err
		}
		if err := ReserveIdentifiers(ctx, repos.Units, shopID, "", ids); err != nil {
			return err
		}
		created = r.newUnit(scope, in.VariantID, shopID, ids, fields)
		return repos.Units.Create(ctx, created)
	})
	if err != nil {
		return nil, r.Reject(op, err)
	}
	r.log.Info().Str("unit_id", created.ID).Str("shop_id", shopID).Msg("unidad registrada")
	out := ToUnitResponse(created)
	return &out, nil
}

// CreateUnitsBulk da de alta N unidades de la misma variante. El lote completo de identificadores
// debe ser único (entre sí y contra las unidades activas) antes de escribir la primera fila.
func (r *Registry) CreateUnitsBulk(ctx context.Context, scope Scope, in dto.BulkCreateUnitsRequest) ([]dto.UnitResponse, error) {
	const op = "create_units_bulk"
	if err := scope.Validate(); err != nil {
		return nil, r.Reject(op, err)
	}
	shopID, err := scope.ResolveShop(in.ShopID)
	if err != nil {
		return nil, r.Reject(op, err)
	}
	if len(in.Units) == 0 || in.Quantity != len(in.Units) {
		return nil, r.Reject(op, fmt.Errorf("%w: quantity %d no coincide con %d unidades", domain.ErrValidation, in.Quantity, len(in.Units)))
	}
	if len(in.Units) > MaxBulkUnits {
		return nil, r.Reject(op, fmt.Errorf("%w: máximo %d unidades por lote", domain.ErrValidation, MaxBulkUnits))
	}
	fields, err := parseCommercial(in.UnitCommercialRequest)
	if err != nil {
		return nil, r.Reject(op, err)
	}
	batch := make([]entity.Identifiers, len(in.Units))
	for i, u := range in.Units {
		ids, err := domstock.Normalize(toIdentifiers(u))
		if err != nil {
			return nil, r.Reject(op, fmt.Errorf("unidad %d: %w", i+1, err))
		}
		batch[i] = ids
	}

	var created []*entity.StockUnit
	err = r.txRunner.Run(ctx, func(repos ports.TxRepos) error {
		created = created[:0]
		if err := resolveReferences(ctx, repos.Catalog, in.VariantID, shopID, fields); err != nil {
			return err
		}
		if err := ReserveIdentifiers(ctx, repos.Units, shopID, "", batch...); err != nil {
			return err
		}
		for _, ids := range batch {
			u := r.newUnit(scope, in.VariantID, shopID, ids, fields)
			if err := repos.Units.Create(ctx, u); err != nil {
				return err
			}
			created = append(created, u)
		}
		return nil
	})
	if err != nil {
		return nil, r.Reject(op, err)
	}
	r.log.Info().Int("count", len(created)).Str("shop_id", shopID).Str("variant_id", in.VariantID).Msg("alta masiva de unidades")
	out := make([]dto.UnitResponse, 0, len(created))
	for _, u := range created {
		out = append(out, ToUnitResponse(u))
	}
	return out, nil
}

// UpdateUnit aplica cambios parciales. Los identificadores modificados se validan contra el índice
// excluyendo la propia unidad; precio, condición y notas se aplican sin condiciones.
func (r *Registry) UpdateUnit(ctx context.Context, scope Scope, id string, in dto.UpdateUnitRequest) (*dto.UnitResponse, error) {
	const op = "update_unit"
	if err := scope.Validate(); err != nil {
		return nil, r.Reject(op, err)
	}
	var updated *entity.StockUnit
	err := r.txRunner.Run(ctx, func(repos ports.TxRepos) error {
		u, err := repos.Units.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if u == nil || !u.Active || !scope.CanAccess(u.ShopID) {
			return fmt.Errorf("%w: unidad %s", domain.ErrNotFound, id)
		}
		changed, err := applyUpdate(u, in)
		if err != nil {
			return err
		}
		if _, err := domstock.Normalize(u.Identifiers); err != nil {
			return err
		}
		if err := ReserveIdentifiers(ctx, repos.Units, u.ShopID, u.ID, changed); err != nil {
			return err
		}
		u.UpdatedAt = r.now()
		if err := repos.Units.UpdateFields(ctx, u); err != nil {
			return err
		}
		updated = u
		return nil
	})
	if err != nil {
		return nil, r.Reject(op, err)
	}
	out := ToUnitResponse(updated)
	return &out, nil
}

// SoftDelete marca la unidad como inactiva. Se rechaza con ErrConflict si fue vendida
// o si alguna línea de venta la referencia.
func (r *Registry) SoftDelete(ctx context.Context, scope Scope, id string) error {
	const op = "soft_delete_unit"
	if err := scope.Validate(); err != nil {
		return r.Reject(op, err)
	}
	err := r.txRunner.Run(ctx, func(repos ports.TxRepos) error {
		u, err := repos.Units.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if u == nil || !u.Active || !scope.CanAccess(u.ShopID) {
			return fmt.Errorf("%w: unidad %s", domain.ErrNotFound, id)
		}
		if u.Sold || u.Status == entity.UnitStatusSold || u.SaleItemID != nil {
			return fmt.Errorf("%w: la unidad %s fue vendida", domain.ErrConflict, id)
		}
		referenced, err := repos.Units.ReferencedBySaleLine(ctx, id)
		if err != nil {
			return err
		}
		if referenced {
			return fmt.Errorf("%w: la unidad %s está en una línea de venta", domain.ErrConflict, id)
		}
		ok, err := repos.Units.SoftDelete(ctx, id)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: la unidad %s cambió durante la baja", domain.ErrConflict, id)
		}
		return nil
	})
	if err != nil {
		return r.Reject(op, err)
	}
	r.log.Info().Str("unit_id", id).Msg("unidad dada de baja")
	return nil
}

// FindByIdentifier búsqueda de punto de venta (escaneo de IMEI, serie o código de barras)
// restringida a las tiendas de la sesión.
func (r *Registry) FindByIdentifier(ctx context.Context, scope Scope, kind, value string) (*dto.UnitResponse, error) {
	const op = "find_unit"
	if err := scope.Validate(); err != nil {
		return nil, r.Reject(op, err)
	}
	k, err := domstock.ParseIdentifierKind(kind)
	if err != nil {
		return nil, r.Reject(op, err)
	}
	value = domstock.CleanValue(value)
	if value == "" {
		return nil, r.Reject(op, fmt.Errorf("%w: identificador vacío", domain.ErrValidation))
	}
	detail, err := r.units.FindByIdentifier(ctx, string(k), value, scope.Shops())
	if err != nil {
		return nil, r.Reject(op, err)
	}
	if detail == nil {
		return nil, fmt.Errorf("%w: %s %s", domain.ErrNotFound, k, value)
	}
	out := toUnitDetailResponse(detail)
	return &out, nil
}

// GetUnit devuelve una unidad activa de las tiendas de la sesión.
func (r *Registry) GetUnit(ctx context.Context, scope Scope, id string) (*dto.UnitResponse, error) {
	if err := scope.Validate(); err != nil {
		return nil, err
	}
	u, err := r.units.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil || !u.Active || !scope.CanAccess(u.ShopID) {
		return nil, fmt.Errorf("%w: unidad %s", domain.ErrNotFound, id)
	}
	out := ToUnitResponse(u)
	return &out, nil
}

// ListUnits lista las unidades activas de una tienda, opcionalmente por estado.
func (r *Registry) ListUnits(ctx context.Context, scope Scope, in dto.ListUnitsRequest) ([]dto.UnitResponse, error) {
	if err := scope.Validate(); err != nil {
		return nil, err
	}
	shopID, err := scope.ResolveShop(in.ShopID)
	if err != nil {
		return nil, err
	}
	status := entity.UnitStatus(in.Status)
	if status != "" && !status.Valid() {
		return nil, fmt.Errorf("%w: estado %q", domain.ErrValidation, in.Status)
	}
	in.DefaultPage()
	list, err := r.units.List(ctx, repository.UnitFilter{ShopID: shopID, Status: status, Limit: in.Limit, Offset: in.Offset})
	if err != nil {
		return nil, err
	}
	out := make([]dto.UnitResponse, 0, len(list))
	for _, u := range list {
		out = append(out, ToUnitResponse(u))
	}
	return out, nil
}

func (r *Registry) newUnit(scope Scope, variantID, shopID string, ids entity.Identifiers, f commercial) *entity.StockUnit {
	now := r.now()
	return &entity.StockUnit{
		ID:                uuid.New().String(),
		VariantID:         variantID,
		ShopID:            shopID,
		Identifiers:       ids,
		PurchasePrice:     f.PurchasePrice,
		SalePrice:         f.SalePrice,
		Condition:         f.Condition,
		Notes:             f.Notes,
		Vendor:            f.Vendor,
		TaxID:             f.TaxID,
		LowStockThreshold: f.LowStockThreshold,
		Status:            entity.UnitStatusInStock,
		Active:            true,
		CreatedBy:         scope.UserID,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

// commercial campos comerciales ya validados.
type commercial struct {
	PurchasePrice     decimal.Decimal
	SalePrice         decimal.Decimal
	Condition         entity.Condition
	Notes             string
	Vendor            *entity.VendorRef
	TaxID             *string
	LowStockThreshold *int
}

func parseCommercial(in dto.UnitCommercialRequest) (commercial, error) {
	if in.PurchasePrice.IsNegative() || in.SalePrice.IsNegative() {
		return commercial{}, fmt.Errorf("%w: precios negativos", domain.ErrValidation)
	}
	cond := entity.Condition(strings.ToLower(strings.TrimSpace(in.Condition)))
	if cond == "" {
		cond = entity.ConditionNew
	}
	if !cond.Valid() {
		return commercial{}, fmt.Errorf("%w: condición %q", domain.ErrValidation, in.Condition)
	}
	if in.LowStockThreshold != nil && *in.LowStockThreshold < 0 {
		return commercial{}, fmt.Errorf("%w: umbral de stock bajo negativo", domain.ErrValidation)
	}
	vendor, err := entity.ParseVendorRef(in.VendorType, in.VendorID)
	if err != nil {
		return commercial{}, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	return commercial{
		PurchasePrice:     in.PurchasePrice,
		SalePrice:         in.SalePrice,
		Condition:         cond,
		Notes:             strings.TrimSpace(in.Notes),
		Vendor:            vendor,
		TaxID:             domstock.Clean(in.TaxID),
		LowStockThreshold: in.LowStockThreshold,
	}, nil
}

// resolveReferences verifica variante, tienda, impuesto y proveedor; cualquier referencia
// que no resuelve es un error de validación de la petición.
func resolveReferences(ctx context.Context, catalog repository.CatalogRepository, variantID, shopID string, f commercial) error {
	if strings.TrimSpace(variantID) == "" {
		return fmt.Errorf("%w: variant_id requerido", domain.ErrValidation)
	}
	shop, err := catalog.GetShop(ctx, shopID)
	if err != nil {
		return err
	}
	if shop == nil || !shop.Active {
		return fmt.Errorf("%w: tienda %s inexistente", domain.ErrValidation, shopID)
	}
	variant, err := catalog.GetVariant(ctx, variantID)
	if err != nil {
		return err
	}
	if variant == nil {
		return fmt.Errorf("%w: variante %s inexistente", domain.ErrValidation, variantID)
	}
	if f.TaxID != nil {
		ok, err := catalog.TaxExists(ctx, *f.TaxID)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: impuesto %s inexistente", domain.ErrValidation, *f.TaxID)
		}
	}
	if f.Vendor != nil {
		ok, err := catalog.VendorExists(ctx, *f.Vendor)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: proveedor %s inexistente", domain.ErrValidation, f.Vendor)
		}
	}
	return nil
}

// applyUpdate copia los campos presentes en u y devuelve solo los identificadores que cambiaron.
func applyUpdate(u *entity.StockUnit, in dto.UpdateUnitRequest) (entity.Identifiers, error) {
	var changed entity.Identifiers
	set := func(dst **string, v *string, track **string) {
		if v == nil {
			return
		}
		nv := domstock.Clean(v)
		if equalPtr(*dst, nv) {
			return
		}
		*dst = nv
		if track != nil {
			*track = nv
		}
	}
	set(&u.PrimaryID, in.PrimaryID, &changed.PrimaryID)
	set(&u.SecondaryID, in.SecondaryID, &changed.SecondaryID)
	set(&u.Serial, in.Serial, nil)
	set(&u.Barcode, in.Barcode, &changed.Barcode)

	if in.PurchasePrice != nil {
		if in.PurchasePrice.IsNegative() {
			return changed, fmt.Errorf("%w: precio de compra negativo", domain.ErrValidation)
		}
		u.PurchasePrice = *in.PurchasePrice
	}
	if in.SalePrice != nil {
		if in.SalePrice.IsNegative() {
			return changed, fmt.Errorf("%w: precio de venta negativo", domain.ErrValidation)
		}
		u.SalePrice = *in.SalePrice
	}
	if in.Condition != nil {
		c := entity.Condition(strings.ToLower(strings.TrimSpace(*in.Condition)))
		if !c.Valid() {
			return changed, fmt.Errorf("%w: condición %q", domain.ErrValidation, *in.Condition)
		}
		u.Condition = c
	}
	if in.Notes != nil {
		u.Notes = strings.TrimSpace(*in.Notes)
	}
	if in.LowStockThreshold != nil {
		if *in.LowStockThreshold < 0 {
			return changed, fmt.Errorf("%w: umbral de stock bajo negativo", domain.ErrValidation)
		}
		v := *in.LowStockThreshold
		u.LowStockThreshold = &v
	}
	return changed, nil
}

func equalPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func toIdentifiers(in dto.UnitIdentifiersRequest) entity.Identifiers {
	return entity.Identifiers{PrimaryID: in.PrimaryID, SecondaryID: in.SecondaryID, Serial: in.Serial, Barcode: in.Barcode}
}

// ToUnitResponse convierte la entidad al cuerpo de respuesta.
func ToUnitResponse(u *entity.StockUnit) dto.UnitResponse {
	out := dto.UnitResponse{
		ID:                u.ID,
		VariantID:         u.VariantID,
		ShopID:            u.ShopID,
		PrimaryID:         u.PrimaryID,
		SecondaryID:       u.SecondaryID,
		Serial:            u.Serial,
		Barcode:           u.Barcode,
		PurchasePrice:     u.PurchasePrice,
		SalePrice:         u.SalePrice,
		Condition:         string(u.Condition),
		Notes:             u.Notes,
		TaxID:             u.TaxID,
		LowStockThreshold: u.LowStockThreshold,
		Status:            string(u.Status),
		Sold:              u.Sold,
		SaleItemID:        u.SaleItemID,
		Active:            u.Active,
		Available:         u.Available(),
		CreatedAt:         u.CreatedAt,
		UpdatedAt:         u.UpdatedAt,
	}
	if u.Vendor != nil {
		out.VendorType = string(u.Vendor.Kind)
		out.VendorID = u.Vendor.ID
	}
	return out
}

func toUnitDetailResponse(d *entity.UnitDetail) dto.UnitResponse {
	out := ToUnitResponse(&d.StockUnit)
	out.ProductName = d.ProductName
	out.VariantName = d.VariantName
	out.BrandName = d.BrandName
	out.CategoryName = d.CategoryName
	return out
}
