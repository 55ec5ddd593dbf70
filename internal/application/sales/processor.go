// Package sales convierte un carrito de unidades en una venta inmutable: valida las unidades,
// calcula montos, inserta venta y líneas, marca cada unidad como vendida y acumula las compras
// del cliente, todo en una sola transacción.
package sales

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Stock-api/internal/application/dto"
	"github.com/jhoicas/Stock-api/internal/application/ports"
	"github.com/jhoicas/Stock-api/internal/application/stock"
	"github.com/jhoicas/Stock-api/internal/domain"
	"github.com/jhoicas/Stock-api/internal/domain/entity"
	"github.com/jhoicas/Stock-api/internal/domain/repository"
	"github.com/jhoicas/Stock-api/internal/domain/sale"
	domstock "github.com/jhoicas/Stock-api/internal/domain/stock"
	"github.com/jhoicas/Stock-api/pkg/logger"
)

// MaxCartItems tope de líneas por venta.
const MaxCartItems = 200

// Processor procesador de ventas.
type Processor struct {
	txRunner ports.TxRunner
	registry *stock.Registry
	sales    repository.SaleRepository
	metrics  ports.EngineMetrics
	log      *logger.Logger
	now      func() time.Time
}

// NewProcessor construye el procesador. sales se usa para lecturas fuera de transacción.
func NewProcessor(txRunner ports.TxRunner, registry *stock.Registry, sales repository.SaleRepository, metrics ports.EngineMetrics, log *logger.Logger) *Processor {
	if metrics == nil {
		metrics = ports.NopMetrics{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Processor{
		txRunner: txRunner,
		registry: registry,
		sales:    sales,
		metrics:  metrics,
		log:      log.Component("sales"),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// cartLine línea del carrito ya validada en forma.
type cartLine struct {
	unitID   string
	price    *decimal.Decimal
	quantity int
}

// CreateSale crea la venta en la tienda activa de la sesión. Si cualquier unidad no existe en la
// tienda (ErrNotFound) o no está disponible (ErrUnavailable) no se escribe nada.
func (p *Processor) CreateSale(ctx context.Context, scope stock.Scope, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	const op = "create_sale"
	if err := scope.Validate(); err != nil {
		return nil, p.registry.Reject(op, err)
	}
	lines, err := validateCart(in)
	if err != nil {
		return nil, p.registry.Reject(op, err)
	}
	var customerID *string
	if in.CustomerID != nil && strings.TrimSpace(*in.CustomerID) != "" {
		id := strings.TrimSpace(*in.CustomerID)
		customerID = &id
	}

	var (
		created     *entity.Sale
		transitions []entity.UnitTransition
	)
	err = p.txRunner.Run(ctx, func(repos ports.TxRepos) error {
		transitions = transitions[:0]

		if customerID != nil {
			c, err := repos.Customers.GetByID(ctx, *customerID)
			if err != nil {
				return err
			}
			if c == nil {
				return fmt.Errorf("%w: cliente %s", domain.ErrNotFound, *customerID)
			}
		}

		// Bloqueo en orden de id para que dos carritos con las mismas unidades no se bloqueen mutuamente.
		units, err := lockUnits(ctx, repos.Units, lines)
		if err != nil {
			return err
		}

		saleLines := make([]sale.Line, len(lines))
		for i, l := range lines {
			u := units[l.unitID]
			if u == nil || !u.Active || u.ShopID != scope.ShopID {
				return fmt.Errorf("%w: unidad %s en la tienda %s", domain.ErrNotFound, l.unitID, scope.ShopID)
			}
			if err := domstock.CheckUnit(domstock.OpSale, u); err != nil {
				return err
			}
			if l.quantity > 1 && u.Serialized() {
				return fmt.Errorf("%w: la unidad serializada %s no admite cantidad %d", domain.ErrValidation, u.ID, l.quantity)
			}
			price := u.SalePrice
			if l.price != nil {
				price = *l.price
			}
			saleLines[i] = sale.NewLine(price, l.quantity)
		}
		totals, err := sale.Calculate(saleLines, in.Discount, in.Tax)
		if err != nil {
			return err
		}

		s := &entity.Sale{
			ID:            uuid.New().String(),
			ShopID:        scope.ShopID,
			SalespersonID: scope.UserID,
			CustomerID:    customerID,
			PaymentMethod: in.PaymentMethod,
			Subtotal:      totals.Subtotal,
			Discount:      totals.Discount,
			Tax:           totals.Tax,
			Total:         totals.Total,
			CreatedAt:     p.now(),
		}
		if err := repos.Sales.Create(ctx, s); err != nil {
			return err
		}
		for i, l := range lines {
			item := &entity.SaleItem{
				ID:        uuid.New().String(),
				SaleID:    s.ID,
				UnitID:    l.unitID,
				Position:  i + 1,
				Quantity:  l.quantity,
				UnitPrice: saleLines[i].UnitPrice,
				Total:     saleLines[i].Total(),
			}
			if err := repos.Sales.CreateItem(ctx, item); err != nil {
				return err
			}
			t, err := p.registry.Transition(ctx, repos.Units, units[l.unitID], stock.Move{Op: domstock.OpSale, SaleItemID: &item.ID})
			if err != nil {
				return err
			}
			transitions = append(transitions, t)
			s.Items = append(s.Items, item)
		}
		if customerID != nil {
			ok, err := repos.Customers.AddPurchase(ctx, *customerID, s.Total)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("%w: cliente %s", domain.ErrNotFound, *customerID)
			}
		}
		created = s
		return nil
	})
	if err != nil {
		return nil, p.registry.Reject(op, err)
	}

	p.registry.Observe(transitions...)
	p.metrics.SaleCreated(created.PaymentMethod, created.Total, len(created.Items))
	p.log.Info().
		Str("sale_id", created.ID).
		Str("shop_id", created.ShopID).
		Int("items", len(created.Items)).
		Str("total", created.Total.StringFixed(sale.Scale)).
		Msg("venta registrada")
	return toSaleResponse(created), nil
}

// GetSale devuelve una venta con sus líneas si pertenece a una tienda de la sesión.
func (p *Processor) GetSale(ctx context.Context, scope stock.Scope, id string) (*dto.SaleResponse, error) {
	s, err := p.loadSale(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	return toSaleResponse(s), nil
}

func (p *Processor) loadSale(ctx context.Context, scope stock.Scope, id string) (*entity.Sale, error) {
	if err := scope.Validate(); err != nil {
		return nil, err
	}
	s, err := p.sales.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil || !scope.CanAccess(s.ShopID) {
		return nil, fmt.Errorf("%w: venta %s", domain.ErrNotFound, id)
	}
	items, err := p.sales.GetItemsBySaleID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.Items = items
	return s, nil
}

// validateCart reglas de forma del carrito: no vacío, sin unidades repetidas, cantidades y
// precios válidos, método de pago conocido.
func validateCart(in dto.CreateSaleRequest) ([]cartLine, error) {
	if len(in.Items) == 0 {
		return nil, fmt.Errorf("%w: la venta no tiene líneas", domain.ErrValidation)
	}
	if len(in.Items) > MaxCartItems {
		return nil, fmt.Errorf("%w: máximo %d líneas por venta", domain.ErrValidation, MaxCartItems)
	}
	if !entity.ValidPaymentMethod(in.PaymentMethod) {
		return nil, fmt.Errorf("%w: método de pago %q", domain.ErrValidation, in.PaymentMethod)
	}
	seen := make(map[string]struct{}, len(in.Items))
	lines := make([]cartLine, 0, len(in.Items))
	for i, it := range in.Items {
		id := strings.TrimSpace(it.UnitID)
		if id == "" {
			return nil, fmt.Errorf("%w: línea %d sin unit_id", domain.ErrValidation, i+1)
		}
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("%w: la unidad %s aparece dos veces en el carrito", domain.ErrValidation, id)
		}
		seen[id] = struct{}{}
		qty := it.Quantity
		if qty == 0 {
			qty = 1
		}
		if qty < 0 {
			return nil, fmt.Errorf("%w: línea %d con cantidad %d", domain.ErrValidation, i+1, it.Quantity)
		}
		if it.Price != nil && it.Price.IsNegative() {
			return nil, fmt.Errorf("%w: línea %d con precio negativo", domain.ErrValidation, i+1)
		}
		lines = append(lines, cartLine{unitID: id, price: it.Price, quantity: qty})
	}
	return lines, nil
}

func lockUnits(ctx context.Context, units repository.StockUnitRepository, lines []cartLine) (map[string]*entity.StockUnit, error) {
	ids := make([]string, 0, len(lines))
	for _, l := range lines {
		ids = append(ids, l.unitID)
	}
	sort.Strings(ids)
	out := make(map[string]*entity.StockUnit, len(ids))
	for _, id := range ids {
		u, err := units.GetForUpdate(ctx, id)
		if err != nil {
			return nil, err
		}
		out[id] = u
	}
	return out, nil
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	out := &dto.SaleResponse{
		ID:            s.ID,
		ShopID:        s.ShopID,
		SalespersonID: s.SalespersonID,
		CustomerID:    s.CustomerID,
		PaymentMethod: s.PaymentMethod,
		Subtotal:      s.Subtotal,
		Discount:      s.Discount,
		Tax:           s.Tax,
		Total:         s.Total,
		CreatedAt:     s.CreatedAt,
		Items:         make([]dto.SaleItemResponse, 0, len(s.Items)),
	}
	for _, it := range s.Items {
		out.Items = append(out.Items, dto.SaleItemResponse{
			ID:        it.ID,
			UnitID:    it.UnitID,
			Position:  it.Position,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Total:     it.Total,
		})
	}
	return out
}
