package sales_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/Stock-api/internal/application/dto"
	"github.com/jhoicas/Stock-api/internal/application/ports"
	"github.com/jhoicas/Stock-api/internal/application/sales"
	"github.com/jhoicas/Stock-api/internal/application/stock"
	"github.com/jhoicas/Stock-api/internal/domain"
	"github.com/jhoicas/Stock-api/internal/domain/entity"
	"github.com/jhoicas/Stock-api/internal/domain/repository"
	"github.com/jhoicas/Stock-api/internal/infrastructure/memory"
)

func ptr[T any](v T) *T { return &v }

var (
	shopA = stock.Scope{UserID: "seller-1", ShopID: memory.DemoShopA, ShopIDs: []string{memory.DemoShopA, memory.DemoShopB}}
	shopB = stock.Scope{UserID: "seller-2", ShopID: memory.DemoShopB}
)

type fixture struct {
	store     *memory.Store
	registry  *stock.Registry
	processor *sales.Processor
}

func newFixture(t *testing.T, metrics ports.EngineMetrics) *fixture {
	t.Helper()
	store := memory.NewStore()
	memory.SeedDemo(store)
	reg := stock.NewRegistry(store, store.Repos().Units, metrics, nil)
	return &fixture{
		store:     store,
		registry:  reg,
		processor: sales.NewProcessor(store, reg, store.Repos().Sales, metrics, nil),
	}
}

// addPhone registra un teléfono con precio de venta price en la tienda activa de scope.
func (f *fixture) addPhone(t *testing.T, scope stock.Scope, imei string, price int64) string {
	t.Helper()
	u, err := f.registry.CreateUnit(context.Background(), scope, dto.CreateUnitRequest{
		VariantID:              memory.DemoVariant,
		UnitIdentifiersRequest: dto.UnitIdentifiersRequest{PrimaryID: ptr(imei)},
		UnitCommercialRequest:  dto.UnitCommercialRequest{SalePrice: decimal.NewFromInt(price)},
	})
	require.NoError(t, err)
	return u.ID
}

func (f *fixture) status(t *testing.T, id string) string {
	t.Helper()
	u, err := f.registry.GetUnit(context.Background(), shopA, id)
	require.NoError(t, err)
	return u.Status
}

func cart(method string, ids ...string) dto.CreateSaleRequest {
	in := dto.CreateSaleRequest{PaymentMethod: method}
	for _, id := range ids {
		in.Items = append(in.Items, dto.SaleItemRequest{UnitID: id})
	}
	return in
}

func TestCreateSale_TotalesYUnidadVendida(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	id := f.addPhone(t, shopA, "IMEI-1", 100)

	in := cart(entity.PaymentCash, id)
	in.CustomerID = ptr(memory.DemoCustomer)
	in.Discount = decimal.NewFromInt(10)
	in.Tax = decimal.NewFromInt(5)

	out, err := f.processor.CreateSale(ctx, shopA, in)
	require.NoError(t, err)
	assert.Equal(t, "100.00", out.Subtotal.StringFixed(2))
	assert.Equal(t, "95.00", out.Total.StringFixed(2))
	assert.Equal(t, "seller-1", out.SalespersonID)
	require.Len(t, out.Items, 1)
	assert.Equal(t, 1, out.Items[0].Position)

	u, err := f.registry.GetUnit(ctx, shopA, id)
	require.NoError(t, err)
	assert.Equal(t, "sold", u.Status)
	assert.True(t, u.Sold)
	assert.False(t, u.Available)
	require.NotNil(t, u.SaleItemID)
	assert.Equal(t, out.Items[0].ID, *u.SaleItemID)

	c, err := f.store.Repos().Customers.GetByID(ctx, memory.DemoCustomer)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(95).Equal(c.TotalPurchases))

	got, err := f.processor.GetSale(ctx, shopA, out.ID)
	require.NoError(t, err)
	assert.Equal(t, out.Total.String(), got.Total.String())
	assert.Len(t, got.Items, 1)

	_, err = f.processor.GetSale(ctx, shopB, out.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound, "una venta de otra tienda no es visible")
}

func TestCreateSale_TodoONada(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	a := f.addPhone(t, shopA, "IMEI-1", 100)
	b := f.addPhone(t, shopA, "IMEI-2", 200)
	sold := f.addPhone(t, shopA, "IMEI-3", 300)
	_, err := f.processor.CreateSale(ctx, shopA, cart(entity.PaymentCard, sold))
	require.NoError(t, err)
	before := f.store.Counts()

	_, err = f.processor.CreateSale(ctx, shopA, cart(entity.PaymentCash, a, b, sold))
	assert.ErrorIs(t, err, domain.ErrUnavailable)
	assert.Equal(t, before, f.store.Counts(), "no queda venta ni líneas parciales")
	assert.Equal(t, "in_stock", f.status(t, a))
	assert.Equal(t, "in_stock", f.status(t, b))
}

func TestCreateSale_UnidadDeOtraTienda(t *testing.T) {
	f := newFixture(t, nil)
	inB := f.addPhone(t, stock.Scope{UserID: "u", ShopID: memory.DemoShopB}, "IMEI-1", 100)

	_, err := f.processor.CreateSale(context.Background(), shopA, cart(entity.PaymentCash, inB))
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.processor.CreateSale(context.Background(), shopA, cart(entity.PaymentCash, "no-existe"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateSale_CarritoInvalido(t *testing.T) {
	f := newFixture(t, nil)
	id := f.addPhone(t, shopA, "IMEI-1", 100)

	tests := []struct {
		name string
		in   dto.CreateSaleRequest
		want error
	}{
		{"sin líneas", cart(entity.PaymentCash), domain.ErrValidation},
		{"unidad repetida", cart(entity.PaymentCash, id, id), domain.ErrValidation},
		{"medio de pago desconocido", cart("bitcoin", id), domain.ErrValidation},
		{"cantidad mayor a uno en serializada", dto.CreateSaleRequest{
			PaymentMethod: entity.PaymentCash,
			Items:         []dto.SaleItemRequest{{UnitID: id, Quantity: 2}},
		}, domain.ErrValidation},
		{"descuento mayor al subtotal", dto.CreateSaleRequest{
			PaymentMethod: entity.PaymentCash,
			Items:         []dto.SaleItemRequest{{UnitID: id}},
			Discount:      decimal.NewFromInt(500),
		}, domain.ErrValidation},
		{"cliente inexistente", dto.CreateSaleRequest{
			PaymentMethod: entity.PaymentCash,
			CustomerID:    ptr("customer-404"),
			Items:         []dto.SaleItemRequest{{UnitID: id}},
		}, domain.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.processor.CreateSale(context.Background(), shopA, tt.in)
			assert.ErrorIs(t, err, tt.want)
		})
	}
	assert.Equal(t, "in_stock", f.status(t, id))
	assert.Zero(t, f.store.Counts().Sales)
}

func TestCreateSale_GranelConCantidadYPrecio(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	acc, err := f.registry.CreateUnit(ctx, shopA, dto.CreateUnitRequest{
		VariantID:             memory.DemoCase,
		UnitCommercialRequest: dto.UnitCommercialRequest{SalePrice: decimal.NewFromInt(15)},
	})
	require.NoError(t, err)

	out, err := f.processor.CreateSale(ctx, shopA, dto.CreateSaleRequest{
		PaymentMethod: entity.PaymentMobileWallet,
		Items:         []dto.SaleItemRequest{{UnitID: acc.ID, Quantity: 3, Price: ptr(decimal.RequireFromString("12.50"))}},
	})
	require.NoError(t, err)
	assert.Equal(t, "37.50", out.Items[0].Total.StringFixed(2))
	assert.Equal(t, "37.50", out.Total.StringFixed(2))
}

func TestCreateSale_PrecioConMasDeDosDecimales(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	acc, err := f.registry.CreateUnit(ctx, shopA, dto.CreateUnitRequest{
		VariantID:             memory.DemoCase,
		UnitCommercialRequest: dto.UnitCommercialRequest{SalePrice: decimal.NewFromInt(40)},
	})
	require.NoError(t, err)

	out, err := f.processor.CreateSale(ctx, shopA, dto.CreateSaleRequest{
		PaymentMethod: entity.PaymentCash,
		Items:         []dto.SaleItemRequest{{UnitID: acc.ID, Quantity: 3, Price: ptr(decimal.RequireFromString("33.333"))}},
	})
	require.NoError(t, err)
	item := out.Items[0]
	assert.Equal(t, "33.33", item.UnitPrice.String())
	assert.Equal(t, "99.99", item.Total.StringFixed(2))
	assert.True(t, item.Total.Equal(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))))
	assert.True(t, out.Total.Equal(item.Total))
}

// staleUnits simula que otra transacción cambió la unidad entre la lectura y el UPDATE condicional:
// el UPDATE no afecta filas.
type staleUnits struct {
	repository.StockUnitRepository
}

func (staleUnits) Transition(context.Context, entity.UnitTransition) (bool, error) {
	return false, nil
}

// staleRunner ejecuta sobre el store en memoria con staleUnits en lugar del repositorio de unidades.
type staleRunner struct{ store *memory.Store }

func (r staleRunner) Run(ctx context.Context, fn func(repos ports.TxRepos) error) error {
	return r.store.Run(ctx, func(repos ports.TxRepos) error {
		repos.Units = staleUnits{repos.Units}
		return fn(repos)
	})
}

func TestCreateSale_UpdateCondicionalSinFilas(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	id := f.addPhone(t, shopA, "IMEI-1", 100)
	before := f.store.Counts()

	processor := sales.NewProcessor(staleRunner{f.store}, f.registry, f.store.Repos().Sales, nil, nil)
	_, err := processor.CreateSale(ctx, shopA, cart(entity.PaymentCash, id))
	require.ErrorIs(t, err, domain.ErrUnavailable)

	assert.Equal(t, before, f.store.Counts(), "sin venta ni líneas")
	assert.Zero(t, f.store.Counts().Sales)
	assert.Equal(t, "in_stock", f.status(t, id))
}

func TestCreateSale_VentaDobleConcurrente(t *testing.T) {
	f := newFixture(t, nil)
	id := f.addPhone(t, shopA, "IMEI-1", 100)

	var g errgroup.Group
	errs := make([]error, 2)
	for i := range errs {
		i := i
		g.Go(func() error {
			_, errs[i] = f.processor.CreateSale(context.Background(), shopA, cart(entity.PaymentCash, id))
			return nil
		})
	}
	require.NoError(t, g.Wait())

	ok, unavailable := 0, 0
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, domain.ErrUnavailable):
			unavailable++
		}
	}
	assert.Equal(t, 1, ok, "solo una venta gana")
	assert.Equal(t, 1, unavailable)
	assert.Equal(t, 1, f.store.Counts().Sales)
}

type metricsMock struct{ mock.Mock }

func (m *metricsMock) UnitTransition(from, to string) { m.Called(from, to) }
func (m *metricsMock) SaleCreated(method string, total decimal.Decimal, items int) {
	m.Called(method, total.StringFixed(2), items)
}
func (m *metricsMock) Rejected(operation string, err error) { m.Called(operation, err) }

func TestCreateSale_MetricasDespuesDelCommit(t *testing.T) {
	metrics := &metricsMock{}
	f := newFixture(t, metrics)
	a := f.addPhone(t, shopA, "IMEI-1", 100)
	b := f.addPhone(t, shopA, "IMEI-2", 50)

	metrics.On("UnitTransition", "in_stock", "sold").Twice()
	metrics.On("SaleCreated", entity.PaymentCash, "150.00", 2).Once()
	_, err := f.processor.CreateSale(context.Background(), shopA, cart(entity.PaymentCash, a, b))
	require.NoError(t, err)

	metrics.On("Rejected", "create_sale", mock.Anything).Once()
	_, err = f.processor.CreateSale(context.Background(), shopA, cart(entity.PaymentCash, a))
	require.ErrorIs(t, err, domain.ErrUnavailable)

	metrics.AssertExpectations(t)
}
