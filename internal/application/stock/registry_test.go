package stock_test

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
	"github.com/jhoicas/Stock-api/internal/application/stock"
	"github.com/jhoicas/Stock-api/internal/domain"
	"github.com/jhoicas/Stock-api/internal/infrastructure/memory"
)

func ptr[T any](v T) *T { return &v }

// bothShops sesión con acceso a las dos tiendas de demostración, activa en A.
var bothShops = stock.Scope{UserID: "user-1", ShopID: memory.DemoShopA, ShopIDs: []string{memory.DemoShopA, memory.DemoShopB}}

func newRegistry(t *testing.T) (*stock.Registry, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	memory.SeedDemo(store)
	return stock.NewRegistry(store, store.Repos().Units, nil, nil), store
}

func phone(shopID, imei string) dto.CreateUnitRequest {
	return dto.CreateUnitRequest{
		VariantID: memory.DemoVariant,
		ShopID:    shopID,
		UnitIdentifiersRequest: dto.UnitIdentifiersRequest{
			PrimaryID: ptr(imei),
		},
		UnitCommercialRequest: dto.UnitCommercialRequest{
			PurchasePrice: decimal.NewFromInt(80),
			SalePrice:     decimal.NewFromInt(100),
		},
	}
}

func TestCreateUnit_IMEIUnicoEntreTiendas(t *testing.T) {
	reg, _ := newRegistry(t)
	ctx := context.Background()

	u, err := reg.CreateUnit(ctx, bothShops, phone(memory.DemoShopA, "IMEI-1"))
	require.NoError(t, err)
	assert.Equal(t, "in_stock", u.Status)
	assert.Equal(t, memory.DemoShopA, u.ShopID)
	assert.False(t, u.Sold)
	assert.True(t, u.Available)

	_, err = reg.CreateUnit(ctx, bothShops, phone(memory.DemoShopB, "IMEI-1"))
	assert.ErrorIs(t, err, domain.ErrConflict, "el IMEI es único en todas las tiendas")

	// El secundario comparte espacio con el primario.
	in := phone(memory.DemoShopB, "IMEI-2")
	in.SecondaryID = ptr("IMEI-1")
	_, err = reg.CreateUnit(ctx, bothShops, in)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestCreateUnit_IMEIDeAnchoCompletoChoca(t *testing.T) {
	reg, _ := newRegistry(t)
	ctx := context.Background()
	_, err := reg.CreateUnit(ctx, bothShops, phone(memory.DemoShopA, "356938035643809"))
	require.NoError(t, err)

	_, err = reg.CreateUnit(ctx, bothShops, phone(memory.DemoShopB, "３５６９３８０３５６４３８０９"))
	assert.ErrorIs(t, err, domain.ErrConflict)

	found, err := reg.FindByIdentifier(ctx, bothShops, "imei", "３５６９３８０３５６４３８０９")
	require.NoError(t, err)
	assert.Equal(t, "356938035643809", *found.PrimaryID)
}

func TestCreateUnit_AltaConcurrenteMismoIMEI(t *testing.T) {
	reg, store := newRegistry(t)
	shops := []string{memory.DemoShopA, memory.DemoShopB}

	var g errgroup.Group
	errs := make([]error, len(shops))
	for i, shopID := range shops {
		i, shopID := i, shopID
		g.Go(func() error {
			_, errs[i] = reg.CreateUnit(context.Background(), bothShops, phone(shopID, "356938035643809"))
			return nil
		})
	}
	require.NoError(t, g.Wait())

	ok, conflict := 0, 0
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, domain.ErrConflict):
			conflict++
		}
	}
	assert.Equal(t, 1, ok, "solo un alta gana")
	assert.Equal(t, 1, conflict)
	assert.Equal(t, 1, store.Counts().Units)
}

func TestCreateUnit_IMEIsIgualesEnLaMismaUnidad(t *testing.T) {
	reg, _ := newRegistry(t)
	in := phone(memory.DemoShopA, "IMEI-1")
	in.SecondaryID = ptr(" IMEI-1 ")
	_, err := reg.CreateUnit(context.Background(), bothShops, in)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCreateUnit_CodigoDeBarrasPorTienda(t *testing.T) {
	reg, _ := newRegistry(t)
	ctx := context.Background()
	accessory := func(shopID string) dto.CreateUnitRequest {
		return dto.CreateUnitRequest{
			VariantID:              memory.DemoCase,
			ShopID:                 shopID,
			UnitIdentifiersRequest: dto.UnitIdentifiersRequest{Barcode: ptr("7701234")},
		}
	}
	_, err := reg.CreateUnit(ctx, bothShops, accessory(memory.DemoShopA))
	require.NoError(t, err)
	_, err = reg.CreateUnit(ctx, bothShops, accessory(memory.DemoShopB))
	require.NoError(t, err, "el mismo código en otra tienda es válido")
	_, err = reg.CreateUnit(ctx, bothShops, accessory(memory.DemoShopA))
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestCreateUnit_Validaciones(t *testing.T) {
	reg, _ := newRegistry(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		scope stock.Scope
		in    func() dto.CreateUnitRequest
		want  error
	}{
		{
			name:  "variante inexistente",
			scope: bothShops,
			in: func() dto.CreateUnitRequest {
				in := phone(memory.DemoShopA, "IMEI-9")
				in.VariantID = "no-existe"
				return in
			},
			want: domain.ErrValidation,
		},
		{
			name:  "proveedor inexistente",
			scope: bothShops,
			in: func() dto.CreateUnitRequest {
				in := phone(memory.DemoShopA, "IMEI-9")
				in.VendorType, in.VendorID = "wholesaler", "w-404"
				return in
			},
			want: domain.ErrValidation,
		},
		{
			name:  "precio negativo",
			scope: bothShops,
			in: func() dto.CreateUnitRequest {
				in := phone(memory.DemoShopA, "IMEI-9")
				in.SalePrice = decimal.NewFromInt(-1)
				return in
			},
			want: domain.ErrValidation,
		},
		{
			name: "tienda sin acceso",
			scope: stock.Scope{UserID: "user-1", ShopID: memory.DemoShopA},
			in:   func() dto.CreateUnitRequest { return phone(memory.DemoShopB, "IMEI-9") },
			want: domain.ErrForbidden,
		},
		{
			name:  "sesión sin usuario",
			scope: stock.Scope{ShopID: memory.DemoShopA},
			in:    func() dto.CreateUnitRequest { return phone(memory.DemoShopA, "IMEI-9") },
			want:  domain.ErrUnauthorized,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := reg.CreateUnit(ctx, tt.scope, tt.in())
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCreateUnit_ProveedorEImpuesto(t *testing.T) {
	reg, _ := newRegistry(t)
	in := phone(memory.DemoShopA, "IMEI-1")
	in.VendorType, in.VendorID = "vendor", memory.DemoVendor
	in.TaxID = ptr(memory.DemoTax)
	in.Condition = "Used"

	u, err := reg.CreateUnit(context.Background(), bothShops, in)
	require.NoError(t, err)
	assert.Equal(t, "vendor", u.VendorType)
	assert.Equal(t, memory.DemoVendor, u.VendorID)
	assert.Equal(t, "used", u.Condition)
}

func TestCreateUnitsBulk_TodoONada(t *testing.T) {
	reg, store := newRegistry(t)
	ctx := context.Background()

	_, err := reg.CreateUnit(ctx, bothShops, phone(memory.DemoShopA, "IMEI-3"))
	require.NoError(t, err)
	before := store.Counts().Units

	batch := dto.BulkCreateUnitsRequest{
		VariantID: memory.DemoVariant,
		Quantity:  3,
		Units: []dto.UnitIdentifiersRequest{
			{PrimaryID: ptr("IMEI-1")},
			{PrimaryID: ptr("IMEI-2")},
			{PrimaryID: ptr("IMEI-3")},
		},
	}
	_, err = reg.CreateUnitsBulk(ctx, bothShops, batch)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, before, store.Counts().Units, "ninguna unidad del lote se escribe")

	batch.Units[2] = dto.UnitIdentifiersRequest{PrimaryID: ptr("IMEI-1")}
	_, err = reg.CreateUnitsBulk(ctx, bothShops, batch)
	assert.ErrorIs(t, err, domain.ErrValidation, "repetido dentro del lote")

	batch.Units[2] = dto.UnitIdentifiersRequest{SecondaryID: ptr("IMEI-2")}
	_, err = reg.CreateUnitsBulk(ctx, bothShops, batch)
	assert.ErrorIs(t, err, domain.ErrValidation, "primario y secundario comparten espacio en el lote")

	batch.Units[2] = dto.UnitIdentifiersRequest{PrimaryID: ptr("IMEI-4")}
	out, err := reg.CreateUnitsBulk(ctx, bothShops, batch)
	require.NoError(t, err)
	assert.Len(t, out, 3)
	assert.Equal(t, before+3, store.Counts().Units)

	batch.Quantity = 2
	_, err = reg.CreateUnitsBulk(ctx, bothShops, batch)
	assert.ErrorIs(t, err, domain.ErrValidation, "quantity debe coincidir con las unidades")
}

func TestUpdateUnit_AutoActualizacionSinConflicto(t *testing.T) {
	reg, _ := newRegistry(t)
	ctx := context.Background()

	a, err := reg.CreateUnit(ctx, bothShops, phone(memory.DemoShopA, "IMEI-1"))
	require.NoError(t, err)
	_, err = reg.CreateUnit(ctx, bothShops, phone(memory.DemoShopA, "IMEI-2"))
	require.NoError(t, err)

	newPrice := decimal.NewFromInt(120)
	up, err := reg.UpdateUnit(ctx, bothShops, a.ID, dto.UpdateUnitRequest{PrimaryID: ptr("IMEI-1"), SalePrice: &newPrice})
	require.NoError(t, err, "reenviar el propio IMEI no es conflicto")
	assert.True(t, newPrice.Equal(up.SalePrice))

	_, err = reg.UpdateUnit(ctx, bothShops, a.ID, dto.UpdateUnitRequest{SecondaryID: ptr("IMEI-2")})
	assert.ErrorIs(t, err, domain.ErrConflict)

	_, err = reg.UpdateUnit(ctx, bothShops, "no-existe", dto.UpdateUnitRequest{Notes: ptr("x")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSoftDelete_LiberaIdentificadores(t *testing.T) {
	reg, _ := newRegistry(t)
	ctx := context.Background()

	u, err := reg.CreateUnit(ctx, bothShops, phone(memory.DemoShopA, "IMEI-1"))
	require.NoError(t, err)
	require.NoError(t, reg.SoftDelete(ctx, bothShops, u.ID))

	_, err = reg.GetUnit(ctx, bothShops, u.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, reg.SoftDelete(ctx, bothShops, u.ID), domain.ErrNotFound)

	_, err = reg.CreateUnit(ctx, bothShops, phone(memory.DemoShopB, "IMEI-1"))
	assert.NoError(t, err, "una unidad inactiva no reserva su IMEI")
}

func TestFindByIdentifier_RestringidoALaSesion(t *testing.T) {
	reg, _ := newRegistry(t)
	ctx := context.Background()

	_, err := reg.CreateUnit(ctx, bothShops, phone(memory.DemoShopB, "IMEI-1"))
	require.NoError(t, err)

	found, err := reg.FindByIdentifier(ctx, bothShops, "imei", " IMEI-1 ")
	require.NoError(t, err)
	assert.Equal(t, "Galaxy A15", found.ProductName)
	assert.Equal(t, "Samsung", found.BrandName)

	onlyA := stock.Scope{UserID: "user-2", ShopID: memory.DemoShopA}
	_, err = reg.FindByIdentifier(ctx, onlyA, "imei", "IMEI-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = reg.FindByIdentifier(ctx, bothShops, "sku", "IMEI-1")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestListUnits_FiltraPorTiendaYEstado(t *testing.T) {
	reg, _ := newRegistry(t)
	ctx := context.Background()
	for _, imei := range []string{"IMEI-1", "IMEI-2"} {
		_, err := reg.CreateUnit(ctx, bothShops, phone(memory.DemoShopA, imei))
		require.NoError(t, err)
	}
	_, err := reg.CreateUnit(ctx, bothShops, phone(memory.DemoShopB, "IMEI-3"))
	require.NoError(t, err)

	list, err := reg.ListUnits(ctx, bothShops, dto.ListUnitsRequest{Status: "in_stock"})
	require.NoError(t, err)
	assert.Len(t, list, 2, "vacío = tienda activa")

	list, err = reg.ListUnits(ctx, bothShops, dto.ListUnitsRequest{ShopID: memory.DemoShopB})
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = reg.ListUnits(ctx, bothShops, dto.ListUnitsRequest{Status: "lost"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestLowStock(t *testing.T) {
	reg, _ := newRegistry(t)
	ctx := context.Background()

	for i, imei := range []string{"IMEI-1", "IMEI-2"} {
		in := phone(memory.DemoShopA, imei)
		in.LowStockThreshold = ptr(3 - i) // el menor umbral (2) gana
		_, err := reg.CreateUnit(ctx, bothShops, in)
		require.NoError(t, err)
	}
	// Accesorio sin umbral: nunca se reporta.
	_, err := reg.CreateUnit(ctx, bothShops, dto.CreateUnitRequest{VariantID: memory.DemoCase})
	require.NoError(t, err)

	items, err := reg.LowStock(ctx, bothShops, "")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, memory.DemoVariant, items[0].VariantID)
	assert.Equal(t, 2, items[0].Count)
	assert.Equal(t, 2, items[0].Threshold)

	items, err = reg.LowStock(ctx, bothShops, memory.DemoShopB)
	require.NoError(t, err)
	assert.Empty(t, items)
}

type metricsMock struct{ mock.Mock }

func (m *metricsMock) UnitTransition(from, to string) { m.Called(from, to) }
func (m *metricsMock) SaleCreated(method string, total decimal.Decimal, items int) {
	m.Called(method, total, items)
}
func (m *metricsMock) Rejected(operation string, err error) { m.Called(operation, err) }

func TestCreateUnit_RegistraRechazo(t *testing.T) {
	store := memory.NewStore()
	memory.SeedDemo(store)
	metrics := &metricsMock{}
	metrics.On("Rejected", "create_unit", mock.MatchedBy(func(err error) bool {
		return domain.KindName(err) == "conflict"
	})).Once()
	reg := stock.NewRegistry(store, store.Repos().Units, metrics, nil)
	ctx := context.Background()

	_, err := reg.CreateUnit(ctx, bothShops, phone(memory.DemoShopA, "IMEI-1"))
	require.NoError(t, err)
	_, err = reg.CreateUnit(ctx, bothShops, phone(memory.DemoShopA, "IMEI-1"))
	require.ErrorIs(t, err, domain.ErrConflict)

	metrics.AssertExpectations(t)
}
