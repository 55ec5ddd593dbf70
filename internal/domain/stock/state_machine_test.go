package stock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Stock-api/internal/domain"
	"github.com/jhoicas/Stock-api/internal/domain/entity"
	"github.com/jhoicas/Stock-api/internal/domain/stock"
)

func TestCheckTransition(t *testing.T) {
	cases := []struct {
		name string
		op   stock.Operation
		from entity.UnitStatus
		to   entity.UnitStatus
		want error
	}{
		{"venta desde stock", stock.OpSale, entity.UnitStatusInStock, entity.UnitStatusSold, nil},
		{"venta de vendida", stock.OpSale, entity.UnitStatusSold, entity.UnitStatusSold, domain.ErrUnavailable},
		{"venta de defectuosa", stock.OpSale, entity.UnitStatusDefective, entity.UnitStatusSold, domain.ErrUnavailable},
		{"defecto desde stock", stock.OpMarkDefective, entity.UnitStatusInStock, entity.UnitStatusDefective, nil},
		{"defecto de vendida", stock.OpMarkDefective, entity.UnitStatusSold, entity.UnitStatusDefective, domain.ErrUnavailable},
		{"reversa de defecto", stock.OpClearDefect, entity.UnitStatusDefective, entity.UnitStatusInStock, nil},
		{"reversa sin defecto", stock.OpClearDefect, entity.UnitStatusInStock, entity.UnitStatusInStock, domain.ErrUnavailable},
		{"traslado", stock.OpTransfer, entity.UnitStatusInStock, entity.UnitStatusInStock, nil},
		{"traslado de vendida", stock.OpTransfer, entity.UnitStatusSold, entity.UnitStatusInStock, domain.ErrUnavailable},
		{"traslado a vendida no existe", stock.OpTransfer, entity.UnitStatusInStock, entity.UnitStatusSold, domain.ErrValidation},
		{"estado desconocido", stock.OpSale, entity.UnitStatus("in_transfer"), entity.UnitStatusSold, domain.ErrValidation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := stock.CheckTransition(tc.op, tc.from, tc.to)
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestCheckUnit_VendidaNuncaVuelveATransicionar(t *testing.T) {
	saleItem := "item-1"
	sold := &entity.StockUnit{ID: "u1", Active: true, Status: entity.UnitStatusSold, Sold: true, SaleItemID: &saleItem}
	for _, op := range []stock.Operation{stock.OpSale, stock.OpTransfer, stock.OpMarkDefective, stock.OpClearDefect} {
		assert.ErrorIs(t, stock.CheckUnit(op, sold), domain.ErrUnavailable, string(op))
	}

	inactive := &entity.StockUnit{ID: "u2", Active: false, Status: entity.UnitStatusInStock}
	assert.ErrorIs(t, stock.CheckUnit(stock.OpSale, inactive), domain.ErrNotFound)
	assert.ErrorIs(t, stock.CheckUnit(stock.OpSale, nil), domain.ErrNotFound)

	ok := &entity.StockUnit{ID: "u3", Active: true, Status: entity.UnitStatusInStock}
	require.NoError(t, stock.CheckUnit(stock.OpTransfer, ok))
}

func TestNormalize(t *testing.T) {
	s := func(v string) *string { return &v }

	ids, err := stock.Normalize(entity.Identifiers{PrimaryID: s("  IMEI-1 "), SecondaryID: s(""), Barcode: s("750100")})
	require.NoError(t, err)
	require.NotNil(t, ids.PrimaryID)
	assert.Equal(t, "IMEI-1", *ids.PrimaryID)
	assert.Nil(t, ids.SecondaryID, "vacío se normaliza a ausente")
	assert.Nil(t, ids.Serial)

	_, err = stock.Normalize(entity.Identifiers{PrimaryID: s("IMEI-1"), SecondaryID: s(" IMEI-1")})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCleanValue_FormasEquivalentes(t *testing.T) {
	cases := []struct{ in, want string }{
		{"３５６９３８０３５６４３８０９", "356938035643809"},
		{"\u3000356938035643809 ", "356938035643809"},
		{"ＳＮ－Ａ１", "SN-A1"},
		{"Cafe\u0301", "Café"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, stock.CleanValue(c.in), c.in)
	}

	s := func(v string) *string { return &v }
	_, err := stock.Normalize(entity.Identifiers{PrimaryID: s("356938035643809"), SecondaryID: s("３５６９３８０３５６４３８０９")})
	assert.ErrorIs(t, err, domain.ErrValidation, "ancho completo es el mismo IMEI")
}

func TestDuplicatesInBatch(t *testing.T) {
	s := func(v string) *string { return &v }
	batch := []entity.Identifiers{
		{PrimaryID: s("A"), SecondaryID: s("B")},
		{PrimaryID: s("C")},
	}
	assert.Equal(t, "", stock.DuplicatesInBatch(batch))

	batch = append(batch, entity.Identifiers{PrimaryID: s("D"), SecondaryID: s("B")})
	assert.Equal(t, "B", stock.DuplicatesInBatch(batch), "el secundario de una unidad choca con el de otra")
}

func TestLockKeys_OrdenadasYUnicas(t *testing.T) {
	s := func(v string) *string { return &v }
	keys := stock.LockKeys("shop-1",
		entity.Identifiers{PrimaryID: s("Z"), Barcode: s("123")},
		entity.Identifiers{PrimaryID: s("A"), SecondaryID: s("Z")},
	)
	assert.Equal(t, []string{"barcode:shop-1:123", "imei:A", "imei:Z"}, keys)
}

func TestParseIdentifierKind(t *testing.T) {
	k, err := stock.ParseIdentifierKind("")
	require.NoError(t, err)
	assert.Equal(t, stock.KindIMEI, k)

	k, err = stock.ParseIdentifierKind("Barcode")
	require.NoError(t, err)
	assert.Equal(t, stock.KindBarcode, k)

	_, err = stock.ParseIdentifierKind("sku")
	assert.ErrorIs(t, err, domain.ErrValidation)
}
