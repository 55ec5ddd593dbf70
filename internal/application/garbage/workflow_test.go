package garbage_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Stock-api/internal/application/dto"
	"github.com/jhoicas/Stock-api/internal/application/garbage"
	"github.com/jhoicas/Stock-api/internal/application/sales"
	"github.com/jhoicas/Stock-api/internal/application/stock"
	"github.com/jhoicas/Stock-api/internal/domain"
	"github.com/jhoicas/Stock-api/internal/domain/entity"
	"github.com/jhoicas/Stock-api/internal/infrastructure/memory"
)

var scope = stock.Scope{UserID: "tech-1", ShopID: memory.DemoShopA}

type fixture struct {
	store    *memory.Store
	registry *stock.Registry
	workflow *garbage.Workflow
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	memory.SeedDemo(store)
	store.AddGarbageReason(entity.GarbageReason{ID: "reason-b-only", ShopID: memory.DemoShopB, Name: "Humedad"})
	store.AddGarbageReason(entity.GarbageReason{ID: "reason-battery", Name: "Batería"})
	reg := stock.NewRegistry(store, store.Repos().Units, nil, nil)
	return &fixture{store: store, registry: reg, workflow: garbage.NewWorkflow(store, reg, store.Repos().Garbage, nil)}
}

func (f *fixture) addUnit(t *testing.T, imei string) string {
	t.Helper()
	u, err := f.registry.CreateUnit(context.Background(), scope, dto.CreateUnitRequest{
		VariantID:              memory.DemoVariant,
		UnitIdentifiersRequest: dto.UnitIdentifiersRequest{PrimaryID: &imei},
	})
	require.NoError(t, err)
	return u.ID
}

func (f *fixture) status(t *testing.T, id string) string {
	t.Helper()
	u, err := f.registry.GetUnit(context.Background(), scope, id)
	require.NoError(t, err)
	return u.Status
}

func TestMarkDefective_YClear(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.addUnit(t, "IMEI-1")

	rec, err := f.workflow.MarkDefective(ctx, scope, dto.MarkDefectiveRequest{UnitID: id, ReasonID: memory.DemoReason})
	require.NoError(t, err)
	assert.True(t, rec.Active)
	assert.Equal(t, "defective", f.status(t, id))

	_, err = f.workflow.MarkDefective(ctx, scope, dto.MarkDefectiveRequest{UnitID: id, ReasonID: memory.DemoReason})
	assert.ErrorIs(t, err, domain.ErrConflict, "un solo registro activo por unidad")
	assert.Equal(t, 1, f.store.Counts().Garbage)

	u, err := f.workflow.ClearDefective(ctx, scope, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, "in_stock", u.Status)
	assert.Equal(t, "in_stock", f.status(t, id))
	assert.Zero(t, f.store.Counts().Garbage, "clear borra el registro")

	_, err = f.workflow.ClearDefective(ctx, scope, rec.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMarkDefective_Rechazos(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.addUnit(t, "IMEI-1")
	soldID := f.addUnit(t, "IMEI-2")
	proc := sales.NewProcessor(f.store, f.registry, f.store.Repos().Sales, nil, nil)
	_, err := proc.CreateSale(ctx, scope, dto.CreateSaleRequest{
		PaymentMethod: entity.PaymentCash,
		Items:         []dto.SaleItemRequest{{UnitID: soldID}},
	})
	require.NoError(t, err)

	tests := []struct {
		name string
		in   dto.MarkDefectiveRequest
		want error
	}{
		{"unidad vendida", dto.MarkDefectiveRequest{UnitID: soldID, ReasonID: memory.DemoReason}, domain.ErrUnavailable},
		{"motivo de otra tienda", dto.MarkDefectiveRequest{UnitID: id, ReasonID: "reason-b-only"}, domain.ErrNotFound},
		{"motivo inexistente", dto.MarkDefectiveRequest{UnitID: id, ReasonID: "reason-404"}, domain.ErrNotFound},
		{"unidad inexistente", dto.MarkDefectiveRequest{UnitID: "no-existe", ReasonID: memory.DemoReason}, domain.ErrNotFound},
		{"sin motivo", dto.MarkDefectiveRequest{UnitID: id}, domain.ErrValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.workflow.MarkDefective(ctx, scope, tt.in)
			assert.ErrorIs(t, err, tt.want)
		})
	}
	assert.Equal(t, "in_stock", f.status(t, id))
	assert.Equal(t, "sold", f.status(t, soldID))
}

func TestMarkDefective_NoSeVende(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.addUnit(t, "IMEI-1")
	_, err := f.workflow.MarkDefective(ctx, scope, dto.MarkDefectiveRequest{UnitID: id, ReasonID: memory.DemoReason})
	require.NoError(t, err)

	proc := sales.NewProcessor(f.store, f.registry, f.store.Repos().Sales, nil, nil)
	_, err = proc.CreateSale(ctx, scope, dto.CreateSaleRequest{
		PaymentMethod: entity.PaymentCash,
		Items:         []dto.SaleItemRequest{{UnitID: id}},
	})
	assert.ErrorIs(t, err, domain.ErrUnavailable)
}

func TestUpdateReasonYDeactivate_NoCambianLaUnidad(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.addUnit(t, "IMEI-1")
	rec, err := f.workflow.MarkDefective(ctx, scope, dto.MarkDefectiveRequest{UnitID: id, ReasonID: memory.DemoReason})
	require.NoError(t, err)

	up, err := f.workflow.UpdateReason(ctx, scope, rec.ID, dto.UpdateGarbageReasonRequest{ReasonID: "reason-battery"})
	require.NoError(t, err)
	assert.Equal(t, "reason-battery", up.ReasonID)
	assert.Equal(t, "defective", f.status(t, id))

	_, err = f.workflow.UpdateReason(ctx, scope, rec.ID, dto.UpdateGarbageReasonRequest{ReasonID: "reason-b-only"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	off, err := f.workflow.Deactivate(ctx, scope, rec.ID)
	require.NoError(t, err)
	assert.False(t, off.Active)
	assert.Equal(t, "defective", f.status(t, id))

	active, err := f.workflow.List(ctx, scope, "", true)
	require.NoError(t, err)
	assert.Empty(t, active)
	all, err := f.workflow.List(ctx, scope, "", false)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "reason-battery", all[0].ReasonID)

	_, err = f.workflow.List(ctx, scope, memory.DemoShopB, false)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
