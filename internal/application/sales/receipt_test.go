package sales_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Stock-api/internal/application/ports"
	"github.com/jhoicas/Stock-api/internal/application/sales"
	"github.com/jhoicas/Stock-api/internal/domain"
	"github.com/jhoicas/Stock-api/internal/domain/entity"
	"github.com/jhoicas/Stock-api/internal/infrastructure/memory"
)

type generatorMock struct{ mock.Mock }

func (m *generatorMock) GenerateSaleReceipt(ctx context.Context, s *entity.Sale, shop *entity.Shop, c *entity.Customer, lines []ports.ReceiptLine) ([]byte, error) {
	args := m.Called(s.ID, shop.ID, c, lines)
	return args.Get(0).([]byte), args.Error(1)
}

func TestReceipt_ResuelveCatalogoEIdentificador(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	id := f.addPhone(t, shopA, "356938035643809", 100)
	out, err := f.processor.CreateSale(ctx, shopA, cart(entity.PaymentCash, id))
	require.NoError(t, err)

	gen := &generatorMock{}
	gen.On("GenerateSaleReceipt", out.ID, memory.DemoShopA, (*entity.Customer)(nil), mock.MatchedBy(func(lines []ports.ReceiptLine) bool {
		return len(lines) == 1 &&
			lines[0].Identifier == "356938035643809" &&
			lines[0].Description == "Galaxy A15 128GB Negro" &&
			lines[0].Item.UnitID == id
	})).Return([]byte("%PDF-1.3"), nil).Once()

	repos := f.store.Repos()
	uc := sales.NewReceiptUseCase(f.processor, repos.Units, repos.Catalog, repos.Customers, gen)
	pdf, err := uc.Generate(ctx, shopA, out.ID)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.3", string(pdf))
	gen.AssertExpectations(t)

	_, err = uc.Generate(ctx, shopB, out.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
