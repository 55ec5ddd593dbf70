package sale_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Stock-api/internal/domain"
	"github.com/jhoicas/Stock-api/internal/domain/sale"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestCalculate_EscenarioDeReferencia(t *testing.T) {
	// 100.00 - 10.00 + 5.00 = 95.00
	totals, err := sale.Calculate([]sale.Line{{UnitPrice: d("100.00"), Quantity: 1}}, d("10.00"), d("5.00"))
	require.NoError(t, err)
	assert.Equal(t, "100.00", totals.Subtotal.StringFixed(2))
	assert.Equal(t, "95.00", totals.Total.StringFixed(2))
}

func TestCalculate_SubtotalEsSumaDeLineas(t *testing.T) {
	lines := []sale.Line{
		{UnitPrice: d("0.10"), Quantity: 3},
		{UnitPrice: d("0.20"), Quantity: 1},
		{UnitPrice: d("1999.99"), Quantity: 1},
	}
	totals, err := sale.Calculate(lines, decimal.Zero, d("0.01"))
	require.NoError(t, err)

	sum := decimal.Zero
	for _, l := range lines {
		sum = sum.Add(l.Total())
	}
	assert.True(t, totals.Subtotal.Equal(sum))
	assert.Equal(t, "2000.49", totals.Subtotal.StringFixed(2), "sin error de coma flotante")
	assert.True(t, totals.Total.Equal(totals.Subtotal.Sub(totals.Discount).Add(totals.Tax)))
}

func TestCalculate_Rechazos(t *testing.T) {
	one := []sale.Line{{UnitPrice: d("10"), Quantity: 1}}

	_, err := sale.Calculate(one, d("-1"), decimal.Zero)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = sale.Calculate(one, decimal.Zero, d("-0.01"))
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = sale.Calculate(one, d("10.01"), decimal.Zero)
	assert.ErrorIs(t, err, domain.ErrValidation, "total negativo")

	_, err = sale.Calculate([]sale.Line{{UnitPrice: d("10"), Quantity: 0}}, decimal.Zero, decimal.Zero)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = sale.Calculate([]sale.Line{{UnitPrice: d("-10"), Quantity: 1}}, decimal.Zero, decimal.Zero)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestNewLine_PrecioRedondeadoAntesDeMultiplicar(t *testing.T) {
	l := sale.NewLine(d("33.333"), 3)
	assert.Equal(t, "33.33", l.UnitPrice.StringFixed(2))
	assert.Equal(t, "99.99", l.Total().StringFixed(2))
	assert.True(t, l.Total().Equal(l.UnitPrice.Mul(decimal.NewFromInt(3))), "total = precio unitario × cantidad")

	totals, err := sale.Calculate([]sale.Line{l}, decimal.Zero, decimal.Zero)
	require.NoError(t, err)
	assert.Equal(t, "99.99", totals.Total.StringFixed(2))
}
