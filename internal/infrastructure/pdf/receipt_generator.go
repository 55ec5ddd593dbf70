// Package pdf genera el comprobante de venta del punto de venta en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Tienda               │  N° Venta + Fecha           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nombre + Tel / Medio de pago                      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Descripción | IMEI/Serie | P.Unit | Total     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Subtotal / Descuento / Impuesto / TOTAL            │
//	│  FOOTER: QR con el ID de la venta                           │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Stock-api/internal/application/ports"
	"github.com/jhoicas/Stock-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ ports.ReceiptGenerator = (*MarotoReceiptGenerator)(nil)

// MarotoReceiptGenerator implementa ports.ReceiptGenerator con Maroto v2.
type MarotoReceiptGenerator struct{}

// NewMarotoReceiptGenerator construye el generador.
func NewMarotoReceiptGenerator() *MarotoReceiptGenerator { return &MarotoReceiptGenerator{} }

// GenerateSaleReceipt genera el PDF y devuelve sus bytes. customer puede ser nil (venta de mostrador).
func (g *MarotoReceiptGenerator) GenerateSaleReceipt(
	_ context.Context,
	sale *entity.Sale,
	shop *entity.Shop,
	customer *entity.Customer,
	lines []ports.ReceiptLine,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Comprobante de venta "+sale.ID, true).
		WithAuthor(shop.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(sale, shop))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(sale, customer))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableLineRows(lines)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(sale))
	m.AddRows(line.NewRow(3))
	m.AddRows(footerRow(sale))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar comprobante: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(sale *entity.Sale, shop *entity.Shop) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(shop.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Tienda: "+shop.ID, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("COMPROBANTE DE VENTA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(sale.ID, props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+sale.CreatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

func customerRow(sale *entity.Sale, customer *entity.Customer) core.Row {
	name, phone := "Cliente de mostrador", "—"
	if customer != nil {
		name = customer.Name
		phone = nonEmpty(customer.Phone, "—")
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(name, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Tel: %s   |   Medio de pago: %s", phone, sale.PaymentMethod),
				props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Descripción", 4, align.Left),
		h("IMEI / Serie", 3, align.Left),
		h("Precio Unit.", 2, align.Right),
		h("Total", 2, align.Right),
	)
}

func tableLineRows(lines []ports.ReceiptLine) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", l.Item.Quantity),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(4).Add(text.New(
				l.Description,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(
				nonEmpty(l.Identifier, "—"),
				props.Text{Size: 7, Align: align.Left, Top: 1, Left: 1, Color: colorGray},
			)),
			col.New(2).Add(text.New(
				"$"+formatMoney(l.Item.UnitPrice),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				"$"+formatMoney(l.Item.Total),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

func totalsRow(sale *entity.Sale) core.Row {
	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: top,
		})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1, Top: top})
	}
	grand := func(s string, right float64) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: right, Top: 18,
		})
	}

	return row.New(26).Add(
		col.New(6),
		col.New(3).Add(
			label("Subtotal:", 0),
			label("Descuento:", 6),
			label("Impuesto:", 12),
			grand("TOTAL:", 2),
		),
		col.New(3).Add(
			value("$"+formatMoney(sale.Subtotal), 0),
			value("-$"+formatMoney(sale.Discount), 6),
			value("$"+formatMoney(sale.Tax), 12),
			grand("$"+formatMoney(sale.Total), 1),
		),
	)
}

func footerRow(sale *entity.Sale) core.Row {
	return row.New(40).Add(
		col.New(3).Add(code.NewQr(sale.ID, props.Rect{Percent: 90, Center: true})),
		col.New(9).Add(
			text.New("Conserve este comprobante. Las garantías se validan con el IMEI o la serie impresos.", props.Text{
				Size: 8, Top: 4, Left: 3, Color: colorGray,
			}),
		),
	)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney 2 decimales con puntos de miles y coma decimal: 1234.5 → "1.234,50".
func formatMoney(d decimal.Decimal) string {
	s := d.Abs().StringFixed(2)
	intPart, frac, _ := strings.Cut(s, ".")
	n := len(intPart)
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	out := string(buf) + "," + frac
	if d.IsNegative() {
		return "-" + out
	}
	return out
}
