// Package pdf genera el comprobante de venta en PDF con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la tienda  │  N° Venta + Fecha           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTA: Nombre                                            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ARTÍCULOS (descripción "2x Vestido (M), 1x Falda (G)")     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PAGO: método │ TOTAL                                       │
//	│  TABLA DE CUOTAS (si aplica): N° | Vencimiento | Valor      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
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

	"github.com/claricinhas/atelier-api/internal/application/sales"
	"github.com/claricinhas/atelier-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 126, Green: 34, Blue: 88}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ sales.ReceiptPDFGenerator = (*MarotoReceiptGenerator)(nil)

// MarotoReceiptGenerator implementa sales.ReceiptPDFGenerator usando Maroto v2.
type MarotoReceiptGenerator struct{}

// NewMarotoReceiptGenerator construye el generador.
func NewMarotoReceiptGenerator() *MarotoReceiptGenerator { return &MarotoReceiptGenerator{} }

// GenerateReceiptPDF genera el comprobante y devuelve sus bytes.
func (g *MarotoReceiptGenerator) GenerateReceiptPDF(
	_ context.Context,
	sale *entity.Sale,
	shopName string,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Comprobante de venta", true).
		WithAuthor(shopName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(sale, shopName))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(clientRow(sale))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	for _, r := range itemsRows(sale) {
		m.AddRows(r)
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(paymentRow(sale))
	if len(sale.Installments) > 0 {
		m.AddRows(line.NewRow(3))
		for _, r := range installmentsRows(sale) {
			m.AddRows(r)
		}
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar comprobante: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre de la tienda (izq) y N° de venta + fecha (der).
func headerRow(sale *entity.Sale, shopName string) core.Row {
	ref := shortRef(sale.ID)
	fecha := sale.SaleDate.Format("02/01/2006")

	return row.New(18).Add(
		col.New(7).Add(
			text.New(shopName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Comprobante de venta", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("VENTA N° "+ref, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 2,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// clientRow: datos de la clienta.
func clientRow(sale *entity.Sale) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("CLIENTA", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(sale.ClientName, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
		),
	)
}

// itemsRows: descripción de artículos, una línea por "Nx Nombre (Talla)".
func itemsRows(sale *entity.Sale) []core.Row {
	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("ARTÍCULOS", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
		)),
	}
	for _, item := range strings.Split(sale.ItemsDescription, ", ") {
		rows = append(rows, row.New(5).Add(col.New(12).Add(
			text.New(item, props.Text{Size: 9, Top: 0.5, Left: 2}),
		)))
	}
	return rows
}

// paymentRow: método de pago y total.
func paymentRow(sale *entity.Sale) core.Row {
	return row.New(14).Add(
		col.New(6).Add(
			text.New("FORMA DE PAGO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(paymentLabel(sale), props.Text{Size: 9, Top: 7}),
		),
		col.New(6).Add(
			text.New("TOTAL", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("$"+sale.TotalValue.StringFixed(2), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right,
				Color: colorPrimary, Top: 6,
			}),
		),
	)
}

// installmentsRows: tabla de cuotas con vencimiento y estado.
func installmentsRows(sale *entity.Sale) []core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 1,
		}))
	}
	rows := []core.Row{
		row.New(7).Add(
			h("Cuota", 2, align.Center),
			h("Vencimiento", 4, align.Left),
			h("Valor", 3, align.Right),
			h("Estado", 3, align.Center),
		),
	}
	for _, inst := range sale.Installments {
		estado := "Pendiente"
		if inst.Paid {
			estado = "Pagada"
		}
		rows = append(rows, row.New(6).Add(
			col.New(2).Add(text.New(
				installmentLabel(inst.Sequence, len(sale.Installments)),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(4).Add(text.New(
				inst.DueDate.Format("02/01/2006"),
				props.Text{Size: 8, Align: align.Left, Top: 1},
			)),
			col.New(3).Add(text.New(
				"$"+inst.Amount.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1},
			)),
			col.New(3).Add(text.New(
				estado,
				props.Text{Size: 8, Align: align.Center, Top: 1, Color: colorGray},
			)),
		))
	}
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

// paymentLabel etiqueta legible del método de pago.
func paymentLabel(sale *entity.Sale) string {
	switch sale.PaymentMethod {
	case entity.PaymentCash:
		return "Efectivo"
	case entity.PaymentPix:
		return "Pix"
	case entity.PaymentDebit:
		return "Tarjeta débito"
	case entity.PaymentCredit:
		if sale.InstallmentCount > 1 {
			return fmt.Sprintf("Tarjeta crédito (%d cuotas)", sale.InstallmentCount)
		}
		return "Tarjeta crédito"
	case entity.PaymentInstallments:
		return fmt.Sprintf("Crediario (%d cuotas)", sale.InstallmentCount)
	}
	return sale.PaymentMethod
}

// installmentLabel "n/total" en base 1: la secuencia interna arranca en 0
// pero la clienta lee "Cuota 1/3".
func installmentLabel(sequence, total int) string {
	return fmt.Sprintf("%d/%d", sequence+1, total)
}

// shortRef primeros 8 caracteres del UUID, en mayúsculas.
func shortRef(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return strings.ToUpper(id)
}
