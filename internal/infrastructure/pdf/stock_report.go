// Package pdf genera el reporte de existencias de repuestos con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + fecha de generación                       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Código | Nombre | Categoría | Cant | P.Unit | Total │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: N° repuestos / Unidades / VALOR INVENTARIO        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

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

	"github.com/jhoicas/Repuestos-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorStripe  = &props.Color{Red: 240, Green: 244, Blue: 248}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// StockReportGenerator implementa report.Generator usando Maroto v2.
type StockReportGenerator struct {
	title string
}

// NewStockReportGenerator construye el generador. title encabeza el documento.
func NewStockReportGenerator(title string) *StockReportGenerator {
	if title == "" {
		title = "Reporte de existencias"
	}
	return &StockReportGenerator{title: title}
}

// GenerateStockReport genera el PDF y devuelve sus bytes.
func (g *StockReportGenerator) GenerateStockReport(_ context.Context, parts []*entity.SparePart, generatedAt time.Time) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(g.title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.title, generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	m.AddRows(tableRows(parts)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRows(parts)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar reporte: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(title string, generatedAt time.Time) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New(title, props.Text{Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 2}),
		),
		col.New(4).Add(
			text.New("Generado: "+generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 5, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Código", 2, align.Left),
		h("Nombre", 3, align.Left),
		h("Categoría", 2, align.Left),
		h("Cant.", 1, align.Center),
		h("P. Unit.", 2, align.Right),
		h("Total", 2, align.Right),
	)
}

func tableRows(parts []*entity.SparePart) []core.Row {
	if len(parts) == 0 {
		return []core.Row{row.New(8).Add(col.New(12).Add(
			text.New("Sin repuestos registrados", props.Text{Size: 8, Align: align.Center, Top: 2, Color: colorGray}),
		))}
	}
	cell := func(value string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(value, props.Text{Size: 8, Align: a, Top: 1, Left: 1, Right: 1}))
	}
	result := make([]core.Row, 0, len(parts))
	for i, p := range parts {
		r := row.New(7).Add(
			cell(p.BusinessID, 2, align.Left),
			cell(p.Name, 3, align.Left),
			cell(nonEmpty(p.Category, "—"), 2, align.Left),
			cell(fmt.Sprintf("%d", p.Quantity), 1, align.Center),
			cell(money(p.UnitPrice), 2, align.Right),
			cell(money(p.TotalValue), 2, align.Right),
		)
		if i%2 == 1 {
			r.WithStyle(&props.Cell{BackgroundColor: colorStripe})
		}
		result = append(result, r)
	}
	return result
}

func totalsRows(parts []*entity.SparePart) []core.Row {
	units := 0
	value := decimal.Zero
	for _, p := range parts {
		units += p.Quantity
		value = value.Add(p.TotalValue)
	}
	label := func(s string) core.Col {
		return col.New(9).Add(text.New(s, props.Text{Size: 9, Align: align.Right, Top: 1}))
	}
	amount := func(s string, style fontstyle.Type) core.Col {
		return col.New(3).Add(text.New(s, props.Text{Size: 9, Align: align.Right, Top: 1, Style: style}))
	}
	return []core.Row{
		row.New(6).Add(label("Repuestos:"), amount(fmt.Sprintf("%d", len(parts)), fontstyle.Normal)),
		row.New(6).Add(label("Unidades en existencia:"), amount(fmt.Sprintf("%d", units), fontstyle.Normal)),
		row.New(8).Add(label("VALOR DEL INVENTARIO:"), amount(money(value), fontstyle.Bold)),
	}
}

func money(d decimal.Decimal) string {
	return "$ " + d.StringFixed(2)
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
