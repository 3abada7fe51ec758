// Package pdf genera la versión imprimible del resumen de ingresos.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del reporte  │  Período + Rango de fechas   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Período | Ingresos                                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL DEL RANGO                                             │
//	│  FOOTER: fecha de generación                                 │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

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
	"github.com/shopspring/decimal"

	appanalytics "github.com/jhoicas/retail-backoffice/internal/application/analytics"
	"github.com/jhoicas/retail-backoffice/internal/application/dto"
	domanalytics "github.com/jhoicas/retail-backoffice/internal/domain/analytics"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ appanalytics.RevenueReportPDFGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa analytics.RevenueReportPDFGenerator usando
// Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateRevenueReportPDF genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateRevenueReportPDF(
	_ context.Context,
	period domanalytics.Period,
	rangeLabel string,
	buckets []dto.RevenueBucketDTO,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Resumen de Ingresos", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(period, rangeLabel))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableBucketRows(buckets) {
		m.AddRows(r)
	}
	if len(buckets) == 0 {
		m.AddRows(emptyRow())
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(buckets))

	m.AddRows(line.NewRow(3))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// periodLabel traduce el período al encabezado del reporte.
func periodLabel(p domanalytics.Period) string {
	switch p {
	case domanalytics.PeriodDaily:
		return "Diario"
	case domanalytics.PeriodWeekly:
		return "Semanal"
	case domanalytics.PeriodMonthly:
		return "Mensual"
	case domanalytics.PeriodYearly:
		return "Anual"
	}
	return string(p)
}

// headerRow: título (izq) y período + rango (der).
func headerRow(period domanalytics.Period, rangeLabel string) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New("RESUMEN DE INGRESOS", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Reporte de ventas agrupadas por período", props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Agrupación: "+periodLabel(period), props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2,
			}),
			text.New("Rango: "+rangeLabel, props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de buckets.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Período", 6, align.Left),
		h("Ingresos", 6, align.Right),
	)
}

// tableBucketRows: una fila por bucket, en el orden recibido (ya ascendente).
func tableBucketRows(buckets []dto.RevenueBucketDTO) []core.Row {
	result := make([]core.Row, 0, len(buckets))
	for _, b := range buckets {
		result = append(result, row.New(6).Add(
			col.New(6).Add(text.New(
				b.Period,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(6).Add(text.New(
				"$"+b.TotalAmount.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

func emptyRow() core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New("Sin ventas en el rango seleccionado", props.Text{
			Size: 8, Align: align.Center, Color: colorGray, Top: 2,
		}),
	))
}

// totalRow: suma de todos los buckets del reporte.
func totalRow(buckets []dto.RevenueBucketDTO) core.Row {
	total := decimal.Zero
	for _, b := range buckets {
		total = total.Add(b.TotalAmount)
	}
	return row.New(10).Add(
		col.New(6).Add(text.New("TOTAL DEL RANGO", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Top: 2, Right: 2,
		})),
		col.New(6).Add(text.New("$"+total.StringFixed(2), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Top: 2, Right: 1,
		})),
	)
}

// footerRow: fecha de generación.
func footerRow() core.Row {
	return row.New(6).Add(col.New(12).Add(
		text.New(
			"Generado el "+time.Now().Format("02/01/2006 15:04"),
			props.Text{Size: 6.5, Color: colorGray, Top: 1},
		),
	))
}
