// Package analytics contiene los casos de uso de reportes del back-office:
// resumen de ingresos por período y comparación entre dos rangos de fechas.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/retail-backoffice/internal/application/dto"
	"github.com/jhoicas/retail-backoffice/internal/domain"
	domanalytics "github.com/jhoicas/retail-backoffice/internal/domain/analytics"
	"github.com/jhoicas/retail-backoffice/internal/domain/repository"
)

var hundred = decimal.NewFromInt(100)

// RevenueReportPDFGenerator genera la versión PDF del resumen de ingresos.
type RevenueReportPDFGenerator interface {
	GenerateRevenueReportPDF(
		ctx context.Context,
		period domanalytics.Period,
		rangeLabel string,
		buckets []dto.RevenueBucketDTO,
	) ([]byte, error)
}

// ReportUseCase orquesta las consultas de analítica de ventas.
//
// Fuente de datos: AnalyticsRepository (consultas read-only). No accede a las
// tablas de ventas directamente; delega toda la agregación en el repositorio.
type ReportUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	pdfGenerator  RevenueReportPDFGenerator
}

// NewReportUseCase construye el caso de uso. pdfGenerator puede ser nil si la
// exportación PDF no está cableada (los reportes JSON siguen funcionando).
func NewReportUseCase(analyticsRepo repository.AnalyticsRepository, pdfGenerator RevenueReportPDFGenerator) *ReportUseCase {
	return &ReportUseCase{analyticsRepo: analyticsRepo, pdfGenerator: pdfGenerator}
}

// SummarizeRevenue agrupa las ventas del rango en buckets del período pedido.
// Los buckets salen en orden ascendente de clave y un rango sin ventas produce
// un slice vacío, nunca un error.
func (uc *ReportUseCase) SummarizeRevenue(ctx context.Context, req dto.RevenueStatsRequest) ([]dto.RevenueBucketDTO, error) {
	period := domanalytics.Period(req.Period)
	if !period.Valid() {
		return nil, domain.ErrInvalidPeriod
	}
	start, end, err := parseOptionalRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	rows, err := uc.analyticsRepo.RevenueByPeriod(ctx, period, start, end)
	if err != nil {
		return nil, fmt.Errorf("resumen de ingresos: %w", err)
	}

	buckets := make([]dto.RevenueBucketDTO, 0, len(rows))
	for _, r := range rows {
		buckets = append(buckets, dto.RevenueBucketDTO{
			Period:      r.PeriodKey,
			TotalAmount: r.TotalAmount.Round(2),
		})
	}
	return buckets, nil
}

// Compare calcula los ingresos de dos rangos inclusivos y deriva la diferencia
// absoluta y el cambio porcentual. Los rangos pueden solaparse o venir en
// cualquier orden cronológico; cada uno se calcula por separado.
//
// percent_change = (rev2 − rev1) / rev1 × 100, nil cuando rev1 es cero.
func (uc *ReportUseCase) Compare(ctx context.Context, req dto.CompareRequest) (*dto.SalesComparisonDTO, error) {
	p1Start, p1End, err := parseRequiredRange(req.P1Start, req.P1End)
	if err != nil {
		return nil, err
	}
	p2Start, p2End, err := parseRequiredRange(req.P2Start, req.P2End)
	if err != nil {
		return nil, err
	}
	var categoryID *int64
	if req.CategoryID > 0 {
		categoryID = &req.CategoryID
	}

	// Dos consultas independientes; en paralelo.
	type sumResult struct {
		revenue decimal.Decimal
		err     error
	}
	p1Ch := make(chan sumResult, 1)
	p2Ch := make(chan sumResult, 1)
	go func() {
		rev, err := uc.analyticsRepo.SumRevenue(ctx, p1Start, p1End, categoryID)
		p1Ch <- sumResult{rev, err}
	}()
	go func() {
		rev, err := uc.analyticsRepo.SumRevenue(ctx, p2Start, p2End, categoryID)
		p2Ch <- sumResult{rev, err}
	}()

	p1 := <-p1Ch
	p2 := <-p2Ch
	if p1.err != nil {
		return nil, fmt.Errorf("comparación: período 1: %w", p1.err)
	}
	if p2.err != nil {
		return nil, fmt.Errorf("comparación: período 2: %w", p2.err)
	}

	diff := p2.revenue.Sub(p1.revenue)
	var pct *decimal.Decimal
	if !p1.revenue.IsZero() {
		v := diff.Div(p1.revenue).Mul(hundred).Round(2)
		pct = &v
	}

	return &dto.SalesComparisonDTO{
		Period1: dto.PeriodRevenueDTO{
			Start:   req.P1Start,
			End:     req.P1End,
			Revenue: p1.revenue.Round(2),
		},
		Period2: dto.PeriodRevenueDTO{
			Start:   req.P2Start,
			End:     req.P2End,
			Revenue: p2.revenue.Round(2),
		},
		Difference:    diff.Round(2),
		PercentChange: pct,
	}, nil
}

// ExportRevenuePDF genera el resumen de ingresos como PDF A4.
func (uc *ReportUseCase) ExportRevenuePDF(ctx context.Context, req dto.RevenueStatsRequest) ([]byte, error) {
	if uc.pdfGenerator == nil {
		return nil, domain.ErrInvalidInput
	}
	buckets, err := uc.SummarizeRevenue(ctx, req)
	if err != nil {
		return nil, err
	}
	return uc.pdfGenerator.GenerateRevenueReportPDF(
		ctx,
		domanalytics.Period(req.Period),
		rangeLabel(req.StartDate, req.EndDate),
		buckets,
	)
}

// rangeLabel etiqueta legible del rango para el encabezado del PDF.
func rangeLabel(start, end string) string {
	switch {
	case start == "" && end == "":
		return "Histórico completo"
	case start == "":
		return "Hasta " + end
	case end == "":
		return "Desde " + start
	}
	return start + " a " + end
}

// parseOptionalRange convierte fechas YYYY-MM-DD opcionales en límites
// inclusivos; nil = sin límite. El fin se corre al último instante del día.
// Las fechas se interpretan como días UTC; el repositorio agrupa con la misma
// zona, así los límites y los buckets cortan el día en el mismo instante sin
// importar la TimeZone de la sesión de base de datos.
func parseOptionalRange(startStr, endStr string) (start, end *time.Time, err error) {
	if startStr != "" {
		t, err := time.ParseInLocation("2006-01-02", startStr, time.UTC)
		if err != nil {
			return nil, nil, domain.ErrInvalidInput
		}
		start = &t
	}
	if endStr != "" {
		t, err := time.ParseInLocation("2006-01-02", endStr, time.UTC)
		if err != nil {
			return nil, nil, domain.ErrInvalidInput
		}
		t = t.Add(24*time.Hour - time.Nanosecond)
		end = &t
	}
	return start, end, nil
}

// parseRequiredRange igual que parseOptionalRange pero ambas fechas son
// obligatorias (comparación de períodos).
func parseRequiredRange(startStr, endStr string) (start, end time.Time, err error) {
	if startStr == "" || endStr == "" {
		return start, end, domain.ErrInvalidInput
	}
	start, err = time.ParseInLocation("2006-01-02", startStr, time.UTC)
	if err != nil {
		return start, end, domain.ErrInvalidInput
	}
	end, err = time.ParseInLocation("2006-01-02", endStr, time.UTC)
	if err != nil {
		return start, end, domain.ErrInvalidInput
	}
	end = end.Add(24*time.Hour - time.Nanosecond)
	return start, end, nil
}
