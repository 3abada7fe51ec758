// Package analytics contiene servicios de dominio para los reportes de ventas:
// definición de períodos y generación de claves de bucket.
package analytics

import (
	"fmt"
	"time"
)

// Period granularidad de agrupación para el resumen de ingresos.
type Period string

// Períodos soportados por el agregador de ingresos.
const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
	PeriodYearly  Period = "yearly"
)

// Valid reporta si el período es uno de los cuatro soportados.
func (p Period) Valid() bool {
	switch p {
	case PeriodDaily, PeriodWeekly, PeriodMonthly, PeriodYearly:
		return true
	}
	return false
}

// BucketKey devuelve la clave de bucket para una fecha de venta.
// Todas las claves llevan el año explícito para no colapsar años distintos
// en el mismo bucket, y ordenan lexicográficamente en orden cronológico:
//
//	daily   → "2024-03-15"
//	weekly  → "2024-W11"  (semana ISO 8601; el año es el año ISO de la semana)
//	monthly → "2024-03"
//	yearly  → "2024"
func BucketKey(p Period, t time.Time) string {
	switch p {
	case PeriodDaily:
		return t.Format("2006-01-02")
	case PeriodWeekly:
		year, week := t.ISOWeek()
		return fmt.Sprintf("%04d-W%02d", year, week)
	case PeriodMonthly:
		return t.Format("2006-01")
	case PeriodYearly:
		return t.Format("2006")
	}
	return ""
}
