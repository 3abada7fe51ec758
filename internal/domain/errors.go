package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrInvalidPeriod     = errors.New("período inválido: usar daily, weekly, monthly o yearly")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrTotalMismatch     = errors.New("total de la venta no coincide con la suma de sus líneas")
	ErrCategoryCycle     = errors.New("la jerarquía de categorías no puede formar ciclos")
)
