package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrItemNotFound     = errors.New("artículo no encontrado")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrInvalidDateRange = errors.New("rango de fechas inválido")
	ErrUnauthorized     = errors.New("no autorizado")
	ErrForbidden        = errors.New("acceso denegado")
	ErrNoReceiveHistory = errors.New("sin historial de recepciones para predecir")
)
