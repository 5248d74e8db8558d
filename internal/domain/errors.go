package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Los casos de uso los envuelven con el ID ofensivo, ej:
// fmt.Errorf("track %d: %w", id, domain.ErrTrackNotFound).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")

	// Errores de la transacción de creación de facturas.
	ErrEmptyOrder       = errors.New("la orden debe incluir al menos un item")
	ErrInvalidQuantity  = errors.New("la cantidad debe ser mayor a 0")
	ErrCustomerNotFound = errors.New("cliente no encontrado")
	ErrEmployeeNotFound = errors.New("empleado no encontrado")
	ErrTrackNotFound    = errors.New("track no encontrado")
	ErrPersistence      = errors.New("fallo de persistencia")
)
