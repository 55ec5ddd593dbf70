package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Taxonomía del motor de stock: cada error devuelto por un caso de uso envuelve
// exactamente uno de estos centinelas; la capa HTTP los traduce a códigos de estado.
var (
	ErrValidation  = errors.New("entrada inválida")
	ErrNotFound    = errors.New("recurso no encontrado")
	ErrConflict    = errors.New("conflicto con el estado actual")
	ErrUnavailable = errors.New("recurso no disponible para esta operación")
	ErrForbidden   = errors.New("acceso denegado")
	ErrInternal    = errors.New("error interno")

	// Alias conservados de la API previa.
	ErrInvalidInput = ErrValidation
	ErrDuplicate    = ErrConflict
	ErrUnauthorized = errors.New("no autorizado")
)

// Kind devuelve el centinela de la taxonomía al que pertenece err.
// Cualquier error fuera de la taxonomía (fallo de BD, commit, etc.) es ErrInternal.
func Kind(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrValidation):
		return ErrValidation
	case errors.Is(err, ErrNotFound):
		return ErrNotFound
	case errors.Is(err, ErrConflict):
		return ErrConflict
	case errors.Is(err, ErrUnavailable):
		return ErrUnavailable
	case errors.Is(err, ErrForbidden):
		return ErrForbidden
	case errors.Is(err, ErrUnauthorized):
		return ErrUnauthorized
	default:
		return ErrInternal
	}
}

// KindName nombre corto y estable del tipo de error (etiquetas de métricas, códigos HTTP).
func KindName(err error) string {
	switch Kind(err) {
	case nil:
		return ""
	case ErrValidation:
		return "validation"
	case ErrNotFound:
		return "not_found"
	case ErrConflict:
		return "conflict"
	case ErrUnavailable:
		return "unavailable"
	case ErrForbidden:
		return "forbidden"
	case ErrUnauthorized:
		return "unauthorized"
	default:
		return "internal"
	}
}
