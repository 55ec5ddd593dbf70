// Package stock contiene las reglas puras del ciclo de vida de una unidad:
// la máquina de estados y la normalización de identificadores físicos.
package stock

import (
	"fmt"

	"github.com/jhoicas/Stock-api/internal/domain"
	"github.com/jhoicas/Stock-api/internal/domain/entity"
)

// Operation flujo que solicita la transición. Cada transición solo la puede pedir un flujo.
type Operation string

const (
	OpSale          Operation = "sale"
	OpTransfer      Operation = "transfer"
	OpMarkDefective Operation = "mark_defective"
	OpClearDefect   Operation = "clear_defective"
)

// allowed aristas de la máquina. in_stock → in_stock (traslado) cambia la tienda, no el estado.
func allowed(op Operation, from, to entity.UnitStatus) bool {
	switch op {
	case OpSale:
		return from == entity.UnitStatusInStock && to == entity.UnitStatusSold
	case OpMarkDefective:
		return from == entity.UnitStatusInStock && to == entity.UnitStatusDefective
	case OpClearDefect:
		return from == entity.UnitStatusDefective && to == entity.UnitStatusInStock
	case OpTransfer:
		return from == entity.UnitStatusInStock && to == entity.UnitStatusInStock
	}
	return false
}

// CheckTransition valida que op pueda llevar una unidad de from a to.
// Devuelve ErrUnavailable cuando la unidad existe pero no está en el estado requerido
// (vendida, defectuosa) y ErrValidation si la combinación no existe en la máquina.
func CheckTransition(op Operation, from, to entity.UnitStatus) error {
	if !from.Valid() || !to.Valid() {
		return fmt.Errorf("%w: estado desconocido %q → %q", domain.ErrValidation, from, to)
	}
	if allowed(op, from, to) {
		return nil
	}
	if RequiredFrom(op) != from {
		return fmt.Errorf("%w: unidad en estado %s, %s requiere %s", domain.ErrUnavailable, from, op, RequiredFrom(op))
	}
	return fmt.Errorf("%w: transición %s → %s no permitida para %s", domain.ErrValidation, from, to, op)
}

// RequiredFrom estado de origen que exige cada operación.
func RequiredFrom(op Operation) entity.UnitStatus {
	if op == OpClearDefect {
		return entity.UnitStatusDefective
	}
	return entity.UnitStatusInStock
}

// Target estado destino de cada operación.
func Target(op Operation) entity.UnitStatus {
	switch op {
	case OpSale:
		return entity.UnitStatusSold
	case OpMarkDefective:
		return entity.UnitStatusDefective
	default:
		return entity.UnitStatusInStock
	}
}

// CheckUnit valida una unidad concreta para op: activa, no vendida, sin línea de venta
// y en el estado de origen que la operación exige.
func CheckUnit(op Operation, u *entity.StockUnit) error {
	if u == nil || !u.Active {
		return domain.ErrNotFound
	}
	if u.Sold || u.SaleItemID != nil || u.Status == entity.UnitStatusSold {
		return fmt.Errorf("%w: unidad %s ya vendida", domain.ErrUnavailable, u.ID)
	}
	return CheckTransition(op, u.Status, Target(op))
}
