package entity

import "time"

// GarbageRecord marca de defecto/baja sobre una unidad. Como máximo un registro activo por unidad.
type GarbageRecord struct {
	ID        string
	UnitID    string
	ReasonID  string
	Active    bool
	CreatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// GarbageReason motivo configurable de defecto (pantalla rota, no enciende, ...).
type GarbageReason struct {
	ID     string
	ShopID string
	Name   string
}
