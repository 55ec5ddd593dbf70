package dto

import "time"

// MarkDefectiveRequest body para POST /api/garbage.
type MarkDefectiveRequest struct {
	UnitID   string `json:"unit_id"`
	ReasonID string `json:"reason_id"`
}

// UpdateGarbageReasonRequest body para PATCH /api/garbage/:id.
type UpdateGarbageReasonRequest struct {
	ReasonID string `json:"reason_id"`
}

// GarbageRecordResponse registro de defecto.
type GarbageRecordResponse struct {
	ID        string    `json:"id"`
	UnitID    string    `json:"unit_id"`
	ReasonID  string    `json:"reason_id"`
	Active    bool      `json:"active"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
