package dto

import "time"

// CreateTransferRequest body para POST /api/transfers.
// Se indica la unidad por UnitID o por IMEI (buscado en la tienda de origen).
type CreateTransferRequest struct {
	UnitID     string `json:"unit_id,omitempty"`
	IMEI       string `json:"imei,omitempty"`
	FromShopID string `json:"from_shop_id"`
	ToShopID   string `json:"to_shop_id"`
	Notes      string `json:"notes,omitempty"`
}

// CreateTransferBatchRequest body para POST /api/transfers/batch. Todo o nada.
type CreateTransferBatchRequest struct {
	UnitIDs    []string `json:"unit_ids"`
	FromShopID string   `json:"from_shop_id"`
	ToShopID   string   `json:"to_shop_id"`
	Notes      string   `json:"notes,omitempty"`
}

// TransferResponse traslado registrado con la foto de las unidades movidas.
type TransferResponse struct {
	ID          string         `json:"id"`
	FromShopID  string         `json:"from_shop_id"`
	ToShopID    string         `json:"to_shop_id"`
	Status      string         `json:"status"`
	Notes       string         `json:"notes,omitempty"`
	RequestedBy string         `json:"requested_by"`
	CreatedAt   time.Time      `json:"created_at"`
	UnitIDs     []string       `json:"unit_ids"`
	Units       []UnitResponse `json:"units,omitempty"`
}
