package entity

import "time"

// TransferStatusCompleted único estado observado: los traslados se aplican de forma síncrona.
const TransferStatusCompleted = "completed"

// StockTransfer evento de traslado entre tiendas (registro de auditoría).
type StockTransfer struct {
	ID          string
	FromShopID  string
	ToShopID    string
	Status      string
	Notes       string
	RequestedBy string
	CreatedAt   time.Time
	Items       []*StockTransferItem
}

// StockTransferItem unidad movida en un traslado.
type StockTransferItem struct {
	ID         string
	TransferID string
	UnitID     string
}
