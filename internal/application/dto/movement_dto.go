package dto

import (
	"time"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// StockInRequest entrada para registrar una entrada de stock.
// Date acepta RFC3339 o YYYY-MM-DD; vacío usa la hora actual.
type StockInRequest struct {
	ItemID   string `json:"item_id"`
	Quantity int64  `json:"quantity"`
	Date     string `json:"date"`
	Supplier string `json:"supplier"`
	Notes    string `json:"notes"`
}

// StockOutRequest entrada para registrar una salida de stock.
type StockOutRequest struct {
	ItemID   string `json:"item_id"`
	Quantity int64  `json:"quantity"`
	Date     string `json:"date"`
	Reason   string `json:"reason"`
	Notes    string `json:"notes"`
}

// NewItemStockInRequest crea un artículo (y opcionalmente su categoría) y registra su primera entrada.
// Si NewCategoryName no está vacío se ignora CategoryID.
type NewItemStockInRequest struct {
	Name            string `json:"name"`
	CategoryID      string `json:"category_id"`
	NewCategoryName string `json:"new_category_name"`
	Description     string `json:"description"`
	Quantity        int64  `json:"quantity"`
	Date            string `json:"date"`
	Supplier        string `json:"supplier"`
	Notes           string `json:"notes"`
}

// MovementResponse salida de un movimiento del libro.
type MovementResponse struct {
	ID        string    `json:"id"`
	ItemID    string    `json:"item_id"`
	Type      string    `json:"type"`
	Quantity  int64     `json:"quantity"`
	Date      time.Time `json:"date"`
	Supplier  string    `json:"supplier,omitempty"`
	Reason    string    `json:"reason,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedBy string    `json:"created_by,omitempty"`
}

// HistoryEntryResponse movimiento con el saldo acumulado del artículo tras aplicarlo.
type HistoryEntryResponse struct {
	MovementResponse
	Balance int64 `json:"balance"`
}

// ReceiveResponse resultado de la entrada de un artículo nuevo.
type ReceiveResponse struct {
	Category *CategoryResponse `json:"category,omitempty"`
	Item     ItemResponse      `json:"item"`
	Movement MovementResponse  `json:"movement"`
}

func ToMovementResponse(m entity.StockMovement) MovementResponse {
	return MovementResponse{
		ID:        m.ID,
		ItemID:    m.ItemID,
		Type:      string(m.Type),
		Quantity:  m.Quantity,
		Date:      m.Date,
		Supplier:  m.Supplier,
		Reason:    m.Reason,
		Notes:     m.Notes,
		CreatedBy: m.CreatedBy,
	}
}

func ToMovementResponses(ms []entity.StockMovement) []MovementResponse {
	out := make([]MovementResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToMovementResponse(m))
	}
	return out
}

func ToHistoryResponses(entries []entity.BalanceEntry) []HistoryEntryResponse {
	out := make([]HistoryEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, HistoryEntryResponse{MovementResponse: ToMovementResponse(e.Movement), Balance: e.Balance})
	}
	return out
}
