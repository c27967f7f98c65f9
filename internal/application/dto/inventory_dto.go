package dto

import (
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/ledger"
)

// InventoryItemResponse fila del inventario derivado.
type InventoryItemResponse struct {
	ItemID       string `json:"item_id"`
	ItemName     string `json:"item_name"`
	Description  string `json:"description,omitempty"`
	CategoryID   string `json:"category_id"`
	CategoryName string `json:"category_name"`
	Quantity     int64  `json:"quantity"`
}

// StockResponse stock actual de un artículo.
type StockResponse struct {
	ItemID       string `json:"item_id"`
	CurrentStock int64  `json:"current_stock"`
}

// AvailableItemResponse artículo con stock disponible para una salida.
type AvailableItemResponse struct {
	ItemID    string `json:"item_id"`
	ItemName  string `json:"item_name"`
	Available int64  `json:"available"`
}

// DashboardResponse resumen del tablero principal.
type DashboardResponse struct {
	TotalItems    int                     `json:"total_items"`
	TotalQuantity int64                   `json:"total_quantity"`
	RecentIn      []MovementResponse      `json:"recent_in"`
	RecentOut     []MovementResponse      `json:"recent_out"`
	Inventory     []InventoryItemResponse `json:"inventory"`
}

func ToInventoryResponses(inv []entity.InventoryItem) []InventoryItemResponse {
	out := make([]InventoryItemResponse, 0, len(inv))
	for _, r := range inv {
		out = append(out, InventoryItemResponse{
			ItemID:       r.Item.ID,
			ItemName:     r.Item.Name,
			Description:  r.Item.Description,
			CategoryID:   r.Category.ID,
			CategoryName: r.Category.Name,
			Quantity:     r.Quantity,
		})
	}
	return out
}

func ToAvailableResponses(items []entity.ItemWithStock) []AvailableItemResponse {
	out := make([]AvailableItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, AvailableItemResponse{ItemID: it.Item.ID, ItemName: it.Item.Name, Available: it.CurrentStock})
	}
	return out
}

func ToDashboardResponse(d ledger.Dashboard) DashboardResponse {
	return DashboardResponse{
		TotalItems:    d.TotalItems,
		TotalQuantity: d.TotalQuantity,
		RecentIn:      ToMovementResponses(d.RecentIn),
		RecentOut:     ToMovementResponses(d.RecentOut),
		Inventory:     ToInventoryResponses(d.Inventory),
	}
}
