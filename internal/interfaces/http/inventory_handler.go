package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/inventory"
)

// InventoryHandler consultas de stock derivado del libro de movimientos (protegido).
type InventoryHandler struct {
	svc *inventory.Service
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(svc *inventory.Service) *InventoryHandler {
	return &InventoryHandler{svc: svc}
}

// List godoc
// @Summary      Inventario actual
// @Description  Una fila por artículo con su categoría y cantidad; categoría inexistente se informa como "Unknown Category".
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.InventoryItemResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/inventory [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	return c.JSON(dto.ToInventoryResponses(h.svc.Inventory()))
}

// Available godoc
// @Summary      Artículos disponibles para salida
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.AvailableItemResponse
// @Router       /api/inventory/available [get]
func (h *InventoryHandler) Available(c *fiber.Ctx) error {
	return c.JSON(dto.ToAvailableResponses(h.svc.AvailableForStockOut()))
}

// Stock godoc
// @Summary      Stock actual de un artículo
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        itemId  path  string  true  "ID del artículo"
// @Success      200  {object}  dto.StockResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/{itemId}/stock [get]
func (h *InventoryHandler) Stock(c *fiber.Ctx) error {
	id := c.Params("itemId")
	qty, err := h.svc.CurrentStock(id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.StockResponse{ItemID: id, CurrentStock: qty})
}

// History godoc
// @Summary      Kardex de un artículo
// @Description  Movimientos en orden cronológico con el saldo acumulado.
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        itemId  path  string  true  "ID del artículo"
// @Success      200  {array}   dto.HistoryEntryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/{itemId}/history [get]
func (h *InventoryHandler) History(c *fiber.Ctx) error {
	entries, err := h.svc.ItemHistory(c.Params("itemId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.ToHistoryResponses(entries))
}
