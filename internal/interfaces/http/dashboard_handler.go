package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/inventory"
)

// DashboardHandler expone el resumen del tablero principal.
type DashboardHandler struct {
	svc *inventory.Service
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(svc *inventory.Service) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// GetSummary godoc
// @Summary      Resumen del almacén
// @Description  Total de artículos, stock total, últimas 5 entradas y salidas e inventario ordenado por nombre.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	return c.JSON(dto.ToDashboardResponse(h.svc.Dashboard()))
}
