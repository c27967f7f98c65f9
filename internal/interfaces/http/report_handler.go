package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/inventory"
	"github.com/jhoicas/Almacen-api/internal/application/report"
)

// ReportHandler descarga de reportes de inventario y movimientos (protegido).
type ReportHandler struct {
	svc     *inventory.Service
	builder *report.Builder
}

// NewReportHandler construye el handler.
func NewReportHandler(svc *inventory.Service, builder *report.Builder) *ReportHandler {
	return &ReportHandler{svc: svc, builder: builder}
}

// Inventory godoc
// @Summary      Reporte de inventario
// @Description  Artículo, categoría, cantidad y descripción. Formato xls (Excel XML) o pdf.
// @Tags         reports
// @Security     Bearer
// @Produce      application/vnd.ms-excel
// @Produce      application/pdf
// @Param        format  query  string  false  "xls (por defecto) o pdf"
// @Success      200
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/inventory [get]
func (h *ReportHandler) Inventory(c *fiber.Ctx) error {
	f, err := report.ParseFormat(c.Query("format"))
	if err != nil {
		return writeError(c, err)
	}
	file, err := h.builder.Inventory(c.Context(), h.svc.Snapshot(), f)
	if err != nil {
		return writeError(c, err)
	}
	return sendFile(c, file)
}

// Movements godoc
// @Summary      Reporte de movimientos
// @Description  Fecha, artículo, categoría, tipo, cantidad, proveedor, motivo y notas; referencias perdidas se muestran como N/A.
// @Tags         reports
// @Security     Bearer
// @Produce      application/vnd.ms-excel
// @Produce      application/pdf
// @Param        format  query  string  false  "xls (por defecto) o pdf"
// @Success      200
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/movements [get]
func (h *ReportHandler) Movements(c *fiber.Ctx) error {
	f, err := report.ParseFormat(c.Query("format"))
	if err != nil {
		return writeError(c, err)
	}
	file, err := h.builder.Movements(c.Context(), h.svc.Snapshot(), f)
	if err != nil {
		return writeError(c, err)
	}
	return sendFile(c, file)
}

func sendFile(c *fiber.Ctx, file *report.File) error {
	// Attachment deduce el tipo por extensión; se fija después para respetar el del renderer.
	c.Attachment(file.Name)
	c.Set(fiber.HeaderContentType, file.ContentType)
	return c.Send(file.Data)
}
