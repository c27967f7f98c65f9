package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/inventory"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// MovementHandler registro y consulta de movimientos de stock (protegido).
type MovementHandler struct {
	svc *inventory.Service
}

// NewMovementHandler construye el handler.
func NewMovementHandler(svc *inventory.Service) *MovementHandler {
	return &MovementHandler{svc: svc}
}

// List godoc
// @Summary      Movimientos recientes
// @Description  Ordenados por fecha descendente; los empates conservan el orden de registro.
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        type   query  string  false  "IN u OUT; vacío = todos"
// @Param        limit  query  int     false  "Máximo de filas; 0 = todas"
// @Success      200  {array}   dto.MovementResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	var typ entity.MovementType
	if raw := c.Query("type"); raw != "" {
		t, err := entity.ParseMovementType(raw)
		if err != nil {
			return writeError(c, err)
		}
		typ = t
	}
	limit := c.QueryInt("limit", 0)
	return c.JSON(dto.ToMovementResponses(h.svc.RecentMovements(typ, limit)))
}

// StockIn godoc
// @Summary      Registrar entrada de stock
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StockInRequest  true  "item_id, quantity, date, supplier, notes"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/movements/in [post]
func (h *MovementHandler) StockIn(c *fiber.Ctx) error {
	var in dto.StockInRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	date, err := dto.ParseDate(in.Date)
	if err != nil {
		return writeError(c, err)
	}
	m, err := h.svc.RecordStockIn(c.Context(), inventory.StockInInput{
		ItemID:    in.ItemID,
		Quantity:  in.Quantity,
		Date:      date,
		Supplier:  in.Supplier,
		Notes:     in.Notes,
		CreatedBy: GetUserID(c),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToMovementResponse(m))
}

// StockOut godoc
// @Summary      Registrar salida de stock
// @Description  Falla con INSUFFICIENT_STOCK si la cantidad supera el stock actual.
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StockOutRequest  true  "item_id, quantity, date, reason, notes"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/movements/out [post]
func (h *MovementHandler) StockOut(c *fiber.Ctx) error {
	var in dto.StockOutRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	date, err := dto.ParseDate(in.Date)
	if err != nil {
		return writeError(c, err)
	}
	m, err := h.svc.RecordStockOut(c.Context(), inventory.StockOutInput{
		ItemID:    in.ItemID,
		Quantity:  in.Quantity,
		Date:      date,
		Reason:    in.Reason,
		Notes:     in.Notes,
		CreatedBy: GetUserID(c),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToMovementResponse(m))
}

// NewItemStockIn godoc
// @Summary      Entrada de un artículo nuevo
// @Description  Crea el artículo (y la categoría si se indica new_category_name) y registra su primera entrada en un solo paso.
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.NewItemStockInRequest  true  "artículo y entrada"
// @Success      201   {object}  dto.ReceiveResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/movements/in/new-item [post]
func (h *MovementHandler) NewItemStockIn(c *fiber.Ctx) error {
	var in dto.NewItemStockInRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	date, err := dto.ParseDate(in.Date)
	if err != nil {
		return writeError(c, err)
	}
	res, err := h.svc.ReceiveNewItem(c.Context(), inventory.NewItemStockInInput{
		Item: inventory.ItemInput{
			Name:        in.Name,
			CategoryID:  in.CategoryID,
			Description: in.Description,
		},
		NewCategoryName: in.NewCategoryName,
		Quantity:        in.Quantity,
		Date:            date,
		Supplier:        in.Supplier,
		Notes:           in.Notes,
		CreatedBy:       GetUserID(c),
	})
	if err != nil {
		return writeError(c, err)
	}
	out := dto.ReceiveResponse{
		Item:     dto.ToItemResponse(res.Item),
		Movement: dto.ToMovementResponse(res.Movement),
	}
	if res.Category != nil {
		cat := dto.ToCategoryResponse(*res.Category)
		out.Category = &cat
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
