package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
)

type errorMapping struct {
	status  int
	message string
}

// errorStatus traduce cada clase de error de dominio a estado HTTP y mensaje para el usuario.
var errorStatus = map[domain.Kind]errorMapping{
	domain.KindNotFound:              {fiber.StatusNotFound, "recurso no encontrado"},
	domain.KindDuplicateID:           {fiber.StatusConflict, "ya existe un registro con ese id"},
	domain.KindDuplicateUsername:     {fiber.StatusConflict, "el nombre de usuario ya está en uso"},
	domain.KindUnknownCategory:       {fiber.StatusUnprocessableEntity, "la categoría no existe"},
	domain.KindUnknownItem:           {fiber.StatusUnprocessableEntity, "el artículo no existe"},
	domain.KindReferencedByItems:     {fiber.StatusConflict, "la categoría tiene artículos asociados"},
	domain.KindReferencedByMovements: {fiber.StatusConflict, "el artículo tiene movimientos registrados"},
	domain.KindSelfDeletion:          {fiber.StatusConflict, "no puede eliminar su propio usuario"},
	domain.KindInsufficientStock:     {fiber.StatusConflict, "stock insuficiente"},
	domain.KindInvalidQuantity:       {fiber.StatusBadRequest, "la cantidad debe ser mayor que cero y no exceder el máximo admitido"},
	domain.KindEmptyName:             {fiber.StatusBadRequest, "el nombre es obligatorio"},
	domain.KindInvalidInput:          {fiber.StatusBadRequest, "datos inválidos"},
	domain.KindUnauthorized:          {fiber.StatusUnauthorized, "credenciales inválidas"},
	domain.KindForbidden:             {fiber.StatusForbidden, "acceso denegado al recurso"},
}

// writeError responde con el error de dominio mapeado; cualquier otro error es 500.
func writeError(c *fiber.Ctx, err error) error {
	kind := domain.KindOf(err)
	m, ok := errorStatus[kind]
	if !ok {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(m.status).JSON(dto.ErrorResponse{
		Code:    string(kind),
		Message: m.message,
		Refs:    domain.RefsOf(err),
	})
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}
