package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/inventory"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// UserHandler gestión de usuarios (solo Admin).
type UserHandler struct {
	svc *inventory.Service
}

// NewUserHandler construye el handler.
func NewUserHandler(svc *inventory.Service) *UserHandler {
	return &UserHandler{svc: svc}
}

// List godoc
// @Summary      Listar usuarios
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.UserResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	return c.JSON(dto.ToUserResponses(h.svc.ListUsers()))
}

// Create godoc
// @Summary      Crear usuario
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UserRequest  true  "username, role (Admin|User), password"
// @Success      201   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/users [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	in, err := parseUserInput(c)
	if err != nil {
		return writeError(c, err)
	}
	u, err := h.svc.CreateUser(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToUserResponse(u))
}

// Update godoc
// @Summary      Editar usuario
// @Description  Password vacío conserva la credencial actual.
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string           true  "ID"
// @Param        body  body  dto.UserRequest  true  "username, role, password opcional"
// @Success      200   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/users/{id} [put]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	in, err := parseUserInput(c)
	if err != nil {
		return writeError(c, err)
	}
	u, err := h.svc.UpdateUser(c.Context(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.ToUserResponse(u))
}

// Delete godoc
// @Summary      Eliminar usuario
// @Description  Un usuario no puede eliminarse a sí mismo (SELF_DELETION).
// @Tags         users
// @Security     Bearer
// @Param        id   path  string  true  "ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/users/{id} [delete]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	if err := h.svc.DeleteUser(c.Context(), c.Params("id"), GetUserID(c)); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// parseUserInput lee el cuerpo y valida el rol.
func parseUserInput(c *fiber.Ctx) (inventory.UserInput, error) {
	var in dto.UserRequest
	if err := c.BodyParser(&in); err != nil {
		return inventory.UserInput{}, domain.ErrInvalidInput
	}
	role, err := entity.ParseRole(in.Role)
	if err != nil {
		return inventory.UserInput{}, err
	}
	return inventory.UserInput{Username: in.Username, Role: role, Password: in.Password}, nil
}
