package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Repuestos-api/internal/application/dto"
	"github.com/jhoicas/Repuestos-api/internal/application/usecase"
)

// SparePartHandler maneja las peticiones HTTP para repuestos.
type SparePartHandler struct {
	uc *usecase.SparePartUseCase
}

// NewSparePartHandler construye el handler.
func NewSparePartHandler(uc *usecase.SparePartUseCase) *SparePartHandler {
	return &SparePartHandler{uc: uc}
}

// Create godoc
// @Summary      Crear repuesto
// @Tags         spareparts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSparePartRequest  true  "Datos del repuesto"
// @Success      201   {object}  dto.SparePartResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/spareparts [post]
func (h *SparePartHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSparePartRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar repuestos
// @Tags         spareparts
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.SparePartResponse
// @Router       /api/spareparts [get]
func (h *SparePartHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener repuesto por ID
// @Tags         spareparts
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del repuesto"
// @Success      200  {object}  dto.SparePartResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/spareparts/{id} [get]
func (h *SparePartHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar repuesto (parcial)
// @Tags         spareparts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del repuesto"
// @Param        body  body  dto.UpdateSparePartRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.SparePartResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/spareparts/{id} [put]
func (h *SparePartHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSparePartRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar repuesto
// @Description  No elimina los movimientos que lo referencian.
// @Tags         spareparts
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del repuesto"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/spareparts/{id} [delete]
func (h *SparePartHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "repuesto eliminado"})
}
