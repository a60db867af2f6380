package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Repuestos-api/internal/application/dto"
	"github.com/jhoicas/Repuestos-api/internal/application/inventory"
)

// StockInHandler maneja las entradas de stock.
type StockInHandler struct {
	uc *inventory.MovementUseCase
}

// NewStockInHandler construye el handler.
func NewStockInHandler(uc *inventory.MovementUseCase) *StockInHandler {
	return &StockInHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar entrada de stock
// @Description  Suma la cantidad a la existencia del repuesto.
// @Tags         stockin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateStockInRequest  true  "Entrada"
// @Success      201   {object}  dto.StockInResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stockin [post]
func (h *StockInHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateStockInRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.PostStockIn(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar entradas
// @Tags         stockin
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.StockInResponse
// @Router       /api/stockin [get]
func (h *StockInHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListStockIn(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener entrada por ID
// @Tags         stockin
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la entrada"
// @Success      200  {object}  dto.StockInResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stockin/{id} [get]
func (h *StockInHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetStockIn(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar entrada
// @Description  No reajusta la existencia del repuesto.
// @Tags         stockin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la entrada"
// @Param        body  body  dto.UpdateStockInRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.StockInResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stockin/{id} [put]
func (h *StockInHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateStockInRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.UpdateStockIn(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar entrada
// @Description  No reajusta la existencia del repuesto.
// @Tags         stockin
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la entrada"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stockin/{id} [delete]
func (h *StockInHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.DeleteStockIn(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "entrada eliminada"})
}
