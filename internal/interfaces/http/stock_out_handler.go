package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Repuestos-api/internal/application/dto"
	"github.com/jhoicas/Repuestos-api/internal/application/inventory"
)

// StockOutHandler maneja las salidas de stock.
type StockOutHandler struct {
	uc *inventory.MovementUseCase
}

// NewStockOutHandler construye el handler.
func NewStockOutHandler(uc *inventory.MovementUseCase) *StockOutHandler {
	return &StockOutHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar salida de stock
// @Description  Descuenta la cantidad de la existencia; 400 INSUFFICIENT_STOCK si no alcanza.
// @Tags         stockout
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateStockOutRequest  true  "Salida"
// @Success      201   {object}  dto.StockOutResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stockout [post]
func (h *StockOutHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateStockOutRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.PostStockOut(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar salidas
// @Tags         stockout
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.StockOutResponse
// @Router       /api/stockout [get]
func (h *StockOutHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListStockOut(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener salida por ID
// @Tags         stockout
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la salida"
// @Success      200  {object}  dto.StockOutResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stockout/{id} [get]
func (h *StockOutHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetStockOut(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar salida
// @Description  Recalcula total_value; no reajusta la existencia del repuesto.
// @Tags         stockout
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la salida"
// @Param        body  body  dto.UpdateStockOutRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.StockOutResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stockout/{id} [put]
func (h *StockOutHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateStockOutRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.UpdateStockOut(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar salida
// @Tags         stockout
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la salida"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stockout/{id} [delete]
func (h *StockOutHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.DeleteStockOut(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "salida eliminada"})
}
