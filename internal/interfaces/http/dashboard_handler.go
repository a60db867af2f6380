package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Repuestos-api/internal/application/inventory"
)

// DashboardHandler expone el historial de movimientos y el resumen del inventario.
type DashboardHandler struct {
	uc            *inventory.MovementUseCase
	replenishment *inventory.ReplenishmentUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *inventory.MovementUseCase, replenishment *inventory.ReplenishmentUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc, replenishment: replenishment}
}

// History godoc
// @Summary      Historial de movimientos
// @Description  Entradas y salidas unificadas, la más reciente primero. limit <= 0 devuelve todo.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "Máximo de entradas"
// @Success      200  {object}  dto.MovementHistoryResponse
// @Router       /api/dashboard/history [get]
func (h *DashboardHandler) History(c *fiber.Ctx) error {
	out, err := h.uc.History(c.UserContext(), c.QueryInt("limit", 0))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Summary godoc
// @Summary      Resumen del inventario
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Replenishment godoc
// @Summary      Lista de reposición
// @Description  Repuestos con existencia en o bajo el umbral, priorizados por salidas de los últimos 90 días.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        threshold  query  int  false  "Umbral de existencia (por defecto 5)"
// @Success      200  {array}  dto.ReplenishmentSuggestionDTO
// @Router       /api/dashboard/replenishment [get]
func (h *DashboardHandler) Replenishment(c *fiber.Ctx) error {
	out, err := h.replenishment.GenerateReplenishmentList(c.UserContext(), c.QueryInt("threshold", 0))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
