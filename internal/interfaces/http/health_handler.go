package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// PingFunc verifica la conexión con el almacenamiento.
type PingFunc func(ctx context.Context) error

// HealthHandler responde GET /health.
type HealthHandler struct {
	service string
	driver  string
	ping    PingFunc
}

// NewHealthHandler construye el handler; ping puede ser nil.
func NewHealthHandler(service, driver string, ping PingFunc) *HealthHandler {
	return &HealthHandler{service: service, driver: driver, ping: ping}
}

// Check godoc
// @Summary      Estado del servicio
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /health [get]
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	body := fiber.Map{"status": "ok", "service": h.service, "driver": h.driver}
	if h.ping != nil {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := h.ping(ctx); err != nil {
			body["status"] = "unavailable"
			body["error"] = err.Error()
			return c.Status(fiber.StatusServiceUnavailable).JSON(body)
		}
	}
	return c.JSON(body)
}
