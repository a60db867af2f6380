package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/Repuestos-api/internal/application/dto"
	"github.com/jhoicas/Repuestos-api/internal/domain"
)

// Códigos de error del cuerpo {"error", "code"}.
const (
	CodeValidation        = "VALIDATION"
	CodeDuplicate         = "DUPLICATE"
	CodeInsufficientStock = "INSUFFICIENT_STOCK"
	CodeUsernameTaken     = "USERNAME_TAKEN"
	CodeNotFound          = "NOT_FOUND"
	CodeUnauthorized      = "UNAUTHORIZED"
	CodeInvalidBody       = "INVALID_BODY"
	CodeInternal          = "INTERNAL"
)

// writeError traduce errores de dominio a status HTTP con dto.ErrorResponse.
func writeError(c *fiber.Ctx, err error) error {
	status, code := fiber.StatusInternalServerError, CodeInternal
	switch {
	case errors.Is(err, domain.ErrInsufficientStock):
		status, code = fiber.StatusBadRequest, CodeInsufficientStock
	case errors.Is(err, domain.ErrDuplicate):
		status, code = fiber.StatusBadRequest, CodeDuplicate
	case errors.Is(err, domain.ErrInvalidInput):
		status, code = fiber.StatusBadRequest, CodeValidation
	case errors.Is(err, domain.ErrUsernameTaken):
		status, code = fiber.StatusBadRequest, CodeUsernameTaken
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		status, code = fiber.StatusNotFound, CodeNotFound
	case errors.Is(err, domain.ErrUnauthorized):
		status, code = fiber.StatusUnauthorized, CodeUnauthorized
	}
	msg := err.Error()
	if status == fiber.StatusInternalServerError {
		log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("error no controlado")
		msg = "error interno del servidor"
	}
	return c.Status(status).JSON(dto.ErrorResponse{Error: msg, Code: code})
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido", Code: CodeInvalidBody})
}

// ErrorHandler responde los errores que llegan a Fiber (rutas inexistentes, panics recuperados)
// con el mismo formato que los handlers.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code := CodeInternal
		switch fe.Code {
		case fiber.StatusNotFound:
			code = CodeNotFound
		case fiber.StatusBadRequest, fiber.StatusUnprocessableEntity:
			code = CodeInvalidBody
		case fiber.StatusUnauthorized:
			code = CodeUnauthorized
		}
		return c.Status(fe.Code).JSON(dto.ErrorResponse{Error: fe.Message, Code: code})
	}
	return writeError(c, err)
}
