package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/directorio-api/internal/application/dto"
	"github.com/jhoicas/directorio-api/internal/domain"
)

// writeError traduce errores de dominio a respuestas HTTP. Los errores no
// reconocidos se registran y se devuelven como 500 sin detalle interno.
func writeError(c *fiber.Ctx, log zerolog.Logger, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: dto.CodeNotFound, Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: dto.CodeValidation, Message: err.Error()})
	}
	log.Error().Err(err).
		Str("request_id", RequestID(c)).
		Str("path", c.Path()).
		Msg("error procesando petición")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: dto.CodeInternal, Message: "error interno"})
}

func notFound(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: dto.CodeNotFound, Message: msg})
}

// ErrorHandler manejador de errores de Fiber (rutas inexistentes, panics recuperados, etc.).
func ErrorHandler(log zerolog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code := dto.CodeInternal
			switch fe.Code {
			case fiber.StatusNotFound:
				code = dto.CodeNotFound
			case fiber.StatusBadRequest, fiber.StatusUnprocessableEntity:
				code = dto.CodeValidation
			}
			return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: code, Message: fe.Message})
		}
		return writeError(c, log, err)
	}
}
