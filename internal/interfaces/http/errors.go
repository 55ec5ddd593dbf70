package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Stock-api/internal/application/dto"
	"github.com/jhoicas/Stock-api/internal/domain"
	"github.com/jhoicas/Stock-api/pkg/logger"
)

// errorStatus código HTTP y código de respuesta por clase de error del dominio.
var errorStatus = map[error]struct {
	status int
	code   string
}{
	domain.ErrValidation:   {fiber.StatusBadRequest, "VALIDATION"},
	domain.ErrUnavailable:  {fiber.StatusBadRequest, "UNAVAILABLE"},
	domain.ErrNotFound:     {fiber.StatusNotFound, "NOT_FOUND"},
	domain.ErrForbidden:    {fiber.StatusForbidden, "FORBIDDEN"},
	domain.ErrConflict:     {fiber.StatusConflict, "CONFLICT"},
	domain.ErrUnauthorized: {fiber.StatusUnauthorized, "UNAUTHORIZED"},
}

// transferStatus en traslados una unidad no disponible es un 404: no hay unidad trasladable en origen.
var transferStatus = map[error]int{
	domain.ErrUnavailable: fiber.StatusNotFound,
}

// writeError traduce err al cuerpo dto.ErrorResponse. Los errores internos no exponen el detalle.
func writeError(c *fiber.Ctx, log *logger.Logger, err error) error {
	return writeErrorWith(c, log, err, nil)
}

// writeErrorWith como writeError, con el código HTTP de algunas clases sustituido por la operación.
func writeErrorWith(c *fiber.Ctx, log *logger.Logger, err error, status map[error]int) error {
	kind := domain.Kind(err)
	if m, ok := errorStatus[kind]; ok {
		if s, ok := status[kind]; ok {
			m.status = s
		}
		return c.Status(m.status).JSON(dto.ErrorResponse{Code: m.code, Message: err.Error()})
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: "HTTP", Message: fe.Message})
	}
	log.Error().Err(err).Str("path", c.Path()).Msg("error interno")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}

// ErrorHandler manejador de errores de Fiber (rutas inexistentes, panics recuperados).
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		return writeError(c, log, err)
	}
}
