package http

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"github.com/jhoicas/Marketplace-api/internal/application/dto"
	"github.com/jhoicas/Marketplace-api/internal/domain"
	"github.com/jhoicas/Marketplace-api/pkg/logger"
)

type errorMapping struct {
	target  error
	status  int
	code    string
	message string // vacío: se usa err.Error()
}

// El orden importa: ErrMissingActor envuelve a ErrUserNotFound en la carga masiva.
var errorMappings = []errorMapping{
	{domain.ErrMissingActor, fiber.StatusBadRequest, "MISSING_USER", ""},
	{domain.ErrUnsupportedFile, fiber.StatusBadRequest, "UNSUPPORTED_FILE", ""},
	{domain.ErrParse, fiber.StatusBadRequest, "PARSE_ERROR", ""},
	{domain.ErrInvalidInput, fiber.StatusBadRequest, "VALIDATION", ""},
	{domain.ErrInvalidOTP, fiber.StatusBadRequest, "INVALID_OTP", ""},
	{domain.ErrUnauthorized, fiber.StatusUnauthorized, "UNAUTHORIZED", "credenciales inválidas"},
	{domain.ErrForbidden, fiber.StatusForbidden, "FORBIDDEN", "acceso denegado al recurso"},
	{domain.ErrUserNotFound, fiber.StatusNotFound, "USER_NOT_FOUND", "usuario no encontrado"},
	{domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND", "recurso no encontrado"},
	{domain.ErrEmailAlreadyExists, fiber.StatusConflict, "EMAIL_EXISTS", ""},
	{domain.ErrDuplicate, fiber.StatusConflict, "DUPLICATE", ""},
	{domain.ErrConflict, fiber.StatusConflict, "CONFLICT", ""},
	{domain.ErrTooManyUploads, fiber.StatusTooManyRequests, "TOO_MANY_UPLOADS", ""},
}

// NewErrorHandler traduce los errores devueltos por los handlers a dto.ErrorResponse.
// Los errores no mapeados responden 500 con mensaje genérico y se registran completos.
func NewErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		for _, m := range errorMappings {
			if errors.Is(err, m.target) {
				msg := m.message
				if msg == "" {
					msg = err.Error()
				}
				log.Debug().Err(err).Str("path", c.Path()).Int("status", m.status).Msg("error de cliente")
				return c.Status(m.status).JSON(dto.ErrorResponse{Code: m.code, Message: msg})
			}
		}

		var fe *fiber.Error
		if errors.As(err, &fe) {
			code := strings.ToUpper(strings.ReplaceAll(fiberStatusText(fe.Code), " ", "_"))
			return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: code, Message: fe.Message})
		}

		log.Error().Err(err).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Msg("error interno")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno del servidor"})
	}
}

func fiberStatusText(code int) string {
	if s := utils.StatusMessage(code); s != "" {
		return s
	}
	return fmt.Sprintf("HTTP %d", code)
}

// badRequest error de entrada detectado en el handler (cuerpo, parámetros).
func badRequest(format string, args ...any) error {
	return fmt.Errorf("%w: %s", domain.ErrInvalidInput, fmt.Sprintf(format, args...))
}
