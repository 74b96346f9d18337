package serverutils

import (
	"gps-tracking-be/internal/pkg/apperror"
	"gps-tracking-be/internal/pkg/logger"

	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware turns errors returned by handlers into a BaseResponse
// with the status of their kind. Server-side failures are logged, not echoed.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
		}

		status := apperror.HTTPStatus(err)
		if status >= fiber.StatusInternalServerError && log != nil {
			log.Error("HTTP", "Request failed", map[string]interface{}{
				"method": ctx.Method(),
				"path":   ctx.Path(),
				"error":  err.Error(),
			})
		}
		return ctx.Status(status).JSON(ErrorResponse(status, apperror.Message(err)))
	}
}
