package server

import (
	"errors"
	"log/slog"

	"devconnector/internal/middleware"
	"devconnector/internal/models"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper. Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

// callerID returns the authenticated user id stored by the auth middleware.
func callerID(c *fiber.Ctx) uint {
	id, _ := c.Locals("userID").(uint)
	return id
}

// parseID extracts a route parameter as a positive uint. A malformed or
// non-positive value renders with the given status and not-found message,
// the same shape an unknown id produces, so garbage ids never surface as
// server errors. On failure it returns errResponseWritten; callers should
// check: if err != nil { return nil }.
func parseID(c *fiber.Ctx, param string, status int, message string) (uint, error) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		_ = models.RespondWithError(c, status, models.NewNotFoundError(message))
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// handleServiceError maps an application error to its HTTP status and renders
// it. NotFound status varies per route family (404 for posts, 400 for
// profiles), so callers pass it in.
func (s *Server) handleServiceError(c *fiber.Ctx, err error, notFoundStatus int) error {
	status := fiber.StatusInternalServerError

	var appErr *models.AppError
	if errors.As(err, &appErr) {
		switch appErr.Code {
		case models.CodeValidation, models.CodeInvalidCredentials,
			models.CodeAlreadyLiked, models.CodeNotLiked:
			status = fiber.StatusBadRequest
		case models.CodeNotFound:
			status = notFoundStatus
		case models.CodeUnauthorized, models.CodeForbidden:
			status = fiber.StatusUnauthorized
		}
	}

	if status == fiber.StatusInternalServerError {
		middleware.Logger.ErrorContext(c.UserContext(), "request error",
			slog.String("error", err.Error()))
	}
	return models.RespondWithError(c, status, err)
}
