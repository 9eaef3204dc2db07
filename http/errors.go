package http

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	evaluator "github.com/Norikachi123/Container-Evaluator"
)

// errorStatusCode maps domain error codes to HTTP status codes.
func errorStatusCode(code string) int {
	switch code {
	case evaluator.ENOTFOUND:
		return http.StatusNotFound
	case evaluator.EINVALID:
		return http.StatusBadRequest
	case evaluator.EUNAUTHORIZED:
		return http.StatusUnauthorized
	case evaluator.EFORBIDDEN:
		return http.StatusForbidden
	case evaluator.ECONFLICT:
		return http.StatusConflict
	case evaluator.EPRECONDITION:
		return http.StatusPreconditionFailed
	default:
		return http.StatusInternalServerError
	}
}

// ErrorResponse represents the JSON error response format.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// HandleError converts domain errors to appropriate HTTP responses.
// It logs internal errors and returns user-safe messages.
func HandleError(c echo.Context, logger *slog.Logger, err error) error {
	code := evaluator.ErrorCode(err)
	message := evaluator.ErrorMessage(err)
	status := errorStatusCode(code)

	// Log internal errors with full details
	if code == evaluator.EINTERNAL {
		logger.Error("internal error",
			slog.String("error", err.Error()),
			slog.String("path", c.Path()),
			slog.String("method", c.Request().Method),
		)
		// Don't expose internal error details to clients
		message = "An internal error occurred."
	}

	return c.JSON(status, ErrorResponse{
		Error:   code,
		Message: message,
	})
}
