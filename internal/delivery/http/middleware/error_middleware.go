package middleware

import (
	"log/slog"
	"net/http"

	deliverycontext "cliniweb/internal/delivery/context"
	"cliniweb/internal/delivery/http/response"
	domainerrors "cliniweb/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware is the single point where errors become HTTP responses.
// Typed AppError values map to their status and user message; anything else
// is logged with full detail and answered with a generic 500. No driver
// error text or stack trace ever reaches the client.
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	// Typed application errors carry their own status and client message.
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logError(err, c)
		}
		_ = response.Error(c, appErr.HTTPCode(), appErr.Message())

		return
	}

	// Echo's own HTTP errors (404s, method not allowed, malformed bodies).
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message, ok := httpErr.Message.(string)
		if !ok {
			message = http.StatusText(httpErr.Code)
		}
		_ = response.Error(c, httpErr.Code, message)

		return
	}

	// Everything else is an internal fault: log detail, answer generically.
	m.logError(err, c)
	_ = response.Error(c, http.StatusInternalServerError, domainerrors.ErrInternalError.Message())
}

func (m *ErrorMiddleware) logError(err error, c echo.Context) {
	m.logger.Error("Unhandled error",
		slog.String("request_id", deliverycontext.GetRequestID(c)),
		slog.String("error", err.Error()),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)
}
