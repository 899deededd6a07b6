// Package response defines the unified JSON envelope and helpers for
// writing it.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Response is the unified API response structure. Every endpoint, success or
// failure, answers with this shape; redirectTo is present only on a
// successful login.
type Response struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	RedirectTo string `json:"redirectTo,omitempty"`
}

// Success writes a successful response.
func Success(c echo.Context, statusCode int, message string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, Response{
		Success: true,
		Message: message,
	})
}

// Redirect writes a successful login response carrying the routing target.
func Redirect(c echo.Context, message, redirectTo string) error {
	return c.JSON(http.StatusOK, Response{
		Success:    true,
		Message:    message,
		RedirectTo: redirectTo,
	})
}

// Error writes an error response.
func Error(c echo.Context, statusCode int, message string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, Response{
		Success: false,
		Message: message,
	})
}
