// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"cliniweb/internal/delivery/http/response"
	domainerrors "cliniweb/internal/domain/errors"
	"cliniweb/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	registeredMessage   = "User registered successfully."
	loginSuccessMessage = "Login successful."
	healthyMessage      = "Service is healthy."
)

// AuthHandler holds dependencies for the credential endpoints.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

// Register handles the registration request. A malformed body or a missing
// field becomes the same 400 the usecase produces, before any store access.
func (h *AuthHandler) Register(c echo.Context) error {
	var input usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrMissingFields.WrapMessage("invalid registration payload")
	}
	if err := c.Validate(&input); err != nil {
		return domainerrors.ErrMissingFields.WrapMessage("incomplete registration payload")
	}

	if err := h.uc.Register(c.Request().Context(), &input); err != nil {
		return errors.WithStack(err)
	}

	// No sensitive data is echoed back.
	return response.Success(c, http.StatusCreated, registeredMessage)
}

// Login handles the login request and returns the role's routing target.
func (h *AuthHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrMissingFields.WrapMessage("invalid login payload")
	}
	if err := c.Validate(&input); err != nil {
		return domainerrors.ErrMissingFields.WrapMessage("incomplete login payload")
	}

	output, err := h.uc.Login(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Redirect(c, loginSuccessMessage, output.RedirectTo)
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, healthyMessage)
}
