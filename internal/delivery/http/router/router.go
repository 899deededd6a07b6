// Package router contains routing setup for the HTTP delivery.
package router

import (
	"cliniweb/config"
	"cliniweb/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Config      *config.Config
	AuthHandler *handler.AuthHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	cfg         *config.Config
	authHandler *handler.AuthHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cfg:         params.Config,
		authHandler: params.AuthHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	apiGroup := e.Group("/api")
	{
		apiGroup.POST("/register", r.authHandler.Register)
		apiGroup.POST("/login", r.authHandler.Login)
	}

	// The frontend bundle, when deployed next to the API.
	if r.cfg != nil && r.cfg.HTTP.StaticDir != "" {
		e.Use(echomiddleware.Static(r.cfg.HTTP.StaticDir))
	}
}
