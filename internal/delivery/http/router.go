package http

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// NewRouter wires the auth routes onto a fresh echo instance.
func NewRouter(handler *AuthHandler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Recover())
	e.Use(middleware.Logger())

	RegisterRoutes(e, handler)

	return e
}

func RegisterRoutes(e *echo.Echo, handler *AuthHandler) {
	e.POST("/auth/register", handler.Register)
	e.POST("/auth/login", handler.Login)
	e.GET("/auth/health", handler.Health)
}
