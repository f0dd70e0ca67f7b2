package router

import (
	"github.com/labstack/echo/v4"

	"rentersrights/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, signLimiter *middleware.RateLimiter) {
	SetupUnitRouter(e, authMiddleware, signLimiter)
	SetupHealthRouter(e)
}
