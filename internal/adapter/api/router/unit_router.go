package router

import (
	"github.com/labstack/echo/v4"

	"rentersrights/internal/adapter/api/handler"
	"rentersrights/internal/adapter/api/middleware"
)

func SetupUnitRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, signLimiter *middleware.RateLimiter) {
	unitHandler := handler.GetUnitHandler()
	imageHandler := handler.GetImageHandler()

	units := e.Group("/v1/units")
	units.Use(authMiddleware.Authenticate)

	units.POST("", unitHandler.CreateUnit)
	units.GET("", unitHandler.ListUnits)
	units.GET("/:slug", unitHandler.GetUnit)
	units.DELETE("/:slug", unitHandler.DeleteUnit)

	units.POST("/:slug/sign-files", imageHandler.SignFiles, signLimiter.RateLimitMiddleware())
	units.POST("/:slug/images/:category", imageHandler.AddImages)

	images := e.Group("/v1/images")
	images.Use(authMiddleware.Authenticate)
	images.DELETE("/:imageId", unitHandler.DeleteImage)
}
