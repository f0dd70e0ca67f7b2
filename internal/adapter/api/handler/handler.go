package handler

import (
	"github.com/labstack/echo/v4"

	"rentersrights/internal/usecase"
)

var (
	unitHandler  *UnitHandler
	imageHandler *ImageHandler
)

func Setup(
	unitUseCase *usecase.UnitUseCase,
	ingestUseCase *usecase.IngestUseCase,
	signUseCase *usecase.SignUseCase,
) {
	unitHandler = NewUnitHandler(unitUseCase)
	imageHandler = NewImageHandler(ingestUseCase, signUseCase)
}

func GetUnitHandler() *UnitHandler {
	return unitHandler
}

func GetImageHandler() *ImageHandler {
	return imageHandler
}

func getUserIDFromContext(c echo.Context) string {
	uid, _ := c.Get("uid").(string)
	return uid
}
