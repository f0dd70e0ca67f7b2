package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"rentersrights/internal/usecase"
	"rentersrights/pkg/errors"
	"rentersrights/pkg/response"
	"rentersrights/pkg/utils"
)

type UnitHandler struct {
	unitUseCase *usecase.UnitUseCase
}

func NewUnitHandler(unitUseCase *usecase.UnitUseCase) *UnitHandler {
	return &UnitHandler{
		unitUseCase: unitUseCase,
	}
}

func (h *UnitHandler) CreateUnit(c echo.Context) error {
	var input usecase.CreateUnitInput
	if err := c.Bind(&input); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&input); err != nil {
		return response.Error(c, err)
	}

	unit, err := h.unitUseCase.CreateUnit(c.Request().Context(), getUserIDFromContext(c), input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, unit)
}

func (h *UnitHandler) ListUnits(c echo.Context) error {
	params := utils.GetPaginationParams(c)

	units, total, err := h.unitUseCase.ListUnits(c.Request().Context(), getUserIDFromContext(c), params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, units, total, params.Page, params.PageSize)
}

func (h *UnitHandler) GetUnit(c echo.Context) error {
	ctx := c.Request().Context()
	uid := getUserIDFromContext(c)
	slug := c.Param("slug")

	unit, err := h.unitUseCase.GetUnit(ctx, uid, slug)
	if err != nil {
		return response.Error(c, err)
	}

	images, err := h.unitUseCase.GetUnitImages(ctx, uid, slug)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"unit":   unit,
		"images": images,
	})
}

func (h *UnitHandler) DeleteUnit(c echo.Context) error {
	err := h.unitUseCase.DeleteUnit(c.Request().Context(), getUserIDFromContext(c), c.Param("slug"))
	if err != nil {
		return response.Error(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *UnitHandler) DeleteImage(c echo.Context) error {
	err := h.unitUseCase.DeleteImage(c.Request().Context(), getUserIDFromContext(c), c.Param("imageId"))
	if err != nil {
		return response.Error(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
