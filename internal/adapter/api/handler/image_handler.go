package handler

import (
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"rentersrights/internal/domain/entity"
	"rentersrights/internal/usecase"
	"rentersrights/pkg/errors"
	"rentersrights/pkg/logger"
	"rentersrights/pkg/response"
)

type ImageHandler struct {
	ingestUseCase *usecase.IngestUseCase
	signUseCase   *usecase.SignUseCase
}

func NewImageHandler(ingestUseCase *usecase.IngestUseCase, signUseCase *usecase.SignUseCase) *ImageHandler {
	return &ImageHandler{
		ingestUseCase: ingestUseCase,
		signUseCase:   signUseCase,
	}
}

type signFilesRequest struct {
	Files []string `json:"files"`
}

// SignFiles returns one upload authorization per requested filename. The
// body is the bare filename-to-authorization map the upload widget
// consumes, not the usual response envelope.
func (h *ImageHandler) SignFiles(c echo.Context) error {
	var req signFilesRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	authorizations, err := h.signUseCase.SignFiles(
		c.Request().Context(),
		getUserIDFromContext(c),
		c.Param("slug"),
		req.Files,
		time.Now(),
	)
	if err != nil {
		return response.Error(c, err)
	}

	return c.JSON(http.StatusOK, authorizations)
}

// AddImages ingests images for one unit and category, from multipart
// uploads ("images") and/or keys of objects already uploaded to storage
// ("s3_images", comma separated). Redirects to the unit list on success;
// an empty or fully-invalid selection re-renders the form with a message.
func (h *ImageHandler) AddImages(c echo.Context) error {
	category, ok := entity.ParseImageCategory(c.Param("category"))
	if !ok {
		return response.Error(c, errors.BadRequest("Unknown image category", nil))
	}

	items, err := h.collectItems(c)
	if err != nil {
		return response.Error(c, err)
	}

	ids, err := h.ingestUseCase.Ingest(
		c.Request().Context(),
		getUserIDFromContext(c),
		c.Param("slug"),
		category,
		items,
	)
	if err != nil {
		if errors.Is(err, errors.CodeNoImages) || errors.Is(err, errors.CodeNoValidImages) {
			return response.FormError(c, err)
		}
		return response.Error(c, err)
	}

	logger.Info("Ingested %d images for unit %s", len(ids), c.Param("slug"))

	return c.Redirect(http.StatusSeeOther, "/v1/units")
}

func (h *ImageHandler) collectItems(c echo.Context) ([]usecase.IngestItem, error) {
	var items []usecase.IngestItem

	form, err := c.MultipartForm()
	if err == nil && form != nil {
		for _, file := range form.File["images"] {
			src, err := file.Open()
			if err != nil {
				return nil, errors.Internal("Unable to read uploaded file", err)
			}
			data, err := io.ReadAll(src)
			src.Close()
			if err != nil {
				return nil, errors.Internal("Unable to read uploaded file", err)
			}
			items = append(items, usecase.IngestItem{
				Filename: file.Filename,
				Data:     data,
			})
		}
	}

	for _, key := range strings.Split(c.FormValue("s3_images"), ",") {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		items = append(items, usecase.IngestItem{
			Filename:  key,
			ObjectKey: key,
		})
	}

	return items, nil
}
