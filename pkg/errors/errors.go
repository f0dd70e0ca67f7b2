package errors

import (
	"errors"
	"fmt"
	"net/http"
)

type AppError struct {
	Code    string
	Message string
	Status  int
	Err     error
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code string, message string, status int, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Status:  status,
		Err:     err,
	}
}

func NotFound(resource string, err error) *AppError {
	return &AppError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s not found", resource),
		Status:  http.StatusNotFound,
		Err:     err,
	}
}

func BadRequest(message string, err error) *AppError {
	return &AppError{
		Code:    "BAD_REQUEST",
		Message: message,
		Status:  http.StatusBadRequest,
		Err:     err,
	}
}

func Unauthorized(message string, err error) *AppError {
	return &AppError{
		Code:    "UNAUTHORIZED",
		Message: message,
		Status:  http.StatusUnauthorized,
		Err:     err,
	}
}

func Forbidden(message string, err error) *AppError {
	return &AppError{
		Code:    "FORBIDDEN",
		Message: message,
		Status:  http.StatusForbidden,
		Err:     err,
	}
}

func Internal(message string, err error) *AppError {
	return &AppError{
		Code:    "INTERNAL_ERROR",
		Message: message,
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

func Is(err error, code string) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// Image pipeline error codes. Per-item codes mark a single upload as
// unusable; batch codes abort the whole request.
const (
	CodeUnsupportedFormat  = "UNSUPPORTED_FORMAT"
	CodeCorruptImage       = "CORRUPT_IMAGE"
	CodeSourceTooSmall     = "SOURCE_TOO_SMALL"
	CodeSourceTooLarge     = "SOURCE_TOO_LARGE"
	CodeObjectNotFound     = "OBJECT_NOT_FOUND"
	CodeStorageUnavailable = "STORAGE_UNAVAILABLE"
	CodeQuotaExceeded      = "QUOTA_EXCEEDED"
	CodeBatchTooLarge      = "BATCH_TOO_LARGE"
	CodeNoImages           = "NO_IMAGES"
	CodeNoValidImages      = "NO_VALID_IMAGES"
)

func UnsupportedFormat(err error) *AppError {
	return New(CodeUnsupportedFormat, "Unsupported image format", http.StatusBadRequest, err)
}

func CorruptImage(err error) *AppError {
	return New(CodeCorruptImage, "Image data is corrupt", http.StatusBadRequest, err)
}

func SourceTooSmall(width, height, minEdge int) *AppError {
	return New(CodeSourceTooSmall,
		fmt.Sprintf("Image %dx%d is below the minimum edge length of %d", width, height, minEdge),
		http.StatusBadRequest, nil)
}

func SourceTooLarge(width, height, maxEdge int) *AppError {
	return New(CodeSourceTooLarge,
		fmt.Sprintf("Image %dx%d exceeds the maximum edge length of %d", width, height, maxEdge),
		http.StatusBadRequest, nil)
}

func ObjectNotFound(key string, err error) *AppError {
	return New(CodeObjectNotFound, fmt.Sprintf("Object %q not found in storage", key), http.StatusNotFound, err)
}

func StorageUnavailable(err error) *AppError {
	return New(CodeStorageUnavailable, "Object storage is unavailable", http.StatusBadGateway, err)
}

func QuotaExceeded(category string) *AppError {
	return New(CodeQuotaExceeded,
		fmt.Sprintf("Image limit reached for category %s", category),
		http.StatusBadRequest, nil)
}

func BatchTooLarge(message string) *AppError {
	return New(CodeBatchTooLarge, message, http.StatusBadRequest, nil)
}

func NoImages() *AppError {
	return New(CodeNoImages, "Please select at least one image.", http.StatusBadRequest, nil)
}

func NoValidImages() *AppError {
	return New(CodeNoValidImages, "Please select at least one image.", http.StatusBadRequest, nil)
}
