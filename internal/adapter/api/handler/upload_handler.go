package handler

import (
	"lapakin/internal/domain/service"
	"lapakin/pkg/errors"
	"lapakin/pkg/logger"
	"lapakin/pkg/response"

	"github.com/labstack/echo/v4"
)

// UploadHandler exposes the storage backend directly so clients can stage
// an image before creating a listing.
type UploadHandler struct {
	storage service.ImageStorage
}

func NewUploadHandler(storage service.ImageStorage) *UploadHandler {
	return &UploadHandler{
		storage: storage,
	}
}

func (h *UploadHandler) UploadImage(c echo.Context) error {
	file, err := c.FormFile("image")
	if err != nil {
		return response.Error(c, errors.Validation("No image file provided.", err))
	}

	src, err := file.Open()
	if err != nil {
		logger.Error("Failed to open uploaded image %s: %v", file.Filename, err)
		return response.Error(c, errors.Internal("Unable to read image file", err))
	}
	defer src.Close()

	imageURL, err := h.storage.Upload(c.Request().Context(), src, file.Header.Get("Content-Type"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message":  "Image uploaded successfully!",
		"imageUrl": imageURL,
	})
}
