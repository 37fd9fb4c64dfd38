package handler

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/thehfpv/backend/internal/infrastructure"
	"github.com/thehfpv/backend/internal/logging"
)

var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

type UploadHandler struct {
	fileStore infrastructure.FileStore
	maxBytes  int64
	log       logging.Logger
}

func NewUploadHandler(fileStore infrastructure.FileStore, maxUploadMB int64, log logging.Logger) *UploadHandler {
	return &UploadHandler{
		fileStore: fileStore,
		maxBytes:  maxUploadMB << 20,
		log:       log,
	}
}

// UploadImage stores a multipart image under a generated name and returns
// its public URL.
func (h *UploadHandler) UploadImage(c echo.Context) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorBody("No image file provided"))
	}

	if fileHeader.Size > h.maxBytes {
		return c.JSON(http.StatusBadRequest, errorBody("File is too large"))
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedImageExtensions[ext] {
		return c.JSON(http.StatusBadRequest, errorBody("Unsupported file type"))
	}

	src, err := fileHeader.Open()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorBody("An unexpected error occurred"))
	}
	defer src.Close()

	name := fmt.Sprintf("%s%s", uuid.NewString(), ext)
	contentType := fileHeader.Header.Get(echo.HeaderContentType)

	url, err := h.fileStore.Save(c.Request().Context(), name, contentType, src)
	if err != nil {
		h.log.Error(c.Request().Context(), "image upload failed", "error", err)
		return c.JSON(http.StatusInternalServerError, errorBody("An unexpected error occurred"))
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Image uploaded successfully",
		"url":     url,
	})
}
