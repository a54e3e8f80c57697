// internal/handlers/upload/upload_handler.go
package upload

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tradeyardgit/TradeYard/internal/pkg/response"
	"github.com/tradeyardgit/TradeYard/internal/storage/s3"
)

const maxUploadSize = 8 << 20 // 8 MB

var allowedTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

type UploadHandler struct {
	storage *s3.ImageStorage
}

func NewUploadHandler(storage *s3.ImageStorage) *UploadHandler {
	return &UploadHandler{storage: storage}
}

// UploadImage accepts one multipart image and returns its public URL. The
// returned URL goes into the draft's images list and is also what the
// analysis endpoint fetches.
func (h *UploadHandler) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		response.ValidationError(c, "image file is required", err)
		return
	}
	if fileHeader.Size > maxUploadSize {
		response.ValidationError(c, "image must be 8MB or less", nil)
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !allowedTypes[strings.ToLower(contentType)] {
		response.ValidationError(c, "only JPEG, PNG and WebP images are allowed", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to read upload", err)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadSize))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to read upload", err)
		return
	}

	url, err := h.storage.Upload(c.Request.Context(), fileHeader.Filename, contentType, data)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to store image", err)
		return
	}

	response.Success(c, http.StatusCreated, "image uploaded", gin.H{"url": url})
}
