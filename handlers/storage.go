package handlers

import (
	"net/http"

	"veranera/services/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StorageHandler serves admin image upload and deletion against the
// media CDN.
type StorageHandler struct {
	Storage storage.StorageService
	Logger  *zap.Logger
}

func NewStorageHandler(svc storage.StorageService, logger *zap.Logger) *StorageHandler {
	return &StorageHandler{Storage: svc, Logger: logger}
}

// UploadImage accepts a multipart file and returns its hosted URL.
func (h *StorageHandler) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing file"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.Logger.Error("failed to open uploaded file", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read upload"})
		return
	}
	defer file.Close()

	folder := c.DefaultPostForm("folder", "retreats")
	url, err := h.Storage.UploadImage(c.Request.Context(), file, folder)
	if err != nil {
		h.Logger.Error("image upload failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}

// DeleteImage removes a previously uploaded image by its URL.
func (h *StorageHandler) DeleteImage(c *gin.Context) {
	var req struct {
		ImageURL string `json:"imageUrl"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.ImageURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "imageUrl is required"})
		return
	}

	if err := h.Storage.DeleteImage(c.Request.Context(), req.ImageURL); err != nil {
		h.Logger.Error("image delete failed", zap.String("url", req.ImageURL), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Delete failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
