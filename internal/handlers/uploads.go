package handlers

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ankitmishra16/Blogger/internal/storage"
)

type UploadHandler struct {
	images  *storage.ImageStore
	baseURL string
}

func NewUploadHandler(images *storage.ImageStore, baseURL string) *UploadHandler {
	return &UploadHandler{images: images, baseURL: baseURL}
}

// Upload accepts an image file and returns the URL it can be fetched back
// from. Anything that is not jpg/jpeg/png/gif is rejected.
func (h *UploadHandler) Upload(c *gin.Context) {
	if h.images == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "File storage is not configured"})
		return
	}

	fileHeader, err := c.FormFile("upload")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unreadable upload"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unreadable upload"})
		return
	}

	name, err := h.images.Save(c.Request.Context(), fileHeader.Filename, data)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"filename": name,
		"url":      fmt.Sprintf("%s/files/%s", h.baseURL, name),
	})
}

// ServeFile streams a stored image back to the client.
func (h *UploadHandler) ServeFile(c *gin.Context) {
	if h.images == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "File storage is not configured"})
		return
	}

	name := c.Param("filename")
	obj, contentType, err := h.images.Open(c.Request.Context(), name)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "File not found"})
		return
	}
	defer obj.Close()

	c.DataFromReader(http.StatusOK, -1, contentType, obj, nil)
}
