package handlers

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"mandapbook/utils"
)

// allowedImageFolders restricts uploads to the listing image buckets.
var allowedImageFolders = map[string]bool{
	"venues": true,
	"rooms":  true,
}

var allowedImageExts = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".webp": true,
}

// UploadImageHandler accepts a multipart image and returns its CDN URL.
// The caller attaches the URL to a venue or room via the normal update
// endpoints.
func (hb *HandlerBundle) UploadImageHandler(c *gin.Context) {
	folder := c.Param("folder")
	if !allowedImageFolders[folder] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid folder; allowed values are 'venues' and 'rooms'"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file not provided", "details": err.Error()})
		return
	}
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedImageExts[ext] {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unsupported image type %q", ext)})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file could not be read", "details": err.Error()})
		return
	}
	defer file.Close()

	name := uuid.New().String()
	url, err := hb.Storage.UploadImage(c.Request.Context(), file, folder, name)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"url": url})
}

// DeleteImageHandler removes an uploaded image by its public ID.
func (hb *HandlerBundle) DeleteImageHandler(c *gin.Context) {
	publicID := c.Query("publicId")
	if publicID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "publicId is required"})
		return
	}
	if err := hb.Storage.DeleteImage(c.Request.Context(), publicID); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "image deleted"})
}
