package productcontroller

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

func formatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', -1, 64)
}

// UploadsDir resolves the directory product images are written to.
func UploadsDir() string {
	if dir := os.Getenv("UPLOADS_DIR"); dir != "" {
		return dir
	}
	return "./uploads"
}

// UploadImage stores a product image and returns its public URL. Filenames
// are prefixed with a timestamp so re-uploads never clobber each other.
func UploadImage() gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Image is required"})
			return
		}

		filename := fmt.Sprintf("%d_%s", time.Now().UnixMilli(), strings.ReplaceAll(file.Filename, " ", "_"))

		saveDir := filepath.Join(UploadsDir(), "products")
		if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to create upload folder: %v", err)})
			return
		}

		if err := c.SaveUploadedFile(file, filepath.Join(saveDir, filename)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to save image: %v", err)})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"url": fmt.Sprintf("/uploads/products/%s", filename)})
	}
}
